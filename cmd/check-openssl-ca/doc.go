// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// check-openssl-ca is a monitoring plugin that reports certificates nearing or
// past expiry in the index.txt ledger of an OpenSSL certificate authority.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/check-openssl-ca/cmd/check-openssl-ca@latest
//
// # Usage
//
//	check-openssl-ca [FLAGS] /path/to/CA/index.txt
//
// # Flags
//
//	    --config          JSON or YAML config file (default: $CHECK_OPENSSL_CA_CONFIG_FILE)
//	-w, --warning-days    WARNING window in days (default: 30)
//	-e, --expired-window  days after expiry still reported as CRITICAL (default: 30)
//	-l, --long            Append a markdown table of reported certificates
//	-v, --verbose         Trace skipped and replaced records on stderr
//	    --log-format      Diagnostics format, text or json (default: text)
//
// # Output
//
// One status line on standard output, and an exit code for the monitoring host:
//
//	OK                                                          exit 0
//	WARNING - (EXPIRES in 10 days) www.example.com              exit 1
//	CRITICAL - (EXPIRED 2 days ago) vpn.example.com ...         exit 2
//
// A missing argument or an unreadable or malformed ledger exits 3 (UNKNOWN)
// with a diagnostic on standard error.
//
// # Examples
//
// Net-SNMP extend, as in /etc/snmp/snmpd.conf:
//
//	extend cert-check /usr/local/bin/check-openssl-ca /var/lib/YourCA/index.txt
//
// Nagios command definition:
//
//	define command {
//	    command_name check_openssl_ca
//	    command_line $USER1$/check-openssl-ca -w 21 $ARG1$
//	}
package main
