// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface of check-openssl-ca.
// It implements a Cobra-based command that validates its single positional
// argument, merges flags over the config file, scans the ledger, and prints
// the status line. The result is returned as a [nagios.State] so that the
// binary can exit with the matching code.
//
// [nagios.State]: https://pkg.go.dev/github.com/H0llyW00dzZ/check-openssl-ca/src/internal/nagios#State
package cli
