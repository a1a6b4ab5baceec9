// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package ledger reads the certificate database that the OpenSSL "ca" command
// maintains (usually named index.txt). Each line is one issued certificate:
//
//	V	270101000000Z		1000	unknown	/C=US/CN=example.com
//
// The six tab-separated fields are the status flag, the expiry time, the
// revocation time, the serial number, the file name and the subject
// distinguished name. The format belongs to OpenSSL; this package only
// consumes it.
package ledger
