// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/H0llyW00dzZ/check-openssl-ca/src/cli"
	verpkg "github.com/H0llyW00dzZ/check-openssl-ca/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() {
	// A signal stops the scan between lines; the run then reports UNKNOWN.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	state := cli.Execute(ctx, version)

	stop()
	os.Exit(state.ExitCode())
}
