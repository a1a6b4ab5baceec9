// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-style helpers that behave the same across
// operating systems. It currently exposes the invocation name used in the
// plugin's usage line.
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
