// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package nagios defines the four-state result of a monitoring plugin and the
// process exit codes a health-check host expects for each state.
package nagios

// State is the outcome of a plugin run. Its numeric value is the exit code.
type State int

const (
	// OK means nothing needs attention.
	OK State = iota
	// Warning means something will need attention soon.
	Warning
	// Critical means something needs attention now.
	Critical
	// Unknown means the check itself could not be performed.
	Unknown
)

// String returns the upper-case label used as the status line prefix.
func (s State) String() string {
	switch s {
	case OK:
		return "OK"
	case Warning:
		return "WARNING"
	case Critical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ExitCode returns the process exit code for s.
// Values outside the known range map to [Unknown].
func (s State) ExitCode() int {
	if s < OK || s > Unknown {
		return int(Unknown)
	}
	return int(s)
}

// Worse returns the more severe of s and other.
// Unknown ranks above Critical.
func (s State) Worse(other State) State {
	if other.ExitCode() > s.ExitCode() {
		return other
	}
	return s
}
