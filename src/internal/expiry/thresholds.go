// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package expiry

import "time"

const day = 24 * time.Hour

// Severity is the class a suspect falls into.
type Severity int

const (
	// SeverityNone means the suspect is not reported.
	SeverityNone Severity = iota
	// SeverityWarning means the certificate expires soon.
	SeverityWarning
	// SeverityCritical means the certificate has recently expired.
	SeverityCritical
)

// String returns the label used in long output.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "WARNING"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "OK"
	}
}

// Thresholds are the classification windows, in whole days.
type Thresholds struct {
	WarningDays       int
	ExpiredWindowDays int
}

// DefaultThresholds returns 30-day windows on both sides of expiry.
func DefaultThresholds() Thresholds {
	return Thresholds{WarningDays: 30, ExpiredWindowDays: 30}
}

// Discard reports whether a certificate expired too long ago to track.
func (t Thresholds) Discard(days int) bool { return days < -t.ExpiredWindowDays }

// Classify maps a day count to a severity.
func (t Thresholds) Classify(days int) Severity {
	switch {
	case days >= 0 && days < t.WarningDays:
		return SeverityWarning
	case days < 0 && days > -t.ExpiredWindowDays:
		return SeverityCritical
	default:
		return SeverityNone
	}
}

// DaysUntil returns the whole days from now until expiry, rounded toward
// negative infinity. One hour past expiry is day -1, not day 0.
func DaysUntil(expiry, now time.Time) int {
	d := expiry.Sub(now)
	days := int(d / day)
	if d%day < 0 {
		days--
	}
	return days
}
