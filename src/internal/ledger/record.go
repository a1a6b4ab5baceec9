// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package ledger

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// FieldCount is the number of tab-separated fields in a ledger line.
const FieldCount = 6

const (
	utcTimeLayout         = "060102150405Z"
	generalizedTimeLayout = "20060102150405Z"
)

var (
	// ErrFieldCount indicates that a line does not split into [FieldCount] fields.
	ErrFieldCount = errors.New("ledger: wrong number of fields")

	// ErrTimestamp indicates that a time field is not a valid UTCTime or GeneralizedTime value.
	ErrTimestamp = errors.New("ledger: invalid timestamp")
)

var commonNamePattern = regexp.MustCompile(`/CN=([^/]+)/`)

// Status is the single-letter flag in the first field of a ledger line.
type Status string

const (
	// StatusValid marks a certificate that is still in service.
	StatusValid Status = "V"
	// StatusRevoked marks a revoked certificate.
	StatusRevoked Status = "R"
	// StatusExpired marks a certificate OpenSSL has flagged as expired.
	StatusExpired Status = "E"
)

// Record is one parsed ledger line. Fields other than Status are kept raw;
// the expiry is decoded on demand by [Record.ExpiresAt] so that rows which are
// never inspected cannot fail a run.
type Record struct {
	Status     Status
	RawExpiry  string
	Revocation string
	Serial     string
	// Filename is normally the literal "unknown".
	Filename  string
	SubjectDN string
}

// ParseLine splits a single ledger line into a [Record].
// A trailing carriage return is ignored.
func ParseLine(line string) (Record, error) {
	line = strings.TrimSuffix(line, "\r")

	fields := strings.Split(line, "\t")
	if len(fields) != FieldCount {
		return Record{}, fmt.Errorf("%w: expected %d, got %d", ErrFieldCount, FieldCount, len(fields))
	}

	return Record{
		Status:     Status(fields[0]),
		RawExpiry:  fields[1],
		Revocation: fields[2],
		Serial:     fields[3],
		Filename:   fields[4],
		SubjectDN:  fields[5],
	}, nil
}

// Revoked reports whether the record carries the revoked flag.
func (r Record) Revoked() bool { return r.Status == StatusRevoked }

// ExpiresAt decodes the expiry field.
func (r Record) ExpiresAt() (time.Time, error) { return ParseTime(r.RawExpiry) }

// CommonName returns the CN component of the subject, or the whole trimmed
// subject when it has no "/CN=.../" component.
func (r Record) CommonName() string {
	if m := commonNamePattern.FindStringSubmatch(r.SubjectDN); m != nil {
		return m[1]
	}
	return strings.TrimSpace(r.SubjectDN)
}

// ParseTime decodes a ledger timestamp. Both the 13-character UTCTime form
// (YYMMDDHHMMSSZ) and the 15-character GeneralizedTime form
// (YYYYMMDDHHMMSSZ) are accepted. Two-digit years 69-99 map to 19xx and
// 00-68 map to 20xx. The result is always in UTC.
func ParseTime(raw string) (time.Time, error) {
	var layout string
	switch len(raw) {
	case len(utcTimeLayout):
		layout = utcTimeLayout
	case len(generalizedTimeLayout):
		layout = generalizedTimeLayout
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrTimestamp, raw)
	}

	t, err := time.Parse(layout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrTimestamp, raw)
	}
	return t.UTC(), nil
}
