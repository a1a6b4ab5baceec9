// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package expiry

import (
	"cmp"
	"slices"
	"time"

	"github.com/H0llyW00dzZ/check-openssl-ca/src/internal/ledger"
	"github.com/H0llyW00dzZ/check-openssl-ca/src/logger"
)

// Suspect is a certificate being tracked for possible reporting.
type Suspect struct {
	CommonName string
	Serial     string
	Expiry     time.Time
	Days       int
}

// Tracker builds the suspect mapping from ledger records.
// It is not safe for concurrent use.
type Tracker struct {
	thresholds Thresholds
	now        time.Time
	log        logger.Logger
	suspects   map[string]Suspect
}

// NewTracker returns a Tracker measuring days against now.
// Skipped and overwritten records are traced to log; pass [logger.Discard]
// to keep quiet.
func NewTracker(thresholds Thresholds, now time.Time, log logger.Logger) *Tracker {
	if log == nil {
		log = logger.Discard()
	}
	return &Tracker{
		thresholds: thresholds,
		now:        now,
		log:        log,
		suspects:   make(map[string]Suspect),
	}
}

// Observe feeds one record into the mapping. Revoked records and
// certificates expired beyond the window are skipped. The only error is an
// undecodable expiry on a record that would otherwise be tracked.
func (t *Tracker) Observe(rec ledger.Record) error {
	if rec.Revoked() {
		t.log.Printf("serial %s: revoked, skipped", rec.Serial)
		return nil
	}

	expiry, err := rec.ExpiresAt()
	if err != nil {
		return err
	}

	days := DaysUntil(expiry, t.now)
	if t.thresholds.Discard(days) {
		t.log.Printf("serial %s: expired %d days ago, skipped", rec.Serial, -days)
		return nil
	}

	cn := rec.CommonName()
	if prev, ok := t.suspects[cn]; ok {
		t.log.Printf("serial %s: common name %q already seen on serial %s, replacing", rec.Serial, cn, prev.Serial)
	}
	t.suspects[cn] = Suspect{
		CommonName: cn,
		Serial:     rec.Serial,
		Expiry:     expiry,
		Days:       days,
	}
	return nil
}

// Len returns the number of distinct Common Names tracked.
func (t *Tracker) Len() int { return len(t.suspects) }

// Suspects returns the tracked suspects ordered by Common Name.
func (t *Tracker) Suspects() []Suspect {
	out := make([]Suspect, 0, len(t.suspects))
	for _, s := range t.suspects {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b Suspect) int { return cmp.Compare(a.CommonName, b.CommonName) })
	return out
}

// Report classifies the tracked suspects.
func (t *Tracker) Report() *Report {
	r := &Report{}
	for _, s := range t.Suspects() {
		switch t.thresholds.Classify(s.Days) {
		case SeverityCritical:
			r.Critical = append(r.Critical, s)
		case SeverityWarning:
			r.Warning = append(r.Warning, s)
		}
	}
	return r
}
