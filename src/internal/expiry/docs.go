// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package expiry turns ledger records into a monitoring verdict.
//
// A [Tracker] keeps one suspect per Common Name: every non-revoked
// certificate whose expiry is not further in the past than the expired
// window. Records sharing a Common Name overwrite each other, last one wins.
// [Tracker.Report] then sorts suspects into two classes:
//
//   - WARNING: 0 <= days < WarningDays
//   - CRITICAL: -ExpiredWindowDays < days < 0
//
// A suspect at exactly -ExpiredWindowDays days survives the discard step but
// falls into neither class, so it is never reported.
package expiry
