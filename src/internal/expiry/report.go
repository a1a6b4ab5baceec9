// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package expiry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/H0llyW00dzZ/check-openssl-ca/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/check-openssl-ca/src/internal/nagios"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// Report is the classified outcome of a scan. Both slices are ordered by
// Common Name.
type Report struct {
	Critical []Suspect
	Warning  []Suspect
}

// State returns the plugin state the report maps to.
func (r *Report) State() nagios.State {
	state := nagios.OK
	if len(r.Warning) > 0 {
		state = state.Worse(nagios.Warning)
	}
	if len(r.Critical) > 0 {
		state = state.Worse(nagios.Critical)
	}
	return state
}

// String returns the single status line:
//
//	OK
//	WARNING - (EXPIRES in 10 days) example.com
//	CRITICAL - (EXPIRED 2 days ago) old.example.com (EXPIRES in 10 days) example.com
//
// Every entry carries a trailing space. A CRITICAL line still lists the
// WARNING entries after the critical ones.
func (r *Report) String() string {
	state := r.State()
	if state == nagios.OK {
		return state.String()
	}

	return gc.String(func(buf gc.Buffer) {
		buf.WriteString(state.String())
		buf.WriteString(" - ")
		for _, s := range r.Critical {
			writeCritical(buf, s)
		}
		for _, s := range r.Warning {
			writeWarning(buf, s)
		}
	})
}

func writeWarning(buf gc.Buffer, s Suspect) {
	buf.WriteString("(EXPIRES in ")
	buf.WriteString(strconv.Itoa(s.Days))
	buf.WriteString(" days) ")
	buf.WriteString(s.CommonName)
	buf.WriteByte(' ')
}

func writeCritical(buf gc.Buffer, s Suspect) {
	buf.WriteString("(EXPIRED ")
	buf.WriteString(strconv.Itoa(-s.Days))
	buf.WriteString(" days ago) ")
	buf.WriteString(s.CommonName)
	buf.WriteByte(' ')
}

// Table renders the reported suspects as a markdown table, critical rows
// first. It returns an empty string for an OK report.
func (r *Report) Table() (string, error) {
	if len(r.Critical) == 0 && len(r.Warning) == 0 {
		return "", nil
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	headers := []string{"Common Name", "Serial", "Expires", "Days", "State"}
	table.Header(headers)

	rows := make([][]string, 0, len(r.Critical)+len(r.Warning))
	for _, s := range r.Critical {
		rows = append(rows, tableRow(s, SeverityCritical))
	}
	for _, s := range r.Warning {
		rows = append(rows, tableRow(s, SeverityWarning))
	}

	if err := table.Bulk(rows); err != nil {
		return "", fmt.Errorf("expiry: failed to append table rows: %w", err)
	}
	if err := table.Render(); err != nil {
		return "", fmt.Errorf("expiry: failed to render table: %w", err)
	}
	return buf.String(), nil
}

func tableRow(s Suspect, sev Severity) []string {
	return []string{
		s.CommonName,
		s.Serial,
		s.Expiry.Format("2006-01-02 15:04:05 MST"),
		strconv.Itoa(s.Days),
		sev.String(),
	}
}
