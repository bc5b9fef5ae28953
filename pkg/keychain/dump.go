// Copyright 2026 Secure Config Tool. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package keychain

import (
	"strings"
)

// Dump attribute markers. The keychain dump is line-oriented; attribute
// lines have the form `"<key>"<blob>="<value>"`.
const (
	serviceMarker = `"svce"`
	accountMarker = `"acct"`
	blobDelim     = `<blob>=`
)

// Record is one enumerated secret-store entry owned by this tool.
// Service carries the logical name with the TagPrefix already stripped.
type Record struct {
	Service string
	Account string
}

// Stats describes what a parse pass saw besides the emitted records.
type Stats struct {
	// Untagged counts complete (service, account) pairs that did not
	// carry the TagPrefix and were filtered out.
	Untagged int
	// Dropped counts partial pairs that never completed: an attribute
	// overwritten before its counterpart appeared, or a single
	// attribute left dangling at end of input.
	Dropped int
}

// Parser extracts tool-owned (service, account) records from the text
// output of a bulk keychain dump.
type Parser struct {
	prefix string
}

// NewParser creates a parser filtering on the default TagPrefix.
func NewParser() *Parser {
	return &Parser{prefix: TagPrefix}
}

// Parse scans the dump line by line. It keeps two slots, the current
// service and the current account; whenever both are set the pair is
// evaluated and the slots are cleared, whether a record was emitted or
// not. An empty attribute value leaves its slot unset. Attribute order
// within a block does not matter. Partial pairs are dropped silently; a
// malformed block never rejects the rest of the dump, since platform
// dumps include many unrelated entries from other tools.
func (p *Parser) Parse(dump string) ([]Record, Stats) {
	var (
		records []Record
		stats   Stats

		service string
		account string
	)

	for _, line := range strings.Split(dump, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, serviceMarker):
			value, ok := blobValue(line)
			if !ok {
				continue
			}
			if service != "" {
				stats.Dropped++
			}
			service = value

		case strings.HasPrefix(line, accountMarker):
			value, ok := blobValue(line)
			if !ok {
				continue
			}
			if account != "" {
				stats.Dropped++
			}
			account = value
		}

		if service != "" && account != "" {
			if strings.HasPrefix(service, p.prefix) {
				records = append(records, Record{
					Service: strings.TrimPrefix(service, p.prefix),
					Account: account,
				})
			} else {
				stats.Untagged++
			}
			service, account = "", ""
		}
	}

	// A single attribute left dangling at end of input is a partial
	// trailing record.
	if service != "" || account != "" {
		stats.Dropped++
	}

	return records, stats
}

// blobValue extracts the quoted blob value from an attribute line,
// stripped of surrounding whitespace and quote characters.
func blobValue(line string) (string, bool) {
	i := strings.Index(line, blobDelim)
	if i < 0 {
		return "", false
	}
	return strings.Trim(line[i+len(blobDelim):], ` "`), true
}
