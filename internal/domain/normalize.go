package domain

import (
	"strconv"
	"strings"
)

// The warehouse ingests CSV exports with inconsistent typing: flags arrive as
// "1"/"true"/"yes", numbers as quoted strings or blanks. Coercion happens
// exactly once, at load time, so every downstream aggregation works on
// canonical typed fields.

// CoerceFlag maps the source representations of a boolean flag to bool.
// Anything unrecognized is false.
func CoerceFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}

// CoerceInt parses an integer field, returning 0 for blank or malformed input.
func CoerceInt(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return v
}

// CoerceFloat parses a numeric field, returning 0 for blank or malformed input.
func CoerceFloat(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

// CoerceKey parses a surrogate key column, returning 0 (the null key) when
// the source value is blank or malformed. Aggregations skip rows whose keys
// fail to resolve against their dimension.
func CoerceKey(raw string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
