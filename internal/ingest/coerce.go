package ingest

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// timestampFormats are attempted in strict order; the first that parses wins.
var timestampFormats = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006",
}

// parseTimestamp parses a timestamp cell against the supported formats
func parseTimestamp(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse timestamp: %s", s)
}

// safeDecimal coerces a decimal cell. Blank cells become exactly zero;
// malformed numeric text fails the row.
func safeDecimal(column, value string) (float64, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid decimal value %q for column %q", value, column)
	}
	return f, nil
}

// safeInt coerces an integer cell. Blank cells become zero; fractional text
// is truncated ("5.7" -> 5) rather than rejected.
func safeInt(column, value string) (int, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value %q for column %q", value, column)
	}
	return int(f), nil
}

// safeBool coerces a boolean cell. Only "true", "1" and "yes" (case-insensitive)
// are true; everything else is false with no error path.
func safeBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes":
		return true
	}
	return false
}
