package ingest

import (
	"testing"
	"time"
)

func TestParseTimestampFormats(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2024-03-15 08:30:00", time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC)},
		{"2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"03/15/2024 08:30:00", time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC)},
		{"03/15/2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"  2024-03-15  ", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, err := parseTimestamp(tt.input)
		if err != nil {
			t.Errorf("parseTimestamp(%q) returned error: %v", tt.input, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("parseTimestamp(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseTimestampRejectsInvalid(t *testing.T) {
	invalid := []string{"", "not a date", "2024-13-40", "15/03/2024 99:99:99"}

	for _, input := range invalid {
		if _, err := parseTimestamp(input); err == nil {
			t.Errorf("parseTimestamp(%q) succeeded, want error", input)
		}
	}
}

func TestSafeDecimal(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"42.5", 42.5, false},
		{"-3.2", -3.2, false},
		{"", 0, false},
		{"   ", 0, false},
		{" 7.1 ", 7.1, false},
		{"abc", 0, true},
		{"1.2.3", 0, true},
	}

	for _, tt := range tests {
		got, err := safeDecimal("risk_score", tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("safeDecimal(%q) succeeded, want error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("safeDecimal(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("safeDecimal(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSafeIntTruncatesFractions(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"5", 5, false},
		{"5.7", 5, false},
		{"-2.9", -2, false},
		{"", 0, false},
		{"five", 0, true},
	}

	for _, tt := range tests {
		got, err := safeInt("hour", tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("safeInt(%q) succeeded, want error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("safeInt(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("safeInt(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestSafeBool(t *testing.T) {
	truthy := []string{"true", "TRUE", "True", "1", "yes", "YES", " yes "}
	for _, input := range truthy {
		if !safeBool(input) {
			t.Errorf("safeBool(%q) = false, want true", input)
		}
	}

	falsy := []string{"", "false", "0", "no", "y", "t", "2", "maybe"}
	for _, input := range falsy {
		if safeBool(input) {
			t.Errorf("safeBool(%q) = true, want false", input)
		}
	}
}
