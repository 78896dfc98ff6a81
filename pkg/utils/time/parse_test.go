package time

import (
	"testing"
	"time"
)

func TestParseFlexibleTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339", "2025-08-01T10:30:00Z", time.Date(2025, 8, 1, 10, 30, 0, 0, time.UTC)},
		{"wordpress gmt", "2025-08-01T10:30:00", time.Date(2025, 8, 1, 10, 30, 0, 0, time.UTC)},
		{"mysql datetime", "2025-08-01 10:30:00", time.Date(2025, 8, 1, 10, 30, 0, 0, time.UTC)},
		{"date only", "2025-08-01", time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)},
		{"acf date picker", "20250801", time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)},
		{"long form", "August 1, 2025", time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)},
		{"padded", "  2025-08-01  ", time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)},
		{"empty", "", time.Time{}},
		{"garbage", "yesterday", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFlexibleTime(tt.input)
			if !got.Equal(tt.want) {
				t.Errorf("ParseFlexibleTime(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseOptional(t *testing.T) {
	if ParseOptional("") != nil {
		t.Error("ParseOptional(\"\") should be nil")
	}
	if ParseOptional("not a date") != nil {
		t.Error("ParseOptional should be nil for unparseable input")
	}

	got := ParseOptional("2025-08-01")
	if got == nil || got.Year() != 2025 {
		t.Errorf("ParseOptional(2025-08-01) = %v", got)
	}
}
