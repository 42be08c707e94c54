package timeutil

import (
	"testing"
	"time"
)

func TestFormatMicros(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{
			name:     "UTC with microseconds",
			input:    time.Date(2024, 6, 15, 10, 30, 45, 123456000, time.UTC),
			expected: "2024-06-15T10:30:45.123456Z",
		},
		{
			name:     "zero fraction is padded",
			input:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: "2024-01-01T00:00:00.000000Z",
		},
		{
			name:     "offset converts to UTC",
			input:    time.Date(2024, 6, 15, 12, 0, 0, 500000000, time.FixedZone("EST", -5*60*60)),
			expected: "2024-06-15T17:00:00.500000Z",
		},
		{
			name:     "nanoseconds truncate",
			input:    time.Date(2024, 3, 20, 8, 15, 30, 999999999, time.UTC),
			expected: "2024-03-20T08:15:30.999999Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMicros(tt.input); got != tt.expected {
				t.Fatalf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
