package dates

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"plain date", "2024-06-01", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"rfc3339", "2024-06-01T12:30:00Z", time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)},
		{"datetime no seconds", "2024-06-01T12:30", time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)},
		{"datetime with seconds", "2024-06-01T12:30:45", time.Date(2024, 6, 1, 12, 30, 45, 0, time.UTC)},
		{"today", "today", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"yesterday", "yesterday", time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)},
		{"tomorrow", "Tomorrow", time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)},
		{"hours ago", "6h", time.Date(2025, 6, 15, 8, 30, 0, 0, time.UTC)},
		{"days ago", "3d", time.Date(2025, 6, 12, 14, 30, 0, 0, time.UTC)},
		{"weeks ago", "2w", time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)},
		{"surrounding space", "  2024-06-01  ", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input, now)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	now := time.Now()
	for _, input := range []string{"", "not-a-date", "06/01/2024", "d3", "3y", "2024-13-40"} {
		if _, err := Parse(input, now); err == nil {
			t.Errorf("Parse(%q) expected error", input)
		}
	}
}
