package version

import (
	"strings"
	"testing"
)

func TestBuildID(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		expected  int
		wantError bool
	}{
		{
			name:     "epoch date",
			date:     "2026-01-01",
			expected: 0,
		},
		{
			name:     "next day after epoch",
			date:     "2026-01-02",
			expected: 1,
		},
		{
			name:     "one year later",
			date:     "2027-01-01",
			expected: 365,
		},
		{
			name:     "date with leap year included",
			date:     "2029-01-01",
			expected: 1096,
		},
		{
			name:      "invalid format",
			date:      "invalid",
			wantError: true,
		},
		{
			name:      "empty date",
			date:      "",
			wantError: true,
		},
		{
			name:      "before epoch",
			date:      "2025-12-31",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := buildID(tt.date)

			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error, got nil (id=%d)", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.expected {
				t.Errorf("buildID(%q) = %d, want %d", tt.date, got, tt.expected)
			}
		})
	}
}

func TestInfo(t *testing.T) {
	old := BuildDate
	defer func() { BuildDate = old }()

	BuildDate = "2026-01-11"
	info := Info()
	if !info.Calculated || info.BuildID != 10 || info.GoVersion == "" {
		t.Fatalf("unexpected info: %+v", info)
	}
	if s := String(); !strings.HasPrefix(s, "Magog build 10 (2026-01-11)") {
		t.Fatalf("String() = %q", s)
	}

	BuildDate = ""
	if info := Info(); info.Calculated || info.Error == "" {
		t.Fatalf("expected error info, got %+v", info)
	}
	if s := String(); !strings.Contains(s, "unknown") {
		t.Fatalf("String() = %q", s)
	}
}
