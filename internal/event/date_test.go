package event

import (
	"errors"
	"testing"
	"time"
)

func TestParseGermanDate(t *testing.T) {
	tests := []struct {
		name      string
		dateText  string
		wantYear  int
		wantMonth time.Month
		wantDay   int
		wantErr   bool
	}{
		{
			name:      "plain date",
			dateText:  "7. August 2025",
			wantYear:  2025,
			wantMonth: time.August,
			wantDay:   7,
		},
		{
			name:      "date with holiday annotation",
			dateText:  "14. August 2025 (Mariä Himmelfahrt/Fr)",
			wantYear:  2025,
			wantMonth: time.August,
			wantDay:   14,
		},
		{
			name:      "first of the year",
			dateText:  "1. Januar 2026",
			wantYear:  2026,
			wantMonth: time.January,
			wantDay:   1,
		},
		{
			name:      "umlaut month",
			dateText:  "15. März 2026",
			wantYear:  2026,
			wantMonth: time.March,
			wantDay:   15,
		},
		{
			name:      "last of the year",
			dateText:  "31. Dezember 2025",
			wantYear:  2025,
			wantMonth: time.December,
			wantDay:   31,
		},
		{
			name:      "surrounding whitespace",
			dateText:  "  28. August 2025  ",
			wantYear:  2025,
			wantMonth: time.August,
			wantDay:   28,
		},
		{
			name:     "unknown month name",
			dateText: "14. Smarch 2025",
			wantErr:  true,
		},
		{
			name:     "english month name",
			dateText: "14. March 2025",
			wantErr:  true,
		},
		{
			name:     "missing day",
			dateText: "August 2025",
			wantErr:  true,
		},
		{
			name:     "non-numeric day",
			dateText: "Ende. August 2025",
			wantErr:  true,
		},
		{
			name:     "non-numeric year",
			dateText: "7. August zwanzig",
			wantErr:  true,
		},
		{
			name:     "empty string",
			dateText: "",
			wantErr:  true,
		},
		{
			name:     "annotation only",
			dateText: "(Feiertag)",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGermanDate(tt.dateText)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseGermanDate(%q) expected error, got %v", tt.dateText, got)
				}
				if !errors.Is(err, ErrUnparseableDate) {
					t.Errorf("ParseGermanDate(%q) error = %v, want ErrUnparseableDate", tt.dateText, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseGermanDate(%q) unexpected error: %v", tt.dateText, err)
			}
			if got.Year() != tt.wantYear || got.Month() != tt.wantMonth || got.Day() != tt.wantDay {
				t.Errorf("ParseGermanDate(%q) = %v, want %d-%d-%d",
					tt.dateText, got, tt.wantYear, tt.wantMonth, tt.wantDay)
			}
		})
	}
}

func TestParseGermanDate_AllMonths(t *testing.T) {
	months := []string{
		"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember",
	}

	for i, name := range months {
		got, err := ParseGermanDate("1. " + name + " 2026")
		if err != nil {
			t.Errorf("ParseGermanDate failed for %s: %v", name, err)
			continue
		}
		if got.Month() != time.Month(i+1) {
			t.Errorf("%s parsed as month %d, want %d", name, got.Month(), i+1)
		}
	}
}
