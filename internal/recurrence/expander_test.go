package recurrence

import (
	"errors"
	"testing"
)

func TestMaterializes(t *testing.T) {
	t.Parallel()

	// 2024-06-03 is a Monday.
	cases := []struct {
		name   string
		anchor string
		target string
		want   bool
	}{
		{name: "next matching weekday", anchor: "2024-06-03", target: "2024-06-10", want: true},
		{name: "several weeks later", anchor: "2024-06-03", target: "2024-07-01", want: true},
		{name: "anchor date itself never materializes", anchor: "2024-06-03", target: "2024-06-03", want: false},
		{name: "matching weekday before the anchor", anchor: "2024-06-10", target: "2024-06-03", want: false},
		{name: "different weekday", anchor: "2024-06-03", target: "2024-06-11", want: false},
		{name: "day after the anchor", anchor: "2024-06-03", target: "2024-06-04", want: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Materializes(tc.anchor, tc.target)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Materializes(%s, %s) = %v, want %v", tc.anchor, tc.target, got, tc.want)
			}
		})
	}

	t.Run("rejects malformed dates", func(t *testing.T) {
		t.Parallel()

		if _, err := Materializes("June 3rd", "2024-06-10"); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
		if _, err := Materializes("2024-06-03", "2024-6-10"); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})
}

func TestOccurrenceID(t *testing.T) {
	t.Parallel()

	if got := OccurrenceID("abc123", "2024-06-10"); got != "abc123-2024-06-10" {
		t.Fatalf("OccurrenceID = %q", got)
	}
}

func TestSplitID(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		id           string
		wantSeries   string
		wantDate     string
		isOccurrence bool
	}{
		{name: "occurrence id", id: "abc123-2024-06-10", wantSeries: "abc123", wantDate: "2024-06-10", isOccurrence: true},
		{name: "series id containing dashes", id: "bk-7-2024-06-10", wantSeries: "bk-7", wantDate: "2024-06-10", isOccurrence: true},
		{name: "plain id", id: "abc123", wantSeries: "abc123"},
		{name: "dashed id without date suffix", id: "abc-123", wantSeries: "abc-123"},
		{name: "date-like suffix that is not a date", id: "abc123-2024-13-99", wantSeries: "abc123-2024-13-99"},
		{name: "bare date is not an occurrence", id: "2024-06-10", wantSeries: "2024-06-10"},
		{name: "empty id", id: "", wantSeries: ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			series, date, ok := SplitID(tc.id)
			if ok != tc.isOccurrence {
				t.Fatalf("SplitID(%q) isOccurrence = %v, want %v", tc.id, ok, tc.isOccurrence)
			}
			if series != tc.wantSeries {
				t.Fatalf("SplitID(%q) series = %q, want %q", tc.id, series, tc.wantSeries)
			}
			if date != tc.wantDate {
				t.Fatalf("SplitID(%q) date = %q, want %q", tc.id, date, tc.wantDate)
			}
		})
	}

	t.Run("round-trips OccurrenceID", func(t *testing.T) {
		t.Parallel()

		id := OccurrenceID("series42", "2024-06-17")
		series, date, ok := SplitID(id)
		if !ok || series != "series42" || date != "2024-06-17" {
			t.Fatalf("round trip failed: %q -> %q, %q, %v", id, series, date, ok)
		}
	})
}
