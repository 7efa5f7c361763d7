package timeutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseAPITime(t *testing.T) {
	madrid := time.FixedZone("CET", 60*60)
	cases := []struct {
		in   string
		loc  *time.Location
		want time.Time
	}{
		{"2023-10-05T20:45:00", nil, time.Date(2023, 10, 5, 20, 45, 0, 0, time.UTC)},
		{"2023-10-05T20:45:00", madrid, time.Date(2023, 10, 5, 20, 45, 0, 0, madrid)},
		{"2023-10-05T20:45:00.5", nil, time.Date(2023, 10, 5, 20, 45, 0, 500000000, time.UTC)},
		{"2023-10-05T18:45:00Z", madrid, time.Date(2023, 10, 5, 18, 45, 0, 0, time.UTC)},
		{" 2023-10-05 ", nil, time.Date(2023, 10, 5, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got, err := ParseAPITime(c.in, c.loc)
		if err != nil {
			t.Fatalf("ParseAPITime(%q): %v", c.in, err)
		}
		if !got.Equal(c.want) {
			t.Fatalf("ParseAPITime(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseAPITimeErrors(t *testing.T) {
	if _, err := ParseAPITime("  ", nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
	if _, err := ParseAPITime("yesterday", nil); err == nil {
		t.Fatal("expected error for garbage")
	}
}
