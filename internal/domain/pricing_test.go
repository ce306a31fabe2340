package domain

import (
	"testing"
	"time"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02T15:04", s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return ts
}

func TestNights(t *testing.T) {
	cases := []struct {
		in, out string
		want    int
	}{
		{"2024-01-01T12:00", "2024-01-02T12:00", 1},
		{"2024-01-01T12:00", "2024-01-02T12:01", 2},
		{"2024-01-01T12:00", "2024-01-03T12:00", 2},
		{"2024-01-01T23:00", "2024-01-02T01:00", 1},
		{"2024-01-01T12:00", "2024-01-08T11:00", 7},
		// degenerate ranges still bill one night
		{"2024-01-01T12:00", "2024-01-01T12:00", 1},
		{"2024-01-02T12:00", "2024-01-01T12:00", 1},
	}
	for _, tc := range cases {
		got := Nights(mustTime(t, tc.in), mustTime(t, tc.out))
		if got != tc.want {
			t.Errorf("Nights(%s, %s) = %d, want %d", tc.in, tc.out, got, tc.want)
		}
	}
}

func TestComputeTotalOneNightLowerSlab(t *testing.T) {
	q := ComputeTotal(1500, 1, mustTime(t, "2024-01-01T12:00"), mustTime(t, "2024-01-02T12:00"))
	if q.Nights != 1 {
		t.Fatalf("nights = %d, want 1", q.Nights)
	}
	if q.BaseAmount != 1500 {
		t.Fatalf("base = %v, want 1500", q.BaseAmount)
	}
	if q.Tax.RateLabel != "12%" {
		t.Fatalf("rate = %q, want 12%%", q.Tax.RateLabel)
	}
	if q.Total != 1680 {
		t.Fatalf("total = %v, want 1680", q.Total)
	}
}

func TestComputeTotalCrossesSlab(t *testing.T) {
	// 2 rooms x 3 nights x 1800 = 10800 > 7500, so 18% applies
	q := ComputeTotal(1800, 2, mustTime(t, "2024-03-10T14:00"), mustTime(t, "2024-03-13T10:00"))
	if q.Nights != 3 {
		t.Fatalf("nights = %d, want 3", q.Nights)
	}
	if q.BaseAmount != 10800 {
		t.Fatalf("base = %v, want 10800", q.BaseAmount)
	}
	if q.Tax.RateLabel != "18%" {
		t.Fatalf("rate = %q, want 18%%", q.Tax.RateLabel)
	}
	if want := 10800 * 1.18; q.Total != want {
		t.Fatalf("total = %v, want %v", q.Total, want)
	}
}
