package sitemaps

import (
	"testing"
	"time"
)

func TestEstimateChangeFreqThresholds(t *testing.T) {
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name      string
		elapsed   time.Duration
		revisions int
		want      ChangeFreq
	}{
		{"over a year", 366 * 24 * time.Hour, 0, FreqYearly},
		{"over a month", 31 * 24 * time.Hour, 0, FreqMonthly},
		{"over a week", 8 * 24 * time.Hour, 0, FreqWeekly},
		{"over a day", 25 * time.Hour, 0, FreqDaily},
		{"over an hour", 2 * time.Hour, 0, FreqHourly},
		{"under an hour", 30 * time.Minute, 0, FreqAlways},
		{"revisions shorten the period", 4 * 24 * time.Hour, 7, FreqHourly},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EstimateChangeFreq(created, created.Add(tc.elapsed), tc.revisions)
			if got != tc.want {
				t.Errorf("EstimateChangeFreq(%v, %d revisions) = %q, want %q", tc.elapsed, tc.revisions, got, tc.want)
			}
		})
	}
}

func TestEstimateChangeFreqBoundariesAreExclusive(t *testing.T) {
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		elapsed time.Duration
		want    ChangeFreq
	}{
		{365 * 24 * time.Hour, FreqMonthly}, // exactly a year is not > a year
		{30 * 24 * time.Hour, FreqWeekly},
		{7 * 24 * time.Hour, FreqDaily},
		{24 * time.Hour, FreqHourly},
		{time.Hour, FreqAlways},
	}
	for _, tc := range cases {
		got := EstimateChangeFreq(created, created.Add(tc.elapsed), 0)
		if got != tc.want {
			t.Errorf("EstimateChangeFreq at exactly %v = %q, want %q", tc.elapsed, got, tc.want)
		}
	}
}

func TestEstimateChangeFreqBrandNew(t *testing.T) {
	now := time.Now()
	if got := EstimateChangeFreq(now, now, 0); got != FreqAlways {
		t.Errorf("EstimateChangeFreq(t, t, 0) = %q, want %q", got, FreqAlways)
	}
}

func TestEstimateChangeFreqClampsNegativeElapsed(t *testing.T) {
	now := time.Now()
	if got := EstimateChangeFreq(now.Add(time.Hour), now, 3); got != FreqAlways {
		t.Errorf("EstimateChangeFreq with now before createdAt = %q, want %q", got, FreqAlways)
	}
}

func TestEstimateChangeFreqHalfYearOneRevision(t *testing.T) {
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC) // 181 days
	// period = 181d / 2 = 90.5d -> monthly
	if got := EstimateChangeFreq(created, now, 1); got != FreqMonthly {
		t.Errorf("EstimateChangeFreq(181 days, 1 revision) = %q, want %q", got, FreqMonthly)
	}
}
