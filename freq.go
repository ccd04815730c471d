package sitemaps

import "time"

// EstimateChangeFreq derives a change-frequency label from an item's edit
// history: the elapsed lifetime divided by (revisions + 1) gives the average
// period between edits, which is classified against fixed thresholds.
// Thresholds are exclusive on the lower side, so an item edited exactly once
// per 30 days is weekly, not monthly. A now before createdAt is treated as
// zero elapsed time.
func EstimateChangeFreq(createdAt, now time.Time, revisions int) ChangeFreq {
	elapsed := now.Sub(createdAt)
	if elapsed < 0 {
		elapsed = 0
	}
	if revisions < 0 {
		revisions = 0
	}
	period := elapsed / time.Duration(revisions+1)

	switch {
	case period > 365*24*time.Hour:
		return FreqYearly
	case period > 30*24*time.Hour:
		return FreqMonthly
	case period > 7*24*time.Hour:
		return FreqWeekly
	case period > 24*time.Hour:
		return FreqDaily
	case period > time.Hour:
		return FreqHourly
	default:
		return FreqAlways
	}
}
