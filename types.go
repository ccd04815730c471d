package sitemaps

import "time"

// ChangeFreq is a coarse label estimating how often a URL's content changes.
// The values are the ones the sitemap protocol accepts for <changefreq>.
type ChangeFreq string

const (
	FreqAlways  ChangeFreq = "always"
	FreqHourly  ChangeFreq = "hourly"
	FreqDaily   ChangeFreq = "daily"
	FreqWeekly  ChangeFreq = "weekly"
	FreqMonthly ChangeFreq = "monthly"
	FreqYearly  ChangeFreq = "yearly"
	FreqNever   ChangeFreq = "never"
)

// Entry is one URL record in the generated sitemap. Entries are built fresh
// per request and discarded after rendering.
type Entry struct {
	URL          string
	LastModified time.Time // zero means unknown; <lastmod> is omitted
	ChangeFreq   ChangeFreq
	Priority     float64 // always > 0 for emitted entries
}

// ContentItem is the read-only view of a content object that the assembler
// and filter operate on. The content layer owns the data; this package only
// reads it. Priority and ShowInSearch are nil when the underlying type does
// not carry the field.
type ContentItem struct {
	AbsoluteURL   string
	CreatedAt     time.Time
	LastEdited    time.Time
	RevisionCount int
	Viewable      bool
	Priority      *float64
	ShowInSearch  *bool
	TypeExcluded  bool
}

// SitemapItem is the capability a content type implements to opt into
// sitemap inclusion as an extra item.
type SitemapItem interface {
	SitemapItem() ContentItem
}

// ItemsOf maps a slice of capability-bearing values to their ContentItem views.
func ItemsOf[S SitemapItem](vals []S) []ContentItem {
	items := make([]ContentItem, 0, len(vals))
	for _, v := range vals {
		items = append(items, v.SitemapItem())
	}
	return items
}
