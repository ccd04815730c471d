package sitemaps

import "time"

// PageSource supplies the published, live-stage pages to list in the
// sitemap. PageCache implements it; tests substitute their own.
type PageSource interface {
	PublishedPages() ([]ContentItem, error)
}

// Assembler builds the ordered entry list for one sitemap request: filtered
// pages first, then every registered extra type in registration order.
type Assembler struct {
	Pages  PageSource
	Extras *ExtraRegistry
	Filter Filter
}

// Build returns the sitemap entries for a request from requestHost,
// evaluated at now. Page items pass the full filter and get an estimated
// change frequency; extra items pass only the viewability and priority rules
// and carry their type's registered frequency. A source or fetch error
// aborts the whole build.
func (a *Assembler) Build(requestHost string, now time.Time) ([]Entry, error) {
	pages, err := a.Pages.PublishedPages()
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, item := range pages {
		if !a.Filter.IncludesPage(item, requestHost) {
			continue
		}
		revisions := item.RevisionCount
		if revisions < 1 {
			revisions = 1
		}
		entries = append(entries, Entry{
			URL:          item.AbsoluteURL,
			LastModified: item.LastEdited,
			ChangeFreq:   EstimateChangeFreq(item.CreatedAt, now, revisions),
			Priority:     priorityOf(item),
		})
	}

	for _, reg := range a.Extras.Registrations() {
		items, err := reg.Fetch()
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			if !a.Filter.IncludesExtra(item) {
				continue
			}
			entries = append(entries, Entry{
				URL:          item.AbsoluteURL,
				LastModified: item.LastEdited,
				ChangeFreq:   reg.ChangeFreq,
				Priority:     priorityOf(item),
			})
		}
	}
	return entries, nil
}

func priorityOf(item ContentItem) float64 {
	if item.Priority == nil {
		return 1.0
	}
	return *item.Priority
}
