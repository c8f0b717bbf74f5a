package feed

import (
	"fmt"
)

type Filterer struct{}

func NewFilterer() *Filterer {
	return &Filterer{}
}

func (f *Filterer) Run(entries []Entry, list *FilterList) []Entry {
	filtered := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		isFiltered, filterReason := f.applyFilters(entry, list)
		entry.IsFiltered = isFiltered
		entry.FilterReason = filterReason
		filtered = append(filtered, entry)
	}

	return filtered
}

// Partition splits entries into the ones to display and the ones suppressed
// by at least one filter in list. Both results keep the input order.
func (f *Filterer) Partition(entries []Entry, list *FilterList) (shown, suppressed []Entry) {
	for _, entry := range f.Run(entries, list) {
		if entry.IsFiltered {
			suppressed = append(suppressed, entry)
		} else {
			shown = append(shown, entry)
		}
	}
	return shown, suppressed
}

func (f *Filterer) applyFilters(entry Entry, list *FilterList) (bool, string) {
	if list == nil {
		return false, ""
	}
	filter, ok := list.Match(entry)
	if !ok {
		return false, ""
	}
	return true, fmt.Sprintf("Excluded by filter: %s", filter)
}
