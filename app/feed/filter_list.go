package feed

import (
	"errors"
	"sync"
)

var (
	ErrFilterNotFound  = errors.New("filter not found")
	ErrDuplicateFilter = errors.New("filter already exists")
)

// FilterList is an ordered set of filters, deduplicated by Filter.Equal.
type FilterList struct {
	filters []*Filter
	mu      sync.RWMutex
}

func NewFilterList(filters ...*Filter) *FilterList {
	fl := &FilterList{
		filters: make([]*Filter, 0, len(filters)),
	}
	for _, f := range filters {
		fl.Add(f)
	}
	return fl
}

// Add appends f unless an equal filter is already present.
func (fl *FilterList) Add(f *Filter) bool {
	if f == nil {
		return false
	}

	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.indexOf(f) >= 0 {
		return false
	}
	fl.filters = append(fl.filters, f)
	return true
}

func (fl *FilterList) Remove(f *Filter) bool {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	i := fl.indexOf(f)
	if i < 0 {
		return false
	}
	fl.filters = append(fl.filters[:i], fl.filters[i+1:]...)
	return true
}

// Replace swaps old for replacement at the same position.
func (fl *FilterList) Replace(old, replacement *Filter) error {
	if replacement == nil {
		return errors.New("replacement filter is nil")
	}

	fl.mu.Lock()
	defer fl.mu.Unlock()

	i := fl.indexOf(old)
	if i < 0 {
		return ErrFilterNotFound
	}
	if j := fl.indexOf(replacement); j >= 0 && j != i {
		return ErrDuplicateFilter
	}
	fl.filters[i] = replacement
	return nil
}

func (fl *FilterList) Contains(f *Filter) bool {
	fl.mu.RLock()
	defer fl.mu.RUnlock()
	return fl.indexOf(f) >= 0
}

func (fl *FilterList) Len() int {
	fl.mu.RLock()
	defer fl.mu.RUnlock()
	return len(fl.filters)
}

func (fl *FilterList) Filters() []*Filter {
	fl.mu.RLock()
	defer fl.mu.RUnlock()

	filtersCopy := make([]*Filter, len(fl.filters))
	copy(filtersCopy, fl.filters)
	return filtersCopy
}

// Match returns the first filter that matches e.
func (fl *FilterList) Match(e Entry) (*Filter, bool) {
	fl.mu.RLock()
	defer fl.mu.RUnlock()

	for _, f := range fl.filters {
		if f.Matches(e) {
			return f, true
		}
	}
	return nil, false
}

func (fl *FilterList) Matches(e Entry) bool {
	_, ok := fl.Match(e)
	return ok
}

// indexOf expects fl.mu to be held.
func (fl *FilterList) indexOf(f *Filter) int {
	if f == nil {
		return -1
	}
	for i, existing := range fl.filters {
		if existing.Equal(f) {
			return i
		}
	}
	return -1
}
