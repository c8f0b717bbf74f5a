package feed

import (
	"errors"
	"sync"
	"testing"
)

func TestFilterList_AddDeduplicates(t *testing.T) {
	list := NewFilterList()

	if !list.Add(MustNew("Foo", "Bar")) {
		t.Error("Expected first Add to succeed")
	}
	if list.Add(MustNew("Foo", "Bar")) {
		t.Error("Expected Add of an equal filter to be rejected")
	}
	if list.Add(nil) {
		t.Error("Expected Add(nil) to be rejected")
	}
	if list.Len() != 1 {
		t.Errorf("Expected 1 filter, got %d", list.Len())
	}
}

func TestFilterList_NewKeepsOrder(t *testing.T) {
	list := NewFilterList(
		MustNew("a", ""),
		MustNew("b", ""),
		MustNew("a", ""),
		MustNew("c", ""),
	)

	filters := list.Filters()
	expected := []string{"a", "b", "c"}
	if len(filters) != len(expected) {
		t.Fatalf("Expected %d filters, got %d", len(expected), len(filters))
	}
	for i, f := range filters {
		if f.TitlePattern() != expected[i] {
			t.Errorf("Expected filter %d to be '%s', got '%s'", i, expected[i], f.TitlePattern())
		}
	}

	// Mutating the copy must not affect the list.
	filters[0] = nil
	if list.Filters()[0] == nil {
		t.Error("Expected Filters to return a copy")
	}
}

func TestFilterList_Remove(t *testing.T) {
	list := NewFilterList(MustNew("a", ""), MustNew("b", ""))

	if !list.Remove(MustNew("a", "")) {
		t.Error("Expected Remove of an equal filter to succeed")
	}
	if list.Remove(MustNew("a", "")) {
		t.Error("Expected second Remove to report nothing removed")
	}
	if list.Contains(MustNew("a", "")) {
		t.Error("Expected removed filter to be gone")
	}
	if !list.Contains(MustNew("b", "")) {
		t.Error("Expected remaining filter to stay")
	}
}

func TestFilterList_Replace(t *testing.T) {
	list := NewFilterList(MustNew("a", ""), MustNew("b", ""), MustNew("c", ""))

	if err := list.Replace(MustNew("b", ""), MustNew("b2", "x")); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got := list.Filters()[1]; got.TitlePattern() != "b2" || got.ChannelPattern() != "x" {
		t.Errorf("Expected replacement at index 1, got %v", got)
	}

	if err := list.Replace(MustNew("missing", ""), MustNew("d", "")); !errors.Is(err, ErrFilterNotFound) {
		t.Errorf("Expected ErrFilterNotFound, got: %v", err)
	}
	if err := list.Replace(MustNew("a", ""), MustNew("c", "")); !errors.Is(err, ErrDuplicateFilter) {
		t.Errorf("Expected ErrDuplicateFilter, got: %v", err)
	}
	// Replacing a filter with an equal one is a no-op, not a duplicate.
	if err := list.Replace(MustNew("a", ""), MustNew("a", "")); err != nil {
		t.Errorf("Expected no error replacing a filter with itself, got: %v", err)
	}
	if list.Len() != 3 {
		t.Errorf("Expected 3 filters, got %d", list.Len())
	}
}

func TestFilterList_Match(t *testing.T) {
	first := MustNew("News", "")
	second := MustNew("", "Spam")
	list := NewFilterList(first, second)

	entry := Entry{Title: "Daily News", Author: Author{Name: "Spam Channel"}}
	matched, ok := list.Match(entry)
	if !ok {
		t.Fatal("Expected entry to match")
	}
	if matched != first {
		t.Errorf("Expected first matching filter, got %v", matched)
	}

	if list.Matches(Entry{Title: "Weather", Author: Author{Name: "Good Channel"}}) {
		t.Error("Expected entry matching no filter to pass")
	}

	empty := NewFilterList()
	if empty.Matches(entry) {
		t.Error("Expected empty list to match nothing")
	}
}

func TestFilterList_ConcurrentAccess(t *testing.T) {
	list := NewFilterList(MustNew("Foo", ""))
	entry := Entry{Title: "Foo"}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			list.Matches(entry)
		}()
		go func(i int) {
			defer wg.Done()
			list.Add(MustNew("Bar", string(rune('a'+i))))
		}(i)
	}
	wg.Wait()

	if list.Len() != 21 {
		t.Errorf("Expected 21 filters, got %d", list.Len())
	}
}
