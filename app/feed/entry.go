package feed

import (
	"cmp"
	"strings"

	"github.com/mmcdole/gofeed"
)

// EntryFromItem converts an already parsed gofeed item into an Entry.
func EntryFromItem(item *gofeed.Item) Entry {
	if item == nil {
		return Entry{}
	}

	return Entry{
		ID:     cmp.Or(item.GUID, item.Link),
		Title:  strings.TrimSpace(item.Title),
		Link:   item.Link,
		Author: Author{Name: extractAuthorName(item.Authors, item.Author)},
	}
}

// EntriesFromFeed converts every item of f. Items without an author of their
// own inherit the feed-level author, which for video feeds is the channel.
func EntriesFromFeed(f *gofeed.Feed) []Entry {
	if f == nil {
		return nil
	}

	feedAuthor := extractAuthorName(f.Authors, f.Author)

	entries := make([]Entry, 0, len(f.Items))
	for _, item := range f.Items {
		if item == nil {
			continue
		}
		entry := EntryFromItem(item)
		entry.Author.Name = cmp.Or(entry.Author.Name, feedAuthor)
		entries = append(entries, entry)
	}
	return entries
}

func extractAuthorName(authors []*gofeed.Person, author *gofeed.Person) string {
	for _, person := range authors {
		if name := formatAuthor(person); name != "" {
			return name
		}
	}
	return formatAuthor(author)
}

func formatAuthor(person *gofeed.Person) string {
	if person == nil {
		return ""
	}
	return cmp.Or(strings.TrimSpace(person.Name), strings.TrimSpace(person.Email))
}
