package feed

import (
	"errors"
	"fmt"
	"regexp"
)

var ErrCompilation = errors.New("failed to compile filter pattern")

// CompilationError reports a pattern that could not be compiled. Field is
// "title" or "channel" and Pattern is the source text exactly as supplied.
type CompilationError struct {
	Field   string
	Pattern string
	Err     error
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("invalid %s pattern %q: %v", e.Field, e.Pattern, e.Err)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

func (e *CompilationError) Is(target error) bool {
	return target == ErrCompilation
}

// Filter suppresses entries whose title and author name both match. A Filter
// is immutable once built and safe for concurrent use.
type Filter struct {
	titlePattern   string
	channelPattern string
	title          *regexp.Regexp
	channel        *regexp.Regexp
}

// New compiles the title pattern and then the channel pattern. The channel
// pattern is not looked at when the title pattern is invalid.
func New(titlePattern, channelPattern string) (*Filter, error) {
	title, err := regexp.Compile(titlePattern)
	if err != nil {
		return nil, &CompilationError{Field: "title", Pattern: titlePattern, Err: err}
	}

	channel, err := regexp.Compile(channelPattern)
	if err != nil {
		return nil, &CompilationError{Field: "channel", Pattern: channelPattern, Err: err}
	}

	return &Filter{
		titlePattern:   titlePattern,
		channelPattern: channelPattern,
		title:          title,
		channel:        channel,
	}, nil
}

// MustNew is like New but panics if either pattern cannot be compiled.
func MustNew(titlePattern, channelPattern string) *Filter {
	f, err := New(titlePattern, channelPattern)
	if err != nil {
		panic(err)
	}
	return f
}

// Matches reports whether the title pattern matches somewhere in the entry
// title and the channel pattern matches somewhere in the author name.
func (f *Filter) Matches(e Entry) bool {
	return f.title.MatchString(e.Title) && f.channel.MatchString(e.Author.Name)
}

func (f *Filter) TitlePattern() string {
	return f.titlePattern
}

func (f *Filter) ChannelPattern() string {
	return f.channelPattern
}

// Equal compares source patterns only; compiled state is never inspected.
func (f *Filter) Equal(other *Filter) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.titlePattern == other.titlePattern && f.channelPattern == other.channelPattern
}

func (f *Filter) String() string {
	return fmt.Sprintf("title=%q channel=%q", f.titlePattern, f.channelPattern)
}
