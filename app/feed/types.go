package feed

// Entry types

type Author struct {
	Name string `json:"name"`
}

type Entry struct {
	ID     string `json:"id,omitempty"`
	Title  string `json:"title"`
	Link   string `json:"link,omitempty"`
	Author Author `json:"author"`

	IsFiltered   bool   `json:"is_filtered,omitempty"`
	FilterReason string `json:"filter_reason,omitempty"`
}

// Rule configuration types

type RuleSet struct {
	Name    string       `yaml:"-"` // Derived from filename (without .yml extension)
	Enabled *bool        `yaml:"enabled"`
	Rules   []RuleConfig `yaml:"rules"`

	Filters []*Filter `yaml:"-"`
}

type RuleConfig struct {
	Title   string `yaml:"title"`
	Channel string `yaml:"channel"`
}

// IsEnabled reports whether the rule set takes part in filtering. Omitting
// "enabled" in the file means enabled.
func (rs *RuleSet) IsEnabled() bool {
	return rs.Enabled == nil || *rs.Enabled
}
