package cfg

type Cfg struct {
	// Rule configuration
	RulesDir string
	Title    string
	Channel  string

	// Output
	ShowSuppressed bool

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}

// HasInlineRule reports whether a rule was given on the command line.
func (c *Cfg) HasInlineRule() bool {
	return c.Title != "" || c.Channel != ""
}
