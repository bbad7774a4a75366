package tracker

import (
	"fmt"
	"strings"
)

// Instance is one configured Jira deployment.
type Instance struct {
	Title     string `yaml:"title" mapstructure:"title"`
	URL       string `yaml:"url" mapstructure:"url"`
	IsDefault bool   `yaml:"is_default" mapstructure:"is_default"`
}

// Collection is an ordered list of instances. Order is significant: it is
// the tie-break order for default resolution and the numbering used for
// untitled instances.
type Collection []Instance

// Label returns the title when set, otherwise the URL.
func (i Instance) Label() string {
	if i.Title != "" {
		return i.Title
	}
	return i.URL
}

// DisplayTitles returns the titles shown in the instance chooser, in order.
// Untitled entries are numbered "Instance 0", "Instance 1", ... counting only
// untitled entries.
func (c Collection) DisplayTitles() []string {
	titles := make([]string, len(c))
	n := 0
	for i, inst := range c {
		if inst.Title != "" {
			titles[i] = inst.Title
			continue
		}
		titles[i] = fmt.Sprintf("Instance %d", n)
		n++
	}
	return titles
}

// Filter returns the indices of entries whose display title or URL contains
// query, ignoring case. An empty query matches every entry.
func (c Collection) Filter(query string) []int {
	q := strings.ToLower(query)
	titles := c.DisplayTitles()

	var matches []int
	for i, inst := range c {
		if strings.Contains(strings.ToLower(titles[i]), q) ||
			strings.Contains(strings.ToLower(inst.URL), q) {
			matches = append(matches, i)
		}
	}
	return matches
}

// DefaultCount returns how many entries carry the default flag.
func (c Collection) DefaultCount() int {
	n := 0
	for _, inst := range c {
		if inst.IsDefault {
			n++
		}
	}
	return n
}

// WithDefault returns a copy of c where only entry idx is flagged default.
func (c Collection) WithDefault(idx int) Collection {
	out := make(Collection, len(c))
	for i, inst := range c {
		inst.IsDefault = i == idx
		out[i] = inst
	}
	return out
}
