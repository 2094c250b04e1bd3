package playbook

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const taskMarker = "- name:"

// DefaultRemovePatterns match the names of debug tasks that are dropped from playbooks.
var DefaultRemovePatterns = []string{
	`List all DNS records for this domain \(debug\)`,
	`Output all DNS records for this domain \(debug\)`,
	`No DNS records fetched \(debug fallback\)`,
	`Optionally show full DNS records JSON when debug_curl is true`,
	`Display current DNS records for this domain`,
	`Debug page rules counts`,
	`Show AWX PATCH payload \(dry-run\)`,
	`Debug page rules apply results`,
}

// Category retitles tasks whose name matches Pattern.
type Category struct {
	Pattern string
	Title   string
}

// DefaultCategories map verbose task names to categorized titles.
var DefaultCategories = []Category{
	{Pattern: `Output zone settings result`, Title: "🌐 DOMAIN LEVEL │ Zone Settings Applied"},
	{Pattern: `Display page rules API warning if applicable`, Title: "⚠ DOMAIN LEVEL │ Page Rules Warning"},
	{Pattern: `Warn AWX survey update failed`, Title: "⚠ PLATFORM LEVEL │ AWX Survey Update Failed"},
	{Pattern: `Critical info summary \(concise\)`, Title: "📋 DOMAIN LEVEL │ Record Operation Summary"},
}

type category struct {
	re    *regexp.Regexp
	title string
}

// Cleaner removes debug tasks from playbook text.
type Cleaner struct {
	removePatterns []string
	categories     []Category
	categorize     bool
	validate       bool

	remove   []*regexp.Regexp
	retitles []category
}

// Option configures a Cleaner.
type Option func(*Cleaner)

// WithRemovePatterns replaces the default removal patterns.
func WithRemovePatterns(patterns ...string) Option {
	return func(c *Cleaner) {
		c.removePatterns = patterns
	}
}

// WithExtraRemovePatterns adds removal patterns to the configured ones.
func WithExtraRemovePatterns(patterns ...string) Option {
	return func(c *Cleaner) {
		c.removePatterns = append(append([]string{}, c.removePatterns...), patterns...)
	}
}

// WithCategories enables retitling of kept tasks. Without arguments DefaultCategories is used.
func WithCategories(categories ...Category) Option {
	return func(c *Cleaner) {
		c.categorize = true
		if len(categories) > 0 {
			c.categories = categories
		}
	}
}

// WithValidation makes CleanFile refuse to write output that no longer parses as YAML.
func WithValidation() Option {
	return func(c *Cleaner) {
		c.validate = true
	}
}

// NewCleaner compiles the configured patterns.
func NewCleaner(opts ...Option) (*Cleaner, error) {
	c := &Cleaner{
		removePatterns: DefaultRemovePatterns,
		categories:     DefaultCategories,
	}
	for _, opt := range opts {
		opt(c)
	}

	for _, p := range c.removePatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid remove pattern %q: %w", p, err)
		}
		c.remove = append(c.remove, re)
	}
	if c.categorize {
		for _, cat := range c.categories {
			re, err := regexp.Compile(cat.Pattern)
			if err != nil {
				return nil, fmt.Errorf("invalid category pattern %q: %w", cat.Pattern, err)
			}
			c.retitles = append(c.retitles, category{re: re, title: cat.Title})
		}
	}
	return c, nil
}

// Result describes the outcome of a Clean call.
type Result struct {
	Content      string            `json:"-" yaml:"-"`
	Removed      []string          `json:"removed" yaml:"removed"`
	Renamed      map[string]string `json:"renamed,omitempty" yaml:"renamed,omitempty"`
	LinesDropped int               `json:"linesDropped" yaml:"linesDropped"`
}

// Changed reports whether cleaning modified the content.
func (r Result) Changed() bool {
	return r.LinesDropped > 0 || len(r.Renamed) > 0
}

// Clean drops every task whose name matches a removal pattern, together with
// the lines of its body. A task body ends at the next "- name:" line or at the
// next list item that carries no name.
func (c *Cleaner) Clean(content string) Result {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	res := Result{}
	skipping := false

	for _, line := range lines {
		if name, ok := taskName(line); ok && c.shouldRemove(name) {
			res.Removed = append(res.Removed, name)
			res.LinesDropped++
			skipping = true
			continue
		}

		if skipping {
			if !isBlockBoundary(line) {
				res.LinesDropped++
				continue
			}
			skipping = false
		}

		if c.categorize {
			line = c.retitle(line, &res)
		}
		out = append(out, line)
	}

	res.Content = strings.Join(out, "\n")
	return res
}

func (c *Cleaner) shouldRemove(name string) bool {
	for _, re := range c.remove {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

func (c *Cleaner) retitle(line string, res *Result) string {
	name, ok := taskName(line)
	if !ok {
		return line
	}
	for _, cat := range c.retitles {
		if !cat.re.MatchString(name) {
			continue
		}
		idx := strings.Index(line, taskMarker)
		if res.Renamed == nil {
			res.Renamed = map[string]string{}
		}
		res.Renamed[name] = cat.title
		return line[:idx] + taskMarker + " " + cat.title
	}
	return line
}

// taskName returns the text between the first task marker and the next one, trimmed.
func taskName(line string) (string, bool) {
	_, rest, ok := strings.Cut(line, taskMarker)
	if !ok {
		return "", false
	}
	name, _, _ := strings.Cut(rest, taskMarker)
	return strings.TrimSpace(name), true
}

func isBlockBoundary(line string) bool {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, taskMarker) {
		return true
	}
	return strings.HasPrefix(trimmed, "-") && !strings.Contains(line, "name:") && utf8.RuneCountInString(trimmed) > 2
}
