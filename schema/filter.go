package schema

import (
	"fmt"
	"regexp"
)

// Filter selects which tables take part in generation. Explicit table names
// take precedence over the include pattern; exclusions always apply last.
type Filter struct {
	tables    map[string]bool
	exclude   map[string]bool
	includeRe *regexp.Regexp
	excludeRe *regexp.Regexp
}

// FilterOptions configures a Filter. All fields are optional.
type FilterOptions struct {
	// Tables lists exact table names to generate. When non-empty, only
	// these tables are considered and the Include pattern is ignored.
	Tables []string

	// ExcludeTables lists exact table names to skip.
	ExcludeTables []string

	// Include is a regular expression; when set, only matching table
	// names are generated. Ignored when Tables is non-empty.
	Include string

	// Exclude is a regular expression; matching table names are skipped.
	Exclude string
}

// NewFilter compiles the filter patterns. Invalid regular expressions are
// reported here rather than during the run.
func NewFilter(opts FilterOptions) (*Filter, error) {
	f := &Filter{}

	if len(opts.Tables) > 0 {
		f.tables = make(map[string]bool, len(opts.Tables))
		for _, name := range opts.Tables {
			f.tables[name] = true
		}
	}

	if len(opts.ExcludeTables) > 0 {
		f.exclude = make(map[string]bool, len(opts.ExcludeTables))
		for _, name := range opts.ExcludeTables {
			f.exclude[name] = true
		}
	}

	if opts.Include != "" {
		re, err := regexp.Compile(opts.Include)
		if err != nil {
			return nil, fmt.Errorf("invalid include pattern: %w", err)
		}
		f.includeRe = re
	}

	if opts.Exclude != "" {
		re, err := regexp.Compile(opts.Exclude)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern: %w", err)
		}
		f.excludeRe = re
	}

	return f, nil
}

// Match reports whether a table name passes the filter.
func (f *Filter) Match(name string) bool {
	if f.tables != nil {
		if !f.tables[name] {
			return false
		}
	} else if f.includeRe != nil && !f.includeRe.MatchString(name) {
		return false
	}

	if f.exclude[name] {
		return false
	}
	if f.excludeRe != nil && f.excludeRe.MatchString(name) {
		return false
	}
	return true
}

// Apply returns the table names that pass the filter, preserving order.
func (f *Filter) Apply(names []string) []string {
	kept := make([]string, 0, len(names))
	for _, name := range names {
		if f.Match(name) {
			kept = append(kept, name)
		}
	}
	return kept
}
