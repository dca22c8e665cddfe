package types

// MapDocument is the raw, untrusted parse of a map file: the decoded
// JSON or YAML document before any schema validation has run. Values
// are whatever the decoder produced (maps, slices, strings, numbers).
type MapDocument map[string]any

// MappingRule is one validated entry of the map file's ordered mapping
// list. It routes project names matching any of Paths to Repositories,
// in declared order.
type MappingRule struct {
	// Paths are glob-like patterns (word characters, '/', '*') matched
	// case-sensitively against project names. Unique within the rule.
	Paths []string

	// Repositories are names declared in the map file's top-level
	// repositories table. Unique within the rule, consulted in order.
	Repositories []string

	// Terminating ends the search when this rule matches.
	Terminating bool

	// Threshold is the number of repositories whose index contents must
	// agree for a match to count. Always in [1, len(Repositories)].
	Threshold int
}

// IndexGroup is one repository's ordered list of index URLs, emitted as
// a single unit during resolution. The empty group is the exhaustion
// sentinel: no further candidates exist.
type IndexGroup []string

// IsSentinel reports whether the group is the end-of-search marker.
func (g IndexGroup) IsSentinel() bool {
	return len(g) == 0
}
