package core

import (
	"context"
	"encoding/json"
	"regexp"
	"sort"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"repomap/internal/types"
)

// MapFile is the validated, immutable form of a TAP-4 style map file.
// It is only ever built by Load; nothing mutates it afterwards, so a
// single value is safe to share across concurrent resolutions.
type MapFile struct {
	source       string
	repositories map[string]types.IndexGroup
	rules        []types.MappingRule
}

var (
	// URLs must point at HTTPS servers. Prefix match, like the schema.
	repositoryURLPattern = regexp.MustCompile(`^https://.+`)

	// Paths are restricted to word characters, '/' and '*'. Prefix
	// match: the first character decides validity.
	pathPattern = regexp.MustCompile(`^[\w/*]+`)
)

// Load validates an untrusted map document and returns its immutable
// in-memory form. Validation is fail-fast in document order: the first
// violated constraint aborts the whole load with a *types.ConfigError
// and no partial MapFile is ever returned. source identifies the
// document in error reasons, usually its file path.
func Load(ctx context.Context, doc types.MapDocument, source string) (*MapFile, error) {
	repositories, err := loadRepositories(doc, source)
	if err != nil {
		return nil, err
	}
	rules, err := loadRules(doc, repositories, source)
	if err != nil {
		return nil, err
	}

	// Threshold bounds guarantee at least one repository per rule.
	for _, rule := range rules {
		assert.NotEmpty(ctx, rule.Repositories[0], "validated rule references a repository")
	}

	log.Ctx(ctx).Debug().
		Str("source", source).
		Int("repositories", len(repositories)).
		Int("rules", len(rules)).
		Msg("map file loaded")
	return &MapFile{
		source:       source,
		repositories: repositories,
		rules:        rules,
	}, nil
}

func loadRepositories(doc types.MapDocument, source string) (map[string]types.IndexGroup, error) {
	raw, ok := doc["repositories"].(map[string]any)
	if !ok || len(raw) == 0 {
		return nil, types.NewConfigError(types.ErrKindMissingRepositories, source,
			"map file missing the 'repositories' key")
	}

	// Deterministic order for fail-fast diagnostics.
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	repositories := make(map[string]types.IndexGroup, len(raw))
	for _, name := range names {
		urls, ok := raw[name].([]any)
		if !ok {
			return nil, types.NewConfigError(types.ErrKindRepositoryNotList, source,
				"for repository %s, urls not a list: %v", name, raw[name])
		}
		group := make(types.IndexGroup, 0, len(urls))
		for _, url := range urls {
			s, ok := url.(string)
			if !ok || !repositoryURLPattern.MatchString(s) {
				return nil, types.NewConfigError(types.ErrKindInvalidRepositoryURL, source,
					"for repository %s, a url not valid: %v", name, url)
			}
			group = append(group, s)
		}
		// An empty URL list would make the repository's group collide
		// with the exhaustion sentinel.
		if len(group) == 0 {
			return nil, types.NewConfigError(types.ErrKindInvalidRepositoryURL, source,
				"for repository %s, urls empty", name)
		}
		repositories[name] = group
	}
	return repositories, nil
}

func loadRules(doc types.MapDocument, repositories map[string]types.IndexGroup, source string) ([]types.MappingRule, error) {
	raw, ok := doc["mapping"]
	if !ok || raw == nil {
		return nil, types.NewConfigError(types.ErrKindMissingMapping, source,
			"map file missing the 'mapping' key")
	}
	entries, ok := raw.([]any)
	if !ok {
		return nil, types.NewConfigError(types.ErrKindMappingNotList, source,
			"mappings not a list: %v", raw)
	}
	if len(entries) == 0 {
		return nil, types.NewConfigError(types.ErrKindMissingMapping, source,
			"map file missing the 'mapping' key")
	}

	rules := make([]types.MappingRule, 0, len(entries))
	for _, raw := range entries {
		entry, ok := raw.(map[string]any)
		if !ok {
			return nil, types.NewConfigError(types.ErrKindMappingEntryNotObject, source,
				"in mappings, not an object: %v", raw)
		}
		rule, err := loadRule(entry, repositories, source)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func loadRule(entry map[string]any, repositories map[string]types.IndexGroup, source string) (types.MappingRule, error) {
	paths, err := loadRulePaths(entry, source)
	if err != nil {
		return types.MappingRule{}, err
	}
	refs, err := loadRuleRepositories(entry, repositories, source)
	if err != nil {
		return types.MappingRule{}, err
	}

	terminating := true
	if raw, ok := entry["terminating"]; ok {
		terminating, ok = raw.(bool)
		if !ok {
			return types.MappingRule{}, types.NewConfigError(types.ErrKindInvalidTerminatingFlag, source,
				"terminating not boolean: %v", raw)
		}
	}

	threshold := len(refs)
	if raw, ok := entry["threshold"]; ok {
		threshold, ok = intValue(raw)
		if !ok {
			return types.MappingRule{}, types.NewConfigError(types.ErrKindInvalidThreshold, source,
				"threshold not valid: %v", raw)
		}
	}
	if threshold < 1 || threshold > len(refs) {
		return types.MappingRule{}, types.NewConfigError(types.ErrKindInvalidThreshold, source,
			"threshold not valid: %d", threshold)
	}

	return types.MappingRule{
		Paths:        paths,
		Repositories: refs,
		Terminating:  terminating,
		Threshold:    threshold,
	}, nil
}

func loadRulePaths(entry map[string]any, source string) ([]string, error) {
	raw, ok := entry["paths"].([]any)
	if !ok {
		return nil, types.NewConfigError(types.ErrKindPathsNotList, source,
			"paths not a list: %v", entry["paths"])
	}
	paths := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, value := range raw {
		path, ok := value.(string)
		if !ok || !pathPattern.MatchString(path) {
			return nil, types.NewConfigError(types.ErrKindInvalidPath, source,
				"for paths %v, a path not valid: %v", raw, value)
		}
		paths = append(paths, path)
		seen[path] = struct{}{}
	}
	// Uniqueness is literal, glob semantics are not considered.
	if len(seen) < len(paths) {
		return nil, types.NewConfigError(types.ErrKindDuplicatePaths, source,
			"paths not unique: %v", paths)
	}
	return paths, nil
}

func loadRuleRepositories(entry map[string]any, repositories map[string]types.IndexGroup, source string) ([]string, error) {
	raw, ok := entry["repositories"].([]any)
	if !ok {
		return nil, types.NewConfigError(types.ErrKindRepositoriesNotList, source,
			"repositories not a list: %v", entry["repositories"])
	}
	refs := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, value := range raw {
		name, ok := value.(string)
		if !ok {
			return nil, types.NewConfigError(types.ErrKindUnknownRepositoryReference, source,
				"for repositories %v, a repository not valid: %v", raw, value)
		}
		if _, declared := repositories[name]; !declared {
			return nil, types.NewConfigError(types.ErrKindUnknownRepositoryReference, source,
				"for repositories %v, a repository not valid: %s", raw, name)
		}
		refs = append(refs, name)
		seen[name] = struct{}{}
	}
	if len(seen) < len(refs) {
		return nil, types.NewConfigError(types.ErrKindDuplicateRepositoryReference, source,
			"repositories not unique: %v", refs)
	}
	return refs, nil
}

// intValue coerces the decoder-specific integer representations: YAML
// hands back int, JSON in number mode hands back json.Number. Floats
// and booleans are rejected.
func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

// Source returns the document reference the map file was loaded from.
func (m *MapFile) Source() string {
	return m.source
}

// Repositories returns a copy of the repository table.
func (m *MapFile) Repositories() map[string]types.IndexGroup {
	out := make(map[string]types.IndexGroup, len(m.repositories))
	for name, group := range m.repositories {
		out[name] = append(types.IndexGroup(nil), group...)
	}
	return out
}

// Rules returns a copy of the ordered mapping rules.
func (m *MapFile) Rules() []types.MappingRule {
	out := make([]types.MappingRule, len(m.rules))
	for i, rule := range m.rules {
		out[i] = types.MappingRule{
			Paths:        append([]string(nil), rule.Paths...),
			Repositories: append([]string(nil), rule.Repositories...),
			Terminating:  rule.Terminating,
			Threshold:    rule.Threshold,
		}
	}
	return out
}

// RepositoryURLs returns a copy of one repository's index URL list.
func (m *MapFile) RepositoryURLs(name string) (types.IndexGroup, bool) {
	group, ok := m.repositories[name]
	if !ok {
		return nil, false
	}
	return append(types.IndexGroup(nil), group...), true
}
