package core

import (
	"context"
	"iter"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"repomap/internal/types"
)

// Resolution is a lazy, pull-based walk of the map file's rules for
// one project name. Each call to MapFile.Resolve starts a fresh,
// independent walk; abandoning one early needs no cleanup. A
// Resolution holds no external resources and must not be shared
// between goroutines, though the MapFile behind it may be.
type Resolution struct {
	mapFile *MapFile
	project string
	logger  *zerolog.Logger

	ruleIdx int
	repoIdx int
	// emitting is the matched rule currently having its repository
	// groups produced, nil while scanning for the next match.
	emitting *types.MappingRule
	done     bool
}

// Resolve starts a new resolution of project against the mapping
// rules. Per-rule match tracing goes to the logger carried by ctx.
func (m *MapFile) Resolve(ctx context.Context, project string) *Resolution {
	return &Resolution{
		mapFile: m,
		project: project,
		logger:  log.Ctx(ctx),
	}
}

// Next produces the next index group in priority order. It returns
// false once the sequence is exhausted: after the groups of a
// terminating matched rule, or after the empty sentinel group that
// follows the last rule. A matching rule with threshold above one
// fails with *types.ErrThresholdNotSupported at the point its groups
// would have been produced.
func (r *Resolution) Next() (types.IndexGroup, bool, error) {
	if r.done {
		return nil, false, nil
	}

	for {
		if r.emitting != nil {
			if r.repoIdx < len(r.emitting.Repositories) {
				name := r.emitting.Repositories[r.repoIdx]
				r.repoIdx++
				group, _ := r.mapFile.RepositoryURLs(name)
				r.logger.Debug().Str("repository", name).Strs("indices", group).Msg("emitting index group")
				return group, true, nil
			}
			if r.emitting.Terminating {
				r.logger.Debug().Str("project", r.project).Msg("terminating rule matched, search ends")
				r.done = true
				return nil, false, nil
			}
			r.emitting = nil
		}

		if r.ruleIdx >= len(r.mapFile.rules) {
			// Exhausted: one empty sentinel group, then the end.
			r.logger.Debug().Str("project", r.project).Msg("no further candidates")
			r.done = true
			return types.IndexGroup{}, true, nil
		}

		rule := r.mapFile.rules[r.ruleIdx]
		r.ruleIdx++
		if !r.matches(rule) {
			continue
		}

		// Quorum checking across multiple indices is a declared gap:
		// surface it lazily, only when a matching rule demands it.
		if rule.Threshold > 1 {
			r.done = true
			return nil, false, &types.ErrThresholdNotSupported{
				Threshold:    rule.Threshold,
				Repositories: rule.Repositories,
			}
		}

		r.emitting = &rule
		r.repoIdx = 0
	}
}

func (r *Resolution) matches(rule types.MappingRule) bool {
	for _, path := range rule.Paths {
		// Pattern matching is case-sensitive.
		if matchGlob(path, r.project) {
			r.logger.Debug().Str("project", r.project).Str("path", path).Msg("project matches path")
			return true
		}
	}
	r.logger.Debug().Str("project", r.project).Msg("project does not match paths, moving on")
	return false
}

// Groups adapts the resolution for range-over-func consumption. The
// yielded error is non-nil exactly once, when the walk hits an
// unsupported threshold, and ends the sequence.
func (r *Resolution) Groups() iter.Seq2[types.IndexGroup, error] {
	return func(yield func(types.IndexGroup, error) bool) {
		for {
			group, ok, err := r.Next()
			if err != nil {
				yield(nil, err)
				return
			}
			if !ok {
				return
			}
			if !yield(group, nil) {
				return
			}
		}
	}
}
