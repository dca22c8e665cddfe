package app

import (
	"context"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
)

// Lookup resolves a project name against the map file and probes the
// resulting index groups in priority order. The next group is only
// consulted when the previous one produced no page; the empty sentinel
// ends the search as "not found anywhere".
func (s Service) Lookup(ctx context.Context, req LookupRequest) (LookupResult, error) {
	mapPath := strings.TrimSpace(req.MapPath)
	if mapPath == "" {
		return LookupResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("map file path is required")
	}
	project := strings.TrimSpace(req.Project)
	if project == "" {
		return LookupResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("project name is required")
	}

	mapFile, err := s.MapSource.LoadMapFile(ctx, mapPath)
	if err != nil {
		return LookupResult{}, err
	}

	result := LookupResult{Project: project}
	var probeErr error
	resolution := mapFile.Resolve(ctx, project)
	for {
		group, ok, err := resolution.Next()
		if err != nil {
			return LookupResult{}, errbuilder.New().
				WithCode(errbuilder.CodeUnimplemented).
				WithMsg("mapping requires a quorum of repositories").
				WithCause(err)
		}
		if !ok || group.IsSentinel() {
			break
		}
		assert.NotEmpty(ctx, group[0], "emitted index group carries a url")
		for _, indexURL := range group {
			page, found, err := s.IndexLookup.FindProject(ctx, indexURL, project)
			if err != nil {
				// Remember the first failure but keep probing lower
				// priority indices.
				if probeErr == nil {
					probeErr = err
				}
				log.Ctx(ctx).Warn().Str("index", indexURL).Err(err).Msg("index probe failed")
				continue
			}
			if !found {
				continue
			}
			result.Found = true
			result.IndexURL = page.IndexURL
			result.Files = page.Files
			return result, nil
		}
	}

	if probeErr != nil {
		return LookupResult{}, probeErr
	}
	return result, nil
}
