package app

import (
	"context"
	"errors"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"repomap/internal/types"
)

func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	mapPath := strings.TrimSpace(req.MapPath)
	if mapPath == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("map file path is required")
	}
	project := strings.TrimSpace(req.Project)
	if project == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("project name is required")
	}

	mapFile, err := s.MapSource.LoadMapFile(ctx, mapPath)
	if err != nil {
		return ResolveResult{}, err
	}

	result := ResolveResult{Project: project}
	for group, err := range mapFile.Resolve(ctx, project).Groups() {
		if err != nil {
			var unsupported *types.ErrThresholdNotSupported
			if errors.As(err, &unsupported) {
				return ResolveResult{}, errbuilder.New().
					WithCode(errbuilder.CodeUnimplemented).
					WithMsg("mapping requires a quorum of repositories").
					WithCause(err)
			}
			return ResolveResult{}, err
		}
		result.Groups = append(result.Groups, group)
		if group.IsSentinel() {
			result.Exhausted = true
		}
	}
	return result, nil
}
