package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	mapPath := strings.TrimSpace(req.MapPath)
	if mapPath == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("map file path is required")
	}
	mapFile, err := s.MapSource.LoadMapFile(ctx, mapPath)
	if err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{
		Source:          mapFile.Source(),
		RepositoryCount: len(mapFile.Repositories()),
		RuleCount:       len(mapFile.Rules()),
	}, nil
}
