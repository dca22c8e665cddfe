package ports

import (
	"context"

	"repomap/internal/core"
)

type MapSourcePort interface {
	LoadMapFile(ctx context.Context, path string) (*core.MapFile, error)
}
