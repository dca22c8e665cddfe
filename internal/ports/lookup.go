package ports

import (
	"context"

	"repomap/internal/types"
)

type IndexLookupPort interface {
	// FindProject probes one index URL for a project's simple-API page.
	// The second return is false when the index has no such project.
	FindProject(ctx context.Context, indexURL string, project string) (types.IndexPage, bool, error)
}
