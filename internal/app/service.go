package app

import (
	"repomap/internal/adapters"
	"repomap/internal/ports"
)

type Service struct {
	MapSource   ports.MapSourcePort
	IndexLookup ports.IndexLookupPort
}

func NewService() Service {
	return Service{
		MapSource:   adapters.NewMapFileAdapter(),
		IndexLookup: adapters.NewIndexLookupAdapter(),
	}
}
