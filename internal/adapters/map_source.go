package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"repomap/internal/core"
	"repomap/internal/types"
)

// MapFileAdapter reads a map file from disk and hands the decoded
// document to the core loader. JSON is the native TAP-4 format; YAML
// is accepted for hand-authored files by extension.
type MapFileAdapter struct{}

func NewMapFileAdapter() MapFileAdapter {
	return MapFileAdapter{}
}

func (a MapFileAdapter) LoadMapFile(ctx context.Context, path string) (*core.MapFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("map file not found").
			WithCause(err)
	}
	doc, err := decodeMapDocument(path, data)
	if err != nil {
		return nil, err
	}
	return core.Load(ctx, doc, path)
}

func decodeMapDocument(path string, data []byte) (types.MapDocument, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to parse map yaml").
				WithCause(err)
		}
		return doc, nil
	default:
		// Number mode keeps thresholds as json.Number so the loader
		// can tell integers from floats.
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()
		var doc map[string]any
		if err := decoder.Decode(&doc); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to parse map json").
				WithCause(err)
		}
		return doc, nil
	}
}
