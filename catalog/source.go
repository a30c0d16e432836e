package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed lenders.json
var defaultLenders []byte

// Source yields the lender records of one catalog feed.
type Source interface {
	Load(ctx context.Context) ([]LenderPatch, error)
	Name() string
}

// FileSource reads a JSON array of lender records from disk.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string {
	return "file:" + s.path
}

func (s *FileSource) Load(ctx context.Context) ([]LenderPatch, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return decodePatches(raw)
}

// EmbeddedSource serves the catalog bundled with the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Name() string {
	return "embedded"
}

func (EmbeddedSource) Load(ctx context.Context) ([]LenderPatch, error) {
	return decodePatches(defaultLenders)
}

func decodePatches(raw []byte) ([]LenderPatch, error) {
	var patches []LenderPatch
	if err := json.Unmarshal(raw, &patches); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return patches, nil
}
