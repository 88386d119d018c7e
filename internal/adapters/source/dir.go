package source

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/3-lines-studio/pagesmith/internal/adapters/fs"
)

const (
	SiteFile      = "site.json"
	LocationsFile = "locations.json"
	LocationsDir  = "locations"
)

// DirSource reads a data directory laid out as:
//
//	site.json          the site record
//	locations.json     one document or an array of documents
//	locations/*.json   one document or an array per file
type DirSource struct {
	dir string
	fs  fs.FileSystem
}

func NewDirSource(dir string, fsys fs.FileSystem) *DirSource {
	return &DirSource{dir: dir, fs: fsys}
}

func (s *DirSource) Site(ctx context.Context) ([]byte, error) {
	path := filepath.Join(s.dir, SiteFile)
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read site record: %w", err)
	}
	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return nil, fmt.Errorf("read site record: %s is not a JSON object", path)
	}
	return data, nil
}

func (s *DirSource) Documents(ctx context.Context) ([][]byte, error) {
	var files []string

	single := filepath.Join(s.dir, LocationsFile)
	if s.fs.FileExists(single) {
		files = append(files, single)
	}

	entries, err := s.fs.ReadDir(filepath.Join(s.dir, LocationsDir))
	if err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	for _, name := range names {
		files = append(files, filepath.Join(s.dir, LocationsDir, name))
	}

	var docs [][]byte
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := s.fs.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		split, err := splitDocuments(data)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		docs = append(docs, split...)
	}
	return docs, nil
}

func (s *DirSource) Document(ctx context.Context, id string) ([]byte, error) {
	return lookup(ctx, s, id)
}

func (s *DirSource) Close() error {
	return nil
}

// splitDocuments accepts a single JSON object or an array of objects.
func splitDocuments(data []byte) ([][]byte, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}

	root := gjson.ParseBytes(data)
	switch {
	case root.IsObject():
		return [][]byte{[]byte(root.Raw)}, nil
	case root.IsArray():
		var docs [][]byte
		for i, el := range root.Array() {
			if !el.IsObject() {
				return nil, fmt.Errorf("element %d is not a JSON object", i)
			}
			docs = append(docs, []byte(el.Raw))
		}
		return docs, nil
	}
	return nil, errors.New("expected a JSON object or array")
}
