// Package source reads raw site and entity documents from where a project
// stores them.
package source

import (
	"context"
	"fmt"

	"github.com/3-lines-studio/pagesmith/internal/core"
	"github.com/3-lines-studio/pagesmith/internal/stream"
)

// findByID returns the first document whose id equals id.
func findByID(docs [][]byte, id string) ([]byte, error) {
	for _, doc := range docs {
		if stream.DocumentID(doc) == id {
			return doc, nil
		}
	}
	return nil, fmt.Errorf("document %q: %w", id, core.ErrDocumentNotFound)
}

type lister interface {
	Documents(ctx context.Context) ([][]byte, error)
}

func lookup(ctx context.Context, l lister, id string) ([]byte, error) {
	docs, err := l.Documents(ctx)
	if err != nil {
		return nil, err
	}
	return findByID(docs, id)
}
