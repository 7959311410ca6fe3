// Package loam reads a directory of problem documents through the Loam document store.
//
// Each document is a problem file expressed as frontmatter (markdown) or as a plain JSON/YAML
// document. A markdown body becomes the problem description.
package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/loam"
	"github.com/aretw0/statespace/internal/config"
)

// Entry summarises a catalog document for listings.
type Entry struct {
	ID        string
	Name      string
	Kind      string
	Algorithm string
}

// Catalog serves problem specs from a Loam repository.
type Catalog struct {
	Repo *loam.TypedRepository[config.ProblemSpec]
}

// New creates a catalog over an existing typed repository.
func New(repo *loam.TypedRepository[config.ProblemSpec]) *Catalog {
	return &Catalog{
		Repo: repo,
	}
}

// Open initializes a read-only Loam repository at dir.
// Strict mode keeps numbers as json.Number, so integers survive decoding unchanged.
func Open(dir string) (*Catalog, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return New(loam.NewTypedRepository[config.ProblemSpec](repo)), nil
}

// Get loads and validates one problem. The id may carry the file extension or not.
func (c *Catalog) Get(ctx context.Context, id string) (*config.ProblemSpec, error) {
	doc, err := c.Repo.Get(ctx, trimExtension(id))
	if err != nil {
		return nil, fmt.Errorf("loam get failed for %s: %w", id, err)
	}

	spec := doc.Data
	if spec.Name == "" {
		spec.Name = trimExtension(doc.ID)
	}
	if spec.Description == "" {
		spec.Description = strings.TrimSpace(doc.Content)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}
	return &spec, nil
}

// List returns every document in the repository, sorted by ID.
// Two documents resolving to the same ID are reported as an error.
func (c *Catalog) List(ctx context.Context) ([]Entry, error) {
	docs, err := c.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string)
	entries := make([]Entry, 0, len(docs))
	for _, doc := range docs {
		id := trimExtension(doc.ID)
		if existingPath, ok := seen[id]; ok {
			return nil, fmt.Errorf("collision detected: ID '%s' is defined in both '%s' and '%s'", id, existingPath, doc.ID)
		}
		seen[id] = doc.ID

		name := doc.Data.Name
		if name == "" {
			name = id
		}
		entries = append(entries, Entry{
			ID:        id,
			Name:      name,
			Kind:      doc.Data.Kind,
			Algorithm: doc.Data.Algorithm,
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
