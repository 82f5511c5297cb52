// Package catalog provides the dataset catalog backing the card views.
package catalog

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"linksight/internal/domain"
)

// Repository defines read access to the dataset catalog.
type Repository interface {
	// List returns every dataset in catalog order.
	List(ctx context.Context) ([]*domain.Dataset, error)

	// GetByID retrieves a dataset by ID.
	GetByID(ctx context.Context, id string) (*domain.Dataset, error)
}

// MemoryRepository is an in-memory Repository. Datasets keep insertion order.
type MemoryRepository struct {
	mu       sync.RWMutex
	datasets []*domain.Dataset
	byID     map[string]*domain.Dataset
}

// NewMemoryRepository creates a repository holding the given datasets.
// Every dataset is validated and IDs must be unique.
func NewMemoryRepository(datasets ...*domain.Dataset) (*MemoryRepository, error) {
	r := &MemoryRepository{
		byID: make(map[string]*domain.Dataset, len(datasets)),
	}
	for _, d := range datasets {
		if err := r.Add(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add appends a dataset to the catalog.
func (r *MemoryRepository) Add(d *domain.Dataset) error {
	if d == nil {
		return domain.New(domain.CodeCatalogEntryMissing, "Dataset cannot be nil")
	}
	if err := d.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[d.ID]; exists {
		return domain.New(domain.CodeCatalogDuplicate, fmt.Sprintf("Dataset %q already exists", d.ID)).WithField("id")
	}

	stored := *d
	r.datasets = append(r.datasets, &stored)
	r.byID[stored.ID] = &stored
	return nil
}

// List returns copies of every dataset in catalog order.
func (r *MemoryRepository) List(ctx context.Context) ([]*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Dataset, 0, len(r.datasets))
	for _, d := range r.datasets {
		c := *d
		out = append(out, &c)
	}
	return out, nil
}

// GetByID returns a copy of the dataset with the given ID.
func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id]
	if !ok {
		return nil, domain.New(domain.CodeCatalogNotFound, "Dataset not found").WithDetail("id", id)
	}
	c := *d
	return &c, nil
}

// File is the on-disk catalog layout.
type File struct {
	Datasets []*domain.Dataset `yaml:"datasets"`
}

// LoadFile reads a YAML catalog into a MemoryRepository.
func LoadFile(path string) (*MemoryRepository, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from trusted configuration
	if err != nil {
		return nil, domain.New(domain.CodeCatalogUnreadable, "Failed to read catalog file").WithDetail("path", path).WithCause(err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog into a MemoryRepository.
func Parse(data []byte) (*MemoryRepository, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, domain.New(domain.CodeCatalogMalformed, "Catalog is not valid YAML").WithCause(err)
	}

	repo, err := NewMemoryRepository(f.Datasets...)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return repo, nil
}
