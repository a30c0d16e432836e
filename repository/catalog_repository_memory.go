package repository

import (
	"context"
	"slices"
	"sync/atomic"

	"mortgage-agent/domain"
)

// CatalogRepositoryMemory is an in-memory implementation of CatalogRepository.
type CatalogRepositoryMemory struct {
	current atomic.Pointer[domain.CatalogSnapshot]
}

// NewCatalogRepositoryMemory creates an empty in-memory catalog repository.
func NewCatalogRepositoryMemory() *CatalogRepositoryMemory {
	return &CatalogRepositoryMemory{}
}

// Current returns the latest snapshot.
func (r *CatalogRepositoryMemory) Current(ctx context.Context) (domain.CatalogSnapshot, error) {
	snapshot := r.current.Load()
	if snapshot == nil {
		return domain.CatalogSnapshot{}, ErrCatalogNotLoaded
	}
	return *snapshot, nil
}

// Replace stores a copy of snapshot as the current one.
func (r *CatalogRepositoryMemory) Replace(ctx context.Context, snapshot domain.CatalogSnapshot) error {
	snapshot.Lenders = slices.Clone(snapshot.Lenders)
	r.current.Store(&snapshot)
	return nil
}
