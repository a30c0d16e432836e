package repository

import (
	"context"
	"errors"

	"mortgage-agent/domain"
)

var ErrCatalogNotLoaded = errors.New("catalog has not been loaded")

// CatalogRepository holds the current lender catalog snapshot. Replace swaps
// the whole snapshot so readers never observe a partially refreshed catalog.
type CatalogRepository interface {
	Current(ctx context.Context) (domain.CatalogSnapshot, error)
	Replace(ctx context.Context, snapshot domain.CatalogSnapshot) error
}
