package domain

import "time"

// CatalogSnapshot is an immutable view of the lender catalog. A refresh builds
// a new snapshot instead of editing the current one.
type CatalogSnapshot struct {
	Version  string    `json:"version"`
	LoadedAt time.Time `json:"loaded_at"`
	Lenders  []Lender  `json:"lenders"`
}
