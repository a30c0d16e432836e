package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"mortgage-agent/domain"
	"mortgage-agent/repository"
)

const refreshTimeout = 30 * time.Second

var ErrEmptyCatalog = errors.New("refresh produced an empty catalog")

// RefreshJob loads a feed, merges it onto the current snapshot and publishes
// the result as a new snapshot.
type RefreshJob struct {
	source Source
	repo   repository.CatalogRepository
	log    zerolog.Logger
	now    func() time.Time
}

func NewRefreshJob(source Source, repo repository.CatalogRepository, log zerolog.Logger) *RefreshJob {
	return &RefreshJob{
		source: source,
		repo:   repo,
		log:    log.With().Str("component", "catalog_refresh").Logger(),
		now:    time.Now,
	}
}

func (j *RefreshJob) Name() string {
	return "catalog_refresh"
}

// Run satisfies the scheduler's Job interface.
func (j *RefreshJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	_, err := j.Refresh(ctx)
	return err
}

// Refresh performs one load-merge-publish cycle and returns the published
// snapshot.
func (j *RefreshJob) Refresh(ctx context.Context) (domain.CatalogSnapshot, error) {
	patches, err := j.source.Load(ctx)
	if err != nil {
		return domain.CatalogSnapshot{}, fmt.Errorf("load %s: %w", j.source.Name(), err)
	}

	previous, err := j.repo.Current(ctx)
	if err != nil && !errors.Is(err, repository.ErrCatalogNotLoaded) {
		return domain.CatalogSnapshot{}, err
	}

	lenders, rejected := Merge(previous.Lenders, patches)
	for _, rejectErr := range rejected {
		j.log.Warn().Err(rejectErr).Str("source", j.source.Name()).Msg("Skipping lender record")
	}
	if len(lenders) == 0 {
		return domain.CatalogSnapshot{}, ErrEmptyCatalog
	}

	snapshot := domain.CatalogSnapshot{
		Version:  uuid.NewString(),
		LoadedAt: j.now().UTC(),
		Lenders:  lenders,
	}
	if err := j.repo.Replace(ctx, snapshot); err != nil {
		return domain.CatalogSnapshot{}, fmt.Errorf("publish snapshot: %w", err)
	}

	j.log.Info().
		Str("version", snapshot.Version).
		Str("source", j.source.Name()).
		Int("lenders", len(lenders)).
		Int("rejected", len(rejected)).
		Msg("Catalog refreshed")

	return snapshot, nil
}
