package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-agent/domain"
	"mortgage-agent/repository"
)

func ptr[T any](v T) *T { return &v }

func fullPatch(id string) LenderPatch {
	return LenderPatch{
		ID:             id,
		Name:           ptr("Lender " + id),
		VariableRate:   ptr(3.5),
		CommissionRate: ptr(1.0),
		InsuranceRate:  ptr(0.3),
		MinLoanAmount:  ptr(10_000.0),
		MaxLoanAmount:  ptr(1_000_000.0),
		MinTermYears:   ptr(5),
		MaxTermYears:   ptr(30),
		Purposes:       []domain.Purpose{domain.PurposePurchase},
	}
}

type staticSource struct {
	patches []LenderPatch
	err     error
}

func (s staticSource) Name() string { return "static" }

func (s staticSource) Load(ctx context.Context) ([]LenderPatch, error) {
	return s.patches, s.err
}

func TestMerge_AddsNewLenders(t *testing.T) {
	merged, rejected := Merge(nil, []LenderPatch{fullPatch("a"), fullPatch("b")})

	assert.Empty(t, rejected)
	require.Len(t, merged, 2)
	assert.Equal(t, "a", merged[0].ID)
	assert.Equal(t, "Lender b", merged[1].Name)
}

func TestMerge_PartialPatchKeepsOtherFields(t *testing.T) {
	previous, _ := Merge(nil, []LenderPatch{fullPatch("a")})
	previous[0].EffectiveAnnualCost = map[domain.RateType]float64{domain.RateTypeFixed: 4.4}

	merged, rejected := Merge(previous, []LenderPatch{{
		ID:                  "a",
		FixedRate:           ptr(4.0),
		EffectiveAnnualCost: map[domain.RateType]float64{domain.RateTypeVariable: 3.9},
	}})

	assert.Empty(t, rejected)
	require.Len(t, merged, 1)
	require.NotNil(t, merged[0].FixedRate)
	assert.Equal(t, 4.0, *merged[0].FixedRate)
	assert.Equal(t, 3.5, *merged[0].VariableRate)
	assert.Equal(t, "Lender a", merged[0].Name)
	assert.Equal(t, 4.4, merged[0].EffectiveAnnualCost[domain.RateTypeFixed])
	assert.Equal(t, 3.9, merged[0].EffectiveAnnualCost[domain.RateTypeVariable])

	// The previous snapshot is untouched.
	assert.Nil(t, previous[0].FixedRate)
	assert.NotContains(t, previous[0].EffectiveAnnualCost, domain.RateTypeVariable)
}

func TestMerge_RejectsMalformedRecords(t *testing.T) {
	previous, _ := Merge(nil, []LenderPatch{fullPatch("a")})

	merged, rejected := Merge(previous, []LenderPatch{
		{ID: "new-without-fields"},
		{ID: "a", MinLoanAmount: ptr(5_000_000.0)},
		{Name: ptr("no id")},
	})

	require.Len(t, rejected, 3)
	for _, err := range rejected {
		assert.ErrorIs(t, err, domain.ErrMalformedLender)
	}
	require.Len(t, merged, 1)
	assert.Equal(t, 10_000.0, merged[0].MinLoanAmount)
}

func TestMerge_Delisted(t *testing.T) {
	previous, _ := Merge(nil, []LenderPatch{fullPatch("a"), fullPatch("b")})

	merged, rejected := Merge(previous, []LenderPatch{{ID: "a", Delisted: true}})

	assert.Empty(t, rejected)
	require.Len(t, merged, 1)
	assert.Equal(t, "b", merged[0].ID)
	assert.Len(t, previous, 2)
}

func TestEmbeddedSource_LoadsValidCatalog(t *testing.T) {
	patches, err := EmbeddedSource{}.Load(context.Background())
	require.NoError(t, err)

	lenders, rejected := Merge(nil, patches)
	assert.Empty(t, rejected)
	assert.Len(t, lenders, 10)
}

func TestFileSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lenders.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"x","variable_rate":3.1}]`), 0o600))

	patches, err := NewFileSource(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, patches, 1)
	assert.Equal(t, 3.1, *patches[0].VariableRate)

	_, err = NewFileSource(filepath.Join(t.TempDir(), "missing.json")).Load(context.Background())
	assert.Error(t, err)
}

func TestRefreshJob_PublishesNewSnapshot(t *testing.T) {
	repo := repository.NewCatalogRepositoryMemory()
	job := NewRefreshJob(staticSource{patches: []LenderPatch{fullPatch("a")}}, repo, zerolog.Nop())
	job.now = func() time.Time { return time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC) }

	first, err := job.Refresh(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, first.Version)
	assert.Len(t, first.Lenders, 1)

	job.source = staticSource{patches: []LenderPatch{{ID: "a", VariableRate: ptr(2.9)}, fullPatch("b")}}
	second, err := job.Refresh(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first.Version, second.Version)

	current, err := repo.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, second.Version, current.Version)
	require.Len(t, current.Lenders, 2)
	assert.Equal(t, 2.9, *current.Lenders[0].VariableRate)
	assert.Equal(t, 3.5, *first.Lenders[0].VariableRate)
}

func TestRefreshJob_SourceFailureKeepsSnapshot(t *testing.T) {
	repo := repository.NewCatalogRepositoryMemory()
	job := NewRefreshJob(staticSource{patches: []LenderPatch{fullPatch("a")}}, repo, zerolog.Nop())
	published, err := job.Refresh(context.Background())
	require.NoError(t, err)

	job.source = staticSource{err: errors.New("feed down")}
	assert.Error(t, job.Run())

	current, err := repo.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, published.Version, current.Version)
}

func TestRefreshJob_EmptyCatalog(t *testing.T) {
	repo := repository.NewCatalogRepositoryMemory()
	job := NewRefreshJob(staticSource{}, repo, zerolog.Nop())

	_, err := job.Refresh(context.Background())

	assert.ErrorIs(t, err, ErrEmptyCatalog)
	_, err = repo.Current(context.Background())
	assert.ErrorIs(t, err, repository.ErrCatalogNotLoaded)
}

func TestScheduler_AddJobRejectsBadSpec(t *testing.T) {
	s := NewScheduler(zerolog.Nop())
	job := NewRefreshJob(EmbeddedSource{}, repository.NewCatalogRepositoryMemory(), zerolog.Nop())

	assert.Error(t, s.AddJob("not a schedule", job))
	assert.NoError(t, s.AddJob("@every 6h", job))
}
