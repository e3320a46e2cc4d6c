package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/domain/entity"
	"github.com/kilatwash/washpos-api/internal/infrastructure/cache"
	"github.com/kilatwash/washpos-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePriceMatrixRepo struct {
	rows []entity.PriceMatrix
}

func (r *fakePriceMatrixRepo) Create(ctx context.Context, row *entity.PriceMatrix) error {
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	r.rows = append(r.rows, *row)
	return nil
}

func (r *fakePriceMatrixRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.PriceMatrix, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			return &r.rows[i], nil
		}
	}
	return nil, nil
}

func (r *fakePriceMatrixRepo) Update(ctx context.Context, row *entity.PriceMatrix) error {
	for i := range r.rows {
		if r.rows[i].ID == row.ID {
			r.rows[i] = *row
			return nil
		}
	}
	return nil
}

func (r *fakePriceMatrixRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakePriceMatrixRepo) ListByServiceItem(ctx context.Context, serviceItemID uuid.UUID) ([]entity.PriceMatrix, error) {
	var out []entity.PriceMatrix
	for _, row := range r.rows {
		if row.ServiceItemID == serviceItemID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakePriceMatrixRepo) List(ctx context.Context) ([]entity.PriceMatrix, error) {
	return r.rows, nil
}

func newCatalogFixture(rows ...entity.PriceMatrix) *CatalogService {
	repo := &fakePriceMatrixRepo{}
	for i := range rows {
		_ = repo.Create(context.Background(), &rows[i])
	}
	return NewCatalogService(nil, repo, nil, nil, cache.NewNoopPriceCache())
}

func TestResolvePriceMostSpecificWins(t *testing.T) {
	serviceItemID := uuid.New()
	smallEngine := uuid.New()

	svc := newCatalogFixture(
		// Wildcard row: applies to every engine class.
		entity.PriceMatrix{ServiceItemID: serviceItemID, Price: 20000},
		// Concrete row for the small engine class.
		entity.PriceMatrix{ServiceItemID: serviceItemID, EngineClassID: &smallEngine, Price: 15000},
	)

	price, err := svc.ResolvePrice(context.Background(), &PriceLookup{
		ServiceItemID: serviceItemID,
		EngineClassID: &smallEngine,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(15000), price)
}

func TestResolvePriceWildcardFallback(t *testing.T) {
	serviceItemID := uuid.New()
	smallEngine := uuid.New()
	bigEngine := uuid.New()

	svc := newCatalogFixture(
		entity.PriceMatrix{ServiceItemID: serviceItemID, Price: 20000},
		entity.PriceMatrix{ServiceItemID: serviceItemID, EngineClassID: &smallEngine, Price: 15000},
	)

	// No concrete row for the big engine; the wildcard row applies.
	price, err := svc.ResolvePrice(context.Background(), &PriceLookup{
		ServiceItemID: serviceItemID,
		EngineClassID: &bigEngine,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(20000), price)
}

func TestResolvePriceConcreteMismatchExcluded(t *testing.T) {
	serviceItemID := uuid.New()
	smallEngine := uuid.New()
	bigEngine := uuid.New()

	svc := newCatalogFixture(
		entity.PriceMatrix{ServiceItemID: serviceItemID, EngineClassID: &smallEngine, Price: 15000},
	)

	// The only row demands a different engine class, so nothing matches.
	price, err := svc.ResolvePrice(context.Background(), &PriceLookup{
		ServiceItemID: serviceItemID,
		EngineClassID: &bigEngine,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), price)
}

func TestResolvePriceNoRowsIsZeroNotError(t *testing.T) {
	svc := newCatalogFixture()

	price, err := svc.ResolvePrice(context.Background(), &PriceLookup{
		ServiceItemID: uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), price)
}

func TestCreatePriceMatrixRowRejectsDuplicateTuple(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := NewCatalogService(&fakeServiceItemRepo{store: store}, &fakePriceMatrixRepo{}, nil, nil, cache.NewNoopPriceCache())

	store.mu.Lock()
	item := store.addServiceItem(&entity.ServiceItem{Name: "Basic wash", IsActive: true})
	store.mu.Unlock()

	_, err := svc.CreatePriceMatrixRow(ctx, &CreatePriceMatrixInput{ServiceItemID: item.ID, Price: 20000})
	require.NoError(t, err)

	// The all-wildcard tuple is a tuple too; a second row is a conflict.
	_, err = svc.CreatePriceMatrixRow(ctx, &CreatePriceMatrixInput{ServiceItemID: item.ID, Price: 25000})
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))

	engine := uuid.New()
	_, err = svc.CreatePriceMatrixRow(ctx, &CreatePriceMatrixInput{
		ServiceItemID: item.ID,
		EngineClassID: &engine,
		Price:         30000,
	})
	require.NoError(t, err)

	_, err = svc.CreatePriceMatrixRow(ctx, &CreatePriceMatrixInput{
		ServiceItemID: item.ID,
		EngineClassID: &engine,
		Price:         35000,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
}

func TestResolvePriceMultipleDimensions(t *testing.T) {
	serviceItemID := uuid.New()
	carSize := uuid.New()
	engine := uuid.New()

	svc := newCatalogFixture(
		entity.PriceMatrix{ServiceItemID: serviceItemID, CarSizeID: &carSize, Price: 60000},
		entity.PriceMatrix{ServiceItemID: serviceItemID, CarSizeID: &carSize, EngineClassID: &engine, Price: 75000},
	)

	price, err := svc.ResolvePrice(context.Background(), &PriceLookup{
		ServiceItemID: serviceItemID,
		CarSizeID:     &carSize,
		EngineClassID: &engine,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(75000), price)
}
