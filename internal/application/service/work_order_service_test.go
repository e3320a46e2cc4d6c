package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/domain/entity"
	"github.com/kilatwash/washpos-api/internal/domain/enum"
	"github.com/kilatwash/washpos-api/internal/infrastructure/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type workOrderFixture struct {
	store     *memStore
	priceRepo *fakePriceMatrixRepo
	service   *WorkOrderService
}

func newWorkOrderFixture(t *testing.T) *workOrderFixture {
	t.Helper()
	store := newMemStore()
	priceRepo := &fakePriceMatrixRepo{}
	catalog := NewCatalogService(
		&fakeServiceItemRepo{store: store},
		priceRepo,
		&fakeFdItemRepo{store: store},
		nil,
		cache.NewNoopPriceCache(),
	)
	svc := NewWorkOrderService(
		&fakeWorkOrderRepo{store: store},
		&fakeCustomerRepo{store: store},
		&fakeVehicleRepo{store: store},
		&fakeFdItemRepo{store: store},
		&fakePOSTxRepo{store: store},
		catalog,
		fakeTxManager{},
	)
	return &workOrderFixture{store: store, priceRepo: priceRepo, service: svc}
}

func (f *workOrderFixture) seedPriceRow(row entity.PriceMatrix) {
	_ = f.priceRepo.Create(context.Background(), &row)
}

func TestCreateWorkOrderPricesHelmetRow(t *testing.T) {
	f := newWorkOrderFixture(t)
	ctx := context.Background()

	f.store.mu.Lock()
	customer := f.store.addCustomer(&entity.Customer{Name: "Rudi", Phone: "0811"})
	fullFace := uuid.New()
	helmet := f.store.addVehicle(&entity.CustomerVehicle{
		CustomerID:   customer.ID,
		Category:     enum.CategoryHelmet,
		LicensePlate: "HLM-001",
		HelmetTypeID: &fullFace,
	})
	item := f.store.addServiceItem(&entity.ServiceItem{
		Name:      "Helmet deep clean",
		AppliesTo: enum.CategoryHelmet,
		IsActive:  true,
	})
	f.store.mu.Unlock()

	f.seedPriceRow(entity.PriceMatrix{ServiceItemID: item.ID, Price: 25000})
	f.seedPriceRow(entity.PriceMatrix{ServiceItemID: item.ID, HelmetTypeID: &fullFace, Price: 40000})

	order, err := f.service.CreateWorkOrder(ctx, &CreateWorkOrderInput{
		CustomerID:        customer.ID,
		CustomerVehicleID: helmet.ID,
		Services:          []WorkOrderServiceInput{{ServiceItemID: item.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// The helmet-type-specific row outranks the wildcard row.
	require.Len(t, order.Services, 1)
	assert.Equal(t, int64(40000), order.Services[0].UnitPrice)
	assert.Equal(t, int64(40000), order.Services[0].Subtotal)
}

func TestCreateWorkOrderPricesApparelRow(t *testing.T) {
	f := newWorkOrderFixture(t)
	ctx := context.Background()

	f.store.mu.Lock()
	customer := f.store.addCustomer(&entity.Customer{Name: "Sari", Phone: "0812"})
	jacket := uuid.New()
	garment := f.store.addVehicle(&entity.CustomerVehicle{
		CustomerID:    customer.ID,
		Category:      enum.CategoryApparel,
		LicensePlate:  "APP-001",
		ApparelTypeID: &jacket,
	})
	item := f.store.addServiceItem(&entity.ServiceItem{
		Name:      "Apparel wash",
		AppliesTo: enum.CategoryApparel,
		IsActive:  true,
	})
	f.store.mu.Unlock()

	f.seedPriceRow(entity.PriceMatrix{ServiceItemID: item.ID, Price: 30000})
	f.seedPriceRow(entity.PriceMatrix{ServiceItemID: item.ID, ApparelTypeID: &jacket, Price: 55000})

	order, err := f.service.CreateWorkOrder(ctx, &CreateWorkOrderInput{
		CustomerID:        customer.ID,
		CustomerVehicleID: garment.ID,
		Services:          []WorkOrderServiceInput{{ServiceItemID: item.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	require.Len(t, order.Services, 1)
	assert.Equal(t, int64(55000), order.Services[0].UnitPrice)
	assert.Equal(t, int64(110000), order.Services[0].Subtotal)
}

func TestCreateWorkOrderFallsBackToWildcardWithoutHelmetType(t *testing.T) {
	f := newWorkOrderFixture(t)
	ctx := context.Background()

	f.store.mu.Lock()
	customer := f.store.addCustomer(&entity.Customer{Name: "Budi", Phone: "0813"})
	helmet := f.store.addVehicle(&entity.CustomerVehicle{
		CustomerID:   customer.ID,
		Category:     enum.CategoryHelmet,
		LicensePlate: "HLM-002",
	})
	item := f.store.addServiceItem(&entity.ServiceItem{
		Name:      "Helmet deep clean",
		AppliesTo: enum.CategoryHelmet,
		IsActive:  true,
	})
	f.store.mu.Unlock()

	fullFace := uuid.New()
	f.seedPriceRow(entity.PriceMatrix{ServiceItemID: item.ID, Price: 25000})
	f.seedPriceRow(entity.PriceMatrix{ServiceItemID: item.ID, HelmetTypeID: &fullFace, Price: 40000})

	// No helmet type on the item, so only the wildcard row can match.
	order, err := f.service.CreateWorkOrder(ctx, &CreateWorkOrderInput{
		CustomerID:        customer.ID,
		CustomerVehicleID: helmet.ID,
		Services:          []WorkOrderServiceInput{{ServiceItemID: item.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	require.Len(t, order.Services, 1)
	assert.Equal(t, int64(25000), order.Services[0].UnitPrice)
}
