package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/domain/entity"
	"github.com/kilatwash/washpos-api/internal/domain/enum"
	"github.com/kilatwash/washpos-api/internal/domain/repository"
	"github.com/kilatwash/washpos-api/internal/infrastructure/cache"
	"github.com/kilatwash/washpos-api/pkg/apperror"
)

// CatalogService handles the service catalog, price matrix, and F&D menu
type CatalogService struct {
	serviceItemRepo repository.ServiceItemRepository
	priceMatrixRepo repository.PriceMatrixRepository
	fdItemRepo      repository.FdItemRepository
	dimensionRepo   repository.DimensionRepository
	priceCache      cache.PriceCache
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	serviceItemRepo repository.ServiceItemRepository,
	priceMatrixRepo repository.PriceMatrixRepository,
	fdItemRepo repository.FdItemRepository,
	dimensionRepo repository.DimensionRepository,
	priceCache cache.PriceCache,
) *CatalogService {
	return &CatalogService{
		serviceItemRepo: serviceItemRepo,
		priceMatrixRepo: priceMatrixRepo,
		fdItemRepo:      fdItemRepo,
		dimensionRepo:   dimensionRepo,
		priceCache:      priceCache,
	}
}

// PriceLookup carries the dimension values of the vehicle being priced. Nil
// fields mean the dimension does not apply.
type PriceLookup struct {
	ServiceItemID uuid.UUID
	EngineClassID *uuid.UUID
	HelmetTypeID  *uuid.UUID
	CarSizeID     *uuid.UUID
	ApparelTypeID *uuid.UUID
}

func (l *PriceLookup) cacheKey() string {
	part := func(id *uuid.UUID) string {
		if id == nil {
			return "-"
		}
		return id.String()
	}
	return fmt.Sprintf("%s:%s:%s:%s:%s",
		l.ServiceItemID, part(l.EngineClassID), part(l.HelmetTypeID),
		part(l.CarSizeID), part(l.ApparelTypeID))
}

// ResolvePrice finds the price for a service item given the vehicle's
// dimensions. Among the matrix rows whose concrete dimensions all match the
// lookup, the row with the most concrete dimensions wins. A row's null
// dimension is a wildcard. No matching row resolves to price 0, never an
// error.
func (s *CatalogService) ResolvePrice(ctx context.Context, lookup *PriceLookup) (int64, error) {
	key := lookup.cacheKey()
	if row, found, err := s.priceCache.Get(ctx, key); err == nil && found {
		return row.Price, nil
	} else if err != nil {
		log.Printf("price cache read failed: %v", err)
	}

	rows, err := s.priceMatrixRepo.ListByServiceItem(ctx, lookup.ServiceItemID)
	if err != nil {
		return 0, err
	}

	var best *entity.PriceMatrix
	for i := range rows {
		row := &rows[i]
		if !dimensionMatches(row.EngineClassID, lookup.EngineClassID) ||
			!dimensionMatches(row.HelmetTypeID, lookup.HelmetTypeID) ||
			!dimensionMatches(row.CarSizeID, lookup.CarSizeID) ||
			!dimensionMatches(row.ApparelTypeID, lookup.ApparelTypeID) {
			continue
		}
		if best == nil || row.Specificity() > best.Specificity() {
			best = row
		}
	}

	if best == nil {
		return 0, nil
	}

	if err := s.priceCache.Set(ctx, key, best); err != nil {
		log.Printf("price cache write failed: %v", err)
	}
	return best.Price, nil
}

// dimensionMatches reports whether a matrix row dimension accepts the lookup
// value. A nil row dimension is a wildcard; a concrete one must equal the
// lookup value exactly.
func dimensionMatches(row, lookup *uuid.UUID) bool {
	if row == nil {
		return true
	}
	return lookup != nil && *row == *lookup
}

// sameDimension reports whether two dimension values are the same tuple
// position, treating nil as a value (wildcard == wildcard).
func sameDimension(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// CreateServiceItemInput represents the create service item input
type CreateServiceItemInput struct {
	Name       string
	AppliesTo  enum.VehicleCategory
	IsMainWash bool
	IsPremium  bool
}

// CreateServiceItem creates a new catalog service item
func (s *CatalogService) CreateServiceItem(ctx context.Context, input *CreateServiceItemInput) (*entity.ServiceItem, error) {
	if !input.AppliesTo.Valid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "applies_to", Message: "unknown category"},
		})
	}
	item := &entity.ServiceItem{
		Name:       input.Name,
		AppliesTo:  input.AppliesTo,
		IsMainWash: input.IsMainWash,
		IsPremium:  input.IsPremium,
		IsActive:   true,
	}
	if err := s.serviceItemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetServiceItem retrieves a service item by ID
func (s *CatalogService) GetServiceItem(ctx context.Context, id uuid.UUID) (*entity.ServiceItem, error) {
	item, err := s.serviceItemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Service item")
	}
	return item, nil
}

// ListServiceItems lists service items, optionally restricted to a category
func (s *CatalogService) ListServiceItems(ctx context.Context, activeOnly bool, appliesTo *enum.VehicleCategory) ([]entity.ServiceItem, error) {
	return s.serviceItemRepo.List(ctx, activeOnly, appliesTo)
}

// UpdateServiceItemInput represents the update service item input
type UpdateServiceItemInput struct {
	Name       *string
	AppliesTo  *enum.VehicleCategory
	IsMainWash *bool
	IsPremium  *bool
	IsActive   *bool
}

// UpdateServiceItem updates a catalog service item
func (s *CatalogService) UpdateServiceItem(ctx context.Context, id uuid.UUID, input *UpdateServiceItemInput) (*entity.ServiceItem, error) {
	item, err := s.serviceItemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Service item")
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.AppliesTo != nil {
		if !input.AppliesTo.Valid() {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "applies_to", Message: "unknown category"},
			})
		}
		item.AppliesTo = *input.AppliesTo
	}
	if input.IsMainWash != nil {
		item.IsMainWash = *input.IsMainWash
	}
	if input.IsPremium != nil {
		item.IsPremium = *input.IsPremium
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := s.serviceItemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteServiceItem removes a service item from the catalog
func (s *CatalogService) DeleteServiceItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.serviceItemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Service item")
	}
	if err := s.serviceItemRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidatePrices(ctx, id)
	return nil
}

// CreatePriceMatrixInput represents the create price row input
type CreatePriceMatrixInput struct {
	ServiceItemID uuid.UUID
	EngineClassID *uuid.UUID
	HelmetTypeID  *uuid.UUID
	CarSizeID     *uuid.UUID
	ApparelTypeID *uuid.UUID
	Price         int64
}

// CreatePriceMatrixRow adds a price row for a service item
func (s *CatalogService) CreatePriceMatrixRow(ctx context.Context, input *CreatePriceMatrixInput) (*entity.PriceMatrix, error) {
	item, err := s.serviceItemRepo.GetByID(ctx, input.ServiceItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Service item")
	}
	if input.Price < 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "price", Message: "must not be negative"},
		})
	}

	// Reject a duplicate tuple up front; the NULLS NOT DISTINCT index is
	// the backstop under concurrent writers.
	existing, err := s.priceMatrixRepo.ListByServiceItem(ctx, input.ServiceItemID)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if sameDimension(existing[i].EngineClassID, input.EngineClassID) &&
			sameDimension(existing[i].HelmetTypeID, input.HelmetTypeID) &&
			sameDimension(existing[i].CarSizeID, input.CarSizeID) &&
			sameDimension(existing[i].ApparelTypeID, input.ApparelTypeID) {
			return nil, apperror.NewConflictError("A price row for this dimension combination already exists")
		}
	}

	row := &entity.PriceMatrix{
		ServiceItemID: input.ServiceItemID,
		EngineClassID: input.EngineClassID,
		HelmetTypeID:  input.HelmetTypeID,
		CarSizeID:     input.CarSizeID,
		ApparelTypeID: input.ApparelTypeID,
		Price:         input.Price,
	}
	if err := s.priceMatrixRepo.Create(ctx, row); err != nil {
		return nil, err
	}
	s.invalidatePrices(ctx, input.ServiceItemID)
	return row, nil
}

// UpdatePriceMatrixRow changes the price on an existing row
func (s *CatalogService) UpdatePriceMatrixRow(ctx context.Context, id uuid.UUID, price int64) (*entity.PriceMatrix, error) {
	row, err := s.priceMatrixRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperror.NewNotFoundError("Price matrix row")
	}
	if price < 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "price", Message: "must not be negative"},
		})
	}

	row.Price = price
	if err := s.priceMatrixRepo.Update(ctx, row); err != nil {
		return nil, err
	}
	s.invalidatePrices(ctx, row.ServiceItemID)
	return row, nil
}

// DeletePriceMatrixRow removes a price row
func (s *CatalogService) DeletePriceMatrixRow(ctx context.Context, id uuid.UUID) error {
	row, err := s.priceMatrixRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if row == nil {
		return apperror.NewNotFoundError("Price matrix row")
	}
	if err := s.priceMatrixRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidatePrices(ctx, row.ServiceItemID)
	return nil
}

// ListPriceMatrix lists price rows, optionally filtered by service item
func (s *CatalogService) ListPriceMatrix(ctx context.Context, serviceItemID *uuid.UUID) ([]entity.PriceMatrix, error) {
	if serviceItemID != nil {
		return s.priceMatrixRepo.ListByServiceItem(ctx, *serviceItemID)
	}
	return s.priceMatrixRepo.List(ctx)
}

func (s *CatalogService) invalidatePrices(ctx context.Context, serviceItemID uuid.UUID) {
	if err := s.priceCache.Invalidate(ctx, serviceItemID.String()); err != nil {
		log.Printf("price cache invalidation failed for %s: %v", serviceItemID, err)
	}
}

// CreateFdItemInput represents the create F&D item input
type CreateFdItemInput struct {
	Name  string
	Price int64
}

// CreateFdItem creates a food & drink menu item
func (s *CatalogService) CreateFdItem(ctx context.Context, input *CreateFdItemInput) (*entity.FdItem, error) {
	if input.Price < 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "price", Message: "must not be negative"},
		})
	}
	item := &entity.FdItem{
		Name:     input.Name,
		Price:    input.Price,
		IsActive: true,
	}
	if err := s.fdItemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListFdItems lists F&D menu items
func (s *CatalogService) ListFdItems(ctx context.Context, activeOnly bool) ([]entity.FdItem, error) {
	return s.fdItemRepo.List(ctx, activeOnly)
}

// UpdateFdItemInput represents the update F&D item input
type UpdateFdItemInput struct {
	Name     *string
	Price    *int64
	IsActive *bool
}

// UpdateFdItem updates a food & drink menu item
func (s *CatalogService) UpdateFdItem(ctx context.Context, id uuid.UUID, input *UpdateFdItemInput) (*entity.FdItem, error) {
	item, err := s.fdItemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("F&D item")
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "price", Message: "must not be negative"},
			})
		}
		item.Price = *input.Price
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := s.fdItemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteFdItem removes a food & drink menu item
func (s *CatalogService) DeleteFdItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.fdItemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("F&D item")
	}
	return s.fdItemRepo.Delete(ctx, id)
}

// Dimensions bundles the seeded pricing dimension tables for the catalog UI
type Dimensions struct {
	EngineClasses []entity.EngineClass `json:"engine_classes"`
	HelmetTypes   []entity.HelmetType  `json:"helmet_types"`
	CarSizes      []entity.CarSize     `json:"car_sizes"`
	ApparelTypes  []entity.ApparelType `json:"apparel_types"`
}

// ListDimensions returns every pricing dimension table
func (s *CatalogService) ListDimensions(ctx context.Context) (*Dimensions, error) {
	engineClasses, err := s.dimensionRepo.ListEngineClasses(ctx)
	if err != nil {
		return nil, err
	}
	helmetTypes, err := s.dimensionRepo.ListHelmetTypes(ctx)
	if err != nil {
		return nil, err
	}
	carSizes, err := s.dimensionRepo.ListCarSizes(ctx)
	if err != nil {
		return nil, err
	}
	apparelTypes, err := s.dimensionRepo.ListApparelTypes(ctx)
	if err != nil {
		return nil, err
	}
	return &Dimensions{
		EngineClasses: engineClasses,
		HelmetTypes:   helmetTypes,
		CarSizes:      carSizes,
		ApparelTypes:  apparelTypes,
	}, nil
}
