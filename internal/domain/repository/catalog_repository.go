package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/domain/entity"
	"github.com/kilatwash/washpos-api/internal/domain/enum"
)

// ServiceItemRepository defines the interface for service catalog operations
type ServiceItemRepository interface {
	Create(ctx context.Context, item *entity.ServiceItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ServiceItem, error)
	Update(ctx context.Context, item *entity.ServiceItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns service items, optionally restricted to active ones and
	// to a category.
	List(ctx context.Context, activeOnly bool, appliesTo *enum.VehicleCategory) ([]entity.ServiceItem, error)
}

// PriceMatrixRepository defines the interface for price matrix operations
type PriceMatrixRepository interface {
	Create(ctx context.Context, row *entity.PriceMatrix) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PriceMatrix, error)
	Update(ctx context.Context, row *entity.PriceMatrix) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListByServiceItem returns every price row for one service item.
	ListByServiceItem(ctx context.Context, serviceItemID uuid.UUID) ([]entity.PriceMatrix, error)
	List(ctx context.Context) ([]entity.PriceMatrix, error)
}

// FdItemRepository defines the interface for food & drink catalog operations
type FdItemRepository interface {
	Create(ctx context.Context, item *entity.FdItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.FdItem, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.FdItem, error)
	Update(ctx context.Context, item *entity.FdItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, activeOnly bool) ([]entity.FdItem, error)
}

// DimensionRepository lists the seeded pricing dimension tables
type DimensionRepository interface {
	ListEngineClasses(ctx context.Context) ([]entity.EngineClass, error)
	ListHelmetTypes(ctx context.Context) ([]entity.HelmetType, error)
	ListCarSizes(ctx context.Context) ([]entity.CarSize, error)
	ListApparelTypes(ctx context.Context) ([]entity.ApparelType, error)
}
