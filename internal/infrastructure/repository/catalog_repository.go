package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/domain/entity"
	"github.com/kilatwash/washpos-api/internal/domain/enum"
	domainRepo "github.com/kilatwash/washpos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type serviceItemRepository struct {
	db *gorm.DB
}

// NewServiceItemRepository creates a new service catalog repository
func NewServiceItemRepository(db *gorm.DB) domainRepo.ServiceItemRepository {
	return &serviceItemRepository{db: db}
}

func (r *serviceItemRepository) Create(ctx context.Context, item *entity.ServiceItem) error {
	return conn(ctx, r.db).Create(item).Error
}

func (r *serviceItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ServiceItem, error) {
	var item entity.ServiceItem
	err := conn(ctx, r.db).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *serviceItemRepository) Update(ctx context.Context, item *entity.ServiceItem) error {
	return conn(ctx, r.db).Save(item).Error
}

func (r *serviceItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Delete(&entity.ServiceItem{}, "id = ?", id).Error
}

func (r *serviceItemRepository) List(ctx context.Context, activeOnly bool, appliesTo *enum.VehicleCategory) ([]entity.ServiceItem, error) {
	var items []entity.ServiceItem
	query := conn(ctx, r.db).Model(&entity.ServiceItem{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if appliesTo != nil {
		query = query.Where("applies_to = ?", *appliesTo)
	}
	err := query.Order("name ASC").Find(&items).Error
	return items, err
}

type priceMatrixRepository struct {
	db *gorm.DB
}

// NewPriceMatrixRepository creates a new price matrix repository
func NewPriceMatrixRepository(db *gorm.DB) domainRepo.PriceMatrixRepository {
	return &priceMatrixRepository{db: db}
}

func (r *priceMatrixRepository) Create(ctx context.Context, row *entity.PriceMatrix) error {
	return conn(ctx, r.db).Create(row).Error
}

func (r *priceMatrixRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PriceMatrix, error) {
	var row entity.PriceMatrix
	err := conn(ctx, r.db).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &row, err
}

func (r *priceMatrixRepository) Update(ctx context.Context, row *entity.PriceMatrix) error {
	return conn(ctx, r.db).Save(row).Error
}

func (r *priceMatrixRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Delete(&entity.PriceMatrix{}, "id = ?", id).Error
}

func (r *priceMatrixRepository) ListByServiceItem(ctx context.Context, serviceItemID uuid.UUID) ([]entity.PriceMatrix, error) {
	var rows []entity.PriceMatrix
	err := conn(ctx, r.db).
		Where("service_item_id = ?", serviceItemID).
		Find(&rows).Error
	return rows, err
}

func (r *priceMatrixRepository) List(ctx context.Context) ([]entity.PriceMatrix, error) {
	var rows []entity.PriceMatrix
	err := conn(ctx, r.db).Preload("ServiceItem").Find(&rows).Error
	return rows, err
}

type fdItemRepository struct {
	db *gorm.DB
}

// NewFdItemRepository creates a new food & drink catalog repository
func NewFdItemRepository(db *gorm.DB) domainRepo.FdItemRepository {
	return &fdItemRepository{db: db}
}

func (r *fdItemRepository) Create(ctx context.Context, item *entity.FdItem) error {
	return conn(ctx, r.db).Create(item).Error
}

func (r *fdItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.FdItem, error) {
	var item entity.FdItem
	err := conn(ctx, r.db).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *fdItemRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.FdItem, error) {
	var items []entity.FdItem
	err := conn(ctx, r.db).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *fdItemRepository) Update(ctx context.Context, item *entity.FdItem) error {
	return conn(ctx, r.db).Save(item).Error
}

func (r *fdItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Delete(&entity.FdItem{}, "id = ?", id).Error
}

func (r *fdItemRepository) List(ctx context.Context, activeOnly bool) ([]entity.FdItem, error) {
	var items []entity.FdItem
	query := conn(ctx, r.db).Model(&entity.FdItem{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("name ASC").Find(&items).Error
	return items, err
}

type dimensionRepository struct {
	db *gorm.DB
}

// NewDimensionRepository creates a repository over the pricing dimension tables
func NewDimensionRepository(db *gorm.DB) domainRepo.DimensionRepository {
	return &dimensionRepository{db: db}
}

func (r *dimensionRepository) ListEngineClasses(ctx context.Context) ([]entity.EngineClass, error) {
	var rows []entity.EngineClass
	err := conn(ctx, r.db).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *dimensionRepository) ListHelmetTypes(ctx context.Context) ([]entity.HelmetType, error) {
	var rows []entity.HelmetType
	err := conn(ctx, r.db).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *dimensionRepository) ListCarSizes(ctx context.Context) ([]entity.CarSize, error) {
	var rows []entity.CarSize
	err := conn(ctx, r.db).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *dimensionRepository) ListApparelTypes(ctx context.Context) ([]entity.ApparelType, error) {
	var rows []entity.ApparelType
	err := conn(ctx, r.db).Order("name ASC").Find(&rows).Error
	return rows, err
}
