package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/domain/entity"
	"github.com/kilatwash/washpos-api/internal/domain/enum"
	domainRepo "github.com/kilatwash/washpos-api/internal/domain/repository"
	"github.com/kilatwash/washpos-api/pkg/pagination"
	"gorm.io/gorm"
)

type washTransactionRepository struct {
	db *gorm.DB
}

// NewWashTransactionRepository creates a new wash transaction repository
func NewWashTransactionRepository(db *gorm.DB) domainRepo.WashTransactionRepository {
	return &washTransactionRepository{db: db}
}

func (r *washTransactionRepository) Create(ctx context.Context, wt *entity.WashTransaction) error {
	return conn(ctx, r.db).Create(wt).Error
}

func (r *washTransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.WashTransaction, error) {
	var wt entity.WashTransaction
	err := conn(ctx, r.db).First(&wt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &wt, err
}

func (r *washTransactionRepository) GetWithProducts(ctx context.Context, id uuid.UUID) (*entity.WashTransaction, error) {
	var wt entity.WashTransaction
	err := conn(ctx, r.db).
		Preload("Customer").
		Preload("Vehicle").
		Preload("Products.Product").
		First(&wt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &wt, err
}

func (r *washTransactionRepository) Update(ctx context.Context, wt *entity.WashTransaction) error {
	return conn(ctx, r.db).Save(wt).Error
}

func (r *washTransactionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.WashTransactionStatus) error {
	return conn(ctx, r.db).Model(&entity.WashTransaction{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *washTransactionRepository) List(ctx context.Context, params *domainRepo.WashTransactionFilterParams) ([]entity.WashTransaction, int64, error) {
	var txs []entity.WashTransaction
	var total int64

	query := conn(ctx, r.db).Model(&entity.WashTransaction{})

	if params.Search != "" {
		query = query.Where("transaction_number ILIKE ?", "%"+params.Search+"%")
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}
	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("created_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Preload("Vehicle").
		Order("created_at DESC").
		Find(&txs).Error

	return txs, total, err
}

func (r *washTransactionRepository) ListByShift(ctx context.Context, shiftID uuid.UUID, params *pagination.PaginationParams) ([]entity.WashTransaction, int64, error) {
	var txs []entity.WashTransaction
	var total int64

	query := conn(ctx, r.db).Model(&entity.WashTransaction{}).
		Where("shift_id = ?", shiftID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Customer").
		Preload("Products.Product").
		Order("created_at ASC").
		Find(&txs).Error

	return txs, total, err
}

func (r *washTransactionRepository) SumCompletedByShift(ctx context.Context, shiftID uuid.UUID) (int64, error) {
	var sum int64
	err := conn(ctx, r.db).Model(&entity.WashTransaction{}).
		Where("shift_id = ? AND status = ?", shiftID, enum.WashTransactionStatusCompleted).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *washTransactionRepository) SumByShiftAndMethod(ctx context.Context, shiftID uuid.UUID, method enum.WashPaymentMethod) (int64, error) {
	var sum int64
	err := conn(ctx, r.db).Model(&entity.WashTransaction{}).
		Where("shift_id = ? AND payment_method = ?", shiftID, method).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *washTransactionRepository) CountByShift(ctx context.Context, shiftID uuid.UUID) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&entity.WashTransaction{}).
		Where("shift_id = ?", shiftID).
		Count(&count).Error
	return count, err
}

func (r *washTransactionRepository) CountCompletedByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&entity.WashTransaction{}).
		Where("customer_id = ? AND status = ?", customerID, enum.WashTransactionStatusCompleted).
		Count(&count).Error
	return count, err
}

func (r *washTransactionRepository) NextSequence(ctx context.Context, date time.Time) (int, error) {
	var count int64
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	err := conn(ctx, r.db).Model(&entity.WashTransaction{}).
		Unscoped().
		Where("created_at >= ? AND created_at < ?", start, start.AddDate(0, 0, 1)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count) + 1, nil
}
