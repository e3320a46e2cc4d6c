package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/domain/entity"
	"github.com/kilatwash/washpos-api/internal/domain/enum"
	domainRepo "github.com/kilatwash/washpos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type posTransactionRepository struct {
	db *gorm.DB
}

// NewPOSTransactionRepository creates a new settlement repository
func NewPOSTransactionRepository(db *gorm.DB) domainRepo.POSTransactionRepository {
	return &posTransactionRepository{db: db}
}

func (r *posTransactionRepository) Create(ctx context.Context, t *entity.POSTransaction) error {
	// GORM persists the Items slice with the parent row.
	return conn(ctx, r.db).Create(t).Error
}

func (r *posTransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.POSTransaction, error) {
	var t entity.POSTransaction
	err := conn(ctx, r.db).First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &t, err
}

func (r *posTransactionRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.POSTransaction, error) {
	var t entity.POSTransaction
	err := conn(ctx, r.db).
		Preload("Customer").
		Preload("Vehicle").
		Preload("Items.Product").
		Preload("WorkOrder").
		Preload("WashTransaction").
		First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &t, err
}

func (r *posTransactionRepository) Update(ctx context.Context, t *entity.POSTransaction) error {
	return conn(ctx, r.db).Save(t).Error
}

func (r *posTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Delete(&entity.POSTransaction{}, "id = ?", id).Error
}

func (r *posTransactionRepository) List(ctx context.Context, params *domainRepo.POSTransactionFilterParams) ([]entity.POSTransaction, int64, error) {
	var txs []entity.POSTransaction
	var total int64

	query := conn(ctx, r.db).Model(&entity.POSTransaction{})

	if params.Search != "" {
		query = query.Where("transaction_number ILIKE ?", "%"+params.Search+"%")
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.PaymentMethod != nil {
		query = query.Where("payment_method = ?", *params.PaymentMethod)
	}
	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}
	if params.ShiftID != nil {
		query = query.Where("shift_id = ?", *params.ShiftID)
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
		Order("created_at DESC").
		Find(&txs).Error

	return txs, total, err
}

func (r *posTransactionRepository) HasCompletedForWashTransaction(ctx context.Context, washTransactionID uuid.UUID) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&entity.POSTransaction{}).
		Where("wash_transaction_id = ? AND status = ?", washTransactionID, enum.POSStatusCompleted).
		Count(&count).Error
	return count > 0, err
}

func (r *posTransactionRepository) HasCompletedForWorkOrder(ctx context.Context, workOrderID uuid.UUID) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&entity.POSTransaction{}).
		Where("work_order_id = ? AND status = ?", workOrderID, enum.POSStatusCompleted).
		Count(&count).Error
	return count > 0, err
}

func (r *posTransactionRepository) ListCompletedByDate(ctx context.Context, date time.Time) ([]entity.POSTransaction, error) {
	var txs []entity.POSTransaction
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	err := conn(ctx, r.db).
		Where("status = ? AND completed_at >= ? AND completed_at < ?",
			enum.POSStatusCompleted, start, start.AddDate(0, 0, 1)).
		Preload("Customer").
		Preload("Items.Product").
		Order("completed_at ASC").
		Find(&txs).Error
	return txs, err
}

func (r *posTransactionRepository) CountCompletedByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&entity.POSTransaction{}).
		Where("customer_id = ? AND status = ?", customerID, enum.POSStatusCompleted).
		Count(&count).Error
	return count, err
}

// CountPremiumCompletedByCustomer counts settlements whose linked work order
// has at least one premium service line.
func (r *posTransactionRepository) CountPremiumCompletedByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&entity.POSTransaction{}).
		Where("customer_id = ? AND status = ?", customerID, enum.POSStatusCompleted).
		Where(`work_order_id IN (
			SELECT wos.work_order_id FROM work_order_services wos
			JOIN service_items si ON si.id = wos.service_item_id
			WHERE si.is_premium = true)`).
		Count(&count).Error
	return count, err
}

func (r *posTransactionRepository) NextSequence(ctx context.Context, date time.Time) (int, error) {
	var count int64
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	err := conn(ctx, r.db).Model(&entity.POSTransaction{}).
		Unscoped().
		Where("created_at >= ? AND created_at < ?", start, start.AddDate(0, 0, 1)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count) + 1, nil
}
