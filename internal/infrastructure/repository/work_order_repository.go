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

type workOrderRepository struct {
	db *gorm.DB
}

// NewWorkOrderRepository creates a new work order repository
func NewWorkOrderRepository(db *gorm.DB) domainRepo.WorkOrderRepository {
	return &workOrderRepository{db: db}
}

func (r *workOrderRepository) Create(ctx context.Context, order *entity.WorkOrder) error {
	// GORM persists the Services and Fds slices with the parent row.
	return conn(ctx, r.db).Create(order).Error
}

func (r *workOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.WorkOrder, error) {
	var order entity.WorkOrder
	err := conn(ctx, r.db).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *workOrderRepository) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.WorkOrder, error) {
	var order entity.WorkOrder
	err := conn(ctx, r.db).
		Preload("Customer").
		Preload("Vehicle").
		Preload("Services.ServiceItem").
		Preload("Fds.FdItem").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *workOrderRepository) Update(ctx context.Context, order *entity.WorkOrder) error {
	return conn(ctx, r.db).Save(order).Error
}

func (r *workOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.WorkOrderStatus) error {
	return conn(ctx, r.db).Model(&entity.WorkOrder{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *workOrderRepository) List(ctx context.Context, params *domainRepo.WorkOrderFilterParams) ([]entity.WorkOrder, int64, error) {
	var orders []entity.WorkOrder
	var total int64

	query := conn(ctx, r.db).Model(&entity.WorkOrder{})

	if params.Search != "" {
		query = query.Where("code ILIKE ?", "%"+params.Search+"%")
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}
	if params.QueueDate != nil {
		query = query.Where("queue_date = ?", params.QueueDate.Format("2006-01-02"))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Preload("Vehicle").
		Order("queue_date DESC, queue_no DESC").
		Find(&orders).Error

	return orders, total, err
}

// NextQueueNo issues the next daily queue number. Runs inside the caller's
// transaction when one is open.
func (r *workOrderRepository) NextQueueNo(ctx context.Context, date time.Time) (int, error) {
	var max int
	err := conn(ctx, r.db).Model(&entity.WorkOrder{}).
		Where("queue_date = ?", date.Format("2006-01-02")).
		Select("COALESCE(MAX(queue_no), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}
