package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/domain/entity"
	"github.com/kilatwash/washpos-api/internal/domain/enum"
	"github.com/kilatwash/washpos-api/pkg/pagination"
)

// WorkOrderFilterParams are the supported work order list filters
type WorkOrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.WorkOrderStatus
	CustomerID *uuid.UUID
	QueueDate  *time.Time
	Search     string
}

// WorkOrderRepository defines the interface for work order data operations
type WorkOrderRepository interface {
	// Create persists the order together with its service and F&D lines.
	Create(ctx context.Context, order *entity.WorkOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.WorkOrder, error)
	GetWithLines(ctx context.Context, id uuid.UUID) (*entity.WorkOrder, error)
	Update(ctx context.Context, order *entity.WorkOrder) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.WorkOrderStatus) error
	List(ctx context.Context, params *WorkOrderFilterParams) ([]entity.WorkOrder, int64, error)
	// NextQueueNo returns the next daily queue number for the given date.
	NextQueueNo(ctx context.Context, date time.Time) (int, error)
}
