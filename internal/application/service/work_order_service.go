package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/domain/entity"
	"github.com/kilatwash/washpos-api/internal/domain/enum"
	"github.com/kilatwash/washpos-api/internal/domain/repository"
	"github.com/kilatwash/washpos-api/pkg/apperror"
	"github.com/kilatwash/washpos-api/pkg/pagination"
	"github.com/kilatwash/washpos-api/pkg/utils"
)

// WorkOrderService handles the work order queue
type WorkOrderService struct {
	workOrderRepo repository.WorkOrderRepository
	customerRepo  repository.CustomerRepository
	vehicleRepo   repository.CustomerVehicleRepository
	fdItemRepo    repository.FdItemRepository
	posTxRepo     repository.POSTransactionRepository
	catalog       *CatalogService
	txManager     repository.TxManager
}

// NewWorkOrderService creates a new work order service
func NewWorkOrderService(
	workOrderRepo repository.WorkOrderRepository,
	customerRepo repository.CustomerRepository,
	vehicleRepo repository.CustomerVehicleRepository,
	fdItemRepo repository.FdItemRepository,
	posTxRepo repository.POSTransactionRepository,
	catalog *CatalogService,
	txManager repository.TxManager,
) *WorkOrderService {
	return &WorkOrderService{
		workOrderRepo: workOrderRepo,
		customerRepo:  customerRepo,
		vehicleRepo:   vehicleRepo,
		fdItemRepo:    fdItemRepo,
		posTxRepo:     posTxRepo,
		catalog:       catalog,
		txManager:     txManager,
	}
}

// WorkOrderServiceInput is a requested service line
type WorkOrderServiceInput struct {
	ServiceItemID uuid.UUID
	Quantity      int
}

// WorkOrderFdInput is a requested food & drink line
type WorkOrderFdInput struct {
	FdItemID uuid.UUID
	Quantity int
}

// CreateWorkOrderInput represents the create work order input
type CreateWorkOrderInput struct {
	CustomerID        uuid.UUID
	CustomerVehicleID uuid.UUID
	Notes             *string
	Services          []WorkOrderServiceInput
	Fds               []WorkOrderFdInput
}

// CreateWorkOrder creates a queued work order. Each service line's unit price
// is resolved from the price matrix using the vehicle's dimensions and
// snapshotted; F&D lines snapshot the menu price. The queue number is a daily
// sequence.
func (s *WorkOrderService) CreateWorkOrder(ctx context.Context, input *CreateWorkOrderInput) (*entity.WorkOrder, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, input.CustomerVehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperror.NewNotFoundError("Vehicle")
	}
	if vehicle.CustomerID != input.CustomerID {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "customer_vehicle_id", Message: "vehicle does not belong to customer"},
		})
	}

	if len(input.Services) == 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "services", Message: "at least one service line is required"},
		})
	}

	serviceLines := make([]entity.WorkOrderService, 0, len(input.Services))
	for _, line := range input.Services {
		if line.Quantity <= 0 {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "services", Message: "quantity must be positive"},
			})
		}
		item, err := s.catalog.GetServiceItem(ctx, line.ServiceItemID)
		if err != nil {
			return nil, err
		}

		price, err := s.catalog.ResolvePrice(ctx, &PriceLookup{
			ServiceItemID: item.ID,
			EngineClassID: vehicle.EngineClassID,
			HelmetTypeID:  vehicle.HelmetTypeID,
			CarSizeID:     vehicle.CarSizeID,
			ApparelTypeID: vehicle.ApparelTypeID,
		})
		if err != nil {
			return nil, err
		}

		serviceLines = append(serviceLines, entity.WorkOrderService{
			ServiceItemID: item.ID,
			Quantity:      line.Quantity,
			UnitPrice:     price,
			Subtotal:      price * int64(line.Quantity),
		})
	}

	fdLines := make([]entity.WorkOrderFd, 0, len(input.Fds))
	for _, line := range input.Fds {
		if line.Quantity <= 0 {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "fds", Message: "quantity must be positive"},
			})
		}
		item, err := s.fdItemRepo.GetByID(ctx, line.FdItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, apperror.NewNotFoundError("F&D item")
		}
		fdLines = append(fdLines, entity.WorkOrderFd{
			FdItemID:  item.ID,
			Quantity:  line.Quantity,
			UnitPrice: item.Price,
			Subtotal:  item.Price * int64(line.Quantity),
		})
	}

	var order *entity.WorkOrder
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		now := time.Now()
		queueNo, err := s.workOrderRepo.NextQueueNo(ctx, now)
		if err != nil {
			return err
		}

		order = &entity.WorkOrder{
			Code:              utils.FormatDocNumber("WO", now, queueNo),
			QueueNo:           queueNo,
			QueueDate:         time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
			CustomerID:        input.CustomerID,
			CustomerVehicleID: input.CustomerVehicleID,
			Status:            enum.WorkOrderStatusNew,
			Notes:             input.Notes,
			Services:          serviceLines,
			Fds:               fdLines,
		}
		return s.workOrderRepo.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	return s.workOrderRepo.GetWithLines(ctx, order.ID)
}

// GetWorkOrder retrieves a work order with its lines
func (s *WorkOrderService) GetWorkOrder(ctx context.Context, id uuid.UUID) (*entity.WorkOrder, error) {
	order, err := s.workOrderRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Work order")
	}
	return order, nil
}

// ListWorkOrders lists work orders with filtering
func (s *WorkOrderService) ListWorkOrders(ctx context.Context, params *repository.WorkOrderFilterParams) (*pagination.PaginatedResult[entity.WorkOrder], error) {
	orders, total, err := s.workOrderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// UpdateStatus moves a work order through its lifecycle. Every move is
// validated against the allowed-transition table.
func (s *WorkOrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.WorkOrderStatus) (*entity.WorkOrder, error) {
	if !status.Valid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "status", Message: "unknown work order status"},
		})
	}

	order, err := s.workOrderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Work order")
	}

	if !order.Status.CanTransition(status) {
		return nil, apperror.NewInvalidStateError(
			"Cannot move work order from " + order.Status.String() + " to " + status.String())
	}

	if err := s.workOrderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

// Confirm moves a new work order into the queue and stamps confirmed_at
func (s *WorkOrderService) Confirm(ctx context.Context, id uuid.UUID) (*entity.WorkOrder, error) {
	order, err := s.workOrderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Work order")
	}

	if order.Status != enum.WorkOrderStatusNew {
		return nil, apperror.NewInvalidStateError("Only new work orders can be confirmed")
	}

	now := time.Now()
	order.Status = enum.WorkOrderStatusQueued
	order.ConfirmedAt = &now
	if err := s.workOrderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Cancel cancels a work order. Orders that reached paid or done, or that a
// completed settlement references, can no longer be cancelled.
func (s *WorkOrderService) Cancel(ctx context.Context, id uuid.UUID) (*entity.WorkOrder, error) {
	order, err := s.workOrderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Work order")
	}

	switch order.Status {
	case enum.WorkOrderStatusPaid, enum.WorkOrderStatusDone, enum.WorkOrderStatusCancelled:
		return nil, apperror.NewInvalidStateError(
			"Cannot cancel a work order in status " + order.Status.String())
	}

	settled, err := s.posTxRepo.HasCompletedForWorkOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if settled {
		return nil, apperror.NewInvalidStateError("Work order has a completed settlement")
	}

	if err := s.workOrderRepo.UpdateStatus(ctx, id, enum.WorkOrderStatusCancelled); err != nil {
		return nil, err
	}
	order.Status = enum.WorkOrderStatusCancelled
	return order, nil
}
