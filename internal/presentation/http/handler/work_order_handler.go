package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/application/service"
	"github.com/kilatwash/washpos-api/internal/domain/enum"
	"github.com/kilatwash/washpos-api/internal/domain/repository"
	"github.com/kilatwash/washpos-api/internal/presentation/http/dto/request"
	"github.com/kilatwash/washpos-api/internal/presentation/http/dto/response"
	"github.com/kilatwash/washpos-api/pkg/pagination"
)

// WorkOrderHandler handles work order HTTP requests
type WorkOrderHandler struct {
	workOrderService *service.WorkOrderService
}

// NewWorkOrderHandler creates a new work order handler
func NewWorkOrderHandler(workOrderService *service.WorkOrderService) *WorkOrderHandler {
	return &WorkOrderHandler{workOrderService: workOrderService}
}

// Create handles creating a work order
func (h *WorkOrderHandler) Create(c *gin.Context) {
	var req request.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.CreateWorkOrderInput{
		CustomerID:        req.CustomerID,
		CustomerVehicleID: req.CustomerVehicleID,
		Notes:             req.Notes,
	}
	for _, line := range req.Services {
		input.Services = append(input.Services, service.WorkOrderServiceInput{
			ServiceItemID: line.ServiceItemID,
			Quantity:      line.Quantity,
		})
	}
	for _, line := range req.Fds {
		input.Fds = append(input.Fds, service.WorkOrderFdInput{
			FdItemID: line.FdItemID,
			Quantity: line.Quantity,
		})
	}

	order, err := h.workOrderService.CreateWorkOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Work order created successfully", order)
}

// Get handles getting a single work order
func (h *WorkOrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid work order ID")
		return
	}

	order, err := h.workOrderService.GetWorkOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Work order retrieved successfully", order)
}

// List handles listing work orders
func (h *WorkOrderHandler) List(c *gin.Context) {
	var filter request.WorkOrderFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.WorkOrderFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search: filter.Search,
	}
	params.Pagination.Validate()

	if filter.Status != "" {
		status := enum.WorkOrderStatus(filter.Status)
		if !status.Valid() {
			response.BadRequest(c, "Unknown work order status")
			return
		}
		params.Status = &status
	}
	if filter.CustomerID != "" {
		customerID, err := uuid.Parse(filter.CustomerID)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		params.CustomerID = &customerID
	}
	if filter.QueueDate != "" {
		date, err := time.ParseInLocation("2006-01-02", filter.QueueDate, time.Local)
		if err != nil {
			response.BadRequest(c, "Invalid queue date, expected YYYY-MM-DD")
			return
		}
		params.QueueDate = &date
	}

	result, err := h.workOrderService.ListWorkOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Work orders retrieved successfully", result)
}

// UpdateStatus handles moving a work order through its lifecycle
func (h *WorkOrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid work order ID")
		return
	}

	var req request.UpdateWorkOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.workOrderService.UpdateStatus(c.Request.Context(), id, enum.WorkOrderStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Work order status updated successfully", order)
}

// Confirm handles moving a new work order into the queue
func (h *WorkOrderHandler) Confirm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid work order ID")
		return
	}

	order, err := h.workOrderService.Confirm(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Work order confirmed successfully", order)
}

// Cancel handles cancelling a work order
func (h *WorkOrderHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid work order ID")
		return
	}

	order, err := h.workOrderService.Cancel(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Work order cancelled successfully", order)
}
