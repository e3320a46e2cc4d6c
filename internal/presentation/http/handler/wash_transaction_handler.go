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

// WashTransactionHandler handles wash transaction HTTP requests
type WashTransactionHandler struct {
	washService *service.WashTransactionService
	posService  *service.POSService
}

// NewWashTransactionHandler creates a new wash transaction handler
func NewWashTransactionHandler(washService *service.WashTransactionService, posService *service.POSService) *WashTransactionHandler {
	return &WashTransactionHandler{
		washService: washService,
		posService:  posService,
	}
}

// Create handles creating a wash transaction
func (h *WashTransactionHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateWashTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.CreateWashTransactionInput{
		CustomerID:        req.CustomerID,
		CustomerVehicleID: req.CustomerVehicleID,
		UserID:            *userID,
		PaymentMethod:     enum.WashPaymentMethod(req.PaymentMethod),
	}
	for _, line := range req.Products {
		input.Products = append(input.Products, service.WashProductInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	wt, err := h.washService.CreateWashTransaction(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Wash transaction created successfully", wt)
}

// Get handles getting a single wash transaction
func (h *WashTransactionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid wash transaction ID")
		return
	}

	wt, err := h.washService.GetWashTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Wash transaction retrieved successfully", wt)
}

// List handles listing wash transactions
func (h *WashTransactionHandler) List(c *gin.Context) {
	var filter request.WashTransactionFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.WashTransactionFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search: filter.Search,
	}
	params.Pagination.Validate()

	if filter.Status != "" {
		status := enum.WashTransactionStatus(filter.Status)
		if !status.Valid() {
			response.BadRequest(c, "Unknown wash transaction status")
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
	if filter.StartDate != "" {
		start, err := time.ParseInLocation("2006-01-02", filter.StartDate, time.Local)
		if err != nil {
			response.BadRequest(c, "Invalid start date, expected YYYY-MM-DD")
			return
		}
		params.StartDate = &start
	}
	if filter.EndDate != "" {
		end, err := time.ParseInLocation("2006-01-02", filter.EndDate, time.Local)
		if err != nil {
			response.BadRequest(c, "Invalid end date, expected YYYY-MM-DD")
			return
		}
		end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
		params.EndDate = &end
	}

	result, err := h.washService.ListWashTransactions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Wash transactions retrieved successfully", result)
}

// UpdateStatus handles moving a wash transaction through its lifecycle
func (h *WashTransactionHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid wash transaction ID")
		return
	}

	var req request.UpdateWashStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	wt, err := h.washService.UpdateStatus(c.Request.Context(), id, enum.WashTransactionStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Wash transaction status updated successfully", wt)
}

// Pay handles settling a wash transaction through the POS
func (h *WashTransactionHandler) Pay(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid wash transaction ID")
		return
	}

	var req request.PayWashTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.posService.PayWashTransaction(c.Request.Context(), id, &service.PayWashTransactionInput{
		UserID:         *userID,
		PaymentMethod:  enum.PaymentMethod(req.PaymentMethod),
		AmountPaid:     req.AmountPaid,
		DiscountAmount: req.DiscountAmount,
		TaxAmount:      req.TaxAmount,
		PrintReceipt:   req.PrintReceipt,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	data := gin.H{
		"transaction":      result.Transaction,
		"wash_transaction": result.WashTransaction,
	}
	if result.Warning != "" {
		response.SuccessWithWarning(c, 200, "Wash transaction settled successfully", data, result.Warning)
		return
	}
	response.OK(c, "Wash transaction settled successfully", data)
}
