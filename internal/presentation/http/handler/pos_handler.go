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

// POSHandler handles settlement HTTP requests
type POSHandler struct {
	posService *service.POSService
}

// NewPOSHandler creates a new POS handler
func NewPOSHandler(posService *service.POSService) *POSHandler {
	return &POSHandler{posService: posService}
}

// Checkout handles direct checkout and work order settlement
func (h *POSHandler) Checkout(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.CheckoutInput{
		CustomerID:        req.CustomerID,
		CustomerVehicleID: req.CustomerVehicleID,
		WorkOrderID:       req.WorkOrderID,
		UserID:            *userID,
		PaymentMethod:     enum.PaymentMethod(req.PaymentMethod),
		AmountPaid:        req.AmountPaid,
		DiscountAmount:    req.DiscountAmount,
		TaxAmount:         req.TaxAmount,
		PrintReceipt:      req.PrintReceipt,
	}
	for _, line := range req.Items {
		input.Items = append(input.Items, service.POSItemInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	result, err := h.posService.Checkout(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	if result.Warning != "" {
		response.SuccessWithWarning(c, 201, "Transaction completed successfully", result.Transaction, result.Warning)
		return
	}
	response.Created(c, "Transaction completed successfully", result.Transaction)
}

// Get handles getting a single POS transaction
func (h *POSHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	tx, err := h.posService.GetPOSTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction retrieved successfully", tx)
}

// List handles listing POS transactions
func (h *POSHandler) List(c *gin.Context) {
	var filter request.POSFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.POSTransactionFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search: filter.Search,
	}
	params.Pagination.Validate()

	if filter.Status != "" {
		status := enum.POSTransactionStatus(filter.Status)
		params.Status = &status
	}
	if filter.PaymentMethod != "" {
		method := enum.PaymentMethod(filter.PaymentMethod)
		if !method.Valid() {
			response.BadRequest(c, "Unknown payment method")
			return
		}
		params.PaymentMethod = &method
	}
	if filter.CustomerID != "" {
		customerID, err := uuid.Parse(filter.CustomerID)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		params.CustomerID = &customerID
	}
	if filter.ShiftID != "" {
		shiftID, err := uuid.Parse(filter.ShiftID)
		if err != nil {
			response.BadRequest(c, "Invalid shift ID")
			return
		}
		params.ShiftID = &shiftID
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

	result, err := h.posService.ListPOSTransactions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Transactions retrieved successfully", result)
}

// Delete handles deleting a pending POS transaction
func (h *POSHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	if err := h.posService.DeletePOSTransaction(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// DailyReport builds the sales report for a calendar date (default today)
func (h *POSHandler) DailyReport(c *gin.Context) {
	date := time.Now()
	if s := c.Query("date"); s != "" {
		parsed, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	report, err := h.posService.GetDailySalesReport(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily sales report generated successfully", report)
}

// CreateQRISCharge opens a gateway charge for a pending QRIS transaction
func (h *POSHandler) CreateQRISCharge(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	charge, err := h.posService.CreateQRISCharge(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "QRIS charge created successfully", charge)
}

// CheckQRISStatus polls the gateway for a QRIS transaction's payment state
func (h *POSHandler) CheckQRISStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	status, err := h.posService.CheckQRISStatus(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "QRIS status retrieved successfully", status)
}
