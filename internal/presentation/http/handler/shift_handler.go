package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/application/service"
	"github.com/kilatwash/washpos-api/internal/presentation/http/dto/request"
	"github.com/kilatwash/washpos-api/internal/presentation/http/dto/response"
)

// ShiftHandler handles shift ledger HTTP requests
type ShiftHandler struct {
	shiftService *service.ShiftService
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(shiftService *service.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftService: shiftService}
}

// Start handles opening a shift for the authenticated user
func (h *ShiftHandler) Start(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.StartShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	shift, err := h.shiftService.StartShift(c.Request.Context(), &service.StartShiftInput{
		UserID:       *userID,
		InitialCash:  req.InitialCash,
		ReceivedFrom: req.ReceivedFrom,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Shift started successfully", shift)
}

// Close handles closing the authenticated user's active shift with cash
// reconciliation
func (h *ShiftHandler) Close(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CloseShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	summary, err := h.shiftService.CloseActiveShift(c.Request.Context(), *userID, req.PhysicalCash)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shift closed successfully", summary)
}

// Cancel handles voiding an active shift
func (h *ShiftHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid shift ID")
		return
	}

	shift, err := h.shiftService.CancelShift(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shift cancelled successfully", shift)
}

// Current returns the authenticated user's active shift with live figures
func (h *ShiftHandler) Current(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	stats, err := h.shiftService.CurrentStats(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Current shift retrieved successfully", stats)
}

// Transactions pages through the wash transactions owned by a shift
func (h *ShiftHandler) Transactions(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid shift ID")
		return
	}

	params := paginationFromQuery(c)

	result, err := h.shiftService.ShiftTransactions(c.Request.Context(), id, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shift transactions retrieved successfully", result)
}

// List handles listing shifts
func (h *ShiftHandler) List(c *gin.Context) {
	params := paginationFromQuery(c)

	userID := uuid.Nil
	if s := c.Query("user_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			response.BadRequest(c, "Invalid user ID")
			return
		}
		userID = id
	}

	result, err := h.shiftService.ListShifts(c.Request.Context(), userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Shifts retrieved successfully", result)
}
