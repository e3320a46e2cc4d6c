package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/application/service"
	"github.com/kilatwash/washpos-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles receipt printing HTTP requests
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// Status returns printer connection status
func (h *PrinterHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status retrieved successfully", h.printerService.GetStatus())
}

// TestPrint sends a test page to the printer
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	receipt, err := h.printerService.TestPrint()
	if err != nil {
		// Return the receipt data alongside the warning so the client can
		// render it when no physical printer is attached.
		response.SuccessWithWarning(c, 200, "Test receipt generated", receipt, "Printing failed: "+err.Error())
		return
	}

	response.OK(c, "Test page printed successfully", receipt)
}

// PrintReceipt prints (or reprints) the receipt for a POS transaction
func (h *PrinterHandler) PrintReceipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	receipt, err := h.printerService.PrintReceipt(c.Request.Context(), id)
	if err != nil {
		if receipt != nil {
			response.SuccessWithWarning(c, 200, "Receipt generated", receipt, "Printing failed")
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed successfully", receipt)
}
