package request

// StartShiftRequest represents a start shift request
type StartShiftRequest struct {
	InitialCash  int64  `json:"initial_cash" binding:"min=0"`
	ReceivedFrom string `json:"received_from" binding:"max=255"`
}

// CloseShiftRequest represents a close shift request
type CloseShiftRequest struct {
	PhysicalCash int64 `json:"physical_cash" binding:"min=0"`
}
