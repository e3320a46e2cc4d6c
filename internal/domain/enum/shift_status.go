package enum

// ShiftStatus represents the state of a cashier shift
type ShiftStatus string

const (
	ShiftStatusActive   ShiftStatus = "active"
	ShiftStatusClosed   ShiftStatus = "closed"
	ShiftStatusCanceled ShiftStatus = "canceled"
)

// Closed and canceled are both terminal; a shift never reopens.
var shiftTransitions = transitionTable[ShiftStatus]{
	ShiftStatusActive: {ShiftStatusClosed, ShiftStatusCanceled},
}

func (s ShiftStatus) String() string { return string(s) }

// CanTransition reports whether the move from s to next is allowed.
func (s ShiftStatus) CanTransition(next ShiftStatus) bool {
	return shiftTransitions.canTransition(s, next)
}
