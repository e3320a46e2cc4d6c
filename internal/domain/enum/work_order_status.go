package enum

// WorkOrderStatus represents the lifecycle state of a work order
type WorkOrderStatus string

const (
	WorkOrderStatusNew        WorkOrderStatus = "new"
	WorkOrderStatusQueued     WorkOrderStatus = "queued"
	WorkOrderStatusWashing    WorkOrderStatus = "washing"
	WorkOrderStatusDrying     WorkOrderStatus = "drying"
	WorkOrderStatusInspection WorkOrderStatus = "inspection"
	WorkOrderStatusReady      WorkOrderStatus = "ready"
	WorkOrderStatusPaid       WorkOrderStatus = "paid"
	WorkOrderStatusDone       WorkOrderStatus = "done"
	WorkOrderStatusCancelled  WorkOrderStatus = "cancelled"
	WorkOrderStatusOnHold     WorkOrderStatus = "on_hold"
)

var workOrderTransitions = transitionTable[WorkOrderStatus]{
	WorkOrderStatusNew:        {WorkOrderStatusQueued, WorkOrderStatusOnHold, WorkOrderStatusCancelled},
	WorkOrderStatusQueued:     {WorkOrderStatusWashing, WorkOrderStatusOnHold, WorkOrderStatusCancelled},
	WorkOrderStatusWashing:    {WorkOrderStatusDrying, WorkOrderStatusOnHold, WorkOrderStatusCancelled},
	WorkOrderStatusDrying:     {WorkOrderStatusInspection, WorkOrderStatusReady},
	WorkOrderStatusInspection: {WorkOrderStatusReady, WorkOrderStatusWashing},
	WorkOrderStatusReady:      {WorkOrderStatusPaid, WorkOrderStatusCancelled},
	WorkOrderStatusPaid:       {WorkOrderStatusDone},
	WorkOrderStatusOnHold:     {WorkOrderStatusQueued, WorkOrderStatusCancelled},
}

func (s WorkOrderStatus) String() string { return string(s) }

// Valid reports whether s is one of the known work order statuses.
func (s WorkOrderStatus) Valid() bool {
	switch s {
	case WorkOrderStatusNew, WorkOrderStatusQueued, WorkOrderStatusWashing,
		WorkOrderStatusDrying, WorkOrderStatusInspection, WorkOrderStatusReady,
		WorkOrderStatusPaid, WorkOrderStatusDone, WorkOrderStatusCancelled,
		WorkOrderStatusOnHold:
		return true
	}
	return false
}

// CanTransition reports whether the move from s to next is allowed.
// Done and cancelled are terminal.
func (s WorkOrderStatus) CanTransition(next WorkOrderStatus) bool {
	return workOrderTransitions.canTransition(s, next)
}

// IsTerminal reports whether no further transitions are possible.
func (s WorkOrderStatus) IsTerminal() bool {
	return len(workOrderTransitions[s]) == 0
}
