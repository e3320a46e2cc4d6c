package enum

// MembershipStatus represents the approval state of a customer membership
type MembershipStatus string

const (
	MembershipPending  MembershipStatus = "pending"
	MembershipApproved MembershipStatus = "approved"
	MembershipRejected MembershipStatus = "rejected"
)

// Valid reports whether s is a known membership status.
func (s MembershipStatus) Valid() bool {
	return s == MembershipPending || s == MembershipApproved || s == MembershipRejected
}

// VehicleCategory is the class of item a service applies to
type VehicleCategory string

const (
	CategoryMotor   VehicleCategory = "motor"
	CategoryCar     VehicleCategory = "car"
	CategoryHelmet  VehicleCategory = "helmet"
	CategoryApparel VehicleCategory = "apparel"
	CategoryGeneral VehicleCategory = "general"
)

// Valid reports whether c is a known category.
func (c VehicleCategory) Valid() bool {
	switch c {
	case CategoryMotor, CategoryCar, CategoryHelmet, CategoryApparel, CategoryGeneral:
		return true
	}
	return false
}
