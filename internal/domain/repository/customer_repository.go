package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/domain/entity"
	"github.com/kilatwash/washpos-api/pkg/pagination"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)
	// UpdateCounters overwrites the cached transaction counters.
	UpdateCounters(ctx context.Context, id uuid.UUID, total, premium int64) error
	// ClearDeviceToken removes the stored push token (on UNREGISTERED).
	ClearDeviceToken(ctx context.Context, id uuid.UUID) error
}

// CustomerVehicleRepository defines the interface for vehicle registry operations
type CustomerVehicleRepository interface {
	Create(ctx context.Context, vehicle *entity.CustomerVehicle) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CustomerVehicle, error)
	GetByLicensePlate(ctx context.Context, plate string) (*entity.CustomerVehicle, error)
	Update(ctx context.Context, vehicle *entity.CustomerVehicle) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.CustomerVehicle, error)
}

// MembershipTypeRepository defines the interface for membership tier operations
type MembershipTypeRepository interface {
	Create(ctx context.Context, mt *entity.MembershipType) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MembershipType, error)
	Update(ctx context.Context, mt *entity.MembershipType) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.MembershipType, error)
}
