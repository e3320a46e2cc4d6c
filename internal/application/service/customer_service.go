package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/domain/entity"
	"github.com/kilatwash/washpos-api/internal/domain/enum"
	"github.com/kilatwash/washpos-api/internal/domain/repository"
	"github.com/kilatwash/washpos-api/pkg/apperror"
	"github.com/kilatwash/washpos-api/pkg/pagination"
)

// CustomerService handles customer, vehicle, and membership operations
type CustomerService struct {
	customerRepo   repository.CustomerRepository
	vehicleRepo    repository.CustomerVehicleRepository
	membershipRepo repository.MembershipTypeRepository
	washTxRepo     repository.WashTransactionRepository
	posTxRepo      repository.POSTransactionRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	vehicleRepo repository.CustomerVehicleRepository,
	membershipRepo repository.MembershipTypeRepository,
	washTxRepo repository.WashTransactionRepository,
	posTxRepo repository.POSTransactionRepository,
) *CustomerService {
	return &CustomerService{
		customerRepo:   customerRepo,
		vehicleRepo:    vehicleRepo,
		membershipRepo: membershipRepo,
		washTxRepo:     washTxRepo,
		posTxRepo:      posTxRepo,
	}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name        string
	Phone       string
	Address     *string
	DeviceToken *string
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	existing, err := s.customerRepo.GetByPhone(ctx, input.Phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Phone number already registered")
	}

	customer := &entity.Customer{
		Name:        input.Name,
		Phone:       input.Phone,
		Address:     input.Address,
		DeviceToken: input.DeviceToken,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with optional search
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	Name        *string
	Phone       *string
	Address     *string
	DeviceToken *string
}

// UpdateCustomer updates a customer's profile fields
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Phone != nil && *input.Phone != customer.Phone {
		existing, err := s.customerRepo.GetByPhone(ctx, *input.Phone)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != customer.ID {
			return nil, apperror.NewConflictError("Phone number already registered")
		}
		customer.Phone = *input.Phone
	}
	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Address != nil {
		customer.Address = input.Address
	}
	if input.DeviceToken != nil {
		customer.DeviceToken = input.DeviceToken
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer soft-deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}
	return s.customerRepo.Delete(ctx, id)
}

// RecalculateCounters overwrites the customer's cached transaction counters
// from the transaction tables. Called after every owned transaction write.
func (s *CustomerService) RecalculateCounters(ctx context.Context, customerID uuid.UUID) error {
	washCount, err := s.washTxRepo.CountCompletedByCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	posCount, err := s.posTxRepo.CountCompletedByCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	premiumCount, err := s.posTxRepo.CountPremiumCompletedByCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	return s.customerRepo.UpdateCounters(ctx, customerID, washCount+posCount, premiumCount)
}

// AssignMembershipInput represents the assign membership input
type AssignMembershipInput struct {
	MembershipTypeID uuid.UUID
	Status           enum.MembershipStatus
}

// AssignMembership attaches a membership tier to a customer. Approval sets
// the expiry from the tier's duration.
func (s *CustomerService) AssignMembership(ctx context.Context, customerID uuid.UUID, input *AssignMembershipInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if !input.Status.Valid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "status", Message: "unknown membership status"},
		})
	}

	mt, err := s.membershipRepo.GetByID(ctx, input.MembershipTypeID)
	if err != nil {
		return nil, err
	}
	if mt == nil {
		return nil, apperror.NewNotFoundError("Membership type")
	}

	customer.MembershipTypeID = &mt.ID
	status := input.Status
	customer.MembershipStatus = &status
	if status == enum.MembershipApproved {
		expiry := time.Now().AddDate(0, 0, mt.DurationDays)
		customer.MembershipExpiresAt = &expiry
	} else {
		customer.MembershipExpiresAt = nil
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// RevokeMembership clears the customer's membership state
func (s *CustomerService) RevokeMembership(ctx context.Context, customerID uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	customer.ClearMembership()
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// CreateVehicleInput represents the register vehicle input
type CreateVehicleInput struct {
	Category      enum.VehicleCategory
	Brand         string
	Model         string
	Color         string
	LicensePlate  string
	EngineClassID *uuid.UUID
	HelmetTypeID  *uuid.UUID
	CarSizeID     *uuid.UUID
	ApparelTypeID *uuid.UUID
}

// CreateVehicle registers a vehicle for a customer. License plates are unique
// across the whole registry.
func (s *CustomerService) CreateVehicle(ctx context.Context, customerID uuid.UUID, input *CreateVehicleInput) (*entity.CustomerVehicle, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if !input.Category.Valid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "category", Message: "unknown vehicle category"},
		})
	}

	existing, err := s.vehicleRepo.GetByLicensePlate(ctx, input.LicensePlate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("License plate already registered")
	}

	vehicle := &entity.CustomerVehicle{
		CustomerID:    customerID,
		Category:      input.Category,
		Brand:         input.Brand,
		Model:         input.Model,
		Color:         input.Color,
		LicensePlate:  input.LicensePlate,
		EngineClassID: input.EngineClassID,
		HelmetTypeID:  input.HelmetTypeID,
		CarSizeID:     input.CarSizeID,
		ApparelTypeID: input.ApparelTypeID,
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// ListVehicles lists a customer's registered vehicles
func (s *CustomerService) ListVehicles(ctx context.Context, customerID uuid.UUID) ([]entity.CustomerVehicle, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return s.vehicleRepo.ListByCustomer(ctx, customerID)
}

// UpdateVehicleInput represents the update vehicle input
type UpdateVehicleInput struct {
	Brand         *string
	Model         *string
	Color         *string
	LicensePlate  *string
	EngineClassID *uuid.UUID
	HelmetTypeID  *uuid.UUID
	CarSizeID     *uuid.UUID
	ApparelTypeID *uuid.UUID
}

// UpdateVehicle updates a registered vehicle
func (s *CustomerService) UpdateVehicle(ctx context.Context, vehicleID uuid.UUID, input *UpdateVehicleInput) (*entity.CustomerVehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperror.NewNotFoundError("Vehicle")
	}

	if input.LicensePlate != nil && *input.LicensePlate != vehicle.LicensePlate {
		existing, err := s.vehicleRepo.GetByLicensePlate(ctx, *input.LicensePlate)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != vehicle.ID {
			return nil, apperror.NewConflictError("License plate already registered")
		}
		vehicle.LicensePlate = *input.LicensePlate
	}
	if input.Brand != nil {
		vehicle.Brand = *input.Brand
	}
	if input.Model != nil {
		vehicle.Model = *input.Model
	}
	if input.Color != nil {
		vehicle.Color = *input.Color
	}
	if input.EngineClassID != nil {
		vehicle.EngineClassID = input.EngineClassID
	}
	if input.HelmetTypeID != nil {
		vehicle.HelmetTypeID = input.HelmetTypeID
	}
	if input.CarSizeID != nil {
		vehicle.CarSizeID = input.CarSizeID
	}
	if input.ApparelTypeID != nil {
		vehicle.ApparelTypeID = input.ApparelTypeID
	}

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// DeleteVehicle removes a vehicle from the registry
func (s *CustomerService) DeleteVehicle(ctx context.Context, vehicleID uuid.UUID) error {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return err
	}
	if vehicle == nil {
		return apperror.NewNotFoundError("Vehicle")
	}
	return s.vehicleRepo.Delete(ctx, vehicleID)
}

// CreateMembershipTypeInput represents the create membership tier input
type CreateMembershipTypeInput struct {
	Name         string
	DurationDays int
	Price        int64
	IsPremium    bool
}

// CreateMembershipType creates a new membership tier
func (s *CustomerService) CreateMembershipType(ctx context.Context, input *CreateMembershipTypeInput) (*entity.MembershipType, error) {
	mt := &entity.MembershipType{
		Name:         input.Name,
		DurationDays: input.DurationDays,
		Price:        input.Price,
		IsPremium:    input.IsPremium,
	}
	if err := s.membershipRepo.Create(ctx, mt); err != nil {
		return nil, err
	}
	return mt, nil
}

// ListMembershipTypes lists all membership tiers
func (s *CustomerService) ListMembershipTypes(ctx context.Context) ([]entity.MembershipType, error) {
	return s.membershipRepo.List(ctx)
}

// UpdateMembershipType updates a membership tier
func (s *CustomerService) UpdateMembershipType(ctx context.Context, id uuid.UUID, input *CreateMembershipTypeInput) (*entity.MembershipType, error) {
	mt, err := s.membershipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mt == nil {
		return nil, apperror.NewNotFoundError("Membership type")
	}

	mt.Name = input.Name
	mt.DurationDays = input.DurationDays
	mt.Price = input.Price
	mt.IsPremium = input.IsPremium

	if err := s.membershipRepo.Update(ctx, mt); err != nil {
		return nil, err
	}
	return mt, nil
}

// DeleteMembershipType removes a membership tier
func (s *CustomerService) DeleteMembershipType(ctx context.Context, id uuid.UUID) error {
	mt, err := s.membershipRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if mt == nil {
		return apperror.NewNotFoundError("Membership type")
	}
	return s.membershipRepo.Delete(ctx, id)
}
