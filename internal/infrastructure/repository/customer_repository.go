package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/domain/entity"
	domainRepo "github.com/kilatwash/washpos-api/internal/domain/repository"
	"github.com/kilatwash/washpos-api/pkg/pagination"
	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) domainRepo.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return conn(ctx, r.db).Create(customer).Error
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customer entity.Customer
	err := conn(ctx, r.db).
		Preload("MembershipType").
		Preload("Vehicles").
		First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) GetByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	var customer entity.Customer
	err := conn(ctx, r.db).First(&customer, "phone = ?", phone).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	return conn(ctx, r.db).Save(customer).Error
}

func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Delete(&entity.Customer{}, "id = ?", id).Error
}

func (r *customerRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	var customers []entity.Customer
	var total int64

	query := conn(ctx, r.db).Model(&entity.Customer{})
	if search != "" {
		query = query.Where("name ILIKE ? OR phone ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("MembershipType").
		Order("created_at DESC").
		Find(&customers).Error

	return customers, total, err
}

// UpdateCounters bypasses Save so the membership BeforeSave hook does not fire
// on a pure cache refresh.
func (r *customerRepository) UpdateCounters(ctx context.Context, id uuid.UUID, total, premium int64) error {
	return conn(ctx, r.db).Model(&entity.Customer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_transactions":         total,
			"total_premium_transactions": premium,
		}).Error
}

func (r *customerRepository) ClearDeviceToken(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Model(&entity.Customer{}).
		Where("id = ?", id).
		Update("device_token", nil).Error
}

type customerVehicleRepository struct {
	db *gorm.DB
}

// NewCustomerVehicleRepository creates a new vehicle registry repository
func NewCustomerVehicleRepository(db *gorm.DB) domainRepo.CustomerVehicleRepository {
	return &customerVehicleRepository{db: db}
}

func (r *customerVehicleRepository) Create(ctx context.Context, vehicle *entity.CustomerVehicle) error {
	return conn(ctx, r.db).Create(vehicle).Error
}

func (r *customerVehicleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CustomerVehicle, error) {
	var vehicle entity.CustomerVehicle
	err := conn(ctx, r.db).
		Preload("EngineClass").
		Preload("CarSize").
		First(&vehicle, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &vehicle, err
}

func (r *customerVehicleRepository) GetByLicensePlate(ctx context.Context, plate string) (*entity.CustomerVehicle, error) {
	var vehicle entity.CustomerVehicle
	err := conn(ctx, r.db).First(&vehicle, "license_plate = ?", plate).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &vehicle, err
}

func (r *customerVehicleRepository) Update(ctx context.Context, vehicle *entity.CustomerVehicle) error {
	return conn(ctx, r.db).Save(vehicle).Error
}

func (r *customerVehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Delete(&entity.CustomerVehicle{}, "id = ?", id).Error
}

func (r *customerVehicleRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.CustomerVehicle, error) {
	var vehicles []entity.CustomerVehicle
	err := conn(ctx, r.db).
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Find(&vehicles).Error
	return vehicles, err
}

type membershipTypeRepository struct {
	db *gorm.DB
}

// NewMembershipTypeRepository creates a new membership type repository
func NewMembershipTypeRepository(db *gorm.DB) domainRepo.MembershipTypeRepository {
	return &membershipTypeRepository{db: db}
}

func (r *membershipTypeRepository) Create(ctx context.Context, mt *entity.MembershipType) error {
	return conn(ctx, r.db).Create(mt).Error
}

func (r *membershipTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.MembershipType, error) {
	var mt entity.MembershipType
	err := conn(ctx, r.db).First(&mt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &mt, err
}

func (r *membershipTypeRepository) Update(ctx context.Context, mt *entity.MembershipType) error {
	return conn(ctx, r.db).Save(mt).Error
}

func (r *membershipTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Delete(&entity.MembershipType{}, "id = ?", id).Error
}

func (r *membershipTypeRepository) List(ctx context.Context) ([]entity.MembershipType, error) {
	var types []entity.MembershipType
	err := conn(ctx, r.db).Order("price ASC").Find(&types).Error
	return types, err
}
