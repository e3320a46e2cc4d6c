package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/domain/entity"
	"github.com/kilatwash/washpos-api/internal/domain/enum"
	domainRepo "github.com/kilatwash/washpos-api/internal/domain/repository"
	"github.com/kilatwash/washpos-api/pkg/pagination"
	"gorm.io/gorm"
)

type shiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) domainRepo.ShiftRepository {
	return &shiftRepository{db: db}
}

func (r *shiftRepository) Create(ctx context.Context, shift *entity.Shift) error {
	return conn(ctx, r.db).Create(shift).Error
}

func (r *shiftRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Shift, error) {
	var shift entity.Shift
	err := conn(ctx, r.db).First(&shift, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &shift, err
}

func (r *shiftRepository) GetActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.Shift, error) {
	var shift entity.Shift
	err := conn(ctx, r.db).
		First(&shift, "user_id = ? AND status = ?", userID, enum.ShiftStatusActive).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &shift, err
}

func (r *shiftRepository) Update(ctx context.Context, shift *entity.Shift) error {
	return conn(ctx, r.db).Save(shift).Error
}

func (r *shiftRepository) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Shift, int64, error) {
	var shifts []entity.Shift
	var total int64

	query := conn(ctx, r.db).Model(&entity.Shift{})
	if userID != uuid.Nil {
		query = query.Where("user_id = ?", userID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("start_time DESC").
		Find(&shifts).Error

	return shifts, total, err
}
