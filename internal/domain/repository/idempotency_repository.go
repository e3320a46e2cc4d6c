package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/domain/entity"
)

// IdempotencyRepository defines the interface for idempotency key storage
type IdempotencyRepository interface {
	Create(ctx context.Context, key *entity.IdempotencyKey) error
	GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error)
	// DeleteExpired removes keys past their expiry; run periodically.
	DeleteExpired(ctx context.Context) error
}
