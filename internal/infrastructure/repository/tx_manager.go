package repository

import (
	"context"

	domainRepo "github.com/kilatwash/washpos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type txKey struct{}

// txManager implements repository.TxManager on GORM. The open transaction is
// carried through the context so every repository call inside the callback
// joins it transparently.
type txManager struct {
	db *gorm.DB
}

// NewTxManager creates a GORM-backed transaction manager
func NewTxManager(db *gorm.DB) domainRepo.TxManager {
	return &txManager{db: db}
}

func (m *txManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFromContext(ctx) != nil {
		// Already inside a transaction; join it.
		return fn(ctx)
	}
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func txFromContext(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return nil
}

// conn returns the transaction bound to ctx if one is open, else the base
// connection. Every repository in this package goes through it.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx := txFromContext(ctx); tx != nil {
		return tx
	}
	return db.WithContext(ctx)
}
