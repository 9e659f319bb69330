package database

import (
	"context"

	"gorm.io/gorm"
)

// Scoped reserves one pooled connection for the duration of fn and returns
// it to the pool on every exit path, including panics and errors.
func Scoped(ctx context.Context, db *gorm.DB, fn func(conn *gorm.DB) error) error {
	return db.WithContext(ctx).Connection(fn)
}

// ScopedTx is Scoped with a transaction around fn: commit when fn returns
// nil, rollback otherwise.
func ScopedTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn)
}
