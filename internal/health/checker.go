// Package health reports whether the service can reach its database, over
// HTTP and the standard gRPC health protocol.
package health

import (
	"context"

	"gorm.io/gorm"

	"github.com/tair/sales-insights/pkg/database"
)

// Checker reports the health of a dependency
type Checker interface {
	Check(ctx context.Context) error
}

// CheckerFunc adapts a function to Checker
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) Check(ctx context.Context) error {
	return f(ctx)
}

// NewDatabaseChecker pings the pool behind db
func NewDatabaseChecker(db *gorm.DB) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return database.Ping(ctx, db)
	})
}
