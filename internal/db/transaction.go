package db

import (
	"context"

	"github.com/ikkim/recipe-catalog/pkg/logger"
	"gorm.io/gorm"
)

// WithinTransaction runs fn as one unit of work: it commits when fn returns
// nil and rolls back when fn returns an error or panics. The transaction is
// bound to ctx, so a cancelled request aborts it.
func WithinTransaction(ctx context.Context, database *gorm.DB, fn func(tx *gorm.DB) error) error {
	err := database.WithContext(ctx).Transaction(fn)
	if err != nil {
		logger.Debug("Unit of work rolled back", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return err
}
