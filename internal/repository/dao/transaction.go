package dao

import (
	"context"

	"gorm.io/gorm"
)

// inTransaction runs fn inside a gorm transaction bound to ctx. Returning an
// error from fn rolls the transaction back and hands the error to the caller
// unchanged, so sentinel errors survive.
func inTransaction(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn)
}
