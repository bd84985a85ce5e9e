// Package pgutil holds the PostgreSQL specifics shared by the gorm
// repositories: error classification and version-guarded updates.
package pgutil

import (
	"context"
	"errors"

	"lunchbox/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// UniqueViolation is the SQLSTATE of a unique constraint violation.
const UniqueViolation = "23505"

// IsUniqueViolation reports whether err comes from a unique index. When
// constraint is not empty the violated index must carry that name.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != UniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// VersionedUpdate applies values to the row of model with the given id only
// while its version still equals version, and bumps the version. No affected
// rows means the row is gone (ObjectNotFoundError) or was changed by someone
// else since it was loaded (VersionConflictError). Callers bump the version
// of the written aggregate on success.
//
// Example:
//
//	err := pgutil.VersionedUpdate(ctx, db, &OrderDTO{}, "order", id, o.Version(),
//	    map[string]any{"status": o.Status().String()})
func VersionedUpdate(
	ctx context.Context,
	db *gorm.DB,
	model any,
	param string,
	id any,
	version int,
	values map[string]any,
) error {
	values["version"] = gorm.Expr("version + 1")

	result := db.WithContext(ctx).Model(model).
		Where("id = ? AND version = ?", id, version).
		Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError(param, id)
	}
	return errs.NewVersionConflictError(param, id, version)
}
