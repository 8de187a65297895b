package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "tradelog/internal/errors"
	"tradelog/internal/pagination"
)

// findByID loads one row of T, mapping a missing row to notFound.
func findByID[T any](ctx context.Context, db *gorm.DB, id string, notFound *apperrors.AppError) (*T, error) {
	var row T
	if err := db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &row, nil
}

// updateByID applies a partial update and returns the reloaded row.
func updateByID[T any](ctx context.Context, db *gorm.DB, id string, updates map[string]interface{}, notFound *apperrors.AppError) (*T, error) {
	row, err := findByID[T](ctx, db, id, notFound)
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return row, nil
	}

	if err := db.WithContext(ctx).Model(row).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return findByID[T](ctx, db, id, notFound)
}

// deleteByID removes exactly one row of T.
func deleteByID[T any](ctx context.Context, db *gorm.DB, id string, notFound *apperrors.AppError) error {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound
	}
	return nil
}

// listPage counts the rows matched by q, then fetches them in order,
// applying pagination when requested.
func listPage[T any](q *gorm.DB, order string, page pagination.PageRequest) (*pagination.Page[T], error) {
	base := q.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var rows []T
	if err := base.Scopes(pagination.Paginate(page)).Order(order).Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return pagination.NewPage(rows, total), nil
}
