package report

import (
	"context"
	"time"

	"gorm.io/gorm"

	"cora/internal/model"
)

// GormStats answers the validator's aggregate queries from the expenses and
// jobs tables.
type GormStats struct {
	database *gorm.DB
}

var _ Stats = (*GormStats)(nil)

func NewGormStats(database *gorm.DB) *GormStats {
	return &GormStats{
		database: database,
	}
}

func (gs *GormStats) TotalExpenses(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := gs.database.WithContext(ctx).
		Model(&model.Expense{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (gs *GormStats) ExpensesSince(ctx context.Context, userID int64, since time.Time) (int64, error) {
	var count int64
	err := gs.database.WithContext(ctx).
		Model(&model.Expense{}).
		Where("user_id = ? AND spent_at >= ?", userID, since).
		Count(&count).Error
	return count, err
}

func (gs *GormStats) ActiveDays(ctx context.Context, userID int64) (int64, error) {
	// Count only builds COUNT(DISTINCT ...) for bare column names, so the
	// date() expression has to be selected explicitly.
	var count int64
	err := gs.database.WithContext(ctx).
		Model(&model.Expense{}).
		Select("COUNT(DISTINCT date(spent_at))").
		Where("user_id = ?", userID).
		Scan(&count).Error
	return count, err
}

func (gs *GormStats) Categories(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := gs.database.WithContext(ctx).
		Model(&model.Expense{}).
		Where("user_id = ?", userID).
		Distinct("category").
		Count(&count).Error
	return count, err
}

func (gs *GormStats) Jobs(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := gs.database.WithContext(ctx).
		Model(&model.Job{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
