package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/yrwanda/practicelog/internal/model"
	"github.com/yrwanda/practicelog/pkg/apperror"
)

type ActionRepository interface {
	Create(ctx context.Context, action *model.PracticeAction) error
	// FindByID returns (nil, nil) when the action does not exist or is
	// owned by someone else; the two cases are indistinguishable on
	// purpose.
	FindByID(ctx context.Context, userID, actionID int64) (*model.PracticeAction, error)
	ListWithStats(ctx context.Context, userID int64, now time.Time) ([]model.ActionWithStats, error)
	ListRecords(ctx context.Context, userID, actionID int64) ([]model.PracticeRecord, error)
	CanFinishToday(ctx context.Context, userID, actionID int64, now time.Time) (bool, error)
	Finish(ctx context.Context, userID, actionID int64, now time.Time, note *string) (*model.PracticeRecord, error)
}

type actionRepository struct {
	db *gorm.DB
}

func NewActionRepository(db *gorm.DB) ActionRepository {
	return &actionRepository{db: db}
}

func (r *actionRepository) Create(ctx context.Context, action *model.PracticeAction) error {
	if action.CreateTime.IsZero() {
		action.CreateTime = time.Now().UTC()
	}

	if err := r.db.WithContext(ctx).Create(action).Error; err != nil {
		return apperror.Translate(err)
	}

	return nil
}

func (r *actionRepository) FindByID(ctx context.Context, userID, actionID int64) (*model.PracticeAction, error) {
	var action model.PracticeAction
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", actionID, userID).
		First(&action).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.Translate(err)
	}

	return &action, nil
}

// ListWithStats computes the full per-action projection in one query:
// lifetime completion count from the record log (the source of truth, not
// the denormalized column) and whether any record lands on now's UTC
// calendar date. Ordering puts actions still pending today first, then
// most recently finished, never-finished actions trailing their group,
// newest created breaking ties.
func (r *actionRepository) ListWithStats(ctx context.Context, userID int64, now time.Time) ([]model.ActionWithStats, error) {
	dayStart, dayEnd := dayRange(now)

	query := `
		WITH today_completions AS (
			SELECT DISTINCT action_id
			FROM practice_records
			WHERE finish_time >= ? AND finish_time < ?
		),
		completion_counts AS (
			SELECT action_id, COUNT(*) AS total_count
			FROM practice_records
			GROUP BY action_id
		)
		SELECT
			a.id,
			a.user_id,
			a.name,
			a.create_time,
			a.last_finish_time,
			COALESCE(cc.total_count, 0) AS total_finished,
			(tc.action_id IS NOT NULL) AS finished_today
		FROM practice_actions a
		LEFT JOIN completion_counts cc ON cc.action_id = a.id
		LEFT JOIN today_completions tc ON tc.action_id = a.id
		WHERE a.user_id = ?
		ORDER BY finished_today ASC, a.last_finish_time DESC NULLS LAST, a.create_time DESC
	`

	var actions []model.ActionWithStats
	if err := r.db.WithContext(ctx).
		Raw(query, dayStart, dayEnd, userID).
		Scan(&actions).Error; err != nil {
		return nil, apperror.Translate(err)
	}

	return actions, nil
}

func (r *actionRepository) ListRecords(ctx context.Context, userID, actionID int64) ([]model.PracticeRecord, error) {
	var records []model.PracticeRecord
	err := r.db.WithContext(ctx).
		Joins("JOIN practice_actions ON practice_actions.id = practice_records.action_id").
		Where("practice_records.action_id = ? AND practice_actions.user_id = ?", actionID, userID).
		Order("practice_records.finish_time DESC").
		Find(&records).Error
	if err != nil {
		return nil, apperror.Translate(err)
	}

	return records, nil
}

// CanFinishToday is the standalone eligibility read: true iff no record
// for the owned action falls on now's UTC calendar date. The finish
// transaction repeats this check itself, so callers may only use this for
// display purposes.
func (r *actionRepository) CanFinishToday(ctx context.Context, userID, actionID int64, now time.Time) (bool, error) {
	dayStart, dayEnd := dayRange(now)

	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.PracticeRecord{}).
		Joins("JOIN practice_actions ON practice_actions.id = practice_records.action_id").
		Where("practice_records.action_id = ? AND practice_actions.user_id = ?", actionID, userID).
		Where("practice_records.finish_time >= ? AND practice_records.finish_time < ?", dayStart, dayEnd).
		Count(&count).Error
	if err != nil {
		return false, apperror.Translate(err)
	}

	return count == 0, nil
}

// Finish records a completion inside one transaction: ownership check,
// last_finish_time update, same-day re-check, record insert. The update
// runs before the re-check so concurrent finishes serialize on the action
// row's write lock; the loser re-checks after the winner commits and hits
// ErrConflict, rolling its own update back.
func (r *actionRepository) Finish(ctx context.Context, userID, actionID int64, now time.Time, note *string) (*model.PracticeRecord, error) {
	var record *model.PracticeRecord

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var action model.PracticeAction
		if err := tx.Where("id = ? AND user_id = ?", actionID, userID).
			First(&action).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.ErrNotFound
			}
			return err
		}

		if err := tx.Model(&model.PracticeAction{}).
			Where("id = ?", actionID).
			Update("last_finish_time", now).Error; err != nil {
			return err
		}

		dayStart, dayEnd := dayRange(now)
		var count int64
		if err := tx.Model(&model.PracticeRecord{}).
			Where("action_id = ? AND finish_time >= ? AND finish_time < ?", actionID, dayStart, dayEnd).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperror.ErrConflict
		}

		record = &model.PracticeRecord{
			ActionID:   actionID,
			FinishTime: now,
			Note:       note,
		}
		return tx.Create(record).Error
	})
	if err != nil {
		return nil, apperror.Translate(err)
	}

	return record, nil
}

// dayRange bounds the UTC calendar date containing t: [midnight, +24h).
func dayRange(t time.Time) (time.Time, time.Time) {
	start := t.UTC().Truncate(24 * time.Hour)
	return start, start.Add(24 * time.Hour)
}
