package repository

import (
	"context"

	"github.com/blaisecz/nutrition-tracker/internal/domain"
	"github.com/blaisecz/nutrition-tracker/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// HistoryKeep is how many recommendation history entries are kept per user.
	HistoryKeep = 20
	// FeedbackKeep is how many feedback entries are kept per user.
	FeedbackKeep = 50
)

type HistoryRepository interface {
	// Create stores entry and trims the user's history to the newest HistoryKeep.
	Create(ctx context.Context, entry *domain.RecommendationHistory) error
	// List returns up to limit+1 entries, newest first, after the cursor.
	List(ctx context.Context, userID uuid.UUID, filter domain.HistoryFilter) ([]domain.RecommendationHistory, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Create(ctx context.Context, entry *domain.RecommendationHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		return trimNewest(tx, &domain.RecommendationHistory{}, "recommendation_history", entry.UserID, HistoryKeep)
	})
}

func (r *historyRepository) List(ctx context.Context, userID uuid.UUID, filter domain.HistoryFilter) ([]domain.RecommendationHistory, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC")

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			query = query.Where(
				"(created_at < ?) OR (created_at = ? AND id < ?)",
				cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
			)
		}
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var entries []domain.RecommendationHistory
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *historyRepository) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.RecommendationHistory{}, "user_id = ?", userID).Error
}

type FeedbackRepository interface {
	// Create stores feedback and trims the user's feedback to the newest FeedbackKeep.
	Create(ctx context.Context, feedback *domain.RecommendationFeedback) error
	List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RecommendationFeedback, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *domain.RecommendationFeedback) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(feedback).Error; err != nil {
			return err
		}
		return trimNewest(tx, &domain.RecommendationFeedback{}, "recommendation_feedback", feedback.UserID, FeedbackKeep)
	})
}

func (r *feedbackRepository) List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RecommendationFeedback, error) {
	var out []domain.RecommendationFeedback
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(pagination.NormalizeLimit(limit)).
		Find(&out).Error
	return out, err
}

func (r *feedbackRepository) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.RecommendationFeedback{}, "user_id = ?", userID).Error
}

// trimNewest deletes all but the newest keep rows of a user in table.
func trimNewest(tx *gorm.DB, model interface{}, table string, userID uuid.UUID, keep int) error {
	newest := tx.Table(table).
		Select("id").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(keep)

	return tx.Where("user_id = ?", userID).
		Where("id NOT IN (?)", newest).
		Delete(model).Error
}
