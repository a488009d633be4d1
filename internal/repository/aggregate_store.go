package repository

import (
	"context"

	"github.com/blaisecz/nutrition-tracker/internal/domain"
	"github.com/google/uuid"
)

// MutateFunc edits a working copy of an aggregate. Returning an error
// aborts the update and nothing is persisted.
type MutateFunc func(agg *domain.DailyAggregate) error

// AggregateStore keeps one DailyAggregate per (user, date).
type AggregateStore interface {
	// Load returns the aggregate, or nil and no error when none exists.
	Load(ctx context.Context, userID uuid.UUID, date string) (*domain.DailyAggregate, error)
	// Save replaces the stored aggregate for (agg.UserID, agg.Date).
	Save(ctx context.Context, agg *domain.DailyAggregate) error
	// Update applies fn as one atomic read-modify-write, creating an empty
	// aggregate first when none exists, and returns the persisted result.
	// Concurrent updates of the same (user, date) never lose writes.
	Update(ctx context.Context, userID uuid.UUID, date string, fn MutateFunc) (*domain.DailyAggregate, error)
	// Delete removes one day. Deleting a missing day is not an error.
	Delete(ctx context.Context, userID uuid.UUID, date string) error
	// DeleteUser removes every day of a user.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	// ListDates returns the user's dates that hold an aggregate, newest first.
	ListDates(ctx context.Context, userID uuid.UUID) ([]string, error)
}
