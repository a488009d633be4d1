package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/blaisecz/nutrition-tracker/internal/domain"
	"github.com/blaisecz/nutrition-tracker/internal/langfuse"
	"github.com/blaisecz/nutrition-tracker/pkg/pagination"
	"github.com/google/uuid"
)

var testNow = time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// MockProfileRepository is a mock implementation of ProfileRepository
type MockProfileRepository struct {
	profiles map[uuid.UUID]*domain.Profile
	err      error
}

func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{profiles: make(map[uuid.UUID]*domain.Profile)}
}

func (m *MockProfileRepository) Create(ctx context.Context, p *domain.Profile) error {
	if m.err != nil {
		return m.err
	}
	cp := *p
	m.profiles[p.UserID] = &cp
	return nil
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.profiles[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *MockProfileRepository) Update(ctx context.Context, p *domain.Profile) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.profiles[p.UserID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	m.profiles[p.UserID] = &cp
	return nil
}

func (m *MockProfileRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.profiles[userID]; !ok {
		return domain.ErrNotFound
	}
	delete(m.profiles, userID)
	return nil
}

func (m *MockProfileRepository) Exists(ctx context.Context, userID uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.profiles[userID]
	return ok, nil
}

// MockHistoryRepository is a mock implementation of HistoryRepository
type MockHistoryRepository struct {
	entries []domain.RecommendationHistory
	err     error
}

func (m *MockHistoryRepository) Create(ctx context.Context, entry *domain.RecommendationHistory) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, *entry)
	return nil
}

// List mirrors the keyset query: newest first, after the cursor, limit+1 rows.
func (m *MockHistoryRepository) List(ctx context.Context, userID uuid.UUID, filter domain.HistoryFilter) ([]domain.RecommendationHistory, error) {
	if m.err != nil {
		return nil, m.err
	}

	var out []domain.RecommendationHistory
	for _, e := range m.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() > out[j].ID.String()
	})

	if filter.Cursor != "" {
		for i, e := range out {
			if cursorID(filter.Cursor) == e.ID {
				out = out[i+1:]
				break
			}
		}
	}
	if len(out) > filter.Limit+1 {
		out = out[:filter.Limit+1]
	}
	return out, nil
}

func (m *MockHistoryRepository) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	kept := m.entries[:0]
	for _, e := range m.entries {
		if e.UserID != userID {
			kept = append(kept, e)
		}
	}
	m.entries = kept
	return m.err
}

func cursorID(encoded string) uuid.UUID {
	c, err := pagination.DecodeCursor(encoded)
	if err != nil || c == nil {
		return uuid.Nil
	}
	return c.ID
}

// MockFeedbackRepository is a mock implementation of FeedbackRepository
type MockFeedbackRepository struct {
	items []domain.RecommendationFeedback
	err   error
}

func (m *MockFeedbackRepository) Create(ctx context.Context, fb *domain.RecommendationFeedback) error {
	if m.err != nil {
		return m.err
	}
	m.items = append(m.items, *fb)
	return nil
}

func (m *MockFeedbackRepository) List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RecommendationFeedback, error) {
	return m.items, m.err
}

func (m *MockFeedbackRepository) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	kept := m.items[:0]
	for _, f := range m.items {
		if f.UserID != userID {
			kept = append(kept, f)
		}
	}
	m.items = kept
	return m.err
}

// MockCoach is a mock implementation of llm.Coach
type MockCoach struct {
	output *domain.CoachOutput
	err    error
	got    *domain.CoachContext
}

func (m *MockCoach) Advise(ctx context.Context, in *domain.CoachContext) (*domain.CoachOutput, error) {
	m.got = in
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

// MockTracing is a mock implementation of langfuse.Client
type MockTracing struct {
	mu      sync.Mutex
	enabled bool
	traces  []langfuse.TraceInput
	scores  []langfuse.ScoreInput
}

func (m *MockTracing) IsEnabled() bool { return m.enabled }

func (m *MockTracing) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.traces = append(m.traces, in)
	if in.ID != "" {
		return in.ID, nil
	}
	return "trace-1", nil
}

func (m *MockTracing) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores = append(m.scores, in)
	return nil
}

func (m *MockTracing) Flush(ctx context.Context) error { return nil }
