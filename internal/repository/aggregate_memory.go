package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/blaisecz/nutrition-tracker/internal/domain"
	"github.com/google/uuid"
)

type aggregateKey struct {
	userID uuid.UUID
	date   string
}

// keyLock is held while a (user, date) is written. refs counts holders
// and waiters; the entry is dropped when it reaches zero.
type keyLock struct {
	mu   sync.Mutex
	refs int
}

// memoryAggregateStore keeps aggregates in process. Updates of the same
// (user, date) are serialized by a per-key mutex; other keys proceed in
// parallel.
type memoryAggregateStore struct {
	mu    sync.RWMutex
	data  map[aggregateKey]*domain.DailyAggregate
	locks map[aggregateKey]*keyLock
}

func NewMemoryAggregateStore() AggregateStore {
	return &memoryAggregateStore{
		data:  make(map[aggregateKey]*domain.DailyAggregate),
		locks: make(map[aggregateKey]*keyLock),
	}
}

// lock blocks until k is free and returns the matching unlock.
func (s *memoryAggregateStore) lock(k aggregateKey) func() {
	s.mu.Lock()
	l, ok := s.locks[k]
	if !ok {
		l = &keyLock{}
		s.locks[k] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, k)
		}
		s.mu.Unlock()
	}
}

func (s *memoryAggregateStore) Load(ctx context.Context, userID uuid.UUID, date string) (*domain.DailyAggregate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[aggregateKey{userID, date}].Clone(), nil
}

func (s *memoryAggregateStore) Save(ctx context.Context, agg *domain.DailyAggregate) error {
	k := aggregateKey{agg.UserID, agg.Date}
	unlock := s.lock(k)
	defer unlock()

	s.mu.Lock()
	s.data[k] = agg.Clone()
	s.mu.Unlock()
	return nil
}

func (s *memoryAggregateStore) Update(ctx context.Context, userID uuid.UUID, date string, fn MutateFunc) (*domain.DailyAggregate, error) {
	k := aggregateKey{userID, date}
	unlock := s.lock(k)
	defer unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	working := s.data[k].Clone()
	s.mu.RUnlock()
	if working == nil {
		working = domain.NewDailyAggregate(userID, date, time.Now().UTC())
	}

	if err := fn(working); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.data[k] = working.Clone()
	s.mu.Unlock()
	return working, nil
}

func (s *memoryAggregateStore) Delete(ctx context.Context, userID uuid.UUID, date string) error {
	k := aggregateKey{userID, date}
	unlock := s.lock(k)
	defer unlock()

	s.mu.Lock()
	delete(s.data, k)
	s.mu.Unlock()
	return nil
}

func (s *memoryAggregateStore) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	dates, _ := s.ListDates(ctx, userID)
	for _, d := range dates {
		if err := s.Delete(ctx, userID, d); err != nil {
			return err
		}
	}
	return nil
}

func (s *memoryAggregateStore) ListDates(ctx context.Context, userID uuid.UUID) ([]string, error) {
	s.mu.RLock()
	var dates []string
	for k := range s.data {
		if k.userID == userID {
			dates = append(dates, k.date)
		}
	}
	s.mu.RUnlock()

	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates, nil
}
