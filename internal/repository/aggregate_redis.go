package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/blaisecz/nutrition-tracker/internal/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix       = "nutrition"
	defaultUpdateRetries = 10
)

// RedisStoreOptions tunes the Redis aggregate store.
type RedisStoreOptions struct {
	// MaxRetries bounds optimistic retries of one Update before ErrConflict.
	MaxRetries int
	// TTL expires day keys; zero keeps them forever.
	TTL time.Duration
}

// redisAggregateStore keeps each aggregate as one JSON value and a per-user
// set of dates. Update uses WATCH/MULTI and retries when another writer
// touched the key first.
type redisAggregateStore struct {
	client     redis.UniversalClient
	maxRetries int
	ttl        time.Duration
}

func NewRedisAggregateStore(client redis.UniversalClient, opts RedisStoreOptions) AggregateStore {
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = defaultUpdateRetries
	}
	return &redisAggregateStore{client: client, maxRetries: opts.MaxRetries, ttl: opts.TTL}
}

// redisAggregate is the stored shape. It keeps the fields the JSON API
// hides.
type redisAggregate struct {
	ID         uuid.UUID             `json:"id"`
	UserID     uuid.UUID             `json:"user_id"`
	Date       string                `json:"date"`
	Totals     domain.NutrientVector `json:"totals"`
	Meals      []domain.MealRecord   `json:"meals"`
	NextMealID int                   `json:"next_meal_id"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
}

func aggregateKeyFor(userID uuid.UUID, date string) string {
	return fmt.Sprintf("%s:aggregate:%s:%s", redisKeyPrefix, userID, date)
}

func datesKeyFor(userID uuid.UUID) string {
	return fmt.Sprintf("%s:dates:%s", redisKeyPrefix, userID)
}

func encodeAggregate(agg *domain.DailyAggregate) ([]byte, error) {
	return json.Marshal(redisAggregate{
		ID:         agg.ID,
		UserID:     agg.UserID,
		Date:       agg.Date,
		Totals:     agg.Totals,
		Meals:      agg.Meals,
		NextMealID: agg.NextMealID,
		CreatedAt:  agg.CreatedAt,
		UpdatedAt:  agg.UpdatedAt,
	})
}

func decodeAggregate(data []byte) (*domain.DailyAggregate, error) {
	var r redisAggregate
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode aggregate: %w", err)
	}
	meals := r.Meals
	if meals == nil {
		meals = []domain.MealRecord{}
	}
	for i := range meals {
		meals[i].AggregateID = r.ID
	}
	return &domain.DailyAggregate{
		ID:         r.ID,
		UserID:     r.UserID,
		Date:       r.Date,
		Totals:     r.Totals,
		Meals:      meals,
		NextMealID: r.NextMealID,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}, nil
}

func (s *redisAggregateStore) Load(ctx context.Context, userID uuid.UUID, date string) (*domain.DailyAggregate, error) {
	data, err := s.client.Get(ctx, aggregateKeyFor(userID, date)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return decodeAggregate(data)
}

func (s *redisAggregateStore) Save(ctx context.Context, agg *domain.DailyAggregate) error {
	payload, err := encodeAggregate(agg)
	if err != nil {
		return err
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, aggregateKeyFor(agg.UserID, agg.Date), payload, s.ttl)
		pipe.SAdd(ctx, datesKeyFor(agg.UserID), agg.Date)
		return nil
	})
	return err
}

func (s *redisAggregateStore) Update(ctx context.Context, userID uuid.UUID, date string, fn MutateFunc) (*domain.DailyAggregate, error) {
	key := aggregateKeyFor(userID, date)

	for attempt := 0; attempt < s.maxRetries; attempt++ {
		var result *domain.DailyAggregate

		err := s.client.Watch(ctx, func(tx *redis.Tx) error {
			working, err := s.loadWatched(ctx, tx, key)
			if err != nil {
				return err
			}
			if working == nil {
				working = domain.NewDailyAggregate(userID, date, time.Now().UTC())
			}

			if err := fn(working); err != nil {
				return err
			}

			payload, err := encodeAggregate(working)
			if err != nil {
				return err
			}
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, payload, s.ttl)
				pipe.SAdd(ctx, datesKeyFor(userID), date)
				return nil
			})
			if err != nil {
				return err
			}

			result = working
			return nil
		}, key)

		if err == nil {
			return result, nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: aggregate %s/%s changed concurrently", domain.ErrConflict, userID, date)
}

func (s *redisAggregateStore) loadWatched(ctx context.Context, tx *redis.Tx, key string) (*domain.DailyAggregate, error) {
	data, err := tx.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return decodeAggregate(data)
}

func (s *redisAggregateStore) Delete(ctx context.Context, userID uuid.UUID, date string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, aggregateKeyFor(userID, date))
		pipe.SRem(ctx, datesKeyFor(userID), date)
		return nil
	})
	return err
}

func (s *redisAggregateStore) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	dates, err := s.client.SMembers(ctx, datesKeyFor(userID)).Result()
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(dates)+1)
	for _, d := range dates {
		keys = append(keys, aggregateKeyFor(userID, d))
	}
	keys = append(keys, datesKeyFor(userID))
	return s.client.Del(ctx, keys...).Err()
}

// ListDates drops dates whose aggregate has expired.
func (s *redisAggregateStore) ListDates(ctx context.Context, userID uuid.UUID) ([]string, error) {
	dates, err := s.client.SMembers(ctx, datesKeyFor(userID)).Result()
	if err != nil {
		return nil, err
	}

	live := dates[:0]
	for _, d := range dates {
		n, err := s.client.Exists(ctx, aggregateKeyFor(userID, d)).Result()
		if err != nil {
			return nil, err
		}
		if n > 0 {
			live = append(live, d)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(live)))
	return live, nil
}
