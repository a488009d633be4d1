package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blaisecz/nutrition-tracker/internal/catalog"
	"github.com/blaisecz/nutrition-tracker/internal/domain"
	"github.com/blaisecz/nutrition-tracker/internal/llm"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAnalysisHandler(a *MockAnalysisService, r *MockRecommendationService, c *MockCoachService) *AnalysisHandler {
	if a == nil {
		a = &MockAnalysisService{}
	}
	if r == nil {
		r = &MockRecommendationService{}
	}
	if c == nil {
		c = &MockCoachService{}
	}
	return NewAnalysisHandler(a, r, c, zap.NewNop())
}

func TestAnalysisHandler_Analyze(t *testing.T) {
	var gotDate string
	handler := newAnalysisHandler(&MockAnalysisService{
		analyzeFunc: func(ctx context.Context, userID uuid.UUID, date string) (*domain.AnalysisResponse, error) {
			gotDate = date
			return &domain.AnalysisResponse{
				Date:    date,
				Summary: domain.AnalysisSummary{OverallStatus: domain.StatusUnknown},
			}, nil
		},
	}, nil, nil)

	req := newRequest(http.MethodGet, "/v1/users/"+testUserID+"/analysis?date=2024-01-16", "", map[string]string{"userId": testUserID})
	rec := httptest.NewRecorder()

	handler.Analyze(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2024-01-16", gotDate)

	var resp domain.AnalysisResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, domain.StatusUnknown, resp.Summary.OverallStatus)
}

func TestAnalysisHandler_Recommend(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		mockService    *MockRecommendationService
		wantStatusCode int
	}{
		{
			name:  "ranked",
			query: "?limit=3",
			mockService: &MockRecommendationService{
				recommendFunc: func(ctx context.Context, userID uuid.UUID, date string, limit int) (*domain.RecommendationsResponse, error) {
					if limit != 3 {
						return nil, fmt.Errorf("unexpected limit %d", limit)
					}
					return &domain.RecommendationsResponse{
						Recommendations: []domain.Recommendation{{FoodName: "lentil soup", Score: 42}},
					}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "bad limit",
			query:          "?limit=-2",
			mockService:    &MockRecommendationService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:  "profile required",
			query: "",
			mockService: &MockRecommendationService{
				recommendFunc: func(ctx context.Context, userID uuid.UUID, date string, limit int) (*domain.RecommendationsResponse, error) {
					return nil, domain.ErrProfileRequired
				},
			},
			wantStatusCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newAnalysisHandler(nil, tt.mockService, nil)

			req := newRequest(http.MethodGet, "/v1/users/"+testUserID+"/recommendations"+tt.query, "", map[string]string{"userId": testUserID})
			rec := httptest.NewRecorder()

			handler.Recommend(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code, "body: %s", rec.Body.String())
		})
	}
}

func TestAnalysisHandler_RecommendationHistory(t *testing.T) {
	var got domain.HistoryFilter
	handler := newAnalysisHandler(nil, &MockRecommendationService{
		historyFunc: func(ctx context.Context, userID uuid.UUID, filter domain.HistoryFilter) (*domain.RecommendationHistoryResponse, error) {
			got = filter
			if filter.Cursor == "garbage" {
				return nil, fmt.Errorf("%w: invalid cursor", domain.ErrInvalidInput)
			}
			return &domain.RecommendationHistoryResponse{
				Data:       []domain.RecommendationHistory{},
				Pagination: domain.PaginationResponse{HasMore: false},
			}, nil
		},
	}, nil)

	t.Run("passes paging", func(t *testing.T) {
		req := newRequest(http.MethodGet, "/v1/users/"+testUserID+"/recommendations/history?limit=10&cursor=abc", "", map[string]string{"userId": testUserID})
		rec := httptest.NewRecorder()

		handler.RecommendationHistory(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.HistoryFilter{Limit: 10, Cursor: "abc"}, got)
	})

	t.Run("invalid cursor", func(t *testing.T) {
		req := newRequest(http.MethodGet, "/v1/users/"+testUserID+"/recommendations/history?cursor=garbage", "", map[string]string{"userId": testUserID})
		rec := httptest.NewRecorder()

		handler.RecommendationHistory(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestAnalysisHandler_Feedback(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		wantStatusCode int
	}{
		{name: "valid", body: `{"food_name":"lentil soup","feedback_type":"liked"}`, wantStatusCode: http.StatusCreated},
		{name: "unknown type", body: `{"food_name":"lentil soup","feedback_type":"meh"}`, wantStatusCode: http.StatusUnprocessableEntity},
		{name: "missing food", body: `{"feedback_type":"tried"}`, wantStatusCode: http.StatusUnprocessableEntity},
		{name: "invalid JSON", body: `[]`, wantStatusCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newAnalysisHandler(nil, nil, nil)

			req := newRequest(http.MethodPost, "/v1/users/"+testUserID+"/recommendations/feedback", tt.body, map[string]string{"userId": testUserID})
			rec := httptest.NewRecorder()

			handler.Feedback(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code, "body: %s", rec.Body.String())
		})
	}
}

func TestAnalysisHandler_Coach(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantStatusCode int
	}{
		{name: "answer", err: nil, wantStatusCode: http.StatusOK},
		{name: "not configured", err: llm.ErrUnavailable, wantStatusCode: http.StatusServiceUnavailable},
		{name: "model failed", err: fmt.Errorf("%w: timeout", llm.ErrRequest), wantStatusCode: http.StatusBadGateway},
		{name: "bad model output", err: fmt.Errorf("%w: empty summary", llm.ErrResponse), wantStatusCode: http.StatusBadGateway},
		{name: "no profile", err: domain.ErrProfileRequired, wantStatusCode: http.StatusConflict},
		{name: "unexpected", err: errors.New("boom"), wantStatusCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newAnalysisHandler(nil, nil, &MockCoachService{
				adviseFunc: func(ctx context.Context, userID uuid.UUID, date string) (*domain.CoachResponse, error) {
					if tt.err != nil {
						return nil, tt.err
					}
					return &domain.CoachResponse{Summary: "Eat more fiber", Observations: []string{}, Guidance: []string{}}, nil
				},
			})

			req := newRequest(http.MethodGet, "/v1/users/"+testUserID+"/coach", "", map[string]string{"userId": testUserID})
			rec := httptest.NewRecorder()

			handler.Coach(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
		})
	}
}

func TestAnalysisHandler_RateCoach(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		err            error
		wantStatusCode int
	}{
		{name: "recorded", body: `{"trace_id":"abc123","rating":5}`, wantStatusCode: http.StatusNoContent},
		{name: "rating too high", body: `{"trace_id":"abc123","rating":6}`, wantStatusCode: http.StatusUnprocessableEntity},
		{name: "missing trace", body: `{"rating":3}`, wantStatusCode: http.StatusUnprocessableEntity},
		{name: "tracing disabled", body: `{"trace_id":"abc123","rating":3}`, err: llm.ErrUnavailable, wantStatusCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newAnalysisHandler(nil, nil, &MockCoachService{
				rateFunc: func(ctx context.Context, userID uuid.UUID, req *domain.CoachRatingRequest) error {
					return tt.err
				},
			})

			req := newRequest(http.MethodPost, "/v1/users/"+testUserID+"/coach/rating", tt.body, map[string]string{"userId": testUserID})
			rec := httptest.NewRecorder()

			handler.RateCoach(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code, "body: %s", rec.Body.String())
		})
	}
}

func TestFoodHandler_List(t *testing.T) {
	cat := catalog.NewMemoryCatalog(
		domain.FoodCandidate{Name: "Lentil Soup", Nutrients: domain.NutrientVector{Protein: 9, Fiber: 8}, ServingSize: 250},
		domain.FoodCandidate{Name: "Apple", Nutrients: domain.NutrientVector{Calories: 95, Fiber: 4}, ServingSize: 180},
	)
	handler := NewFoodHandler(cat, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/v1/foods", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp domain.FoodListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Apple", resp.Data[0].Name)
}

func TestFoodHandler_ListEmptyCatalog(t *testing.T) {
	handler := NewFoodHandler(catalog.NewMemoryCatalog(), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/v1/foods", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[],"total":0}`, rec.Body.String())
}
