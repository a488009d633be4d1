package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/nutrition-tracker/internal/api/validation"
	"github.com/blaisecz/nutrition-tracker/internal/domain"
	"github.com/blaisecz/nutrition-tracker/internal/service"
	"github.com/blaisecz/nutrition-tracker/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AnalysisHandler serves gap analysis, food recommendations and the
// nutrition coach.
type AnalysisHandler struct {
	analysisService       service.AnalysisService
	recommendationService service.RecommendationService
	coachService          service.CoachService
	logger                *zap.Logger
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(
	analysisService service.AnalysisService,
	recommendationService service.RecommendationService,
	coachService service.CoachService,
	logger *zap.Logger,
) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService:       analysisService,
		recommendationService: recommendationService,
		coachService:          coachService,
		logger:                logger.Named("analysis_handler"),
	}
}

// Analyze handles GET /v1/users/{userId}/analysis
// @Summary Analyze nutrient gaps
// @Description Compare the day's intake against the profile targets. Without a profile the report is empty and the status is unknown.
// @Tags analysis
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param date query string false "Calendar date (defaults to today)" format(date) example(2024-01-16)
// @Success 200 {object} domain.AnalysisResponse "Gap report, summary and priorities"
// @Failure 400 {object} problem.Problem "Invalid user ID format"
// @Failure 422 {object} problem.Problem "Invalid date"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/analysis [get]
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	resp, err := h.analysisService.Analyze(r.Context(), userID, r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to analyze intake")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Recommend handles GET /v1/users/{userId}/recommendations
// @Summary Recommend foods
// @Description Rank catalog foods by how well they close today's nutrient gaps. Recently eaten foods are skipped. Each call is recorded in the recommendation history.
// @Tags recommendations
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param limit query integer false "Number of recommendations (1-20)" default(5) minimum(1) maximum(20)
// @Param date query string false "Calendar date (defaults to today)" format(date) example(2024-01-16)
// @Success 200 {object} domain.RecommendationsResponse "Ranked recommendations"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 409 {object} problem.Problem "Profile required"
// @Failure 422 {object} problem.Problem "Invalid date"
// @Failure 429 {object} problem.Problem "Rate limited"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/recommendations [get]
func (h *AnalysisHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	limit, fieldErr := queryInt(r, "limit")
	if fieldErr != nil {
		problem.BadRequest("Invalid query parameters").WithErrors([]problem.FieldError{*fieldErr}).Write(w)
		return
	}

	resp, err := h.recommendationService.Recommend(r.Context(), userID, r.URL.Query().Get("date"), limit)
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to compute recommendations")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// RecommendationHistory handles GET /v1/users/{userId}/recommendations/history
// @Summary List recommendation history
// @Description Fetch past recommendation rankings, newest first, with cursor pagination.
// @Tags recommendations
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.RecommendationHistoryResponse "History with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 422 {object} problem.Problem "Invalid cursor"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/recommendations/history [get]
func (h *AnalysisHandler) RecommendationHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	limit, fieldErr := queryInt(r, "limit")
	if fieldErr != nil {
		problem.BadRequest("Invalid query parameters").WithErrors([]problem.FieldError{*fieldErr}).Write(w)
		return
	}

	filter := domain.HistoryFilter{Limit: limit, Cursor: r.URL.Query().Get("cursor")}
	resp, err := h.recommendationService.History(r.Context(), userID, filter)
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to list recommendation history")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Feedback handles POST /v1/users/{userId}/recommendations/feedback
// @Summary Send recommendation feedback
// @Description Record how the user reacted to a recommended food.
// @Tags recommendations
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.FeedbackRequest true "Feedback"
// @Success 201 {object} domain.RecommendationFeedback "Feedback stored"
// @Failure 400 {object} problem.Problem "Invalid user ID or JSON"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/recommendations/feedback [post]
func (h *AnalysisHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	feedback, err := h.recommendationService.Feedback(r.Context(), userID, &req)
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to store feedback")
		return
	}

	writeJSON(w, http.StatusCreated, feedback)
}

// Coach handles GET /v1/users/{userId}/coach
// @Summary Get nutrition coaching
// @Description Ask the LLM coach for a narrative about the day's gaps. Returns 503 when no model is configured.
// @Tags coach
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param date query string false "Calendar date (defaults to today)" format(date) example(2024-01-16)
// @Success 200 {object} domain.CoachResponse "Coach narrative"
// @Failure 400 {object} problem.Problem "Invalid user ID format"
// @Failure 409 {object} problem.Problem "Profile required"
// @Failure 422 {object} problem.Problem "Invalid date"
// @Failure 429 {object} problem.Problem "Rate limited"
// @Failure 502 {object} problem.Problem "Model call failed"
// @Failure 503 {object} problem.Problem "Coach not configured"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/coach [get]
func (h *AnalysisHandler) Coach(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	resp, err := h.coachService.Advise(r.Context(), userID, r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to generate coaching")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// RateCoach handles POST /v1/users/{userId}/coach/rating
// @Summary Rate a coach answer
// @Description Attach a 1-5 rating to a previous coach answer by its trace ID. Requires tracing to be configured.
// @Tags coach
// @Accept json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.CoachRatingRequest true "Rating"
// @Success 204 "Rating recorded"
// @Failure 400 {object} problem.Problem "Invalid user ID or JSON"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 503 {object} problem.Problem "Tracing not configured"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/coach/rating [post]
func (h *AnalysisHandler) RateCoach(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CoachRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	if err := h.coachService.Rate(r.Context(), userID, &req); err != nil {
		writeError(w, r, h.logger, err, "Failed to record rating")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
