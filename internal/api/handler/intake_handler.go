package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/blaisecz/nutrition-tracker/internal/api/validation"
	"github.com/blaisecz/nutrition-tracker/internal/domain"
	"github.com/blaisecz/nutrition-tracker/internal/service"
	"github.com/blaisecz/nutrition-tracker/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type IntakeHandler struct {
	service service.IntakeService
	logger  *zap.Logger
}

func NewIntakeHandler(service service.IntakeService, logger *zap.Logger) *IntakeHandler {
	return &IntakeHandler{service: service, logger: logger.Named("intake_handler")}
}

// LogMeal handles POST /v1/users/{userId}/intake/meals
// @Summary Log a meal
// @Description Add a meal to the day's intake. Without explicit nutrients the food is looked up in the catalog; unknown foods use the fallback vector.
// @Tags intake
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.LogMealRequest true "Meal data"
// @Success 201 {object} domain.LogMealResponse "Meal logged"
// @Failure 400 {object} problem.Problem "Invalid user ID or JSON"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/intake/meals [post]
func (h *IntakeHandler) LogMeal(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.LogMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	resp, err := h.service.LogMeal(r.Context(), userID, &req)
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to log meal")
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// RemoveMeal handles DELETE /v1/users/{userId}/intake/meals/{mealId}
// @Summary Remove a meal
// @Description Remove a logged meal and subtract its nutrients from the day's totals.
// @Tags intake
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param mealId path integer true "Meal ID within the day" example(1)
// @Param date query string false "Calendar date (defaults to today)" format(date) example(2024-01-16)
// @Success 200 {object} domain.DailyIntakeResponse "Updated daily intake"
// @Failure 400 {object} problem.Problem "Invalid path parameters"
// @Failure 404 {object} problem.Problem "Meal not found"
// @Failure 422 {object} problem.Problem "Invalid date"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/intake/meals/{mealId} [delete]
func (h *IntakeHandler) RemoveMeal(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	mealID, err := strconv.Atoi(chi.URLParam(r, "mealId"))
	if err != nil || mealID < 1 {
		problem.BadRequest("Invalid meal ID format").Write(w)
		return
	}

	resp, err := h.service.RemoveMeal(r.Context(), userID, r.URL.Query().Get("date"), mealID)
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to remove meal")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetDaily handles GET /v1/users/{userId}/intake/daily
// @Summary Get daily intake
// @Description Retrieve the day's totals and meals. A day without meals is returned empty.
// @Tags intake
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param date query string false "Calendar date (defaults to today)" format(date) example(2024-01-16)
// @Success 200 {object} domain.DailyIntakeResponse "Daily intake"
// @Failure 400 {object} problem.Problem "Invalid user ID format"
// @Failure 422 {object} problem.Problem "Invalid date"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/intake/daily [get]
func (h *IntakeHandler) GetDaily(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	resp, err := h.service.GetDaily(r.Context(), userID, r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to retrieve daily intake")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// History handles GET /v1/users/{userId}/intake/meals
// @Summary List recent meals
// @Description List logged meals across days, newest first.
// @Tags intake
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param limit query integer false "Maximum number of meals (1-100)" default(20) minimum(1) maximum(100)
// @Success 200 {object} domain.MealHistoryResponse "Recent meals"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/intake/meals [get]
func (h *IntakeHandler) History(w http.ResponseWriter, r *http.Request) {
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

	resp, err := h.service.History(r.Context(), userID, limit)
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to list meals")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// ResetDay handles DELETE /v1/users/{userId}/intake/daily
// @Summary Reset a day
// @Description Drop every meal logged on the day.
// @Tags intake
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param date query string false "Calendar date (defaults to today)" format(date) example(2024-01-16)
// @Success 204 "Day reset"
// @Failure 400 {object} problem.Problem "Invalid user ID format"
// @Failure 422 {object} problem.Problem "Invalid date"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/intake/daily [delete]
func (h *IntakeHandler) ResetDay(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	if err := h.service.ResetDay(r.Context(), userID, r.URL.Query().Get("date")); err != nil {
		writeError(w, r, h.logger, err, "Failed to reset day")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
