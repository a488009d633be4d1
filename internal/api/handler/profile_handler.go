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

// @title Nutrition Tracker API
// @version 1.0
// @description Tracks daily nutrient intake against personal targets, analyzes gaps and recommends foods that close them.
// @BasePath /v1
// @schemes http https
// @produce json
// @consumes json

type ProfileHandler struct {
	service service.ProfileService
	logger  *zap.Logger
}

func NewProfileHandler(service service.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{service: service, logger: logger.Named("profile_handler")}
}

// Create handles POST /v1/users/{userId}/profile
// @Summary Create profile
// @Description Store body metrics and derive BMR, TDEE and daily nutrient targets.
// @Tags profile
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.CreateProfileRequest true "Profile data"
// @Success 201 {object} domain.ProfileResponse "Profile created"
// @Failure 400 {object} problem.Problem "Invalid user ID or JSON"
// @Failure 409 {object} problem.Problem "Profile already exists"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/profile [post]
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	profile, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to create profile")
		return
	}

	writeJSON(w, http.StatusCreated, profile.ToResponse())
}

// Get handles GET /v1/users/{userId}/profile
// @Summary Get profile
// @Description Retrieve the profile with its derived values.
// @Tags profile
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.ProfileResponse "Profile found"
// @Failure 400 {object} problem.Problem "Invalid user ID format"
// @Failure 404 {object} problem.Problem "Profile not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/profile [get]
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	profile, err := h.service.Get(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to retrieve profile")
		return
	}

	writeJSON(w, http.StatusOK, profile.ToResponse())
}

// Update handles PUT /v1/users/{userId}/profile
// @Summary Update profile
// @Description Partially update the body metrics. BMR, TDEE and all targets are recomputed.
// @Tags profile
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} domain.ProfileResponse "Profile updated"
// @Failure 400 {object} problem.Problem "Invalid user ID or JSON"
// @Failure 404 {object} problem.Problem "Profile not found"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/profile [put]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	profile, err := h.service.Update(r.Context(), userID, &req)
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to update profile")
		return
	}

	writeJSON(w, http.StatusOK, profile.ToResponse())
}

// Delete handles DELETE /v1/users/{userId}/profile
// @Summary Delete profile
// @Description Delete the profile together with the user's intake, recommendation history and feedback.
// @Tags profile
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 204 "Profile deleted"
// @Failure 400 {object} problem.Problem "Invalid user ID format"
// @Failure 404 {object} problem.Problem "Profile not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/profile [delete]
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	if err := h.service.Delete(r.Context(), userID); err != nil {
		writeError(w, r, h.logger, err, "Failed to delete profile")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
