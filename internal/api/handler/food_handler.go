package handler

import (
	"net/http"

	"github.com/blaisecz/nutrition-tracker/internal/catalog"
	"github.com/blaisecz/nutrition-tracker/internal/domain"
	"go.uber.org/zap"
)

type FoodHandler struct {
	catalog catalog.NutrientCatalog
	logger  *zap.Logger
}

func NewFoodHandler(catalog catalog.NutrientCatalog, logger *zap.Logger) *FoodHandler {
	return &FoodHandler{catalog: catalog, logger: logger.Named("food_handler")}
}

// List handles GET /v1/foods
// @Summary List catalog foods
// @Description List every food in the nutrient catalog in name order.
// @Tags foods
// @Produce json
// @Success 200 {object} domain.FoodListResponse "Catalog foods"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /foods [get]
func (h *FoodHandler) List(w http.ResponseWriter, r *http.Request) {
	foods, err := h.catalog.List(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to list foods")
		return
	}
	if foods == nil {
		foods = []domain.FoodCandidate{}
	}

	writeJSON(w, http.StatusOK, domain.FoodListResponse{Data: foods, Total: len(foods)})
}
