package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/blaisecz/nutrition-tracker/internal/domain"
	"github.com/blaisecz/nutrition-tracker/internal/llm"
	"github.com/blaisecz/nutrition-tracker/pkg/problem"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps a service error onto a problem response. Unknown errors
// are logged and reported as 500 with the given detail.
func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error, internalDetail string) {
	var p *problem.Problem
	switch {
	case errors.Is(err, domain.ErrInvalidProfile), errors.Is(err, domain.ErrInvalidInput):
		p = problem.ValidationError(err.Error(), nil)
	case errors.Is(err, domain.ErrProfileRequired):
		p = problem.ProfileRequired("Create a profile for this user first")
	case errors.Is(err, domain.ErrNotFound):
		p = problem.NotFound(err.Error())
	case errors.Is(err, domain.ErrConflict):
		p = problem.Conflict(err.Error())
	case errors.Is(err, llm.ErrUnavailable):
		p = problem.ServiceUnavailable("Nutrition coach is not configured")
	case errors.Is(err, llm.ErrRequest), errors.Is(err, llm.ErrResponse):
		p = problem.BadGateway("Nutrition coach failed to answer")
	default:
		logger.Error(internalDetail,
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		p = problem.InternalError(internalDetail)
	}
	p.WithInstance(r.URL.Path).Write(w)
}

// queryInt reads an optional integer query parameter.
func queryInt(r *http.Request, name string) (int, *problem.FieldError) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, &problem.FieldError{Field: name, Message: "must be a positive integer"}
	}
	return v, nil
}
