package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/nutrition-tracker/docs"
	"github.com/blaisecz/nutrition-tracker/internal/api/handler"
	"github.com/blaisecz/nutrition-tracker/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type Router struct {
	profileHandler  *handler.ProfileHandler
	intakeHandler   *handler.IntakeHandler
	analysisHandler *handler.AnalysisHandler
	foodHandler     *handler.FoodHandler
	limiter         *middleware.RateLimiter
	logger          *zap.Logger
}

func NewRouter(
	profileHandler *handler.ProfileHandler,
	intakeHandler *handler.IntakeHandler,
	analysisHandler *handler.AnalysisHandler,
	foodHandler *handler.FoodHandler,
	limiter *middleware.RateLimiter,
	logger *zap.Logger,
) *Router {
	return &Router{
		profileHandler:  profileHandler,
		intakeHandler:   intakeHandler,
		analysisHandler: analysisHandler,
		foodHandler:     foodHandler,
		limiter:         limiter,
		logger:          logger,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Tracing)
	r.Use(middleware.RequestLogger(rt.logger.Named("http")))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Get("/foods", rt.foodHandler.List)

		r.Route("/users/{userId}", func(r chi.Router) {
			r.Route("/profile", func(r chi.Router) {
				r.Post("/", rt.profileHandler.Create)
				r.Get("/", rt.profileHandler.Get)
				r.Put("/", rt.profileHandler.Update)
				r.Delete("/", rt.profileHandler.Delete)
			})

			r.Route("/intake", func(r chi.Router) {
				r.Post("/meals", rt.intakeHandler.LogMeal)
				r.Get("/meals", rt.intakeHandler.History)
				r.Delete("/meals/{mealId}", rt.intakeHandler.RemoveMeal)
				r.Get("/daily", rt.intakeHandler.GetDaily)
				r.Delete("/daily", rt.intakeHandler.ResetDay)
			})

			r.Get("/analysis", rt.analysisHandler.Analyze)

			r.Route("/recommendations", func(r chi.Router) {
				r.With(rt.limiter.Middleware).Get("/", rt.analysisHandler.Recommend)
				r.Get("/history", rt.analysisHandler.RecommendationHistory)
				r.Post("/feedback", rt.analysisHandler.Feedback)
			})

			r.Route("/coach", func(r chi.Router) {
				r.With(rt.limiter.Middleware).Get("/", rt.analysisHandler.Coach)
				r.Post("/rating", rt.analysisHandler.RateCoach)
			})
		})
	})

	return r
}
