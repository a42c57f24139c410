package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lokeshbhai007/faad-do-dsa/internal/handlers"
	"github.com/lokeshbhai007/faad-do-dsa/internal/metrics"
	"github.com/lokeshbhai007/faad-do-dsa/internal/middleware"
	"github.com/lokeshbhai007/faad-do-dsa/internal/models"
)

// RateLimitable lets the analyze route be wrapped when a limiter is
// configured; nil means no limiting.
type RateLimitable interface {
	Handler(next http.Handler) http.Handler
}

func APIRoutes(r *chi.Mux, analyzeHandler *handlers.AnalyzeHandler, questionHandler *handlers.QuestionHandler, reviewHandler *handlers.ReviewHandler, limiter RateLimitable) {
	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if limiter != nil {
				r.Use(limiter.Handler)
			}
			r.With(middleware.ValidateRequest[*models.AnalyzeRequest]()).
				Post("/analyze", analyzeHandler.AnalyzeQuestionHandler)
		})

		r.Route("/questions", func(r chi.Router) {
			r.Get("/", questionHandler.GetQuestionsHandler)
			r.Get("/{id}", questionHandler.GetQuestionHandler)
			r.With(middleware.ValidateRequest[*models.QuestionUpdateRequest]()).
				Put("/{id}", questionHandler.UpdateQuestionHandler)
			r.Delete("/{id}", questionHandler.DeleteQuestionHandler)
		})

		r.Route("/reviewQuestions", func(r chi.Router) {
			r.Get("/", reviewHandler.GetReviewsHandler)
			r.With(middleware.ValidateRequest[*models.ReviewCreateRequest]()).
				Post("/", reviewHandler.CreateReviewHandler)
			r.With(middleware.ValidateRequest[*models.ReviewUpdateRequest]()).
				Put("/", reviewHandler.UpdateReviewHandler)
			r.Delete("/", reviewHandler.DeleteReviewHandler)
		})
	})
}

func HealthRoutes(r *chi.Mux, healthHandler *handlers.HealthHandler) {
	r.Get("/healthz", healthHandler.HealthzHandler)
	r.Get("/readyz", healthHandler.ReadyzHandler)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
}
