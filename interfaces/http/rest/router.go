// Package rest wires the HTTP surface: routes, middleware chain, and the
// public/authenticated/moderator groups.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"ejama-backend/application/services"
	"ejama-backend/infrastructure/external/questions"
	"ejama-backend/infrastructure/identity"
	"ejama-backend/interfaces/http/rest/handlers"
	"ejama-backend/interfaces/http/rest/middleware"
)

// Router creates and configures the HTTP router.
type Router struct {
	Community *services.CommunityService
	QA        *services.QAService
	Library   *services.LibraryService
	Period    *services.PeriodService
	Feedback  *services.FeedbackService
	Account   *services.AccountService
	Questions questions.Sink
	Resolver  identity.Resolver
	Metrics   *middleware.Collector
	Logger    *zap.Logger

	EnableCORS bool
}

// Setup configures all routes and middleware.
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.Logger))
	if rt.Metrics != nil {
		router.Use(middleware.Metrics(rt.Metrics))
	}

	if rt.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "https://*.ejama.app"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	router.Get("/health", rt.healthCheck)
	if rt.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", rt.Metrics.Handler())
	}

	accountHandler := handlers.NewAccountHandler(rt.Account, rt.Logger)
	feedbackHandler := handlers.NewFeedbackHandler(rt.Feedback, rt.Logger)

	router.Route("/api/v1", func(r chi.Router) {
		// Public endpoints: signup and the contact form work without a token.
		r.Post("/signup", accountHandler.Signup)
		r.Post("/feedback", feedbackHandler.Submit)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(rt.Resolver, rt.Logger))
			r.Use(middleware.CircuitBreaker(middleware.DefaultCircuitBreakerConfig("api"), rt.Logger))

			communityHandler := handlers.NewCommunityHandler(rt.Community, rt.Logger)
			r.Route("/community", func(r chi.Router) {
				r.Get("/data", communityHandler.GetData)
				r.Post("/create", communityHandler.Create)
				r.Post("/join", communityHandler.Join)
			})

			libraryHandler := handlers.NewLibraryHandler(rt.Library, rt.Logger)
			r.Route("/library/{domain}", func(r chi.Router) {
				r.Get("/user-data", libraryHandler.UserData)
				r.Post("/bookmark", libraryHandler.Bookmark)
				r.Post("/progress", libraryHandler.Progress)
			})

			qaHandler := handlers.NewQAHandler(rt.QA, rt.Logger)
			r.Route("/qa", func(r chi.Router) {
				r.Get("/questions", qaHandler.List)
				r.Get("/my-questions", qaHandler.Mine)
				r.Post("/submit", qaHandler.Submit)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(identity.RoleModerator))
					r.Post("/{questionID}/answer", qaHandler.Answer)
					r.Post("/{questionID}/status", qaHandler.Status)
				})
			})

			if rt.Questions != nil {
				questionsHandler := handlers.NewQuestionsHandler(rt.Questions, rt.Logger)
				r.Get("/anonymous-questions", questionsHandler.List)
				r.Post("/anonymous-questions", questionsHandler.Submit)
			}

			periodHandler := handlers.NewPeriodHandler(rt.Period, rt.Logger)
			r.Route("/period", func(r chi.Router) {
				r.Post("/log", periodHandler.Log)
				r.Get("/history", periodHandler.History)
			})

			r.Post("/profile/picture", accountHandler.UploadPicture)
		})
	})

	return router
}

func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
