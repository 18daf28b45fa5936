package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/actuallystonmai/stylesense-service/internal/handler"
	"github.com/actuallystonmai/stylesense-service/internal/metrics"
	mw "github.com/actuallystonmai/stylesense-service/internal/middleware"
)

func Setup(h *handler.Handler, reg *metrics.Registry, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.RequestLogger(reg))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	// Routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/ai", h.GetRecommendation)
		r.Post("/evaluate", h.Evaluate)
		r.Post("/outfits/generate", h.GenerateOutfit)
		r.Post("/outfits/ideas", h.OutfitIdeas)

		r.Get("/cultural/regions", h.ListRegions)
		r.Post("/cultural", h.CulturalOutfit)

		r.Get("/quiz", h.GetQuiz)
		r.Post("/quiz/result", h.QuizResult)
		r.Get("/quiz/result", h.LastQuizResult)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.Signup)
			r.Post("/login", h.Login)
			r.Post("/logout", h.Logout)
			r.Get("/me", h.CurrentUser)
		})

		r.Route("/wardrobe", func(r chi.Router) {
			r.Get("/", h.ListWardrobe)
			r.Post("/", h.AddWardrobeItem)
			r.Post("/analysis", h.AnalyzeWardrobe)
			r.Delete("/{itemID}", h.RemoveWardrobeItem)
		})

		r.Route("/saved", func(r chi.Router) {
			r.Get("/", h.ListSaved)
			r.Post("/", h.SaveOutfit)
			r.Get("/analysis", h.StyleProfile)
			r.Delete("/{outfitID}", h.RemoveSaved)
		})

		r.Delete("/storage", h.ResetStorage)
	})

	r.Get("/health", healthCheck)
	r.Get("/metrics", reg.Handler)

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
