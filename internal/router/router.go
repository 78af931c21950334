package router

import (
	"embed"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"waveai-backend/internal/handlers"
	"waveai-backend/internal/middleware"
)

//go:embed static
var staticFS embed.FS

func New(
	chatHandler *handlers.ChatHandler,
	conversationHandler *handlers.ConversationHandler,
	healthHandler *handlers.HealthHandler,
	allowedOrigin string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(allowedOrigin))

	// Landing page
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		page, err := staticFS.ReadFile("static/index.html")
		if err != nil {
			http.Error(w, "landing page unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	})

	r.Get("/health", healthHandler.Health)

	r.Post("/chat", chatHandler.Chat)

	r.Route("/conversations", func(r chi.Router) {
		r.Get("/", conversationHandler.List)
		r.Delete("/", conversationHandler.Clear)
	})

	return r
}
