package http

import (
	"fmt"
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"minitwit/internal/config"
	"minitwit/internal/database"
	"minitwit/internal/handler"
	"minitwit/internal/httputil"
	"minitwit/internal/logger"
	"minitwit/internal/repository"
	"minitwit/internal/service"
)

// NewFlaskrRouter builds the note board routes. The board has no accounts,
// so there is no auth group.
func NewFlaskrRouter(entryHandler *handler.EntryHandler) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/health", func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		httputil.WriteJSON(w, 200, map[string]string{"status": "ok"})
	})

	r.Get("/entries", entryHandler.List)
	r.Post("/entries", entryHandler.Create)

	return r
}

// RunFlaskr wires the note board service together and serves it.
func RunFlaskr() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.LogLevel)

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	entryRepo := repository.NewEntryRepository(db)
	entryService := service.NewEntryService(entryRepo)
	router := NewFlaskrRouter(handler.NewEntryHandler(entryService))

	addr := ":" + cfg.FlaskrPort
	logrus.WithField("addr", addr).Info("Starting flaskr server")
	return stdhttp.ListenAndServe(addr, router)
}
