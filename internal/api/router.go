package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/api/handlers"
	custommiddleware "github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/api/middleware"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/config"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/ingest"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(uploads *ingest.UploadService, fundService *service.FundService, positionService *service.PositionService, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(cfg.Storage.DataDir)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/store", func(r chi.Router) {
			storeHandler := handlers.NewStoreHandler(uploads, fundService)
			r.Post("/", storeHandler.Upload)
			r.Post("/create", storeHandler.Create)
		})

		fundHandler := handlers.NewFundHandler(uploads, fundService)
		r.Route("/funds", func(r chi.Router) {
			r.Get("/", fundHandler.Funds)
			r.Get("/overview", fundHandler.Overview)
		})
		r.Get("/durations", fundHandler.Durations)

		r.Route("/position", func(r chi.Router) {
			positionHandler := handlers.NewPositionHandler(uploads, positionService)
			r.Get("/{fund}", positionHandler.Position)
			r.Get("/{fund}/summary", positionHandler.Summary)
		})

		selectionHandler := handlers.NewSelectionHandler()
		r.Post("/selection", selectionHandler.Resolve)
	})

	return r
}
