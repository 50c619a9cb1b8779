package server

import (
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type handlers struct {
	logger Logger
	// gatewayMutex serialises access to the gateway
	// which is not safe for concurrent use.
	gatewayMutex sync.Mutex
	gateway      Gateway
}

func newHandler(rootURL string, gateway Gateway, logger Logger) http.Handler {
	handlers := &handlers{
		logger:  logger,
		gateway: gateway,
	}

	rootURL = strings.TrimSuffix(rootURL, "/")

	router := chi.NewRouter()
	router.Use(middleware.CleanPath)

	router.Route(rootURL+"/api/v1", func(r chi.Router) {
		r.Get("/health", handlers.getHealth)
		r.Get("/ticket", handlers.getTicket)
		r.Get("/error", handlers.getError)
		r.Delete("/error", handlers.clearError)
		r.Post("/sms", handlers.sendSMS)
		r.Get("/balance", handlers.checkBalance)
		r.Post("/invoke/{procedure}", handlers.invoke)
	})

	return router
}
