package rest

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/barledger/bartab/internal/services/tab"
)

// Handler exposes the bar tab API over HTTP
type Handler struct {
	tabService tab.Service
	logger     zerolog.Logger
	origins    []string
}

// Config holds the configuration for the handler
type Config struct {
	// TabService drives every endpoint
	TabService tab.Service

	// Logger receives request logs
	Logger zerolog.Logger

	// AllowedOrigins configures CORS, empty meaning allow all
	AllowedOrigins []string
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.TabService == nil {
		return nil, errors.New("tab service cannot be nil")
	}

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Handler{
		tabService: cfg.TabService,
		logger:     cfg.Logger,
		origins:    origins,
	}, nil
}

// Router builds the chi router with middleware and all API routes
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger{Logger: h.logger}.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", h.root)

	r.Route("/api", func(r chi.Router) {
		r.Route("/drinks", func(r chi.Router) {
			r.Post("/", h.createDrink)
			r.Get("/", h.listDrinks)
			r.Get("/{drinkID}", h.getDrink)
			r.Put("/{drinkID}", h.updateDrink)
			r.Delete("/{drinkID}", h.deleteDrink)
		})

		r.Post("/calculate-price", h.calculatePrice)

		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", h.createTransaction)
			r.Get("/", h.listTransactions)
			r.Get("/export/csv", h.exportTransactionsCSV)
			r.Get("/{transactionID}", h.getTransaction)
			r.Delete("/{transactionID}", h.deleteTransaction)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Post("/", h.createPayment)
			r.Get("/", h.listPayments)
			r.Get("/{paymentID}", h.getPayment)
			r.Delete("/{paymentID}", h.deletePayment)
		})

		r.Route("/guests", func(r chi.Router) {
			r.Get("/balances", h.listGuestBalances)
			r.Get("/{guestName}/balance", h.getGuestBalance)
		})
	})

	return r
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]string{
		"message": "BarTab API - Bar Management System",
	})
}

// writeServiceError maps service errors onto HTTP status codes
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tab.ErrDrinkNotFound):
		JSONError(w, http.StatusNotFound, "NOT_FOUND", "Drink not found")
	case errors.Is(err, tab.ErrTransactionNotFound):
		JSONError(w, http.StatusNotFound, "NOT_FOUND", "Transaction not found")
	case errors.Is(err, tab.ErrPaymentNotFound):
		JSONError(w, http.StatusNotFound, "NOT_FOUND", "Payment not found")
	case errors.Is(err, tab.ErrInvalidDrink):
		JSONError(w, http.StatusBadRequest, "INVALID_DRINK", tab.ErrInvalidDrink.Error())
	case errors.Is(err, tab.ErrInvalidVolumeUnit):
		JSONError(w, http.StatusBadRequest, "INVALID_VOLUME_UNIT", tab.ErrInvalidVolumeUnit.Error())
	default:
		h.logger.Error().Err(err).Msg("unhandled service error")
		JSONError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}

func (h *Handler) writeBadRequest(w http.ResponseWriter, message string) {
	JSONError(w, http.StatusBadRequest, "BAD_REQUEST", message)
}
