// Package api exposes the stored transactions over a small JSON HTTP API:
// filtered listings plus per-category and per-month aggregates. Everything
// here is read-only plumbing over the store; classification happens at
// ingestion time.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Tresor26/MOMO-Dashboard/internal/logging"
	"github.com/Tresor26/MOMO-Dashboard/internal/models"
	"github.com/Tresor26/MOMO-Dashboard/internal/store"
)

// Storage is the read-side of the store the API serves from.
type Storage interface {
	ListTransactions(ctx context.Context, filter store.Filter) ([]models.StoredTransaction, error)
	Categories(ctx context.Context) ([]string, error)
	CategorySummary(ctx context.Context) ([]store.CategorySummary, error)
	MonthlySummary(ctx context.Context) ([]store.MonthlySummary, error)
}

// Server handles the query API endpoints.
type Server struct {
	storage Storage
	log     logging.Logger
}

// NewServer creates an API server over the given storage.
func NewServer(storage Storage, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &Server{storage: storage, log: logger}
}

// Handler returns the API routes wrapped with CORS handling.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/transactions", s.handleTransactions)
	mux.HandleFunc("/api/categories", s.handleCategories)
	mux.HandleFunc("/api/summary", s.handleSummary)
	mux.HandleFunc("/api/monthly-transactions", s.handleMonthly)
	return withCORS(mux)
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filter := store.Filter{
		Category:   r.URL.Query().Get("category"),
		DatePrefix: r.URL.Query().Get("date"),
	}

	transactions, err := s.storage.ListTransactions(r.Context(), filter)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	if transactions == nil {
		transactions = []models.StoredTransaction{}
	}
	s.writeJSON(w, transactions)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	categories, err := s.storage.Categories(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	if categories == nil {
		categories = []string{}
	}
	s.writeJSON(w, categories)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	summaries, err := s.storage.CategorySummary(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	if summaries == nil {
		summaries = []store.CategorySummary{}
	}
	s.writeJSON(w, summaries)
}

func (s *Server) handleMonthly(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	summaries, err := s.storage.MonthlySummary(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	if summaries == nil {
		summaries = []store.MonthlySummary{}
	}
	s.writeJSON(w, summaries)
}

func (s *Server) writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.WithError(err).Error("Failed to encode response")
	}
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.WithError(err).WithField(logging.FieldPath, r.URL.Path).Error("Query failed")
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// withCORS allows browser dashboards served from other origins to call the
// API, mirroring the permissive development setup the frontend expects.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
