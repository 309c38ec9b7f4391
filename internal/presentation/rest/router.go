package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/meridianbank/lending/internal/application/dto"
	"github.com/meridianbank/lending/internal/application/usecase"
	"github.com/meridianbank/lending/internal/domain/port"
	"github.com/meridianbank/lending/pkg/observability"
)

// ReadinessChecker reports whether a downstream dependency is reachable.
type ReadinessChecker func(ctx context.Context) error

// Server exposes the read-side HTTP API plus health and metrics endpoints.
// Writes go through gRPC; this surface exists for probes, dashboards and
// simple integrations.
type Server struct {
	getLoan          *usecase.GetLoanUseCase
	listLoans        *usecase.ListLoansUseCase
	listInstallments *usecase.ListInstallmentsUseCase
	listPayments     *usecase.ListPaymentsUseCase
	ready            ReadinessChecker
	logger           *slog.Logger
}

// NewServer creates the HTTP server.
func NewServer(
	getLoan *usecase.GetLoanUseCase,
	listLoans *usecase.ListLoansUseCase,
	listInstallments *usecase.ListInstallmentsUseCase,
	listPayments *usecase.ListPaymentsUseCase,
	ready ReadinessChecker,
	logger *slog.Logger,
) *Server {
	return &Server{
		getLoan:          getLoan,
		listLoans:        listLoans,
		listInstallments: listInstallments,
		listPayments:     listPayments,
		ready:            ready,
		logger:           logger,
	}
}

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleLiveness)
	r.Get("/readyz", s.handleReadiness)
	r.Handle("/metrics", observability.MetricsHandler())

	r.Route("/v1/loans/{loanID}", func(r chi.Router) {
		r.Get("/", s.handleGetLoan)
		r.Get("/installments", s.handleListInstallments)
		r.Get("/payments", s.handleListPayments)
	})
	r.Get("/v1/borrowers/{borrowerID}/loans", s.handleListLoans)

	return r
}

func (s *Server) handleLiveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "lending-service",
	})
}

func (s *Server) handleReadiness(w http.ResponseWriter, r *http.Request) {
	if s.ready != nil {
		if err := s.ready(r.Context()); err != nil {
			s.logger.Warn("readiness check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unavailable",
			})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ready",
		"service": "lending-service",
	})
}

func (s *Server) handleGetLoan(w http.ResponseWriter, r *http.Request) {
	loanID := chi.URLParam(r, "loanID")

	resp, err := s.getLoan.Execute(r.Context(), dto.GetLoanRequest{LoanID: loanID})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListLoans(w http.ResponseWriter, r *http.Request) {
	borrowerID := chi.URLParam(r, "borrowerID")

	resp, err := s.listLoans.Execute(r.Context(), dto.ListLoansRequest{BorrowerID: borrowerID})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"loans": resp})
}

func (s *Server) handleListInstallments(w http.ResponseWriter, r *http.Request) {
	loanID := chi.URLParam(r, "loanID")

	resp, err := s.listInstallments.Execute(r.Context(), dto.ListInstallmentsRequest{LoanID: loanID})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"installments": resp})
}

func (s *Server) handleListPayments(w http.ResponseWriter, r *http.Request) {
	loanID := chi.URLParam(r, "loanID")

	resp, err := s.listPayments.Execute(r.Context(), dto.ListPaymentsRequest{LoanID: loanID})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"payments": resp})
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, port.ErrLoanNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "loan not found"})
		return
	}
	s.logger.Error("request failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck
}
