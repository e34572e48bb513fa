// Package httpapi is the thin boundary layer over the valuation core. It
// validates required parameters before anything reaches the engine; the
// engine itself never rejects a request.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"dealscout/internal/domain"
	"dealscout/internal/service"
)

// Default mileage assumed for resellability queries that omit it.
const defaultQueryMileage = 50000

type Server struct {
	valuations *service.ValuationService
	logger     *slog.Logger
}

func NewServer(valuations *service.ValuationService, logger *slog.Logger) *Server {
	return &Server{
		valuations: valuations,
		logger:     logger.With("component", "http"),
	}
}

func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/valuations", s.handleValuation)
		r.Get("/resellability", s.handleResellability)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleValuation(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	year, yearErr := strconv.Atoi(q.Get("year"))
	mileage, mileageErr := strconv.Atoi(q.Get("mileage"))
	if q.Get("make") == "" || q.Get("model") == "" || q.Get("condition") == "" ||
		yearErr != nil || mileageErr != nil {
		writeError(w, http.StatusBadRequest, "required: make, model, year, mileage, condition")
		return
	}

	est := s.valuations.GetValuation(r.Context(), domain.ValuationRequest{
		VIN:       q.Get("vin"),
		Make:      q.Get("make"),
		Model:     q.Get("model"),
		Year:      year,
		Mileage:   mileage,
		Condition: q.Get("condition"),
	})

	writeJSON(w, http.StatusOK, response{Success: true, Data: estimatePayload(est)})
}

func (s *Server) handleResellability(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	year, yearErr := strconv.Atoi(q.Get("year"))
	price, priceErr := strconv.ParseFloat(q.Get("price"), 64)
	if q.Get("make") == "" || q.Get("model") == "" || yearErr != nil || priceErr != nil {
		writeError(w, http.StatusBadRequest, "required: make, model, year, price")
		return
	}

	mileage, err := strconv.Atoi(q.Get("mileage"))
	if err != nil || mileage <= 0 {
		mileage = defaultQueryMileage
	}

	score := s.valuations.GetResellability(r.Context(), q.Get("make"), q.Get("model"), year, price, mileage)

	writeJSON(w, http.StatusOK, response{Success: true, Data: score})
}

type response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func estimatePayload(est *domain.ValuationEstimate) map[string]interface{} {
	return map[string]interface{}{
		"estimated_value": est.EstimatedValue,
		"low_value":       est.LowValue,
		"high_value":      est.HighValue,
		"source":          est.Source,
		"fetched_at":      est.FetchedAt,
		"expires_at":      est.ExpiresAt,
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, response{Success: false, Error: msg})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
