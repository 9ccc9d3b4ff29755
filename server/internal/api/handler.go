package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/healthtech/healthtech/pkg/types"
	"github.com/healthtech/healthtech/pkg/vitals"
	"github.com/healthtech/healthtech/server/internal/alerts"
	"github.com/healthtech/healthtech/server/internal/store"
)

// maxBodyBytes caps the size of a submitted reading.
const maxBodyBytes = 1 << 16

// Handler is the HTTP handler for all /api/v1/* endpoints.
type Handler struct {
	submit *Submitter
	log    *store.Log
	alerts *alerts.Engine
	mux    *http.ServeMux
}

// New creates a Handler wired to the given submitter, session log, and
// alert engine and registers all routes.
func New(sub *Submitter, log *store.Log, engine *alerts.Engine) http.Handler {
	h := &Handler{submit: sub, log: log, alerts: engine, mux: http.NewServeMux()}

	h.mux.HandleFunc("/api/v1/readings", h.createReading)
	h.mux.HandleFunc("/api/v1/records", h.listRecords)
	h.mux.HandleFunc("/api/v1/records.csv", h.recordsCSV)
	h.mux.HandleFunc("/api/v1/records/", h.recordChart) // subtree, extracts {id}
	h.mux.HandleFunc("/api/v1/summary/daily", h.daily)
	h.mux.HandleFunc("/api/v1/snapshot", h.snapshot)
	h.mux.HandleFunc("/api/v1/alerts", h.listAlerts)

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// --- route handlers ---------------------------------------------------------

// createReading handles POST /api/v1/readings.
func (h *Handler) createReading(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var reading types.Reading
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&reading); err != nil {
		jsonErr(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	resp, err := h.submit.Submit(reading)
	if err != nil {
		var verr *vitals.ValidationError
		if errors.As(err, &verr) {
			jsonResp(w, http.StatusUnprocessableEntity, errorResponse{Error: "invalid reading", Fields: verr.Fields})
			return
		}
		slog.Error("api: submit failed", "err", err)
		jsonErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	jsonResp(w, http.StatusCreated, resp)
}

// listRecords returns GET /api/v1/records.
func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	jsonResp(w, http.StatusOK, h.log.All())
}

// recordsCSV returns GET /api/v1/records.csv.
func (h *Handler) recordsCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="health_records.csv"`)
	if err := writeCSV(w, h.log.All()); err != nil {
		slog.Error("api: write csv failed", "err", err)
	}
}

// recordChart returns GET /api/v1/records/{id}/chart.
func (h *Handler) recordChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/records/")
	if rest == "" {
		h.listRecords(w, r)
		return
	}
	id, ok := strings.CutSuffix(rest, "/chart")
	if !ok || id == "" || strings.Contains(id, "/") {
		jsonErr(w, http.StatusNotFound, "not found")
		return
	}

	rec, err := h.log.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		jsonErr(w, http.StatusNotFound, "record not found")
		return
	}
	jsonResp(w, http.StatusOK, vitals.Chart(rec))
}

// daily returns GET /api/v1/summary/daily.
func (h *Handler) daily(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	jsonResp(w, http.StatusOK, h.log.DailyCounts())
}

// snapshot returns GET /api/v1/snapshot.
func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	jsonResp(w, http.StatusOK, h.log.Snapshot())
}

// listAlerts returns GET /api/v1/alerts.
func (h *Handler) listAlerts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if h.alerts == nil {
		jsonResp(w, http.StatusOK, []struct{}{})
		return
	}
	jsonResp(w, http.StatusOK, h.alerts.Recent())
}

// --- helpers ----------------------------------------------------------------

func jsonResp(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonErr(w http.ResponseWriter, code int, msg string) {
	jsonResp(w, code, errorResponse{Error: msg})
}
