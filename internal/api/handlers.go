package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mwhite7112/woodpantry-rates/internal/service"
	"github.com/mwhite7112/woodpantry-rates/internal/shipping"
)

// NewRouter wires all routes. history may be nil when quote history is
// disabled.
func NewRouter(ctrl *service.Controller, history *service.HistoryService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handleHealth)

	r.Get("/state", handleGetState(ctrl))
	r.Put("/addresses/{target}", handleReplaceAddress(ctrl))
	r.Patch("/addresses/{target}", handleEditAddress(ctrl))
	r.Post("/addresses/{target}/parse", handleParseAddress(ctrl))
	r.Put("/parcel", handleReplaceParcel(ctrl))
	r.Patch("/parcel", handleEditParcel(ctrl))
	r.Put("/credential", handleSetCredential(ctrl))
	r.Post("/rates", handleCalculateRates(ctrl))
	r.Get("/quotes", handleListQuotes(history))

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok")) //nolint:errcheck
}

// --- GET /state ---

func handleGetState(ctrl *service.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jsonOK(w, newStateView(ctrl.Snapshot()))
	}
}

// --- PUT /parcel ---

func handleReplaceParcel(ctrl *service.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var parcel shipping.Parcel
		if err := json.NewDecoder(r.Body).Decode(&parcel); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		ctrl.SetParcel(parcel)
		jsonOK(w, newStateView(ctrl.Snapshot()))
	}
}

// --- PATCH /parcel ---

func handleEditParcel(ctrl *service.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var fields map[string]string
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if err := ctrl.UpdateParcelFields(fields); err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		jsonOK(w, newStateView(ctrl.Snapshot()))
	}
}

// --- PUT /credential ---

type credentialRequest struct {
	Token string `json:"token"` // empty selects mock mode
}

func handleSetCredential(ctrl *service.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		ctrl.SetCredential(req.Token)
		w.WriteHeader(http.StatusNoContent)
	}
}

// --- POST /rates ---

func handleCalculateRates(ctrl *service.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := ctrl.CalculateRates(r.Context())

		status := http.StatusOK
		if state.Status == shipping.StatusError {
			status = http.StatusBadGateway
		}
		jsonStatus(w, newStateView(state), status)
	}
}

// --- helpers ---

func jsonOK(w http.ResponseWriter, v any) {
	jsonStatus(w, v, http.StatusOK)
}

func jsonStatus(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	jsonStatus(w, map[string]string{"error": msg}, status)
}
