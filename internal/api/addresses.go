package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mwhite7112/woodpantry-rates/internal/service"
	"github.com/mwhite7112/woodpantry-rates/internal/shipping"
)

func targetParam(w http.ResponseWriter, r *http.Request) (shipping.Target, bool) {
	target, err := shipping.ParseTarget(chi.URLParam(r, "target"))
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return "", false
	}
	return target, true
}

// --- PUT /addresses/:target ---

func handleReplaceAddress(ctrl *service.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target, ok := targetParam(w, r)
		if !ok {
			return
		}
		var addr shipping.Address
		if err := json.NewDecoder(r.Body).Decode(&addr); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if err := ctrl.SetAddress(target, addr); err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		jsonOK(w, newStateView(ctrl.Snapshot()))
	}
}

// --- PATCH /addresses/:target ---

func handleEditAddress(ctrl *service.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target, ok := targetParam(w, r)
		if !ok {
			return
		}
		var fields map[string]string
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if err := ctrl.UpdateAddressFields(target, fields); err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		jsonOK(w, newStateView(ctrl.Snapshot()))
	}
}

// --- POST /addresses/:target/parse ---

type parseRequest struct {
	Text string `json:"text"` // free-form address text
}

func handleParseAddress(ctrl *service.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target, ok := targetParam(w, r)
		if !ok {
			return
		}
		var req parseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}

		addr, err := ctrl.ParseAddress(r.Context(), target, req.Text)
		if err != nil {
			if service.IsUserError(err) {
				jsonError(w, err.Error(), http.StatusBadRequest)
				return
			}
			slog.Warn("address parse failed", "target", target, "error", errors.Unwrap(err))
			jsonError(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		jsonOK(w, map[string]any{
			"target":  target,
			"address": addr,
		})
	}
}
