package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mwhite7112/woodpantry-rates/internal/service"
)

// --- GET /quotes ---

func handleListQuotes(history *service.HistoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if history == nil {
			jsonError(w, "quote history is not enabled", http.StatusNotFound)
			return
		}

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				jsonError(w, "invalid limit", http.StatusBadRequest)
				return
			}
			limit = n
		}

		quotes, err := history.ListQuotes(r.Context(), limit)
		if err != nil {
			slog.Error("list quotes", "error", err)
			jsonError(w, "internal error", http.StatusInternalServerError)
			return
		}
		jsonOK(w, map[string]any{"quotes": quotes})
	}
}
