package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository"
)

type historyReader interface {
	List(ctx context.Context, matchID string) ([]gomoku.MoveRecord, error)
}

type handlers struct {
	logger  *slog.Logger
	history historyReader
}

type errorResponse struct {
	Error string `json:"error"`
}

// History serves the exported records of one match, INIT first.
func (that *handlers) History(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["id"]
	log := that.logger.With("method", "History", "matchID", matchID)

	if that.history == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "history feed is disabled"})
		return
	}

	records, err := that.history.List(r.Context(), matchID)
	if errors.Is(err, repository.ErrHistoryNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}

	if err != nil {
		log.Error("failed to list history", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
		return
	}

	writeJSON(w, http.StatusOK, records)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
