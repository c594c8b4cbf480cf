package handler

import (
	"net/http"

	"github.com/osse101/PocketGarden_Go/internal/domain"
)

// StateReader exposes a read snapshot of the game
type StateReader interface {
	State() domain.GameState
	Now() int64
}

// StateResponse wraps the game state with the server clock
type StateResponse struct {
	State domain.GameState `json:"state"`
	Now   int64            `json:"now"`
}

// HandleGetState returns the full game state
// @Summary Get game state
// @Tags state
// @Produce json
// @Success 200 {object} StateResponse
// @Router /state [get]
func HandleGetState(st StateReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, StateResponse{State: st.State(), Now: st.Now()})
	}
}
