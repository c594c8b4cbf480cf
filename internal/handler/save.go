package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/osse101/PocketGarden_Go/internal/logger"
	"github.com/osse101/PocketGarden_Go/internal/offline"
	"github.com/osse101/PocketGarden_Go/internal/persistence"
)

// SaveManager is the persistence surface used by the save routes
type SaveManager interface {
	Save(ctx context.Context) error
	ExportTo(ctx context.Context, w io.Writer) error
	Import(ctx context.Context, r io.Reader) (offline.Summary, error)
	Reset(ctx context.Context) error
}

// ImportResponse reports the offline catch-up applied to an imported save
type ImportResponse struct {
	Message string          `json:"message"`
	Offline offline.Summary `json:"offline"`
}

// SaveHandler serves save, export, import and reset
type SaveHandler struct {
	mgr SaveManager
	now func() time.Time
}

// NewSaveHandler creates a new SaveHandler; now dates export file names
func NewSaveHandler(mgr SaveManager, now func() time.Time) *SaveHandler {
	if now == nil {
		now = time.Now
	}
	return &SaveHandler{mgr: mgr, now: now}
}

// HandleSave persists the game immediately
// @Summary Save now
// @Tags save
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 503 {object} ErrorResponse
// @Router /save [post]
func (h *SaveHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	if err := h.mgr.Save(r.Context()); err != nil {
		respondServiceError(w, r, ErrMsgSaveFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSavedSuccess})
}

// HandleExport streams the save as an indented JSON attachment
// @Summary Export save
// @Tags save
// @Produce json
// @Success 200 {object} domain.GameState
// @Failure 503 {object} ErrorResponse
// @Router /save/export [get]
func (h *SaveHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	if err := h.mgr.ExportTo(r.Context(), buf); err != nil {
		respondServiceError(w, r, ErrMsgExportFailed, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", persistence.ExportFileName(h.now())))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.FromContext(r.Context()).Error("Failed to write export", "error", err)
	}
}

// HandleImport replaces the game with the uploaded save
// @Summary Import save
// @Tags save
// @Accept json
// @Produce json
// @Param request body domain.GameState true "Save document"
// @Success 200 {object} ImportResponse
// @Failure 400 {object} ErrorResponse
// @Router /save/import [post]
func (h *SaveHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	summary, err := h.mgr.Import(r.Context(), r.Body)
	if err != nil {
		respondServiceError(w, r, ErrMsgImportFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, ImportResponse{Message: MsgImportedSuccess, Offline: summary})
}

// HandleReset deletes the save and starts a fresh game
// @Summary Reset game
// @Tags save
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 503 {object} ErrorResponse
// @Router /save/reset [post]
func (h *SaveHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	if err := h.mgr.Reset(r.Context()); err != nil {
		respondServiceError(w, r, ErrMsgResetFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgResetSuccess})
}
