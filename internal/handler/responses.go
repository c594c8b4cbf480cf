package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/PocketGarden_Go/internal/domain"
	"github.com/osse101/PocketGarden_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode first so an encoding failure can still produce a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed operation and maps the error to a client response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgNotEnoughMoneyError   = "Not enough money"
	ErrMsgInvalidAmountError    = "Amount must be positive"
	ErrMsgInsufficientItemsErr  = "Not enough items"
	ErrMsgItemNotFoundError     = "Item not found"
	ErrMsgNotSellableError      = "Item is not sellable"
	ErrMsgPlotNotFoundError     = "Plot not found"
	ErrMsgSlotNotFoundError     = "Slot not found"
	ErrMsgSlotOccupiedError     = "That slot already has a plant"
	ErrMsgSlotEmptyError        = "That slot is empty"
	ErrMsgNotReadyError         = "That plant is still growing"
	ErrMsgUnknownSeedError      = "Unknown seed"
	ErrMsgNoSeedError           = "You don't have that seed"
	ErrMsgNoSeedSelectedError   = "Select a seed first"
	ErrMsgNoEmptySlotError      = "No empty slots on this plot"
	ErrMsgNotInStockError       = "That seed is not in stock"
	ErrMsgInsufficientStockErr  = "Not enough stock"
	ErrMsgMaxPlotsReachedError  = "All plots already purchased"
	ErrMsgRecipeNotFoundError   = "Recipe not found"
	ErrMsgCannotMakeError       = "Missing ingredients"
	ErrMsgSaveNotFoundError     = "No saved game"
	ErrMsgInvalidSaveError      = "Invalid save file format"
	ErrMsgInvalidInputError     = "Invalid request. Please check your inputs."
	ErrMsgStorageUnavailableErr = "Save storage is unavailable. Please try again later."
)

// errorMappings is checked in order; the first match wins
var errorMappings = []struct {
	target error
	status int
	msg    string
}{
	{domain.ErrInsufficientFunds, http.StatusBadRequest, ErrMsgNotEnoughMoneyError},
	{domain.ErrInvalidAmount, http.StatusBadRequest, ErrMsgInvalidAmountError},
	{domain.ErrInsufficientQuantity, http.StatusBadRequest, ErrMsgInsufficientItemsErr},
	{domain.ErrItemNotFound, http.StatusNotFound, ErrMsgItemNotFoundError},
	{domain.ErrNotSellable, http.StatusBadRequest, ErrMsgNotSellableError},
	{domain.ErrPlotNotFound, http.StatusNotFound, ErrMsgPlotNotFoundError},
	{domain.ErrSlotNotFound, http.StatusNotFound, ErrMsgSlotNotFoundError},
	{domain.ErrSlotOccupied, http.StatusConflict, ErrMsgSlotOccupiedError},
	{domain.ErrSlotEmpty, http.StatusBadRequest, ErrMsgSlotEmptyError},
	{domain.ErrNotReady, http.StatusConflict, ErrMsgNotReadyError},
	{domain.ErrUnknownSeed, http.StatusBadRequest, ErrMsgUnknownSeedError},
	{domain.ErrNoSeed, http.StatusBadRequest, ErrMsgNoSeedError},
	{domain.ErrNoSeedSelected, http.StatusBadRequest, ErrMsgNoSeedSelectedError},
	{domain.ErrNoEmptySlot, http.StatusConflict, ErrMsgNoEmptySlotError},
	{domain.ErrNotInStock, http.StatusBadRequest, ErrMsgNotInStockError},
	{domain.ErrInsufficientStock, http.StatusBadRequest, ErrMsgInsufficientStockErr},
	{domain.ErrMaxPlotsReached, http.StatusConflict, ErrMsgMaxPlotsReachedError},
	{domain.ErrRecipeNotFound, http.StatusNotFound, ErrMsgRecipeNotFoundError},
	{domain.ErrCannotMake, http.StatusBadRequest, ErrMsgCannotMakeError},
	{domain.ErrSaveNotFound, http.StatusNotFound, ErrMsgSaveNotFoundError},
	{domain.ErrInvalidSave, http.StatusBadRequest, ErrMsgInvalidSaveError},
	{domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidInputError},
	{domain.ErrStorageFailure, http.StatusServiceUnavailable, ErrMsgStorageUnavailableErr},
}

// mapServiceErrorToUserMessage converts service errors to HTTP status codes and
// messages users can act upon. Unrecognised errors become a generic 500.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.msg
		}
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
