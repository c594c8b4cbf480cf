package handler

import (
	"net/http"

	"github.com/osse101/PocketGarden_Go/internal/domain"
	"github.com/osse101/PocketGarden_Go/internal/inventory"
	"github.com/osse101/PocketGarden_Go/internal/logger"
)

type SellRequest struct {
	ItemID   string `json:"itemId" validate:"required,catalogid"`
	Quantity int    `json:"quantity" validate:"min=1,max=10000"`
}

// InventoryResponse is the sorted inventory listing with totals
type InventoryResponse struct {
	Items      []domain.InventoryItem      `json:"items"`
	TotalValue int                         `json:"totalValue"`
	Counts     map[domain.ItemCategory]int `json:"counts"`
}

// SellResponse reports the money earned by a sale
type SellResponse struct {
	Earned int `json:"earned"`
}

// InventoryHandler serves inventory listing and selling
type InventoryHandler struct {
	svc inventory.Service
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(svc inventory.Service) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// HandleGetInventory lists held items. Optional query parameters:
// category (seed|crop|food|crafted), sort (name|quantity|value), dir (asc|desc).
// @Summary Get inventory
// @Tags inventory
// @Produce json
// @Param category query string false "seed, crop, food or crafted"
// @Param sort query string false "name, quantity or value"
// @Param dir query string false "asc or desc"
// @Success 200 {object} InventoryResponse
// @Failure 400 {object} ErrorResponse
// @Router /inventory [get]
func (h *InventoryHandler) HandleGetInventory(w http.ResponseWriter, r *http.Request) {
	by, dir, err := inventory.ParseSort(GetOptionalQueryParam(r, "sort", ""), GetOptionalQueryParam(r, "dir", ""))
	if err != nil {
		respondServiceError(w, r, "Parse sort", err)
		return
	}

	var items []domain.InventoryItem
	if c := GetOptionalQueryParam(r, "category", ""); c != "" {
		category := domain.ItemCategory(c)
		if !category.Valid() {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidInputError)
			return
		}
		items = h.svc.ByCategory(category)
	} else {
		items = h.svc.AllItems()
	}

	respondJSON(w, http.StatusOK, InventoryResponse{
		Items:      inventory.Sort(items, by, dir),
		TotalValue: h.svc.TotalValue(),
		Counts:     h.svc.CountByCategory(),
	})
}

// HandleSell sells items for their catalog price
// @Summary Sell items
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body SellRequest true "Item and quantity"
// @Success 200 {object} SellResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /inventory/sell [post]
func (h *InventoryHandler) HandleSell(w http.ResponseWriter, r *http.Request) {
	var req SellRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Sell"); err != nil {
		return
	}

	earned, err := h.svc.Sell(r.Context(), req.ItemID, req.Quantity)
	if err != nil {
		respondServiceError(w, r, ErrMsgSellFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info("Item sold", "item", req.ItemID, "quantity", req.Quantity, "earned", earned)
	respondJSON(w, http.StatusOK, SellResponse{Earned: earned})
}
