package handler

import (
	"net/http"

	"github.com/osse101/PocketGarden_Go/internal/domain"
	"github.com/osse101/PocketGarden_Go/internal/shop"
)

type BuySeedRequest struct {
	SeedID   string `json:"seedId" validate:"required,catalogid"`
	Quantity int    `json:"quantity" validate:"min=1,max=10000"`
}

// ShopResponse is the shop listing with restock and plot ladder details
type ShopResponse struct {
	Stock              []domain.ShopStock `json:"stock"`
	TimeUntilRestockMs int64              `json:"timeUntilRestockMs"`
	NextPlotPrice      *int               `json:"nextPlotPrice,omitempty"`
	CanAffordNextPlot  bool               `json:"canAffordNextPlot"`
}

// PlotPurchasedResponse reports the id of a newly bought plot
type PlotPurchasedResponse struct {
	Message string `json:"message"`
	PlotID  int    `json:"plotId"`
}

// ShopHandler serves the seed shop and plot purchase routes
type ShopHandler struct {
	svc shop.Service
}

// NewShopHandler creates a new ShopHandler
func NewShopHandler(svc shop.Service) *ShopHandler {
	return &ShopHandler{svc: svc}
}

// HandleGetShop lists every seed with its current stock
// @Summary Get shop
// @Description Every seed with its stock, the restock countdown and the next plot price
// @Tags shop
// @Produce json
// @Success 200 {object} ShopResponse
// @Failure 500 {object} ErrorResponse
// @Router /shop [get]
func (h *ShopHandler) HandleGetShop(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.EnsureStocked(r.Context()); err != nil {
		respondServiceError(w, r, ErrMsgRestockFailed, err)
		return
	}

	resp := ShopResponse{
		Stock:              h.svc.AllSeedsWithStock(),
		TimeUntilRestockMs: h.svc.TimeUntilRestock(),
		CanAffordNextPlot:  h.svc.CanAffordNextPlot(),
	}
	if price, ok := h.svc.NextPlotPrice(); ok {
		resp.NextPlotPrice = &price
	}
	respondJSON(w, http.StatusOK, resp)
}

// HandleBuySeed buys seeds from the shop stock
// @Summary Buy seeds
// @Tags shop
// @Accept json
// @Produce json
// @Param request body BuySeedRequest true "Seed and quantity"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /shop/buy [post]
func (h *ShopHandler) HandleBuySeed(w http.ResponseWriter, r *http.Request) {
	var req BuySeedRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy seed"); err != nil {
		return
	}

	if err := h.svc.BuySeed(r.Context(), req.SeedID, req.Quantity); err != nil {
		respondServiceError(w, r, ErrMsgBuyFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgBoughtSuccess})
}

// HandleBuyPlot buys the next plot on the price ladder
// @Summary Buy the next plot
// @Tags shop
// @Produce json
// @Success 201 {object} PlotPurchasedResponse
// @Failure 409 {object} ErrorResponse
// @Router /shop/buy-plot [post]
func (h *ShopHandler) HandleBuyPlot(w http.ResponseWriter, r *http.Request) {
	plotID, err := h.svc.BuyPlot(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgBuyFailed, err)
		return
	}
	respondJSON(w, http.StatusCreated, PlotPurchasedResponse{Message: MsgBoughtSuccess, PlotID: plotID})
}

// HandleRestock forces a restock draw
// @Summary Restock the shop
// @Tags shop
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 500 {object} ErrorResponse
// @Router /shop/restock [post]
func (h *ShopHandler) HandleRestock(w http.ResponseWriter, r *http.Request) {
	stock, err := h.svc.Restock(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgRestockFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: stock})
}
