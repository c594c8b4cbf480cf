package handler

import (
	"net/http"

	"github.com/osse101/PocketGarden_Go/internal/domain"
	"github.com/osse101/PocketGarden_Go/internal/garden"
	"github.com/osse101/PocketGarden_Go/internal/logger"
)

type PlantRequest struct {
	PlotID int    `json:"plotId" validate:"min=0"`
	SlotID int    `json:"slotId" validate:"min=0"`
	SeedID string `json:"seedId" validate:"required,catalogid"`
}

type SlotRequest struct {
	PlotID int `json:"plotId" validate:"min=0"`
	SlotID int `json:"slotId" validate:"min=0"`
}

type PlotRequest struct {
	PlotID int `json:"plotId" validate:"min=0"`
}

type PlantAllRequest struct {
	PlotID int    `json:"plotId" validate:"min=0"`
	SeedID string `json:"seedId" validate:"required,catalogid"`
}

type SelectSeedRequest struct {
	SeedID string `json:"seedId" validate:"required,catalogid"`
}

type SelectPlotRequest struct {
	Index int `json:"index" validate:"min=0"`
}

// PlantedResponse reports where or how many seeds were planted
type PlantedResponse struct {
	Message string `json:"message"`
	SlotID  *int   `json:"slotId,omitempty"`
	Planted int    `json:"planted"`
}

// HarvestResponse lists the harvested slots
type HarvestResponse struct {
	Message string                 `json:"message,omitempty"`
	Results []domain.HarvestResult `json:"results"`
}

// GardenHandler serves the planting and harvesting routes
type GardenHandler struct {
	svc garden.Service
}

// NewGardenHandler creates a new GardenHandler
func NewGardenHandler(svc garden.Service) *GardenHandler {
	return &GardenHandler{svc: svc}
}

// HandleGetPlot returns the derived view of one plot
// @Summary Get plot
// @Description Derived view of one plot with readiness and progress per slot
// @Tags garden
// @Produce json
// @Param plotID path int true "Plot id"
// @Success 200 {object} domain.PlotView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /garden/{plotID} [get]
func (h *GardenHandler) HandleGetPlot(w http.ResponseWriter, r *http.Request) {
	plotID, ok := GetIntURLParam(r, w, "plotID")
	if !ok {
		return
	}

	view, err := h.svc.PlotView(plotID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetPlotFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandlePlant plants one seed in a specific slot
// @Summary Plant a seed
// @Tags garden
// @Accept json
// @Produce json
// @Param request body PlantRequest true "Plot, slot and seed"
// @Success 201 {object} PlantedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /garden/plant [post]
func (h *GardenHandler) HandlePlant(w http.ResponseWriter, r *http.Request) {
	var req PlantRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Plant"); err != nil {
		return
	}

	if err := h.svc.Plant(r.Context(), req.PlotID, req.SlotID, req.SeedID); err != nil {
		respondServiceError(w, r, ErrMsgPlantFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info("Seed planted", "plot", req.PlotID, "slot", req.SlotID, "seed", req.SeedID)
	slot := req.SlotID
	respondJSON(w, http.StatusCreated, PlantedResponse{Message: MsgPlantedSuccess, SlotID: &slot, Planted: 1})
}

// HandleQuickPlant plants the selected seed in the first empty slot
// @Summary Quick plant
// @Description Plants the selected seed in the first empty slot of the plot
// @Tags garden
// @Accept json
// @Produce json
// @Param request body PlotRequest true "Plot"
// @Success 201 {object} PlantedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /garden/quick-plant [post]
func (h *GardenHandler) HandleQuickPlant(w http.ResponseWriter, r *http.Request) {
	var req PlotRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Quick plant"); err != nil {
		return
	}

	slot, err := h.svc.QuickPlant(r.Context(), req.PlotID)
	if err != nil {
		respondServiceError(w, r, ErrMsgPlantFailed, err)
		return
	}
	respondJSON(w, http.StatusCreated, PlantedResponse{Message: MsgPlantedSuccess, SlotID: &slot, Planted: 1})
}

// HandlePlantAll fills every empty slot the held seeds allow
// @Summary Plant all empty slots
// @Tags garden
// @Accept json
// @Produce json
// @Param request body PlantAllRequest true "Plot and seed"
// @Success 201 {object} PlantedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /garden/plant-all [post]
func (h *GardenHandler) HandlePlantAll(w http.ResponseWriter, r *http.Request) {
	var req PlantAllRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Plant all"); err != nil {
		return
	}

	n, err := h.svc.PlantAll(r.Context(), req.PlotID, req.SeedID)
	if err != nil {
		respondServiceError(w, r, ErrMsgPlantFailed, err)
		return
	}
	respondJSON(w, http.StatusCreated, PlantedResponse{Message: MsgPlantedSuccess, Planted: n})
}

// HandleHarvest harvests a single ready slot
// @Summary Harvest a slot
// @Tags garden
// @Accept json
// @Produce json
// @Param request body SlotRequest true "Plot and slot"
// @Success 200 {object} HarvestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /garden/harvest [post]
func (h *GardenHandler) HandleHarvest(w http.ResponseWriter, r *http.Request) {
	var req SlotRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Harvest"); err != nil {
		return
	}

	res, err := h.svc.Harvest(r.Context(), req.PlotID, req.SlotID)
	if err != nil {
		respondServiceError(w, r, ErrMsgHarvestFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, HarvestResponse{Results: []domain.HarvestResult{res}})
}

// HandleHarvestAll harvests every ready slot of a plot
// @Summary Harvest every ready slot
// @Tags garden
// @Accept json
// @Produce json
// @Param request body PlotRequest true "Plot"
// @Success 200 {object} HarvestResponse
// @Failure 404 {object} ErrorResponse
// @Router /garden/harvest-all [post]
func (h *GardenHandler) HandleHarvestAll(w http.ResponseWriter, r *http.Request) {
	var req PlotRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Harvest all"); err != nil {
		return
	}

	results, err := h.svc.HarvestAll(r.Context(), req.PlotID)
	if err != nil {
		respondServiceError(w, r, ErrMsgHarvestFailed, err)
		return
	}

	resp := HarvestResponse{Results: results}
	if len(results) == 0 {
		resp.Message = MsgNothingToHarvest
		resp.Results = []domain.HarvestResult{}
	}
	respondJSON(w, http.StatusOK, resp)
}

// HandleSelectSeed sets the seed used by quick plant
// @Summary Select seed
// @Tags garden
// @Accept json
// @Produce json
// @Param request body SelectSeedRequest true "Seed"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /garden/select-seed [post]
func (h *GardenHandler) HandleSelectSeed(w http.ResponseWriter, r *http.Request) {
	var req SelectSeedRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Select seed"); err != nil {
		return
	}

	if err := h.svc.SelectSeed(r.Context(), req.SeedID); err != nil {
		respondServiceError(w, r, ErrMsgSelectFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSelectedSuccess})
}

// HandleSelectPlot switches the current plot
// @Summary Select plot
// @Tags garden
// @Accept json
// @Produce json
// @Param request body SelectPlotRequest true "Plot index"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /garden/select-plot [post]
func (h *GardenHandler) HandleSelectPlot(w http.ResponseWriter, r *http.Request) {
	var req SelectPlotRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Select plot"); err != nil {
		return
	}

	if err := h.svc.SelectPlot(r.Context(), req.Index); err != nil {
		respondServiceError(w, r, ErrMsgSelectFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSelectedSuccess})
}
