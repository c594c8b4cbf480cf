package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PocketGarden_Go/internal/domain"
)

func TestHandlePlant(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		expectedStatus int
		expectedError  string
	}{
		{"Success", PlantRequest{PlotID: 0, SlotID: 1, SeedID: "seed_tomato"}, http.StatusCreated, ""},
		{"Unknown seed", PlantRequest{SeedID: "seed_nope"}, http.StatusBadRequest, ErrMsgUnknownSeedError},
		{"Seed not held", PlantRequest{SeedID: "seed_rose"}, http.StatusBadRequest, ErrMsgNoSeedError},
		{"Missing plot", PlantRequest{PlotID: 3, SeedID: "seed_tomato"}, http.StatusNotFound, ErrMsgPlotNotFoundError},
		{"Slot out of range", PlantRequest{SlotID: 9, SeedID: "seed_tomato"}, http.StatusNotFound, ErrMsgSlotNotFoundError},
		{"Malformed seed id", PlantRequest{SeedID: "Seed Tomato"}, http.StatusBadRequest, ErrMsgInvalidRequestSummary},
		{"Missing seed id", `{"plotId":0,"slotId":0}`, http.StatusBadRequest, ErrMsgInvalidRequestSummary},
		{"Unknown field", `{"seedId":"seed_tomato","extra":1}`, http.StatusBadRequest, ErrMsgInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			rec := f.do(t, http.MethodPost, "/garden/plant", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decode[ErrorResponse](t, rec).Error)
			}
		})
	}
}

func TestHandlePlant_OccupiedSlot(t *testing.T) {
	f := newFixture(t)
	body := PlantRequest{SeedID: "seed_tomato"}
	require.Equal(t, http.StatusCreated, f.do(t, http.MethodPost, "/garden/plant", body).Code)

	rec := f.do(t, http.MethodPost, "/garden/plant", body)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, 4, f.store.ItemCount("seed_tomato"))
}

func TestHandleHarvest_Lifecycle(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, http.StatusCreated, f.do(t, http.MethodPost, "/garden/plant", PlantRequest{SeedID: "seed_tomato"}).Code)

	// ACT: harvest too early
	rec := f.do(t, http.MethodPost, "/garden/harvest", SlotRequest{})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, ErrMsgNotReadyError, decode[ErrorResponse](t, rec).Error)

	// ACT: harvest once grown
	f.clock.AdvanceMillis(30_000)
	rec = f.do(t, http.MethodPost, "/garden/harvest", SlotRequest{})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[HarvestResponse](t, rec)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, []domain.ItemStack{{ItemID: "crop_tomato", Quantity: 1}}, resp.Results[0].Yields)
	assert.Equal(t, 1, f.store.ItemCount("crop_tomato"))

	rec = f.do(t, http.MethodPost, "/garden/harvest", SlotRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, ErrMsgSlotEmptyError, decode[ErrorResponse](t, rec).Error)
}

func TestHandleHarvestAll_NothingReady(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/garden/harvest-all", PlotRequest{})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[HarvestResponse](t, rec)
	assert.Equal(t, MsgNothingToHarvest, resp.Message)
	assert.NotNil(t, resp.Results)
	assert.Empty(t, resp.Results)
}

func TestHandlePlantAll_ThenHarvestAll(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/garden/plant-all", PlantAllRequest{SeedID: "seed_carrot"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 3, decode[PlantedResponse](t, rec).Planted, "limited by the three carrot seeds held")

	f.clock.AdvanceMillis(45_000)
	rec = f.do(t, http.MethodPost, "/garden/harvest-all", PlotRequest{})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[HarvestResponse](t, rec).Results, 3)
	assert.Equal(t, 3, f.store.ItemCount("crop_carrot"))
}

func TestHandleQuickPlant(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/garden/quick-plant", PlotRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, ErrMsgNoSeedSelectedError, decode[ErrorResponse](t, rec).Error)

	require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/garden/select-seed", SelectSeedRequest{SeedID: "seed_tomato"}).Code)
	require.Equal(t, http.StatusCreated, f.do(t, http.MethodPost, "/garden/plant", PlantRequest{SeedID: "seed_tomato"}).Code)

	rec = f.do(t, http.MethodPost, "/garden/quick-plant", PlotRequest{})

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decode[PlantedResponse](t, rec)
	require.NotNil(t, resp.SlotID)
	assert.Equal(t, 1, *resp.SlotID, "slot 0 is taken")
}

func TestHandleSelectPlot(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodPost, "/garden/select-plot", SelectPlotRequest{Index: 2}).Code)
	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodPost, "/garden/select-plot", `{"index":-1}`).Code)
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/garden/select-plot", SelectPlotRequest{Index: 0}).Code)
}

func TestHandleGetPlot(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, http.StatusCreated, f.do(t, http.MethodPost, "/garden/plant", PlantRequest{SeedID: "seed_tomato"}).Code)
	f.clock.AdvanceMillis(15_000)

	rec := f.do(t, http.MethodGet, "/garden/0", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[domain.PlotView](t, rec)
	assert.Len(t, view.Slots, 4)
	assert.Equal(t, 1, view.Growing)
	assert.Equal(t, 3, view.Empty)
	assert.Equal(t, 50, view.Slots[0].Progress)
	assert.Equal(t, "0:15", view.Slots[0].Remaining)

	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodGet, "/garden/abc", nil).Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, "/garden/7", nil).Code)
}
