package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PocketGarden_Go/internal/catalog"
	"github.com/osse101/PocketGarden_Go/internal/clock"
	"github.com/osse101/PocketGarden_Go/internal/crafting"
	"github.com/osse101/PocketGarden_Go/internal/domain"
	"github.com/osse101/PocketGarden_Go/internal/garden"
	"github.com/osse101/PocketGarden_Go/internal/inventory"
	"github.com/osse101/PocketGarden_Go/internal/shop"
	"github.com/osse101/PocketGarden_Go/internal/store"
	"github.com/osse101/PocketGarden_Go/internal/utils"
)

const testStart = int64(1_700_000_000_000)

type fixture struct {
	store  *store.Store
	clock  *clock.SimulatedClock
	router chi.Router
}

// newFixture wires real services over a fresh game with 4 slots per plot.
// Harvest yields always roll the minimum.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	clk := clock.NewSimulatedClockMillis(testStart)
	st := store.New(clk, nil, 4)
	cat := catalog.Default()
	rnd := &utils.FixedSource{}

	gardenH := NewGardenHandler(garden.NewService(st, cat, rnd))
	shopH := NewShopHandler(shop.NewService(st, cat, rnd, domain.DefaultGameConfig()))
	invH := NewInventoryHandler(inventory.NewService(st, cat))
	craftH := NewCraftingHandler(crafting.NewKitchen(st, cat), crafting.NewWorkbench(st, cat))

	r := chi.NewRouter()
	r.Get("/state", HandleGetState(st))
	r.Get("/garden/{plotID}", gardenH.HandleGetPlot)
	r.Post("/garden/plant", gardenH.HandlePlant)
	r.Post("/garden/quick-plant", gardenH.HandleQuickPlant)
	r.Post("/garden/plant-all", gardenH.HandlePlantAll)
	r.Post("/garden/harvest", gardenH.HandleHarvest)
	r.Post("/garden/harvest-all", gardenH.HandleHarvestAll)
	r.Post("/garden/select-seed", gardenH.HandleSelectSeed)
	r.Post("/garden/select-plot", gardenH.HandleSelectPlot)
	r.Get("/shop", shopH.HandleGetShop)
	r.Post("/shop/buy", shopH.HandleBuySeed)
	r.Post("/shop/buy-plot", shopH.HandleBuyPlot)
	r.Post("/shop/restock", shopH.HandleRestock)
	r.Get("/inventory", invH.HandleGetInventory)
	r.Post("/inventory/sell", invH.HandleSell)
	r.Get("/recipes/{kind}", craftH.HandleGetRecipes)
	r.Post("/cook", craftH.HandleMake(domain.RecipeKindCooking))
	r.Post("/craft", craftH.HandleMake(domain.RecipeKindCrafting))

	return &fixture{store: st, clock: clk, router: r}
}

func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

