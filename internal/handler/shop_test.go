package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PocketGarden_Go/internal/domain"
)

func TestHandleBuySeed(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.store.SetShopStock(context.Background(), []domain.ShopStock{{SeedID: "seed_wheat", Quantity: 5, Price: 3}}))

	rec := f.do(t, http.MethodPost, "/shop/buy", BuySeedRequest{SeedID: "seed_wheat", Quantity: 2})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 94, f.store.Money())
	assert.Equal(t, 2, f.store.ItemCount("seed_wheat"))

	rec = f.do(t, http.MethodPost, "/shop/buy", BuySeedRequest{SeedID: "seed_wheat", Quantity: 4})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, ErrMsgInsufficientStockErr, decode[ErrorResponse](t, rec).Error)

	rec = f.do(t, http.MethodPost, "/shop/buy", BuySeedRequest{SeedID: "seed_wheat", Quantity: 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[ValidationErrorResponse](t, rec).Fields, "quantity")
}

func TestHandleBuyPlot(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/shop/buy-plot", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, ErrMsgNotEnoughMoneyError, decode[ErrorResponse](t, rec).Error)

	require.True(t, f.store.AddMoney(context.Background(), 400, domain.ReasonSell))
	rec = f.do(t, http.MethodPost, "/shop/buy-plot", nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, decode[PlotPurchasedResponse](t, rec).PlotID)
	assert.Zero(t, f.store.Money())
}

func TestHandleGetShop(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/shop", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[ShopResponse](t, rec)
	assert.NotEmpty(t, resp.Stock, "an empty shop is stocked before display")
	require.NotNil(t, resp.NextPlotPrice)
	assert.Equal(t, 500, *resp.NextPlotPrice)
	assert.False(t, resp.CanAffordNextPlot)
}
