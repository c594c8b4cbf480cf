package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PocketGarden_Go/internal/domain"
)

func TestHandleGetRecipes(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.store.AddItem(context.Background(), "crop_wheat", 7))

	rec := f.do(t, http.MethodGet, "/recipes/cooking", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	views := decode[[]RecipeView](t, rec)
	require.Len(t, views, 8)
	for _, v := range views {
		assert.Equal(t, domain.RecipeKindCooking, v.Kind)
		if v.ID == "recipe_bread" {
			assert.Equal(t, 2, v.MaxCount)
			require.Len(t, v.Ingredients, 1)
			assert.True(t, v.Ingredients[0].Enough)
		}
	}

	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, "/recipes/smithing", nil).Code)
}

func TestHandleMake(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.store.AddItem(context.Background(), "crop_wheat", 7))

	// Times defaults to one
	rec := f.do(t, http.MethodPost, "/cook", MakeRequest{RecipeID: "recipe_bread"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, 1, decode[domain.CraftResult](t, rec).Count)

	rec = f.do(t, http.MethodPost, "/cook", MakeRequest{RecipeID: "recipe_bread", Times: 5})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, decode[domain.CraftResult](t, rec).Count, "clamped to what the inventory allows")
	assert.Equal(t, 2, f.store.ItemCount("food_bread"))

	rec = f.do(t, http.MethodPost, "/cook", MakeRequest{RecipeID: "recipe_bread"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, ErrMsgCannotMakeError, decode[ErrorResponse](t, rec).Error)

	rec = f.do(t, http.MethodPost, "/craft", MakeRequest{RecipeID: "recipe_bread"})
	assert.Equal(t, http.StatusNotFound, rec.Code, "cooking recipes are not made at the workbench")
}
