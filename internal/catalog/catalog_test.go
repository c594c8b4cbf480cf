package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PocketGarden_Go/internal/domain"
)

func TestDefault_Contents(t *testing.T) {
	c := Default()

	counts := map[domain.ItemCategory]int{}
	for _, it := range c.Items() {
		counts[it.Category]++
	}
	assert.Equal(t, 10, counts[domain.CategorySeed])
	assert.Equal(t, 10, counts[domain.CategoryCrop])
	assert.Equal(t, 8, counts[domain.CategoryFood])
	assert.Equal(t, 5, counts[domain.CategoryCrafted])

	assert.Len(t, c.Seeds(), 10)
	assert.Len(t, c.Recipes(domain.RecipeKindCooking), 8)
	assert.Len(t, c.Recipes(domain.RecipeKindCrafting), 5)
	assert.Equal(t, 8, c.MaxPlots())
}

func TestDefault_Lookups(t *testing.T) {
	c := Default()

	tomato, ok := c.Seed("seed_tomato")
	require.True(t, ok)
	assert.Equal(t, int64(30000), tomato.GrowthTimeMs)
	assert.Equal(t, 5, tomato.BuyPrice)
	assert.Equal(t, "crop_tomato", tomato.YieldItemID)
	assert.Equal(t, 1, tomato.YieldMin)
	assert.Equal(t, 3, tomato.YieldMax)

	assert.Equal(t, 8, c.SellPrice("crop_tomato"))
	assert.Equal(t, 0, c.SellPrice("nope"))
	assert.Equal(t, "Tomato Seeds", c.ItemName("seed_tomato"))
	assert.Equal(t, "nope", c.ItemName("nope"))

	bread, ok := c.Recipe("recipe_bread")
	require.True(t, ok)
	assert.Equal(t, []domain.ItemStack{{ItemID: "crop_wheat", Quantity: 3}}, bread.Ingredients)
	assert.Equal(t, "food_bread", bread.Output.ItemID)

	_, ok = c.Seed("crop_tomato")
	assert.False(t, ok)
}

func TestPlotPrice(t *testing.T) {
	c := Default()

	p, ok := c.PlotPrice(2)
	require.True(t, ok)
	assert.Equal(t, 500, p)

	p, ok = c.PlotPrice(8)
	require.True(t, ok)
	assert.Equal(t, 500000, p)

	_, ok = c.PlotPrice(9)
	assert.False(t, ok)
	_, ok = c.PlotPrice(1)
	assert.False(t, ok)
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := Default()
	items := c.Items()
	items[0].SellPrice = 9999
	assert.NotEqual(t, 9999, c.Items()[0].SellPrice)
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *Data)
		msg    string
	}{
		{"duplicate item", func(d *Data) { d.Items = append(d.Items, d.Items[0]) }, "duplicate item"},
		{"seed without seed item", func(d *Data) { d.Seeds[0].ID = "seed_ghost" }, "has no seed item"},
		{"unknown yield", func(d *Data) { d.Seeds[0].YieldItemID = "crop_ghost" }, "yields unknown item"},
		{"unknown ingredient", func(d *Data) { d.Recipes[0].Ingredients = []domain.ItemStack{{ItemID: "ghost", Quantity: 1}} }, "unknown item"},
		{"unknown output", func(d *Data) { d.Recipes[0].Output.ItemID = "ghost" }, "makes unknown item"},
		{"bad yield range", func(d *Data) { d.Seeds[0].YieldMax = 0 }, "YieldMax"},
		{"bad category", func(d *Data) { d.Items[0].Category = "tool" }, "Category"},
		{"zero growth", func(d *Data) { d.Seeds[0].GrowthTimeMs = 0 }, "GrowthTimeMs"},
		{"duplicate plot rung", func(d *Data) { d.PlotPrices = append(d.PlotPrices, d.PlotPrices[0]) }, "duplicate plot"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DefaultData()
			tt.mutate(&d)
			_, err := New(d)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("round trips the default tables", func(t *testing.T) {
		d := DefaultData()
		d.PlotPrices = d.PlotPrices[:2]
		raw, err := json.Marshal(d)
		require.NoError(t, err)
		path := filepath.Join(dir, "catalog.json")
		require.NoError(t, os.WriteFile(path, raw, 0600))

		c, err := LoadFile(path, nil)
		require.NoError(t, err)
		assert.Equal(t, 3, c.MaxPlots())
		assert.Len(t, c.Seeds(), 10)
	})

	t.Run("schema violation", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"items": [], "seeds": []}`), 0600))

		_, err := LoadFile(path, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "nope.json"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read catalog")
	})
}
