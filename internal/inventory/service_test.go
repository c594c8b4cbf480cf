package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PocketGarden_Go/internal/catalog"
	"github.com/osse101/PocketGarden_Go/internal/clock"
	"github.com/osse101/PocketGarden_Go/internal/domain"
	"github.com/osse101/PocketGarden_Go/internal/store"
)

func setup(t *testing.T) (Service, *store.Store) {
	t.Helper()
	st := store.New(clock.NewSimulatedClockMillis(1_000), nil, 4)
	return NewService(st, catalog.Default()), st
}

func TestSell_CreditsMoney(t *testing.T) {
	ctx := context.Background()
	svc, st := setup(t)
	require.True(t, st.AddItem(ctx, "crop_tomato", 4))

	earnings, err := svc.Sell(ctx, "crop_tomato", 3)
	require.NoError(t, err)

	assert.Equal(t, 24, earnings)
	assert.Equal(t, 124, st.Money())
	assert.Equal(t, 1, st.ItemCount("crop_tomato"))
}

func TestSell_AllRemovesEntry(t *testing.T) {
	ctx := context.Background()
	svc, st := setup(t)
	require.True(t, st.AddItem(ctx, "crop_wheat", 2))

	_, err := svc.Sell(ctx, "crop_wheat", 2)
	require.NoError(t, err)

	_, present := st.State().Inventory["crop_wheat"]
	assert.False(t, present)
}

func TestSell_Errors(t *testing.T) {
	ctx := context.Background()
	svc, st := setup(t)
	require.True(t, st.AddItem(ctx, "crop_tomato", 1))

	tests := []struct {
		name   string
		itemID string
		qty    int
		want   error
	}{
		{"zero quantity", "crop_tomato", 0, domain.ErrInvalidAmount},
		{"unknown item", "crop_nope", 1, domain.ErrItemNotFound},
		{"more than held", "crop_tomato", 2, domain.ErrInsufficientQuantity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Sell(ctx, tt.itemID, tt.qty)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, 100, st.Money())
			assert.Equal(t, 1, st.ItemCount("crop_tomato"))
		})
	}
}

func TestQueries(t *testing.T) {
	ctx := context.Background()
	svc, st := setup(t)
	require.True(t, st.AddItem(ctx, "crop_tomato", 2))
	require.True(t, st.AddItem(ctx, "food_bread", 1))

	assert.True(t, svc.HasItems())
	assert.Len(t, svc.AllItems(), 4)

	seeds := svc.Seeds()
	require.Len(t, seeds, 2)
	assert.Equal(t, "seed_carrot", seeds[0].ID)

	counts := svc.CountByCategory()
	assert.Equal(t, 8, counts[domain.CategorySeed])
	assert.Equal(t, 2, counts[domain.CategoryCrop])
	assert.Equal(t, 1, counts[domain.CategoryFood])
	assert.Equal(t, 0, counts[domain.CategoryCrafted])

	want := 0
	for _, it := range svc.AllItems() {
		want += it.SellPrice * it.Quantity
	}
	assert.Equal(t, want, svc.TotalValue())
	assert.Len(t, svc.ByCategory(domain.CategoryCrop), 1)
}

func TestSort(t *testing.T) {
	items := []domain.InventoryItem{
		{ItemDefinition: domain.ItemDefinition{ID: "b", Name: "banana"}, Quantity: 5, TotalValue: 10},
		{ItemDefinition: domain.ItemDefinition{ID: "a", Name: "Apple"}, Quantity: 1, TotalValue: 30},
		{ItemDefinition: domain.ItemDefinition{ID: "c", Name: "cherry"}, Quantity: 3, TotalValue: 20},
	}
	ids := func(items []domain.InventoryItem) []string {
		var out []string
		for _, it := range items {
			out = append(out, it.ID)
		}
		return out
	}

	assert.Equal(t, []string{"a", "b", "c"}, ids(Sort(items, SortByName, Asc)), "case-insensitive collation")
	assert.Equal(t, []string{"c", "b", "a"}, ids(Sort(items, SortByName, Desc)))
	assert.Equal(t, []string{"a", "c", "b"}, ids(Sort(items, SortByQuantity, Asc)))
	assert.Equal(t, []string{"a", "c", "b"}, ids(Sort(items, SortByValue, Desc)))
	assert.Equal(t, "b", items[0].ID, "input is not modified")
}

func TestParseSort(t *testing.T) {
	by, dir, err := ParseSort("", "")
	require.NoError(t, err)
	assert.Equal(t, SortByName, by)
	assert.Equal(t, Asc, dir)

	_, _, err = ParseSort("weight", "asc")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, _, err = ParseSort("value", "up")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
