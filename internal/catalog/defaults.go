package catalog

import "github.com/osse101/PocketGarden_Go/internal/domain"

type seedRow struct {
	key        string
	name       string
	emoji      string
	growthMs   int64
	buy        int
	yMin, yMax int
	chance     float64
	stockMin   int
	stockMax   int
	seedPrice  int
	cropPrice  int
}

var seedRows = []seedRow{
	{"tomato", "Tomato", "🍅", 30_000, 5, 1, 3, 0.9, 5, 15, 2, 8},
	{"carrot", "Carrot", "🥕", 45_000, 8, 1, 2, 0.85, 3, 10, 3, 10},
	{"wheat", "Wheat", "🌾", 20_000, 3, 2, 4, 0.95, 10, 25, 1, 4},
	{"strawberry", "Strawberry", "🍓", 60_000, 20, 2, 5, 0.6, 2, 8, 8, 25},
	{"pumpkin", "Pumpkin", "🎃", 180_000, 35, 1, 2, 0.4, 1, 5, 15, 50},
	{"corn", "Corn", "🌽", 90_000, 12, 2, 3, 0.75, 4, 12, 5, 15},
	{"potato", "Potato", "🥔", 75_000, 10, 2, 4, 0.8, 5, 15, 4, 12},
	{"lettuce", "Lettuce", "🥬", 25_000, 4, 1, 2, 0.9, 8, 20, 2, 6},
	{"sunflower", "Sunflower", "🌻", 120_000, 25, 1, 3, 0.5, 2, 6, 10, 30},
	{"rose", "Rose", "🌹", 300_000, 50, 1, 2, 0.3, 1, 3, 20, 60},
}

var foodItems = []domain.ItemDefinition{
	{ID: "food_bread", Name: "Bread", Emoji: "🍞", SellPrice: 20, Description: "Freshly baked bread"},
	{ID: "food_salad", Name: "Garden Salad", Emoji: "🥗", SellPrice: 35, Description: "A crisp mix of garden vegetables"},
	{ID: "food_soup", Name: "Vegetable Soup", Emoji: "🍲", SellPrice: 45, Description: "Hearty and warming"},
	{ID: "food_pie", Name: "Pumpkin Pie", Emoji: "🥧", SellPrice: 120, Description: "A seasonal favourite"},
	{ID: "food_jam", Name: "Strawberry Jam", Emoji: "🍯", SellPrice: 80, Description: "Sweet preserved strawberries"},
	{ID: "food_popcorn", Name: "Popcorn", Emoji: "🍿", SellPrice: 40, Description: "Popped fresh corn"},
	{ID: "food_fries", Name: "French Fries", Emoji: "🍟", SellPrice: 35, Description: "Crispy fried potatoes"},
	{ID: "food_sandwich", Name: "Veggie Sandwich", Emoji: "🥪", SellPrice: 55, Description: "Bread stacked with fresh vegetables"},
}

var craftedItems = []domain.ItemDefinition{
	{ID: "crafted_bouquet", Name: "Flower Bouquet", Emoji: "💐", SellPrice: 150, Description: "Roses and sunflowers tied together"},
	{ID: "crafted_basket", Name: "Gift Basket", Emoji: "🧺", SellPrice: 200, Description: "A basket of homemade treats"},
	{ID: "crafted_wreath", Name: "Harvest Wreath", Emoji: "🌿", SellPrice: 180, Description: "Decorative wreath of the harvest"},
	{ID: "crafted_potpourri", Name: "Rose Potpourri", Emoji: "🌸", SellPrice: 100, Description: "Dried rose petals"},
	{ID: "crafted_scarecrow", Name: "Scarecrow", Emoji: "🧑‍🌾", SellPrice: 250, Description: "Keeps the crows away"},
}

func stack(id string, qty int) domain.ItemStack {
	return domain.ItemStack{ItemID: id, Quantity: qty}
}

var defaultRecipes = []domain.Recipe{
	{ID: "recipe_bread", Name: "Bread", Emoji: "🍞", Kind: domain.RecipeKindCooking,
		Ingredients: []domain.ItemStack{stack("crop_wheat", 3)}, Output: stack("food_bread", 1)},
	{ID: "recipe_salad", Name: "Garden Salad", Emoji: "🥗", Kind: domain.RecipeKindCooking,
		Ingredients: []domain.ItemStack{stack("crop_lettuce", 2), stack("crop_tomato", 1), stack("crop_carrot", 1)}, Output: stack("food_salad", 1)},
	{ID: "recipe_soup", Name: "Vegetable Soup", Emoji: "🍲", Kind: domain.RecipeKindCooking,
		Ingredients: []domain.ItemStack{stack("crop_potato", 2), stack("crop_carrot", 2), stack("crop_tomato", 1)}, Output: stack("food_soup", 1)},
	{ID: "recipe_pie", Name: "Pumpkin Pie", Emoji: "🥧", Kind: domain.RecipeKindCooking,
		Ingredients: []domain.ItemStack{stack("crop_pumpkin", 2), stack("crop_wheat", 2)}, Output: stack("food_pie", 1)},
	{ID: "recipe_jam", Name: "Strawberry Jam", Emoji: "🍯", Kind: domain.RecipeKindCooking,
		Ingredients: []domain.ItemStack{stack("crop_strawberry", 4)}, Output: stack("food_jam", 1)},
	{ID: "recipe_popcorn", Name: "Popcorn", Emoji: "🍿", Kind: domain.RecipeKindCooking,
		Ingredients: []domain.ItemStack{stack("crop_corn", 3)}, Output: stack("food_popcorn", 1)},
	{ID: "recipe_fries", Name: "French Fries", Emoji: "🍟", Kind: domain.RecipeKindCooking,
		Ingredients: []domain.ItemStack{stack("crop_potato", 3)}, Output: stack("food_fries", 1)},
	{ID: "recipe_sandwich", Name: "Veggie Sandwich", Emoji: "🥪", Kind: domain.RecipeKindCooking,
		Ingredients: []domain.ItemStack{stack("food_bread", 1), stack("crop_lettuce", 1), stack("crop_tomato", 1)}, Output: stack("food_sandwich", 1)},

	{ID: "recipe_bouquet", Name: "Flower Bouquet", Emoji: "💐", Kind: domain.RecipeKindCrafting,
		Ingredients: []domain.ItemStack{stack("crop_rose", 3), stack("crop_sunflower", 2)}, Output: stack("crafted_bouquet", 1)},
	{ID: "recipe_basket", Name: "Gift Basket", Emoji: "🧺", Kind: domain.RecipeKindCrafting,
		Ingredients: []domain.ItemStack{stack("crop_strawberry", 3), stack("food_jam", 1), stack("food_bread", 1)}, Output: stack("crafted_basket", 1)},
	{ID: "recipe_wreath", Name: "Harvest Wreath", Emoji: "🌿", Kind: domain.RecipeKindCrafting,
		Ingredients: []domain.ItemStack{stack("crop_wheat", 5), stack("crop_sunflower", 2), stack("crop_pumpkin", 1)}, Output: stack("crafted_wreath", 1)},
	{ID: "recipe_potpourri", Name: "Rose Potpourri", Emoji: "🌸", Kind: domain.RecipeKindCrafting,
		Ingredients: []domain.ItemStack{stack("crop_rose", 5)}, Output: stack("crafted_potpourri", 1)},
	{ID: "recipe_scarecrow", Name: "Scarecrow", Emoji: "🧑‍🌾", Kind: domain.RecipeKindCrafting,
		Ingredients: []domain.ItemStack{stack("crop_wheat", 8), stack("crop_pumpkin", 1), stack("crop_corn", 4)}, Output: stack("crafted_scarecrow", 1)},
}

var defaultPlotPrices = []domain.PlotPrice{
	{PlotNumber: 2, Price: 500},
	{PlotNumber: 3, Price: 1500},
	{PlotNumber: 4, Price: 5000},
	{PlotNumber: 5, Price: 15000},
	{PlotNumber: 6, Price: 50000},
	{PlotNumber: 7, Price: 150000},
	{PlotNumber: 8, Price: 500000},
}

// DefaultData returns the built-in catalog tables
func DefaultData() Data {
	d := Data{}

	for _, r := range seedRows {
		d.Items = append(d.Items, domain.ItemDefinition{
			ID: "seed_" + r.key, Name: r.name + " Seeds", Emoji: "🌱", Category: domain.CategorySeed,
			SellPrice: r.seedPrice, Description: "Plant to grow " + r.name,
		})
	}
	for _, r := range seedRows {
		d.Items = append(d.Items, domain.ItemDefinition{
			ID: "crop_" + r.key, Name: r.name, Emoji: r.emoji, Category: domain.CategoryCrop,
			SellPrice: r.cropPrice, Description: "Freshly harvested " + r.name,
		})
		d.Seeds = append(d.Seeds, domain.SeedDefinition{
			ID: "seed_" + r.key, Name: r.name, Emoji: r.emoji, GrowingEmoji: "🌱",
			GrowthTimeMs: r.growthMs, BuyPrice: r.buy, YieldItemID: "crop_" + r.key,
			YieldMin: r.yMin, YieldMax: r.yMax, ShopChance: r.chance,
			ShopStockMin: r.stockMin, ShopStockMax: r.stockMax,
		})
	}
	for _, it := range foodItems {
		it.Category = domain.CategoryFood
		d.Items = append(d.Items, it)
	}
	for _, it := range craftedItems {
		it.Category = domain.CategoryCrafted
		d.Items = append(d.Items, it)
	}

	d.Recipes = append(d.Recipes, defaultRecipes...)
	d.PlotPrices = append(d.PlotPrices, defaultPlotPrices...)
	return d
}
