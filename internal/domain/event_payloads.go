package domain

// PlantAddedPayload is the event payload for plant:added events
type PlantAddedPayload struct {
	PlotID    int    `json:"plotId"`
	SlotID    int    `json:"slotId"`
	SeedID    string `json:"seedId"`
	PlantedAt int64  `json:"plantedAt"`
}

// PlantHarvestedPayload is the event payload for plant:harvested events
type PlantHarvestedPayload struct {
	PlotID int         `json:"plotId"`
	SlotID int         `json:"slotId"`
	Yields []ItemStack `json:"yields"`
}

// ItemChangedPayload is the event payload for item:added and item:removed events
type ItemChangedPayload struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// MoneyChangedPayload carries a signed delta; spending is negative
type MoneyChangedPayload struct {
	Amount int    `json:"amount"`
	Reason string `json:"reason"`
}

// ShopRestockedPayload is the event payload for shop:restocked events
type ShopRestockedPayload struct {
	AvailableSeeds []ShopStock `json:"availableSeeds"`
}

// RecipeMadePayload is the event payload for recipe:cooked and item:crafted events
type RecipeMadePayload struct {
	RecipeID string    `json:"recipeId"`
	Count    int       `json:"count"`
	Output   ItemStack `json:"output"`
}

// PlotPurchasedPayload is the event payload for plot:purchased events
type PlotPurchasedPayload struct {
	PlotID int `json:"plotId"`
}

// GameTickPayload is the event payload for game:tick events
type GameTickPayload struct {
	Timestamp int64 `json:"timestamp"`
}

// GameLoadedPayload is the event payload for game:loaded events
type GameLoadedPayload struct {
	State GameState `json:"state"`
}

// GameSavedPayload is the event payload for game:saved events
type GameSavedPayload struct {
	Timestamp int64 `json:"timestamp"`
}
