package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking. Event types follow the pattern <entity>:<action>.
const (
	EventTypePlantAdded     = "plant:added"
	EventTypePlantHarvested = "plant:harvested"
	EventTypeItemAdded      = "item:added"
	EventTypeItemRemoved    = "item:removed"
	EventTypeMoneyChanged   = "money:changed"
	EventTypeShopRestocked  = "shop:restocked"
	EventTypeRecipeCooked   = "recipe:cooked"
	EventTypeItemCrafted    = "item:crafted"
	EventTypePlotPurchased  = "plot:purchased"
	EventTypeGameTick       = "game:tick"
	EventTypeGameLoaded     = "game:loaded"
	EventTypeGameSaved      = "game:saved"
)

// Money change reasons carried in MoneyChangedPayload
const (
	ReasonSell    = "sell"
	ReasonBuySeed = "buy_seed"
	ReasonBuyPlot = "buy_plot"
	ReasonGrant   = "grant"
	ReasonAdjust  = "adjust"
)
