package domain

// ItemCategory groups catalog items for display and filtering
type ItemCategory string

const (
	CategorySeed    ItemCategory = "seed"
	CategoryCrop    ItemCategory = "crop"
	CategoryFood    ItemCategory = "food"
	CategoryCrafted ItemCategory = "crafted"
)

// Categories lists every item category in display order
var Categories = []ItemCategory{CategorySeed, CategoryCrop, CategoryFood, CategoryCrafted}

// Valid reports whether c is a known category
func (c ItemCategory) Valid() bool {
	switch c {
	case CategorySeed, CategoryCrop, CategoryFood, CategoryCrafted:
		return true
	}
	return false
}

// ItemDefinition is an immutable catalog entry for anything that can sit in the inventory
type ItemDefinition struct {
	ID          string       `json:"id" validate:"required"`
	Name        string       `json:"name" validate:"required"`
	Emoji       string       `json:"emoji,omitempty"`
	Category    ItemCategory `json:"category" validate:"required,oneof=seed crop food crafted"`
	SellPrice   int          `json:"sellPrice" validate:"gte=0"`
	Description string       `json:"description,omitempty"`
}

// SeedDefinition describes a plantable seed: growth time, price, yield and shop behaviour.
// ID matches the ItemDefinition of the seed item held in the inventory.
type SeedDefinition struct {
	ID           string  `json:"id" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	Emoji        string  `json:"emoji,omitempty"`
	GrowingEmoji string  `json:"growingEmoji,omitempty"`
	GrowthTimeMs int64   `json:"growthTimeMs" validate:"gt=0"`
	BuyPrice     int     `json:"buyPrice" validate:"gte=0"`
	YieldItemID  string  `json:"yieldItemId" validate:"required"`
	YieldMin     int     `json:"yieldMin" validate:"gte=1"`
	YieldMax     int     `json:"yieldMax" validate:"gtefield=YieldMin"`
	ShopChance   float64 `json:"shopChance" validate:"gte=0,lte=1"`
	ShopStockMin int     `json:"shopStockMin" validate:"gte=0"`
	ShopStockMax int     `json:"shopStockMax" validate:"gtefield=ShopStockMin"`
}

// ItemStack is an (item id, quantity) pair
type ItemStack struct {
	ItemID   string `json:"itemId" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=1"`
}

// InventoryItem is an inventory entry joined with its catalog definition
type InventoryItem struct {
	ItemDefinition
	Quantity   int `json:"quantity"`
	TotalValue int `json:"totalValue"`
}
