package domain

// RecipeKind selects which station can make a recipe
type RecipeKind string

const (
	RecipeKindCooking  RecipeKind = "cooking"
	RecipeKindCrafting RecipeKind = "crafting"
)

// Recipe turns a fixed list of ingredients into one output stack
type Recipe struct {
	ID          string      `json:"id" validate:"required"`
	Name        string      `json:"name" validate:"required"`
	Emoji       string      `json:"emoji,omitempty"`
	Kind        RecipeKind  `json:"kind" validate:"required,oneof=cooking crafting"`
	Ingredients []ItemStack `json:"ingredients" validate:"required,min=1,dive"`
	Output      ItemStack   `json:"output"`
	Description string      `json:"description,omitempty"`
}

// IngredientStatus reports how much of one ingredient is held versus required
type IngredientStatus struct {
	ItemID    string `json:"itemId"`
	Name      string `json:"name"`
	Emoji     string `json:"emoji,omitempty"`
	Required  int    `json:"required"`
	Available int    `json:"available"`
	Enough    bool   `json:"enough"`
}

// CraftResult is the outcome of a cook or craft request
type CraftResult struct {
	RecipeID string    `json:"recipeId"`
	Count    int       `json:"count"`
	Output   ItemStack `json:"output"`
}
