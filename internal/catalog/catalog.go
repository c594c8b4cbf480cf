// Package catalog holds the immutable reference tables: items, seeds,
// recipes and the plot price ladder.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/PocketGarden_Go/internal/domain"
	"github.com/osse101/PocketGarden_Go/internal/validation"
)

// Data is the serializable form of a catalog
type Data struct {
	Items      []domain.ItemDefinition `json:"items" validate:"required,min=1,dive"`
	Seeds      []domain.SeedDefinition `json:"seeds" validate:"dive"`
	Recipes    []domain.Recipe         `json:"recipes" validate:"dive"`
	PlotPrices []domain.PlotPrice      `json:"plotPrices" validate:"dive"`
}

// Catalog is a read-only, indexed view over Data. Safe for concurrent use.
type Catalog struct {
	items      []domain.ItemDefinition
	seeds      []domain.SeedDefinition
	recipes    []domain.Recipe
	plotPrices []domain.PlotPrice

	itemByID   map[string]domain.ItemDefinition
	seedByID   map[string]domain.SeedDefinition
	recipeByID map[string]domain.Recipe
}

var structValidator = validator.New()

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := New(DefaultData())
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}

// LoadFile reads a catalog override, checks it against the catalog JSON
// schema and builds it with New.
func LoadFile(path string, schemas validation.SchemaValidator) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	if schemas == nil {
		schemas = validation.NewSchemaValidator()
	}
	if err := schemas.ValidateBytes(raw, validation.SchemaCatalog); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode catalog %s: %w", path, err)
	}
	return New(data)
}

// New validates data and indexes it
func New(data Data) (*Catalog, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}

	c := &Catalog{
		itemByID:   make(map[string]domain.ItemDefinition, len(data.Items)),
		seedByID:   make(map[string]domain.SeedDefinition, len(data.Seeds)),
		recipeByID: make(map[string]domain.Recipe, len(data.Recipes)),
	}

	for _, it := range data.Items {
		c.items = append(c.items, it)
		c.itemByID[it.ID] = it
	}
	for _, s := range data.Seeds {
		c.seeds = append(c.seeds, s)
		c.seedByID[s.ID] = s
	}
	for _, r := range data.Recipes {
		r.Ingredients = append([]domain.ItemStack(nil), r.Ingredients...)
		c.recipes = append(c.recipes, r)
		c.recipeByID[r.ID] = r
	}
	c.plotPrices = append(c.plotPrices, data.PlotPrices...)
	sort.Slice(c.plotPrices, func(i, j int) bool {
		return c.plotPrices[i].PlotNumber < c.plotPrices[j].PlotNumber
	})

	return c, nil
}

// Validate checks struct tags and cross references
func Validate(data Data) error {
	if err := structValidator.Struct(data); err != nil {
		return fmt.Errorf("%w: catalog: %v", domain.ErrInvalidInput, err)
	}

	items := make(map[string]domain.ItemDefinition, len(data.Items))
	for _, it := range data.Items {
		if _, dup := items[it.ID]; dup {
			return fmt.Errorf("%w: duplicate item %q", domain.ErrInvalidInput, it.ID)
		}
		items[it.ID] = it
	}

	seen := map[string]bool{}
	for _, s := range data.Seeds {
		if seen[s.ID] {
			return fmt.Errorf("%w: duplicate seed %q", domain.ErrInvalidInput, s.ID)
		}
		seen[s.ID] = true
		if it, ok := items[s.ID]; !ok || it.Category != domain.CategorySeed {
			return fmt.Errorf("%w: seed %q has no seed item", domain.ErrInvalidInput, s.ID)
		}
		if _, ok := items[s.YieldItemID]; !ok {
			return fmt.Errorf("%w: seed %q yields unknown item %q", domain.ErrInvalidInput, s.ID, s.YieldItemID)
		}
	}

	seen = map[string]bool{}
	for _, r := range data.Recipes {
		if seen[r.ID] {
			return fmt.Errorf("%w: duplicate recipe %q", domain.ErrInvalidInput, r.ID)
		}
		seen[r.ID] = true
		for _, ing := range r.Ingredients {
			if _, ok := items[ing.ItemID]; !ok {
				return fmt.Errorf("%w: recipe %q needs unknown item %q", domain.ErrInvalidInput, r.ID, ing.ItemID)
			}
		}
		if _, ok := items[r.Output.ItemID]; !ok {
			return fmt.Errorf("%w: recipe %q makes unknown item %q", domain.ErrInvalidInput, r.ID, r.Output.ItemID)
		}
	}

	plots := map[int]bool{}
	for _, p := range data.PlotPrices {
		if plots[p.PlotNumber] {
			return fmt.Errorf("%w: duplicate plot number %d", domain.ErrInvalidInput, p.PlotNumber)
		}
		plots[p.PlotNumber] = true
	}

	return nil
}

// Item looks up an item definition
func (c *Catalog) Item(id string) (domain.ItemDefinition, bool) {
	it, ok := c.itemByID[id]
	return it, ok
}

// Seed looks up a seed definition
func (c *Catalog) Seed(id string) (domain.SeedDefinition, bool) {
	s, ok := c.seedByID[id]
	return s, ok
}

// Recipe looks up a recipe
func (c *Catalog) Recipe(id string) (domain.Recipe, bool) {
	r, ok := c.recipeByID[id]
	return r, ok
}

// Items returns every item in catalog order
func (c *Catalog) Items() []domain.ItemDefinition {
	return append([]domain.ItemDefinition(nil), c.items...)
}

// Seeds returns every seed in catalog order
func (c *Catalog) Seeds() []domain.SeedDefinition {
	return append([]domain.SeedDefinition(nil), c.seeds...)
}

// Recipes returns the recipes of one kind in catalog order
func (c *Catalog) Recipes(kind domain.RecipeKind) []domain.Recipe {
	var out []domain.Recipe
	for _, r := range c.recipes {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}

// PlotPrices returns the purchase ladder sorted by plot number
func (c *Catalog) PlotPrices() []domain.PlotPrice {
	return append([]domain.PlotPrice(nil), c.plotPrices...)
}

// PlotPrice returns the price of the plot numbered plotNumber (1-based)
func (c *Catalog) PlotPrice(plotNumber int) (int, bool) {
	for _, p := range c.plotPrices {
		if p.PlotNumber == plotNumber {
			return p.Price, true
		}
	}
	return 0, false
}

// MaxPlots is the plot cap: the starting plot plus one per ladder rung
func (c *Catalog) MaxPlots() int {
	return len(c.plotPrices) + 1
}

// SellPrice returns the sell price of an item, or 0 when unknown
func (c *Catalog) SellPrice(id string) int {
	return c.itemByID[id].SellPrice
}

// ItemName returns the display name, falling back to the id
func (c *Catalog) ItemName(id string) string {
	if it, ok := c.itemByID[id]; ok {
		return it.Name
	}
	return id
}
