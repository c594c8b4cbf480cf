package crafting

import (
	"context"
	"fmt"

	"github.com/osse101/PocketGarden_Go/internal/catalog"
	"github.com/osse101/PocketGarden_Go/internal/domain"
	"github.com/osse101/PocketGarden_Go/internal/event"
	"github.com/osse101/PocketGarden_Go/internal/logger"
	"github.com/osse101/PocketGarden_Go/internal/store"
)

// Station makes recipes of a single kind. The kitchen and the workbench are
// both Stations; they differ only in the recipes they accept and the event
// they emit.
type Station interface {
	Kind() domain.RecipeKind
	Recipes() []domain.Recipe
	// MaxCount is how many times the recipe can be made from the current inventory.
	MaxCount(recipeID string) int
	CanMake(recipeID string) bool
	// Make executes the recipe up to times, clamped to MaxCount. All executions
	// happen in one transaction.
	Make(ctx context.Context, recipeID string, times int) (domain.CraftResult, error)
	// Available lists the recipes that can be made at least once.
	Available() []domain.Recipe
	IngredientStatus(recipeID string) ([]domain.IngredientStatus, error)
}

type station struct {
	kind    domain.RecipeKind
	store   *store.Store
	catalog *catalog.Catalog
}

// NewStation creates a station for one recipe kind
func NewStation(kind domain.RecipeKind, st *store.Store, cat *catalog.Catalog) Station {
	return &station{kind: kind, store: st, catalog: cat}
}

// NewKitchen creates the cooking station
func NewKitchen(st *store.Store, cat *catalog.Catalog) Station {
	return NewStation(domain.RecipeKindCooking, st, cat)
}

// NewWorkbench creates the crafting station
func NewWorkbench(st *store.Store, cat *catalog.Catalog) Station {
	return NewStation(domain.RecipeKindCrafting, st, cat)
}

func (s *station) Kind() domain.RecipeKind { return s.kind }

func (s *station) Recipes() []domain.Recipe { return s.catalog.Recipes(s.kind) }

func (s *station) recipe(recipeID string) (domain.Recipe, error) {
	r, ok := s.catalog.Recipe(recipeID)
	if !ok {
		return domain.Recipe{}, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, recipeID)
	}
	if r.Kind != s.kind {
		return domain.Recipe{}, fmt.Errorf("%w: %s is not a %s recipe", domain.ErrRecipeNotFound, recipeID, s.kind)
	}
	return r, nil
}

// maxCount is min over ingredients of floor(held / required)
func maxCount(r domain.Recipe, held func(itemID string) int) int {
	best := -1
	for _, ing := range r.Ingredients {
		if ing.Quantity <= 0 {
			continue
		}
		n := held(ing.ItemID) / ing.Quantity
		if best < 0 || n < best {
			best = n
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

func (s *station) MaxCount(recipeID string) int {
	r, err := s.recipe(recipeID)
	if err != nil {
		return 0
	}
	return maxCount(r, s.store.ItemCount)
}

func (s *station) CanMake(recipeID string) bool {
	return s.MaxCount(recipeID) > 0
}

func (s *station) Make(ctx context.Context, recipeID string, times int) (domain.CraftResult, error) {
	log := logger.FromContext(ctx)
	log.Info("Make called", "station", s.kind, "recipe", recipeID, "times", times)

	if times <= 0 {
		return domain.CraftResult{}, fmt.Errorf("%w: times must be positive", domain.ErrInvalidAmount)
	}
	r, err := s.recipe(recipeID)
	if err != nil {
		return domain.CraftResult{}, err
	}

	var result domain.CraftResult
	err = s.store.Transact(ctx, func(tx *store.Tx) error {
		count := min(times, maxCount(r, tx.ItemCount))
		if count == 0 {
			return fmt.Errorf("%w: %s", domain.ErrCannotMake, recipeID)
		}
		for _, ing := range r.Ingredients {
			if err := tx.RemoveItem(ing.ItemID, ing.Quantity*count); err != nil {
				return err
			}
		}
		output := domain.ItemStack{ItemID: r.Output.ItemID, Quantity: r.Output.Quantity * count}
		if err := tx.AddItem(output.ItemID, output.Quantity); err != nil {
			return err
		}
		tx.Emit(event.NewRecipeMadeEvent(s.kind, r.ID, count, output))
		result = domain.CraftResult{RecipeID: r.ID, Count: count, Output: output}
		return nil
	})
	if err != nil {
		log.Warn(LogMsgMakeFailed, "recipe", recipeID, "error", err)
		return domain.CraftResult{}, err
	}

	log.Info(LogMsgMade, "recipe", recipeID, "count", result.Count)
	return result, nil
}

func (s *station) Available() []domain.Recipe {
	var out []domain.Recipe
	for _, r := range s.Recipes() {
		if maxCount(r, s.store.ItemCount) > 0 {
			out = append(out, r)
		}
	}
	return out
}

func (s *station) IngredientStatus(recipeID string) ([]domain.IngredientStatus, error) {
	r, err := s.recipe(recipeID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.IngredientStatus, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		held := s.store.ItemCount(ing.ItemID)
		st := domain.IngredientStatus{
			ItemID:    ing.ItemID,
			Name:      ing.ItemID,
			Emoji:     UnknownItemEmoji,
			Required:  ing.Quantity,
			Available: held,
			Enough:    held >= ing.Quantity,
		}
		if def, ok := s.catalog.Item(ing.ItemID); ok {
			st.Name = def.Name
			st.Emoji = def.Emoji
		}
		out = append(out, st)
	}
	return out, nil
}
