package inventory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/osse101/PocketGarden_Go/internal/catalog"
	"github.com/osse101/PocketGarden_Go/internal/domain"
	"github.com/osse101/PocketGarden_Go/internal/logger"
	"github.com/osse101/PocketGarden_Go/internal/store"
)

// SortBy selects the key used by Sort
type SortBy string

const (
	SortByName     SortBy = "name"
	SortByQuantity SortBy = "quantity"
	SortByValue    SortBy = "value"
)

// Direction selects ascending or descending order
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Service defines the interface for inventory queries and selling
type Service interface {
	// Sell removes qty of itemID and credits sellPrice*qty in one transaction.
	Sell(ctx context.Context, itemID string, qty int) (int, error)
	AllItems() []domain.InventoryItem
	ByCategory(category domain.ItemCategory) []domain.InventoryItem
	TotalValue() int
	CountByCategory() map[domain.ItemCategory]int
	HasItems() bool
	Seeds() []domain.InventoryItem
}

type service struct {
	store   *store.Store
	catalog *catalog.Catalog
}

// NewService creates a new inventory service
func NewService(st *store.Store, cat *catalog.Catalog) Service {
	return &service{store: st, catalog: cat}
}

func (s *service) Sell(ctx context.Context, itemID string, qty int) (int, error) {
	log := logger.FromContext(ctx)
	log.Info("Sell called", "item", itemID, "quantity", qty)

	if qty <= 0 {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, qty)
	}
	def, ok := s.catalog.Item(itemID)
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}
	if def.SellPrice <= 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrNotSellable, itemID)
	}

	earnings := def.SellPrice * qty
	err := s.store.Transact(ctx, func(tx *store.Tx) error {
		if err := tx.RemoveItem(itemID, qty); err != nil {
			return err
		}
		return tx.AddMoney(earnings, domain.ReasonSell)
	})
	if err != nil {
		return 0, err
	}

	log.Info("Item sold", "item", itemID, "quantity", qty, "earnings", earnings)
	return earnings, nil
}

func (s *service) item(id string, qty int) domain.InventoryItem {
	def, ok := s.catalog.Item(id)
	if !ok {
		def = domain.ItemDefinition{ID: id, Name: id}
	}
	return domain.InventoryItem{ItemDefinition: def, Quantity: qty, TotalValue: def.SellPrice * qty}
}

// AllItems returns every held item ordered by id
func (s *service) AllItems() []domain.InventoryItem {
	inv := s.store.State().Inventory
	items := make([]domain.InventoryItem, 0, len(inv))
	for id, qty := range inv {
		if qty > 0 {
			items = append(items, s.item(id, qty))
		}
	}
	slices.SortFunc(items, func(a, b domain.InventoryItem) int { return cmp.Compare(a.ID, b.ID) })
	return items
}

func (s *service) ByCategory(category domain.ItemCategory) []domain.InventoryItem {
	var out []domain.InventoryItem
	for _, it := range s.AllItems() {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

func (s *service) Seeds() []domain.InventoryItem {
	return s.ByCategory(domain.CategorySeed)
}

func (s *service) TotalValue() int {
	total := 0
	for _, it := range s.AllItems() {
		total += it.TotalValue
	}
	return total
}

func (s *service) CountByCategory() map[domain.ItemCategory]int {
	counts := make(map[domain.ItemCategory]int, len(domain.Categories))
	for _, c := range domain.Categories {
		counts[c] = 0
	}
	for _, it := range s.AllItems() {
		counts[it.Category] += it.Quantity
	}
	return counts
}

func (s *service) HasItems() bool {
	for _, qty := range s.store.State().Inventory {
		if qty > 0 {
			return true
		}
	}
	return false
}

// Sort returns a sorted copy of items. Names compare with English collation;
// ties fall back to the item id so the order is stable.
func Sort(items []domain.InventoryItem, by SortBy, dir Direction) []domain.InventoryItem {
	out := slices.Clone(items)
	coll := collate.New(language.English, collate.IgnoreCase)

	compare := func(a, b domain.InventoryItem) int {
		var c int
		switch by {
		case SortByQuantity:
			c = cmp.Compare(a.Quantity, b.Quantity)
		case SortByValue:
			c = cmp.Compare(a.TotalValue, b.TotalValue)
		default:
			c = coll.CompareString(a.Name, b.Name)
		}
		if c == 0 {
			c = cmp.Compare(a.ID, b.ID)
		}
		if dir == Desc {
			return -c
		}
		return c
	}
	slices.SortStableFunc(out, compare)
	return out
}

// ParseSort validates user supplied sort options, defaulting to name ascending
func ParseSort(by, dir string) (SortBy, Direction, error) {
	sb, d := SortBy(by), Direction(dir)
	switch sb {
	case "":
		sb = SortByName
	case SortByName, SortByQuantity, SortByValue:
	default:
		return "", "", fmt.Errorf("%w: sort %q", domain.ErrInvalidInput, by)
	}
	switch d {
	case "":
		d = Asc
	case Asc, Desc:
	default:
		return "", "", fmt.Errorf("%w: direction %q", domain.ErrInvalidInput, dir)
	}
	return sb, d, nil
}
