package domain

// ShopStock is one purchasable seed entry. Zero-quantity entries are kept so
// the price from the last restock is remembered.
type ShopStock struct {
	SeedID   string `json:"seedId"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
}

// GameState is the aggregate root persisted as the save document
type GameState struct {
	Money            int            `json:"money"`
	Plots            []Plot         `json:"plots"`
	CurrentPlotIndex int            `json:"currentPlotIndex"`
	Inventory        map[string]int `json:"inventory"`
	SelectedSeedID   *string        `json:"selectedSeedId"`
	ShopStock        []ShopStock    `json:"shopStock"`
	LastShopRestock  int64          `json:"lastShopRestock"`
	LastSaveTime     int64          `json:"lastSaveTime"`
}

// Clone returns a deep copy sharing no memory with s
func (s GameState) Clone() GameState {
	out := s

	if s.Plots != nil {
		out.Plots = make([]Plot, len(s.Plots))
		for i, p := range s.Plots {
			out.Plots[i] = Plot{ID: p.ID}
			if p.Slots != nil {
				out.Plots[i].Slots = make([]PlotSlot, len(p.Slots))
				for j, slot := range p.Slots {
					out.Plots[i].Slots[j] = PlotSlot{ID: slot.ID}
					if slot.Plant != nil {
						plant := *slot.Plant
						out.Plots[i].Slots[j].Plant = &plant
					}
				}
			}
		}
	}

	if s.Inventory != nil {
		out.Inventory = make(map[string]int, len(s.Inventory))
		for k, v := range s.Inventory {
			out.Inventory[k] = v
		}
	}

	if s.SelectedSeedID != nil {
		id := *s.SelectedSeedID
		out.SelectedSeedID = &id
	}

	if s.ShopStock != nil {
		out.ShopStock = make([]ShopStock, len(s.ShopStock))
		copy(out.ShopStock, s.ShopStock)
	}

	return out
}

// Normalize fills nil collections so the document serializes with empty
// arrays and objects instead of null.
func (s *GameState) Normalize() {
	if s.Plots == nil {
		s.Plots = []Plot{}
	}
	for i := range s.Plots {
		if s.Plots[i].Slots == nil {
			s.Plots[i].Slots = []PlotSlot{}
		}
	}
	if s.Inventory == nil {
		s.Inventory = map[string]int{}
	}
	for id, qty := range s.Inventory {
		if qty <= 0 {
			delete(s.Inventory, id)
		}
	}
	if s.ShopStock == nil {
		s.ShopStock = []ShopStock{}
	}
}
