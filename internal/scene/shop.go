package scene

import (
	"fmt"

	"github.com/vovakirdan/pocketpet/internal/pet"
)

// Shop sells the day's stock.
type Shop struct {
	base
	menu   menu
	notice notice
}

// NewShop creates the shop scene.
func NewShop() *Shop {
	return &Shop{}
}

func (s *Shop) Kind() Kind { return KindShop }

func (s *Shop) Tick(a *TickArgs) Output {
	s.notice.tick(a.Delta)
	stock := pet.DailyStock(a.Now.Date())
	if !s.menu.handle(a, len(stock)+1) {
		return Stay()
	}
	if s.menu.cursor == len(stock) {
		return Goto(NewHome())
	}

	item := stock[s.menu.cursor]
	price := item.Info().Price
	if a.Ctx.Money < price {
		s.notice.show("NO MONEY")
		return Stay()
	}
	a.Ctx.Money -= price
	a.Ctx.Inventory.Add(item, 1)
	a.Ctx.Sound.Push(pet.SongCoin)
	s.notice.show("THANKS!")
	return Stay()
}

func (s *Shop) Render(dst Surface, a *RenderArgs) {
	drawTitle(dst, "SHOP")
	stock := pet.DailyStock(a.Now.Date())
	if s.menu.cursor == len(stock) {
		drawPicker(dst, 60, "BACK")
	} else {
		item := stock[s.menu.cursor]
		dst.BlitCentered(30, itemSprite(item))
		drawPicker(dst, 60, item.String())
		dst.TextCentered(66, fmt.Sprintf("$%d  OWN %d", item.Info().Price, a.Ctx.Inventory.Count(item)))
	}
	dst.TextCentered(100, fmt.Sprintf("WALLET $%d", a.Ctx.Money))
	s.notice.render(dst, 80)
}

// Inventory lists owned items and uses the selected one.
type Inventory struct {
	base
	menu   menu
	notice notice
}

// NewInventory creates the inventory scene.
func NewInventory() *Inventory {
	return &Inventory{}
}

func (s *Inventory) Kind() Kind { return KindInventory }

func (s *Inventory) Tick(a *TickArgs) Output {
	s.notice.tick(a.Delta)
	owned := a.Ctx.Inventory.Owned()
	if !s.menu.handle(a, len(owned)+1) {
		return Stay()
	}
	if s.menu.cursor == len(owned) {
		return Goto(NewHome())
	}

	item := owned[s.menu.cursor]
	switch item.Info().Category {
	case pet.CategoryMedicine:
		return Goto(NewHeal())
	case pet.CategoryToy:
		a.Ctx.Pet.Play()
		s.notice.show("PLAYED!")
	case pet.CategoryFurniture:
		return Goto(NewPlaceFurniture(item))
	}
	return Stay()
}

func (s *Inventory) Render(dst Surface, a *RenderArgs) {
	drawTitle(dst, "ITEMS")
	owned := a.Ctx.Inventory.Owned()
	entries := make([]string, 0, len(owned)+1)
	for _, k := range owned {
		entries = append(entries, fmt.Sprintf("%-9s x%d", k, a.Ctx.Inventory.Count(k)))
	}
	entries = append(entries, "BACK")
	drawList(dst, 8, entries, s.menu.cursor)
	if s.menu.cursor < len(owned) {
		dst.BlitCentered(48, itemSprite(owned[s.menu.cursor]))
	}
	s.notice.render(dst, 80)
}

// PlaceFurniture puts a furniture item into one of the home's slots.
// Choosing the slot that already holds the item takes it back.
type PlaceFurniture struct {
	base
	item pet.ItemKind
	menu menu
}

// NewPlaceFurniture creates the placement scene for item.
func NewPlaceFurniture(item pet.ItemKind) *PlaceFurniture {
	return &PlaceFurniture{item: item}
}

func (s *PlaceFurniture) Kind() Kind { return KindPlaceFurniture }

func (s *PlaceFurniture) Tick(a *TickArgs) Output {
	if !s.menu.handle(a, pet.LayoutSlots+1) {
		return Stay()
	}
	if s.menu.cursor == pet.LayoutSlots {
		return Goto(NewInventory())
	}

	ctx := a.Ctx
	slot := &ctx.Layout.Slots[s.menu.cursor]
	if *slot == s.item {
		ctx.Inventory.Add(*slot, 1)
		*slot = pet.ItemNone
		return Goto(NewHome())
	}
	if !ctx.Inventory.Take(s.item) {
		return Goto(NewHome())
	}
	ctx.Inventory.Add(*slot, 1)
	*slot = s.item
	return Goto(NewHome())
}

func (s *PlaceFurniture) Render(dst Surface, a *RenderArgs) {
	drawTitle(dst, "PLACE "+s.item.String())
	dst.DrawHLine(0, ground+1, dst.Width())
	for i, item := range a.Ctx.Layout.Slots {
		x := 4 + i*22
		if img := itemSprite(item); img != nil {
			dst.Blit(x, ground+4, img)
		}
		if i == s.menu.cursor && a.Blink() {
			dst.Blit(x, ground-10, itemSprite(s.item))
		}
	}
	if s.menu.cursor == pet.LayoutSlots {
		drawPicker(dst, 120, "BACK")
	} else {
		drawPicker(dst, 120, fmt.Sprintf("SLOT %d", s.menu.cursor+1))
	}
}
