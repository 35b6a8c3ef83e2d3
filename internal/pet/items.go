package pet

import (
	"github.com/vovakirdan/pocketpet/internal/timestamp"
)

// Money is the wallet balance in coins.
type Money int32

// ItemKind identifies anything that can sit in the inventory.
type ItemKind uint8

const (
	ItemNone ItemKind = iota
	ItemBread
	ItemApple
	ItemCake
	ItemSushi
	ItemMedicine
	ItemBall
	ItemHeater
	ItemPlant
	ItemClock

	ItemCount
)

// Category groups items by use.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryFood
	CategoryMedicine
	CategoryToy
	CategoryFurniture
)

// ItemInfo is the static data of an item.
type ItemInfo struct {
	Name     string
	Category Category
	Price    Money
	Fill     float64 // stomach units, food only
	Weight   float64 // grams gained, food only
}

var itemInfo = [ItemCount]ItemInfo{
	ItemNone:     {Name: "-"},
	ItemBread:    {Name: "Bread", Category: CategoryFood, Price: 5, Fill: 1200, Weight: 10},
	ItemApple:    {Name: "Apple", Category: CategoryFood, Price: 4, Fill: 800, Weight: 3},
	ItemCake:     {Name: "Cake", Category: CategoryFood, Price: 12, Fill: 1500, Weight: 40},
	ItemSushi:    {Name: "Sushi", Category: CategoryFood, Price: 15, Fill: 2000, Weight: 8},
	ItemMedicine: {Name: "Medicine", Category: CategoryMedicine, Price: 20},
	ItemBall:     {Name: "Ball", Category: CategoryToy, Price: 10},
	ItemHeater:   {Name: "Heater", Category: CategoryFurniture, Price: 60},
	ItemPlant:    {Name: "Plant", Category: CategoryFurniture, Price: 25},
	ItemClock:    {Name: "Clock", Category: CategoryFurniture, Price: 30},
}

// Info returns the static data of k.
func (k ItemKind) Info() ItemInfo {
	if k >= ItemCount {
		return itemInfo[ItemNone]
	}
	return itemInfo[k]
}

func (k ItemKind) String() string {
	return k.Info().Name
}

// Foods lists every food item in menu order.
func Foods() []ItemKind {
	return []ItemKind{ItemBread, ItemApple, ItemCake, ItemSushi}
}

// Inventory counts owned items. Food is paid for when served and never
// stored.
type Inventory struct {
	Counts [ItemCount]uint16
}

// Add stores n more of k.
func (inv *Inventory) Add(k ItemKind, n uint16) {
	if k == ItemNone || k >= ItemCount {
		return
	}
	inv.Counts[k] += n
}

// Take removes one k, reporting whether one was present.
func (inv *Inventory) Take(k ItemKind) bool {
	if k >= ItemCount || inv.Counts[k] == 0 {
		return false
	}
	inv.Counts[k]--
	return true
}

// Count returns how many k are owned.
func (inv *Inventory) Count(k ItemKind) int {
	if k >= ItemCount {
		return 0
	}
	return int(inv.Counts[k])
}

// Owned lists the kinds with a non-zero count.
func (inv *Inventory) Owned() []ItemKind {
	var out []ItemKind
	for k := ItemKind(1); k < ItemCount; k++ {
		if inv.Counts[k] > 0 {
			out = append(out, k)
		}
	}
	return out
}

// LayoutSlots is the number of furniture spots in the home.
const LayoutSlots = 3

// HomeLayout is the placed furniture.
type HomeLayout struct {
	Slots [LayoutSlots]ItemKind
}

// Has reports whether k is placed anywhere.
func (l *HomeLayout) Has(k ItemKind) bool {
	for _, s := range l.Slots {
		if s == k {
			return true
		}
	}
	return false
}

// StockSize is the number of items the shop offers per day.
const StockSize = 4

// DailyStock derives the shop's offer from the date alone, so it costs no
// draw from the shared generator and is identical on every device.
func DailyStock(date timestamp.Date) [StockSize]ItemKind {
	h := uint64(date.Year)*10000 + uint64(date.Month)*100 + uint64(date.Day)
	var stock [StockSize]ItemKind
	stock[0] = ItemMedicine
	for i := 1; i < StockSize; i++ {
		h = mix(h + uint64(i))
		// Food is never stocked.
		stock[i] = ItemKind(uint64(ItemBall) + h%uint64(ItemCount-ItemBall))
	}
	return stock
}

func mix(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	return x ^ x>>33
}
