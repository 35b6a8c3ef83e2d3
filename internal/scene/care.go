package scene

import (
	"fmt"
	"time"

	"github.com/vovakirdan/pocketpet/internal/core"
	"github.com/vovakirdan/pocketpet/internal/pet"
)

const (
	noticeTime = 1500 * time.Millisecond
	eatTime    = 2 * time.Second
	cleanTime  = 1500 * time.Millisecond
	healTime   = 2 * time.Second
)

// notice is a short message shown over a scene for a while.
type notice struct {
	text string
	t    timer
}

func (n *notice) show(text string) {
	n.text = text
	n.t = newTimer(noticeTime)
}

func (n *notice) tick(d time.Duration) {
	if n.text != "" && n.t.tick(d) {
		n.text = ""
	}
}

func (n *notice) render(dst Surface, y int) {
	if n.text != "" {
		dst.TextCentered(y, n.text)
	}
}

// FoodSelect lets the player buy a meal. Food is paid for when served.
type FoodSelect struct {
	base
	menu   menu
	notice notice
}

// NewFoodSelect creates the food menu.
func NewFoodSelect() *FoodSelect {
	return &FoodSelect{}
}

func (s *FoodSelect) Kind() Kind { return KindFoodSelect }

func (s *FoodSelect) Tick(a *TickArgs) Output {
	s.notice.tick(a.Delta)
	foods := pet.Foods()
	if !s.menu.handle(a, len(foods)+1) {
		return Stay()
	}
	if s.menu.cursor == len(foods) {
		return Goto(NewHome())
	}

	food := foods[s.menu.cursor]
	info := food.Info()
	switch {
	case a.Ctx.Pet.Full():
		s.notice.show("TOO FULL")
	case a.Ctx.Money < info.Price:
		s.notice.show("NO MONEY")
	default:
		a.Ctx.Money -= info.Price
		return Goto(NewEat(food))
	}
	return Stay()
}

func (s *FoodSelect) Render(dst Surface, a *RenderArgs) {
	drawTitle(dst, "FOOD")
	foods := pet.Foods()
	if s.menu.cursor == len(foods) {
		drawPicker(dst, 60, "BACK")
		return
	}
	food := foods[s.menu.cursor]
	dst.BlitCentered(30, itemSprite(food))
	drawPicker(dst, 60, food.String())
	dst.TextCentered(66, fmt.Sprintf("$%d", food.Info().Price))
	dst.TextCentered(100, fmt.Sprintf("WALLET $%d", a.Ctx.Money))
	s.notice.render(dst, 80)
}

// Eat plays the feeding animation for an already paid meal.
type Eat struct {
	base
	food  pet.ItemKind
	t     timer
	eaten bool
}

// NewEat creates the feeding scene.
func NewEat(food pet.ItemKind) *Eat {
	return &Eat{food: food, t: newTimer(eatTime)}
}

func (s *Eat) Kind() Kind { return KindEat }

func (s *Eat) Setup(a *TickArgs) {
	if s.eaten {
		return
	}
	s.eaten = a.Ctx.Pet.Eat(s.food)
	if s.eaten {
		a.Ctx.Sound.Push(pet.SongEat)
	}
}

func (s *Eat) Tick(a *TickArgs) Output {
	if s.t.tick(a.Delta) {
		return Goto(NewHome())
	}
	return Stay()
}

func (s *Eat) Render(dst Surface, a *RenderArgs) {
	img := petSprite(a.Ctx.Pet.DefID)
	dst.Blit(16, 60-img.H, img)

	// Bites disappear from the right as the timer runs down.
	food := itemSprite(s.food)
	if food != nil {
		frac := float64(s.t.left) / float64(eatTime)
		dst.Blit(40, 60-food.H, food)
		bitten := food.W - int(float64(food.W)*frac)
		dst.Fill(core.NewRect(40+food.W-bitten, 60-food.H, bitten, food.H), false)
	}
	if !s.eaten {
		dst.TextCentered(80, "NOT HUNGRY")
	}
}

// PoopClear sweeps the floor.
type PoopClear struct {
	base
	t       timer
	cleared int
	done    bool
}

// NewPoopClear creates the cleaning scene.
func NewPoopClear() *PoopClear {
	return &PoopClear{t: newTimer(cleanTime)}
}

func (s *PoopClear) Kind() Kind { return KindPoopClear }

func (s *PoopClear) Setup(a *TickArgs) {
	if !s.done {
		s.cleared = a.Ctx.ClearPoops()
		s.done = true
	}
}

func (s *PoopClear) Tick(a *TickArgs) Output {
	if s.t.tick(a.Delta) {
		return Goto(NewHome())
	}
	return Stay()
}

func (s *PoopClear) Render(dst Surface, a *RenderArgs) {
	frac := 1 - float64(s.t.left)/float64(cleanTime)
	x := int(frac * float64(dst.Width()))
	dst.DrawHLine(0, ground+1, dst.Width())
	for i := 0; i < s.cleared; i++ {
		px := 6 + i*11
		if px > x {
			dst.Blit(px, ground+4, spritePoop)
		}
	}
	dst.Blit(x-spriteBroom.W/2, ground-spriteBroom.H+8, spriteBroom)
	if s.cleared == 0 {
		dst.TextCentered(30, "ALREADY CLEAN")
	}
}

// Heal uses one medicine on a sick pet.
type Heal struct {
	base
	t      timer
	result string
	done   bool
}

// NewHeal creates the healing scene.
func NewHeal() *Heal {
	return &Heal{t: newTimer(healTime)}
}

func (s *Heal) Kind() Kind { return KindHeal }

func (s *Heal) Setup(a *TickArgs) {
	if s.done {
		return
	}
	s.done = true
	p := &a.Ctx.Pet
	switch {
	case !p.Ill:
		s.result = "NOT SICK"
	case !a.Ctx.Inventory.Take(pet.ItemMedicine):
		s.result = "NO MEDICINE"
	default:
		p.Heal()
		s.result = "CURED"
	}
}

func (s *Heal) Tick(a *TickArgs) Output {
	if s.t.tick(a.Delta) {
		return Goto(NewHome())
	}
	return Stay()
}

func (s *Heal) Render(dst Surface, a *RenderArgs) {
	img := petSprite(a.Ctx.Pet.DefID)
	dst.BlitCentered(60-img.H, img)
	if s.result == "CURED" {
		dst.Blit(8, 40, spriteSyringe)
		if a.Blink() {
			dst.Blit(48, 30, spriteSparkle)
		}
	}
	dst.TextCentered(80, s.result)
}
