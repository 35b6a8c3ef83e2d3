package scene

import (
	"fmt"
	"time"

	"github.com/vovakirdan/pocketpet/internal/core"
	"github.com/vovakirdan/pocketpet/internal/gamectx"
	"github.com/vovakirdan/pocketpet/internal/pet"
)

type homeOption struct {
	label string
	open  func(a *TickArgs) Scene
}

var homeOptions = []homeOption{
	{"FOOD", func(*TickArgs) Scene { return NewFoodSelect() }},
	{"CLEAN", func(*TickArgs) Scene { return NewPoopClear() }},
	{"HEAL", func(*TickArgs) Scene { return NewHeal() }},
	{"INFO", func(*TickArgs) Scene { return NewPetInfo() }},
	{"SHOP", func(*TickArgs) Scene { return NewShop() }},
	{"ITEMS", func(*TickArgs) Scene { return NewInventory() }},
	{"EXPLORE", func(*TickArgs) Scene { return NewExploreSelect() }},
	{"RECORDS", func(*TickArgs) Scene { return NewPetRecords() }},
	{"ALARM", func(*TickArgs) Scene { return NewAlarmSet() }},
	{"SETTINGS", func(*TickArgs) Scene { return NewSettings() }},
}

var visitorOption = homeOption{"VISITOR", func(*TickArgs) Scene { return NewSuitors() }}

// Home is the idle scene: the pet wanders about and a picker opens every
// other activity. Pending lifecycle events take priority over the picker.
type Home struct {
	base
	menu menu
	anim time.Duration
}

// NewHome creates the home scene.
func NewHome() *Home {
	return &Home{}
}

func (h *Home) Kind() Kind { return KindHome }

func (h *Home) Tick(a *TickArgs) Output {
	ctx := a.Ctx
	h.anim += a.Delta

	switch {
	case !ctx.Pet.Alive():
		return Goto(NewDeath())
	case ctx.Egg != nil && ctx.Egg.Ready:
		return Goto(NewEggHatch())
	case ctx.Pet.Evolving:
		return Goto(NewEvolve())
	case ctx.Alarm.Ringing:
		return Goto(NewAlarmRing())
	case ctx.Explore.Last.Unseen && !ctx.Explore.Active:
		return Goto(NewExplorePost())
	}

	opts := homeMenu(ctx)
	if h.menu.handle(a, len(opts)) {
		return Goto(opts[h.menu.cursor].open(a))
	}
	return Stay()
}

// homeMenu lists the Home entries. The visitor goes last so a suitor
// arriving or leaving does not move the entry under the cursor.
func homeMenu(ctx *gamectx.Context) []homeOption {
	if ctx.Suitor.Present {
		return append(homeOptions[:len(homeOptions):len(homeOptions)], visitorOption)
	}
	return homeOptions
}

func (h *Home) Render(dst Surface, a *RenderArgs) {
	ctx := a.Ctx
	p := &ctx.Pet

	dst.Text(1, 0, a.Now.Clock().String())
	money := fmt.Sprintf("$%d", ctx.Money)
	dst.Text(dst.Width()-len(money)-1, 0, money)
	dst.DrawHLine(0, 3, dst.Width())

	dst.Text(1, 6, "FOOD")
	dst.Bar(8, 6, 24, 1-p.Hunger())
	if p.Ill {
		dst.Blit(40, 5, spriteSick)
	}
	if ctx.Suitor.Present && a.Blink() {
		dst.Blit(50, 5, spriteHeart)
	}

	if ctx.Explore.Active {
		loc := pet.LookupLocation(ctx.Explore.Location)
		dst.TextCentered(50, "AWAY AT")
		dst.TextCentered(54, loc.Name)
		dst.Bar(12, 60, 40, float64(ctx.Explore.Progress()))
	} else {
		img := petSprite(p.DefID)
		step := int(h.anim/(700*time.Millisecond)) % 8
		x := 20 + wander[step]
		bob := 0
		if step%2 == 1 {
			bob = 1
		}
		if wander[step] < wander[(step+7)%8] {
			img = img.Mirror()
		}
		dst.Blit(x, ground-img.H+bob, img)
	}

	if ctx.Suitor.Present {
		v := petSprite(ctx.Suitor.Visitor.DefID).Mirror()
		dst.Blit(dst.Width()-v.W-1, ground-v.H, v)
	}
	if ctx.Egg != nil {
		dst.Blit(2, ground-spriteEgg.H, spriteEgg)
	}

	dst.DrawHLine(0, ground+1, dst.Width())
	for i, poop := range ctx.Poops {
		if poop.Present {
			dst.Blit(6+i*11+int(poop.X)/8, ground+4, spritePoop)
		}
	}

	for i, item := range ctx.Layout.Slots {
		if img := itemSprite(item); img != nil {
			dst.Blit(4+i*22, ground+14, img)
		}
	}

	opts := homeMenu(ctx)
	drawPicker(dst, 120, opts[core.Wrap(h.menu.cursor, len(opts))].label)
}

// ground is the pixel row the pet stands on.
const ground = 66

var wander = [8]int{0, 4, 8, 12, 12, 8, 4, 0}
