package scene

import (
	"fmt"
	"time"

	"github.com/vovakirdan/pocketpet/internal/core"
	"github.com/vovakirdan/pocketpet/internal/gamectx"
	"github.com/vovakirdan/pocketpet/internal/pet"
)

// PetInfo pages through the pet's vital statistics.
type PetInfo struct {
	base
	page int
}

const infoPages = 3

// NewPetInfo creates the info scene.
func NewPetInfo() *PetInfo {
	return &PetInfo{}
}

func (s *PetInfo) Kind() Kind { return KindPetInfo }

func (s *PetInfo) Tick(a *TickArgs) Output {
	if a.Pressed(core.ButtonLeft) {
		s.page = core.Wrap(s.page-1, infoPages)
	}
	if a.Pressed(core.ButtonRight) {
		s.page = core.Wrap(s.page+1, infoPages)
	}
	if a.Pressed(core.ButtonMiddle) {
		return Goto(NewHome())
	}
	return Stay()
}

func (s *PetInfo) Render(dst Surface, a *RenderArgs) {
	p := &a.Ctx.Pet
	def := p.Definition()
	drawTitle(dst, p.Name)
	dst.BlitCentered(8, petSprite(p.DefID))

	lines := infoLines(a.Ctx, s.page)
	for i, l := range lines {
		dst.Text(2, 30+i*6, l)
	}
	dst.TextCentered(120, fmt.Sprintf("< %d/%d %s >", s.page+1, infoPages, def.Stage))
}

func infoLines(ctx *gamectx.Context, page int) []string {
	p := &ctx.Pet
	def := p.Definition()
	switch page {
	case 0:
		lines := []string{
			"SPECIES " + def.Name,
			fmt.Sprintf("AGE     %dd %dh", p.AgeDays(), int(p.Age/time.Hour)%24),
			fmt.Sprintf("WEIGHT  %.0fg", p.Weight()),
			fmt.Sprintf("HUNGER  %.0f%%", p.Hunger()*100),
		}
		if p.Ill {
			lines = append(lines, "SICK")
		}
		return lines
	case 1:
		lines := []string{
			"BORN " + p.Born.Date().String(),
			fmt.Sprintf("UPID %016x", uint64(p.UPID)),
		}
		if p.Parents != nil {
			lines = append(lines,
				"MUM  "+p.Parents.Mother.Name,
				"DAD  "+p.Parents.Father.Name,
			)
		}
		return lines
	default:
		lines := []string{
			fmt.Sprintf("MONEY  $%d", ctx.Money),
			fmt.Sprintf("POOPS  %d/%d", ctx.PoopCount(), pet.MaxPoops),
			fmt.Sprintf("TEMP   %.0fC", ctx.Temperature),
		}
		if ctx.Egg != nil {
			lines = append(lines, fmt.Sprintf("EGG    %dh", int(ctx.Egg.Age/time.Hour)))
		}
		if ctx.Alarm.Enabled {
			lines = append(lines, "ALARM  "+ctx.Alarm.At.String()+" "+ctx.Alarm.Days.String())
		}
		return lines
	}
}

// PetRecords lists past pets, newest first.
type PetRecords struct {
	base
	menu menu
}

// NewPetRecords creates the records scene.
func NewPetRecords() *PetRecords {
	return &PetRecords{}
}

func (s *PetRecords) Kind() Kind { return KindPetRecords }

func (s *PetRecords) Tick(a *TickArgs) Output {
	n := len(a.Ctx.Records.List())
	if n == 0 {
		if a.Input != nil && a.Input.AnyPressed() {
			return Goto(NewHome())
		}
		return Stay()
	}
	if s.menu.handle(a, n) {
		return Goto(NewHome())
	}
	return Stay()
}

func (s *PetRecords) Render(dst Surface, a *RenderArgs) {
	drawTitle(dst, "RECORDS")
	recs := a.Ctx.Records.List()
	if len(recs) == 0 {
		dst.TextCentered(60, "NO RECORDS")
		return
	}
	r := recs[min(s.menu.cursor, len(recs)-1)]
	dst.BlitCentered(8, petSprite(r.DefID))
	dst.Text(2, 30, r.Name)
	dst.Text(2, 36, r.DefID.String())
	dst.Text(2, 42, "BORN "+r.Born.String())
	dst.Text(2, 48, "DIED "+r.Died.String())
	dst.Text(2, 54, r.Cause.String())
	dst.TextCentered(120, fmt.Sprintf("< %d/%d >", s.menu.cursor+1, len(recs)))
}
