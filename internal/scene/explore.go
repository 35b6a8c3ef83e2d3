package scene

import (
	"fmt"
	"time"

	"github.com/vovakirdan/pocketpet/internal/core"
	"github.com/vovakirdan/pocketpet/internal/pet"
)

// ExploreSelect picks a destination or recalls a pet that is out.
type ExploreSelect struct {
	base
	menu   menu
	notice notice
}

// NewExploreSelect creates the destination picker.
func NewExploreSelect() *ExploreSelect {
	return &ExploreSelect{}
}

func (s *ExploreSelect) Kind() Kind { return KindExploreSelect }

func (s *ExploreSelect) Tick(a *TickArgs) Output {
	s.notice.tick(a.Delta)
	ctx := a.Ctx
	if ctx.Explore.Active {
		// RECALL, BACK
		if !s.menu.handle(a, 2) {
			return Stay()
		}
		if s.menu.cursor == 0 {
			ctx.Explore.Cancel()
		}
		return Goto(NewHome())
	}

	locs := pet.Locations()
	if !s.menu.handle(a, len(locs)+1) {
		return Stay()
	}
	if s.menu.cursor == len(locs) {
		return Goto(NewHome())
	}
	loc := locs[s.menu.cursor]
	switch {
	case ctx.Pet.Definition().Stage < loc.MinStage:
		s.notice.show("TOO YOUNG")
	case ctx.Pet.Ill:
		s.notice.show("TOO SICK")
	default:
		ctx.Explore.Start(loc.ID)
		return Goto(NewHome())
	}
	return Stay()
}

func (s *ExploreSelect) Render(dst Surface, a *RenderArgs) {
	drawTitle(dst, "EXPLORE")
	ctx := a.Ctx
	if ctx.Explore.Active {
		loc := pet.LookupLocation(ctx.Explore.Location)
		dst.TextCentered(30, "AT "+loc.Name)
		dst.Bar(12, 40, 40, float64(ctx.Explore.Progress()))
		left := (loc.Length - ctx.Explore.Elapsed).Round(time.Minute)
		dst.TextCentered(48, fmt.Sprintf("%v LEFT", left))
		label := "RECALL"
		if s.menu.cursor == 1 {
			label = "BACK"
		}
		drawPicker(dst, 120, label)
		return
	}

	locs := pet.Locations()
	if s.menu.cursor == len(locs) {
		drawPicker(dst, 60, "BACK")
		return
	}
	loc := locs[s.menu.cursor]
	drawPicker(dst, 30, loc.Name)
	dst.Text(4, 40, fmt.Sprintf("TIME   %v", loc.Length))
	dst.Text(4, 46, fmt.Sprintf("REWARD $%d", loc.Reward))
	dst.Text(4, 52, "FIND   "+loc.Find.String())
	dst.Text(4, 58, "FROM   "+loc.MinStage.String())
	s.notice.render(dst, 80)
}

// ExplorePost reports how the last outing went.
type ExplorePost struct {
	base
}

// NewExplorePost creates the outing report.
func NewExplorePost() *ExplorePost {
	return &ExplorePost{}
}

func (s *ExplorePost) Kind() Kind { return KindExplorePost }

func (s *ExplorePost) Setup(a *TickArgs) {
	a.Ctx.Explore.Last.Unseen = false
}

func (s *ExplorePost) Tick(a *TickArgs) Output {
	if a.Pressed(core.ButtonMiddle) {
		return Goto(NewHome())
	}
	return Stay()
}

func (s *ExplorePost) Render(dst Surface, a *RenderArgs) {
	res := a.Ctx.Explore.Last
	loc := pet.LookupLocation(res.Location)
	drawTitle(dst, "BACK FROM")
	dst.TextCentered(8, loc.Name)
	img := petSprite(a.Ctx.Pet.DefID)
	dst.BlitCentered(20, img)
	dst.Text(4, 50, fmt.Sprintf("PASSED %d/%d", res.Passes, res.Checks))
	dst.Blit(4, 58, spriteCoin)
	dst.Text(12, 58, fmt.Sprintf("$%d", res.Money))
	if res.Found != pet.ItemNone {
		dst.Blit(4, 68, itemSprite(res.Found))
		dst.Text(14, 70, "FOUND "+res.Found.String())
	}
}
