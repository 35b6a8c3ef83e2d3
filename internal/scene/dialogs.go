package scene

import (
	"strings"
	"time"

	"github.com/vovakirdan/pocketpet/internal/core"
	"github.com/vovakirdan/pocketpet/internal/pet"
	"github.com/vovakirdan/pocketpet/internal/timestamp"
)

// Dialogs are opened by a parent scene, which the manager stashes. On
// completion a dialog returns to args.Resume() and writes its answer into
// the context mailbox during Teardown.

// Need selects which parts of a timestamp EnterDate asks for.
type Need uint8

const (
	NeedDate Need = iota
	NeedTime
	NeedDateTime
)

const (
	minYear = 2000
	maxYear = 2099
)

type dateField uint8

const (
	fieldYear dateField = iota
	fieldMonth
	fieldDay
	fieldHour
	fieldMinute
)

// EnterDate asks for a date, a time of day or both. Left and right move
// between fields, middle starts editing the field, and while editing left
// and right change the value.
type EnterDate struct {
	base
	prompt  string
	fields  []dateField
	menu    menu
	editing bool
	date    timestamp.Date
	clock   timestamp.Clock
	done    bool
}

// NewEnterDate creates a date dialog prefilled from now.
func NewEnterDate(need Need, prompt string, now timestamp.Timestamp) *EnterDate {
	s := &EnterDate{
		prompt: prompt,
		date:   now.Date(),
		clock:  timestamp.Clock{Hour: now.Hour(), Minute: now.Minute()},
	}
	if need != NeedTime {
		s.fields = append(s.fields, fieldYear, fieldMonth, fieldDay)
	}
	if need != NeedDate {
		s.fields = append(s.fields, fieldHour, fieldMinute)
	}
	s.date.Year = core.Clamp(s.date.Year, minYear, maxYear)
	return s
}

// WithClock prefills the time of day.
func (s *EnterDate) WithClock(c timestamp.Clock) *EnterDate {
	s.clock = timestamp.Clock{Hour: c.Hour, Minute: c.Minute}
	return s
}

func (s *EnterDate) Kind() Kind { return KindEnterDate }

func (s *EnterDate) Teardown(a *TickArgs) {
	if s.done {
		a.Ctx.Mailbox.Date = s.date
		a.Ctx.Mailbox.Clock = s.clock
	}
}

func (s *EnterDate) Tick(a *TickArgs) Output {
	if s.editing {
		if a.Pressed(core.ButtonLeft) {
			s.adjust(-1)
		}
		if a.Pressed(core.ButtonRight) {
			s.adjust(1)
		}
		if a.Pressed(core.ButtonMiddle) {
			s.editing = false
		}
		return Stay()
	}

	if !s.menu.handle(a, len(s.fields)+1) {
		return Stay()
	}
	if s.menu.cursor == len(s.fields) {
		s.done = true
		return Goto(a.Resume())
	}
	s.editing = true
	return Stay()
}

func (s *EnterDate) adjust(d int) {
	days := func() int { return timestamp.DaysIn(s.date.Year, s.date.Month) }
	switch s.fields[s.menu.cursor] {
	case fieldYear:
		s.date.Year = core.Clamp(s.date.Year+d, minYear, maxYear)
		s.date.Day = min(s.date.Day, days())
	case fieldMonth:
		s.date.Month = time.Month(core.Wrap(int(s.date.Month)-1+d, 12) + 1)
		s.date.Day = min(s.date.Day, days())
	case fieldDay:
		s.date.Day = core.Wrap(s.date.Day-1+d, days()) + 1
	case fieldHour:
		s.clock.Hour = core.Wrap(s.clock.Hour+d, 24)
	case fieldMinute:
		s.clock.Minute = core.Wrap(s.clock.Minute+d, 60)
	}
}

// fieldSpan is where a field's digits sit within its line.
var fieldSpan = map[dateField][2]int{
	fieldYear:   {0, 4},
	fieldMonth:  {5, 2},
	fieldDay:    {8, 2},
	fieldHour:   {0, 2},
	fieldMinute: {3, 2},
}

func (s *EnterDate) Render(dst Surface, a *RenderArgs) {
	dst.TextCentered(20, s.prompt)

	dateLine, clockLine := s.date.String(), s.clock.String()
	dateX := (dst.Width() - len(dateLine)) / 2
	clockX := (dst.Width() - len(clockLine)) / 2
	y := 40
	var dateY, clockY int
	if s.fields[0] == fieldYear {
		dateY = y
		dst.Text(dateX, dateY, dateLine)
		y += 10
	}
	if s.fields[len(s.fields)-1] == fieldMinute {
		clockY = y
		dst.Text(clockX, clockY, clockLine)
		y += 10
	}

	dst.TextCentered(y+10, "[OK]")
	if s.menu.cursor == len(s.fields) {
		dst.TextCentered(y+12, "^^^^")
		return
	}

	f := s.fields[s.menu.cursor]
	x, lineY := dateX, dateY
	if f >= fieldHour {
		x, lineY = clockX, clockY
	}
	mark := "^"
	if s.editing {
		if !a.Blink() {
			return
		}
		mark = "="
	}
	span := fieldSpan[f]
	dst.Text(x+span[0], lineY+2, strings.Repeat(mark, span[1]))
}

const textChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 "

const (
	textDelete = len(textChars)
	textSubmit = len(textChars) + 1
)

// EnterText picks characters one at a time. The entries after the
// character set delete the last character and submit.
type EnterText struct {
	base
	prompt  string
	maxLen  int
	text    []byte
	menu    menu
	showPet pet.DefinitionID
	hasPet  bool
	notice  notice
	done    bool
}

// NewEnterText creates a text dialog accepting up to maxLen characters.
func NewEnterText(prompt string, maxLen int) *EnterText {
	return &EnterText{prompt: prompt, maxLen: maxLen}
}

// WithText prefills the text.
func (s *EnterText) WithText(text string) *EnterText {
	text = strings.ToUpper(text)
	if len(text) > s.maxLen {
		text = text[:s.maxLen]
	}
	s.text = []byte(text)
	return s
}

// ShowPet draws the pet being named above the prompt.
func (s *EnterText) ShowPet(def pet.DefinitionID) *EnterText {
	s.showPet = def
	s.hasPet = true
	return s
}

func (s *EnterText) Kind() Kind { return KindEnterText }

func (s *EnterText) Teardown(a *TickArgs) {
	if s.done {
		a.Ctx.Mailbox.Text = s.value()
	}
}

func (s *EnterText) value() string {
	return strings.TrimSpace(string(s.text))
}

func (s *EnterText) Tick(a *TickArgs) Output {
	s.notice.tick(a.Delta)
	if !s.menu.handle(a, textSubmit+1) {
		return Stay()
	}
	switch c := s.menu.cursor; {
	case c == textSubmit:
		if s.value() == "" {
			s.notice.show("EMPTY")
			return Stay()
		}
		s.done = true
		return Goto(a.Resume())
	case c == textDelete:
		if len(s.text) > 0 {
			s.text = s.text[:len(s.text)-1]
		}
	case len(s.text) < s.maxLen:
		s.text = append(s.text, textChars[c])
	default:
		s.notice.show("TOO LONG")
	}
	return Stay()
}

func (s *EnterText) Render(dst Surface, a *RenderArgs) {
	if s.hasPet {
		dst.BlitCentered(4, petSprite(s.showPet))
	}
	dst.TextCentered(30, s.prompt)

	shown := string(s.text)
	if len(s.text) < s.maxLen && a.Blink() {
		shown += "_"
	}
	dst.TextCentered(40, shown)
	dst.DrawHLine((dst.Width()-s.maxLen)/2, 43, s.maxLen)

	var label string
	switch c := s.menu.cursor; {
	case c == textSubmit:
		label = "OK"
	case c == textDelete:
		label = "DEL"
	case textChars[c] == ' ':
		label = "SPACE"
	default:
		label = string(textChars[c])
	}
	drawPicker(dst, 60, label)
	s.notice.render(dst, 80)
}

// WeekdaySelect toggles days of the week. Submitting an empty set is
// allowed and means "never".
type WeekdaySelect struct {
	base
	prompt string
	days   timestamp.WeekdaySet
	menu   menu
	done   bool
}

// mondayFirst lists the weekdays in display order.
var mondayFirst = [7]time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// NewWeekdaySelect creates a weekday dialog starting from days.
func NewWeekdaySelect(prompt string, days timestamp.WeekdaySet) *WeekdaySelect {
	return &WeekdaySelect{prompt: prompt, days: days}
}

func (s *WeekdaySelect) Kind() Kind { return KindWeekdaySelect }

func (s *WeekdaySelect) Teardown(a *TickArgs) {
	if s.done {
		a.Ctx.Mailbox.Weekdays = s.days
	}
}

func (s *WeekdaySelect) Tick(a *TickArgs) Output {
	if !s.menu.handle(a, len(mondayFirst)+1) {
		return Stay()
	}
	if s.menu.cursor == len(mondayFirst) {
		s.done = true
		return Goto(a.Resume())
	}
	s.days = s.days.Toggle(mondayFirst[s.menu.cursor])
	return Stay()
}

func (s *WeekdaySelect) Render(dst Surface, a *RenderArgs) {
	dst.TextCentered(20, s.prompt)
	for i, day := range mondayFirst {
		mark := "[ ]"
		if s.days.Has(day) {
			mark = "[x]"
		}
		prefix := " "
		if i == s.menu.cursor {
			prefix = ">"
		}
		dst.Text(18, 32+i*6, prefix+mark+" "+day.String()[:3])
	}
	ok := " OK"
	if s.menu.cursor == len(mondayFirst) {
		ok = ">OK"
	}
	dst.Text(18, 32+len(mondayFirst)*6, ok)
}
