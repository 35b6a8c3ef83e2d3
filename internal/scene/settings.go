package scene

import (
	"time"

	"github.com/vovakirdan/pocketpet/internal/pet"
	"github.com/vovakirdan/pocketpet/internal/timestamp"
)

type settingsPending uint8

const (
	pendingNone settingsPending = iota
	pendingClock
	pendingName
)

var settingsOptions = []string{"SET CLOCK", "RENAME", "SOUND", "BACK"}

// Settings edits the clock, the pet's name and sound. Clock and name are
// asked through dialogs and applied when the dialog hands control back.
type Settings struct {
	base
	menu    menu
	pending settingsPending
}

// NewSettings creates the settings scene.
func NewSettings() *Settings {
	return &Settings{}
}

func (s *Settings) Kind() Kind { return KindSettings }

func (s *Settings) Setup(a *TickArgs) {
	ctx := a.Ctx
	switch s.pending {
	case pendingClock:
		if t, err := ctx.Mailbox.Date.At(ctx.Mailbox.Clock); err == nil {
			ctx.SetTimestamp = &t
		}
	case pendingName:
		if ctx.Mailbox.Text != "" {
			ctx.Pet.Name = ctx.Mailbox.Text
		}
	}
	s.pending = pendingNone
}

func (s *Settings) Tick(a *TickArgs) Output {
	if !s.menu.handle(a, len(settingsOptions)) {
		return Stay()
	}
	ctx := a.Ctx
	switch s.menu.cursor {
	case 0:
		s.pending = pendingClock
		return Goto(NewEnterDate(NeedDateTime, "SET CLOCK", a.Now))
	case 1:
		s.pending = pendingName
		return Goto(NewEnterText("NAME?", pet.MaxNameLen).WithText(ctx.Pet.Name))
	case 2:
		ctx.Sound.Muted = !ctx.Sound.Muted
		return Stay()
	default:
		return Goto(NewHome())
	}
}

func (s *Settings) Render(dst Surface, a *RenderArgs) {
	drawTitle(dst, "SETTINGS")
	label := settingsOptions[s.menu.cursor]
	switch s.menu.cursor {
	case 0:
		dst.TextCentered(40, a.Now.Date().String())
		dst.TextCentered(46, a.Now.Clock().String())
	case 1:
		dst.TextCentered(40, a.Ctx.Pet.Name)
	case 2:
		state := "ON"
		if a.Ctx.Sound.Muted {
			state = "OFF"
		}
		label += " " + state
	}
	drawPicker(dst, 120, label)
}

type alarmSetState uint8

const (
	alarmAskTime alarmSetState = iota
	alarmAskDays
	alarmGotDays
)

// AlarmSet asks for a time and then for the weekdays, and arms the alarm.
// Choosing no days turns it off.
type AlarmSet struct {
	base
	state alarmSetState
	at    timestamp.Clock
}

// NewAlarmSet creates the alarm setup scene.
func NewAlarmSet() *AlarmSet {
	return &AlarmSet{}
}

func (s *AlarmSet) Kind() Kind { return KindAlarmSet }

func (s *AlarmSet) Tick(a *TickArgs) Output {
	ctx := a.Ctx
	switch s.state {
	case alarmAskTime:
		s.state = alarmAskDays
		return Goto(NewEnterDate(NeedTime, "ALARM TIME?", a.Now).WithClock(ctx.Alarm.At))
	case alarmAskDays:
		s.at = ctx.Mailbox.Clock
		s.state = alarmGotDays
		return Goto(NewWeekdaySelect("WHAT DAYS?", ctx.Alarm.Days))
	default:
		ctx.Alarm.Set(ctx.Mailbox.Weekdays, s.at)
		return Goto(NewHome())
	}
}

func (s *AlarmSet) Render(dst Surface, a *RenderArgs) {
	drawTitle(dst, "ALARM")
}

const alarmRepeat = 2 * time.Second

// AlarmRing rings until a button is pressed or the ring window passes.
type AlarmRing struct {
	base
	repeat timer
}

// NewAlarmRing creates the ringing scene.
func NewAlarmRing() *AlarmRing {
	return &AlarmRing{repeat: newTimer(alarmRepeat)}
}

func (s *AlarmRing) Kind() Kind { return KindAlarmRing }

func (s *AlarmRing) Tick(a *TickArgs) Output {
	ctx := a.Ctx
	if a.Input != nil && a.Input.AnyPressed() {
		ctx.Alarm.Ack(a.Now)
		return Goto(NewHome())
	}
	if !ctx.Alarm.Ringing {
		return Goto(NewHome())
	}
	if s.repeat.tick(a.Delta) {
		s.repeat = newTimer(alarmRepeat)
		ctx.Sound.Push(pet.SongAlarm)
	}
	return Stay()
}

func (s *AlarmRing) Render(dst Surface, a *RenderArgs) {
	shake := 0
	if a.Blink() {
		shake = 2
	}
	dst.Blit((dst.Width()-spriteBell.W)/2+shake, 30, spriteBell)
	dst.TextCentered(50, a.Now.Clock().String())
	dst.TextCentered(60, "WAKE UP!")
}
