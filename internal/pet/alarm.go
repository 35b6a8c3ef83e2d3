package pet

import (
	"time"

	"github.com/vovakirdan/pocketpet/internal/timestamp"
)

// RingWindow is how long after the set time an alarm keeps ringing.
const RingWindow = 3 * time.Minute

// Alarm is a weekly alarm.
type Alarm struct {
	Enabled bool
	Days    timestamp.WeekdaySet
	At      timestamp.Clock
	AckedOn timestamp.Date
	Ringing bool
}

// Set replaces the configuration and re-arms the alarm.
func (a *Alarm) Set(days timestamp.WeekdaySet, at timestamp.Clock) {
	a.Enabled = !days.Empty()
	a.Days = days
	a.At = at
	a.AckedOn = timestamp.Date{}
	a.Ringing = false
}

// Disable turns the alarm off.
func (a *Alarm) Disable() {
	a.Enabled = false
	a.Ringing = false
}

// Tick updates Ringing and reports whether it just started.
func (a *Alarm) Tick(now timestamp.Timestamp) bool {
	was := a.Ringing
	a.Ringing = a.shouldRing(now)
	return a.Ringing && !was
}

// Ack silences the alarm for the rest of the day.
func (a *Alarm) Ack(now timestamp.Timestamp) {
	a.AckedOn = now.Date()
	a.Ringing = false
}

func (a *Alarm) shouldRing(now timestamp.Timestamp) bool {
	if !a.Enabled || !a.Days.Has(now.Weekday()) || a.AckedOn == now.Date() {
		return false
	}
	since := now.SinceMidnight() - a.At.Duration()
	return since >= 0 && since < RingWindow
}

// Song identifies a tune for the sound driver.
type Song uint8

const (
	SongNone Song = iota
	SongAlarm
	SongEat
	SongEvolve
	SongHatch
	SongDeath
	SongCoin
)

func (s Song) String() string {
	switch s {
	case SongNone:
		return "none"
	case SongAlarm:
		return "alarm"
	case SongEat:
		return "eat"
	case SongEvolve:
		return "evolve"
	case SongHatch:
		return "hatch"
	case SongDeath:
		return "death"
	case SongCoin:
		return "coin"
	default:
		return "unknown"
	}
}

// Sound is the outbound song queue. A newer song replaces an unplayed one.
type Sound struct {
	Muted   bool
	Pending Song
}

// Push queues s unless muted.
func (s *Sound) Push(song Song) {
	if s.Muted {
		return
	}
	s.Pending = song
}

// Pull returns and clears the queued song.
func (s *Sound) Pull() Song {
	song := s.Pending
	s.Pending = SongNone
	return song
}
