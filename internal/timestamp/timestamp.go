// Package timestamp provides the naive calendar date-time used throughout
// the simulation. Every platform clock source (OS clock, RTC, or no clock at
// all) is normalized into this one representation so arithmetic and
// encoding behave identically everywhere.
package timestamp

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned when calendar fields do not describe a real instant.
var ErrInvalid = errors.New("timestamp: invalid calendar fields")

// Year range accepted from external data.
const (
	MinYear = 1
	MaxYear = 9999
)

// Timestamp is a calendar date-time without a zone.
// The zero value is 0001-01-01T00:00:00.
type Timestamp struct {
	t time.Time
}

// New validates the calendar fields and builds a Timestamp.
func New(year int, month time.Month, day, hour, minute, second, nanosecond int) (Timestamp, error) {
	switch {
	case year < MinYear || year > MaxYear:
		return Timestamp{}, fmt.Errorf("%w: year %d", ErrInvalid, year)
	case month < time.January || month > time.December:
		return Timestamp{}, fmt.Errorf("%w: month %d", ErrInvalid, month)
	case day < 1 || day > DaysIn(year, month):
		return Timestamp{}, fmt.Errorf("%w: day %d", ErrInvalid, day)
	case hour < 0 || hour > 23:
		return Timestamp{}, fmt.Errorf("%w: hour %d", ErrInvalid, hour)
	case minute < 0 || minute > 59:
		return Timestamp{}, fmt.Errorf("%w: minute %d", ErrInvalid, minute)
	case second < 0 || second > 59:
		return Timestamp{}, fmt.Errorf("%w: second %d", ErrInvalid, second)
	case nanosecond < 0 || nanosecond > 999_999_999:
		return Timestamp{}, fmt.Errorf("%w: nanosecond %d", ErrInvalid, nanosecond)
	}
	return Timestamp{t: time.Date(year, month, day, hour, minute, second, nanosecond, time.UTC)}, nil
}

// MustNew is New for literals known to be valid. It panics otherwise.
func MustNew(year int, month time.Month, day, hour, minute, second, nanosecond int) Timestamp {
	ts, err := New(year, month, day, hour, minute, second, nanosecond)
	if err != nil {
		panic(err)
	}
	return ts
}

// FromTime takes the wall clock fields of t and drops its zone.
func FromTime(t time.Time) Timestamp {
	return Timestamp{t: time.Date(t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)}
}

// Default is the reading used by shells that have no clock at all.
func Default() Timestamp {
	return Timestamp{t: time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)}
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Sub returns t-u, saturating at zero when u is later than t.
func (t Timestamp) Sub(u Timestamp) time.Duration {
	d := t.t.Sub(u.t)
	if d < 0 {
		return 0
	}
	return d
}

// Add returns t+d.
func (t Timestamp) Add(d time.Duration) Timestamp {
	return Timestamp{t: t.t.Add(d)}
}

// Compare returns -1, 0 or +1.
func (t Timestamp) Compare(u Timestamp) int {
	return t.t.Compare(u.t)
}

func (t Timestamp) Before(u Timestamp) bool { return t.t.Before(u.t) }
func (t Timestamp) After(u Timestamp) bool  { return t.t.After(u.t) }
func (t Timestamp) Equal(u Timestamp) bool  { return t.t.Equal(u.t) }

// Seed derives an RNG seed. The sub-second component lands in the low bits
// before mixing, so two readings a nanosecond apart seed differently.
func (t Timestamp) Seed() uint64 {
	x := uint64(t.t.Unix())<<30 ^ uint64(t.t.Nanosecond())
	return splitmix64(x)
}

func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

func (t Timestamp) Year() int             { return t.t.Year() }
func (t Timestamp) Month() time.Month     { return t.t.Month() }
func (t Timestamp) Day() int              { return t.t.Day() }
func (t Timestamp) Hour() int             { return t.t.Hour() }
func (t Timestamp) Minute() int           { return t.t.Minute() }
func (t Timestamp) Second() int           { return t.t.Second() }
func (t Timestamp) Nanosecond() int       { return t.t.Nanosecond() }
func (t Timestamp) Weekday() time.Weekday { return t.t.Weekday() }

// Date returns the calendar date part.
func (t Timestamp) Date() Date {
	return Date{Year: t.t.Year(), Month: t.t.Month(), Day: t.t.Day()}
}

// Clock returns the time-of-day part.
func (t Timestamp) Clock() Clock {
	return Clock{Hour: t.t.Hour(), Minute: t.t.Minute(), Second: t.t.Second()}
}

// SinceMidnight returns the elapsed time since the start of the day.
func (t Timestamp) SinceMidnight() time.Duration {
	return t.Clock().Duration() + time.Duration(t.t.Nanosecond())
}

// Time exposes the reading as a UTC time.Time for formatting.
func (t Timestamp) Time() time.Time {
	return t.t
}

func (t Timestamp) String() string {
	return t.t.Format("2006-01-02T15:04:05")
}
