package timestamp

import (
	"fmt"
	"strings"
	"time"
)

// Date is a calendar day without a time of day.
type Date struct {
	Year  int        `cbor:"y" yaml:"year"`
	Month time.Month `cbor:"m" yaml:"month"`
	Day   int        `cbor:"d" yaml:"day"`
}

// At joins the date with a time of day.
func (d Date) At(c Clock) (Timestamp, error) {
	return New(d.Year, d.Month, d.Day, c.Hour, c.Minute, c.Second, 0)
}

// Valid reports whether the date exists on the calendar.
func (d Date) Valid() bool {
	_, err := d.At(Clock{})
	return err == nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Clock is a time of day with second precision.
type Clock struct {
	Hour   int `cbor:"h" yaml:"hour"`
	Minute int `cbor:"m" yaml:"minute"`
	Second int `cbor:"s" yaml:"second"`
}

// Duration returns the offset from midnight.
func (c Clock) Duration() time.Duration {
	return time.Duration(c.Hour)*time.Hour +
		time.Duration(c.Minute)*time.Minute +
		time.Duration(c.Second)*time.Second
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// WeekdaySet is a bit set indexed by time.Weekday.
type WeekdaySet uint8

// AllWeekdays has every day set.
const AllWeekdays WeekdaySet = 0x7f

// Has reports whether day is in the set.
func (s WeekdaySet) Has(day time.Weekday) bool {
	return s&(1<<uint(day)) != 0
}

// Toggle flips day.
func (s WeekdaySet) Toggle(day time.Weekday) WeekdaySet {
	return s ^ (1 << uint(day))
}

// With adds day.
func (s WeekdaySet) With(day time.Weekday) WeekdaySet {
	return s | (1 << uint(day))
}

// Empty reports whether no day is set.
func (s WeekdaySet) Empty() bool {
	return s&AllWeekdays == 0
}

// String renders the set Monday first, e.g. "MT-T---".
func (s WeekdaySet) String() string {
	var sb strings.Builder
	for i := range 7 {
		day := time.Weekday((i + 1) % 7)
		if s.Has(day) {
			sb.WriteByte(day.String()[0])
		} else {
			sb.WriteByte('-')
		}
	}
	return sb.String()
}
