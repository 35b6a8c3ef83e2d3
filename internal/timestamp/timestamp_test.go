package timestamp

import (
	"errors"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		day     int
		hour    int
		minute  int
		second  int
		nano    int
		wantErr bool
	}{
		{"new year", 2025, time.January, 1, 0, 0, 0, 0, false},
		{"leap day", 2024, time.February, 29, 12, 30, 0, 0, false},
		{"not leap", 2025, time.February, 29, 0, 0, 0, 0, true},
		{"feb 30", 2024, time.February, 30, 0, 0, 0, 0, true},
		{"month 13", 2025, 13, 1, 0, 0, 0, 0, true},
		{"month 0", 2025, 0, 1, 0, 0, 0, 0, true},
		{"hour 24", 2025, time.March, 1, 24, 0, 0, 0, true},
		{"minute 60", 2025, time.March, 1, 0, 60, 0, 0, true},
		{"second 60", 2025, time.March, 1, 0, 0, 60, 0, true},
		{"nanos overflow", 2025, time.March, 1, 0, 0, 0, 1_000_000_000, true},
		{"year 0", 0, time.March, 1, 0, 0, 0, 0, true},
		{"max nanos", 2025, time.December, 31, 23, 59, 59, 999_999_999, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.year, tt.month, tt.day, tt.hour, tt.minute, tt.second, tt.nano)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalid) {
				t.Errorf("New() error = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestArithmetic(t *testing.T) {
	start := MustNew(2025, time.January, 1, 0, 0, 0, 0)
	later := start.Add(72 * time.Hour)

	if got := later.Sub(start); got != 72*time.Hour {
		t.Errorf("Sub() = %v, expected 72h", got)
	}
	if got := start.Sub(later); got != 0 {
		t.Errorf("Sub() of earlier = %v, expected 0", got)
	}
	if !start.Before(later) || !later.After(start) {
		t.Error("ordering broken")
	}
	if start.Compare(later) != -1 || later.Compare(start) != 1 || start.Compare(start) != 0 {
		t.Error("Compare() broken")
	}
	if got := later.Date(); got != (Date{Year: 2025, Month: time.January, Day: 4}) {
		t.Errorf("Date() = %v", got)
	}
}

func TestSeedUsesSubSecond(t *testing.T) {
	a := MustNew(2025, time.January, 1, 0, 0, 0, 0)
	b := MustNew(2025, time.January, 1, 0, 0, 0, 1)

	if a.Seed() == b.Seed() {
		t.Error("Seed() should differ for readings a nanosecond apart")
	}
	if a.Seed() != MustNew(2025, time.January, 1, 0, 0, 0, 0).Seed() {
		t.Error("Seed() should be stable")
	}
}

func TestCBORRoundTrip(t *testing.T) {
	ts := MustNew(2031, time.July, 14, 6, 5, 4, 123456789)

	data, err := cbor.Marshal(ts)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	var arr []int64
	if err := cbor.Unmarshal(data, &arr); err != nil {
		t.Fatalf("payload is not an array: %v", err)
	}
	if len(arr) != 7 {
		t.Fatalf("encoded %d fields, expected 7", len(arr))
	}

	var back Timestamp
	if err := cbor.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if !back.Equal(ts) {
		t.Errorf("round trip = %v, expected %v", back, ts)
	}
}

func TestCBORRejectsBadDate(t *testing.T) {
	data, err := cbor.Marshal([]int64{2025, 2, 30, 0, 0, 0, 0})
	if err != nil {
		t.Fatal(err)
	}

	var ts Timestamp
	if err := cbor.Unmarshal(data, &ts); !errors.Is(err, ErrInvalid) {
		t.Errorf("Unmarshal() error = %v, expected ErrInvalid", err)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	ts := MustNew(2025, time.March, 9, 22, 15, 0, 0)

	out, err := yaml.Marshal(struct {
		At Timestamp `yaml:"at"`
	}{ts})
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	var back struct {
		At Timestamp `yaml:"at"`
	}
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if !back.At.Equal(ts) {
		t.Errorf("round trip = %v, expected %v", back.At, ts)
	}
}

func TestWeekdaySet(t *testing.T) {
	var s WeekdaySet
	if !s.Empty() {
		t.Error("zero set should be empty")
	}

	s = s.With(time.Monday).With(time.Friday)
	if !s.Has(time.Monday) || !s.Has(time.Friday) || s.Has(time.Sunday) {
		t.Errorf("Has() wrong for %v", s)
	}
	if got := s.String(); got != "M---F--" {
		t.Errorf("String() = %q, expected %q", got, "M---F--")
	}

	s = s.Toggle(time.Monday)
	if s.Has(time.Monday) {
		t.Error("Toggle() should clear Monday")
	}
}
