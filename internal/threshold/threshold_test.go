package threshold

import (
	"errors"
	"testing"
	"time"
)

const day = 24 * time.Hour

func starvationTable() Table[time.Duration] {
	return MustNew(
		Entry[time.Duration]{Below: 8 * time.Hour, Probability: 0},
		Entry[time.Duration]{Below: 16 * time.Hour, Probability: 0.025},
		Entry[time.Duration]{Below: day, Probability: 0.05},
		Entry[time.Duration]{Below: MaxDuration, Probability: 0.1},
	)
}

func TestLookup(t *testing.T) {
	table := starvationTable()

	tests := []struct {
		name string
		in   time.Duration
		want float32
	}{
		{"zero", 0, 0},
		{"7h", 7 * time.Hour, 0},
		{"at 8h bound", 8 * time.Hour, 0.025},
		{"10h", 10 * time.Hour, 0.025},
		{"20h", 20 * time.Hour, 0.05},
		{"2d", 2 * day, 0.1},
		{"at sentinel", MaxDuration, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.Lookup(tt.in); got != tt.want {
				t.Errorf("Lookup(%v) = %v, expected %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLastBoundIsCeiling(t *testing.T) {
	// The final bound is a sentinel even when it is small.
	table := MustNew(
		Entry[int]{Below: 1, Probability: 0.1},
		Entry[int]{Below: 3, Probability: 0.5},
	)
	if got := table.Lookup(100); got != 0.5 {
		t.Errorf("Lookup(100) = %v, expected 0.5", got)
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New[int](); !errors.Is(err, ErrEmpty) {
		t.Errorf("New() error = %v, expected ErrEmpty", err)
	}

	_, err := New(
		Entry[int]{Below: 3, Probability: 0.1},
		Entry[int]{Below: 3, Probability: 0.2},
	)
	if !errors.Is(err, ErrUnordered) {
		t.Errorf("New() error = %v, expected ErrUnordered", err)
	}
}

type fixedSource float32

func (f fixedSource) Float32() float32 { return float32(f) }

func TestRoll(t *testing.T) {
	table := starvationTable()

	if table.Roll(fixedSource(0), 7*time.Hour) {
		t.Error("zero probability must never fire")
	}
	if !table.Roll(fixedSource(0.09), 2*day) {
		t.Error("0.09 < 0.1 should fire")
	}
	if table.Roll(fixedSource(0.1), 2*day) {
		t.Error("0.1 is not below 0.1")
	}
}

func TestNeverAndFlat(t *testing.T) {
	if Never[int]().Lookup(5) != 0 {
		t.Error("Never() should be zero everywhere")
	}
	if Flat[time.Duration](0.25).Lookup(day) != 0.25 {
		t.Error("Flat() should be constant")
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		name     string
		chance   float64
		per      time.Duration
		interval time.Duration
		want     float32
	}{
		{"hourly to 5m", 0.12, time.Hour, 5 * time.Minute, 0.01},
		{"daily to hour", 0.24, day, time.Hour, 0.01},
		{"clamped", 2, time.Minute, time.Hour, 1},
		{"zero per", 0.5, 0, time.Hour, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scale(tt.chance, tt.per, tt.interval)
			if diff := got - tt.want; diff > 1e-6 || diff < -1e-6 {
				t.Errorf("Scale() = %v, expected %v", got, tt.want)
			}
		})
	}
}
