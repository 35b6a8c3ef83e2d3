package config

import (
	"fmt"
	"strings"
)

// SpeedPreset names a simulation time scale.
type SpeedPreset string

const (
	SpeedRealtime SpeedPreset = "realtime"
	SpeedBrisk    SpeedPreset = "brisk"
	SpeedTurbo    SpeedPreset = "turbo"
)

// ParseSpeedPreset converts a string to a SpeedPreset.
// An empty string means realtime.
func ParseSpeedPreset(s string) (SpeedPreset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "realtime", "normal":
		return SpeedRealtime, nil
	case "brisk", "fast":
		return SpeedBrisk, nil
	case "turbo":
		return SpeedTurbo, nil
	default:
		return SpeedRealtime, fmt.Errorf("unknown speed preset %q", s)
	}
}

// TimeScale returns the multiplier applied to every simulation delta.
func (p SpeedPreset) TimeScale() float64 {
	switch p {
	case SpeedBrisk:
		return 10
	case SpeedTurbo:
		return 60 // An hour per minute
	default:
		return 1
	}
}

// ValidPresets returns all preset names for help text.
func ValidPresets() []string {
	return []string{string(SpeedRealtime), string(SpeedBrisk), string(SpeedTurbo)}
}
