package pet

// DeathCause records how a pet left. DeathNone means alive.
type DeathCause uint8

const (
	DeathNone DeathCause = iota
	DeathLightningStrike
	DeathStarvation
	DeathOldAge
	DeathToxicShock
	DeathLeaving
	DeathIllness
	DeathHypothermia
	DeathMovedOut // parent handed the home to its hatchling
)

func (c DeathCause) String() string {
	switch c {
	case DeathNone:
		return "Alive"
	case DeathLightningStrike:
		return "Lightning"
	case DeathStarvation:
		return "Starvation"
	case DeathOldAge:
		return "Old Age"
	case DeathToxicShock:
		return "Toxic Shock"
	case DeathLeaving:
		return "Ran Away"
	case DeathIllness:
		return "Illness"
	case DeathHypothermia:
		return "Hypothermia"
	case DeathMovedOut:
		return "Moved Out"
	default:
		return "Unknown"
	}
}

// MarshalYAML renders the cause by name.
func (c DeathCause) MarshalYAML() (any, error) {
	return c.String(), nil
}
