package timestamp

import (
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Fields is the portable form of a Timestamp: seven independent integers
// rather than an epoch, so encodings do not depend on word size or on the
// platform having a calendar-aware clock.
type Fields struct {
	_          struct{} `cbor:",toarray"`
	Year       int32
	Month      uint8
	Day        uint8
	Hour       uint8
	Minute     uint8
	Second     uint8
	Nanosecond uint32
}

// Fields splits t into its calendar fields.
func (t Timestamp) Fields() Fields {
	return Fields{
		Year:       int32(t.t.Year()),
		Month:      uint8(t.t.Month()),
		Day:        uint8(t.t.Day()),
		Hour:       uint8(t.t.Hour()),
		Minute:     uint8(t.t.Minute()),
		Second:     uint8(t.t.Second()),
		Nanosecond: uint32(t.t.Nanosecond()),
	}
}

// FromFields validates f and rebuilds the Timestamp.
func FromFields(f Fields) (Timestamp, error) {
	return New(int(f.Year), time.Month(f.Month), int(f.Day),
		int(f.Hour), int(f.Minute), int(f.Second), int(f.Nanosecond))
}

// MarshalCBOR encodes t as a 7-element array.
func (t Timestamp) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(t.Fields())
}

// UnmarshalCBOR decodes and validates a 7-element array.
func (t *Timestamp) UnmarshalCBOR(data []byte) error {
	var f Fields
	if err := cbor.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	ts, err := FromFields(f)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}

const yamlLayout = "2006-01-02T15:04:05.999999999"

// MarshalYAML renders a readable form for save inspection.
func (t Timestamp) MarshalYAML() (any, error) {
	return t.t.Format(yamlLayout), nil
}

// UnmarshalYAML accepts the form written by MarshalYAML.
func (t *Timestamp) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := time.Parse(yamlLayout, node.Value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	*t = FromTime(parsed)
	return nil
}
