package telemetry

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// WriteTrials writes trials as CSV with a header row.
func WriteTrials(w io.Writer, trials []Trial) error {
	if err := gocsv.Marshal(trials, w); err != nil {
		return fmt.Errorf("writing trials: %w", err)
	}
	return nil
}

// ReadTrials parses CSV written by WriteTrials.
func ReadTrials(r io.Reader) ([]Trial, error) {
	var trials []Trial
	if err := gocsv.Unmarshal(r, &trials); err != nil {
		return nil, fmt.Errorf("reading trials: %w", err)
	}
	return trials, nil
}
