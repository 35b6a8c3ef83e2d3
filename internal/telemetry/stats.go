package telemetry

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the strike rate of one mode.
type Summary struct {
	Mode    Mode
	N       int
	Rate    float64 // fraction of trials where lightning struck
	StdDev  float64
	StdErr  float64
	MeanAge float64 // seconds
}

// Summarize groups trials by mode, live first.
func Summarize(trials []Trial) []Summary {
	var out []Summary
	for _, mode := range []Mode{ModeLive, ModeReplay} {
		var fired, ages []float64
		for _, t := range trials {
			if t.Mode != mode {
				continue
			}
			x := 0.0
			if t.Fired {
				x = 1
			}
			fired = append(fired, x)
			ages = append(ages, t.AgeSec)
		}
		if len(fired) == 0 {
			continue
		}
		mean, std := stat.MeanStdDev(fired, nil)
		if math.IsNaN(std) {
			std = 0
		}
		out = append(out, Summary{
			Mode:    mode,
			N:       len(fired),
			Rate:    mean,
			StdDev:  std,
			StdErr:  stat.StdErr(std, float64(len(fired))),
			MeanAge: stat.Mean(ages, nil),
		})
	}
	return out
}

// Equivalent reports whether two rates differ by at most z combined
// standard errors. slack covers the case where both errors are zero.
func Equivalent(a, b Summary, z, slack float64) bool {
	se := math.Hypot(a.StdErr, b.StdErr)
	return math.Abs(a.Rate-b.Rate) <= z*se+slack
}

// Near reports whether s is within z standard errors of the expected rate.
func Near(s Summary, expected, z, slack float64) bool {
	se := s.StdErr
	if se == 0 {
		// An all-or-nothing sample: use the binomial error of the expectation.
		se = math.Sqrt(expected * (1 - expected) / float64(max(s.N, 1)))
	}
	return math.Abs(s.Rate-expected) <= z*se+slack
}
