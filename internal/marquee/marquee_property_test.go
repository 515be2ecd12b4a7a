package marquee

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestTickerProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("offset stays within [0, width)", prop.ForAll(
		func(width, speed float64, steps []int64) bool {
			tk, err := NewTicker(width, speed, false)
			if err != nil {
				return false
			}
			for _, ms := range steps {
				tk.Advance(time.Duration(ms) * time.Millisecond)
				if tk.Offset() < 0 || tk.Offset() >= tk.Width() {
					return false
				}
			}
			return true
		},
		gen.Float64Range(1, 5000),
		gen.Float64Range(0, 2000),
		gen.SliceOf(gen.Int64Range(-100, 60000)),
	))

	properties.Property("paused ticker never moves", prop.ForAll(
		func(width, speed float64, steps []int64) bool {
			tk, err := NewTicker(width, speed, false)
			if err != nil {
				return false
			}
			tk.Advance(1234 * time.Millisecond)
			before := tk.Offset()
			tk.Pause()
			for _, ms := range steps {
				tk.Advance(time.Duration(ms) * time.Millisecond)
			}
			return tk.Offset() == before
		},
		gen.Float64Range(1, 5000),
		gen.Float64Range(0, 2000),
		gen.SliceOf(gen.Int64Range(0, 60000)),
	))

	properties.Property("reverse mirrors position", prop.ForAll(
		func(width, speed float64, ms int64) bool {
			fwd, _ := NewTicker(width, speed, false)
			rev, _ := NewTicker(width, speed, true)
			fwd.Advance(time.Duration(ms) * time.Millisecond)
			rev.Advance(time.Duration(ms) * time.Millisecond)
			return fwd.Position() == -rev.Position() || (fwd.Position() == 0 && rev.Position() == 0)
		},
		gen.Float64Range(1, 5000),
		gen.Float64Range(0, 2000),
		gen.Int64Range(0, 600000),
	))

	properties.Property("repeat length", prop.ForAll(
		func(items []int, n int) bool {
			return len(Repeat(items, n)) == len(items)*n
		},
		gen.SliceOf(gen.Int()),
		gen.IntRange(1, 10),
	))

	properties.TestingRun(t)
}
