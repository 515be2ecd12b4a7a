// Package marquee implements the scrolling ticker used for the export country strip.
//
// The strip holds its items twice in a row. Scrolling it left by offset pixels,
// where offset wraps modulo the width of one copy, gives an endless loop.
// The home page uses a Ticker to pick the strip's starting phase; static/js/marquee.js
// runs the same state machine in the browser from that phase on.
package marquee

import (
	"errors"
	"math"
	"time"
)

var (
	ErrInvalidWidth = errors.New("marquee: width must be positive")
	ErrInvalidSpeed = errors.New("marquee: speed must not be negative")
)

// Ticker tracks the scroll offset of one marquee strip
type Ticker struct {
	width   float64
	speed   float64
	offset  float64
	paused  bool
	reverse bool
}

// NewTicker creates a ticker for a strip of width pixels moving at speed pixels per second.
// reverse scrolls to the right, used for right-to-left pages.
func NewTicker(width, speed float64, reverse bool) (*Ticker, error) {
	if !(width > 0) || math.IsInf(width, 0) {
		return nil, ErrInvalidWidth
	}
	if !(speed >= 0) || math.IsInf(speed, 0) {
		return nil, ErrInvalidSpeed
	}
	return &Ticker{width: width, speed: speed, reverse: reverse}, nil
}

// Advance moves the strip by speed*dt and wraps the offset into [0, width).
// Nothing moves while paused or for a non-positive dt.
func (t *Ticker) Advance(dt time.Duration) {
	if t.paused || dt <= 0 {
		return
	}
	t.offset = wrap(t.offset+t.speed*dt.Seconds(), t.width)
}

func wrap(v, width float64) float64 {
	v = math.Mod(v, width)
	if v < 0 {
		v += width
	}
	// Mod can round up to width for values just below a multiple of it
	if v >= width {
		v = 0
	}
	return v
}

// Position returns the translateX value for the strip in pixels
func (t *Ticker) Position() float64 {
	if t.reverse {
		return t.offset
	}
	if t.offset == 0 {
		return 0
	}
	return -t.offset
}

// Offset returns the distance scrolled within the current loop
func (t *Ticker) Offset() float64 { return t.offset }

// Width returns the width of one copy of the items
func (t *Ticker) Width() float64 { return t.width }

// Speed returns the speed in pixels per second
func (t *Ticker) Speed() float64 { return t.speed }

func (t *Ticker) Pause()         { t.paused = true }
func (t *Ticker) Resume()        { t.paused = false }
func (t *Ticker) Paused() bool   { return t.paused }
func (t *Ticker) Reset()         { t.offset = 0 }
func (t *Ticker) Reversed() bool { return t.reverse }

// SetWidth changes the strip width, for example after a resize, keeping the offset in range
func (t *Ticker) SetWidth(width float64) error {
	if !(width > 0) || math.IsInf(width, 0) {
		return ErrInvalidWidth
	}
	t.width = width
	t.offset = wrap(t.offset, width)
	return nil
}

// LoopDuration is how long one full loop takes at speed. A zero speed gives zero, meaning no animation.
func LoopDuration(width, speed float64) time.Duration {
	if width <= 0 || speed <= 0 {
		return 0
	}
	return time.Duration(width / speed * float64(time.Second))
}

// Repeat returns items concatenated n times. n below 1 is treated as 1.
func Repeat[T any](items []T, n int) []T {
	if n < 1 {
		n = 1
	}
	out := make([]T, 0, len(items)*n)
	for i := 0; i < n; i++ {
		out = append(out, items...)
	}
	return out
}
