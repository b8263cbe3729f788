// Package anim models decoded image animations and the clock that plays them.
package anim

import (
	"image"
	"time"
)

// Delays below minDelay are treated as defaultDelay, as browsers do for GIF
// delays of 0 and 1 centiseconds.
const (
	minDelay     = 20 * time.Millisecond
	defaultDelay = 100 * time.Millisecond
)

// LoopForever is the LoopCount of an animation that never stops.
const LoopForever = 0

// Animation is a fully composited sequence of frames. Every frame has the size
// of the logical screen so frames can be drawn without further composition.
type Animation struct {
	Frames []image.Image
	Delays []time.Duration
	// LoopCount follows image/gif: 0 loops forever, -1 plays once and n > 0
	// plays n+1 times.
	LoopCount int
}

// Still wraps a single image as a one-frame animation.
func Still(img image.Image) *Animation {
	return &Animation{
		Frames:    []image.Image{img},
		Delays:    []time.Duration{0},
		LoopCount: -1,
	}
}

// Bounds returns the size of the animation's frames.
func (a *Animation) Bounds() image.Rectangle {
	if len(a.Frames) == 0 {
		return image.Rectangle{}
	}
	return a.Frames[0].Bounds()
}

// IsAnimated reports whether the animation has more than one frame.
func (a *Animation) IsAnimated() bool {
	return len(a.Frames) > 1
}

// Delay returns how long frame i stays on screen.
func (a *Animation) Delay(i int) time.Duration {
	if i < 0 || i >= len(a.Delays) {
		return defaultDelay
	}
	d := a.Delays[i]
	if d < minDelay {
		return defaultDelay
	}
	return d
}

// Duration returns the length of one pass through all frames.
func (a *Animation) Duration() time.Duration {
	var total time.Duration
	for i := range a.Frames {
		total += a.Delay(i)
	}
	return total
}
