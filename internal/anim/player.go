package anim

import "time"

// Player tracks which frame of an animation is showing. It is advanced by the
// caller with elapsed time, typically once per tick of the UI loop.
type Player struct {
	anim    *Animation
	pos     int
	elapsed time.Duration
	// remaining passes after the current one; -1 loops forever
	remainingLoops int
	done           bool
}

// NewPlayer creates a player positioned on the first frame of a.
func NewPlayer(a *Animation) *Player {
	p := &Player{anim: a}
	p.Reset()
	return p
}

// Reset rewinds the player to the first frame.
func (p *Player) Reset() {
	p.pos = 0
	p.elapsed = 0
	p.done = !p.anim.IsAnimated()

	switch {
	case p.anim.LoopCount == LoopForever:
		p.remainingLoops = -1
	case p.anim.LoopCount < 0:
		p.remainingLoops = 0
	default:
		p.remainingLoops = p.anim.LoopCount
	}
}

// Frame returns the index of the frame to display.
func (p *Player) Frame() int {
	return p.pos
}

// Done reports whether playback has finished. A finished player holds its last
// frame.
func (p *Player) Done() bool {
	return p.done
}

// Advance moves playback forward by dt and returns true if the visible frame
// changed.
func (p *Player) Advance(dt time.Duration) bool {
	if p.done || dt <= 0 {
		return false
	}

	start := p.pos
	p.elapsed += dt

	// A long stall skips whole passes instead of stepping through them.
	if p.remainingLoops < 0 {
		if pass := p.anim.Duration(); pass > 0 && p.elapsed > pass {
			p.elapsed %= pass
		}
	}

	for !p.done {
		delay := p.anim.Delay(p.pos)
		if p.elapsed < delay {
			break
		}
		p.elapsed -= delay

		if p.pos < len(p.anim.Frames)-1 {
			p.pos++
			continue
		}

		switch {
		case p.remainingLoops < 0:
			p.pos = 0
		case p.remainingLoops > 0:
			p.pos = 0
			p.remainingLoops--
		default:
			p.done = true
			p.elapsed = 0
		}
	}

	return p.pos != start
}
