package anim

import (
	"image"
	"testing"
	"time"
)

func frames(n int) []image.Image {
	out := make([]image.Image, n)
	for i := range out {
		out[i] = image.NewRGBA(image.Rect(0, 0, 4, 4))
	}
	return out
}

func delays(ms ...int) []time.Duration {
	out := make([]time.Duration, len(ms))
	for i, m := range ms {
		out[i] = time.Duration(m) * time.Millisecond
	}
	return out
}

func TestDelayNormalization(t *testing.T) {
	a := &Animation{Frames: frames(4), Delays: delays(0, 10, 20, 500)}

	tests := []struct {
		frame int
		want  time.Duration
	}{
		{0, 100 * time.Millisecond},
		{1, 100 * time.Millisecond},
		{2, 20 * time.Millisecond},
		{3, 500 * time.Millisecond},
		{9, 100 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := a.Delay(tt.frame); got != tt.want {
			t.Errorf("frame %d: expected delay %v, got %v", tt.frame, tt.want, got)
		}
	}
	if got := a.Duration(); got != 720*time.Millisecond {
		t.Errorf("expected duration 720ms, got %v", got)
	}
}

func TestStillNeverAdvances(t *testing.T) {
	p := NewPlayer(Still(image.NewRGBA(image.Rect(0, 0, 2, 2))))

	if !p.Done() {
		t.Error("still image should be done immediately")
	}
	if p.Advance(time.Hour) {
		t.Error("still image should not change frame")
	}
	if p.Frame() != 0 {
		t.Errorf("expected frame 0, got %d", p.Frame())
	}
}

func TestAdvanceStepsThroughFrames(t *testing.T) {
	a := &Animation{Frames: frames(3), Delays: delays(100, 200, 300)}
	p := NewPlayer(a)

	steps := []struct {
		dt      time.Duration
		frame   int
		changed bool
	}{
		{50 * time.Millisecond, 0, false},
		{50 * time.Millisecond, 1, true},
		{199 * time.Millisecond, 1, false},
		{1 * time.Millisecond, 2, true},
		{300 * time.Millisecond, 0, true},
	}
	for i, s := range steps {
		changed := p.Advance(s.dt)
		if changed != s.changed || p.Frame() != s.frame {
			t.Errorf("step %d: expected frame %d changed %v, got frame %d changed %v",
				i, s.frame, s.changed, p.Frame(), changed)
		}
	}
}

func TestLoopForeverSkipsWholePasses(t *testing.T) {
	a := &Animation{Frames: frames(2), Delays: delays(100, 100), LoopCount: LoopForever}
	p := NewPlayer(a)

	p.Advance(10*time.Second + 150*time.Millisecond)

	if p.Frame() != 1 {
		t.Errorf("expected frame 1, got %d", p.Frame())
	}
	if p.Done() {
		t.Error("endless animation should never finish")
	}
}

func TestLoopCounts(t *testing.T) {
	tests := []struct {
		name      string
		loopCount int
		passes    int
	}{
		{"play once", -1, 1},
		{"loop once", 1, 2},
		{"loop three times", 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Animation{Frames: frames(2), Delays: delays(100, 100), LoopCount: tt.loopCount}
			p := NewPlayer(a)

			// Stop just short of the end of the allowed passes.
			p.Advance(time.Duration(tt.passes)*200*time.Millisecond - time.Millisecond)
			if p.Done() {
				t.Fatal("finished too early")
			}
			p.Advance(time.Millisecond)
			if !p.Done() {
				t.Fatal("expected playback to finish")
			}
			if p.Frame() != 1 {
				t.Errorf("expected to hold last frame, got %d", p.Frame())
			}
			if p.Advance(time.Second) {
				t.Error("finished player should not change frame")
			}

			p.Reset()
			if p.Done() || p.Frame() != 0 {
				t.Errorf("reset should rewind, got frame %d done %v", p.Frame(), p.Done())
			}
		})
	}
}

func TestBounds(t *testing.T) {
	a := &Animation{Frames: frames(2)}
	if a.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Errorf("unexpected bounds %v", a.Bounds())
	}
	if (&Animation{}).Bounds() != (image.Rectangle{}) {
		t.Error("empty animation should have empty bounds")
	}
}
