package ui

import (
	"image"
	"math"
	"testing"

	"github.com/nicky-ayoub/gifview/internal/viewer"
)

var window = image.Rect(0, 0, 640, 480)

func at(kind EventKind, x, y float64) Event {
	return Event{Kind: kind, Position: viewer.Point{X: x, Y: y}}
}

func TestRenderBindsState(t *testing.T) {
	v := viewer.New("/tmp/cat.gif")
	v.OnPointerDown(viewer.PointerEvent{Position: viewer.Point{X: 1, Y: 1}})
	v.OnPointerMove(viewer.PointerEvent{Position: viewer.Point{X: 31, Y: 11}})

	c := Render(v, window)

	if c.Bounds != window {
		t.Errorf("container should cover the window, got %v", c.Bounds)
	}
	want := ImageElement{
		ID:     ImageID,
		Source: "/tmp/cat.gif",
		Box:    viewer.Box{Left: 30, Top: 10, Width: 256, Height: 256},
		Fit:    FitContain,
	}
	if *c.Child != want {
		t.Errorf("expected child %+v, got %+v", want, *c.Child)
	}
}

func TestRenderIsASnapshot(t *testing.T) {
	v := viewer.New("cat.gif")
	c := Render(v, window)

	v.OnWheel(viewer.WheelEvent{Delta: viewer.Point{Y: 1}})

	if c.Child.Box.Width != 256 {
		t.Error("an emitted tree should not change with later state")
	}
	if Render(v, window).Child.Box.Width == 256 {
		t.Error("a new render should reflect the zoom")
	}
}

func TestDispatchDrivesViewer(t *testing.T) {
	v := viewer.New("cat.gif")

	Render(v, window).Dispatch([]Event{
		at(EventPointerDown, 10, 10),
		at(EventPointerMove, 15, 20),
		at(EventPointerUp, 15, 20),
		{Kind: EventWheel, Position: viewer.Point{X: 300, Y: 300}, Delta: viewer.Point{Y: 16}},
	})

	box := v.Box()
	grown := 256 / viewer.ZoomFactor
	if math.Abs(box.Width-grown) > 1e-9 {
		t.Errorf("expected width %f, got %f", grown, box.Width)
	}
	if math.Abs(box.Left-(5+(256-grown)/2)) > 1e-9 || math.Abs(box.Top-(10+(256-grown)/2)) > 1e-9 {
		t.Errorf("unexpected offset %+v", box)
	}
	if v.IsMoving() {
		t.Error("drag should have ended")
	}
}

func TestDispatchFiltersButtons(t *testing.T) {
	v := viewer.New("cat.gif")
	c := Render(v, window)

	c.Dispatch([]Event{
		{Kind: EventPointerDown, Position: viewer.Point{X: 5, Y: 5}, Button: viewer.ButtonSecondary},
		at(EventPointerMove, 50, 50),
	})

	if v.IsMoving() || v.Offset() != (viewer.Point{}) {
		t.Errorf("secondary button should not drag, state %+v", v.Snapshot())
	}
}

func TestDispatchDropsEventsOutsideBounds(t *testing.T) {
	v := viewer.New("cat.gif")
	c := Render(v, window)

	c.Dispatch([]Event{
		at(EventPointerDown, 100, 100),
		at(EventPointerMove, 120, 100),
		at(EventPointerMove, 700, 100),
		at(EventPointerUp, 700, 100),
	})

	// The release happened outside the window, so the drag is still active.
	if !v.IsMoving() {
		t.Error("expected the drag to remain active after an outside release")
	}
	if v.Offset() != (viewer.Point{X: 20}) {
		t.Errorf("expected offset {20 0}, got %+v", v.Offset())
	}

	c.Dispatch([]Event{{Kind: EventWheel, Position: viewer.Point{X: -1, Y: 0}, Delta: viewer.Point{Y: 1}}})
	if w, _ := v.Size(); w != viewer.DefaultWidth {
		t.Errorf("wheel outside the window should be ignored, width %f", w)
	}
}

func TestDispatchFocusLoss(t *testing.T) {
	for _, reset := range []bool{false, true} {
		v := viewer.New("cat.gif", viewer.WithResetOnFocusLoss(reset))
		c := Render(v, window)

		c.Dispatch([]Event{at(EventPointerDown, 1, 1), {Kind: EventFocusLost, Position: viewer.Point{X: -50, Y: -50}}})

		if v.IsMoving() == reset {
			t.Errorf("reset %v: unexpected moving state %v", reset, v.IsMoving())
		}
	}
}

func TestDispatchSkipsNilHandlers(t *testing.T) {
	c := &Container{Bounds: window}
	c.Dispatch([]Event{
		at(EventPointerDown, 1, 1),
		at(EventPointerMove, 2, 2),
		at(EventPointerUp, 2, 2),
		at(EventWheel, 2, 2),
		at(EventFocusLost, 2, 2),
	})
}
