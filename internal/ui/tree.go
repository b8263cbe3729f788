// Package ui binds the viewer state to the ebiten toolkit: it polls input into
// events, emits the element tree for each frame and keeps per-element state
// such as animation playback alive between frames.
package ui

import (
	"image"

	"github.com/nicky-ayoub/gifview/internal/viewer"
)

// ImageID is the identity of the viewer's image element.
const ImageID = "gif"

// Handlers are the callbacks a container registers. Nil handlers are skipped.
type Handlers struct {
	// Button is the mouse button the press and release handlers listen to.
	Button    viewer.Button
	Down      func(viewer.PointerEvent)
	Up        func(viewer.PointerEvent)
	Move      func(viewer.PointerEvent)
	Wheel     func(viewer.WheelEvent)
	FocusLost func()
}

// ImageElement is an image drawn inside a box. Elements with the same ID in
// consecutive frames share decoded and playback state.
type ImageElement struct {
	ID     string
	Source string
	Box    viewer.Box
	Fit    ObjectFit
}

// Container is a rectangular region that receives pointer events and holds a
// single child.
type Container struct {
	Bounds   image.Rectangle
	Handlers Handlers
	Child    *ImageElement
}

// Render emits the tree for the current viewer state: a container covering
// bounds wired to the viewer's handlers, holding the image element.
func Render(v *viewer.Viewer, bounds image.Rectangle) *Container {
	return &Container{
		Bounds: bounds,
		Handlers: Handlers{
			Button:    viewer.ButtonPrimary,
			Down:      v.OnPointerDown,
			Up:        v.OnPointerUp,
			Move:      v.OnPointerMove,
			Wheel:     v.OnWheel,
			FocusLost: v.OnFocusLost,
		},
		Child: &ImageElement{
			ID:     ImageID,
			Source: v.Source(),
			Box:    v.Box(),
			Fit:    FitContain,
		},
	}
}

// Contains reports whether p lies inside the container.
func (c *Container) Contains(p viewer.Point) bool {
	return p.X >= float64(c.Bounds.Min.X) && p.X < float64(c.Bounds.Max.X) &&
		p.Y >= float64(c.Bounds.Min.Y) && p.Y < float64(c.Bounds.Max.Y)
}

// Dispatch delivers events to the container's handlers in order. Pointer and
// wheel events outside the bounds are dropped, as are presses and releases of
// other buttons than the registered one.
func (c *Container) Dispatch(events []Event) {
	h := c.Handlers
	for _, e := range events {
		if e.Kind == EventFocusLost {
			if h.FocusLost != nil {
				h.FocusLost()
			}
			continue
		}
		if !c.Contains(e.Position) {
			continue
		}

		pe := viewer.PointerEvent{Position: e.Position, Button: e.Button}
		switch e.Kind {
		case EventPointerDown:
			if h.Down != nil && e.Button == h.Button {
				h.Down(pe)
			}
		case EventPointerUp:
			if h.Up != nil && e.Button == h.Button {
				h.Up(pe)
			}
		case EventPointerMove:
			if h.Move != nil {
				h.Move(pe)
			}
		case EventWheel:
			if h.Wheel != nil {
				h.Wheel(viewer.WheelEvent{Position: e.Position, Delta: e.Delta})
			}
		}
	}
}
