// Package viewer holds the pan and zoom state of the displayed image and the
// pointer handlers that mutate it.
package viewer

// Default geometry of the image box when the viewer is created.
const (
	DefaultWidth  = 256.0
	DefaultHeight = 256.0
)

// ZoomFactor is the size multiplier applied for one wheel step away from the
// user (zoom out). A step toward the image divides by it instead.
const ZoomFactor = 0.9

// Point is a position or displacement in window pixels.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Box is the image box: its top-left offset inside the parent and its size.
type Box struct {
	Left, Top     float64
	Width, Height float64
}

// Center returns the midpoint of the box.
func (b Box) Center() Point {
	return Point{X: b.Left + b.Width/2, Y: b.Top + b.Height/2}
}

// State is a snapshot of the viewer fields.
type State struct {
	Box          Box
	IsMoving     bool
	LastPosition Point
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithResetOnFocusLoss makes OnFocusLost end a drag in progress.
func WithResetOnFocusLoss(enabled bool) Option {
	return func(v *Viewer) {
		v.resetOnFocusLoss = enabled
	}
}

// Viewer is the interactive transform of a single image. It is owned by the UI
// thread and is not safe for concurrent use.
type Viewer struct {
	source string

	l, t float64
	w, h float64

	isMoving     bool
	lastPosition Point

	resetOnFocusLoss bool
}

// New creates a viewer for the image at source with the default box.
func New(source string, opts ...Option) *Viewer {
	v := &Viewer{
		source: source,
		w:      DefaultWidth,
		h:      DefaultHeight,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Source returns the image path the viewer was created with.
func (v *Viewer) Source() string {
	return v.source
}

// Offset returns the left and top margin of the image box.
func (v *Viewer) Offset() Point {
	return Point{X: v.l, Y: v.t}
}

// Size returns the displayed width and height of the image box.
func (v *Viewer) Size() (w, h float64) {
	return v.w, v.h
}

// Box returns the current image box.
func (v *Viewer) Box() Box {
	return Box{Left: v.l, Top: v.t, Width: v.w, Height: v.h}
}

// IsMoving reports whether a primary-button drag is in progress.
func (v *Viewer) IsMoving() bool {
	return v.isMoving
}

// LastPosition returns the pointer position recorded by the last press or
// drag move. It is only meaningful while IsMoving is true.
func (v *Viewer) LastPosition() Point {
	return v.lastPosition
}

// Snapshot returns a copy of the current state.
func (v *Viewer) Snapshot() State {
	return State{
		Box:          v.Box(),
		IsMoving:     v.isMoving,
		LastPosition: v.lastPosition,
	}
}
