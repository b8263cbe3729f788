package viewer

// Button identifies a mouse button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// PointerEvent is a press, release or move of the pointer.
type PointerEvent struct {
	Position Point
	Button   Button
}

// WheelEvent carries a scroll delta in pixels. Positive Y is a scroll away
// from the user.
type WheelEvent struct {
	Position Point
	Delta    Point
}

// OnPointerDown starts a drag on a primary press.
func (v *Viewer) OnPointerDown(e PointerEvent) {
	if e.Button != ButtonPrimary {
		return
	}
	v.isMoving = true
	v.lastPosition = e.Position
}

// OnPointerUp ends a drag on a primary release. The last position is kept.
func (v *Viewer) OnPointerUp(e PointerEvent) {
	if e.Button != ButtonPrimary {
		return
	}
	v.isMoving = false
}

// OnPointerMove translates the image box by the pointer displacement since the
// previous press or move. It does nothing when no drag is in progress.
func (v *Viewer) OnPointerMove(e PointerEvent) {
	if !v.isMoving {
		return
	}
	d := e.Position.Sub(v.lastPosition)
	v.l += d.X
	v.t += d.Y
	v.lastPosition = e.Position
}

// OnWheel scales the image box by one zoom step and shifts it so the box
// center stays where it was. Only the sign of the vertical delta matters; the
// pointer position and horizontal delta are ignored.
func (v *Viewer) OnWheel(e WheelEvent) {
	rev := e.Delta.Y
	wOld, hOld := v.w, v.h

	switch {
	case rev > 0:
		v.w /= ZoomFactor
		v.h /= ZoomFactor
	case rev < 0:
		v.w *= ZoomFactor
		v.h *= ZoomFactor
	default:
		return
	}

	v.t += (hOld - v.h) / 2
	v.l += (wOld - v.w) / 2
}

// OnFocusLost ends a drag in progress when the viewer was created with
// WithResetOnFocusLoss. Otherwise a release that never arrives leaves the
// drag active until the next press.
func (v *Viewer) OnFocusLost() {
	if v.resetOnFocusLoss {
		v.isMoving = false
	}
}
