package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/nicky-ayoub/gifview/internal/viewer"
)

// WheelLinePixels converts one wheel tick reported by the toolkit into pixels.
const WheelLinePixels = 16.0

// mouseButtons maps toolkit buttons to viewer buttons, primary first.
var mouseButtons = []struct {
	toolkit ebiten.MouseButton
	button  viewer.Button
}{
	{ebiten.MouseButtonLeft, viewer.ButtonPrimary},
	{ebiten.MouseButtonRight, viewer.ButtonSecondary},
	{ebiten.MouseButtonMiddle, viewer.ButtonMiddle},
}

// InputState holds the polled state of inputs for a single frame.
// This separates input polling from input handling logic.
type InputState struct {
	MouseX, MouseY int
	WheelX, WheelY float64

	// Buttons that went down or up since the previous frame.
	JustPressed  []viewer.Button
	JustReleased []viewer.Button

	Focused bool
}

// PollInput gathers all raw input for the current frame into an InputState.
func PollInput() InputState {
	mx, my := ebiten.CursorPosition()
	wx, wy := ebiten.Wheel()

	in := InputState{
		MouseX:  mx,
		MouseY:  my,
		WheelX:  wx,
		WheelY:  wy,
		Focused: ebiten.IsFocused(),
	}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.toolkit) {
			in.JustPressed = append(in.JustPressed, b.button)
		}
		if inpututil.IsMouseButtonJustReleased(b.toolkit) {
			in.JustReleased = append(in.JustReleased, b.button)
		}
	}
	return in
}

// EventKind identifies the type of an Event.
type EventKind int

const (
	EventPointerMove EventKind = iota
	EventPointerDown
	EventPointerUp
	EventWheel
	EventFocusLost
)

func (k EventKind) String() string {
	switch k {
	case EventPointerMove:
		return "move"
	case EventPointerDown:
		return "down"
	case EventPointerUp:
		return "up"
	case EventWheel:
		return "wheel"
	case EventFocusLost:
		return "blur"
	}
	return "unknown"
}

// Event is a discrete input event derived from polled state.
type Event struct {
	Kind     EventKind
	Position viewer.Point
	Button   viewer.Button
	// Delta is the wheel offset in pixels.
	Delta viewer.Point
}

// Poller turns consecutive InputStates into events. The zero value is ready
// to use.
type Poller struct {
	last    viewer.Point
	started bool
	focused bool
}

// Events returns the events of one frame in delivery order: move, presses,
// releases, wheel, then focus loss.
func (p *Poller) Events(in InputState) []Event {
	pos := viewer.Point{X: float64(in.MouseX), Y: float64(in.MouseY)}
	var events []Event

	if p.started && pos != p.last {
		events = append(events, Event{Kind: EventPointerMove, Position: pos})
	}
	for _, b := range in.JustPressed {
		events = append(events, Event{Kind: EventPointerDown, Position: pos, Button: b})
	}
	for _, b := range in.JustReleased {
		events = append(events, Event{Kind: EventPointerUp, Position: pos, Button: b})
	}
	if in.WheelX != 0 || in.WheelY != 0 {
		events = append(events, Event{
			Kind:     EventWheel,
			Position: pos,
			Delta:    viewer.Point{X: in.WheelX * WheelLinePixels, Y: in.WheelY * WheelLinePixels},
		})
	}
	if p.started && p.focused && !in.Focused {
		events = append(events, Event{Kind: EventFocusLost, Position: pos})
	}

	p.last = pos
	p.focused = in.Focused
	p.started = true
	return events
}
