package vitrine

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// wheelNotchDelta converts one ebiten wheel notch into the pixel-style wheel
// delta the viewport's sensitivity constant is calibrated for (one notch ≈
// a delta of 100, scroll up = negative).
const wheelNotchDelta = 100.0

// Input polls ebiten's mouse, wheel, and touch state each tick and drives
// the bound viewport's gesture handlers. All routing decisions live in
// internal methods that take plain values, so the state machine is testable
// without a running game loop.
//
// Bindings: pan starts on the secondary or middle mouse button, or on the
// primary button with Ctrl held. A single touch pans; two touches pinch.
// The two branches are mutually exclusive — changing touch count tears down
// the old gesture before starting the new one, never leaving stale pan or
// pinch baselines active.
type Input struct {
	view *Viewport

	mouseDown    bool
	mouseButton  MouseButton
	mousePanning bool

	touchPanning bool
	pinchActive  bool

	touchIDs []ebiten.TouchID
	touchBuf []Vec2
}

// NewInput creates an input router bound to the given viewport.
func NewInput(view *Viewport) *Input {
	return &Input{view: view}
}

// Update reads the current input state from ebiten and forwards it to the
// gesture state machine. Call once per tick, before Viewport.Update, so the
// interpolation step reads fresh targets.
func (in *Input) Update() {
	mods := readModifiers()

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	if _, wy := ebiten.Wheel(); wy != 0 {
		in.wheel(x, y, wy)
	}

	pressed, button := mouseButtonState()
	if in.mouseDown {
		button = in.mouseButton // keep the press-time button mid-interaction
	}
	in.mouse(x, y, pressed, button, mods)

	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	pts := in.touchBuf[:0]
	for _, id := range in.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		pts = append(pts, Vec2{float64(tx), float64(ty)})
	}
	in.touchBuf = pts
	in.touches(pts)
}

// Cancel tears down any active gesture. Call when the window loses focus or
// the pointer leaves the surface; it is treated as gesture end, not an error.
func (in *Input) Cancel() {
	if in.mousePanning || in.touchPanning {
		in.view.EndPan()
	}
	if in.pinchActive {
		in.view.EndPinch()
	}
	in.mouseDown = false
	in.mousePanning = false
	in.touchPanning = false
	in.pinchActive = false
}

// wheel forwards a wheel event at (x, y), converting notches to the
// viewport's delta convention.
func (in *Input) wheel(x, y, notches float64) {
	in.view.HandleWheel(x, y, -notches*wheelNotchDelta)
}

// isPanBinding reports whether a button press starts a pan.
func isPanBinding(button MouseButton, mods KeyModifiers) bool {
	if button == MouseButtonRight || button == MouseButtonMiddle {
		return true
	}
	return button == MouseButtonLeft && mods&ModCtrl != 0
}

// mouse runs the mouse-pointer state machine. The pan binding is evaluated
// at press time only; releasing the modifier mid-drag does not end the pan.
func (in *Input) mouse(x, y float64, pressed bool, button MouseButton, mods KeyModifiers) {
	switch {
	case pressed && !in.mouseDown:
		in.mouseDown = true
		in.mouseButton = button
		if isPanBinding(button, mods) {
			in.mousePanning = true
			in.view.BeginPan(x, y)
		}
	case pressed && in.mouseDown:
		if in.mousePanning {
			in.view.PanTo(x, y)
		}
	case !pressed && in.mouseDown:
		in.mouseDown = false
		if in.mousePanning {
			in.mousePanning = false
			in.view.EndPan()
		}
	}
}

// touches routes the current set of touch points: two or more pinch (extras
// beyond the first two are ignored), exactly one pans, zero ends whatever
// was active.
func (in *Input) touches(pts []Vec2) {
	switch {
	case len(pts) >= 2:
		if in.touchPanning {
			in.touchPanning = false
			in.view.EndPan()
		}
		d := pointDist(pts[0], pts[1])
		c := Vec2{(pts[0].X + pts[1].X) / 2, (pts[0].Y + pts[1].Y) / 2}
		if !in.pinchActive {
			in.pinchActive = true
			in.view.BeginPinch(d, c)
		} else {
			in.view.MovePinch(d, c)
		}

	case len(pts) == 1:
		if in.pinchActive {
			in.pinchActive = false
			in.view.EndPinch()
		}
		if !in.touchPanning {
			in.touchPanning = true
			in.view.BeginPan(pts[0].X, pts[0].Y)
		} else {
			in.view.PanTo(pts[0].X, pts[0].Y)
		}

	default:
		if in.pinchActive {
			in.pinchActive = false
			in.view.EndPinch()
		}
		if in.touchPanning {
			in.touchPanning = false
			in.view.EndPan()
		}
	}
}

func pointDist(a, b Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// mouseButtonState reads the currently pressed mouse button, if any.
func mouseButtonState() (pressed bool, button MouseButton) {
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		return true, MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		return true, MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		return true, MouseButtonMiddle
	}
	return false, MouseButtonLeft
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}
