package vitrine

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// DefaultWheelSensitivity converts a wheel delta (in DOM-style pixel
	// units, ~100 per notch) into a relative scale change.
	DefaultWheelSensitivity = 0.002

	// minScaleRelaxation lets the user zoom slightly past fit-to-content.
	minScaleRelaxation = 0.9

	// focusEpsilon is the |scale - targetScale| threshold below which a zoom
	// is considered settled and the focus pin is released.
	focusEpsilon = 0.01
)

// focusPin keeps a world point projected exactly onto a screen point while
// the scale interpolates, so the content under the pointer stays put during
// a zoom.
type focusPin struct {
	screen Vec2
	world  Vec2
}

// flightAnim holds the active FlyTo tweens for the camera target offset.
type flightAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Viewport owns the camera: a smoothly interpolated scale and offset mapping
// world space onto the drawing surface (screen = world*scale + offset).
//
// Input handlers (wheel, pan, pinch) mutate target state only; Update is the
// sole writer of the current scale and offset. Handlers are therefore safe
// to invoke at arbitrary rates between ticks.
type Viewport struct {
	// Speed is the fraction of remaining distance covered per Update tick.
	Speed float64
	// WheelSensitivity scales wheel deltas into relative zoom changes.
	WheelSensitivity float64

	scale        float64
	targetScale  float64
	offset       Vec2
	targetOffset Vec2

	fitScale float64
	minScale float64
	maxScale float64

	surfaceW float64
	surfaceH float64
	content  ContentBounds

	lockVerticalPan bool

	focus  *focusPin
	flight *flightAnim

	panning         bool
	panStartPointer Vec2
	panStartOffset  Vec2

	pinching        bool
	pinchStartDist  float64
	pinchStartScale float64
	pinchStartY     float64
}

// NewViewport creates a viewport for a drawing surface of the given size in
// device pixels. Scale limits use safe fallbacks until SetContentBounds is
// called.
func NewViewport(surfaceW, surfaceH float64) *Viewport {
	v := &Viewport{
		Speed:            DefaultStepSpeed,
		WheelSensitivity: DefaultWheelSensitivity,
		scale:            1,
		targetScale:      1,
		surfaceW:         surfaceW,
		surfaceH:         surfaceH,
	}
	v.recomputeScaleLimits()
	return v
}

// SetContentBounds replaces the content geometry and recomputes the derived
// scale limits. Idempotent; call whenever layout changes the content extent.
func (v *Viewport) SetContentBounds(b ContentBounds) {
	v.content = b
	v.recomputeScaleLimits()
}

// SetSurfaceSize updates the drawing-surface size and recomputes scale
// limits. Call from the host's resize/layout path.
func (v *Viewport) SetSurfaceSize(w, h float64) {
	v.surfaceW = w
	v.surfaceH = h
	v.recomputeScaleLimits()
}

// SetLockVerticalPan freezes the vertical pan component. While locked, drag
// and pinch ignore vertical pointer movement.
func (v *Viewport) SetLockVerticalPan(lock bool) {
	v.lockVerticalPan = lock
}

// recomputeScaleLimits derives fit/min/max scale from content and surface
// geometry. Zero or missing dimensions fall back to safe constants rather
// than dividing by zero.
func (v *Viewport) recomputeScaleLimits() {
	if v.content.Width <= 0 || v.content.Height <= 0 || v.surfaceW <= 0 || v.surfaceH <= 0 {
		v.fitScale = 1
		v.maxScale = 2
		v.minScale = minScaleRelaxation * v.fitScale
		return
	}
	v.fitScale = math.Min(v.surfaceW/v.content.Width, v.surfaceH/v.content.Height)
	v.minScale = minScaleRelaxation * v.fitScale
	if v.content.MaxItemHeight > 0 {
		v.maxScale = (v.surfaceH * 2) / v.content.MaxItemHeight
	} else {
		v.maxScale = 200 * v.fitScale
	}
}

// Update advances the camera one tick: scale steps toward its target, then
// the offset either follows an active zoom-focus pin or steps toward its own
// target. Call once per rendered frame, after input has been processed.
func (v *Viewport) Update() {
	if v.flight != nil {
		v.advanceFlight()
	}

	v.scale += (v.targetScale - v.scale) * v.Speed

	if v.focus != nil {
		// Keep the pinned world point projected onto the pinned screen point
		// at the current (not target) scale.
		v.offset = v.focus.screen.Sub(v.focus.world.Scale(v.scale))
		if math.Abs(v.scale-v.targetScale) < focusEpsilon {
			// Zoom settled: release the pin and resync the offset target so
			// the next tick doesn't snap back to a stale destination.
			v.focus = nil
			v.targetOffset = v.offset
		}
		return
	}

	v.offset.X += (v.targetOffset.X - v.offset.X) * v.Speed
	v.offset.Y += (v.targetOffset.Y - v.offset.Y) * v.Speed
}

// advanceFlight moves the target offset along the active FlyTo tweens.
func (v *Viewport) advanceFlight() {
	dt := float32(1.0 / float64(ebiten.TPS()))
	f := v.flight
	if !f.doneX {
		val, done := f.tweenX.Update(dt)
		v.targetOffset.X = float64(val)
		f.doneX = done
	}
	if !f.doneY {
		val, done := f.tweenY.Update(dt)
		v.targetOffset.Y = float64(val)
		f.doneY = done
	}
	if f.doneX && f.doneY {
		v.flight = nil
	}
}

// HandleWheel applies a wheel-zoom event at screen position (x, y) with the
// given vertical wheel delta (negative = scroll up = zoom in). The world
// point currently under the pointer is pinned so it stays fixed while the
// zoom animates.
func (v *Viewport) HandleWheel(x, y, deltaY float64) {
	delta := -deltaY * v.WheelSensitivity
	newTarget := v.clampScale(v.targetScale * (1 + delta))

	wx, wy := v.ScreenToWorld(x, y)
	v.focus = &focusPin{screen: Vec2{x, y}, world: Vec2{wx, wy}}
	v.targetScale = newTarget
	v.flight = nil
}

// BeginPan starts a pan gesture at screen position (x, y). Any in-flight
// zoom pin or camera flight is dropped: grabbing the surface means the user
// wants direct control.
func (v *Viewport) BeginPan(x, y float64) {
	if v.focus != nil {
		// Dropping the pin mid-zoom: resync the offset target first so the
		// camera doesn't lurch toward a stale destination.
		v.targetOffset = v.offset
		v.focus = nil
	}
	v.panning = true
	v.panStartPointer = Vec2{x, y}
	v.panStartOffset = v.targetOffset
	v.flight = nil
}

// PanTo moves an active pan gesture to screen position (x, y). The offset
// target tracks the pointer delta from the gesture start; the vertical
// component is ignored while vertical pan is locked. No-op when no pan is
// active.
func (v *Viewport) PanTo(x, y float64) {
	if !v.panning {
		return
	}
	d := Vec2{x, y}.Sub(v.panStartPointer)
	if v.lockVerticalPan {
		d.Y = 0
	}
	v.targetOffset = v.panStartOffset.Add(d)
}

// EndPan finishes the active pan gesture. Safe to call when none is active
// (a pointer leaving the surface mid-drag is treated as drag end).
func (v *Viewport) EndPan() {
	v.panning = false
}

// Panning reports whether a pan gesture is active.
func (v *Viewport) Panning() bool {
	return v.panning
}

// BeginPinch starts a two-point gesture with the given inter-point distance
// and midpoint (surface-local coordinates). The current target scale is the
// zoom baseline for the whole gesture.
func (v *Viewport) BeginPinch(dist float64, center Vec2) {
	v.pinching = true
	v.pinchStartDist = dist
	v.pinchStartScale = v.targetScale
	v.pinchStartY = center.Y
	v.panning = false
	v.flight = nil
}

// MovePinch updates an active pinch. The scale target follows the distance
// ratio against the gesture baseline, clamped to the scale limits, and the
// world point under the midpoint is pinned like a wheel zoom. No-op when no
// pinch is active or the baseline distance was zero.
func (v *Viewport) MovePinch(dist float64, center Vec2) {
	if !v.pinching || v.pinchStartDist <= 0 {
		return
	}
	newScale := v.clampScale(v.pinchStartScale * (dist / v.pinchStartDist))

	if v.lockVerticalPan {
		center.Y = v.pinchStartY
	}
	wx, wy := v.ScreenToWorld(center.X, center.Y)
	v.focus = &focusPin{screen: center, world: Vec2{wx, wy}}
	v.targetScale = newScale
}

// EndPinch finishes the active pinch gesture.
func (v *Viewport) EndPinch() {
	v.pinching = false
}

// Pinching reports whether a pinch gesture is active.
func (v *Viewport) Pinching() bool {
	return v.pinching
}

// Reset animates the camera back to the fit-to-content scale. Along each
// axis where the fitted content is smaller than the surface the content is
// centered; otherwise its top/left edge aligns with the surface's.
func (v *Viewport) Reset() {
	v.targetScale = v.fitScale
	v.targetOffset = v.alignOffset(v.fitScale)
	v.focus = nil
	v.flight = nil
}

// alignOffset computes the offset that centers (or edge-aligns) the content
// at the given scale.
func (v *Viewport) alignOffset(s float64) Vec2 {
	var off Vec2
	if w := v.content.Width * s; w < v.surfaceW {
		off.X = (v.surfaceW-w)/2 - v.content.MinX*s
	} else {
		off.X = -v.content.MinX * s
	}
	if h := v.content.Height * s; h < v.surfaceH {
		off.Y = (v.surfaceH-h)/2 - v.content.MinY*s
	} else {
		off.Y = -v.content.MinY * s
	}
	return off
}

// CenterOn animates the camera so the world point (wx, wy) lands at the
// surface center. A positive targetScale also retargets the zoom; pass 0 to
// keep the current zoom target.
func (v *Viewport) CenterOn(wx, wy, targetScale float64) {
	if targetScale > 0 {
		v.targetScale = v.clampScale(targetScale)
	}
	s := v.targetScale
	v.targetOffset = Vec2{v.surfaceW/2 - wx*s, v.surfaceH/2 - wy*s}
	v.focus = nil
	v.flight = nil
}

// FlyTo animates the camera target toward centering the world point
// (wx, wy) over duration seconds using the given easing function, at the
// current target scale. Unlike CenterOn, the destination itself is eased, so
// long moves keep a sense of travel. Any user gesture cancels the flight.
func (v *Viewport) FlyTo(wx, wy float64, duration float32, easeFn ease.TweenFunc) {
	s := v.targetScale
	destX := v.surfaceW/2 - wx*s
	destY := v.surfaceH/2 - wy*s
	v.flight = &flightAnim{
		tweenX: gween.New(float32(v.targetOffset.X), float32(destX), duration, easeFn),
		tweenY: gween.New(float32(v.targetOffset.Y), float32(destY), duration, easeFn),
	}
	v.focus = nil
}

// SetImmediate synchronously sets both current and target camera state with
// no interpolation. Use for first paint or hard resets where a visible
// animation would be wrong.
func (v *Viewport) SetImmediate(scale, offsetX, offsetY float64) {
	v.scale = scale
	v.targetScale = scale
	v.offset = Vec2{offsetX, offsetY}
	v.targetOffset = v.offset
	v.focus = nil
	v.flight = nil
}

// ScreenToWorld inverse-projects a surface coordinate through the current
// (not target) scale and offset.
func (v *Viewport) ScreenToWorld(x, y float64) (wx, wy float64) {
	if v.scale == 0 {
		return x, y
	}
	return (x - v.offset.X) / v.scale, (y - v.offset.Y) / v.scale
}

// WorldToScreen projects a world coordinate onto the surface.
func (v *Viewport) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return wx*v.scale + v.offset.X, wy*v.scale + v.offset.Y
}

// ApplyTransform programs the draw options' coordinate system with the
// current translate+scale, so the renderer can draw in world coordinates
// without per-item transform math.
func (v *Viewport) ApplyTransform(op *ebiten.DrawImageOptions) {
	op.GeoM.Scale(v.scale, v.scale)
	op.GeoM.Translate(v.offset.X, v.offset.Y)
}

// GeoM returns the current camera transform as an ebiten matrix.
func (v *Viewport) GeoM() ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(v.scale, v.scale)
	m.Translate(v.offset.X, v.offset.Y)
	return m
}

// clampScale restricts s to [minScale, maxScale].
func (v *Viewport) clampScale(s float64) float64 {
	return math.Max(v.minScale, math.Min(s, v.maxScale))
}

// Scale returns the current interpolated scale.
func (v *Viewport) Scale() float64 { return v.scale }

// TargetScale returns the scale the camera is animating toward.
func (v *Viewport) TargetScale() float64 { return v.targetScale }

// Offset returns the current interpolated offset.
func (v *Viewport) Offset() Vec2 { return v.offset }

// TargetOffset returns the offset the camera is animating toward.
func (v *Viewport) TargetOffset() Vec2 { return v.targetOffset }

// FitScale returns the scale at which the content exactly fits the surface.
func (v *Viewport) FitScale() float64 { return v.fitScale }

// MinScale returns the lower zoom limit.
func (v *Viewport) MinScale() float64 { return v.minScale }

// MaxScale returns the upper zoom limit.
func (v *Viewport) MaxScale() float64 { return v.maxScale }

// SurfaceSize returns the drawing-surface size in device pixels.
func (v *Viewport) SurfaceSize() (w, h float64) { return v.surfaceW, v.surfaceH }
