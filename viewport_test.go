package vitrine

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func newTestViewport() *Viewport {
	v := NewViewport(500, 500)
	v.SetContentBounds(ContentBounds{Width: 1000, Height: 1000})
	return v
}

func TestViewportScaleLimits(t *testing.T) {
	v := newTestViewport()
	if !approxEqual(v.FitScale(), 0.5, epsilon) {
		t.Errorf("FitScale = %v, want 0.5", v.FitScale())
	}
	if !approxEqual(v.MinScale(), 0.45, epsilon) {
		t.Errorf("MinScale = %v, want 0.45", v.MinScale())
	}
	// No MaxItemHeight: max = 200 * fit.
	if !approxEqual(v.MaxScale(), 100, epsilon) {
		t.Errorf("MaxScale = %v, want 100", v.MaxScale())
	}
}

func TestViewportScaleLimitsWithMaxItemHeight(t *testing.T) {
	v := NewViewport(500, 500)
	v.SetContentBounds(ContentBounds{Width: 1000, Height: 1000, MaxItemHeight: 200})
	// max = surfaceH*2 / maxItemHeight = 1000/200.
	if !approxEqual(v.MaxScale(), 5, epsilon) {
		t.Errorf("MaxScale = %v, want 5", v.MaxScale())
	}
}

func TestViewportZeroBoundsFallback(t *testing.T) {
	v := NewViewport(500, 500)
	v.SetContentBounds(ContentBounds{})
	if v.FitScale() != 1 || v.MaxScale() != 2 {
		t.Errorf("fallback: fit=%v max=%v, want 1, 2", v.FitScale(), v.MaxScale())
	}
	if !approxEqual(v.MinScale(), 0.9, epsilon) {
		t.Errorf("fallback MinScale = %v, want 0.9", v.MinScale())
	}
}

func TestViewportResizeRecomputesLimits(t *testing.T) {
	v := newTestViewport()
	v.SetSurfaceSize(1000, 1000)
	if !approxEqual(v.FitScale(), 1.0, epsilon) {
		t.Errorf("after resize FitScale = %v, want 1.0", v.FitScale())
	}
}

func TestViewportUpdateConverges(t *testing.T) {
	v := newTestViewport()
	v.SetImmediate(0.5, 0, 0)
	v.CenterOn(500, 500, 1)

	for i := 0; i < 300; i++ {
		v.Update()
	}
	if !approxEqual(v.Scale(), 1, 1e-6) {
		t.Errorf("scale did not converge: %v", v.Scale())
	}
	off := v.Offset()
	// Centering (500,500) at scale 1 on a 500x500 surface: offset (-250,-250).
	if !approxEqual(off.X, -250, 1e-3) || !approxEqual(off.Y, -250, 1e-3) {
		t.Errorf("offset = %v, want (-250,-250)", off)
	}
}

func TestWheelZoomScenario(t *testing.T) {
	// Content 1000x1000, viewport 500x500, fit 0.5. Wheel at (250,250)
	// with deltaY=-100 gives delta 0.2 and targetScale 0.6.
	v := newTestViewport()
	v.SetImmediate(0.5, 0, 0)

	wantWX, wantWY := v.ScreenToWorld(250, 250)
	v.HandleWheel(250, 250, -100)

	if !approxEqual(v.TargetScale(), 0.6, epsilon) {
		t.Fatalf("targetScale = %v, want 0.6", v.TargetScale())
	}

	// While the zoom animates, the pinned point is held exactly.
	v.Update()
	wx, wy := v.ScreenToWorld(250, 250)
	if !approxEqual(wx, wantWX, 1e-9) || !approxEqual(wy, wantWY, 1e-9) {
		t.Errorf("mid-zoom anchor drifted: (%v,%v), want (%v,%v)", wx, wy, wantWX, wantWY)
	}

	// After convergence the anchor holds within the focus-release tolerance.
	for i := 0; i < 300; i++ {
		v.Update()
	}
	if !approxEqual(v.Scale(), 0.6, 1e-6) {
		t.Fatalf("scale = %v, want 0.6", v.Scale())
	}
	wx, wy = v.ScreenToWorld(250, 250)
	if !approxEqual(wx, wantWX, 10) || !approxEqual(wy, wantWY, 10) {
		t.Errorf("post-zoom anchor = (%v,%v), want ~(%v,%v)", wx, wy, wantWX, wantWY)
	}
}

func TestWheelZoomReleasesFocusAndResyncsTarget(t *testing.T) {
	v := newTestViewport()
	v.SetImmediate(0.5, 0, 0)
	v.HandleWheel(250, 250, -100)

	for i := 0; i < 300; i++ {
		v.Update()
	}
	if v.focus != nil {
		t.Error("focus pin not released after convergence")
	}
	// targetOffset resynced: further updates must not move the camera.
	before := v.Offset()
	for i := 0; i < 10; i++ {
		v.Update()
	}
	after := v.Offset()
	if !approxEqual(before.X, after.X, 1e-6) || !approxEqual(before.Y, after.Y, 1e-6) {
		t.Errorf("camera drifted after zoom settled: %v -> %v", before, after)
	}
}

func TestScaleClampingUnderZoomBursts(t *testing.T) {
	v := newTestViewport()
	v.SetImmediate(0.5, 0, 0)

	// Many zoom-out events: targetScale must never leave [min, max].
	for i := 0; i < 100; i++ {
		v.HandleWheel(250, 250, 500)
		if v.TargetScale() < v.MinScale()-epsilon || v.TargetScale() > v.MaxScale()+epsilon {
			t.Fatalf("targetScale %v escaped [%v, %v]", v.TargetScale(), v.MinScale(), v.MaxScale())
		}
	}
	if !approxEqual(v.TargetScale(), v.MinScale(), epsilon) {
		t.Errorf("targetScale = %v, want pinned at MinScale %v", v.TargetScale(), v.MinScale())
	}

	for i := 0; i < 100; i++ {
		v.HandleWheel(250, 250, -3000)
	}
	if !approxEqual(v.TargetScale(), v.MaxScale(), epsilon) {
		t.Errorf("targetScale = %v, want pinned at MaxScale %v", v.TargetScale(), v.MaxScale())
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	v := newTestViewport()
	v.SetImmediate(0.73, -120, 45)

	origWX, origWY := 321.0, -654.0
	sx, sy := v.WorldToScreen(origWX, origWY)
	wx, wy := v.ScreenToWorld(sx, sy)
	if !approxEqual(wx, origWX, 1e-9) || !approxEqual(wy, origWY, 1e-9) {
		t.Errorf("roundtrip: got (%v,%v), want (%v,%v)", wx, wy, origWX, origWY)
	}
}

func TestPanGesture(t *testing.T) {
	v := newTestViewport()
	v.SetImmediate(0.5, 0, 0)

	v.BeginPan(100, 100)
	v.PanTo(130, 80)
	want := Vec2{30, -20}
	if v.TargetOffset() != want {
		t.Errorf("targetOffset = %v, want %v", v.TargetOffset(), want)
	}

	// Pan writes targets only; current offset moves on Update.
	if v.Offset() != (Vec2{0, 0}) {
		t.Errorf("offset moved without Update: %v", v.Offset())
	}
	v.Update()
	off := v.Offset()
	if !approxEqual(off.X, 30*0.15, epsilon) {
		t.Errorf("offset.X after one tick = %v, want %v", off.X, 30*0.15)
	}

	v.EndPan()
	v.PanTo(500, 500) // no-op after end
	if v.TargetOffset() != want {
		t.Errorf("PanTo after EndPan moved target: %v", v.TargetOffset())
	}
}

func TestPanVerticalLock(t *testing.T) {
	v := newTestViewport()
	v.SetImmediate(0.5, 0, 0)
	v.SetLockVerticalPan(true)

	v.BeginPan(0, 0)
	v.PanTo(40, 99)
	if got := v.TargetOffset(); got != (Vec2{40, 0}) {
		t.Errorf("locked pan targetOffset = %v, want {40 0}", got)
	}
}

func TestPinchGesture(t *testing.T) {
	v := newTestViewport()
	v.SetImmediate(0.5, 0, 0)

	v.BeginPinch(100, Vec2{250, 250})
	v.MovePinch(150, Vec2{250, 250})
	if !approxEqual(v.TargetScale(), 0.75, epsilon) {
		t.Errorf("pinch targetScale = %v, want 0.75", v.TargetScale())
	}

	// The baseline is the gesture start, not the previous move.
	v.MovePinch(200, Vec2{250, 250})
	if !approxEqual(v.TargetScale(), 1.0, epsilon) {
		t.Errorf("pinch targetScale = %v, want 1.0", v.TargetScale())
	}

	// The midpoint world point is pinned, exactly like wheel zoom.
	wantWX, wantWY := v.ScreenToWorld(250, 250)
	v.Update()
	wx, wy := v.ScreenToWorld(250, 250)
	if !approxEqual(wx, wantWX, 1e-9) || !approxEqual(wy, wantWY, 1e-9) {
		t.Errorf("pinch anchor drifted: (%v,%v), want (%v,%v)", wx, wy, wantWX, wantWY)
	}

	v.EndPinch()
	v.MovePinch(300, Vec2{250, 250}) // no-op after end
	if !approxEqual(v.TargetScale(), 1.0, epsilon) {
		t.Errorf("MovePinch after EndPinch changed scale: %v", v.TargetScale())
	}
}

func TestPinchZeroBaselineIgnored(t *testing.T) {
	v := newTestViewport()
	v.SetImmediate(0.5, 0, 0)
	v.BeginPinch(0, Vec2{250, 250})
	v.MovePinch(100, Vec2{250, 250})
	if !approxEqual(v.TargetScale(), 0.5, epsilon) {
		t.Errorf("zero-baseline pinch changed scale: %v", v.TargetScale())
	}
}

func TestResetCentersSmallContent(t *testing.T) {
	// Content 800x600 on a 500x500 surface: fit = min(0.625, 0.833) = 0.625.
	// Fitted width fills the surface exactly (left aligned), fitted height
	// (375) leaves slack, so Y is centered.
	v := NewViewport(500, 500)
	v.SetContentBounds(ContentBounds{Width: 800, Height: 600})
	v.Reset()

	if !approxEqual(v.TargetScale(), 0.625, epsilon) {
		t.Fatalf("reset targetScale = %v, want 0.625", v.TargetScale())
	}
	got := v.TargetOffset()
	if !approxEqual(got.X, 0, epsilon) {
		t.Errorf("reset offset.X = %v, want 0 (edge aligned)", got.X)
	}
	if !approxEqual(got.Y, (500-375)/2.0, epsilon) {
		t.Errorf("reset offset.Y = %v, want %v (centered)", got.Y, (500-375)/2.0)
	}
}

func TestResetRespectsContentOrigin(t *testing.T) {
	v := NewViewport(500, 500)
	v.SetContentBounds(ContentBounds{MinX: 100, MinY: -50, Width: 1000, Height: 1000})
	v.Reset()
	s := v.TargetScale()
	got := v.TargetOffset()
	// Content fills both axes at fit scale: top/left world corner maps to (0,0).
	sx := 100*s + got.X
	sy := -50*s + got.Y
	if !approxEqual(sx, 0, epsilon) || !approxEqual(sy, 0, epsilon) {
		t.Errorf("content origin maps to (%v,%v), want (0,0)", sx, sy)
	}
}

func TestResetAnimatesRatherThanJumps(t *testing.T) {
	v := newTestViewport()
	v.SetImmediate(2, -400, -400)
	v.Reset()
	if v.Scale() != 2 {
		t.Errorf("Reset jumped current scale to %v", v.Scale())
	}
	for i := 0; i < 300; i++ {
		v.Update()
	}
	if !approxEqual(v.Scale(), 0.5, 1e-6) {
		t.Errorf("Reset did not converge to fit: %v", v.Scale())
	}
}

func TestCenterOnKeepsScaleWhenZero(t *testing.T) {
	v := newTestViewport()
	v.SetImmediate(0.5, 0, 0)
	v.CenterOn(500, 500, 0)
	if v.TargetScale() != 0.5 {
		t.Errorf("CenterOn(.. 0) changed targetScale: %v", v.TargetScale())
	}
	want := Vec2{250 - 500*0.5, 250 - 500*0.5}
	if v.TargetOffset() != want {
		t.Errorf("targetOffset = %v, want %v", v.TargetOffset(), want)
	}
}

func TestCenterOnClampsScale(t *testing.T) {
	v := newTestViewport()
	v.CenterOn(0, 0, 1e9)
	if v.TargetScale() != v.MaxScale() {
		t.Errorf("CenterOn scale not clamped: %v", v.TargetScale())
	}
}

func TestSetImmediate(t *testing.T) {
	v := newTestViewport()
	v.HandleWheel(250, 250, -100) // leave a pin behind
	v.SetImmediate(1.5, 10, 20)

	if v.Scale() != 1.5 || v.TargetScale() != 1.5 {
		t.Errorf("scale = %v/%v, want 1.5/1.5", v.Scale(), v.TargetScale())
	}
	if v.Offset() != (Vec2{10, 20}) || v.TargetOffset() != (Vec2{10, 20}) {
		t.Errorf("offset = %v/%v, want {10 20}", v.Offset(), v.TargetOffset())
	}
	// No residual animation.
	v.Update()
	if v.Scale() != 1.5 || v.Offset() != (Vec2{10, 20}) {
		t.Errorf("SetImmediate left animation running: %v %v", v.Scale(), v.Offset())
	}
}

func TestFlyToReachesDestination(t *testing.T) {
	v := newTestViewport()
	v.SetImmediate(0.5, 100, 100)
	v.FlyTo(500, 500, 0.25, ease.Linear)

	for i := 0; i < 300; i++ {
		v.Update()
	}
	off := v.Offset()
	// (500,500) centered at scale 0.5 on a 500x500 surface: offset (0,0)...
	// surface center 250 - 500*0.5 = 0.
	if !approxEqual(off.X, 0, 1e-3) || !approxEqual(off.Y, 0, 1e-3) {
		t.Errorf("FlyTo offset = %v, want (0,0)", off)
	}
	if v.flight != nil {
		t.Error("flight not cleared after completion")
	}
}

func TestGestureCancelsFlight(t *testing.T) {
	v := newTestViewport()
	v.SetImmediate(0.5, 0, 0)
	v.FlyTo(900, 900, 5, ease.Linear)
	v.BeginPan(0, 0)
	if v.flight != nil {
		t.Error("pan did not cancel the flight")
	}
}

func TestScreenToWorldZeroScaleGuard(t *testing.T) {
	v := newTestViewport()
	v.SetImmediate(0, 0, 0)
	wx, wy := v.ScreenToWorld(123, 456)
	if math.IsNaN(wx) || math.IsInf(wx, 0) || math.IsNaN(wy) || math.IsInf(wy, 0) {
		t.Errorf("zero scale produced non-finite world point: (%v,%v)", wx, wy)
	}
}
