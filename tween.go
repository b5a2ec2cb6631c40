package vitrine

// DefaultStepSpeed is the fraction of the remaining distance an animated
// value covers per tick. Used by Viewport and LODTracker unless overridden.
const DefaultStepSpeed = 0.15

// Anim is a scalar animated by repeated exponential steps toward a target.
// Input handlers and layout passes write Target; the per-frame step is the
// only writer of Current. The step is a discrete exponential decay and is
// not frame-rate-normalized, so it assumes a stable tick cadence (typically
// once per rendered frame).
type Anim struct {
	Current float64
	Target  float64
}

// Step moves Current a fixed fraction of the remaining distance toward
// Target. For any speed in (0, 1) the value converges without overshooting.
func (a *Anim) Step(speed float64) {
	a.Current += (a.Target - a.Current) * speed
}

// Set jumps both Current and Target to v, skipping any animation.
func (a *Anim) Set(v float64) {
	a.Current = v
	a.Target = v
}

// ItemTween holds the animated visual state of one item. Layout passes write
// the targets; the renderer reads the currents. Storage lifetime belongs to
// whoever holds the item list.
type ItemTween struct {
	X, Y          Anim
	Width, Height Anim
	Opacity       Anim
	Scale         Anim
}

// NewItemTween returns an ItemTween resting at the given position and size,
// fully opaque at scale 1. Use for items appearing for the first time so
// they do not animate in from the zero value.
func NewItemTween(x, y, w, h float64) *ItemTween {
	t := &ItemTween{}
	t.X.Set(x)
	t.Y.Set(y)
	t.Width.Set(w)
	t.Height.Set(h)
	t.Opacity.Set(1)
	t.Scale.Set(1)
	return t
}

// Step advances all six animated fields by one tick.
func (t *ItemTween) Step(speed float64) {
	t.X.Step(speed)
	t.Y.Step(speed)
	t.Width.Step(speed)
	t.Height.Step(speed)
	t.Opacity.Step(speed)
	t.Scale.Step(speed)
}

// Snap jumps every field to its target, skipping any animation. Use after
// the first layout pass so items do not fly in from the zero value.
func (t *ItemTween) Snap() {
	t.X.Set(t.X.Target)
	t.Y.Set(t.Y.Target)
	t.Width.Set(t.Width.Target)
	t.Height.Set(t.Height.Target)
	t.Opacity.Set(t.Opacity.Target)
	t.Scale.Set(t.Scale.Target)
}

// Bounds returns the item's current world rectangle, suitable for culling.
func (t *ItemTween) Bounds() Rect {
	return Rect{X: t.X.Current, Y: t.Y.Current, Width: t.Width.Current, Height: t.Height.Current}
}
