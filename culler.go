package vitrine

// Culler classifies item rectangles against the camera's visible world
// bounds and accumulates simple pass statistics.
//
// The stats split deliberately: IsVisible counts every query, but whether a
// visible item was actually painted is the caller's decision (additional
// filtering may apply), so the rendered/culled counters are caller-driven.
type Culler struct {
	view   *Viewport
	bounds Rect

	total    int
	rendered int
	culled   int
}

// NewCuller creates a culler bound to the given viewport.
func NewCuller(view *Viewport) *Culler {
	return &Culler{view: view}
}

// UpdateBounds recomputes the world-space visible rectangle by
// inverse-projecting the surface's four corners through the current camera.
// Call once per frame, before culling, whenever the camera may have moved.
func (c *Culler) UpdateBounds() {
	w, h := c.view.SurfaceSize()
	left, top := c.view.ScreenToWorld(0, 0)
	right, bottom := c.view.ScreenToWorld(w, h)
	c.bounds = Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Bounds returns the current world-space visible rectangle.
func (c *Culler) Bounds() Rect {
	return c.bounds
}

// IsVisible reports whether the item's world rectangle intersects the
// visible bounds. Every call increments the total counter. Rectangles that
// only touch an edge count as visible.
func (c *Culler) IsVisible(r Rect) bool {
	c.total++
	return r.Intersects(c.bounds)
}

// IncrementRendered records that the caller painted an item this pass.
func (c *Culler) IncrementRendered() {
	c.rendered++
}

// IncrementCulled records that the caller skipped an item this pass.
func (c *Culler) IncrementCulled() {
	c.culled++
}

// ResetStats zeroes all counters. Counters are never reset automatically;
// call this once per logical pass (typically per frame) or they accumulate.
func (c *Culler) ResetStats() {
	c.total = 0
	c.rendered = 0
	c.culled = 0
}

// Stats returns the accumulated counters for the current pass.
func (c *Culler) Stats() (total, rendered, culled int) {
	return c.total, c.rendered, c.culled
}

// Efficiency returns the share of queried items that were culled, as a
// percentage. Zero when nothing has been queried.
func (c *Culler) Efficiency() float64 {
	if c.total == 0 {
		return 0
	}
	return float64(c.culled) / float64(c.total) * 100
}
