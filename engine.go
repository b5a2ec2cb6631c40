package vitrine

// Engine ties the four components to one frame tick. It exists to enforce
// ordering: input handling completes before the interpolation step reads its
// targets, and cull bounds refresh after the camera has moved. Hosts that
// need custom wiring can drive the components directly in the same order.
//
// Everything here is single-threaded and cooperative; nothing blocks.
type Engine struct {
	View   *Viewport
	Input  *Input
	Culler *Culler
	LOD    *LODTracker
}

// NewEngine creates an engine around the given viewport with a default
// input router, culler, and LOD tracker.
func NewEngine(view *Viewport) *Engine {
	return &Engine{
		View:   view,
		Input:  NewInput(view),
		Culler: NewCuller(view),
		LOD:    NewLODTracker(),
	}
}

// Update advances one frame: poll input (targets only), step the camera,
// refresh cull bounds, reset pass statistics. Call once per rendered frame
// from the host's update callback.
func (e *Engine) Update() {
	e.Input.Update()
	e.View.Update()
	e.Culler.UpdateBounds()
	e.Culler.ResetStats()
}
