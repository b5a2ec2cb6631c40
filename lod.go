package vitrine

// LODMode names one of the two visual density modes an item blends between.
type LODMode uint8

const (
	// LODDetail shows the image over 45% of the card height with full text.
	LODDetail LODMode = iota
	// LODImageOnly fills the card with the image and hides the text.
	LODImageOnly
)

// String returns the mode name for debug output.
func (m LODMode) String() string {
	if m == LODImageOnly {
		return "image-only"
	}
	return "detail"
}

// Resting values for each mode.
const (
	detailImageHeight    = 0.45
	detailTextOpacity    = 1.0
	imageOnlyImageHeight = 1.0
	imageOnlyTextOpacity = 0.0
)

// DefaultLODThreshold is the on-screen width in pixels at or above which an
// item shows the detail mode.
const DefaultLODThreshold = 80.0

// LODState is one item's current blend between the two modes. Mode is the
// instantaneous decision; the visual fields trail it smoothly.
type LODState struct {
	// ImageHeightPercent is the fraction of the card height the image
	// occupies, in [0, 1].
	ImageHeightPercent float64
	// TextOpacity is the text alpha, in [0, 1].
	TextOpacity float64
	// Mode is the target mode implied by the last observed screen width.
	Mode LODMode
}

// LODTracker blends per-item visual density based on on-screen size.
//
// The mode decision is instant and level-triggered — it can flip every call
// with no cooldown — but the visual fields converge toward the new mode's
// resting values with the shared exponential step, so oscillation near the
// threshold smears into a blend instead of popping.
//
// Records persist for the lifetime of an item's identity. Callers must
// invoke Clear when the item set is replaced; the tracker never discards
// records on its own.
type LODTracker struct {
	// Threshold is the screen width in pixels that selects detail mode.
	Threshold float64
	// Speed is the fraction of remaining distance covered per Update.
	Speed float64

	states map[string]*LODState
}

// NewLODTracker creates a tracker with the default threshold and speed.
func NewLODTracker() *LODTracker {
	return &LODTracker{
		Threshold: DefaultLODThreshold,
		Speed:     DefaultStepSpeed,
		states:    make(map[string]*LODState),
	}
}

// modeFor selects the mode implied by an on-screen width.
func (t *LODTracker) modeFor(screenWidth float64) LODMode {
	if screenWidth >= t.Threshold {
		return LODDetail
	}
	return LODImageOnly
}

func restingValues(m LODMode) (imageHeight, textOpacity float64) {
	if m == LODImageOnly {
		return imageOnlyImageHeight, imageOnlyTextOpacity
	}
	return detailImageHeight, detailTextOpacity
}

// Update advances the LOD state for one item given its current on-screen
// width, creating the record on first sight. A new record starts directly at
// the resting values of its computed mode — an item's first appearance does
// not animate in from a default. Returns the updated state.
func (t *LODTracker) Update(id string, screenWidth float64) LODState {
	mode := t.modeFor(screenWidth)

	s, ok := t.states[id]
	if !ok {
		ih, to := restingValues(mode)
		s = &LODState{ImageHeightPercent: ih, TextOpacity: to, Mode: mode}
		t.states[id] = s
		return *s
	}

	// The decision flips immediately; only the visuals are smoothed.
	s.Mode = mode
	ih, to := restingValues(mode)
	s.ImageHeightPercent += (ih - s.ImageHeightPercent) * t.Speed
	s.TextOpacity += (to - s.TextOpacity) * t.Speed
	return *s
}

// Get returns the state for an item, or ok=false if the item has never been
// observed. Never panics on unknown ids.
func (t *LODTracker) Get(id string) (LODState, bool) {
	s, ok := t.states[id]
	if !ok {
		return LODState{}, false
	}
	return *s, true
}

// Len returns the number of tracked items.
func (t *LODTracker) Len() int {
	return len(t.states)
}

// Clear discards all records. Call on item-set replacement so stale keys do
// not accumulate unboundedly.
func (t *LODTracker) Clear() {
	t.states = make(map[string]*LODState)
}
