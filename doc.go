// Package vitrine is an interactive viewport and culling engine for large
// 2D item collections, built for [Ebitengine].
//
// Vitrine moves and filters items on screen; it does not own what the items
// look like. A host renderer supplies item geometry and paints whatever the
// engine says is visible, at the scale and detail level the engine reports.
// The package targets catalog-style visualizations — thousands of cards
// grouped into rows — where re-laying-out and drawing every item each frame
// would be too slow or visually jarring.
//
// # Components
//
// Four components share one discipline: every animated value holds a current
// and a target, and one update per frame moves current a fixed fraction of
// the remaining distance toward target. Input handlers only ever write
// targets, so bursty input can never corrupt an in-flight animation.
//
//   - [Viewport] converts pointer, wheel, and touch gestures into a smoothly
//     interpolated pan/zoom camera, with zoom anchored to the pointer and
//     scale limits derived from content geometry.
//   - [Culler] classifies item rectangles against the camera's world-space
//     visible bounds and accumulates per-pass statistics.
//   - [LODTracker] blends each item between a detailed and an image-only
//     visual mode based on its on-screen width.
//   - [StackLayout] groups items into named buckets (typically calendar
//     days), stacks one row per bucket, and writes target positions into the
//     per-item [ItemTween] that the shared interpolation step consumes.
//
// # Quick start
//
// Wire an [Engine] into an [ebiten.Game]:
//
//	view := vitrine.NewViewport(800, 600)
//	eng := vitrine.NewEngine(view)
//
//	func (g *Game) Update() error {
//		g.eng.Update() // input, camera, cull bounds — in that order
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		for _, it := range g.items {
//			if !g.eng.Culler.IsVisible(it.Bounds()) {
//				g.eng.Culler.IncrementCulled()
//				continue
//			}
//			g.eng.Culler.IncrementRendered()
//			// paint using view.ApplyTransform and the item's LOD state
//		}
//	}
//
// See examples/catalog for a complete card-wall demo.
//
// [Ebitengine]: https://ebitengine.org
package vitrine
