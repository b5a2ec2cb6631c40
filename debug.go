package vitrine

import (
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// StatsOverlay renders per-frame camera and culling statistics into a small
// widget image. The text is refreshed every ~0.5 seconds to stay readable.
type StatsOverlay struct {
	view   *Viewport
	culler *Culler
	img    *ebiten.Image

	elapsed float64
}

// NewStatsOverlay creates an overlay reporting on the given viewport and
// culler.
func NewStatsOverlay(view *Viewport, culler *Culler) *StatsOverlay {
	// 220x64 fits four lines of DebugPrint text. elapsed starts past the
	// refresh interval so the first Draw fills the widget immediately.
	return &StatsOverlay{
		view:    view,
		culler:  culler,
		img:     ebiten.NewImage(220, 64),
		elapsed: 0.5,
	}
}

// Draw paints the overlay in the screen's top-left corner. Call from the
// host's draw callback after the cull pass so the counters are current.
func (o *StatsOverlay) Draw(screen *ebiten.Image) {
	o.elapsed += 1.0 / float64(ebiten.TPS())
	if o.elapsed >= 0.5 {
		o.elapsed = 0
		o.refresh()
	}
	screen.DrawImage(o.img, nil)
}

func (o *StatsOverlay) refresh() {
	o.img.Clear()
	// Semi-transparent background for readability.
	o.img.Fill(color.RGBA{0, 0, 0, 128})

	total, rendered, culled := o.culler.Stats()
	off := o.view.Offset()
	ebitenutil.DebugPrint(o.img, fmt.Sprintf(
		"FPS: %.1f\nscale: %.3f  offset: %.0f,%.0f\nitems: %d  drawn: %d  culled: %d\nefficiency: %.1f%%",
		ebiten.ActualFPS(),
		o.view.Scale(), off.X, off.Y,
		total, rendered, culled,
		o.culler.Efficiency(),
	))
}

// LogStats writes a single stat line to stderr. Handy when bisecting cull
// regressions without a visible overlay.
func LogStats(view *Viewport, culler *Culler) {
	total, rendered, culled := culler.Stats()
	_, _ = fmt.Fprintf(os.Stderr,
		"[vitrine] scale: %.3f | total: %d | rendered: %d | culled: %d | efficiency: %.1f%%\n",
		view.Scale(), total, rendered, culled, culler.Efficiency())
}
