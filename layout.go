package vitrine

import "sort"

// StackGeometry configures the card grid produced by StackLayout.
// All values are world units.
type StackGeometry struct {
	AxisColumnWidth float64 // width of the label column on the left of each row
	AxisPadding     float64 // gap between the label column and the first card
	ColumnGap       float64 // horizontal gap between cards in a row
	RowGap          float64 // vertical gap between rows
	CardWidth       float64
	CardHeight      float64
}

// DefaultStackGeometry returns the standard card-wall geometry.
func DefaultStackGeometry() StackGeometry {
	return StackGeometry{
		AxisColumnWidth: 220,
		AxisPadding:     24,
		ColumnGap:       24,
		RowGap:          40,
		CardWidth:       280,
		CardHeight:      180,
	}
}

// AxisLabel is the chrome annotation for one bucket row: where to draw the
// row's label column and how many items the row holds.
type AxisLabel struct {
	Key    string
	Label  string
	X      float64
	Y      float64
	Width  float64
	Height float64
	Row    int
	Count  int
}

// Bucket summarizes one group for the bucket comparator.
type Bucket struct {
	Key   string
	Label string
	// MaxSortValue is the largest sort value observed among the bucket's
	// members.
	MaxSortValue float64
}

// StackLayout groups items into named buckets and lays each bucket out as
// one horizontal row of fixed-size cards behind an axis-label column.
//
// The layouter computes targets only; it writes them into each item's
// ItemTween and performs no animation itself. It is a pure function of its
// inputs — re-invoke it whenever the item set or ordering changes — and is
// stateless except for the axis-label cache, which is wholly replaced on
// every Compute.
type StackLayout[T any] struct {
	Geometry StackGeometry

	// Key returns the bucket key for an item. Items with an empty key are
	// silently excluded from layout.
	Key func(T) string
	// Label returns the display label for an item's bucket.
	Label func(T) string
	// SortValue returns the numeric value that orders buckets by default.
	SortValue func(T) float64
	// Target returns the item's interpolation state the layouter writes to.
	Target func(T) *ItemTween

	// LessBuckets optionally overrides bucket ordering. When nil, buckets
	// order descending by MaxSortValue (newest/largest first).
	LessBuckets func(a, b Bucket) bool
	// LessItems optionally orders items within a bucket. When nil, encounter
	// order is preserved.
	LessItems func(a, b T) bool

	labels []AxisLabel
}

type stackBucket[T any] struct {
	key     string
	label   string
	maxSort float64
	items   []T
}

// Compute partitions items into buckets, orders buckets and their members,
// and writes a target position and size into every included item's
// ItemTween (opacity and scale target 1). It returns the content bounds of
// the produced grid, suitable for Viewport.SetContentBounds.
func (l *StackLayout[T]) Compute(items []T) ContentBounds {
	g := l.Geometry

	// Partition, preserving first-encounter bucket order for determinism.
	index := make(map[string]*stackBucket[T])
	var order []*stackBucket[T]
	for _, it := range items {
		key := l.Key(it)
		if key == "" {
			continue
		}
		b, ok := index[key]
		if !ok {
			b = &stackBucket[T]{key: key, label: l.Label(it)}
			index[key] = b
			order = append(order, b)
		}
		if sv := l.SortValue(it); len(b.items) == 0 || sv > b.maxSort {
			b.maxSort = sv
		}
		b.items = append(b.items, it)
	}

	// Order buckets, then items within each bucket. Stable sorts keep
	// repeated invocations byte-identical.
	if l.LessBuckets != nil {
		sort.SliceStable(order, func(i, j int) bool {
			return l.LessBuckets(
				Bucket{Key: order[i].key, Label: order[i].label, MaxSortValue: order[i].maxSort},
				Bucket{Key: order[j].key, Label: order[j].label, MaxSortValue: order[j].maxSort},
			)
		})
	} else {
		sort.SliceStable(order, func(i, j int) bool {
			return order[i].maxSort > order[j].maxSort
		})
	}
	if l.LessItems != nil {
		for _, b := range order {
			sort.SliceStable(b.items, func(i, j int) bool {
				return l.LessItems(b.items[i], b.items[j])
			})
		}
	}

	// Place rows and cards, rebuilding the axis-label cache from scratch.
	l.labels = l.labels[:0]
	var maxRight float64
	y := 0.0
	for row, b := range order {
		x := g.AxisColumnWidth + g.AxisPadding
		for _, it := range b.items {
			tw := l.Target(it)
			tw.X.Target = x
			tw.Y.Target = y
			tw.Width.Target = g.CardWidth
			tw.Height.Target = g.CardHeight
			tw.Opacity.Target = 1
			tw.Scale.Target = 1
			x += g.CardWidth + g.ColumnGap
		}
		right := x - g.ColumnGap
		if right > maxRight {
			maxRight = right
		}

		l.labels = append(l.labels, AxisLabel{
			Key:    b.key,
			Label:  b.label,
			X:      0,
			Y:      y,
			Width:  g.AxisColumnWidth,
			Height: g.CardHeight,
			Row:    row,
			Count:  len(b.items),
		})

		y += g.CardHeight + g.RowGap
	}

	height := y
	if len(order) > 0 {
		height -= g.RowGap // no gap after the last row
	}
	return ContentBounds{
		Width:         maxRight,
		Height:        height,
		MaxItemHeight: g.CardHeight,
	}
}

// AxisLabels returns the labels produced by the last Compute. The slice is
// reused across invocations and must not be retained.
func (l *StackLayout[T]) AxisLabels() []AxisLabel {
	return l.labels
}
