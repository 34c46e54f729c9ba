package render

import (
	"math"
	"strconv"

	"github.com/san-kum/bsviz/internal/search"
)

// Role selects the color of a bar.
type Role int

const (
	RoleDefault Role = iota
	RoleInactive
	RoleMid
	RoleFound
)

// PointerKind distinguishes the window bounds from the midpoint.
type PointerKind int

const (
	PointerBound PointerKind = iota
	PointerMid
)

const (
	// PointerRows is the height of the zone above the bars where the
	// L/M/H labels stack.
	PointerRows = 3
	// MinBarHeight is the height, in eighths of a row, of the smallest bar.
	MinBarHeight = 4
	// DefaultLabelThreshold hides value labels for arrays this long or longer.
	DefaultLabelThreshold = 30

	minViewportHeight = PointerRows + 4
)

// Viewport is the size of the chart area in cells.
type Viewport struct {
	Width, Height int
}

type Options struct {
	LabelThreshold int
}

// Bar is one array element.
type Bar struct {
	Index     int
	Value     int
	X, Width  int
	Height    int // eighths of a row
	Role      Role
	Label     string
	ShowLabel bool
	// IndexX and IndexRow place the index label. Labels are staggered over
	// Scene.IndexRows rows when a column is too narrow to hold one.
	IndexX, IndexRow int
}

// TopRow returns the row holding the top of the bar.
func (b Bar) TopRow(baseline int) int {
	return baseline - (b.Height+7)/8 + 1
}

// Pointer is an L, M or H label above a bar.
type Pointer struct {
	Name  string
	Index int
	X     int
	Row   int
	Kind  PointerKind
}

// Scene is everything needed to draw one frame of the chart.
type Scene struct {
	Width, Height int
	Baseline      int // row of the bottom bar cell
	IndexRow      int // first index label row
	IndexRows     int
	MaxBarHeight  int // eighths of a row
	Bars          []Bar
	Pointers      []Pointer
}

// Layout places one bar per element of data and the pointer labels of step.
// step may be nil before any search has run. The scene fits the viewport
// width whenever it has at least one column per element.
func Layout(data []int, step *search.Step, vp Viewport, opts Options) Scene {
	if opts.LabelThreshold <= 0 {
		opts.LabelThreshold = DefaultLabelThreshold
	}

	n := len(data)
	colW, digits := 0, 1
	if n > 0 {
		colW = max(vp.Width/n, 1)
		digits = len(strconv.Itoa(n - 1))
	}
	// same-row labels sit indexRows columns apart and need a blank between them
	indexRows := 1
	if colW > 0 {
		indexRows = (digits + colW) / colW
	}
	if h := PointerRows + 2 + indexRows; vp.Height < max(h, minViewportHeight) {
		vp.Height = max(h, minViewportHeight)
	}

	sc := Scene{
		Width:     vp.Width,
		Height:    vp.Height,
		Baseline:  vp.Height - indexRows - 1,
		IndexRows: indexRows,
	}
	sc.IndexRow = sc.Baseline + 1
	barRows := sc.Baseline - PointerRows // one row of headroom for value labels
	sc.MaxBarHeight = barRows * 8
	if n == 0 {
		return sc
	}

	offset := 0
	if used := n * colW; used > vp.Width {
		sc.Width = used
	} else {
		offset = (vp.Width - used) / 2
	}
	barW := max(colW-1, 1)

	maxVal := data[0]
	for _, v := range data {
		if v > maxVal {
			maxVal = v
		}
	}

	sc.Bars = make([]Bar, n)
	for i, v := range data {
		label := strconv.Itoa(v)
		x := offset + i*colW
		idx := strconv.Itoa(i)
		idxX := x + barW/2 - len(idx)/2
		idxX = min(max(idxX, 0), sc.Width-len(idx))
		sc.Bars[i] = Bar{
			Index:     i,
			Value:     v,
			X:         x,
			Width:     barW,
			Height:    barHeight(v, maxVal, sc.MaxBarHeight),
			Role:      roleOf(i, step),
			Label:     label,
			ShowLabel: n < opts.LabelThreshold && len(label) < colW,
			IndexX:    idxX,
			IndexRow:  sc.IndexRow + i%indexRows,
		}
	}

	if step == nil || step.Low == -1 {
		return sc
	}
	stacked := make(map[int]int, 3)
	for _, p := range []Pointer{
		{Name: "L", Index: step.Low, Kind: PointerBound},
		{Name: "M", Index: step.Mid, Kind: PointerMid},
		{Name: "H", Index: step.High, Kind: PointerBound},
	} {
		if p.Index < 0 || p.Index >= n {
			continue
		}
		level := stacked[p.Index]
		stacked[p.Index] = level + 1
		b := sc.Bars[p.Index]
		p.X = b.X + b.Width/2
		p.Row = PointerRows - 1 - level
		sc.Pointers = append(sc.Pointers, p)
	}
	return sc
}

func barHeight(v, maxVal, maxHeight int) int {
	if maxHeight <= MinBarHeight || maxVal <= 0 || v <= 0 {
		return MinBarHeight
	}
	ratio := float64(v) / float64(maxVal)
	return MinBarHeight + int(math.Round(ratio*float64(maxHeight-MinBarHeight)))
}

func roleOf(i int, step *search.Step) Role {
	if step == nil {
		return RoleDefault
	}
	if idx, ok := step.Found(); ok && idx == i {
		return RoleFound
	}
	if i == step.Mid {
		return RoleMid
	}
	if step.Low != -1 && step.High != -1 && (i < step.Low || i > step.High) {
		return RoleInactive
	}
	return RoleDefault
}
