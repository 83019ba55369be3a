package skeet

import (
	"math"

	"github.com/vovakirdan/tui-skeet/internal/core"
)

// Renderer draws primitive shapes in world coordinates (origin bottom-left,
// y up). Rectangles are centered on (x, y).
type Renderer interface {
	FilledCircle(x, y, radius float64, c core.Color)
	OutlinedCircle(x, y, radius float64, c core.Color)
	FilledRect(x, y, w, h float64, c core.Color)
	Text(s string, x, y float64, c core.Color, size int)
	FilledPolygon(pts []Point, c core.Color)
}

// Glyphs used when rasterizing shapes into terminal cells
const (
	GlyphFill    = '█'
	GlyphRect    = '▒'
	GlyphPolygon = '▓'
	GlyphOutline = 'o'
	GlyphDot     = '•'
)

// viewport maps the world rectangle onto a block of screen cells starting
// at row top.
type viewport struct {
	top, cols, rows int
	width, height   float64
}

func newViewport(top, cols, rows int, width, height float64) viewport {
	return viewport{top: top, cols: cols, rows: rows, width: width, height: height}
}

// cellSize returns the world size of one cell.
func (v viewport) cellSize() (sx, sy float64) {
	return v.width / float64(v.cols), v.height / float64(v.rows)
}

func (v viewport) empty() bool {
	return v.cols <= 0 || v.rows <= 0
}

// ToCell returns the cell holding world point p. The result may lie outside
// the viewport.
func (v viewport) ToCell(p Point) (int, int) {
	sx, sy := v.cellSize()
	cx := int(math.Floor(p.X / sx))
	cy := v.top + int(math.Floor((v.height-p.Y)/sy))
	return cx, cy
}

// ToWorld returns the world position of the center of cell (cx, cy).
func (v viewport) ToWorld(cx, cy int) Point {
	sx, sy := v.cellSize()
	return Point{
		X: (float64(cx) + 0.5) * sx,
		Y: v.height - (float64(cy-v.top)+0.5)*sy,
	}
}

func (v viewport) contains(cx, cy int) bool {
	return core.NewRect(0, v.top, v.cols, v.rows).Contains(cx, cy)
}

// cellRange returns the clipped cells covering a world bounding box.
func (v viewport) cellRange(minX, minY, maxX, maxY float64) (x0, y0, x1, y1 int) {
	x0, y1 = v.ToCell(Point{minX, minY})
	x1, y0 = v.ToCell(Point{maxX, maxY})
	x0 = core.Max(x0, 0)
	y0 = core.Max(y0, v.top)
	x1 = core.Min(x1, v.cols-1)
	y1 = core.Min(y1, v.top+v.rows-1)
	return x0, y0, x1, y1
}

// screenRenderer rasterizes shapes by testing cell centers. Shapes smaller
// than a cell still mark the cell holding their center.
type screenRenderer struct {
	dst *core.Screen
	vp  viewport
}

var _ Renderer = (*screenRenderer)(nil)

func newScreenRenderer(dst *core.Screen, vp viewport) *screenRenderer {
	return &screenRenderer{dst: dst, vp: vp}
}

// fill sets every cell in the bounding box whose center satisfies inside.
// It reports whether any cell was set.
func (r *screenRenderer) fill(minX, minY, maxX, maxY float64, glyph rune, c core.Color, inside func(Point) bool) bool {
	if r.vp.empty() {
		return false
	}
	drawn := false
	x0, y0, x1, y1 := r.vp.cellRange(minX, minY, maxX, maxY)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			if inside(r.vp.ToWorld(cx, cy)) {
				r.dst.SetCell(cx, cy, glyph, c)
				drawn = true
			}
		}
	}
	return drawn
}

// dot marks the single cell holding p.
func (r *screenRenderer) dot(p Point, glyph rune, c core.Color) {
	if r.vp.empty() {
		return
	}
	cx, cy := r.vp.ToCell(p)
	if r.vp.contains(cx, cy) {
		r.dst.SetCell(cx, cy, glyph, c)
	}
}

func (r *screenRenderer) FilledCircle(x, y, radius float64, c core.Color) {
	center := Point{x, y}
	inCircle := func(p Point) bool { return p.Distance(center) <= radius }
	if !r.fill(x-radius, y-radius, x+radius, y+radius, GlyphFill, c, inCircle) {
		r.dot(center, GlyphDot, c)
	}
}

func (r *screenRenderer) OutlinedCircle(x, y, radius float64, c core.Color) {
	center := Point{x, y}
	sx, sy := r.vp.cellSize()
	onEdge := func(p Point) bool {
		if p.Distance(center) > radius {
			return false
		}
		for _, n := range [4]Point{{p.X - sx, p.Y}, {p.X + sx, p.Y}, {p.X, p.Y - sy}, {p.X, p.Y + sy}} {
			if n.Distance(center) > radius {
				return true
			}
		}
		return false
	}
	if !r.fill(x-radius, y-radius, x+radius, y+radius, GlyphOutline, c, onEdge) {
		r.dot(center, GlyphOutline, c)
	}
}

func (r *screenRenderer) FilledRect(x, y, w, h float64, c core.Color) {
	minX, maxX := x-w/2, x+w/2
	minY, maxY := y-h/2, y+h/2
	inRect := func(p Point) bool {
		return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
	}
	if !r.fill(minX, minY, maxX, maxY, GlyphRect, c, inRect) {
		r.dot(Point{x, y}, GlyphRect, c)
	}
}

// Text writes s starting at the cell holding (x, y). Terminal cells have a
// single font size, so size is ignored.
func (r *screenRenderer) Text(s string, x, y float64, c core.Color, _ int) {
	if r.vp.empty() {
		return
	}
	cx, cy := r.vp.ToCell(Point{x, y})
	if cy < r.vp.top || cy >= r.vp.top+r.vp.rows {
		return
	}
	r.dst.DrawTextColor(cx, cy, s, c)
}

func (r *screenRenderer) FilledPolygon(pts []Point, c core.Color) {
	if len(pts) < 3 {
		return
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	inside := func(p Point) bool { return pointInPolygon(p, pts) }
	r.fill(minX, minY, maxX, maxY, GlyphPolygon, c, inside)
}

// pointInPolygon applies the even-odd rule.
func pointInPolygon(p Point, poly []Point) bool {
	in := false
	j := len(poly) - 1
	for i := range poly {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				in = !in
			}
		}
		j = i
	}
	return in
}
