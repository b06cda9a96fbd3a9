package render

import (
	"math"

	"github.com/lixenwraith/ecoring/constants"
	"github.com/lixenwraith/ecoring/constellation"
	"github.com/lixenwraith/ecoring/sorting"
)

// Layout maps game geometry to terminal cells for one screen size
type Layout struct {
	Width, Height int
	Center        Point
	RadiusX       int // Horizontal radius, twice RadiusY to offset cell aspect
	RadiusY       int
}

// NewLayout computes the ring geometry for a w x h screen
func NewLayout(w, h int) Layout {
	field := h - constants.HeaderRows - constants.FooterRows
	ry := max((field-1)/2, 1)
	if ry*4 > w-4 {
		ry = max((w-4)/4, 1)
	}
	return Layout{
		Width:   w,
		Height:  h,
		Center:  Point{X: w / 2, Y: constants.HeaderRows + field/2},
		RadiusX: ry * 2,
		RadiusY: ry,
	}
}

// NodePos returns the cell of node n, rotated by orbit radians.
// Node 0 sits at twelve o'clock and ids increase clockwise.
func (l Layout) NodePos(n constellation.Node, orbit float64) Point {
	angle := 2*math.Pi*float64(n)/constellation.RingSize - math.Pi/2 + orbit
	return Point{
		X: l.Center.X + int(math.Round(float64(l.RadiusX)*math.Cos(angle))),
		Y: l.Center.Y + int(math.Round(float64(l.RadiusY)*math.Sin(angle))),
	}
}

// NodeAt returns the node whose click box contains (x, y), nearest first
func (l Layout) NodeAt(x, y int, orbit float64) (constellation.Node, bool) {
	best, bestDist := constellation.Node(-1), math.MaxInt
	for n := constellation.Node(0); n < constellation.RingSize; n++ {
		p := l.NodePos(n, orbit)
		dx, dy := abs(x-p.X), abs(y-p.Y)
		if dx > constants.NodeHitX || dy > constants.NodeHitY {
			continue
		}
		if d := dx + 2*dy; d < bestDist {
			best, bestDist = n, d
		}
	}
	return best, best >= 0
}

// Midpoint returns the cell halfway between two nodes
func (l Layout) Midpoint(a, b constellation.Node, orbit float64) Point {
	pa, pb := l.NodePos(a, orbit), l.NodePos(b, orbit)
	return Point{X: (pa.X + pb.X) / 2, Y: (pa.Y + pb.Y) / 2}
}

// MenuItemPos returns the cell of the i-th category item around mid.
// The menu shifts inward as a whole so every item stays on screen.
func (l Layout) MenuItemPos(i int, mid Point) Point {
	mid = l.menuCenter(mid)
	count := len(constellation.Categories())
	angle := 2*math.Pi*float64(i)/float64(count) - math.Pi/2
	return Point{
		X: mid.X + int(math.Round(constants.MenuRadiusX*math.Cos(angle))),
		Y: mid.Y + int(math.Round(constants.MenuRadiusY*math.Sin(angle))),
	}
}

func (l Layout) menuCenter(mid Point) Point {
	loX, hiX := constants.MenuRadiusX+constants.MenuHitX, l.Width-constants.MenuRadiusX-constants.MenuHitX-1
	loY, hiY := constants.HeaderRows+constants.MenuRadiusY, l.Height-constants.FooterRows-constants.MenuRadiusY-1
	if hiX >= loX {
		mid.X = min(max(mid.X, loX), hiX)
	}
	if hiY >= loY {
		mid.Y = min(max(mid.Y, loY), hiY)
	}
	return mid
}

// MenuItemAt returns the category whose menu item contains (x, y)
func (l Layout) MenuItemAt(x, y int, mid Point) (constellation.Category, bool) {
	for i, c := range constellation.Categories() {
		p := l.MenuItemPos(i, mid)
		if y == p.Y && abs(x-p.X) <= constants.MenuHitX {
			return c, true
		}
	}
	return 0, false
}

// TileOrigin returns the left cell of the reveal strip
func (l Layout) TileOrigin() Point {
	return Point{
		X: max((l.Width-constellation.RingSize*constants.TileWidth)/2, 0),
		Y: l.Height - constants.FooterRows,
	}
}

// BinRect returns the top-left corner and width of the bin for k
func (l Layout) BinRect(k sorting.Kind) (Point, int) {
	n := len(sorting.Kinds())
	w := max((l.Width-constants.BinGap*(n+1))/n, 3)
	return Point{
		X: constants.BinGap + int(k)*(w+constants.BinGap),
		Y: l.Height - constants.FooterRows - constants.BinHeight,
	}, w
}

// BinAt returns the bin containing (x, y)
func (l Layout) BinAt(x, y int) (sorting.Kind, bool) {
	for _, k := range sorting.Kinds() {
		p, w := l.BinRect(k)
		if x >= p.X && x < p.X+w && y >= p.Y && y < p.Y+constants.BinHeight {
			return k, true
		}
	}
	return 0, false
}

// NodeLabel is the key that selects n: 0-9 then a, b
func NodeLabel(n constellation.Node) rune {
	if n < 10 {
		return rune('0' + n)
	}
	return rune('a' + n - 10)
}
