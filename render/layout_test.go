package render

import (
	"testing"

	"github.com/lixenwraith/ecoring/constants"
	"github.com/lixenwraith/ecoring/constellation"
	"github.com/lixenwraith/ecoring/sorting"
)

func TestLayoutCardinalNodes(t *testing.T) {
	l := NewLayout(80, 24)
	if l.RadiusX != 2*l.RadiusY {
		t.Fatalf("RadiusX = %d, want twice RadiusY %d", l.RadiusX, l.RadiusY)
	}

	tests := []struct {
		node constellation.Node
		want Point
	}{
		{0, Point{l.Center.X, l.Center.Y - l.RadiusY}},
		{3, Point{l.Center.X + l.RadiusX, l.Center.Y}},
		{6, Point{l.Center.X, l.Center.Y + l.RadiusY}},
		{9, Point{l.Center.X - l.RadiusX, l.Center.Y}},
	}
	for _, tt := range tests {
		if got := l.NodePos(tt.node, 0); got != tt.want {
			t.Errorf("NodePos(%d) = %v, want %v", tt.node, got, tt.want)
		}
	}
}

func TestLayoutFitsScreen(t *testing.T) {
	sizes := [][2]int{{80, 24}, {120, 40}, {40, 20}, {200, 30}}
	for _, sz := range sizes {
		l := NewLayout(sz[0], sz[1])
		for n := constellation.Node(0); n < constellation.RingSize; n++ {
			p := l.NodePos(n, 0)
			if p.X < 0 || p.X >= sz[0] || p.Y < constants.HeaderRows || p.Y >= sz[1]-constants.FooterRows {
				t.Errorf("%dx%d: node %d at %v outside play field", sz[0], sz[1], n, p)
			}
		}
	}
}

func TestNodeAtRoundTrip(t *testing.T) {
	l := NewLayout(80, 24)
	for _, orbit := range []float64{0, 0.3, 1.7} {
		for n := constellation.Node(0); n < constellation.RingSize; n++ {
			p := l.NodePos(n, orbit)
			got, ok := l.NodeAt(p.X, p.Y, orbit)
			if !ok || got != n {
				t.Errorf("orbit %.1f: NodeAt(%v) = %d,%v want %d", orbit, p, got, ok, n)
			}
			// Neighbor cell still hits the node
			got, ok = l.NodeAt(p.X+1, p.Y, orbit)
			if !ok || got != n {
				t.Errorf("orbit %.1f: NodeAt beside %d = %d,%v", orbit, n, got, ok)
			}
		}
	}

	if _, ok := l.NodeAt(l.Center.X, l.Center.Y, 0); ok {
		t.Error("ring center should not hit a node")
	}
}

func TestMenuItemAtRoundTrip(t *testing.T) {
	l := NewLayout(80, 24)
	mids := []Point{l.Center, {2, 2}, {77, 18}}
	for _, mid := range mids {
		for i, c := range constellation.Categories() {
			p := l.MenuItemPos(i, mid)
			got, ok := l.MenuItemAt(p.X, p.Y, mid)
			if !ok || got != c {
				t.Errorf("mid %v: MenuItemAt(%v) = %s,%v want %s", mid, p, got, ok, c)
			}
		}
	}
	if _, ok := l.MenuItemAt(l.Center.X, l.Center.Y, l.Center); ok {
		t.Error("menu center should be empty")
	}
}

func TestBinAt(t *testing.T) {
	l := NewLayout(80, 24)
	for _, k := range sorting.Kinds() {
		p, w := l.BinRect(k)
		for _, x := range []int{p.X, p.X + w - 1} {
			got, ok := l.BinAt(x, p.Y+1)
			if !ok || got != k {
				t.Errorf("BinAt(%d,%d) = %s,%v want %s", x, p.Y+1, got, ok, k)
			}
		}
	}
	if _, ok := l.BinAt(0, 0); ok {
		t.Error("title row should not hit a bin")
	}
}

func TestNodeLabel(t *testing.T) {
	want := "0123456789ab"
	for n := constellation.Node(0); n < constellation.RingSize; n++ {
		if got := NodeLabel(n); got != rune(want[n]) {
			t.Errorf("NodeLabel(%d) = %q, want %q", n, got, want[n])
		}
	}
}
