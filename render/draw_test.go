package render

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ecoring/constants"
	"github.com/lixenwraith/ecoring/constellation"
	"github.com/lixenwraith/ecoring/game"
	"github.com/lixenwraith/ecoring/sorting"
)

const (
	testWidth  = 80
	testHeight = 24
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(testWidth, testHeight)
	t.Cleanup(s.Fini)
	return s
}

// row reads one screen line as text
func row(s tcell.SimulationScreen, y int) string {
	w, _ := s.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func screenContains(s tcell.SimulationScreen, text string) bool {
	_, h := s.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(row(s, y), text) {
			return true
		}
	}
	return false
}

func newGame(t *testing.T, opts ...constellation.Option) *game.Constellation {
	t.Helper()
	e, err := constellation.NewEngine(opts...)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	// Zero orbit speed keeps node cells stable across frames
	return game.NewConstellation(e, nil, 0, nil)
}

func connect(t *testing.T, g *game.Constellation, a, b constellation.Node, c constellation.Category) {
	t.Helper()
	if err := g.ClickNode(a); err != nil {
		t.Fatal(err)
	}
	if err := g.ClickNode(b); err != nil {
		t.Fatal(err)
	}
	if err := g.ChooseCategory(c); err != nil {
		t.Fatal(err)
	}
}

func TestDrawConstellationNodes(t *testing.T) {
	s := newTestScreen(t)
	g := newGame(t)
	l := NewLayout(testWidth, testHeight)

	DrawConstellation(s, g, false)

	for n := constellation.Node(0); n < constellation.RingSize; n++ {
		p := l.NodePos(n, 0)
		r, _, _, _ := s.GetContent(p.X, p.Y)
		if r != NodeLabel(n) {
			t.Errorf("node %d at %v shows %q", n, p, r)
		}
	}
	if !strings.Contains(row(s, testHeight-3), "Conexiones 0/12") {
		t.Errorf("status row = %q", row(s, testHeight-3))
	}
	if !strings.Contains(row(s, testHeight-3), "ON") {
		t.Error("audio state missing from status row")
	}
}

func TestDrawConstellationEdgeAndTiles(t *testing.T) {
	s := newTestScreen(t)
	g := newGame(t)
	l := NewLayout(testWidth, testHeight)

	connect(t, g, 0, 6, constellation.Water)
	DrawConstellation(s, g, true)

	// 0 and 6 are opposite, the edge passes through the ring center
	r, _, st, _ := s.GetContent(l.Center.X, l.Center.Y)
	if r != '│' {
		t.Errorf("center glyph = %q, want vertical stroke", r)
	}
	if want := style(CategoryColor(constellation.Water)); st != want {
		t.Error("edge not drawn in water color")
	}

	origin := l.TileOrigin()
	if r, _, _, _ := s.GetContent(origin.X, origin.Y); r != '█' {
		t.Errorf("first tile = %q, want revealed", r)
	}
	if r, _, _, _ := s.GetContent(origin.X+constants.TileWidth, origin.Y); r != '░' {
		t.Errorf("second tile = %q, want hidden", r)
	}
	if !strings.Contains(row(s, testHeight-3), "OFF") {
		t.Error("muted state not shown")
	}
}

func TestDrawConstellationMenu(t *testing.T) {
	s := newTestScreen(t)
	g := newGame(t)
	l := NewLayout(testWidth, testHeight)

	if err := g.ClickNode(0); err != nil {
		t.Fatal(err)
	}
	if err := g.ClickNode(5); err != nil {
		t.Fatal(err)
	}
	DrawConstellation(s, g, false)

	mid := l.Midpoint(0, 5, 0)
	for i := range constellation.Categories() {
		p := l.MenuItemPos(i, mid)
		r, _, _, _ := s.GetContent(p.X-constants.MenuHitX, p.Y)
		if r != rune('1'+i) {
			t.Errorf("menu item %d key = %q", i, r)
		}
	}
}

func TestDrawConstellationErrorFeedback(t *testing.T) {
	s := newTestScreen(t)
	g := newGame(t)

	if err := g.ClickNode(0); err != nil {
		t.Fatal(err)
	}
	if err := g.ClickNode(1); err != nil {
		t.Fatal(err)
	}
	DrawConstellation(s, g, false)

	if !strings.Contains(row(s, testHeight-1), "vecinos") {
		t.Errorf("message row = %q", row(s, testHeight-1))
	}
}

func TestDrawConstellationOracle(t *testing.T) {
	s := newTestScreen(t)
	g := newGame(t, constellation.WithSequence(constellation.DefaultSequence))
	pairs := [][2]constellation.Node{
		{0, 6}, {1, 7}, {2, 8}, {3, 9}, {4, 10}, {5, 11},
		{0, 2}, {1, 3}, {2, 4}, {3, 5}, {4, 6}, {5, 7},
	}
	for i, p := range pairs {
		connect(t, g, p[0], p[1], constellation.DefaultSequence[i])
	}

	DrawConstellation(s, g, false)
	if screenContains(s, "Oráculo") {
		t.Fatal("oracle shown before its delay")
	}

	for i := 0; i <= int(constants.OracleDelay/constants.FrameUpdateInterval); i++ {
		g.Update(constants.FrameUpdateInterval)
	}
	DrawConstellation(s, g, false)
	if !screenContains(s, "Oráculo") {
		t.Error("oracle card missing after completion")
	}
}

func TestDrawSorting(t *testing.T) {
	s := newTestScreen(t)
	g := game.NewSorting(rand.New(rand.NewSource(3)), nil, nil)

	DrawSorting(s, g, false)

	item, ok := g.Active()
	if !ok {
		t.Fatal("no active item")
	}
	if !strings.Contains(row(s, 3), item.Name) {
		t.Errorf("item row = %q, want %q", row(s, 3), item.Name)
	}
	for _, k := range sorting.Kinds() {
		if !screenContains(s, BinLabel(k)) {
			t.Errorf("bin %s not drawn", BinLabel(k))
		}
	}
	if !strings.Contains(row(s, testHeight-3), "Nivel 0/10") {
		t.Errorf("status row = %q", row(s, testHeight-3))
	}

	wrong := sorting.Kinds()[(int(item.Kind)+1)%len(sorting.Kinds())]
	if err := g.Drop(wrong); err != nil {
		t.Fatal(err)
	}
	DrawSorting(s, g, false)
	if !strings.Contains(row(s, testHeight-1), "Ups") {
		t.Errorf("mistake message missing: %q", row(s, testHeight-1))
	}

	g.ToggleJournal()
	DrawSorting(s, g, false)
	if !screenContains(s, "Aún no") {
		t.Error("journal overlay missing")
	}
}

func TestDecayText(t *testing.T) {
	tests := []struct {
		years float64
		want  string
	}{
		{0.1, "5 semanas"},
		{0.2, "10 semanas"},
		{0.001, "1 semana"},
		{150, "150 años"},
		{4000, "4000 años"},
	}
	for _, tt := range tests {
		if got := DecayText(tt.years); got != tt.want {
			t.Errorf("DecayText(%v) = %q, want %q", tt.years, got, tt.want)
		}
	}
}

func TestWrap(t *testing.T) {
	got := wrap("uno dos tres\n\ncuatro", 7)
	want := []string{"uno dos", "tres", "", "cuatro"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("wrap = %q, want %q", got, want)
	}
}
