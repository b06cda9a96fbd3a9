package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ecoring/constants"
	"github.com/lixenwraith/ecoring/constellation"
	"github.com/lixenwraith/ecoring/game"
	"github.com/lixenwraith/ecoring/selection"
)

const constellationTitle = "✦ Sinfonía de Esferas ✦"

// DrawConstellation renders one frame of the puzzle
func DrawConstellation(s Screen, g *game.Constellation, muted bool) {
	w, h := s.Size()
	l := NewLayout(w, h)
	orbit := g.Orbit()

	fill(s, 0, 0, w, h, ' ', style(RgbBackground))
	drawCentered(s, 0, constellationTitle, style(RgbOracle).Bold(true))

	for _, c := range g.State().Connections() {
		drawSegment(s, l.NodePos(c.Pair.Lo, orbit), l.NodePos(c.Pair.Hi, orbit), style(CategoryColor(c.Category)))
	}
	for _, e := range g.ErrorLines() {
		drawSegment(s, l.NodePos(e.A, orbit), l.NodePos(e.B, orbit), style(fade(RgbErrorLine, e.Life)))
	}

	drawNodes(s, l, g)

	if a, b, ok := g.Pending(); ok {
		drawMenu(s, l, l.Midpoint(a, b, orbit), g)
	}

	drawTiles(s, l, g)
	drawConstellationStatus(s, g, muted)

	if g.OracleVisible() {
		drawCard(s, []string{
			"🔮 El Oráculo ha hablado",
			"",
			"Tus doce hábitos forman una red.",
			"Cada conexión cruza el centro y sostiene a las demás.",
			"",
			"r: nueva constelación   q: salir",
		}, RgbOracle)
	}
}

// drawSegment strokes a link between two stars, leaving the endpoints for the nodes
func drawSegment(s Screen, a, b Point, st tcell.Style) {
	glyph := lineGlyph(a, b)
	pts := Line(a, b)
	for i := 1; i < len(pts)-1; i++ {
		s.SetContent(pts[i].X, pts[i].Y, glyph, nil, st)
	}
}

func drawNodes(s Screen, l Layout, g *game.Constellation) {
	orbit := g.Orbit()
	held, holding := g.Selected()
	pa, pb, pending := g.Pending()

	for n := constellation.Node(0); n < constellation.RingSize; n++ {
		p := l.NodePos(n, orbit)

		if pulse := g.Pulse(n); pulse > 0 {
			glow := style(fade(RgbNodeGlow, pulse/constants.PulseStart))
			s.SetContent(p.X-1, p.Y, '(', nil, glow)
			s.SetContent(p.X+1, p.Y, ')', nil, glow)
		}

		st := style(RgbNode)
		active := (holding && held == n) || (pending && (pa == n || pb == n))
		if active {
			st = style(RgbNodeSelected).Bold(true).Reverse(true)
		}
		s.SetContent(p.X, p.Y, NodeLabel(n), nil, st)
	}
}

func drawMenu(s Screen, l Layout, mid Point, g *game.Constellation) {
	want, sequenced := g.Engine().Expected(g.State())
	for i, c := range constellation.Categories() {
		p := l.MenuItemPos(i, mid)
		st := panelStyle(CategoryColor(c))
		if sequenced && c == want {
			st = st.Underline(true)
		}
		// Key digit then glyph, centered on the item cell
		x := drawText(s, p.X-constants.MenuHitX, p.Y, fmt.Sprintf("%d", i+1), st)
		drawText(s, x, p.Y, c.Emoji(), st)
	}
}

func drawTiles(s Screen, l Layout, g *game.Constellation) {
	origin := l.TileOrigin()
	conns := g.State().Connections()
	revealed := g.Revealed()
	for i := 0; i < constellation.RingSize; i++ {
		st := style(RgbTileHidden)
		r := '░'
		if i < revealed {
			st = style(CategoryColor(conns[i].Category))
			r = '█'
		}
		x := origin.X + i*constants.TileWidth
		s.SetContent(x, origin.Y, r, nil, st)
		s.SetContent(x+1, origin.Y, r, nil, st)
	}
}

func drawConstellationStatus(s Screen, g *game.Constellation, muted bool) {
	_, h := s.Size()

	x := drawText(s, 1, h-3, fmt.Sprintf("Conexiones %d/%d", g.State().Count(), constellation.RingSize), style(RgbStatusText))
	if want, ok := g.Engine().Expected(g.State()); ok {
		x = drawText(s, x, h-3, fmt.Sprintf("  Siguiente: %s %s", want.Emoji(), want), style(CategoryColor(want)))
	}
	switch g.Phase() {
	case selection.PhaseOneSelected:
		x = drawText(s, x, h-3, "  Elige la segunda estrella", style(RgbHintText))
	case selection.PhaseAwaitingCategory:
		x = drawText(s, x, h-3, "  Elige un hábito (1-6, Esc cancela)", style(RgbHintText))
	}
	drawAudioState(s, x, h-3, muted)

	drawText(s, 1, h-2, g.Hint(), style(RgbHintText))
	if msg := g.Message(); msg != "" {
		drawText(s, 1, h-1, msg, style(RgbMessage).Bold(true))
	}
}

func drawAudioState(s Screen, x, y int, muted bool) {
	x = drawText(s, x, y, "  Sonido: ", style(RgbStatusText))
	if muted {
		drawText(s, x, y, "OFF", style(RgbAudioMuted))
		return
	}
	drawText(s, x, y, "ON", style(RgbAudioOn))
}
