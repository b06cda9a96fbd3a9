package render

import (
	"fmt"
	"strconv"

	"github.com/lixenwraith/ecoring/constants"
	"github.com/lixenwraith/ecoring/game"
	"github.com/lixenwraith/ecoring/sorting"
)

const sortingTitle = "♻ Guardianes del Océano ♻"

var binLabels = [...]string{
	sorting.Plastic: "Plástico",
	sorting.Paper:   "Papel",
	sorting.Glass:   "Vidrio",
	sorting.Organic: "Orgánico",
}

// BinLabel returns the display name of the bin for k
func BinLabel(k sorting.Kind) string {
	if int(k) < len(binLabels) {
		return binLabels[k]
	}
	return k.String()
}

// DecayText describes how long an item takes to break down
func DecayText(years float64) string {
	if years < 1 {
		weeks := max(int(years*52+0.5), 1)
		if weeks == 1 {
			return "1 semana"
		}
		return fmt.Sprintf("%d semanas", weeks)
	}
	return strconv.FormatFloat(years, 'f', -1, 64) + " años"
}

// DrawSorting renders one frame of the sorting game
func DrawSorting(s Screen, g *game.Sorting, muted bool) {
	w, h := s.Size()
	l := NewLayout(w, h)

	fill(s, 0, 0, w, h, ' ', style(RgbBackground))
	drawCentered(s, 0, sortingTitle, style(RgbFact).Bold(true))

	if item, ok := g.Active(); ok {
		drawCentered(s, 3, item.Icon+"  "+item.Name, style(RgbNodeSelected).Bold(true))
		drawCentered(s, 5, "⏳ Tarda "+DecayText(item.Decay)+" en degradarse", style(RgbHintText))
	}

	if fact := g.Fact(); fact != "" {
		for i, line := range wrap("💡 "+fact, w-4) {
			drawCentered(s, 7+i, line, style(RgbFact))
		}
	}

	for i, k := range sorting.Kinds() {
		drawBin(s, l, i, k)
	}

	x := drawText(s, 1, h-3, fmt.Sprintf("Puntos %d   Impacto %.2f kg   Nivel %d/%d",
		g.Score(), g.ImpactKg(), g.Sorted(), sorting.ItemsPerLevel), style(RgbStatusText))
	drawAudioState(s, x, h-3, muted)
	drawText(s, 1, h-2, "1-4 o clic en un contenedor · j diario · n nuevo juego · q salir", style(RgbHintText))
	if msg := g.Message(); msg != "" {
		drawText(s, 1, h-1, msg, style(RgbMessage).Bold(true))
	}

	switch {
	case g.JournalVisible():
		drawCard(s, wrap(g.Journal(), min(w-8, 60)), RgbStatusText)
	case g.Victory():
		drawCard(s, []string{
			"🌊 ¡Nivel completado!",
			"",
			fmt.Sprintf("Puntos: %d", g.Score()),
			fmt.Sprintf("Impacto real: %.2f kg", g.ImpactKg()),
			"",
			"n: jugar de nuevo   q: salir",
		}, RgbFact)
	default:
		if m, ok := g.Memory(); ok {
			lines := append([]string{"🐚 Memoria desbloqueada: " + m.Title, ""}, wrap(m.Text, min(w-8, 60))...)
			drawCard(s, append(lines, "", "Esc: cerrar"), RgbOracle)
		}
	}
}

func drawBin(s Screen, l Layout, i int, k sorting.Kind) {
	p, bw := l.BinRect(k)
	st := panelStyle(BinColor(k))
	fill(s, p.X, p.Y, bw, constants.BinHeight, ' ', st)
	label := fmt.Sprintf("%d %s", i+1, BinLabel(k))
	drawText(s, p.X+1, p.Y+constants.BinHeight/2, label, st.Bold(true))
}
