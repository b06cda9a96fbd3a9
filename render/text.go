package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Screen is the drawing surface; tcell.Screen satisfies it
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// drawText writes s from (x, y) and returns the column after the last cell.
// Wide runes take two cells, zero-width runes are dropped.
func drawText(s Screen, x, y int, str string, st tcell.Style) int {
	w, h := s.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, r := range str {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x >= 0 && x+rw <= w {
			s.SetContent(x, y, r, nil, st)
		}
		x += rw
	}
	return x
}

// drawCentered writes s centered on row y
func drawCentered(s Screen, y int, str string, st tcell.Style) {
	w, _ := s.Size()
	drawText(s, (w-runewidth.StringWidth(str))/2, y, str, st)
}

// fill paints a rectangle with r
func fill(s Screen, x, y, w, h int, r rune, st tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.SetContent(col, row, r, nil, st)
		}
	}
}

// drawCard draws a centered panel holding lines
func drawCard(s Screen, lines []string, fg RGB) {
	sw, sh := s.Size()
	width := 0
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}
	width = min(width+4, sw)
	height := min(len(lines)+2, sh)
	x, y := (sw-width)/2, (sh-height)/2

	fill(s, x, y, width, height, ' ', panelStyle(fg))
	for i, l := range lines {
		if i+1 >= height-1 {
			break
		}
		drawText(s, x+2, y+1+i, l, panelStyle(fg))
	}
}

// wrap splits str into lines no wider than width, breaking on spaces
func wrap(str string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	line, lineW := "", 0
	word, wordW := "", 0
	flush := func() {
		switch {
		case lineW == 0:
			line, lineW = word, wordW
		case lineW+1+wordW <= width:
			line, lineW = line+" "+word, lineW+1+wordW
		default:
			lines = append(lines, line)
			line, lineW = word, wordW
		}
		word, wordW = "", 0
	}
	for _, r := range str {
		if r == ' ' || r == '\n' {
			if wordW > 0 {
				flush()
			}
			if r == '\n' {
				lines = append(lines, line)
				line, lineW = "", 0
			}
			continue
		}
		word += string(r)
		wordW += runewidth.RuneWidth(r)
	}
	if wordW > 0 {
		flush()
	}
	if lineW > 0 {
		lines = append(lines, line)
	}
	return lines
}
