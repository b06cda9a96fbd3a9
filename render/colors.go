package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ecoring/constellation"
	"github.com/lixenwraith/ecoring/sorting"
)

// Palette
var (
	RgbBackground   = RGB{10, 14, 30}    // Night sky
	RgbNode         = RGB{180, 230, 255} // Resting star
	RgbNodeSelected = RGB{255, 255, 255}
	RgbNodeGlow     = RGB{0, 208, 255} // Selection pulse
	RgbErrorLine    = RGB{255, 50, 50} // Rejected link at full life
	RgbTileHidden   = RGB{60, 60, 80}
	RgbPanel        = RGB{28, 32, 56}
	RgbStatusText   = RGB{220, 220, 220}
	RgbHintText     = RGB{140, 160, 190}
	RgbMessage      = RGB{255, 170, 90}
	RgbOracle       = RGB{255, 240, 160}
	RgbFact         = RGB{120, 220, 160}
	RgbAudioMuted   = RGB{255, 0, 0}
	RgbAudioOn      = RGB{0, 255, 0}
)

var binColors = [...]RGB{
	sorting.Plastic: {255, 214, 0},
	sorting.Paper:   {33, 150, 243},
	sorting.Glass:   {76, 175, 80},
	sorting.Organic: {141, 110, 99},
}

// CategoryColor returns the edge color for c
func CategoryColor(c constellation.Category) RGB {
	return HexRGB(c.Color())
}

// BinColor returns the bin color for k
func BinColor(k sorting.Kind) RGB {
	if int(k) < len(binColors) {
		return binColors[k]
	}
	return RgbStatusText
}

// fade blends c toward the background, life 1 is full strength
func fade(c RGB, life float64) RGB {
	return RgbBackground.Blend(c, life)
}

// style builds a foreground style on the sky background
func style(fg RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(fg.Tcell()).Background(RgbBackground.Tcell())
}

// panelStyle builds a foreground style on card background
func panelStyle(fg RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(fg.Tcell()).Background(RgbPanel.Tcell())
}
