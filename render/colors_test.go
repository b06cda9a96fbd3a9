package render

import (
	"testing"

	"github.com/lixenwraith/ecoring/constellation"
	"github.com/lixenwraith/ecoring/sorting"
)

func TestCategoryColor(t *testing.T) {
	tests := []struct {
		cat  constellation.Category
		want RGB
	}{
		{constellation.Flora, RGB{0xFF, 0x6B, 0xCB}},
		{constellation.Water, RGB{0x2F, 0x9B, 0xFF}},
		{constellation.Soil, RGB{0x8A, 0xFF, 0x80}},
		{constellation.Transport, RGB{0xFF, 0xAA, 0x33}},
		{constellation.Recycling, RGB{0x9D, 0x6B, 0xFF}},
		{constellation.Energy, RGB{0xFF, 0xFF, 0x80}},
	}

	for _, tt := range tests {
		t.Run(tt.cat.String(), func(t *testing.T) {
			if got := CategoryColor(tt.cat); got != tt.want {
				t.Errorf("CategoryColor(%s) = %v, want %v", tt.cat, got, tt.want)
			}
		})
	}
}

func TestCategoryColorsDistinct(t *testing.T) {
	seen := make(map[RGB]constellation.Category)
	for _, c := range constellation.Categories() {
		rgb := CategoryColor(c)
		if prev, ok := seen[rgb]; ok {
			t.Errorf("%s shares color %v with %s", c, rgb, prev)
		}
		seen[rgb] = c
	}
}

func TestBinColorFallback(t *testing.T) {
	for _, k := range sorting.Kinds() {
		if BinColor(k) == RgbStatusText {
			t.Errorf("bin %s uses fallback color", k)
		}
	}
	if got := BinColor(sorting.Kind(99)); got != RgbStatusText {
		t.Errorf("unknown bin color = %v, want %v", got, RgbStatusText)
	}
}

func TestFadeEndpoints(t *testing.T) {
	if got := fade(RgbErrorLine, 1.0); got != RgbErrorLine {
		t.Errorf("fade at full life = %v, want %v", got, RgbErrorLine)
	}
	if got := fade(RgbErrorLine, 0); got != RgbBackground {
		t.Errorf("fade at zero life = %v, want background %v", got, RgbBackground)
	}

	// Red channel must fall monotonically as life drains
	prev := fade(RgbErrorLine, 1.0).R
	for life := 0.95; life > 0; life -= 0.05 {
		r := fade(RgbErrorLine, life).R
		if r > prev {
			t.Fatalf("red rose from %d to %d at life %.2f", prev, r, life)
		}
		prev = r
	}
}

func TestHexRGB(t *testing.T) {
	if got := HexRGB(0x102030); got != (RGB{0x10, 0x20, 0x30}) {
		t.Errorf("HexRGB = %v", got)
	}
}
