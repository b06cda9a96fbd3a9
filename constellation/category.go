package constellation

import (
	"fmt"
	"strings"
)

// Category is the thematic habit tag attached to an accepted connection
type Category uint8

const (
	Flora Category = iota
	Water
	Soil
	Transport
	Recycling
	Energy
	categoryCount
)

// categoryInfo holds the fixed presentation attributes of each category
type categoryInfo struct {
	name  string
	emoji string
	color uint32  // 0xRRGGBB
	tone  float64 // Hz
}

var categoryTable = [categoryCount]categoryInfo{
	Flora:     {name: "flora", emoji: "🍃", color: 0xFF6BCB, tone: 392},
	Water:     {name: "agua", emoji: "💧", color: 0x2F9BFF, tone: 523},
	Soil:      {name: "tierra", emoji: "🌱", color: 0x8AFF80, tone: 659},
	Transport: {name: "transporte", emoji: "🚲", color: 0xFFAA33, tone: 440},
	Recycling: {name: "reciclar", emoji: "♻", color: 0x9D6BFF, tone: 587},
	Energy:    {name: "energia", emoji: "💡", color: 0xFFFF80, tone: 349},
}

// Categories returns the closed category set in menu order
func Categories() []Category {
	out := make([]Category, 0, categoryCount)
	for c := Category(0); c < categoryCount; c++ {
		out = append(out, c)
	}
	return out
}

// ParseCategory resolves a category label (case-insensitive)
func ParseCategory(s string) (Category, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for c := Category(0); c < categoryCount; c++ {
		if categoryTable[c].name == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Valid reports whether c belongs to the category set
func (c Category) Valid() bool {
	return c < categoryCount
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", uint8(c))
	}
	return categoryTable[c].name
}

// Emoji returns the menu glyph
func (c Category) Emoji() string {
	if !c.Valid() {
		return "?"
	}
	return categoryTable[c].emoji
}

// Color returns the edge color as 0xRRGGBB
func (c Category) Color() uint32 {
	if !c.Valid() {
		return 0xFFFFFF
	}
	return categoryTable[c].color
}

// Tone returns the success tone frequency in Hz
func (c Category) Tone() float64 {
	if !c.Valid() {
		return 0
	}
	return categoryTable[c].tone
}

// DefaultSequence is the required category order for the sequence variant
var DefaultSequence = []Category{
	Water, Water, Soil,
	Flora, Flora, Transport,
	Recycling, Recycling, Energy,
	Energy, Soil, Water,
}
