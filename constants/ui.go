package constants

// Screen rows reserved outside the play field
const (
	HeaderRows = 1 // Title
	FooterRows = 4 // Reveal tiles, status, hint, message
)

// Ring layout
const (
	// TileWidth is the cell pitch of the reveal strip, two filled plus a gap
	TileWidth = 3

	// NodeHitX and NodeHitY are the half-extents of a star's click box
	NodeHitX = 2
	NodeHitY = 1
)

// Category menu, laid out on a small ellipse around the pair midpoint
const (
	MenuRadiusX = 8
	MenuRadiusY = 4
	MenuHitX    = 2 // Half-width of an item's click box
)

// Sorting bins
const (
	BinHeight = 5
	BinGap    = 2
)
