package render

// Point is a terminal cell coordinate
type Point struct {
	X, Y int
}

// Line returns the cells from a to b inclusive (Bresenham)
func Line(a, b Point) []Point {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	pts := make([]Point, 0, max(dx, -dy)+1)
	err := dx + dy
	x, y := a.X, a.Y
	for {
		pts = append(pts, Point{x, y})
		if x == b.X && y == b.Y {
			return pts
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// lineGlyph picks a stroke character from the overall slope of a segment
func lineGlyph(a, b Point) rune {
	dx := b.X - a.X
	dy := b.Y - a.Y
	switch {
	case dy == 0:
		return '─'
	case dx == 0:
		return '│'
	}
	// Cells are about twice as tall as wide
	slope := float64(dy) * 2 / float64(dx)
	switch {
	case slope > 3 || slope < -3:
		return '│'
	case slope > -0.5 && slope < 0.5:
		return '─'
	case slope > 0:
		return '╲'
	default:
		return '╱'
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
