package gridgraph

import "fmt"

// Grid is a bounded rectangular window over the drawing's integer
// coordinate space, recording which cells are occupied by existing
// geometry.
type Grid struct {
	minX, minY, maxX, maxY int
	width, height          int
	occupied               []bool
}

// New returns an empty (all-free) Grid covering the inclusive bounding
// box [minX,maxX] x [minY,maxY]. Margin is added on every side so a
// corridor search started exactly at the box edge still has room to
// route around obstacles.
func New(minX, minY, maxX, maxY, margin int) *Grid {
	minX -= margin
	minY -= margin
	maxX += margin
	maxY += margin
	width := maxX - minX + 1
	height := maxY - minY + 1
	return &Grid{
		minX: minX, minY: minY, maxX: maxX, maxY: maxY,
		width: width, height: height,
		occupied: make([]bool, width*height),
	}
}

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= g.minX && x <= g.maxX && y >= g.minY && y <= g.maxY
}

func (g *Grid) index(x, y int) int {
	return (y-g.minY)*g.width + (x - g.minX)
}

// Occupy marks (x,y) as containing existing geometry. Returns
// ErrOutOfBounds if the cell falls outside the grid.
func (g *Grid) Occupy(x, y int) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("gridgraph: Occupy(%d,%d): %w", x, y, ErrOutOfBounds)
	}
	g.occupied[g.index(x, y)] = true
	return nil
}

// IsOccupied reports whether (x,y) is marked occupied. Out-of-bounds
// cells report true, since a corridor search can never safely leave the
// grid's window.
func (g *Grid) IsOccupied(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.occupied[g.index(x, y)]
}
