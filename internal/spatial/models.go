package spatial

import "fmt"

// Cell addresses one galaxy slot in the universe grid.
type Cell struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	Z int `json:"z" yaml:"z"`
}

// Origin is the cell at (0,0,0).
var Origin = Cell{}

// Key is the cache key of the cell.
func (c Cell) Key() string {
	return fmt.Sprintf("%d|%d|%d", c.X, c.Y, c.Z)
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Offset returns the cell translated by (dx,dy,dz).
func (c Cell) Offset(dx, dy, dz int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy, Z: c.Z + dz}
}
