package spatial

const (
	// MaxRegionRadius bounds the cube a single region query may span.
	MaxRegionRadius     = 2
	DefaultRegionRadius = 1
)

// RegionSize is the number of cells Region returns for radius.
func RegionSize(radius int) int {
	if radius < 0 {
		return 0
	}
	side := 2*radius + 1
	return side * side * side
}

// Region returns every cell of the cube of half-width radius around center, ordered
// by x, then y, then z. A negative radius yields no cells.
func Region(center Cell, radius int) []Cell {
	if radius < 0 {
		return nil
	}

	cells := make([]Cell, 0, RegionSize(radius))
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			for dz := -radius; dz <= radius; dz++ {
				cells = append(cells, center.Offset(dx, dy, dz))
			}
		}
	}
	return cells
}
