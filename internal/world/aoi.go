package world

// AOIGrid implements a cell-based Area of Interest index of monsters.
// Cell size is chosen so that a 3x3 neighbourhood of cells fully covers
// the sight range (Chebyshev distance 20).
// Accessed only from the combat goroutine, so no locks.

const cellSize = 20

type cellKey struct {
	cx, cy int
}

func toCellCoord(v int) int {
	if v < 0 {
		return (v - cellSize + 1) / cellSize
	}
	return v / cellSize
}

// AOIGrid tracks which monsters are in which cells.
type AOIGrid struct {
	cells map[cellKey]map[int32]struct{} // cellKey → set of monster IDs
}

func NewAOIGrid() *AOIGrid {
	return &AOIGrid{
		cells: make(map[cellKey]map[int32]struct{}),
	}
}

func (g *AOIGrid) key(x, y int) cellKey {
	return cellKey{cx: toCellCoord(x), cy: toCellCoord(y)}
}

// Add places a monster into the grid.
func (g *AOIGrid) Add(id int32, x, y int) {
	k := g.key(x, y)
	cell := g.cells[k]
	if cell == nil {
		cell = make(map[int32]struct{})
		g.cells[k] = cell
	}
	cell[id] = struct{}{}
}

// Remove takes a monster out of the grid.
func (g *AOIGrid) Remove(id int32, x, y int) {
	k := g.key(x, y)
	cell := g.cells[k]
	if cell != nil {
		delete(cell, id)
		if len(cell) == 0 {
			delete(g.cells, k)
		}
	}
}

// Move updates a monster's cell when its position changes.
func (g *AOIGrid) Move(id int32, oldX, oldY, newX, newY int) {
	if g.key(oldX, oldY) == g.key(newX, newY) {
		return
	}
	g.Remove(id, oldX, oldY)
	g.Add(id, newX, newY)
}

// GetNearby returns all monster IDs in a 3x3 neighbourhood of cells
// around the given position. Caller does fine-grained distance filtering.
func (g *AOIGrid) GetNearby(x, y int) []int32 {
	cx := toCellCoord(x)
	cy := toCellCoord(y)
	var result []int32
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for id := range g.cells[cellKey{cx: cx + dx, cy: cy + dy}] {
				result = append(result, id)
			}
		}
	}
	return result
}
