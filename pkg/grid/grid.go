package grid

// GetGridCoords converts a linear cell index into (x, y) coordinates on a
// text grid with the given number of columns.
func GetGridCoords(index int, cols int) (int, int) {
	return index % cols, index / cols
}
