package render

// Layout splits a width x height area into rows x cols rectangles. Boundaries
// fall at k*extent/n so leftover cells spread across the grid.
func Layout(width, height, rows, cols int) [][]Rect {
	if rows <= 0 || cols <= 0 {
		return nil
	}

	rects := make([][]Rect, rows)
	for r := range rows {
		y0, y1 := r*height/rows, (r+1)*height/rows
		rects[r] = make([]Rect, cols)
		for c := range cols {
			x0, x1 := c*width/cols, (c+1)*width/cols
			rects[r][c] = Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
		}
	}
	return rects
}
