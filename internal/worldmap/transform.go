package worldmap

import "github.com/vovakirdan/wordrpg/internal/core"

// reshape cuts a row-major slice into rows of width elements.
// A short final chunk is kept as a short row.
func reshape[T any](flat []T, width int) [][]T {
	if width <= 0 {
		return nil
	}
	rows := make([][]T, 0, (len(flat)+width-1)/width)
	for i := 0; i < len(flat); i += width {
		rows = append(rows, flat[i:core.Min(i+width, len(flat))])
	}
	return rows
}

// mirrorRows returns the rows in reverse order: row 0 becomes the last row.
func mirrorRows[T any](grid [][]T) [][]T {
	out := make([][]T, len(grid))
	for i, row := range grid {
		out[len(grid)-1-i] = row
	}
	return out
}

// rotate turns the grid a quarter: new row i is old column i, read from the
// last old row up to the first. Rows are truncated to the shortest one.
func rotate[T any](grid [][]T) [][]T {
	if len(grid) == 0 {
		return nil
	}
	width := len(grid[0])
	for _, row := range grid[1:] {
		width = core.Min(width, len(row))
	}

	out := make([][]T, width)
	for i := range out {
		out[i] = make([]T, len(grid))
		for r := range grid {
			out[i][r] = grid[len(grid)-1-r][i]
		}
	}
	return out
}

// toMapSpace converts an image-space grid (rows of pixels, top row first)
// into map-space storage indexed [col][row].
//
// The image is mirrored and then rotated; the two steps compose into a
// transpose, so image pixel (x, y) ends up at map (col=x, row=y) and a map
// printed row by row shows the same orientation as the source image.
func toMapSpace[T any](grid [][]T) [][]T {
	return rotate(mirrorRows(grid))
}
