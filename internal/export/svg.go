// Package export renders iteration spaces and stored walks as SVG.
package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/san-kum/ndspace/internal/nd"
)

const (
	MaxSVGCells = 4096
	sliceGap    = 2
)

var ErrTooLarge = errors.New("export: range too large for svg")

// GridSVG draws every cell of r labeled with its flat offset. Rank 3
// ranges are drawn as slices stacked top to bottom.
func GridSVG[R nd.Rank](r nd.Range[R], highlight *nd.ID[R], cell int) (string, error) {
	size, ok := r.SizeChecked()
	if !ok {
		return "", fmt.Errorf("%w: %w: range %s overflows", ErrTooLarge, nd.ErrOutOfRange, r)
	}
	if size > MaxSVGCells {
		return "", fmt.Errorf("%w: %d cells (max %d)", ErrTooLarge, size, MaxSVGCells)
	}
	if cell <= 0 {
		cell = 32
	}

	n := r.Dims()
	slices, rows, cols := uint(1), uint(1), r.Get(n-1)
	if n >= 2 {
		rows = r.Get(n - 2)
	}
	if n == 3 {
		slices = r.Get(0)
	}

	width := int(cols) * cell
	height := int(slices*rows)*cell + int(slices-1)*sliceGap*cell/2
	if slices == 0 {
		height = 0
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g font-family="monospace" font-size="%d" text-anchor="middle" dominant-baseline="central">
`, width, height, width, height, cell/3)

	var id nd.ID[R]
	for s := uint(0); s < slices; s++ {
		top := int(s*rows)*cell + int(s)*sliceGap*cell/2
		for row := uint(0); row < rows; row++ {
			for col := uint(0); col < cols; col++ {
				id.Set(n-1, col)
				if n >= 2 {
					id.Set(n-2, row)
				}
				if n == 3 {
					id.Set(0, s)
				}
				x := int(col) * cell
				y := top + int(row)*cell
				fill := "#1a1a2e"
				if highlight != nil && *highlight == id {
					fill = "#ff6b9d"
				}
				fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="#444466"/>
<text x="%d" y="%d" fill="#e0e0e0">%d</text>
`, x, y, cell, cell, fill, x+cell/2, y+cell/2, nd.Linear(r, id))
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String(), nil
}

// PathSVG draws the order in which coords were visited, projected onto
// components dimX and dimY.
func PathSVG(coords [][]uint, dimX, dimY, width, height int, strokeColor string) (string, error) {
	if len(coords) < 2 {
		return "", errors.New("export: need at least two coordinates")
	}
	rank := len(coords[0])
	if dimX < 0 || dimX >= rank || dimY < 0 || dimY >= rank {
		return "", fmt.Errorf("export: axes %d,%d out of range for rank %d", dimX, dimY, rank)
	}

	minX, maxX := coords[0][dimX], coords[0][dimX]
	minY, maxY := coords[0][dimY], coords[0][dimY]
	for _, c := range coords {
		minX, maxX = min(minX, c[dimX]), max(maxX, c[dimX])
		minY, maxY = min(minY, c[dimY]), max(maxY, c[dimY])
	}

	// pad by half a cell so border coordinates stay visible
	spanX := float64(maxX-minX) + 1
	spanY := float64(maxY-minY) + 1
	scale := func(v, lo uint, span float64, size int) float64 {
		return (float64(v-lo) + 0.5) / span * float64(size)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor)

	for i, c := range coords {
		x := scale(c[dimX], minX, spanX, width)
		y := scale(c[dimY], minY, spanY, height)
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String(), nil
}
