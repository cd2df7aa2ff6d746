package viz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ndspace/internal/nd"
)

const (
	MaxGridRows   = 16
	MaxGridCols   = 16
	MaxGridSlices = 4
)

// shape3 views any rank as (slices, rows, cols) by padding leading ones.
func shape3[R nd.Rank](r nd.Range[R]) (slices, rows, cols uint) {
	ext := [3]uint{1, 1, 1}
	n := r.Dims()
	for i := 0; i < n; i++ {
		ext[3-n+i] = r.Get(i)
	}
	return ext[0], ext[1], ext[2]
}

// RenderGrid draws the flat offset of every coordinate of r. The cell at
// cursor, if any, is highlighted. Large ranges are clipped to
// MaxGridSlices x MaxGridRows x MaxGridCols.
func RenderGrid[R nd.Rank](r nd.Range[R], cursor *nd.ID[R]) string {
	if r.Size() == 0 {
		return Subtle.Render("(empty range " + r.String() + ")")
	}

	slices, rows, cols := shape3(r)
	width := len(strconv.FormatUint(uint64(r.Size()-1), 10))

	var sb strings.Builder
	for s := uint(0); s < min(slices, MaxGridSlices); s++ {
		if s > 0 {
			sb.WriteByte('\n')
		}
		if r.Dims() == 3 {
			sb.WriteString(Title.Render(fmt.Sprintf("x0 = %d", s)))
			sb.WriteByte('\n')
		}
		for row := uint(0); row < min(rows, MaxGridRows); row++ {
			cells := make([]string, 0, MaxGridCols+1)
			for col := uint(0); col < min(cols, MaxGridCols); col++ {
				flat := (s*rows+row)*cols + col
				style := Cell
				if cursor != nil && nd.Delinearize(r, flat) == *cursor {
					style = CellHighlight
				}
				cells = append(cells, style.Width(width).Render(strconv.FormatUint(uint64(flat), 10)))
			}
			if cols > MaxGridCols {
				cells = append(cells, Subtle.Render("…"))
			}
			sb.WriteString(strings.Join(cells, " "))
			sb.WriteByte('\n')
		}
		if rows > MaxGridRows {
			sb.WriteString(Subtle.Render(fmt.Sprintf("… %d more rows", rows-MaxGridRows)))
			sb.WriteByte('\n')
		}
	}
	if slices > MaxGridSlices {
		sb.WriteString(Subtle.Render(fmt.Sprintf("… %d more slices", slices-MaxGridSlices)))
		sb.WriteByte('\n')
	}

	header := Title.Render("range " + r.String())
	return lipgloss.JoinVertical(lipgloss.Left, header, Panel.Render(strings.TrimRight(sb.String(), "\n")))
}
