package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/ndspace/internal/nd"
)

const DefaultPlotHeight = 10

// PlotComponent plots component dim of Delinearize(r, i) over the flat
// index i, sampled down to at most width points.
func PlotComponent[R nd.Rank](r nd.Range[R], dim, width int) (string, error) {
	if dim < 0 || dim >= r.Dims() {
		return "", fmt.Errorf("viz: dimension %d out of range for rank %d", dim, r.Dims())
	}
	total, ok := r.SizeChecked()
	if !ok {
		return "", fmt.Errorf("viz: %w: range %s is too large", nd.ErrOutOfRange, r)
	}
	if total == 0 {
		return "", fmt.Errorf("viz: range %s is empty", r)
	}

	step := sampleStep(int(total), width)
	data := make([]float64, 0, int(total)/step+1)
	for i := uint(0); i < total; i += uint(step) {
		data = append(data, float64(nd.Delinearize(r, i).Get(dim)))
	}

	caption := fmt.Sprintf("x%d over flat index, range %s", dim, r)
	return plot(data, width, caption), nil
}

// PlotCoords plots component dim of stored coordinates in flat order.
func PlotCoords(coords [][]uint, dim, width int, caption string) (string, error) {
	if len(coords) == 0 {
		return "", fmt.Errorf("viz: no coordinates to plot")
	}
	if dim < 0 || dim >= len(coords[0]) {
		return "", fmt.Errorf("viz: dimension %d out of range for rank %d", dim, len(coords[0]))
	}

	step := sampleStep(len(coords), width)
	data := make([]float64, 0, len(coords)/step+1)
	for i := 0; i < len(coords); i += step {
		data = append(data, float64(coords[i][dim]))
	}
	return plot(data, width, caption), nil
}

func sampleStep(n, width int) int {
	if width <= 0 {
		width = 80
	}
	step := n / width
	if step < 1 {
		step = 1
	}
	return step
}

func plot(data []float64, width int, caption string) string {
	if width <= 0 {
		width = 80
	}
	return asciigraph.Plot(data,
		asciigraph.Height(DefaultPlotHeight),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
