package gridfile

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// ErrCellSize indicates a non-positive PNG cell size.
var ErrCellSize = errors.New("gridfile: cell size must be positive")

// Colours used by the PNG renderer.
var (
	ColorFree     = color.White
	ColorObstacle = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	ColorPath     = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	ColorStart    = color.RGBA{R: 0, G: 170, B: 0, A: 255}
	ColorGoal     = color.RGBA{R: 0, G: 0, B: 220, A: 255}
)

// drawPNG paints the grid and path onto a new context, cellSize pixels per cell.
func drawPNG(values [][]int, path []gridgraph.Cell, cellSize int) (*gg.Context, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrCellSize, cellSize)
	}
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGrid, gridgraph.ErrEmptyGrid)
	}
	size := float64(cellSize)
	dc := gg.NewContext(len(values[0])*cellSize, len(values)*cellSize)
	dc.SetColor(ColorFree)
	dc.Clear()

	for r, row := range values {
		for c, v := range row {
			if v < 1 {
				continue
			}
			dc.SetColor(ColorObstacle)
			dc.DrawRectangle(float64(c)*size, float64(r)*size, size, size)
			dc.Fill()
		}
	}

	center := func(cell gridgraph.Cell) (float64, float64) {
		return float64(cell.Col)*size + size/2, float64(cell.Row)*size + size/2
	}
	if len(path) > 1 {
		dc.SetColor(ColorPath)
		dc.SetLineWidth(size / 3)
		dc.MoveTo(center(path[0]))
		for _, cell := range path[1:] {
			dc.LineTo(center(cell))
		}
		dc.Stroke()
	}
	if len(path) > 0 {
		x, y := center(path[0])
		dc.SetColor(ColorStart)
		dc.DrawCircle(x, y, size/3)
		dc.Fill()

		x, y = center(path[len(path)-1])
		dc.SetColor(ColorGoal)
		dc.DrawCircle(x, y, size/3)
		dc.Fill()
	}

	return dc, nil
}

// WritePNG encodes the grid and path as PNG into w.
func WritePNG(w io.Writer, values [][]int, path []gridgraph.Cell, cellSize int) error {
	dc, err := drawPNG(values, path, cellSize)
	if err != nil {
		return err
	}

	return dc.EncodePNG(w)
}

// SavePNG writes the grid and path as a PNG file.
func SavePNG(filename string, values [][]int, path []gridgraph.Cell, cellSize int) error {
	dc, err := drawPNG(values, path, cellSize)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("gridfile: save %s: %w", filename, err)
	}

	return nil
}
