// Package termhost runs a scrollverse engine in a terminal.
//
// Frames are rasterized by the gg software surface at a reduced scale and
// shown as truecolor half-block cells: every cell carries two vertically
// stacked pixels, the upper as the foreground of '▀' and the lower as its
// background. The logical canvas is CellWidth x CellHeight pixels per cell,
// so compositions keep their proportions on a terminal grid.
package termhost

import (
	"image"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/scrollverse"
)

// Logical canvas pixels per terminal cell.
const (
	CellWidth  = 8
	CellHeight = 16
)

const halfBlock = '▀'

// CanvasSize returns the logical canvas size for a cols x rows terminal.
func CanvasSize(cols, rows int) scrollverse.Size {
	return scrollverse.Size{Width: max(cols, 1) * CellWidth, Height: max(rows, 1) * CellHeight}
}

// Surface is a scrollverse.Surface drawing into a tcell screen.
type Surface struct {
	screen tcell.Screen
	raster *scrollverse.RasterSurface
}

// NewSurface returns a surface drawing into screen. The screen must be
// initialized.
func NewSurface(screen tcell.Screen) *Surface {
	cols, rows := screen.Size()
	return &Surface{
		screen: screen,
		raster: scrollverse.NewScaledRasterSurface(CanvasSize(cols, rows), 1.0/CellWidth),
	}
}

// Raster returns the backing raster surface.
func (s *Surface) Raster() *scrollverse.RasterSurface {
	return s.raster
}

// Begin implements scrollverse.Surface.
func (s *Surface) Begin(size scrollverse.Size, clear scrollverse.Color) error {
	return s.raster.Begin(size, clear)
}

// Submit implements scrollverse.Surface. The frame is rasterized, copied to
// the screen's cells and shown even when some commands failed.
func (s *Surface) Submit(cmds []scrollverse.DrawCommand) error {
	err := s.raster.Submit(cmds)
	s.blit(s.raster.RGBA())
	s.screen.Show()
	return err
}

// blit copies img to the screen, two pixel rows per cell row. Cells outside
// the image are left untouched.
func (s *Surface) blit(img *image.RGBA) {
	cols, rows := s.screen.Size()
	b := img.Bounds()
	for y := 0; y < rows; y++ {
		top := b.Min.Y + 2*y
		if top >= b.Max.Y {
			break
		}
		bottom := top + 1
		for x := 0; x < cols; x++ {
			px := b.Min.X + x
			if px >= b.Max.X {
				break
			}
			fg := cellColor(img, px, top)
			bg := fg
			if bottom < b.Max.Y {
				bg = cellColor(img, px, bottom)
			}
			s.screen.SetContent(x, y, halfBlock, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}
}

// cellColor returns the pixel at (x, y) composited over black.
func cellColor(img *image.RGBA, x, y int) tcell.Color {
	c := img.RGBAAt(x, y)
	// Premultiplied: over black is the stored channels.
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Close releases the raster surface.
func (s *Surface) Close() error {
	return s.raster.Close()
}
