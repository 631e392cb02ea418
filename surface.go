package scrollverse

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/gogpu/gg"
)

// Common errors returned by surfaces and the driver.
var (
	// ErrNoSurface is returned when a run is started without a drawing surface.
	ErrNoSurface = errors.New("scrollverse: no drawing surface attached")

	// ErrSurfaceClosed is returned when drawing to a closed surface.
	ErrSurfaceClosed = errors.New("scrollverse: surface is closed")
)

// Surface is a 2D raster target the engine's commands are issued against.
type Surface interface {
	// Begin starts a frame of the given logical size, resizing the backing
	// store if needed, and fills it with clear.
	Begin(size Size, clear Color) error
	// Submit draws cmds in order.
	Submit(cmds []DrawCommand) error
}

// RasterSurface is a Surface backed by a gg software context.
//
// RasterSurface is NOT safe for concurrent use.
type RasterSurface struct {
	dc     *gg.Context
	scale  float64
	size   Size // logical size
	closed bool
}

// NewRasterSurface creates a surface whose pixmap matches size.
func NewRasterSurface(size Size) *RasterSurface {
	return NewScaledRasterSurface(size, 1)
}

// NewScaledRasterSurface creates a surface whose pixmap is the logical size
// multiplied by scale. Commands keep using logical coordinates; this lets a
// small target (a terminal) show the full composition.
func NewScaledRasterSurface(size Size, scale float64) *RasterSurface {
	if !(scale > 0) {
		scale = 1
	}
	size.Width = max(size.Width, 1)
	size.Height = max(size.Height, 1)
	w, h := scaledDims(size, scale)
	return &RasterSurface{dc: gg.NewContext(w, h), scale: scale, size: size}
}

func scaledDims(size Size, scale float64) (int, int) {
	w := max(int(math.Round(float64(size.Width)*scale)), 1)
	h := max(int(math.Round(float64(size.Height)*scale)), 1)
	return w, h
}

// Scale returns the logical-to-device scale.
func (s *RasterSurface) Scale() float64 {
	return s.scale
}

// SetScale changes the logical-to-device scale. It takes effect on the next
// Begin.
func (s *RasterSurface) SetScale(scale float64) {
	if scale > 0 {
		s.scale = scale
	}
}

// LogicalSize returns the size of the last frame in canvas pixels.
func (s *RasterSurface) LogicalSize() Size {
	return s.size
}

// Context returns the underlying gg context.
func (s *RasterSurface) Context() *gg.Context {
	return s.dc
}

// Begin implements Surface.
func (s *RasterSurface) Begin(size Size, clear Color) error {
	if s == nil {
		return ErrNoSurface
	}
	if s.closed {
		return ErrSurfaceClosed
	}
	size.Width = max(size.Width, 1)
	size.Height = max(size.Height, 1)
	s.size = size
	w, h := scaledDims(size, s.scale)
	if err := s.dc.Resize(w, h); err != nil {
		return fmt.Errorf("scrollverse: resize surface: %w", err)
	}
	s.dc.ClearWithColor(toRGBA(clear))
	return nil
}

// Submit implements Surface. A failing command is skipped; the first error
// is returned after the rest of the frame has been drawn.
func (s *RasterSurface) Submit(cmds []DrawCommand) error {
	if s == nil {
		return ErrNoSurface
	}
	if s.closed {
		return ErrSurfaceClosed
	}
	var first error
	for i := range cmds {
		if err := s.draw(&cmds[i]); err != nil && first == nil {
			first = fmt.Errorf("scrollverse: draw %s: %w", cmds[i].Source, err)
		}
	}
	return first
}

func (s *RasterSurface) draw(cmd *DrawCommand) error {
	dc := s.dc
	k := s.scale
	if cmd.Paint.MaxAlpha() <= 0 {
		return nil
	}
	switch cmd.Type {
	case CommandFillCircle:
		if !(cmd.Radius > 0) {
			return nil
		}
		dc.ClearPath()
		dc.DrawCircle(cmd.X*k, cmd.Y*k, cmd.Radius*k)
		dc.SetFillBrush(s.brush(&cmd.Paint))
		return dc.Fill()

	case CommandStrokeCircle:
		if !(cmd.Radius > 0) {
			return nil
		}
		dc.ClearPath()
		dc.DrawCircle(cmd.X*k, cmd.Y*k, cmd.Radius*k)
		return s.stroke(cmd)

	case CommandStrokeEllipse:
		if !(cmd.Radius > 0) || !(cmd.RadiusY > 0) {
			return nil
		}
		dc.ClearPath()
		dc.Push()
		dc.Translate(cmd.X*k, cmd.Y*k)
		dc.Rotate(cmd.Rotation)
		dc.DrawEllipse(0, 0, cmd.Radius*k, cmd.RadiusY*k)
		err := s.stroke(cmd)
		dc.Pop()
		return err

	case CommandLine:
		dc.ClearPath()
		dc.MoveTo(cmd.X*k, cmd.Y*k)
		dc.LineTo(cmd.X2*k, cmd.Y2*k)
		return s.stroke(cmd)

	case CommandFillRect:
		dc.ClearPath()
		dc.DrawRectangle(cmd.X*k, cmd.Y*k, cmd.X2*k, cmd.Y2*k)
		dc.SetFillBrush(s.brush(&cmd.Paint))
		return dc.Fill()

	case CommandStrokeCross:
		r := cmd.Radius * k
		x, y := cmd.X*k, cmd.Y*k
		dc.ClearPath()
		dc.MoveTo(x-r, y)
		dc.LineTo(x+r, y)
		dc.MoveTo(x, y-r)
		dc.LineTo(x, y+r)
		return s.stroke(cmd)

	default:
		return fmt.Errorf("unknown command type %d", cmd.Type)
	}
}

func (s *RasterSurface) stroke(cmd *DrawCommand) error {
	width := cmd.LineWidth * s.scale
	if !(width > 0) {
		s.dc.ClearPath()
		return nil
	}
	s.dc.SetLineWidth(width)
	s.dc.SetStrokeBrush(s.brush(&cmd.Paint))
	return s.dc.Stroke()
}

// brush converts a Paint to a gg brush in device coordinates.
func (s *RasterSurface) brush(p *Paint) gg.Brush {
	k := s.scale
	switch p.Kind {
	case PaintRadial:
		g := gg.NewRadialGradientBrush(p.X1*k, p.Y1*k, p.R0*k, math.Max(p.R1*k, 1e-6))
		if p.X0 != p.X1 || p.Y0 != p.Y1 {
			g.SetFocus(p.X0*k, p.Y0*k)
		}
		for _, st := range p.GradientStops() {
			g.AddColorStop(st.Offset, toRGBA(st.Color))
		}
		return g
	case PaintLinear:
		g := gg.NewLinearGradientBrush(p.X0*k, p.Y0*k, p.X1*k, p.Y1*k)
		for _, st := range p.GradientStops() {
			g.AddColorStop(st.Offset, toRGBA(st.Color))
		}
		return g
	default:
		return gg.Solid(toRGBA(p.Color))
	}
}

// Image returns a copy of the rendered pixels.
func (s *RasterSurface) Image() image.Image {
	return s.dc.Image()
}

// RGBA returns the rendered pixels as premultiplied RGBA.
func (s *RasterSurface) RGBA() *image.RGBA {
	src := s.dc.Image()
	if img, ok := src.(*image.RGBA); ok {
		return img
	}
	img := image.NewRGBA(src.Bounds())
	draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)
	return img
}

// SavePNG writes the current frame to path.
func (s *RasterSurface) SavePNG(path string) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	return s.dc.SavePNG(path)
}

// Close releases the gg context. It is idempotent.
func (s *RasterSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.dc.Close()
}

func toRGBA(c Color) gg.RGBA {
	return gg.RGBA2(c.R, c.G, c.B, clamp01(c.A))
}
