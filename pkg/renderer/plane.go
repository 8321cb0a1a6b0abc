package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/calluna-lt3/raytrace/pkg/core"
)

// MaxCells bounds the number of cells a single framebuffer may hold
const MaxCells = 1 << 28

// Plane is the framebuffer: a row-major grid of real-valued RGB cells addressed
// by centered integer coordinates, where (0, 0) is the middle cell, x grows to
// the right and y grows upward. Row 0 of the backing store is the top row.
type Plane struct {
	width, height int
	originRow     int // row index of y == 0
	originCol     int // column index of x == 0
	background    core.Vec3
	pixels        []core.Vec3
}

// NewPlane creates a width x height framebuffer filled with the background color
func NewPlane(width, height int, background core.Vec3) (*Plane, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("framebuffer dimensions must be positive, got %dx%d", width, height)
	}
	if width > math.MaxInt/height || width*height > MaxCells {
		return nil, fmt.Errorf("framebuffer %dx%d exceeds %d cells", width, height, MaxCells)
	}

	pixels := make([]core.Vec3, width*height)
	for i := range pixels {
		pixels[i] = background
	}

	return &Plane{
		width:      width,
		height:     height,
		originRow:  height / 2,
		originCol:  width / 2,
		background: background,
		pixels:     pixels,
	}, nil
}

// Width returns the number of columns
func (p *Plane) Width() int { return p.width }

// Height returns the number of rows
func (p *Plane) Height() int { return p.height }

// Background returns the color every cell starts with
func (p *Plane) Background() core.Vec3 { return p.background }

// Range returns the inclusive x bounds of the centered coordinate system
func (p *Plane) Range() (int, int) {
	return -p.width / 2, p.width / 2
}

// Domain returns the inclusive y bounds of the centered coordinate system
func (p *Plane) Domain() (int, int) {
	return -p.height / 2, p.height / 2
}

// Index maps a centered coordinate to an offset into the flat pixel store.
// ok is false when the coordinate falls outside the grid; for even
// dimensions one edge of the inclusive Range/Domain has no backing cell.
func (p *Plane) Index(x, y int) (int, bool) {
	row := p.originRow - y
	col := p.originCol + x
	if row < 0 || row >= p.height || col < 0 || col >= p.width {
		return 0, false
	}
	return row*p.width + col, true
}

// Point returns a pointer to the cell at (x, y), or false if out of range
func (p *Plane) Point(x, y int) (*core.Vec3, bool) {
	i, ok := p.Index(x, y)
	if !ok {
		return nil, false
	}
	return &p.pixels[i], true
}

// At returns the color of the cell at (x, y), or false if out of range
func (p *Plane) At(x, y int) (core.Vec3, bool) {
	i, ok := p.Index(x, y)
	if !ok {
		return core.Vec3{}, false
	}
	return p.pixels[i], true
}

// Pixels returns the row-major cells, top row first. Callers must not modify it.
func (p *Plane) Pixels() []core.Vec3 {
	return p.pixels
}

// QuantizeChannel converts a [0, 1] channel to a byte, clamping and truncating
func QuantizeChannel(v float64) uint8 {
	return uint8(255 * max(0, min(1, v)))
}

// QuantizeColor converts a real-valued color to 8-bit RGB
func QuantizeColor(c core.Vec3) (r, g, b uint8) {
	return QuantizeChannel(c.X), QuantizeChannel(c.Y), QuantizeChannel(c.Z)
}

// Quantize returns width*height RGB byte triples in row-major order, top row first
func (p *Plane) Quantize() []uint8 {
	out := make([]uint8, 0, len(p.pixels)*3)
	for _, c := range p.pixels {
		r, g, b := QuantizeColor(c)
		out = append(out, r, g, b)
	}
	return out
}

// ToRGBA converts the framebuffer to an opaque RGBA image
func (p *Plane) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	for row := 0; row < p.height; row++ {
		for col := 0; col < p.width; col++ {
			r, g, b := QuantizeColor(p.pixels[row*p.width+col])
			img.SetRGBA(col, row, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// Print writes a text dump of the grid: "-" for cells still holding the
// background color, otherwise the quantized red channel. A hit whose red
// channel saturates prints as 255, not "-".
func (p *Plane) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "[")
	for row := 0; row < p.height; row++ {
		fmt.Fprint(bw, "  [")
		for _, c := range p.pixels[row*p.width : (row+1)*p.width] {
			if c == p.background {
				fmt.Fprint(bw, " - ")
			} else {
				fmt.Fprintf(bw, " %d ", QuantizeChannel(c.X))
			}
		}
		fmt.Fprintln(bw, "]")
	}
	fmt.Fprintln(bw, "]")
	return bw.Flush()
}
