package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/achilleasa/go-raytrace/types"
)

// Frame holds the averaged linear color of each rendered pixel. Row 0 is the
// top of the image. Frame implements image.Image, applying gamma 2 and
// clamping when converting to 8-bit colors.
type Frame struct {
	Width  int
	Height int

	Pix []types.Vec3
}

func newFrame(w, h int) *Frame {
	return &Frame{
		Width:  w,
		Height: h,
		Pix:    make([]types.Vec3, w*h),
	}
}

// Get the linear color at (x, y).
func (f *Frame) Color(x, y int) types.Vec3 {
	return f.Pix[y*f.Width+x]
}

func (f *Frame) ColorModel() color.Model {
	return color.RGBAModel
}

func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width, f.Height)
}

func (f *Frame) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(f.Bounds())) {
		return color.RGBA{}
	}

	c := f.Color(x, y)
	return color.RGBA{
		R: toByte(c[0]),
		G: toByte(c[1]),
		B: toByte(c[2]),
		A: 255,
	}
}

// Get the average linear color over all pixels.
func (f *Frame) Mean() types.Vec3 {
	var sum types.Vec3
	for _, c := range f.Pix {
		sum = sum.Add(c)
	}
	return sum.Div(float64(len(f.Pix)))
}

func toByte(v float64) uint8 {
	v = math.Sqrt(math.Max(0, v))
	if v >= 1 {
		return 255
	}
	return uint8(v * 256)
}
