package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"runtime/debug"
	"time"

	"github.com/nfnt/resize"
	"github.com/soypat/gear/internal/d2"
	"github.com/soypat/gear/outline"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"gonum.org/v1/gonum/spatial/r2"
)

// RasterConfig controls Raster output.
type RasterConfig struct {
	// Size is the output width and height in pixels. Defaults to 512.
	Size int
	// Supersample renders at Size*Supersample and downsamples for
	// antialiasing. Defaults to 2.
	Supersample int
	// Padding around the shape in drawing units. Defaults to outline.DefaultPadding.
	Padding    float64
	Fill       color.Color
	Background color.Color
	// Caption is drawn in the top left corner when not empty.
	Caption string
}

var (
	defaultFill       = color.RGBA{R: 0x46, G: 0x89, B: 0x66, A: 0xff}
	defaultBackground = color.RGBA{R: 0xff, G: 0xf8, B: 0xe3, A: 0xff}
	captionColor      = color.RGBA{R: 0x2c, G: 0x2c, B: 0x2c, A: 0xff}
)

// Raster samples the shape on a square grid centred on its bounding box and
// returns the antialiased image. Panics raised by the shape are returned as errors.
func Raster(s outline.SDF2, cfg RasterConfig) (img image.Image, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	if cfg.Size <= 0 {
		cfg.Size = defaultSize
	}
	if cfg.Supersample <= 0 {
		cfg.Supersample = 2
	}
	if cfg.Padding <= 0 {
		cfg.Padding = outline.DefaultPadding
	}
	if cfg.Fill == nil {
		cfg.Fill = defaultFill
	}
	if cfg.Background == nil {
		cfg.Background = defaultBackground
	}
	start := time.Now()
	n := cfg.Size * cfg.Supersample
	bb := d2.Box(s.Bounds()).Square().Enlarge(d2.Elem(2 * cfg.Padding))
	hi := sample(s, bb, n, cfg.Fill, cfg.Background)

	// downsample image for antialiasing
	out := image.NewRGBA(image.Rect(0, 0, cfg.Size, cfg.Size))
	draw.Draw(out, out.Bounds(), resize.Resize(uint(cfg.Size), uint(cfg.Size), hi, resize.Bilinear), image.Point{}, draw.Src)
	if cfg.Caption != "" {
		caption(out, cfg.Caption)
	}
	logger().Debug("raster", "size", cfg.Size, "supersample", cfg.Supersample, "elapsed", time.Since(start))
	return out, nil
}

// sample evaluates s at the centre of each of n×n pixels covering bb.
// Y increases upwards in drawing space and downwards in the image.
func sample(s outline.SDF2, bb d2.Box, n int, fill, background color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	step := bb.Size().X / float64(n)
	fr, fg, fb, fa := fill.RGBA()
	br, bg, bbl, ba := background.RGBA()
	for j := 0; j < n; j++ {
		y := bb.Max.Y - (float64(j)+0.5)*step
		for i := 0; i < n; i++ {
			x := bb.Min.X + (float64(i)+0.5)*step
			d := s.Evaluate(r2.Vec{X: x, Y: y})
			// Pixel coverage from signed distance, one pixel wide ramp.
			t := math.Min(1, math.Max(0, 0.5-d/step))
			img.SetRGBA(i, j, color.RGBA{
				R: mix(br, fr, t),
				G: mix(bg, fg, t),
				B: mix(bbl, fb, t),
				A: mix(ba, fa, t),
			})
		}
	}
	return img
}

// mix linearly interpolates 16 bit colour channels and returns 8 bits.
func mix(a, b uint32, t float64) uint8 {
	return uint8((float64(a) + t*(float64(b)-float64(a))) / 0x101)
}

func caption(dst draw.Image, text string) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(captionColor),
		Face: face,
		Dot:  fixed.P(8, 8+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}
