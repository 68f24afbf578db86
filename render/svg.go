package render

import (
	"errors"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"
	"github.com/soypat/gear/outline"
)

// SVGOptions controls WriteSVG output.
type SVGOptions struct {
	// Size is the width and height of the document in pixels. Defaults to 512.
	Size int
	// Padding around the outline in drawing units. Defaults to outline.DefaultPadding.
	Padding float64
	Fill    string
	Stroke  string
	// PitchCircle draws the pitch circle as a dashed line.
	PitchCircle bool
	Title       string
}

const defaultSize = 512

var errEmptyOutline = errors.New("render: empty outline")

// WriteSVG writes a standalone SVG document with the outline of req,
// centred at the origin and fit to a square view box.
func WriteSVG(w io.Writer, req outline.Request, opts SVGOptions) error {
	d := outline.Build(req)
	if d == "" {
		return errEmptyOutline
	}
	if opts.Size <= 0 {
		opts.Size = defaultSize
	}
	if opts.Padding <= 0 {
		opts.Padding = outline.DefaultPadding
	}
	if opts.Fill == "" {
		opts.Fill = "#468966"
	}
	if opts.Stroke == "" {
		opts.Stroke = "#2c5443"
	}
	vb := outline.ScaleToViewBox(outline.MaxRadius(req), opts.Padding)
	// Stroke widths scale with the view box so they look the same at any gear size.
	sw := num(vb.Size / 400)

	canvas := svg.New(w)
	canvas.Start(opts.Size, opts.Size, `viewBox="`+vb.String()+`"`)
	if opts.Title != "" {
		canvas.Title(opts.Title)
	}
	canvas.Path(d, "fill:"+opts.Fill+";fill-rule:evenodd;stroke:"+opts.Stroke+";stroke-width:"+sw)
	if opts.PitchCircle {
		canvas.Path(outline.CirclePath(req.PitchRadius, false),
			"fill:none;stroke:#b64926;stroke-width:"+sw+";stroke-dasharray:"+num(vb.Size/100))
	}
	canvas.End()
	return nil
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
