package render

import (
	"fmt"
	"html"
	"image"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/draw"
)

// Options controls the character grid
type Options struct {
	// MaxColumns caps the grid width. Narrower images keep one column per pixel.
	MaxColumns int
	// RowAspect compensates for glyphs being taller than they are wide.
	RowAspect float64
	// Ramp lists glyphs from sparsest to densest.
	Ramp string
	// AlphaThreshold is the alpha below which a cell renders blank.
	AlphaThreshold uint8
	Title          string
}

// DefaultOptions returns the options used for every response
func DefaultOptions() Options {
	return Options{
		MaxColumns:     80,
		RowAspect:      0.5,
		Ramp:           " .:-=+*#%@",
		AlphaThreshold: 32,
		Title:          "catscii",
	}
}

const (
	documentHead = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { background: #000; margin: 0; }
pre { font-family: monospace; font-size: 10px; line-height: 1; margin: 1em; }
</style>
</head>
<body>
<pre>`
	documentTail = "</pre>\n</body>\n</html>\n"
)

// GridSize returns the columns and rows used for a width x height image
func GridSize(width, height int, opts Options) (int, int) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	cols := width
	if opts.MaxColumns > 0 && cols > opts.MaxColumns {
		cols = opts.MaxColumns
	}
	aspect := opts.RowAspect
	if aspect <= 0 {
		aspect = 1
	}
	rows := int(math.Round(float64(height) * float64(cols) / float64(width) * aspect))
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

// Render converts img into an HTML document. Each cell takes a glyph by
// luminance and the cell's color; runs of one color share a span.
func Render(img image.Image, opts Options) string {
	ramp := []rune(opts.Ramp)
	if len(ramp) == 0 {
		ramp = []rune(DefaultOptions().Ramp)
	}

	b := img.Bounds()
	cols, rows := GridSize(b.Dx(), b.Dy(), opts)

	var sb strings.Builder
	fmt.Fprintf(&sb, documentHead, html.EscapeString(opts.Title))

	if cols > 0 {
		grid := image.NewNRGBA(image.Rect(0, 0, cols, rows))
		draw.ApproxBiLinear.Scale(grid, grid.Bounds(), img, b, draw.Src, nil)

		for y := 0; y < rows; y++ {
			writeRow(&sb, grid, y, ramp, opts.AlphaThreshold)
			sb.WriteByte('\n')
		}
	}

	sb.WriteString(documentTail)
	return sb.String()
}

func writeRow(sb *strings.Builder, grid *image.NRGBA, y int, ramp []rune, threshold uint8) {
	open := ""
	closeRun := func() {
		if open != "" {
			sb.WriteString("</span>")
			open = ""
		}
	}

	for x := 0; x < grid.Rect.Dx(); x++ {
		c := grid.NRGBAAt(x, y)
		if c.A < threshold {
			closeRun()
			sb.WriteByte(' ')
			continue
		}

		hex := hexColor(c)
		if hex != open {
			closeRun()
			fmt.Fprintf(sb, `<span style="color:%s">`, hex)
			open = hex
		}
		sb.WriteString(html.EscapeString(string(glyph(c, ramp))))
	}
	closeRun()
}

func glyph(c color.NRGBA, ramp []rune) rune {
	lum := (0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)) / 255
	idx := int(math.Round(lum * float64(len(ramp)-1)))
	return ramp[idx]
}

func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
