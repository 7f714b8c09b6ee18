// Package render draws a board to a PNG image without a window system.
// The squares and piece discs are generated as SVG and rasterised with
// oksvg/rasterx; piece letters are drawn with the Go Bold font.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/hailam/chessrules/internal/board"
)

// Options controls the look of a snapshot.
type Options struct {
	SquareSize int
	Light      color.RGBA
	Dark       color.RGBA
	Highlight  []board.Square // squares tinted, e.g. the last move
}

// DefaultOptions returns 64px squares in the usual brown scheme.
func DefaultOptions() Options {
	return Options{
		SquareSize: 64,
		Light:      color.RGBA{0xF0, 0xD9, 0xB5, 0xFF},
		Dark:       color.RGBA{0xB5, 0x88, 0x63, 0xFF},
	}
}

var highlightColor = color.RGBA{0xCD, 0xD2, 0x6A, 0xFF}

// Snapshot renders b, rank 8 at the top.
func Snapshot(b *board.Board, opts Options) (*image.RGBA, error) {
	if opts.SquareSize <= 0 {
		opts.SquareSize = DefaultOptions().SquareSize
	}
	size := opts.SquareSize * 8

	icon, err := oksvg.ReadIconStream(strings.NewReader(boardSVG(b, opts)))
	if err != nil {
		return nil, fmt.Errorf("parse board svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	if err := drawLetters(img, b, opts.SquareSize); err != nil {
		return nil, err
	}
	return img, nil
}

// WritePNG renders b and encodes it as PNG to w.
func WritePNG(w io.Writer, b *board.Board, opts Options) error {
	img, err := Snapshot(b, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// squareOrigin returns the top-left pixel of sq.
func squareOrigin(sq board.Square, size int) (int, int) {
	return sq.File() * size, (7 - sq.Rank()) * size
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// boardSVG describes the squares and a disc for every piece.
func boardSVG(b *board.Board, opts Options) string {
	sz := opts.SquareSize
	highlighted := make(map[board.Square]bool, len(opts.Highlight))
	for _, sq := range opts.Highlight {
		highlighted[sq] = true
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		sz*8, sz*8, sz*8, sz*8)

	for sq := board.A1; sq <= board.H8; sq++ {
		x, y := squareOrigin(sq, sz)
		fill := opts.Light
		if (sq.File()+sq.Rank())%2 == 0 {
			fill = opts.Dark
		}
		if highlighted[sq] {
			fill = highlightColor
		}
		fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`, x, y, sz, sz, hex(fill))
	}

	r := float64(sz) * 0.38
	for sq := board.A1; sq <= board.H8; sq++ {
		p := b.PieceAt(sq)
		if p.IsEmpty() {
			continue
		}
		x, y := squareOrigin(sq, sz)
		fill, stroke := "#fafafa", "#202020"
		if p.Color == board.Black {
			fill, stroke = "#202020", "#fafafa"
		}
		fmt.Fprintf(&sb, `<circle cx="%g" cy="%g" r="%g" fill="%s" stroke="%s" stroke-width="%g"/>`,
			float64(x)+float64(sz)/2, float64(y)+float64(sz)/2, r, fill, stroke, float64(sz)/32)
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}

func newFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// drawLetters writes the piece letter centred on each disc.
func drawLetters(img *image.RGBA, b *board.Board, sz int) error {
	face, err := newFace(float64(sz) * 0.45)
	if err != nil {
		return err
	}
	defer face.Close()

	metrics := face.Metrics()
	for sq := board.A1; sq <= board.H8; sq++ {
		p := b.PieceAt(sq)
		if p.IsEmpty() {
			continue
		}

		ink := color.RGBA{0x20, 0x20, 0x20, 0xFF}
		if p.Color == board.Black {
			ink = color.RGBA{0xFA, 0xFA, 0xFA, 0xFF}
		}
		letter := strings.ToUpper(p.String())

		d := &font.Drawer{Dst: img, Src: image.NewUniform(ink), Face: face}
		x, y := squareOrigin(sq, sz)
		width := d.MeasureString(letter)
		d.Dot = fixed.Point26_6{
			X: fixed.I(x) + (fixed.I(sz)-width)/2,
			Y: fixed.I(y) + (fixed.I(sz)+metrics.Ascent-metrics.Descent)/2,
		}
		d.DrawString(letter)
	}
	return nil
}
