package main

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/intio/aoc-grid/puzzle"
)

// Glyph metrics of the fixed "6x13" font.
const (
	glyphW   = 6
	glyphH   = 13
	glyphAsc = 11
	margin   = 4
)

// frameSize returns the window size needed to show f.
func frameSize(f puzzle.Frame) (w, h uint16) {
	cols := 0
	for _, row := range f.Rows {
		cols = max(cols, len(row))
	}
	return uint16(cols*glyphW + 2*margin), uint16(len(f.Rows)*glyphH + 2*margin)
}

// Painter wraps calls to the low-level drawing API, exposing a
// slightly more abstract interface.
type Painter struct {
	xc *xgb.Conn
	gc xproto.Gcontext
}

// NewPainter allocates a new Painter.
func NewPainter(xc *xgb.Conn) *Painter {
	return &Painter{xc: xc}
}

// Init initializes the Painter's graphics context for the viewer's
// window.
func (p *Painter) Init(v *Viewer) error {
	tFont, err := xproto.NewFontId(p.xc)
	if err != nil {
		return err
	}
	err = xproto.OpenFontChecked(p.xc, tFont, uint16(len("6x13")), "6x13").Check()
	if err != nil {
		return err
	}
	defer xproto.CloseFont(p.xc, tFont)

	gc, err := xproto.NewGcontextId(p.xc)
	if err != nil {
		return err
	}
	p.gc = gc

	return xproto.CreateGCChecked(
		p.xc,
		p.gc,
		xproto.Drawable(v.window),
		xproto.GcForeground|xproto.GcBackground|xproto.GcFont,
		[]uint32{
			v.xroot.WhitePixel,
			v.xroot.BlackPixel,
			uint32(tFont),
		},
	).Check()
}

// DrawText draws given text at an x, y offset on the given window.
func (p *Painter) DrawText(d xproto.Drawable, x, y int16, text string) error {
	// ImageText8 takes at most 255 characters.
	for len(text) > 0 {
		n := min(len(text), 255)
		if err := xproto.ImageText8Checked(
			p.xc,
			uint8(n),
			d,
			p.gc,
			x,
			y,
			text[:n],
		).Check(); err != nil {
			return err
		}
		text = text[n:]
		x += int16(n * glyphW)
	}
	return nil
}

// DrawFrame draws every row of f, top to bottom.
func (p *Painter) DrawFrame(d xproto.Drawable, f puzzle.Frame) error {
	for i, row := range f.Rows {
		y := int16(margin + i*glyphH + glyphAsc)
		if err := p.DrawText(d, margin, y, row); err != nil {
			return err
		}
	}
	return nil
}
