// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package ggsurface implements the render.Surface contract on a
// software raster context. It is fully headless, so it serves both
// window blitting and golden-image tests without a display.
package ggsurface

import (
	"errors"
	"image"
	"image/color"

	"github.com/gogpu/gg"
	ggtext "github.com/gogpu/gg/text"

	"maycharts/render"
)

// ErrNoFont is returned by text operations when no font source was
// configured. Callers treat it as a per-label failure, not a frame
// abort.
var ErrNoFont = errors.New("ggsurface: no font configured")

type Surface struct {
	ctx    *gg.Context
	width  int
	height int
	source *ggtext.FontSource
	faces  map[int]ggtext.Face
}

type Option func(*Surface)

// WithFont supplies the TTF/OTF bytes used for label drawing. Without a
// font, text calls fail with ErrNoFont and labels are skipped.
func WithFont(fontData []byte) Option {
	return func(s *Surface) {
		src, err := ggtext.NewFontSource(fontData)
		if err != nil {
			return
		}
		s.source = src
	}
}

func New(width, height int, opts ...Option) *Surface {
	s := &Surface{
		ctx:    gg.NewContext(width, height),
		width:  width,
		height: height,
		faces:  make(map[int]ggtext.Face),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Surface) Width() int {
	return s.width
}

func (s *Surface) Height() int {
	return s.height
}

// Clear fills the whole surface with the given color.
func (s *Surface) Clear(c color.NRGBA) {
	s.ctx.ClearWithColor(gg.FromColor(c))
}

func (s *Surface) applyPaint(paint render.Paint) {
	s.ctx.SetColor(paint.Color)
	s.ctx.SetLineWidth(float64(paint.Width))
	if paint.Cap == render.RoundCap {
		s.ctx.SetLineCap(gg.LineCapRound)
	} else {
		s.ctx.SetLineCap(gg.LineCapButt)
	}
	if paint.Dash[0] > 0 {
		s.ctx.SetDash(float64(paint.Dash[0]), float64(paint.Dash[1]))
	} else {
		s.ctx.ClearDash()
	}
}

func (s *Surface) realize(paint render.Paint) {
	if paint.Style == render.StyleFill {
		s.ctx.ClosePath()
		_ = s.ctx.Fill()
	} else {
		_ = s.ctx.Stroke()
	}
}

func (s *Surface) DrawPath(p render.Path, paint render.Paint) {
	if len(p.Segments) == 0 {
		return
	}
	s.applyPaint(paint)
	s.ctx.ClearPath()
	for _, seg := range p.Segments {
		if seg.Op == render.SegMoveTo {
			s.ctx.NewSubPath()
			s.ctx.MoveTo(float64(seg.P.X), float64(seg.P.Y))
		} else {
			s.ctx.LineTo(float64(seg.P.X), float64(seg.P.Y))
		}
	}
	s.realize(paint)
}

func (s *Surface) DrawLine(from, to render.Point, paint render.Paint) {
	s.applyPaint(paint)
	s.ctx.ClearPath()
	s.ctx.DrawLine(float64(from.X), float64(from.Y), float64(to.X), float64(to.Y))
	_ = s.ctx.Stroke()
}

func (s *Surface) DrawRect(r render.Rect, paint render.Paint) {
	s.applyPaint(paint)
	s.ctx.ClearPath()
	s.ctx.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Width()), float64(r.Height()))
	s.realize(paint)
}

func (s *Surface) face(font render.FontSpec) (ggtext.Face, error) {
	if s.source == nil {
		return nil, ErrNoFont
	}
	size := font.SizePx
	if size <= 0 {
		size = 12
	}
	if f, ok := s.faces[size]; ok {
		return f, nil
	}
	f := s.source.Face(float64(size))
	s.faces[size] = f
	return f, nil
}

func (s *Surface) DrawText(str string, pos render.Point, font render.FontSpec, c color.NRGBA) (render.Rect, error) {
	face, err := s.face(font)
	if err != nil {
		return render.Rect{}, err
	}
	s.ctx.SetFont(face)
	s.ctx.SetColor(c)
	w, h := s.ctx.MeasureString(str)
	// pos is the top-left corner; DrawString expects the baseline.
	s.ctx.DrawString(str, float64(pos.X), float64(pos.Y)+h*0.8)
	return render.Rect{
		Min: pos,
		Max: render.Pt(pos.X+float32(w), pos.Y+float32(h)),
	}, nil
}

func (s *Surface) MeasureText(str string, font render.FontSpec) (render.Size, error) {
	face, err := s.face(font)
	if err != nil {
		return render.Size{}, err
	}
	s.ctx.SetFont(face)
	w, h := s.ctx.MeasureString(str)
	return render.Size{Width: float32(w), Height: float32(h)}, nil
}

// Image returns the rasterized frame.
func (s *Surface) Image() image.Image {
	// Flush pending GPU shapes before reading pixels.
	_ = s.ctx.FlushGPU()
	return s.ctx.Image()
}

// RGBAPixels returns a tightly packed row-major RGBA8 copy of the
// frame, suitable for window blitting or PNG export collaborators.
func (s *Surface) RGBAPixels() []byte {
	src := s.Image()
	img, ok := src.(*image.RGBA)
	if !ok {
		b := src.Bounds()
		rgba := image.NewRGBA(b)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				rgba.Set(x, y, src.At(x, y))
			}
		}
		img = rgba
	}
	rowBytes := s.width * 4
	out := make([]byte, rowBytes*s.height)
	for y := 0; y < s.height; y++ {
		copy(out[y*rowBytes:(y+1)*rowBytes], img.Pix[y*img.Stride:y*img.Stride+rowBytes])
	}
	return out
}
