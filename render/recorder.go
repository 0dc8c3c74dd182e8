// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package render

import "image/color"

type OpKind uint8

const (
	OpPath OpKind = iota
	OpLine
	OpRect
	OpText
)

// Op is one recorded draw call.
type Op struct {
	Kind  OpKind
	Path  Path
	From  Point
	To    Point
	Rect  Rect
	Text  string
	Pos   Point
	Font  FontSpec
	Color color.NRGBA
	Paint Paint
}

// Recorder is a retained vector surface. It captures the frame's draw
// calls for snapshot tests and for export collaborators that turn the
// op dump into SVG. Text metrics are synthesized deterministically from
// the font size, so recorded frames are reproducible without a font
// stack.
type Recorder struct {
	ops []Op
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Ops() []Op {
	return r.ops
}

func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}

func (r *Recorder) DrawPath(p Path, paint Paint) {
	segments := make([]Segment, len(p.Segments))
	copy(segments, p.Segments)
	r.ops = append(r.ops, Op{Kind: OpPath, Path: Path{Segments: segments}, Paint: paint})
}

func (r *Recorder) DrawLine(from, to Point, paint Paint) {
	r.ops = append(r.ops, Op{Kind: OpLine, From: from, To: to, Paint: paint})
}

func (r *Recorder) DrawRect(rect Rect, paint Paint) {
	r.ops = append(r.ops, Op{Kind: OpRect, Rect: rect, Paint: paint})
}

func (r *Recorder) DrawText(s string, pos Point, font FontSpec, c color.NRGBA) (Rect, error) {
	size, _ := r.MeasureText(s, font)
	bounds := Rect{
		Min: pos,
		Max: Pt(pos.X+size.Width, pos.Y+size.Height),
	}
	r.ops = append(r.ops, Op{Kind: OpText, Text: s, Pos: pos, Font: font, Color: c})
	return bounds, nil
}

func (r *Recorder) MeasureText(s string, font FontSpec) (Size, error) {
	// Synthetic advance of 0.6em per rune keeps layout deterministic.
	n := 0
	for range s {
		n++
	}
	return Size{
		Width:  float32(n) * float32(font.SizePx) * 0.6,
		Height: float32(font.SizePx),
	}, nil
}
