// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package render

import "image/color"

// The core never rasterizes. It emits geometry and color intents against
// the Surface contract; the backend decides how pixels happen. Output
// must be identical whether the backend is an immediate raster surface
// or a retained vector surface, so frames stay deterministic and
// snapshot-testable.

type Point struct {
	X float32
	Y float32
}

func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

type Size struct {
	Width  float32
	Height float32
}

type Rect struct {
	Min Point
	Max Point
}

func (r Rect) Width() float32 {
	return r.Max.X - r.Min.X
}

func (r Rect) ContainsXY(x, y float32) bool {
	return x >= r.Min.X && x <= r.Max.X && y >= r.Min.Y && y <= r.Max.Y
}

func (r Rect) Height() float32 {
	return r.Max.Y - r.Min.Y
}

type SegmentOp uint8

const (
	SegMoveTo SegmentOp = iota
	SegLineTo
)

type Segment struct {
	Op SegmentOp
	P  Point
}

func MoveTo(p Point) Segment {
	return Segment{Op: SegMoveTo, P: p}
}

func LineTo(p Point) Segment {
	return Segment{Op: SegLineTo, P: p}
}

type Path struct {
	Segments []Segment
}

type Style uint8

const (
	StyleStroke Style = iota
	StyleFill
)

type Cap uint8

const (
	FlatCap Cap = iota
	RoundCap
)

// Paint is the full stroke/fill state of a draw call. It is comparable
// so geometry can be grouped by identical paint before submission.
// Dash holds on/off lengths in device pixels; a zero dash is solid.
type Paint struct {
	Color color.NRGBA
	Width float32
	Style Style
	Cap   Cap
	Dash  [2]float32
}

type FontSpec struct {
	SizePx int
}

// Surface is the drawing contract consumed by the core. All coordinates
// are device pixels. Text operations may fail (missing font, shaping
// error); callers skip the affected label and continue the frame.
type Surface interface {
	DrawPath(p Path, paint Paint)
	DrawLine(from, to Point, paint Paint)
	DrawRect(r Rect, paint Paint)
	DrawText(s string, pos Point, font FontSpec, c color.NRGBA) (Rect, error)
	MeasureText(s string, font FontSpec) (Size, error)
}
