// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package scale

import (
	"math"

	"maycharts/chartval"
)

// Scale maps data coordinates to device pixels and back. It is derived
// per frame from the view range, the viewport and the device pixel
// ratio; it is never stored as independent mutable state.
//
// Projection f(v) = m*g(v) + b, with g = identity (linear) or log10.
type Scale struct {
	kind chartval.ScaleKind
	m    float64
	b    float64
	gMin float64 // transformed domain endpoints
	gMax float64
	dpr  float64
}

// NewX builds the horizontal scale. The x transform is always linear;
// leftPx/rightPx are device pixels.
func NewX(r chartval.Range, leftPx, rightPx, dpr float64) Scale {
	return newScale(chartval.ScaleLinear, r, leftPx, rightPx, dpr)
}

// NewY builds the vertical scale for one group. Pixel y grows downward,
// so the larger data value maps to topPx. A log scale over a domain
// without positive values falls back to linear.
func NewY(kind chartval.ScaleKind, r chartval.Range, topPx, bottomPx, dpr float64) Scale {
	if kind == chartval.ScaleLog {
		if r.Max <= 0 {
			kind = chartval.ScaleLinear
		} else if r.Min <= 0 {
			// Restrict the domain to positive values instead of failing.
			r.Min = math.Min(r.Max/10, chartval.NearZero)
		}
	}
	return newScale(kind, r, bottomPx, topPx, dpr)
}

func newScale(kind chartval.ScaleKind, r chartval.Range, pxAtMin, pxAtMax, dpr float64) Scale {
	gMin := r.Min
	gMax := r.Max
	if kind == chartval.ScaleLog {
		gMin = math.Log10(math.Max(r.Min, 1e-12))
		gMax = math.Log10(math.Max(r.Max, 1e-12))
	}
	span := gMax - gMin
	if math.Abs(span) < 1e-12 {
		span = 1e-12
	}
	m := (pxAtMax - pxAtMin) / span
	return Scale{
		kind: kind,
		m:    m,
		b:    pxAtMin - m*gMin,
		gMin: gMin,
		gMax: gMax,
		dpr:  dpr,
	}
}

func (s Scale) Kind() chartval.ScaleKind {
	return s.kind
}

func (s Scale) Dpr() float64 {
	return s.dpr
}

// PixelsPerUnit is the slope of the projection in transformed units.
func (s Scale) PixelsPerUnit() float64 {
	return s.m
}

func (s Scale) ToPixel(v float64) float64 {
	if s.kind == chartval.ScaleLog {
		v = math.Log10(math.Max(v, 1e-12))
	}
	return s.m*v + s.b
}

func (s Scale) ToData(px float64) float64 {
	g := (px - s.b) / s.m
	if s.kind == chartval.ScaleLog {
		return math.Pow(10, g)
	}
	return g
}

// AlignHalf rounds a coordinate to the nearest pixel center so that a
// one device pixel wide stroke stays crisp. Apply after the data to
// pixel transform, never before, otherwise data ordering could invert
// at extreme zoom.
func AlignHalf(px float64) float64 {
	return math.Floor(px) + 0.5
}
