// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartview

import (
	"errors"
	"math"

	"maycharts/chartval"
)

// ErrDegenerateRange rejects transitions that would produce an empty or
// inverted visible range. The view state is left unchanged.
var ErrDegenerateRange = errors.New("degenerate visible range")

// Crosshair position in both pixel and data coordinates. SnappedIndex
// is the candle index the x coordinate snapped to, or -1.
type Crosshair struct {
	PixelX       float64
	PixelY       float64
	DataX        float64
	DataY        float64
	Group        chartval.GroupId
	SnappedIndex int
}

// ViewState holds the visible ranges and interaction state of one chart.
// All transitions are synchronous pure functions of (current state,
// inputs), which keeps replay deterministic for tests. The owning chart
// serializes mutation; ViewState itself is not goroutine safe.
type ViewState struct {
	X         chartval.Range
	Y         map[chartval.GroupId]chartval.Range
	Kinds     map[chartval.GroupId]chartval.ScaleKind
	Crosshair *Crosshair
	Dragging  bool
}

func New() *ViewState {
	return &ViewState{
		X:     chartval.DefaultRange(),
		Y:     map[chartval.GroupId]chartval.Range{chartval.DefaultGroup: chartval.DefaultRange()},
		Kinds: map[chartval.GroupId]chartval.ScaleKind{chartval.DefaultGroup: chartval.ScaleLinear},
	}
}

// Clone returns an independent snapshot for a render pass.
func (v *ViewState) Clone() ViewState {
	c := ViewState{
		X:        v.X,
		Y:        make(map[chartval.GroupId]chartval.Range, len(v.Y)),
		Kinds:    make(map[chartval.GroupId]chartval.ScaleKind, len(v.Kinds)),
		Dragging: v.Dragging,
	}
	for g, r := range v.Y {
		c.Y[g] = r
	}
	for g, k := range v.Kinds {
		c.Kinds[g] = k
	}
	if v.Crosshair != nil {
		ch := *v.Crosshair
		c.Crosshair = &ch
	}
	return c
}

func (v *ViewState) YRange(g chartval.GroupId) chartval.Range {
	if r, ok := v.Y[g]; ok {
		return r
	}
	return chartval.DefaultRange()
}

func (v *ViewState) Kind(g chartval.GroupId) chartval.ScaleKind {
	return v.Kinds[g]
}

// PanByPixels shifts the visible x range (and each group's y range when
// vertical panning is enabled) by the pointer delta converted through
// the inverse projection. Zoom level is unchanged. With a hard bound
// configured, a pan that would leave the bound is a no-op.
func (v *ViewState) PanByPixels(dxPx, dyPx, plotW, plotH float64, vertical bool, hard *chartval.Range) {
	plotW = math.Max(plotW, 1)
	plotH = math.Max(plotH, 1)
	wx := -dxPx / plotW * v.X.Width()
	next := v.X.Shift(wx)
	if hard != nil && (next.Min < hard.Min || next.Max > hard.Max) {
		return
	}
	v.X = next
	if vertical {
		for g, r := range v.Y {
			wy := dyPx / plotH * r.Width()
			v.Y[g] = r.Shift(wy)
		}
	}
}

// ZoomAt rescales the visible x range around the data coordinate
// anchorX so that the point under the cursor stays fixed. The new width
// is clamped to [minWidth, maxWidth] while keeping the anchor ratio.
func (v *ViewState) ZoomAt(anchorX, factor, minWidth, maxWidth float64) {
	if factor <= 0 || math.IsNaN(factor) {
		return
	}
	width := v.X.Width()
	newWidth := width / factor
	if minWidth > 0 && newWidth < minWidth {
		newWidth = minWidth
	}
	if maxWidth > 0 && newWidth > maxWidth {
		newWidth = maxWidth
	}
	ratio := (anchorX - v.X.Min) / width
	v.X.Min = anchorX - ratio*newWidth
	v.X.Max = v.X.Min + newWidth
}

// ZoomYAt rescales one group's y range around anchorY.
func (v *ViewState) ZoomYAt(g chartval.GroupId, anchorY, factor float64) {
	if factor <= 0 || math.IsNaN(factor) {
		return
	}
	r := v.YRange(g)
	width := r.Width()
	newWidth := math.Max(width/factor, 1e-12)
	ratio := (anchorY - r.Min) / width
	r.Min = anchorY - ratio*newWidth
	r.Max = r.Min + newWidth
	v.Y[g] = r
}

// AutoscaleFull sets the x range and every group's y range to the given
// full data extents with symmetric padding. Missing extents fall back
// to the default unit range instead of failing.
func (v *ViewState) AutoscaleFull(xr chartval.Range, xOk bool, ys map[chartval.GroupId]chartval.Range, pad float64) {
	if !xOk || !xr.Valid() {
		if xOk && xr.Min == xr.Max {
			xr = chartval.Range{Min: xr.Min - 0.5, Max: xr.Min + 0.5}
		} else {
			xr = chartval.DefaultRange()
		}
	}
	v.X = xr
	for g := range v.Y {
		v.Y[g] = paddedOrDefault(ys[g], pad)
	}
	for g, r := range ys {
		v.Y[g] = paddedOrDefault(r, pad)
		if _, ok := v.Kinds[g]; !ok {
			v.Kinds[g] = chartval.ScaleLinear
		}
	}
}

// AutoscaleYVisible replaces each group's y range with the given
// extents of the currently visible data, padded. The x range is left
// untouched.
func (v *ViewState) AutoscaleYVisible(ys map[chartval.GroupId]chartval.Range, pad float64) {
	for g, r := range ys {
		v.Y[g] = paddedOrDefault(r, pad)
	}
}

func paddedOrDefault(r chartval.Range, pad float64) chartval.Range {
	if r.Min == 0 && r.Max == 0 {
		return chartval.DefaultRange()
	}
	if r.Min == r.Max {
		r = chartval.Range{Min: r.Min - 0.5, Max: r.Min + 0.5}
	}
	if !r.Valid() {
		return chartval.DefaultRange()
	}
	return r.Pad(pad)
}

// SetScaleKind switches a group between linear and log and re-clamps
// the stored y range against the new kind's domain.
func (v *ViewState) SetScaleKind(g chartval.GroupId, kind chartval.ScaleKind) {
	v.Kinds[g] = kind
	if kind != chartval.ScaleLog {
		return
	}
	r := v.YRange(g)
	if r.Max <= 0 {
		// No positive values yet; the y scale falls back to linear
		// until the range is corrected.
		return
	}
	if r.Min <= 0 {
		r.Min = math.Min(r.Max/10, chartval.NearZero)
		v.Y[g] = r
	}
}

// SetVisibleRange is the explicit absolute set. Degenerate ranges are
// rejected, not clamped.
func (v *ViewState) SetVisibleRange(xMin, xMax float64) error {
	r := chartval.Range{Min: xMin, Max: xMax}
	if !r.Valid() {
		return ErrDegenerateRange
	}
	v.X = r
	return nil
}

func (v *ViewState) SetCrosshair(ch *Crosshair) {
	v.Crosshair = ch
}
