// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartval

import (
	"fmt"
	"math"
	"sort"
)

// Series is a named, typed, ordered sequence of points or candles.
// X values are monotonically non-decreasing; ties are allowed and
// interpreted as the same column. Historical entries are never modified
// in place, except the last one via UpdateLast. Consumers treat the
// slices returned by Points/Candles as an immutable snapshot of the
// current version.
type Series struct {
	id       string
	typ      SeriesType
	group    GroupId
	baseline float64

	points  []Point
	candles []Candle
	version uint64
}

func NewSeries(id string, typ SeriesType) *Series {
	return &Series{id: id, typ: typ, group: DefaultGroup}
}

func (s *Series) Id() string {
	return s.id
}

func (s *Series) Type() SeriesType {
	return s.typ
}

func (s *Series) Group() GroupId {
	return s.group
}

func (s *Series) SetGroup(g GroupId) {
	if s.group != g {
		s.group = g
		s.version++
	}
}

// Baseline returns the reference value of Baseline and Histogram series.
func (s *Series) Baseline() float64 {
	return s.baseline
}

func (s *Series) SetBaseline(v float64) {
	if s.baseline != v {
		s.baseline = v
		s.version++
	}
}

// Version increases on every data or group change. It keys the
// downsample cache.
func (s *Series) Version() uint64 {
	return s.version
}

func (s *Series) Len() int {
	if s.typ.IsOHLC() {
		return len(s.candles)
	}
	return len(s.points)
}

func (s *Series) Points() []Point {
	return s.points
}

func (s *Series) Candles() []Candle {
	return s.candles
}

func (s *Series) validatePoint(i int, p Point, prevX float64) error {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return &DataError{Series: s.id, Index: i, Reason: fmt.Errorf("non-finite value")}
	}
	if p.X < prevX {
		return &DataError{Series: s.id, Index: i, Reason: fmt.Errorf("x %g below predecessor %g", p.X, prevX)}
	}
	return nil
}

func (s *Series) validateCandle(i int, c Candle, prevX float64) error {
	if err := c.Validate(); err != nil {
		return &DataError{Series: s.id, Index: i, Reason: err}
	}
	if c.X < prevX {
		return &DataError{Series: s.id, Index: i, Reason: fmt.Errorf("x %g below predecessor %g", c.X, prevX)}
	}
	return nil
}

// Replace swaps the series data wholesale after validating all of it.
// On error the previous data is left untouched.
func (s *Series) Replace(points []Point) error {
	if s.typ.IsOHLC() {
		return fmt.Errorf("series %q: point data on OHLC series", s.id)
	}
	prevX := math.Inf(-1)
	for i, p := range points {
		if err := s.validatePoint(i, p, prevX); err != nil {
			return err
		}
		prevX = p.X
	}
	s.points = points
	s.version++
	return nil
}

func (s *Series) ReplaceCandles(candles []Candle) error {
	if !s.typ.IsOHLC() {
		return fmt.Errorf("series %q: candle data on XY series", s.id)
	}
	prevX := math.Inf(-1)
	for i, c := range candles {
		if err := s.validateCandle(i, c, prevX); err != nil {
			return err
		}
		prevX = c.X
	}
	s.candles = candles
	s.version++
	return nil
}

// Append adds one point after the current last one.
func (s *Series) Append(p Point) error {
	if s.typ.IsOHLC() {
		return fmt.Errorf("series %q: point data on OHLC series", s.id)
	}
	prevX := math.Inf(-1)
	if n := len(s.points); n > 0 {
		prevX = s.points[n-1].X
	}
	if err := s.validatePoint(len(s.points), p, prevX); err != nil {
		return err
	}
	s.points = append(s.points, p)
	s.version++
	return nil
}

func (s *Series) AppendCandle(c Candle) error {
	if !s.typ.IsOHLC() {
		return fmt.Errorf("series %q: candle data on XY series", s.id)
	}
	prevX := math.Inf(-1)
	if n := len(s.candles); n > 0 {
		prevX = s.candles[n-1].X
	}
	if err := s.validateCandle(len(s.candles), c, prevX); err != nil {
		return err
	}
	s.candles = append(s.candles, c)
	s.version++
	return nil
}

// UpdateLast replaces the last point. The new x must not move before the
// previous entry.
func (s *Series) UpdateLast(p Point) error {
	n := len(s.points)
	if s.typ.IsOHLC() || n == 0 {
		return fmt.Errorf("series %q: no point to update", s.id)
	}
	prevX := math.Inf(-1)
	if n > 1 {
		prevX = s.points[n-2].X
	}
	if err := s.validatePoint(n-1, p, prevX); err != nil {
		return err
	}
	s.points[n-1] = p
	s.version++
	return nil
}

func (s *Series) UpdateLastCandle(c Candle) error {
	n := len(s.candles)
	if !s.typ.IsOHLC() || n == 0 {
		return fmt.Errorf("series %q: no candle to update", s.id)
	}
	prevX := math.Inf(-1)
	if n > 1 {
		prevX = s.candles[n-2].X
	}
	if err := s.validateCandle(n-1, c, prevX); err != nil {
		return err
	}
	s.candles[n-1] = c
	s.version++
	return nil
}

func (s *Series) Clear() {
	s.points = nil
	s.candles = nil
	s.version++
}

// XExtent returns the x range covered by the series data.
func (s *Series) XExtent() (Range, bool) {
	if s.typ.IsOHLC() {
		if len(s.candles) == 0 {
			return Range{}, false
		}
		return Range{Min: s.candles[0].X, Max: s.candles[len(s.candles)-1].X}, true
	}
	if len(s.points) == 0 {
		return Range{}, false
	}
	return Range{Min: s.points[0].X, Max: s.points[len(s.points)-1].X}, true
}

// YExtentWithin aggregates the y extent of all data with x inside xr.
// Under ScaleLog, non-positive values are excluded from the aggregate.
// The baseline value of Baseline series contributes when finite.
func (s *Series) YExtentWithin(xr Range, kind ScaleKind) (Range, bool) {
	yMin := math.Inf(1)
	yMax := math.Inf(-1)
	any := false
	accept := func(v float64) {
		if kind == ScaleLog && v <= 0 {
			return
		}
		yMin = math.Min(yMin, v)
		yMax = math.Max(yMax, v)
		any = true
	}
	if s.typ.IsOHLC() {
		for i := range s.candles {
			if xr.Contains(s.candles[i].X) {
				accept(s.candles[i].Low)
				accept(s.candles[i].High)
			}
		}
	} else {
		for i := range s.points {
			if xr.Contains(s.points[i].X) {
				accept(s.points[i].Y)
			}
		}
		if s.typ == SeriesBaseline {
			accept(s.baseline)
		}
	}
	if !any {
		return Range{}, false
	}
	return Range{Min: yMin, Max: yMax}, true
}

// YExtent aggregates over the full data set.
func (s *Series) YExtent(kind ScaleKind) (Range, bool) {
	return s.YExtentWithin(Range{Min: math.Inf(-1), Max: math.Inf(1)}, kind)
}

// VisibleSlice returns the index window [lo, hi) of entries inside xr,
// expanded by one entry on each side so strokes continue past the plot
// edge.
func (s *Series) VisibleSlice(xr Range) (lo, hi int) {
	n := s.Len()
	xAt := func(i int) float64 {
		if s.typ.IsOHLC() {
			return s.candles[i].X
		}
		return s.points[i].X
	}
	lo = sort.Search(n, func(i int) bool { return xAt(i) >= xr.Min })
	hi = sort.Search(n, func(i int) bool { return xAt(i) > xr.Max })
	if lo > 0 {
		lo--
	}
	if hi < n {
		hi++
	}
	return lo, hi
}

// NearestCandleIndex locates the candle whose center x is closest to x.
// Equal distances favor the later index.
func (s *Series) NearestCandleIndex(x float64) (int, bool) {
	n := len(s.candles)
	if n == 0 {
		return 0, false
	}
	i := sort.Search(n, func(i int) bool { return s.candles[i].X >= x })
	if i == n {
		return n - 1, true
	}
	if i == 0 {
		return 0, true
	}
	if x-s.candles[i-1].X < s.candles[i].X-x {
		return i - 1, true
	}
	return i, true
}
