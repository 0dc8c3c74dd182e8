// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartval

import (
	"fmt"
	"math"
)

const NearZero = 0.000001

// Scale group 0 is the default group of every new series.
const DefaultGroup GroupId = 0

type GroupId int

type ScaleKind int

const (
	ScaleLinear ScaleKind = iota
	ScaleLog
)

type SeriesType int

const (
	SeriesLine SeriesType = iota
	SeriesArea
	SeriesCandlestick
	SeriesBar
	SeriesHistogram
	SeriesBaseline
)

// IsOHLC reports whether the series type carries candle data
// instead of XY points.
func (t SeriesType) IsOHLC() bool {
	return t == SeriesCandlestick || t == SeriesBar
}

type Point struct {
	X float64
	Y float64
}

type Candle struct {
	X     float64
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// Validate checks the candle invariant low <= min(o,c) <= max(o,c) <= high
// and rejects non-finite values.
func (c Candle) Validate() error {
	for _, v := range [5]float64{c.X, c.Open, c.High, c.Low, c.Close} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite value")
		}
	}
	if c.Low > math.Min(c.Open, c.Close) {
		return fmt.Errorf("low %g above body", c.Low)
	}
	if c.High < math.Max(c.Open, c.Close) {
		return fmt.Errorf("high %g below body", c.High)
	}
	return nil
}

// DataError names the series and offending element index of rejected input.
// Malformed data is never silently clamped, so downstream autoscale stays
// uncorrupted.
type DataError struct {
	Series string
	Index  int
	Reason error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("series %q: invalid data at index %d: %v", e.Series, e.Index, e.Reason)
}

func (e *DataError) Unwrap() error {
	return e.Reason
}

// Range is a closed data interval.
type Range struct {
	Min float64
	Max float64
}

// DefaultRange is the fallback for autoscaling empty data.
func DefaultRange() Range {
	return Range{Min: 0, Max: 1}
}

func (r Range) Valid() bool {
	return !math.IsNaN(r.Min) && !math.IsNaN(r.Max) &&
		!math.IsInf(r.Min, 0) && !math.IsInf(r.Max, 0) &&
		r.Min < r.Max
}

func (r Range) Width() float64 {
	return r.Max - r.Min
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Pad expands the range symmetrically by the given fraction of its width.
func (r Range) Pad(frac float64) Range {
	m := r.Width() * math.Max(frac, 0)
	return Range{Min: r.Min - m, Max: r.Max + m}
}

// Shift moves both ends by delta.
func (r Range) Shift(delta float64) Range {
	return Range{Min: r.Min + delta, Max: r.Max + delta}
}

func IsGreenCandle(o, c float64) bool {
	// this may be adjusted based on whether it is considered to be green if open price equals close price.
	return c >= o
}

func CountDigits(v int64) int {
	var count int
	for ; v != 0; v /= 10 {
		count++
	}
	return count
}

func IndexOf[T comparable](s []T, e T) int {
	for i, v := range s {
		if v == e {
			return i
		}
	}
	return -1
}
