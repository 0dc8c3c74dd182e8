// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package calc

import (
	"maycharts/chartval"

	"github.com/ericlagergren/decimal"
)

func Min(i0, i1 int) int {
	if i0 < i1 {
		return i0
	}
	return i1
}

func Max(i0, i1 int) int {
	if i0 > i1 {
		return i0
	}
	return i1
}

func Mean(out *decimal.Big, val []float64) *decimal.Big {
	out.SetUint64(0)
	if len(val) == 0 {
		return out
	}
	for i := range val {
		out.Add(out, chartval.ConvertFloatToDecimal(val[i]))
	}
	out.Quo(out, new(decimal.Big).SetUint64(uint64(len(val))))
	return out
}

func StdDev(out *decimal.Big, val []float64) *decimal.Big {
	out.SetUint64(0)
	if len(val) == 0 {
		return out
	}
	m := Mean(new(decimal.Big), val)
	for i := 0; i < len(val); i++ {
		v := chartval.ConvertFloatToDecimal(val[i])
		v.Sub(v, m)
		v.Mul(v, v)
		out.Add(out, v)
	}
	out.Quo(out, new(decimal.Big).SetUint64(uint64(len(val))))
	return out.Context.Sqrt(out, out)
}

// CloseValues extracts the value column an indicator operates on:
// candle closes for OHLC series, y otherwise.
func CloseValues(s *chartval.Series) (xs, ys []float64) {
	if s.Type().IsOHLC() {
		candles := s.Candles()
		xs = make([]float64, len(candles))
		ys = make([]float64, len(candles))
		for i := range candles {
			xs[i] = candles[i].X
			ys[i] = candles[i].Close
		}
		return xs, ys
	}
	points := s.Points()
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i := range points {
		xs[i] = points[i].X
		ys[i] = points[i].Y
	}
	return xs, ys
}

// HighLowClose extracts the three OHLC columns used by oscillators.
// Non-candle series degrade to y for all three.
func HighLowClose(s *chartval.Series) (xs, high, low, cl []float64) {
	if s.Type().IsOHLC() {
		candles := s.Candles()
		xs = make([]float64, len(candles))
		high = make([]float64, len(candles))
		low = make([]float64, len(candles))
		cl = make([]float64, len(candles))
		for i := range candles {
			xs[i] = candles[i].X
			high[i] = candles[i].High
			low[i] = candles[i].Low
			cl[i] = candles[i].Close
		}
		return xs, high, low, cl
	}
	xs, cl = CloseValues(s)
	return xs, cl, cl, cl
}
