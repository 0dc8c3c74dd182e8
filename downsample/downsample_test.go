// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package downsample

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maycharts/chartval"
)

func sineWave(n int) []chartval.Point {
	points := make([]chartval.Point, n)
	for i := range points {
		points[i] = chartval.Point{
			X: float64(i),
			Y: math.Sin(float64(i) * 0.01),
		}
	}
	return points
}

func TestTargetSamples(t *testing.T) {
	assert.Equal(t, 1600, TargetSamples(800, 2))
	assert.Equal(t, 0, TargetSamples(0, 2))
	assert.Equal(t, 0, TargetSamples(800, 0))
}

func TestLTTBPassThrough(t *testing.T) {
	points := sineWave(100)

	assert.Len(t, LTTB(points, 0), 100)
	assert.Len(t, LTTB(points, -5), 100)
	assert.Len(t, LTTB(points, 100), 100)
	assert.Len(t, LTTB(points, 5000), 100)
}

func TestLTTBShortInputPassThrough(t *testing.T) {
	points := sineWave(2)

	assert.Len(t, LTTB(points, 1), 2)
}

func TestLTTBTargetCount(t *testing.T) {
	points := sineWave(10000)

	sampled := LTTB(points, 500)

	assert.Len(t, sampled, 500)
}

func TestLTTBPinsFirstAndLast(t *testing.T) {
	points := sineWave(10000)

	sampled := LTTB(points, 500)

	assert.Equal(t, points[0], sampled[0])
	assert.Equal(t, points[len(points)-1], sampled[len(sampled)-1])
}

func TestLTTBKeepsDominantExtremes(t *testing.T) {
	// A flat-ish signal with one dominant spike in each direction. LTTB
	// must select both spikes because they maximize the triangle area of
	// their buckets.
	points := sineWave(10000)
	points[3333].Y = 50
	points[6666].Y = -50

	sampled := LTTB(points, 200)

	yMin := math.Inf(1)
	yMax := math.Inf(-1)
	for _, p := range sampled {
		yMin = math.Min(yMin, p.Y)
		yMax = math.Max(yMax, p.Y)
	}
	assert.Equal(t, 50.0, yMax)
	assert.Equal(t, -50.0, yMin)
}

func TestLTTBSortedOutput(t *testing.T) {
	points := sineWave(5000)

	sampled := LTTB(points, 300)

	for i := 1; i < len(sampled); i++ {
		assert.LessOrEqual(t, sampled[i-1].X, sampled[i].X)
	}
}

func TestBucketOHLCExactExtremes(t *testing.T) {
	candles := []chartval.Candle{
		{X: 0, Open: 10, High: 15, Low: 9, Close: 12},
		{X: 1, Open: 12, High: 30, Low: 11, Close: 13},
		{X: 2, Open: 13, High: 14, Low: 2, Close: 11},
		{X: 3, Open: 11, High: 12, Low: 10, Close: 12},
	}
	// Everything lands on one pixel column.
	toPixel := func(x float64) float64 { return 5 }

	out := BucketOHLC(candles, toPixel)

	require.Len(t, out, 1)
	assert.Equal(t, 10.0, out[0].Open)
	assert.Equal(t, 30.0, out[0].High)
	assert.Equal(t, 2.0, out[0].Low)
	assert.Equal(t, 12.0, out[0].Close)
	assert.Equal(t, 0.0, out[0].X)
}

func TestBucketOHLCSeparateColumns(t *testing.T) {
	candles := []chartval.Candle{
		{X: 0, Open: 10, High: 15, Low: 9, Close: 12},
		{X: 1, Open: 12, High: 16, Low: 11, Close: 13},
		{X: 2, Open: 13, High: 14, Low: 8, Close: 11},
	}
	toPixel := func(x float64) float64 { return x * 10 }

	out := BucketOHLC(candles, toPixel)

	assert.Len(t, out, 3)
	assert.Equal(t, candles, out)
}

func TestStride(t *testing.T) {
	points := sineWave(100)

	out := Stride(points, 10)

	assert.LessOrEqual(t, len(out), 11)
	assert.Equal(t, points[0], out[0])
	assert.Equal(t, points[99], out[len(out)-1])
}

func TestStridePassThrough(t *testing.T) {
	points := sineWave(10)

	assert.Len(t, Stride(points, 0), 10)
	assert.Len(t, Stride(points, 10), 10)
}
