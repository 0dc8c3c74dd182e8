// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartval

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCandleSeries(t *testing.T) *Series {
	s := NewSeries("test", SeriesCandlestick)
	candles := make([]Candle, 10)
	for i := range candles {
		candles[i] = Candle{
			X:     float64(i),
			Open:  10 + float64(i),
			High:  12 + float64(i),
			Low:   9 + float64(i),
			Close: 11 + float64(i),
		}
	}
	require.NoError(t, s.ReplaceCandles(candles))
	return s
}

func TestReplaceRejectsUnsortedX(t *testing.T) {
	s := NewSeries("test", SeriesLine)

	err := s.Replace([]Point{{X: 0, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1}})

	var dataErr *DataError
	require.True(t, errors.As(err, &dataErr))
	assert.Equal(t, 2, dataErr.Index)
	assert.Equal(t, "test", dataErr.Series)
	// Failed validation leaves the previous data untouched.
	assert.Equal(t, 0, s.Len())
}

func TestReplaceRejectsNonFinite(t *testing.T) {
	s := NewSeries("test", SeriesLine)

	err := s.Replace([]Point{{X: 0, Y: 1}, {X: 1, Y: math.NaN()}})

	var dataErr *DataError
	require.True(t, errors.As(err, &dataErr))
	assert.Equal(t, 1, dataErr.Index)
}

func TestReplaceAllowsTiedX(t *testing.T) {
	s := NewSeries("test", SeriesLine)

	err := s.Replace([]Point{{X: 1, Y: 1}, {X: 1, Y: 2}})

	assert.NoError(t, err)
	assert.Equal(t, 2, s.Len())
}

func TestAppendBumpsVersion(t *testing.T) {
	s := NewSeries("test", SeriesLine)
	v := s.Version()

	require.NoError(t, s.Append(Point{X: 1, Y: 1}))

	assert.Greater(t, s.Version(), v)
}

func TestAppendRejectsBackwardsX(t *testing.T) {
	s := NewSeries("test", SeriesLine)
	require.NoError(t, s.Append(Point{X: 5, Y: 1}))

	err := s.Append(Point{X: 4, Y: 1})

	assert.Error(t, err)
	assert.Equal(t, 1, s.Len())
}

func TestUpdateLastCandle(t *testing.T) {
	s := newTestCandleSeries(t)

	err := s.UpdateLastCandle(Candle{X: 9, Open: 19, High: 25, Low: 18, Close: 24})

	require.NoError(t, err)
	assert.Equal(t, 25.0, s.Candles()[9].High)
}

func TestUpdateLastCandleRejectsEarlierX(t *testing.T) {
	s := newTestCandleSeries(t)

	err := s.UpdateLastCandle(Candle{X: 7, Open: 19, High: 25, Low: 18, Close: 24})

	assert.Error(t, err)
	assert.Equal(t, 9.0, s.Candles()[9].X)
}

func TestXExtent(t *testing.T) {
	s := newTestCandleSeries(t)

	r, ok := s.XExtent()

	require.True(t, ok)
	assert.Equal(t, Range{Min: 0, Max: 9}, r)
}

func TestXExtentEmpty(t *testing.T) {
	s := NewSeries("test", SeriesLine)

	_, ok := s.XExtent()

	assert.False(t, ok)
}

func TestYExtentWithin(t *testing.T) {
	s := newTestCandleSeries(t)

	r, ok := s.YExtentWithin(Range{Min: 2, Max: 4}, ScaleLinear)

	require.True(t, ok)
	assert.Equal(t, Range{Min: 11, Max: 16}, r)
}

func TestYExtentLogExcludesNonPositive(t *testing.T) {
	s := NewSeries("test", SeriesLine)
	require.NoError(t, s.Replace([]Point{
		{X: 0, Y: -5},
		{X: 1, Y: 0},
		{X: 2, Y: 0.5},
		{X: 3, Y: 100},
	}))

	r, ok := s.YExtentWithin(Range{Min: 0, Max: 3}, ScaleLog)

	require.True(t, ok)
	assert.Equal(t, Range{Min: 0.5, Max: 100}, r)
}

func TestYExtentBaselineContributes(t *testing.T) {
	s := NewSeries("test", SeriesBaseline)
	s.SetBaseline(50)
	require.NoError(t, s.Replace([]Point{{X: 0, Y: 10}, {X: 1, Y: 20}}))

	r, ok := s.YExtent(ScaleLinear)

	require.True(t, ok)
	assert.Equal(t, Range{Min: 10, Max: 50}, r)
}

func TestVisibleSliceExpandsOneEntry(t *testing.T) {
	s := newTestCandleSeries(t)

	lo, hi := s.VisibleSlice(Range{Min: 3, Max: 6})

	assert.Equal(t, 2, lo)
	assert.Equal(t, 8, hi)
}

func TestNearestCandleIndex(t *testing.T) {
	s := newTestCandleSeries(t)

	i, ok := s.NearestCandleIndex(4.6)

	require.True(t, ok)
	assert.Equal(t, 5, i)
}

func TestNearestCandleIndexTieFavorsLater(t *testing.T) {
	s := newTestCandleSeries(t)

	i, ok := s.NearestCandleIndex(4.5)

	require.True(t, ok)
	assert.Equal(t, 5, i)
}

func TestNearestCandleIndexOutsideData(t *testing.T) {
	s := newTestCandleSeries(t)

	i, ok := s.NearestCandleIndex(100)

	require.True(t, ok)
	assert.Equal(t, 9, i)
}
