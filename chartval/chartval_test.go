// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCandle(t *testing.T) {
	c := Candle{X: 1, Open: 10, High: 12, Low: 9, Close: 11}

	assert.NoError(t, c.Validate())
}

func TestValidateCandleLowAboveBody(t *testing.T) {
	c := Candle{X: 1, Open: 10, High: 12, Low: 10.5, Close: 11}

	assert.Error(t, c.Validate())
}

func TestValidateCandleHighBelowBody(t *testing.T) {
	c := Candle{X: 1, Open: 10, High: 10.5, Low: 9, Close: 11}

	assert.Error(t, c.Validate())
}

func TestValidateCandleNonFinite(t *testing.T) {
	c := Candle{X: 1, Open: math.NaN(), High: 12, Low: 9, Close: 11}

	assert.Error(t, c.Validate())
}

func TestRangeValid(t *testing.T) {
	assert.True(t, Range{Min: 0, Max: 1}.Valid())
	assert.False(t, Range{Min: 1, Max: 1}.Valid())
	assert.False(t, Range{Min: 2, Max: 1}.Valid())
	assert.False(t, Range{Min: math.NaN(), Max: 1}.Valid())
	assert.False(t, Range{Min: 0, Max: math.Inf(1)}.Valid())
}

func TestRangePad(t *testing.T) {
	r := Range{Min: 10, Max: 20}.Pad(0.05)

	assert.InDelta(t, 9.5, r.Min, NearZero)
	assert.InDelta(t, 20.5, r.Max, NearZero)
}

func TestRangeShift(t *testing.T) {
	r := Range{Min: 1, Max: 2}.Shift(0.5)

	assert.InDelta(t, 1.5, r.Min, NearZero)
	assert.InDelta(t, 2.5, r.Max, NearZero)
}

func TestIsGreenCandle(t *testing.T) {
	assert.True(t, IsGreenCandle(10, 11))
	assert.True(t, IsGreenCandle(10, 10))
	assert.False(t, IsGreenCandle(11, 10))
}
