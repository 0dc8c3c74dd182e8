// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "10.00", FormatPrice(10))
	assert.Equal(t, "10.12", FormatPrice(10.12))
	assert.Equal(t, "10.13", FormatPrice(10.126))
	assert.Equal(t, "0.50", FormatPrice(0.5))
}

func TestFormatLabelSuffixes(t *testing.T) {
	assert.Equal(t, "2k", FormatLabel(2000, 0))
	assert.Equal(t, "3m", FormatLabel(3000000, 0))
	assert.Equal(t, "1b", FormatLabel(1000000000, 0))
	assert.Equal(t, "12.5", FormatLabel(12.5, 1))
}

func TestCalcNumSegments(t *testing.T) {
	assert.Equal(t, 0, CalcNumSegments(100, 0, 0))
	assert.Equal(t, 5, CalcNumSegments(600, 0, 150))
	assert.Equal(t, 0, CalcNumSegments(0, 200, 100))
}

func TestCountDigits(t *testing.T) {
	assert.Equal(t, 0, CountDigits(0))
	assert.Equal(t, 1, CountDigits(5))
	assert.Equal(t, 4, CountDigits(1234))
}

func TestIndexOf(t *testing.T) {
	assert.Equal(t, 1, IndexOf([]string{"a", "b"}, "b"))
	assert.Equal(t, -1, IndexOf([]string{"a", "b"}, "c"))
}
