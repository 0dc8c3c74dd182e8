// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartval

import (
	"strconv"

	"github.com/ericlagergren/decimal"
)

// RoundPrice rounds price z to two digits after decimal point and returns z.
func RoundPrice(z *decimal.Big) *decimal.Big {
	// Call Quantize twice, otherwise one digit may be missing, see https://github.com/ericlagergren/decimal/issues/151
	return z.Quantize(2).Quantize(2)
}

// Returns a new decimal with prepared formatting, enforce a minimum of 2 digits after decimal point.
func PrepareFormattedPrice(z *decimal.Big) *decimal.Big {
	if z.Scale() < 2 {
		// Adding 0.00 will enforce the proper format
		return new(decimal.Big).Add(z, decimal.New(0, 2))
	}
	return new(decimal.Big).Copy(z)
}

// The builtin decimal.Big conversion from float64 is an "exact" conversion, and useless for our cases.
// Therefore, convert using string conversion, even though this requires memory allocation.
// See also https://github.com/ericlagergren/decimal/issues/142

// Convert float to string and then to decimal.
func ConvertFloatToDecimal(v float64) *decimal.Big {
	d, _ := new(decimal.Big).SetString(strconv.FormatFloat(v, 'f', -1, 64))
	return d
}

// FormatPrice renders a price value for axis tags with two decimal places.
func FormatPrice(v float64) string {
	return PrepareFormattedPrice(RoundPrice(ConvertFloatToDecimal(v))).String()
}

// FormatLabel renders a generic axis label value. Values that all fall on
// thousands/millions/billions get a suffix, mirroring how traders read
// volume axes.
func FormatLabel(v float64, precision int) string {
	i := int64(v)
	switch {
	case i != 0 && i%1000000000 == 0:
		return strconv.FormatFloat(v/1000000000, 'f', precision, 64) + "b"
	case i != 0 && i%1000000 == 0:
		return strconv.FormatFloat(v/1000000, 'f', precision, 64) + "m"
	case i != 0 && i%1000 == 0:
		return strconv.FormatFloat(v/1000, 'f', precision, 64) + "k"
	default:
		return strconv.FormatFloat(v, 'f', precision, 64)
	}
}

// Calculate the number of segments for a plot grid
func CalcNumSegments(pos int, margin int, grid int) int {
	if grid == 0 {
		return 0
	}
	return max((pos-margin+grid)/grid, 0)
}
