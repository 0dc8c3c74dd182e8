// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package properties

import (
	"math"
	"strconv"
)

func SetPositiveValue(n *int, value string) {
	valInt, err := strconv.Atoi(value)
	if err == nil && valInt > 0 {
		*n = valInt
	}
}

func SetFiniteValue(f *float64, value string) {
	valFloat, err := strconv.ParseFloat(value, 64)
	if err == nil && !math.IsInf(valFloat, 0) && !math.IsNaN(valFloat) {
		*f = valFloat
	}
}
