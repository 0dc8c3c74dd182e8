// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartplot

import (
	"math"
)

func getCandleWidth(mX float64, maxBorderWidth int) (candleWidth, lineWidth, borderWidth int) {
	const minCandleWidth = 3
	const minLineWidth = 1
	const defaultCandleMultiplier = 0.8

	candleWidth = int(math.Abs(mX) * defaultCandleMultiplier)
	if candleWidth < minCandleWidth {
		candleWidth = minCandleWidth
	}
	lineWidth = candleWidth / 16
	if lineWidth < minLineWidth {
		lineWidth = minLineWidth
	}
	borderWidth = candleWidth / minCandleWidth
	if borderWidth > maxBorderWidth {
		borderWidth = maxBorderWidth
	}
	return
}
