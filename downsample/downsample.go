// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package downsample

import (
	"math"

	"maycharts/chartval"
)

// TargetSamples derives the target sample count from the device pixel width of
// the plot area. samplesPerPixel is a configuration value, typically
// between 0.5 and 2.
func TargetSamples(pixelWidth, samplesPerPixel float64) int {
	if pixelWidth <= 0 || samplesPerPixel <= 0 {
		return 0
	}
	return int(math.Ceil(pixelWidth * samplesPerPixel))
}

// LTTB reduces points to at most target entries using
// largest-triangle-three-buckets. The first and last input points are
// always retained unchanged. A target outside (0, len) is treated as
// pass-through, not an error.
func LTTB(points []chartval.Point, target int) []chartval.Point {
	n := len(points)
	if target <= 0 || target >= n || n <= 2 {
		return points
	}
	if target == 1 {
		return points[:1]
	}
	if target == 2 {
		return []chartval.Point{points[0], points[n-1]}
	}

	bucketSize := float64(n-2) / float64(target-2)
	sampled := make([]chartval.Point, 0, target)
	sampled = append(sampled, points[0])

	a := 0 // index of the point selected from the previous bucket
	for i := 0; i < target-2; i++ {
		start := int(math.Floor(1 + float64(i)*bucketSize))
		end := int(math.Min(math.Floor(1+float64(i+1)*bucketSize), float64(n-1)))

		// Average of the next bucket is the third triangle corner.
		nextEnd := int(math.Min(math.Floor(1+float64(i+2)*bucketSize), float64(n-1)))
		avgStart := max(end, 1)
		avgEnd := max(nextEnd, avgStart+1)
		if avgEnd > n {
			avgEnd = n
		}
		var avgX, avgY float64
		count := 0
		for k := avgStart; k < avgEnd; k++ {
			avgX += points[k].X
			avgY += points[k].Y
			count++
		}
		if count == 0 {
			avgX = points[end].X
			avgY = points[end].Y
			count = 1
		}
		avgX /= float64(count)
		avgY /= float64(count)

		// Pick the point of this bucket that maximizes the triangle
		// area with the previously selected point and the average.
		aX := points[a].X
		aY := points[a].Y
		maxArea := -1.0
		maxIdx := start
		stop := max(end, start+1)
		for k := start; k < stop; k++ {
			area := math.Abs((aX-points[k].X)*(avgY-aY) - (aX-avgX)*(points[k].Y-aY))
			if area > maxArea {
				maxArea = area
				maxIdx = k
			}
		}
		sampled = append(sampled, points[maxIdx])
		a = maxIdx
	}

	sampled = append(sampled, points[n-1])
	return sampled
}

// BucketOHLC aggregates candles by destination pixel column. Each
// bucket keeps the first open, the last close, the maximum high and the
// minimum low, which is lossless for visual extremes. toPixel maps a
// candle x to its device pixel column.
func BucketOHLC(candles []chartval.Candle, toPixel func(x float64) float64) []chartval.Candle {
	n := len(candles)
	if n <= 2 {
		return candles
	}
	out := make([]chartval.Candle, 0, n)
	cur := candles[0]
	curCol := int(math.Floor(toPixel(cur.X)))
	for i := 1; i < n; i++ {
		c := candles[i]
		col := int(math.Floor(toPixel(c.X)))
		if col == curCol {
			cur.High = math.Max(cur.High, c.High)
			cur.Low = math.Min(cur.Low, c.Low)
			cur.Close = c.Close
			continue
		}
		out = append(out, cur)
		cur = c
		curCol = col
	}
	out = append(out, cur)
	return out
}

// Stride is the degenerate fallback: keep every Nth point with
// N = ceil(count / target). The last point is always included.
func Stride(points []chartval.Point, target int) []chartval.Point {
	n := len(points)
	if target <= 0 || target >= n || n == 0 {
		return points
	}
	step := (n + target - 1) / target
	out := make([]chartval.Point, 0, target+1)
	for i := 0; i < n; i += step {
		out = append(out, points[i])
	}
	if out[len(out)-1] != points[n-1] {
		out = append(out, points[n-1])
	}
	return out
}
