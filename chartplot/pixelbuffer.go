// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartplot

import (
	"fmt"

	"maycharts/ggsurface"
)

// RenderToPixelBuffer rasterizes one frame headlessly and returns a
// tightly packed row-major RGBA8 buffer of len width*height*4. Label
// text requires a font; without one only the labels are missing.
func (c *Chart) RenderToPixelBuffer(widthPx, heightPx int, dpr float64, opts ...ggsurface.Option) ([]byte, error) {
	if widthPx <= 0 || heightPx <= 0 {
		return nil, fmt.Errorf("invalid pixel buffer size %dx%d", widthPx, heightPx)
	}
	s := ggsurface.New(widthPx, heightPx, opts...)
	if err := c.RenderOnto(s, widthPx, heightPx, dpr); err != nil {
		return nil, err
	}
	return s.RGBAPixels(), nil
}
