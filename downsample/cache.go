// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package downsample

import (
	"fmt"

	"github.com/zhangyunhao116/skipmap"

	"maycharts/chartval"
)

// Key identifies one downsample result. Any component change
// invalidates the cached entry.
type Key struct {
	SeriesId   string
	Version    uint64
	Visible    chartval.Range
	PixelWidth int
	Dpr        float64
}

func (k Key) String() string {
	return fmt.Sprintf("%s|%d|%g|%g|%d|%g", k.SeriesId, k.Version, k.Visible.Min, k.Visible.Max, k.PixelWidth, k.Dpr)
}

type entry struct {
	key     Key
	points  []chartval.Point
	candles []chartval.Candle
}

// Cache keeps at most one live downsample result per series. Storing a
// result under a new key evicts the stale one, so entries never outlive
// a range or viewport change.
type Cache struct {
	sm *skipmap.StringMap[*entry]
}

func NewCache() *Cache {
	return &Cache{sm: skipmap.NewString[*entry]()}
}

func (c *Cache) Points(k Key) ([]chartval.Point, bool) {
	e, ok := c.sm.Load(k.SeriesId)
	if !ok || e.key != k || e.points == nil {
		return nil, false
	}
	return e.points, true
}

func (c *Cache) Candles(k Key) ([]chartval.Candle, bool) {
	e, ok := c.sm.Load(k.SeriesId)
	if !ok || e.key != k || e.candles == nil {
		return nil, false
	}
	return e.candles, true
}

func (c *Cache) StorePoints(k Key, points []chartval.Point) {
	c.sm.Store(k.SeriesId, &entry{key: k, points: points})
}

func (c *Cache) StoreCandles(k Key, candles []chartval.Candle) {
	c.sm.Store(k.SeriesId, &entry{key: k, candles: candles})
}

// Evict drops the entry of one series, e.g. when the series is removed.
func (c *Cache) Evict(seriesId string) {
	c.sm.Delete(seriesId)
}

func (c *Cache) Clear() {
	c.sm = skipmap.NewString[*entry]()
}
