// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package chartplot ties series data, view state, plugins and the
// renderer boundary together into one chart. All operations are
// synchronous; a single RWMutex serializes mutation against render
// snapshots.
package chartplot

import (
	"fmt"
	"math"
	"sync"

	"maycharts/chartval"
	"maycharts/chartview"
	"maycharts/config"
	"maycharts/downsample"
	"maycharts/indapi"
	"maycharts/render"
	"maycharts/scale"
)

// Callbacks are invoked synchronously from the mutating call, after the
// state change is applied and the chart lock has been released, so a
// callback may call back into the chart.
type Callbacks struct {
	OnRangeChange   func(x chartval.Range)
	OnCrosshairMove func(ch *chartview.Crosshair)
	OnClick         func(x, y float64, group chartval.GroupId)
}

// frameState keeps the scales of the most recent layout so that
// pixel-space operations between frames resolve against what is
// actually on screen.
type frameState struct {
	widthPx  float64
	heightPx float64
	dpr      float64
	plotRect render.Rect
	xScale   scale.Scale
	yScales  map[chartval.GroupId]scale.Scale
	valid    bool
}

type Chart struct {
	mu        sync.RWMutex
	cfg       config.ChartConfig
	theme     *Theme
	view      *chartview.ViewState
	series    map[string]*chartval.Series
	order     []string
	plugins   *indapi.Registry
	cache     *downsample.Cache
	batch     *render.Batcher
	callbacks Callbacks
	frame     frameState
	lastPtr   render.Point
}

func NewChart(cfg config.ChartConfig, theme *Theme) *Chart {
	cfg.Sanitize()
	if theme == nil {
		theme = NewDarkTheme()
	}
	return &Chart{
		cfg:     cfg,
		theme:   theme,
		view:    chartview.New(),
		series:  make(map[string]*chartval.Series),
		plugins: indapi.NewRegistry(),
		cache:   downsample.NewCache(),
		batch:   render.NewBatcher(),
	}
}

func (c *Chart) Config() config.ChartConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg.Copy()
}

func (c *Chart) SetConfig(cfg config.ChartConfig) {
	cfg.Sanitize()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg = cfg
}

func (c *Chart) SetTheme(theme *Theme) {
	if theme == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.theme = theme
}

func (c *Chart) SetCallbacks(cb Callbacks) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.callbacks = cb
}

// Plugins exposes the plugin registry. The registry carries its own
// lock, so registration may happen concurrently with rendering.
func (c *Chart) Plugins() *indapi.Registry {
	return c.plugins
}

// AddSeries registers a series under its id. Ids must be unique.
func (c *Chart) AddSeries(s *chartval.Series) error {
	if s == nil {
		return fmt.Errorf("nil series")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.series[s.Id()]; ok {
		return fmt.Errorf("duplicate series id %q", s.Id())
	}
	c.series[s.Id()] = s
	c.order = append(c.order, s.Id())
	return nil
}

func (c *Chart) RemoveSeries(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.series[id]; !ok {
		return false
	}
	delete(c.series, id)
	for i, n := range c.order {
		if n == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	c.cache.Evict(id)
	return true
}

// GetSeries returns the registered series for read access. Mutating the
// returned series directly bypasses the chart lock; data changes go
// through the chart's series operations (AppendPoint, MutateSeries and
// friends) so a render pass always observes a consistent snapshot.
func (c *Chart) GetSeries(id string) *chartval.Series {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.series[id]
}

// MutateSeries runs fn on the series under the chart lock. All series
// data mutation funnels through here or the convenience wrappers below.
func (c *Chart) MutateSeries(id string, fn func(s *chartval.Series) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.series[id]
	if !ok {
		return fmt.Errorf("unknown series id %q", id)
	}
	return fn(s)
}

func (c *Chart) AppendPoint(id string, p chartval.Point) error {
	return c.MutateSeries(id, func(s *chartval.Series) error { return s.Append(p) })
}

func (c *Chart) AppendCandle(id string, cd chartval.Candle) error {
	return c.MutateSeries(id, func(s *chartval.Series) error { return s.AppendCandle(cd) })
}

func (c *Chart) UpdateLastPoint(id string, p chartval.Point) error {
	return c.MutateSeries(id, func(s *chartval.Series) error { return s.UpdateLast(p) })
}

func (c *Chart) UpdateLastCandle(id string, cd chartval.Candle) error {
	return c.MutateSeries(id, func(s *chartval.Series) error { return s.UpdateLastCandle(cd) })
}

func (c *Chart) ReplacePoints(id string, points []chartval.Point) error {
	return c.MutateSeries(id, func(s *chartval.Series) error { return s.Replace(points) })
}

func (c *Chart) ReplaceCandles(id string, candles []chartval.Candle) error {
	return c.MutateSeries(id, func(s *chartval.Series) error { return s.ReplaceCandles(candles) })
}

func (c *Chart) ClearSeries(id string) error {
	return c.MutateSeries(id, func(s *chartval.Series) error {
		s.Clear()
		return nil
	})
}

func (c *Chart) SeriesIds() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]string, len(c.order))
	copy(ids, c.order)
	return ids
}

func (c *Chart) orderedSeries() []*chartval.Series {
	out := make([]*chartval.Series, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.series[id])
	}
	return out
}

// VisibleRange returns the current x range.
func (c *Chart) VisibleRange() chartval.Range {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.view.X
}

func (c *Chart) YRange(g chartval.GroupId) chartval.Range {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.view.YRange(g)
}

func (c *Chart) Crosshair() *chartview.Crosshair {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.view.Crosshair == nil {
		return nil
	}
	ch := *c.view.Crosshair
	return &ch
}

// SetVisibleRange sets the x range explicitly. Degenerate input is
// rejected with chartview.ErrDegenerateRange and does not change state.
func (c *Chart) SetVisibleRange(xMin, xMax float64) error {
	c.mu.Lock()
	err := c.view.SetVisibleRange(xMin, xMax)
	r := c.view.X
	cb := c.callbacks.OnRangeChange
	c.mu.Unlock()
	if err != nil {
		return err
	}
	if cb != nil {
		cb(r)
	}
	return nil
}

func (c *Chart) SetScaleKind(g chartval.GroupId, kind chartval.ScaleKind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.SetScaleKind(g, kind)
}

func (c *Chart) ScaleKind(g chartval.GroupId) chartval.ScaleKind {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.view.Kind(g)
}

// PanByPixels shifts the view by a pointer delta in device pixels.
func (c *Chart) PanByPixels(dxPx, dyPx float64) {
	c.mu.Lock()
	plotW := float64(c.frame.plotRect.Width())
	plotH := float64(c.frame.plotRect.Height())
	if !c.frame.valid {
		plotW, plotH = 1, 1
	}
	c.view.PanByPixels(dxPx, dyPx, plotW, plotH, c.cfg.VerticalPan, c.cfg.HardBound)
	r := c.view.X
	cb := c.callbacks.OnRangeChange
	c.mu.Unlock()
	if cb != nil {
		cb(r)
	}
}

// ZoomAt zooms by the configured base raised to steps, anchored at the
// device pixel position so the data under the cursor stays put.
func (c *Chart) ZoomAt(pixelX, steps float64) {
	c.mu.Lock()
	anchor := c.view.X.Min + c.view.X.Width()/2
	if c.frame.valid {
		anchor = c.frame.xScale.ToData(pixelX)
	}
	factor := math.Pow(c.cfg.ZoomBase, steps)
	c.view.ZoomAt(anchor, factor, c.cfg.MinVisibleWidth, c.cfg.MaxVisibleWidth)
	r := c.view.X
	cb := c.callbacks.OnRangeChange
	c.mu.Unlock()
	if cb != nil {
		cb(r)
	}
}

// ZoomYAt zooms one group's y range around a device pixel position.
func (c *Chart) ZoomYAt(g chartval.GroupId, pixelY, steps float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.cfg.ZoomYEnabled {
		return
	}
	r := c.view.YRange(g)
	anchor := r.Min + r.Width()/2
	if c.frame.valid {
		if ys, ok := c.frame.yScales[g]; ok {
			anchor = ys.ToData(pixelY)
		}
	}
	c.view.ZoomYAt(g, anchor, math.Pow(c.cfg.ZoomBase, steps))
}

// AutoscaleFull fits the view to the full extents of all series. With
// no data at all, both axes fall back to the unit range.
func (c *Chart) AutoscaleFull() {
	c.mu.Lock()
	xr, xOk := c.xExtent()
	ys := c.yExtents(chartval.Range{Min: math.Inf(-1), Max: math.Inf(1)})
	c.view.AutoscaleFull(xr, xOk, ys, c.cfg.AutoscalePadding)
	r := c.view.X
	cb := c.callbacks.OnRangeChange
	c.mu.Unlock()
	if cb != nil {
		cb(r)
	}
}

// AutoscaleYVisible refits each group's y range to the data inside the
// current x range, keeping the x range fixed.
func (c *Chart) AutoscaleYVisible() {
	c.mu.Lock()
	defer c.mu.Unlock()
	ys := c.yExtents(c.view.X)
	c.view.AutoscaleYVisible(ys, c.cfg.AutoscalePadding)
}

func (c *Chart) xExtent() (chartval.Range, bool) {
	var union chartval.Range
	ok := false
	for _, s := range c.orderedSeries() {
		r, has := s.XExtent()
		if !has {
			continue
		}
		if !ok {
			union = r
			ok = true
			continue
		}
		union.Min = math.Min(union.Min, r.Min)
		union.Max = math.Max(union.Max, r.Max)
	}
	return union, ok
}

// yExtents merges per-group y extents of the data within xr, including
// per-frame indicator output so derived lines stay on screen.
func (c *Chart) yExtents(xr chartval.Range) map[chartval.GroupId]chartval.Range {
	ys := make(map[chartval.GroupId]chartval.Range)
	seen := make(map[chartval.GroupId]bool)
	merge := func(s *chartval.Series) {
		r, has := s.YExtentWithin(xr, c.view.Kind(s.Group()))
		if !has {
			return
		}
		if !seen[s.Group()] {
			ys[s.Group()] = r
			seen[s.Group()] = true
			return
		}
		cur := ys[s.Group()]
		cur.Min = math.Min(cur.Min, r.Min)
		cur.Max = math.Max(cur.Max, r.Max)
		ys[s.Group()] = cur
	}
	for _, s := range c.orderedSeries() {
		merge(s)
		for _, reg := range c.plugins.Indicators() {
			for _, derived := range reg.Indicator.Compute(s) {
				merge(derived)
			}
		}
	}
	return ys
}

// PixelToData converts a device pixel position into data coordinates
// using the scales of the last rendered frame.
func (c *Chart) PixelToData(pixelX, pixelY float64, g chartval.GroupId) (x, y float64, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.frame.valid {
		return 0, 0, false
	}
	x = c.frame.xScale.ToData(pixelX)
	ys, has := c.frame.yScales[g]
	if !has {
		ys = c.frame.yScales[chartval.DefaultGroup]
	}
	y = ys.ToData(pixelY)
	return x, y, true
}

// SetCrosshairPixel places the crosshair at a device pixel position,
// snapping x to the nearest candle center of the first candle series.
// Snap ties between two candle centers resolve to the later candle.
func (c *Chart) SetCrosshairPixel(pixelX, pixelY float64) {
	c.mu.Lock()
	ch := c.buildCrosshair(pixelX, pixelY)
	c.view.SetCrosshair(ch)
	cb := c.callbacks.OnCrosshairMove
	c.mu.Unlock()
	if cb != nil {
		cb(ch)
	}
}

func (c *Chart) buildCrosshair(pixelX, pixelY float64) *chartview.Crosshair {
	ch := &chartview.Crosshair{
		PixelX:       pixelX,
		PixelY:       pixelY,
		Group:        chartval.DefaultGroup,
		SnappedIndex: -1,
	}
	if !c.frame.valid {
		return ch
	}
	ch.DataX = c.frame.xScale.ToData(pixelX)
	if ys, ok := c.frame.yScales[chartval.DefaultGroup]; ok {
		ch.DataY = ys.ToData(pixelY)
	}
	for _, s := range c.orderedSeries() {
		if !s.Type().IsOHLC() {
			continue
		}
		if i, ok := s.NearestCandleIndex(ch.DataX); ok {
			ch.SnappedIndex = i
			ch.DataX = s.Candles()[i].X
			ch.PixelX = c.frame.xScale.ToPixel(ch.DataX)
			ch.Group = s.Group()
		}
		break
	}
	return ch
}

func (c *Chart) ClearCrosshair() {
	c.mu.Lock()
	c.view.SetCrosshair(nil)
	cb := c.callbacks.OnCrosshairMove
	c.mu.Unlock()
	if cb != nil {
		cb(nil)
	}
}

func (c *Chart) snapshot() *indapi.ChartSnapshot {
	snap := &indapi.ChartSnapshot{
		Series:   c.orderedSeries(),
		Visible:  c.view.X,
		YVisible: make(map[chartval.GroupId]chartval.Range, len(c.view.Y)),
	}
	for g, r := range c.view.Y {
		snap.YVisible[g] = r
	}
	return snap
}
