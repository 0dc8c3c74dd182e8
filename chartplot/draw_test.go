// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartplot

import (
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maycharts/chartval"
	"maycharts/config"
	"maycharts/indapi/indicators"
	"maycharts/render"
)

// textlessSurface simulates a backend whose text stack is broken. Only
// labels may be affected; geometry must still be drawn.
type textlessSurface struct {
	*render.Recorder
}

var errNoText = errors.New("no text backend")

func (s *textlessSurface) DrawText(str string, pos render.Point, font render.FontSpec, c color.NRGBA) (render.Rect, error) {
	return render.Rect{}, errNoText
}

func (s *textlessSurface) MeasureText(str string, font render.FontSpec) (render.Size, error) {
	return render.Size{}, errNoText
}

func opKinds(ops []render.Op) map[render.OpKind]int {
	kinds := make(map[render.OpKind]int)
	for _, op := range ops {
		kinds[op.Kind]++
	}
	return kinds
}

func TestRenderFrameStartsWithBackground(t *testing.T) {
	c := newTestChart(t)
	rec := render.NewRecorder()

	require.NoError(t, c.RenderOnto(rec, 800, 600, 1))

	ops := rec.Ops()
	require.NotEmpty(t, ops)
	assert.Equal(t, render.OpRect, ops[0].Kind)
	assert.Equal(t, NewDarkTheme().BackgroundColor, ops[0].Paint.Color)
	assert.Equal(t, render.StyleFill, ops[0].Paint.Style)
}

func TestRenderFrameDrawsCandlesAndLabels(t *testing.T) {
	c := newTestChart(t)
	rec := render.NewRecorder()

	require.NoError(t, c.RenderOnto(rec, 800, 600, 1))

	kinds := opKinds(rec.Ops())
	assert.Greater(t, kinds[render.OpPath], 0)
	assert.Greater(t, kinds[render.OpLine], 0)
	assert.Greater(t, kinds[render.OpText], 0)
}

func TestRenderWithoutLabels(t *testing.T) {
	c := newTestChart(t)
	cfg := c.Config()
	cfg.DrawLabels = false
	c.SetConfig(cfg)
	rec := render.NewRecorder()

	require.NoError(t, c.RenderOnto(rec, 800, 600, 1))

	kinds := opKinds(rec.Ops())
	assert.Zero(t, kinds[render.OpText])
	assert.Greater(t, kinds[render.OpPath], 0)
}

func TestRenderSurvivesTextFailure(t *testing.T) {
	c := newTestChart(t)
	rec := render.NewRecorder()
	s := &textlessSurface{Recorder: rec}

	err := c.RenderOnto(s, 800, 600, 1)

	// Text failures skip labels, never the frame.
	require.NoError(t, err)
	kinds := opKinds(rec.Ops())
	assert.Zero(t, kinds[render.OpText])
	assert.Greater(t, kinds[render.OpPath], 0)
	assert.Greater(t, kinds[render.OpLine], 0)
}

func TestRenderUsesCandleColors(t *testing.T) {
	c := NewChart(config.NewChartConfig(), NewDarkTheme())
	s := chartval.NewSeries("candles", chartval.SeriesCandlestick)
	require.NoError(t, s.ReplaceCandles([]chartval.Candle{
		{X: 0, Open: 10, High: 13, Low: 9, Close: 12},
		{X: 1, Open: 12, High: 13, Low: 8, Close: 9},
	}))
	require.NoError(t, c.AddSeries(s))
	require.NoError(t, c.SetVisibleRange(-1, 2))
	rec := render.NewRecorder()

	require.NoError(t, c.RenderOnto(rec, 800, 600, 1))

	var sawUp, sawDown bool
	for _, op := range rec.Ops() {
		if op.Kind != render.OpPath {
			continue
		}
		switch op.Paint.Color {
		case NewDarkTheme().CandleUpColor:
			sawUp = true
		case NewDarkTheme().CandleDownColor:
			sawDown = true
		}
	}
	assert.True(t, sawUp)
	assert.True(t, sawDown)
}

func TestRenderLineSeries(t *testing.T) {
	c := NewChart(config.NewChartConfig(), NewDarkTheme())
	s := chartval.NewSeries("line", chartval.SeriesLine)
	points := make([]chartval.Point, 100)
	for i := range points {
		points[i] = chartval.Point{X: float64(i), Y: float64(i % 10)}
	}
	require.NoError(t, s.Replace(points))
	require.NoError(t, c.AddSeries(s))
	c.AutoscaleFull()
	rec := render.NewRecorder()

	require.NoError(t, c.RenderOnto(rec, 800, 600, 1))

	var found bool
	for _, op := range rec.Ops() {
		if op.Kind == render.OpPath && op.Paint.Color == NewDarkTheme().LineColor {
			found = true
			assert.Greater(t, len(op.Path.Segments), 2)
		}
	}
	assert.True(t, found)
}

func TestRenderHistogramBarsBoundedBySampleTarget(t *testing.T) {
	c := NewChart(config.NewChartConfig(), NewDarkTheme())
	s := chartval.NewSeries("volume", chartval.SeriesHistogram)
	points := make([]chartval.Point, 10000)
	for i := range points {
		points[i] = chartval.Point{X: float64(i), Y: float64(1 + i%5)}
	}
	require.NoError(t, s.Replace(points))
	require.NoError(t, c.AddSeries(s))
	c.AutoscaleFull()
	rec := render.NewRecorder()

	require.NoError(t, c.RenderOnto(rec, 800, 600, 1))

	bars := 0
	for _, op := range rec.Ops() {
		if op.Kind == render.OpPath && op.Paint.Color == NewDarkTheme().HistogramColor {
			bars += len(op.Path.Segments) / 2
		}
	}
	require.Greater(t, bars, 0)
	// 704 plot pixels at two samples per pixel.
	assert.LessOrEqual(t, bars, 1408)
}

func TestRenderReusesBatcherAcrossFrames(t *testing.T) {
	c := newTestChart(t)
	first := render.NewRecorder()
	require.NoError(t, c.RenderOnto(first, 800, 600, 1))
	second := render.NewRecorder()

	require.NoError(t, c.RenderOnto(second, 800, 600, 1))

	assert.Empty(t, cmp.Diff(first.Ops(), second.Ops()))
}

func TestRenderDrawsIndicatorOutput(t *testing.T) {
	c := newTestChart(t)
	pluginColor := color.NRGBA{R: 1, G: 2, B: 3, A: 255}
	ind := indicators.Create("sma", nil, []color.NRGBA{pluginColor})
	c.Plugins().AddIndicator("sma", ind)
	rec := render.NewRecorder()

	require.NoError(t, c.RenderOnto(rec, 800, 600, 1))

	var found bool
	for _, op := range rec.Ops() {
		if op.Kind == render.OpPath && op.Paint.Color == pluginColor {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRenderDrawsCrosshair(t *testing.T) {
	c := newTestChart(t)
	c.SetCrosshairPixel(400, 300)
	rec := render.NewRecorder()

	require.NoError(t, c.RenderOnto(rec, 800, 600, 1))

	var dashed int
	for _, op := range rec.Ops() {
		if op.Kind == render.OpLine && op.Paint.Color == NewDarkTheme().CrosshairColor {
			dashed++
		}
	}
	assert.Equal(t, 2, dashed)
}

func TestRenderToPixelBufferSize(t *testing.T) {
	c := newTestChart(t)

	buf, err := c.RenderToPixelBuffer(320, 240, 1)

	require.NoError(t, err)
	assert.Len(t, buf, 320*240*4)
}

func TestRenderToPixelBufferRejectsBadSize(t *testing.T) {
	c := newTestChart(t)

	_, err := c.RenderToPixelBuffer(0, 240, 1)

	assert.Error(t, err)
}
