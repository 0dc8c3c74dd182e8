// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package overlays

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maycharts/chartval"
	"maycharts/indapi"
	"maycharts/indapi/overlays/guideline"
	"maycharts/render"
	"maycharts/scale"
)

func newTestDrawContext() (*indapi.DrawContext, *render.Recorder) {
	rec := render.NewRecorder()
	return &indapi.DrawContext{
		Surface:  rec,
		Batch:    render.NewBatcher(),
		PlotRect: render.Rect{Min: render.Pt(72, 24), Max: render.Pt(776, 544)},
		XScale:   scale.NewX(chartval.Range{Min: 0, Max: 100}, 72, 776, 1),
		YScales: map[chartval.GroupId]scale.Scale{
			chartval.DefaultGroup: scale.NewY(chartval.ScaleLinear, chartval.Range{Min: 0, Max: 100}, 24, 544, 1),
		},
		Dpr:       1,
		LabelSize: 12,
	}, rec
}

func TestGetListIsSorted(t *testing.T) {
	assert.Equal(t, indapi.PluginList{"guideline", "priceline"}, GetList())
}

func TestGuidelineClickSetsValueAndConsumes(t *testing.T) {
	ov := Create("guideline", nil)

	consumed := ov.HandleEvent(indapi.Event{Kind: indapi.PointerPress, Y: 42.5}, &indapi.ChartSnapshot{})

	require.True(t, consumed)
	gl := ov.(*guideline.Overlay)
	v, set := gl.Value()
	assert.True(t, set)
	assert.Equal(t, 42.5, v)
}

func TestGuidelineIgnoresMove(t *testing.T) {
	ov := Create("guideline", nil)

	consumed := ov.HandleEvent(indapi.Event{Kind: indapi.PointerMove, Y: 42.5}, &indapi.ChartSnapshot{})

	assert.False(t, consumed)
	_, set := ov.(*guideline.Overlay).Value()
	assert.False(t, set)
}

func TestGuidelineDrawsDashedLine(t *testing.T) {
	ov := Create("guideline", map[string]string{"Value": "50"})
	dc, rec := newTestDrawContext()

	ov.Draw(dc, &indapi.ChartSnapshot{})
	dc.Batch.Flush(dc.Surface)

	ops := rec.Ops()
	require.Len(t, ops, 1)
	assert.Equal(t, render.OpPath, ops[0].Kind)
	assert.NotZero(t, ops[0].Paint.Dash[0])
}

func TestGuidelineDrawsNothingWhenUnset(t *testing.T) {
	ov := Create("guideline", nil)
	dc, rec := newTestDrawContext()

	ov.Draw(dc, &indapi.ChartSnapshot{})
	dc.Batch.Flush(dc.Surface)

	assert.Empty(t, rec.Ops())
}

func TestPricelineDrawsLastClose(t *testing.T) {
	ov := Create("priceline", nil)
	s := chartval.NewSeries("candles", chartval.SeriesCandlestick)
	require.NoError(t, s.ReplaceCandles([]chartval.Candle{
		{X: 1, Open: 40, High: 55, Low: 38, Close: 50},
	}))
	snap := &indapi.ChartSnapshot{Series: []*chartval.Series{s}}
	dc, rec := newTestDrawContext()
	dc.DrawLabels = true

	ov.Draw(dc, snap)
	dc.Batch.Flush(dc.Surface)

	var kinds []render.OpKind
	for _, op := range rec.Ops() {
		kinds = append(kinds, op.Kind)
	}
	// Axis tag background, tag text, then the batched dashed line.
	assert.Contains(t, kinds, render.OpRect)
	assert.Contains(t, kinds, render.OpText)
	assert.Contains(t, kinds, render.OpPath)
}

func TestPricelineNoCandleSeriesNoOutput(t *testing.T) {
	ov := Create("priceline", nil)
	dc, rec := newTestDrawContext()

	ov.Draw(dc, &indapi.ChartSnapshot{})
	dc.Batch.Flush(dc.Surface)

	assert.Empty(t, rec.Ops())
}
