// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package indapi

import (
	"image/color"

	"maycharts/chartval"
	"maycharts/render"
	"maycharts/scale"
)

type PluginId string

// For sorting
type PluginList []PluginId

func (x PluginList) Len() int           { return len(x) }
func (x PluginList) Less(i, j int) bool { return x[i] < x[j] }
func (x PluginList) Swap(i, j int)      { x[i], x[j] = x[j], x[i] }

// ChartSnapshot is the read-only view handed to plugins during a frame
// or event dispatch. The slices alias live chart data; plugins must not
// retain them past the call.
type ChartSnapshot struct {
	Series   []*chartval.Series
	Visible  chartval.Range
	YVisible map[chartval.GroupId]chartval.Range
}

func (s *ChartSnapshot) FindSeries(id string) *chartval.Series {
	for _, sr := range s.Series {
		if sr.Id() == id {
			return sr
		}
	}
	return nil
}

// FirstCandleSeries returns the first candle or bar series in draw
// order, or nil.
func (s *ChartSnapshot) FirstCandleSeries() *chartval.Series {
	for _, sr := range s.Series {
		if sr.Type().IsOHLC() {
			return sr
		}
	}
	return nil
}

// DrawContext carries the per-frame drawing state an overlay needs:
// the target surface, the shared paint batcher and the frame scales.
type DrawContext struct {
	Surface      render.Surface
	Batch        *render.Batcher
	PlotRect     render.Rect
	XScale       scale.Scale
	YScales      map[chartval.GroupId]scale.Scale
	Dpr          float64
	DefaultColor color.NRGBA
	LabelSize    int
	DrawLabels   bool
}

// YScale returns the scale of the given group, falling back to the
// default group.
func (dc *DrawContext) YScale(g chartval.GroupId) scale.Scale {
	if s, ok := dc.YScales[g]; ok {
		return s
	}
	return dc.YScales[chartval.DefaultGroup]
}

// Indicator transforms one input series into derived line series. The
// computation must be pure; the chart calls it per frame and owns any
// caching.
type Indicator interface {
	GetId() PluginId
	GetProperties() map[string]string
	SetProperties(map[string]string)
	GetColors() []color.NRGBA
	SetColors([]color.NRGBA)
	Compute(input *chartval.Series) []*chartval.Series
}

// Overlay draws directly on the plot and may claim pointer and key
// events.
type Overlay interface {
	GetId() PluginId
	GetProperties() map[string]string
	SetProperties(map[string]string)
	Draw(dc *DrawContext, snap *ChartSnapshot)
	// HandleEvent reports whether the event was consumed.
	HandleEvent(ev Event, snap *ChartSnapshot) bool
}

func GetMinColors(c []color.NRGBA, numColors int) []color.NRGBA {
	for len(c) < numColors {
		c = append(c, color.NRGBA{})
	}
	return c
}

func GetNormalisedColors(c []color.NRGBA, def color.NRGBA) []color.NRGBA {
	for i := range c {
		if empty := (color.NRGBA{}); c[i] == empty {
			c[i] = def
		}
	}
	return c
}
