// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package config holds the chart behavior knobs. The host owns
// persistence; this package only provides defaults, sanitizing and
// deep copies.
package config

import (
	"github.com/barkimedes/go-deepcopy"

	"maycharts/chartval"
)

// Insets reserve space around the plot area for axes and labels, in
// logical pixels.
type Insets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

type ChartConfig struct {
	// ZoomBase is the range shrink factor per zoom step.
	ZoomBase float64
	// AutoscalePadding is the margin fraction added on both sides of
	// autoscaled ranges.
	AutoscalePadding float64
	// MinVisibleWidth is the narrowest allowed visible x range.
	MinVisibleWidth float64
	// MaxVisibleWidth caps zooming out; zero means unlimited.
	MaxVisibleWidth float64
	// SamplesPerPixel controls the downsample target per pixel column.
	SamplesPerPixel float64
	// HardBound restricts panning when set.
	HardBound    *chartval.Range
	VerticalPan  bool
	ZoomYEnabled bool
	DrawLabels   bool
	CrispLines   bool
	LabelSizePx  int
	Insets       Insets
}

func NewChartConfig() ChartConfig {
	return ChartConfig{
		ZoomBase:         1.25,
		AutoscalePadding: 0.05,
		MinVisibleWidth:  chartval.NearZero,
		SamplesPerPixel:  2,
		VerticalPan:      true,
		ZoomYEnabled:     true,
		DrawLabels:       true,
		CrispLines:       true,
		LabelSizePx:      12,
		Insets:           Insets{Left: 72, Top: 24, Right: 24, Bottom: 56},
	}
}

// Sanitize restores defaults for values a host may have zeroed or set
// to nonsense.
func (c *ChartConfig) Sanitize() {
	def := NewChartConfig()
	if c.ZoomBase <= 1 {
		c.ZoomBase = def.ZoomBase
	}
	if c.AutoscalePadding < 0 {
		c.AutoscalePadding = def.AutoscalePadding
	}
	if c.MinVisibleWidth <= 0 {
		c.MinVisibleWidth = def.MinVisibleWidth
	}
	if c.MaxVisibleWidth < 0 {
		c.MaxVisibleWidth = 0
	}
	if c.SamplesPerPixel <= 0 {
		c.SamplesPerPixel = def.SamplesPerPixel
	}
	if c.LabelSizePx <= 0 {
		c.LabelSizePx = def.LabelSizePx
	}
	if c.Insets.Left < 0 || c.Insets.Top < 0 || c.Insets.Right < 0 || c.Insets.Bottom < 0 {
		c.Insets = def.Insets
	}
	if c.HardBound != nil && !c.HardBound.Valid() {
		c.HardBound = nil
	}
}

func (c *ChartConfig) Copy() ChartConfig {
	d, err := deepcopy.Anything(c)
	if err != nil {
		panic(err)
	}
	return *d.(*ChartConfig)
}
