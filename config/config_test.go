// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"maycharts/chartval"
)

func TestDefaults(t *testing.T) {
	c := NewChartConfig()

	assert.Equal(t, 1.25, c.ZoomBase)
	assert.Equal(t, 0.05, c.AutoscalePadding)
	assert.Equal(t, Insets{Left: 72, Top: 24, Right: 24, Bottom: 56}, c.Insets)
	assert.True(t, c.DrawLabels)
	assert.True(t, c.CrispLines)
}

func TestSanitizeRestoresDefaults(t *testing.T) {
	c := NewChartConfig()
	c.ZoomBase = 0.5
	c.SamplesPerPixel = -1
	c.LabelSizePx = 0

	c.Sanitize()

	def := NewChartConfig()
	assert.Equal(t, def.ZoomBase, c.ZoomBase)
	assert.Equal(t, def.SamplesPerPixel, c.SamplesPerPixel)
	assert.Equal(t, def.LabelSizePx, c.LabelSizePx)
}

func TestSanitizeDropsInvalidHardBound(t *testing.T) {
	c := NewChartConfig()
	c.HardBound = &chartval.Range{Min: 10, Max: 5}

	c.Sanitize()

	assert.Nil(t, c.HardBound)
}

func TestCopyIsDeep(t *testing.T) {
	c := NewChartConfig()
	c.HardBound = &chartval.Range{Min: 0, Max: 100}

	d := c.Copy()
	d.HardBound.Max = 50

	assert.Equal(t, 100.0, c.HardBound.Max)
}
