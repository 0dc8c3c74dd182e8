// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartplot

import (
	"image/color"
	"strings"
)

type Theme struct {
	Name               string
	BackgroundColor    color.NRGBA
	GridColor          color.NRGBA
	AxesColor          color.NRGBA
	AxesTextColor      color.NRGBA
	TickColor          color.NRGBA
	CrosshairColor     color.NRGBA
	LineColor          color.NRGBA
	CandleUpColor      color.NRGBA
	CandleDownColor    color.NRGBA
	HistogramColor     color.NRGBA
	BaselineColor      color.NRGBA
	BaselineFillColor  color.NRGBA
	QuoteDashPattern   [2]float32
	DefaultPluginColor color.NRGBA
}

func NewDarkTheme() *Theme {
	return &Theme{
		Name:               "dark",
		BackgroundColor:    color.NRGBA{R: 18, G: 18, B: 20, A: 255},
		GridColor:          color.NRGBA{R: 40, G: 40, B: 45, A: 255},
		AxesColor:          color.NRGBA{R: 180, G: 180, B: 190, A: 255},
		AxesTextColor:      color.NRGBA{R: 235, G: 235, B: 245, A: 255},
		TickColor:          color.NRGBA{R: 150, G: 150, B: 160, A: 255},
		CrosshairColor:     color.NRGBA{R: 255, G: 230, B: 70, A: 255},
		LineColor:          color.NRGBA{R: 64, G: 160, B: 255, A: 255},
		CandleUpColor:      color.NRGBA{R: 40, G: 200, B: 120, A: 255},
		CandleDownColor:    color.NRGBA{R: 220, G: 80, B: 80, A: 255},
		HistogramColor:     color.NRGBA{R: 96, G: 156, B: 255, A: 255},
		BaselineColor:      color.NRGBA{R: 64, G: 160, B: 255, A: 255},
		BaselineFillColor:  color.NRGBA{R: 64, G: 160, B: 255, A: 96},
		QuoteDashPattern:   [2]float32{2, 10},
		DefaultPluginColor: color.NRGBA{R: 180, G: 180, B: 190, A: 255},
	}
}

func NewLightTheme() *Theme {
	return &Theme{
		Name:               "light",
		BackgroundColor:    color.NRGBA{R: 250, G: 250, B: 252, A: 255},
		GridColor:          color.NRGBA{R: 230, G: 230, B: 235, A: 255},
		AxesColor:          color.NRGBA{R: 60, G: 60, B: 70, A: 255},
		AxesTextColor:      color.NRGBA{R: 20, G: 20, B: 30, A: 255},
		TickColor:          color.NRGBA{R: 100, G: 100, B: 110, A: 255},
		CrosshairColor:     color.NRGBA{R: 30, G: 120, B: 240, A: 255},
		LineColor:          color.NRGBA{R: 32, G: 120, B: 200, A: 255},
		CandleUpColor:      color.NRGBA{R: 20, G: 160, B: 90, A: 255},
		CandleDownColor:    color.NRGBA{R: 200, G: 60, B: 60, A: 255},
		HistogramColor:     color.NRGBA{R: 40, G: 120, B: 200, A: 255},
		BaselineColor:      color.NRGBA{R: 32, G: 120, B: 200, A: 255},
		BaselineFillColor:  color.NRGBA{R: 32, G: 120, B: 200, A: 80},
		QuoteDashPattern:   [2]float32{2, 10},
		DefaultPluginColor: color.NRGBA{R: 60, G: 60, B: 70, A: 255},
	}
}

func NewSolarizedDarkTheme() *Theme {
	return &Theme{
		Name:               "solarized-dark",
		BackgroundColor:    color.NRGBA{R: 0x00, G: 0x2b, B: 0x36, A: 255},
		GridColor:          color.NRGBA{R: 0x07, G: 0x36, B: 0x42, A: 255},
		AxesColor:          color.NRGBA{R: 0x93, G: 0xa1, B: 0xa1, A: 255},
		AxesTextColor:      color.NRGBA{R: 0xee, G: 0xe8, B: 0xd5, A: 255},
		TickColor:          color.NRGBA{R: 0x83, G: 0x94, B: 0x96, A: 255},
		CrosshairColor:     color.NRGBA{R: 0xb5, G: 0x89, B: 0x00, A: 255},
		LineColor:          color.NRGBA{R: 0x26, G: 0x8b, B: 0xd2, A: 255},
		CandleUpColor:      color.NRGBA{R: 0x2a, G: 0xa1, B: 0x98, A: 255},
		CandleDownColor:    color.NRGBA{R: 0xdc, G: 0x32, B: 0x2f, A: 255},
		HistogramColor:     color.NRGBA{R: 0x26, G: 0x8b, B: 0xd2, A: 255},
		BaselineColor:      color.NRGBA{R: 0x26, G: 0x8b, B: 0xd2, A: 255},
		BaselineFillColor:  color.NRGBA{R: 0x26, G: 0x8b, B: 0xd2, A: 96},
		QuoteDashPattern:   [2]float32{2, 10},
		DefaultPluginColor: color.NRGBA{R: 0x93, G: 0xa1, B: 0xa1, A: 255},
	}
}

func NewSolarizedLightTheme() *Theme {
	return &Theme{
		Name:               "solarized-light",
		BackgroundColor:    color.NRGBA{R: 0xfd, G: 0xf6, B: 0xe3, A: 255},
		GridColor:          color.NRGBA{R: 0xee, G: 0xe8, B: 0xd5, A: 255},
		AxesColor:          color.NRGBA{R: 0x65, G: 0x7b, B: 0x83, A: 255},
		AxesTextColor:      color.NRGBA{R: 0x00, G: 0x2b, B: 0x36, A: 255},
		TickColor:          color.NRGBA{R: 0x58, G: 0x6e, B: 0x75, A: 255},
		CrosshairColor:     color.NRGBA{R: 0xcb, G: 0x4b, B: 0x16, A: 255},
		LineColor:          color.NRGBA{R: 0x26, G: 0x8b, B: 0xd2, A: 255},
		CandleUpColor:      color.NRGBA{R: 0x2a, G: 0xa1, B: 0x98, A: 255},
		CandleDownColor:    color.NRGBA{R: 0xdc, G: 0x32, B: 0x2f, A: 255},
		HistogramColor:     color.NRGBA{R: 0x26, G: 0x8b, B: 0xd2, A: 255},
		BaselineColor:      color.NRGBA{R: 0x26, G: 0x8b, B: 0xd2, A: 255},
		BaselineFillColor:  color.NRGBA{R: 0x26, G: 0x8b, B: 0xd2, A: 80},
		QuoteDashPattern:   [2]float32{2, 10},
		DefaultPluginColor: color.NRGBA{R: 0x65, G: 0x7b, B: 0x83, A: 255},
	}
}

func NewHighContrastDarkTheme() *Theme {
	return &Theme{
		Name:               "high-contrast-dark",
		BackgroundColor:    color.NRGBA{A: 255},
		GridColor:          color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 255},
		AxesColor:          color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		AxesTextColor:      color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		TickColor:          color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 255},
		CrosshairColor:     color.NRGBA{R: 255, G: 255, B: 0, A: 255},
		LineColor:          color.NRGBA{R: 0, G: 255, B: 255, A: 255},
		CandleUpColor:      color.NRGBA{R: 0, G: 255, B: 0, A: 255},
		CandleDownColor:    color.NRGBA{R: 255, G: 0, B: 0, A: 255},
		HistogramColor:     color.NRGBA{R: 0, G: 0xaa, B: 255, A: 255},
		BaselineColor:      color.NRGBA{R: 0, G: 0xaa, B: 255, A: 255},
		BaselineFillColor:  color.NRGBA{R: 0, G: 0xaa, B: 255, A: 120},
		QuoteDashPattern:   [2]float32{2, 10},
		DefaultPluginColor: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

func ThemePresets() []*Theme {
	return []*Theme{
		NewDarkTheme(),
		NewLightTheme(),
		NewSolarizedDarkTheme(),
		NewSolarizedLightTheme(),
		NewHighContrastDarkTheme(),
	}
}

// FindTheme returns the preset with the given name, falling back to
// dark.
func FindTheme(name string) *Theme {
	for _, t := range ThemePresets() {
		if strings.EqualFold(t.Name, name) {
			return t
		}
	}
	return NewDarkTheme()
}
