// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package priceline

import (
	"image/color"
	"log"

	"maycharts/chartval"
	"maycharts/indapi"
	"maycharts/render"
)

// Overlay marks the latest close of the first candle series with a
// dashed line across the plot and a price tag on the y axis.
type Overlay struct {
	// Zero-value colors fall back to the frame default.
	Up   color.NRGBA
	Down color.NRGBA
	Text color.NRGBA
}

const Id = "priceline"

func NewOverlay() indapi.Overlay {
	return &Overlay{}
}

func (d *Overlay) GetId() indapi.PluginId {
	return Id
}

func (d *Overlay) GetProperties() map[string]string {
	return map[string]string{}
}

func (d *Overlay) SetProperties(prop map[string]string) {
	for key := range prop {
		log.Printf("Unknown property %s was ignored.", key)
	}
}

func (d *Overlay) HandleEvent(ev indapi.Event, snap *indapi.ChartSnapshot) bool {
	return false
}

func (d *Overlay) Draw(dc *indapi.DrawContext, snap *indapi.ChartSnapshot) {
	s := snap.FirstCandleSeries()
	if s == nil || s.Len() == 0 {
		return
	}
	candles := s.Candles()
	last := candles[len(candles)-1]
	yPos := dc.YScale(s.Group()).ToPixel(last.Close)
	if yPos < float64(dc.PlotRect.Min.Y) || yPos > float64(dc.PlotRect.Max.Y) {
		return
	}

	lineColor := d.Up
	if !chartval.IsGreenCandle(last.Open, last.Close) {
		lineColor = d.Down
	}
	if empty := (color.NRGBA{}); lineColor == empty {
		lineColor = dc.DefaultColor
	}
	dc.Batch.AddLine(
		render.Paint{
			Color: lineColor,
			Width: float32(dc.Dpr),
			Style: render.StyleStroke,
			Dash:  [2]float32{float32(2 * dc.Dpr), float32(10 * dc.Dpr)},
		},
		render.Pt(dc.PlotRect.Min.X, float32(yPos)),
		render.Pt(dc.PlotRect.Max.X, float32(yPos)),
	)

	if !dc.DrawLabels {
		return
	}
	labelText := chartval.FormatPrice(last.Close)
	font := render.FontSpec{SizePx: dc.LabelSize}
	textSize, err := dc.Surface.MeasureText(labelText, font)
	if err != nil {
		// Text failures only skip the tag, never the line.
		return
	}
	basePosX := dc.PlotRect.Max.X + float32(4*dc.Dpr)
	dc.Surface.DrawRect(render.Rect{
		Min: render.Pt(basePosX-float32(2*dc.Dpr), float32(yPos)-textSize.Height/2-float32(2*dc.Dpr)),
		Max: render.Pt(basePosX+textSize.Width+float32(2*dc.Dpr), float32(yPos)+textSize.Height/2+float32(2*dc.Dpr)),
	}, render.Paint{Color: lineColor, Style: render.StyleFill})
	textColor := d.Text
	if empty := (color.NRGBA{}); textColor == empty {
		textColor = color.NRGBA{A: 255}
	}
	_, err = dc.Surface.DrawText(labelText, render.Pt(basePosX, float32(yPos)-textSize.Height/2), font, textColor)
	if err != nil {
		return
	}
}
