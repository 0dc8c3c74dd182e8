// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package guideline

import (
	"log"
	"strconv"

	"maycharts/chartval"
	"maycharts/indapi"
	"maycharts/indapi/properties"
	"maycharts/render"
)

// Overlay is a horizontal guide line. A pointer press inside the plot
// places the line at the clicked value and consumes the event.
type Overlay struct {
	y     float64
	group chartval.GroupId
	set   bool
}

const Id = "guideline"

func NewOverlay() indapi.Overlay {
	return &Overlay{}
}

func (d *Overlay) GetId() indapi.PluginId {
	return Id
}

func (d *Overlay) GetProperties() map[string]string {
	return map[string]string{
		"Value": strconv.FormatFloat(d.y, 'g', -1, 64),
		"Set":   strconv.FormatBool(d.set),
	}
}

func (d *Overlay) SetProperties(prop map[string]string) {
	for key, value := range prop {
		switch key {
		case "Value":
			properties.SetFiniteValue(&d.y, value)
			d.set = true
		case "Set":
			if b, err := strconv.ParseBool(value); err == nil {
				d.set = b
			}
		default:
			log.Printf("Unknown property %s was ignored.", key)
		}
	}
}

func (d *Overlay) Value() (float64, bool) {
	return d.y, d.set
}

func (d *Overlay) HandleEvent(ev indapi.Event, snap *indapi.ChartSnapshot) bool {
	if ev.Kind != indapi.PointerPress {
		return false
	}
	d.y = ev.Y
	d.group = ev.Group
	d.set = true
	return true
}

func (d *Overlay) Draw(dc *indapi.DrawContext, snap *indapi.ChartSnapshot) {
	if !d.set {
		return
	}
	yPos := dc.YScale(d.group).ToPixel(d.y)
	if yPos < float64(dc.PlotRect.Min.Y) || yPos > float64(dc.PlotRect.Max.Y) {
		return
	}
	dc.Batch.AddLine(
		render.Paint{
			Color: dc.DefaultColor,
			Width: float32(dc.Dpr),
			Style: render.StyleStroke,
			Dash:  [2]float32{float32(4 * dc.Dpr), float32(4 * dc.Dpr)},
		},
		render.Pt(dc.PlotRect.Min.X, float32(yPos)),
		render.Pt(dc.PlotRect.Max.X, float32(yPos)),
	)
}
