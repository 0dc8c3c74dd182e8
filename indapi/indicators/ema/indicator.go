// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package ema

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/cinar/indicator"

	"maycharts/chartval"
	"maycharts/indapi"
	"maycharts/indapi/calc"
	"maycharts/indapi/properties"
)

type Indicator struct {
	numPeriods int
	colors     []color.NRGBA
}

const Id = "ema"

func NewIndicator() indapi.Indicator {
	return &Indicator{numPeriods: 12}
}

func (d *Indicator) GetId() indapi.PluginId {
	return Id
}

func (d *Indicator) GetProperties() map[string]string {
	return map[string]string{
		"Time Periods": strconv.Itoa(d.numPeriods),
	}
}

func (d *Indicator) SetProperties(prop map[string]string) {
	for key, value := range prop {
		switch key {
		case "Time Periods":
			properties.SetPositiveValue(&d.numPeriods, value)
		default:
			panic("unknown indicator property")
		}
	}
}

func (d *Indicator) GetColors() []color.NRGBA {
	return d.colors
}

func (d *Indicator) SetColors(c []color.NRGBA) {
	d.colors = indapi.GetMinColors(c, 1)
}

func (d *Indicator) Compute(input *chartval.Series) []*chartval.Series {
	xs, ys := calc.CloseValues(input)
	if len(xs) == 0 {
		return nil
	}
	result := indicator.Ema(d.numPeriods, ys)
	out := chartval.NewSeries(fmt.Sprintf("%s.ema%d", input.Id(), d.numPeriods), chartval.SeriesLine)
	out.SetGroup(input.Group())
	points := make([]chartval.Point, len(result))
	for i := range result {
		points[i] = chartval.Point{X: xs[i], Y: result[i]}
	}
	if err := out.Replace(points); err != nil {
		return nil
	}
	return []*chartval.Series{out}
}
