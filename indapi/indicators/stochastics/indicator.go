// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stochastics

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"strconv"

	"github.com/cinar/indicator"

	"maycharts/chartval"
	"maycharts/indapi"
	"maycharts/indapi/calc"
	"maycharts/indapi/properties"
)

// Indicator computes the stochastic oscillator (%K and %D). The output
// lives on its own axis group since it is bounded to 0..100 and does
// not share the price scale.
type Indicator struct {
	group  int
	colors []color.NRGBA
}

const Id = "stochastics"

func NewIndicator() indapi.Indicator {
	return &Indicator{group: 1}
}

func (d *Indicator) GetId() indapi.PluginId {
	return Id
}

func (d *Indicator) GetProperties() map[string]string {
	return map[string]string{
		"Group": strconv.Itoa(d.group),
	}
}

func (d *Indicator) SetProperties(prop map[string]string) {
	for key, value := range prop {
		switch key {
		case "Group":
			properties.SetPositiveValue(&d.group, value)
		default:
			log.Printf("Unknown property %s was ignored.", key)
		}
	}
}

func (d *Indicator) GetColors() []color.NRGBA {
	return d.colors
}

func (d *Indicator) SetColors(c []color.NRGBA) {
	d.colors = indapi.GetMinColors(c, 2)
}

func (d *Indicator) Compute(input *chartval.Series) []*chartval.Series {
	xs, high, low, cl := calc.HighLowClose(input)
	if len(xs) == 0 {
		return nil
	}
	k, dd := indicator.StochasticOscillator(high, low, cl)
	lines := []struct {
		name   string
		values []float64
	}{
		{"k", k},
		{"d", dd},
	}
	out := make([]*chartval.Series, 0, len(lines))
	for _, l := range lines {
		s := chartval.NewSeries(fmt.Sprintf("%s.stoch.%s", input.Id(), l.name), chartval.SeriesLine)
		s.SetGroup(chartval.GroupId(d.group))
		points := make([]chartval.Point, 0, len(l.values))
		for i := range l.values {
			// Flat high/low windows make the oscillator undefined.
			if math.IsNaN(l.values[i]) || math.IsInf(l.values[i], 0) {
				continue
			}
			points = append(points, chartval.Point{X: xs[i], Y: l.values[i]})
		}
		if err := s.Replace(points); err != nil {
			return nil
		}
		out = append(out, s)
	}
	return out
}
