// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package bollinger

import (
	"fmt"
	"image/color"
	"log"
	"strconv"

	"github.com/ericlagergren/decimal"

	"maycharts/chartval"
	"maycharts/indapi"
	"maycharts/indapi/calc"
	"maycharts/indapi/properties"
)

type Indicator struct {
	timeUnits int
	bandWidth int
	colors    []color.NRGBA
}

const Id = "bollinger"

func NewIndicator() indapi.Indicator {
	return &Indicator{timeUnits: 20, bandWidth: 2}
}

func (d *Indicator) GetId() indapi.PluginId {
	return Id
}

func (d *Indicator) GetProperties() map[string]string {
	return map[string]string{
		"Width":      strconv.Itoa(d.bandWidth),
		"Time Units": strconv.Itoa(d.timeUnits),
	}
}

func (d *Indicator) SetProperties(prop map[string]string) {
	for key, value := range prop {
		switch key {
		case "Width":
			properties.SetPositiveValue(&d.bandWidth, value)
		case "Time Units":
			properties.SetPositiveValue(&d.timeUnits, value)
		default:
			log.Printf("Unknown property %s was ignored.", key)
		}
	}
}

func (d *Indicator) GetColors() []color.NRGBA {
	return d.colors
}

func (d *Indicator) SetColors(c []color.NRGBA) {
	d.colors = indapi.GetMinColors(c, 3)
}

func (d *Indicator) Compute(input *chartval.Series) []*chartval.Series {
	xs, ys := calc.CloseValues(input)
	if len(xs) == 0 {
		return nil
	}
	top := make([]chartval.Point, 0, len(xs))
	mid := make([]chartval.Point, 0, len(xs))
	bottom := make([]chartval.Point, 0, len(xs))
	width := decimal.New(int64(d.bandWidth), 0)
	for i := range xs {
		subSet := ys[calc.Max(0, i+1-d.timeUnits) : i+1]
		mean := calc.Mean(new(decimal.Big), subSet)
		meanTop := new(decimal.Big).Copy(mean)
		meanBottom := new(decimal.Big).Copy(mean)
		stdDev := calc.StdDev(new(decimal.Big), subSet)
		stdDev.Mul(stdDev, width)
		t, _ := meanTop.Add(meanTop, stdDev).Float64()
		m, _ := mean.Float64()
		b, _ := meanBottom.Sub(meanBottom, stdDev).Float64()
		top = append(top, chartval.Point{X: xs[i], Y: t})
		mid = append(mid, chartval.Point{X: xs[i], Y: m})
		bottom = append(bottom, chartval.Point{X: xs[i], Y: b})
	}
	lines := []struct {
		name   string
		points []chartval.Point
	}{
		{"top", top},
		{"mid", mid},
		{"bottom", bottom},
	}
	out := make([]*chartval.Series, 0, len(lines))
	for _, l := range lines {
		s := chartval.NewSeries(fmt.Sprintf("%s.bollinger.%s", input.Id(), l.name), chartval.SeriesLine)
		s.SetGroup(input.Group())
		if err := s.Replace(l.points); err != nil {
			return nil
		}
		out = append(out, s)
	}
	return out
}
