// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package indicators

import (
	"image/color"
	"sort"

	"golang.org/x/exp/maps"

	"maycharts/indapi"
	"maycharts/indapi/indicators/bollinger"
	"maycharts/indapi/indicators/ema"
	"maycharts/indapi/indicators/sma"
	"maycharts/indapi/indicators/stochastics"
)

const DefaultId = "sma"

var IndicatorRegistry map[indapi.PluginId]func() indapi.Indicator = make(map[indapi.PluginId]func() indapi.Indicator)

func init() {
	IndicatorRegistry[bollinger.Id] = bollinger.NewIndicator
	IndicatorRegistry[ema.Id] = ema.NewIndicator
	IndicatorRegistry[sma.Id] = sma.NewIndicator
	IndicatorRegistry[stochastics.Id] = stochastics.NewIndicator
}

func Create(id indapi.PluginId, properties map[string]string, colors []color.NRGBA) indapi.Indicator {
	d, ok := IndicatorRegistry[id]
	if !ok {
		panic("invalid indicator name")
	}
	ind := d()
	ind.SetProperties(properties)
	ind.SetColors(colors)
	return ind
}

func GetDefaultProperties(id indapi.PluginId) map[string]string {
	d, ok := IndicatorRegistry[id]
	if !ok {
		panic("invalid indicator name")
	}
	return d().GetProperties()
}

func GetList() indapi.PluginList {
	l := indapi.PluginList(maps.Keys(IndicatorRegistry))
	sort.Sort(l)
	return l
}
