// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package overlays

import (
	"sort"

	"golang.org/x/exp/maps"

	"maycharts/indapi"
	"maycharts/indapi/overlays/guideline"
	"maycharts/indapi/overlays/priceline"
)

var OverlayRegistry map[indapi.PluginId]func() indapi.Overlay = make(map[indapi.PluginId]func() indapi.Overlay)

func init() {
	OverlayRegistry[guideline.Id] = guideline.NewOverlay
	OverlayRegistry[priceline.Id] = priceline.NewOverlay
}

func Create(id indapi.PluginId, properties map[string]string) indapi.Overlay {
	d, ok := OverlayRegistry[id]
	if !ok {
		panic("invalid overlay name")
	}
	ov := d()
	ov.SetProperties(properties)
	return ov
}

func GetList() indapi.PluginList {
	l := indapi.PluginList(maps.Keys(OverlayRegistry))
	sort.Sort(l)
	return l
}
