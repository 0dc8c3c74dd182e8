// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package indapi

import "maycharts/chartval"

type EventKind int

const (
	PointerPress EventKind = iota
	PointerRelease
	PointerMove
	PointerScroll
	KeyPress
)

// Event is delivered to overlays in world coordinates; the pixel
// position is included for hit testing against drawn geometry.
type Event struct {
	Kind   EventKind
	X      float64
	Y      float64
	PixelX float64
	PixelY float64
	Group  chartval.GroupId
	// Scroll is positive for zoom-in steps.
	Scroll float64
	Key    string
}
