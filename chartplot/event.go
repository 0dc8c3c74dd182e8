// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartplot

import (
	"maycharts/chartval"
	"maycharts/indapi"
	"maycharts/render"
)

// HostEvent is the embedder-facing input event, positioned in device
// pixels. Scroll is positive for zoom-in steps.
type HostEvent struct {
	Kind   indapi.EventKind
	X      float64
	Y      float64
	Scroll float64
	Key    string
}

// HandleEvent converts the event into data coordinates, offers it to
// the enabled overlays (topmost first), and falls back to the built-in
// pan/zoom/crosshair behavior when no overlay consumes it. It reports
// whether anything reacted.
func (c *Chart) HandleEvent(ev HostEvent) bool {
	c.mu.Lock()
	if !c.frame.valid && ev.Kind != indapi.KeyPress {
		c.mu.Unlock()
		return false
	}
	pev := indapi.Event{
		Kind:   ev.Kind,
		PixelX: ev.X,
		PixelY: ev.Y,
		Group:  chartval.DefaultGroup,
		Scroll: ev.Scroll,
		Key:    ev.Key,
	}
	if c.frame.valid {
		pev.X = c.frame.xScale.ToData(ev.X)
		if ys, ok := c.frame.yScales[chartval.DefaultGroup]; ok {
			pev.Y = ys.ToData(ev.Y)
		}
	}
	if c.plugins.RouteEvent(pev, c.snapshot()) {
		c.mu.Unlock()
		return true
	}
	c.mu.Unlock()

	switch ev.Kind {
	case indapi.PointerPress:
		c.mu.Lock()
		c.view.Dragging = true
		c.lastPtr = render.Pt(float32(ev.X), float32(ev.Y))
		cb := c.callbacks.OnClick
		c.mu.Unlock()
		if cb != nil {
			cb(pev.X, pev.Y, pev.Group)
		}
		return true
	case indapi.PointerRelease:
		c.mu.Lock()
		c.view.Dragging = false
		c.mu.Unlock()
		return true
	case indapi.PointerMove:
		c.mu.Lock()
		dragging := c.view.Dragging
		last := c.lastPtr
		c.lastPtr = render.Pt(float32(ev.X), float32(ev.Y))
		c.mu.Unlock()
		if dragging {
			c.PanByPixels(ev.X-float64(last.X), ev.Y-float64(last.Y))
		}
		c.SetCrosshairPixel(ev.X, ev.Y)
		return true
	case indapi.PointerScroll:
		if ev.Scroll != 0 {
			c.ZoomAt(ev.X, ev.Scroll)
			return true
		}
		return false
	case indapi.KeyPress:
		return c.handleKey(ev.Key)
	}
	return false
}

func (c *Chart) handleKey(key string) bool {
	switch key {
	case "+":
		c.zoomCenter(1)
	case "-":
		c.zoomCenter(-1)
	case "Left":
		c.panFraction(-0.25)
	case "Right":
		c.panFraction(0.25)
	case "Home":
		c.AutoscaleFull()
	default:
		return false
	}
	return true
}

func (c *Chart) zoomCenter(steps float64) {
	c.mu.RLock()
	px := (float64(c.frame.plotRect.Min.X) + float64(c.frame.plotRect.Max.X)) / 2
	valid := c.frame.valid
	c.mu.RUnlock()
	if !valid {
		px = 0
	}
	c.ZoomAt(px, steps)
}

func (c *Chart) panFraction(frac float64) {
	c.mu.RLock()
	plotW := float64(c.frame.plotRect.Width())
	valid := c.frame.valid
	c.mu.RUnlock()
	if !valid {
		plotW = 1
	}
	c.PanByPixels(-frac*plotW, 0)
}
