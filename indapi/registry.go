// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package indapi

import "sync"

// Registration holds one named plugin instance. Exactly one of
// Indicator and Overlay is set.
type Registration struct {
	Name      string
	Indicator Indicator
	Overlay   Overlay
	Enabled   bool
}

// Registry keeps plugin instances in registration order. Re-registering
// a name replaces the instance in place, keeping its position. Drawing
// walks the order front to back; events walk it back to front so the
// topmost overlay wins. The registry serializes access with its own
// lock, so registration is safe while a frame renders.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]*Registration
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Registration)}
}

func (r *Registry) put(name string, reg *Registration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[name]; !ok {
		r.order = append(r.order, name)
	}
	r.entries[name] = reg
}

func (r *Registry) AddIndicator(name string, ind Indicator) {
	r.put(name, &Registration{Name: name, Indicator: ind, Enabled: true})
}

func (r *Registry) AddOverlay(name string, ov Overlay) {
	r.put(name, &Registration{Name: name, Overlay: ov, Enabled: true})
}

func (r *Registry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[name]; !ok {
		return false
	}
	delete(r.entries, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

func (r *Registry) Get(name string) *Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries[name]
}

func (r *Registry) SetEnabled(name string, enabled bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.entries[name]
	if !ok {
		return false
	}
	reg.Enabled = enabled
	return true
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Indicators returns the enabled indicators in registration order.
func (r *Registry) Indicators() []*Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var regs []*Registration
	for _, name := range r.order {
		reg := r.entries[name]
		if reg.Enabled && reg.Indicator != nil {
			regs = append(regs, reg)
		}
	}
	return regs
}

// Overlays returns the enabled overlays in registration order.
func (r *Registry) Overlays() []*Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var regs []*Registration
	for _, name := range r.order {
		reg := r.entries[name]
		if reg.Enabled && reg.Overlay != nil {
			regs = append(regs, reg)
		}
	}
	return regs
}

// RouteEvent offers the event to enabled overlays, most recently
// registered first, and stops at the first consumer. Overlays are
// collected under the lock but dispatched outside of it, so a handler
// may modify the registry.
func (r *Registry) RouteEvent(ev Event, snap *ChartSnapshot) bool {
	regs := r.Overlays()
	for i := len(regs) - 1; i >= 0; i-- {
		if regs[i].Overlay.HandleEvent(ev, snap) {
			return true
		}
	}
	return false
}
