// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package render

// Batcher collects path segments per paint state and submits each group
// as a single DrawPath call, minimizing backend state changes. Paints
// are flushed in first-use order so draw order within a frame stays
// deterministic. Segment buffers are kept across frames; this may grow
// a lot, but considerably improves performance.
type Batcher struct {
	order []Paint
	paths map[Paint]*Path
}

func NewBatcher() *Batcher {
	return &Batcher{paths: make(map[Paint]*Path)}
}

func (b *Batcher) path(paint Paint) *Path {
	p, ok := b.paths[paint]
	if !ok {
		p = &Path{}
		b.paths[paint] = p
		b.order = append(b.order, paint)
	} else if len(p.Segments) == 0 && !b.inOrder(paint) {
		b.order = append(b.order, paint)
	}
	return p
}

func (b *Batcher) inOrder(paint Paint) bool {
	for _, p := range b.order {
		if p == paint {
			return true
		}
	}
	return false
}

// Add appends segments to the group of the given paint.
func (b *Batcher) Add(paint Paint, segments ...Segment) {
	p := b.path(paint)
	p.Segments = append(p.Segments, segments...)
}

// AddLine is a convenience for a two-segment move/line pair.
func (b *Batcher) AddLine(paint Paint, from, to Point) {
	b.Add(paint, MoveTo(from), LineTo(to))
}

// Flush submits all non-empty groups and resets the batcher, keeping
// buffer capacity for the next frame.
func (b *Batcher) Flush(s Surface) {
	for _, paint := range b.order {
		p := b.paths[paint]
		if len(p.Segments) == 0 {
			continue
		}
		s.DrawPath(*p, paint)
		p.Segments = p.Segments[:0]
	}
	b.order = b.order[:0]
}
