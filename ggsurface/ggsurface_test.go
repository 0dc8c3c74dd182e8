// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package ggsurface

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maycharts/render"
)

func TestPixelBufferSize(t *testing.T) {
	s := New(64, 32)

	buf := s.RGBAPixels()

	assert.Len(t, buf, 64*32*4)
}

func TestClearFillsBuffer(t *testing.T) {
	s := New(4, 4)

	s.Clear(color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	buf := s.RGBAPixels()

	require.Len(t, buf, 4*4*4)
	assert.Equal(t, uint8(255), buf[0])
	assert.Equal(t, uint8(255), buf[3])
}

func TestTextWithoutFontFails(t *testing.T) {
	s := New(64, 32)

	_, err := s.MeasureText("abc", render.FontSpec{SizePx: 12})
	assert.ErrorIs(t, err, ErrNoFont)

	_, err = s.DrawText("abc", render.Pt(0, 0), render.FontSpec{SizePx: 12}, color.NRGBA{A: 255})
	assert.ErrorIs(t, err, ErrNoFont)
}

func TestDrawLineChangesPixels(t *testing.T) {
	s := New(8, 8)
	s.Clear(color.NRGBA{A: 255})

	s.DrawLine(render.Pt(0, 4), render.Pt(8, 4), render.Paint{
		Color: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Width: 2,
		Style: render.StyleStroke,
	})
	buf := s.RGBAPixels()

	touched := false
	for i := 0; i < len(buf); i += 4 {
		if buf[i] != 0 {
			touched = true
			break
		}
	}
	assert.True(t, touched)
}

func TestSurfaceImplementsRenderSurface(t *testing.T) {
	var _ render.Surface = New(1, 1)
}
