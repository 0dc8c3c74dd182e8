// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartplot

import (
	"image/color"
	"math"

	"maycharts/chartval"
	"maycharts/downsample"
	"maycharts/indapi"
	"maycharts/render"
	"maycharts/scale"
)

// SetViewport recomputes the frame scales for a new output size without
// drawing. Pixel-space operations (zoom anchors, crosshair snapping)
// resolve against these scales until the next render.
func (c *Chart) SetViewport(widthPx, heightPx int, dpr float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.layoutLocked(float64(widthPx), float64(heightPx), dpr)
}

func (c *Chart) layoutLocked(w, h, dpr float64) {
	if dpr <= 0 {
		dpr = 1
	}
	left := c.cfg.Insets.Left * dpr
	top := c.cfg.Insets.Top * dpr
	right := w - c.cfg.Insets.Right*dpr
	bottom := h - c.cfg.Insets.Bottom*dpr
	if right <= left {
		right = left + 1
	}
	if bottom <= top {
		bottom = top + 1
	}
	fr := frameState{
		widthPx:  w,
		heightPx: h,
		dpr:      dpr,
		plotRect: render.Rect{
			Min: render.Pt(float32(left), float32(top)),
			Max: render.Pt(float32(right), float32(bottom)),
		},
		xScale:  scale.NewX(c.view.X, left, right, dpr),
		yScales: make(map[chartval.GroupId]scale.Scale),
	}
	groups := map[chartval.GroupId]bool{chartval.DefaultGroup: true}
	for g := range c.view.Y {
		groups[g] = true
	}
	for _, s := range c.orderedSeries() {
		groups[s.Group()] = true
	}
	for g := range groups {
		fr.yScales[g] = scale.NewY(c.view.Kind(g), c.view.YRange(g), top, bottom, dpr)
	}
	fr.valid = true
	c.frame = fr
}

// RenderOnto draws one complete frame on the given surface. The chart
// lock is held for the duration, so data mutations never tear a frame.
func (c *Chart) RenderOnto(s render.Surface, widthPx, heightPx int, dpr float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.layoutLocked(float64(widthPx), float64(heightPx), dpr)
	fr := &c.frame

	s.DrawRect(render.Rect{
		Min: render.Pt(0, 0),
		Max: render.Pt(float32(fr.widthPx), float32(fr.heightPx)),
	}, render.Paint{Color: c.theme.BackgroundColor, Style: render.StyleFill})

	c.drawGrid(s, fr)

	batch := c.batch
	for _, sr := range c.orderedSeries() {
		c.drawSeries(s, batch, fr, sr)
		for _, reg := range c.plugins.Indicators() {
			colors := indapi.GetNormalisedColors(reg.Indicator.GetColors(), c.theme.DefaultPluginColor)
			for i, derived := range reg.Indicator.Compute(sr) {
				lineColor := c.theme.DefaultPluginColor
				if i < len(colors) {
					lineColor = colors[i]
				}
				c.drawLinePoints(batch, fr, derived.Group(), derived.Points(), lineColor)
			}
		}
	}
	batch.Flush(s)

	dc := &indapi.DrawContext{
		Surface:      s,
		Batch:        batch,
		PlotRect:     fr.plotRect,
		XScale:       fr.xScale,
		YScales:      fr.yScales,
		Dpr:          fr.dpr,
		DefaultColor: c.theme.DefaultPluginColor,
		LabelSize:    int(float64(c.cfg.LabelSizePx) * fr.dpr),
		DrawLabels:   c.cfg.DrawLabels,
	}
	snap := c.snapshot()
	for _, reg := range c.plugins.Overlays() {
		reg.Overlay.Draw(dc, snap)
	}
	batch.Flush(s)

	c.drawCrosshair(s, fr)
	return nil
}

func (c *Chart) crisp(px float64) float64 {
	if c.cfg.CrispLines {
		return scale.AlignHalf(px)
	}
	return px
}

func (c *Chart) drawGrid(s render.Surface, fr *frameState) {
	plotW := float64(fr.plotRect.Width())
	plotH := float64(fr.plotRect.Height())
	numX := max(chartval.CalcNumSegments(int(plotW), 0, int(150*fr.dpr)), 2)
	numY := max(chartval.CalcNumSegments(int(plotH), 0, int(100*fr.dpr)), 2)

	gridPaint := render.Paint{Color: c.theme.GridColor, Width: float32(fr.dpr), Style: render.StyleStroke}
	axesPaint := render.Paint{Color: c.theme.AxesColor, Width: float32(fr.dpr), Style: render.StyleStroke}
	font := render.FontSpec{SizePx: int(float64(c.cfg.LabelSizePx) * fr.dpr)}
	yScale := fr.yScales[chartval.DefaultGroup]

	for i := 0; i <= numX; i++ {
		px := c.crisp(float64(fr.plotRect.Min.X) + float64(i)*plotW/float64(numX))
		s.DrawLine(
			render.Pt(float32(px), fr.plotRect.Min.Y),
			render.Pt(float32(px), fr.plotRect.Max.Y),
			gridPaint,
		)
		if c.cfg.DrawLabels {
			v := fr.xScale.ToData(px)
			text := chartval.FormatLabel(v, labelPrecision(fr.xScale.ToData(plotW/float64(numX))-fr.xScale.ToData(0)))
			size, err := s.MeasureText(text, font)
			if err != nil {
				continue
			}
			pos := render.Pt(float32(px)-size.Width/2, fr.plotRect.Max.Y+float32(7*fr.dpr))
			if _, err := s.DrawText(text, pos, font, c.theme.AxesTextColor); err != nil {
				continue
			}
		}
	}
	for i := 0; i <= numY; i++ {
		py := c.crisp(float64(fr.plotRect.Min.Y) + float64(i)*plotH/float64(numY))
		s.DrawLine(
			render.Pt(fr.plotRect.Min.X, float32(py)),
			render.Pt(fr.plotRect.Max.X, float32(py)),
			gridPaint,
		)
		if c.cfg.DrawLabels {
			v := yScale.ToData(py)
			step := math.Abs(yScale.ToData(plotH/float64(numY)) - yScale.ToData(0))
			text := chartval.FormatLabel(v, labelPrecision(step))
			size, err := s.MeasureText(text, font)
			if err != nil {
				continue
			}
			pos := render.Pt(fr.plotRect.Min.X-size.Width-float32(7*fr.dpr), float32(py)-size.Height/2)
			if _, err := s.DrawText(text, pos, font, c.theme.AxesTextColor); err != nil {
				continue
			}
		}
	}

	// Axis lines on top of the grid.
	leftX := float32(c.crisp(float64(fr.plotRect.Min.X)))
	bottomY := float32(c.crisp(float64(fr.plotRect.Max.Y)))
	s.DrawLine(render.Pt(leftX, fr.plotRect.Min.Y), render.Pt(leftX, fr.plotRect.Max.Y), axesPaint)
	s.DrawLine(render.Pt(fr.plotRect.Min.X, bottomY), render.Pt(fr.plotRect.Max.X, bottomY), axesPaint)
}

func labelPrecision(step float64) int {
	step = math.Abs(step)
	if step <= 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return 2
	}
	p := int(math.Ceil(-math.Log10(step)))
	if p < 0 {
		p = 0
	}
	if p > 8 {
		p = 8
	}
	return p
}

func (c *Chart) drawSeries(s render.Surface, batch *render.Batcher, fr *frameState, sr *chartval.Series) {
	switch sr.Type() {
	case chartval.SeriesCandlestick:
		c.drawCandles(batch, fr, sr, false)
	case chartval.SeriesBar:
		c.drawCandles(batch, fr, sr, true)
	case chartval.SeriesHistogram:
		c.drawHistogram(batch, fr, sr)
	case chartval.SeriesArea, chartval.SeriesBaseline:
		c.drawArea(batch, fr, sr)
	default:
		c.drawLinePoints(batch, fr, sr.Group(), c.visiblePoints(fr, sr), c.theme.LineColor)
	}
}

// visiblePoints returns the downsampled point window for the current
// frame, served from the cache when the series and view are unchanged.
func (c *Chart) visiblePoints(fr *frameState, sr *chartval.Series) []chartval.Point {
	key := downsample.Key{
		SeriesId:   sr.Id(),
		Version:    sr.Version(),
		Visible:    c.view.X,
		PixelWidth: int(fr.plotRect.Width()),
		Dpr:        fr.dpr,
	}
	if pts, ok := c.cache.Points(key); ok {
		return pts
	}
	lo, hi := sr.VisibleSlice(c.view.X)
	target := downsample.TargetSamples(float64(fr.plotRect.Width()), c.cfg.SamplesPerPixel)
	window := sr.Points()[lo:hi]
	var pts []chartval.Point
	if sr.Type() == chartval.SeriesHistogram {
		// Triangle-area selection is meaningless for isolated bars;
		// uniform stride keeps the columns evenly spaced.
		pts = downsample.Stride(window, target)
	} else {
		pts = downsample.LTTB(window, target)
	}
	c.cache.StorePoints(key, pts)
	return pts
}

func (c *Chart) visibleCandles(fr *frameState, sr *chartval.Series) []chartval.Candle {
	key := downsample.Key{
		SeriesId:   sr.Id(),
		Version:    sr.Version(),
		Visible:    c.view.X,
		PixelWidth: int(fr.plotRect.Width()),
		Dpr:        fr.dpr,
	}
	if cs, ok := c.cache.Candles(key); ok {
		return cs
	}
	lo, hi := sr.VisibleSlice(c.view.X)
	cs := downsample.BucketOHLC(sr.Candles()[lo:hi], fr.xScale.ToPixel)
	c.cache.StoreCandles(key, cs)
	return cs
}

func (c *Chart) drawLinePoints(batch *render.Batcher, fr *frameState, g chartval.GroupId, pts []chartval.Point, lineColor color.NRGBA) {
	if len(pts) < 2 {
		return
	}
	yScale := fr.yScales[g]
	paint := render.Paint{Color: lineColor, Width: float32(fr.dpr), Style: render.StyleStroke}
	segments := make([]render.Segment, 0, len(pts))
	var lastX, lastY float32
	for i, p := range pts {
		if math.IsNaN(p.Y) {
			continue
		}
		px := float32(fr.xScale.ToPixel(p.X))
		py := float32(yScale.ToPixel(p.Y))
		if i > 0 && px == lastX && py == lastY {
			continue
		}
		if len(segments) == 0 {
			segments = append(segments, render.MoveTo(render.Pt(px, py)))
		} else {
			segments = append(segments, render.LineTo(render.Pt(px, py)))
		}
		lastX, lastY = px, py
	}
	if len(segments) > 1 {
		batch.Add(paint, segments...)
	}
}

func (c *Chart) drawArea(batch *render.Batcher, fr *frameState, sr *chartval.Series) {
	pts := c.visiblePoints(fr, sr)
	if len(pts) < 2 {
		return
	}
	yScale := fr.yScales[sr.Group()]
	baseY := float64(fr.plotRect.Max.Y)
	strokeColor := c.theme.BaselineColor
	fillColor := c.theme.BaselineFillColor
	if sr.Type() == chartval.SeriesBaseline {
		baseY = yScale.ToPixel(sr.Baseline())
		baseY = math.Min(math.Max(baseY, float64(fr.plotRect.Min.Y)), float64(fr.plotRect.Max.Y))
	}

	fill := make([]render.Segment, 0, len(pts)+3)
	first := pts[0]
	fill = append(fill, render.MoveTo(render.Pt(float32(fr.xScale.ToPixel(first.X)), float32(baseY))))
	for _, p := range pts {
		fill = append(fill, render.LineTo(render.Pt(
			float32(fr.xScale.ToPixel(p.X)),
			float32(yScale.ToPixel(p.Y)),
		)))
	}
	last := pts[len(pts)-1]
	fill = append(fill, render.LineTo(render.Pt(float32(fr.xScale.ToPixel(last.X)), float32(baseY))))
	batch.Add(render.Paint{Color: fillColor, Style: render.StyleFill}, fill...)

	c.drawLinePoints(batch, fr, sr.Group(), pts, strokeColor)
}

func (c *Chart) drawHistogram(batch *render.Batcher, fr *frameState, sr *chartval.Series) {
	pts := c.visiblePoints(fr, sr)
	if len(pts) == 0 {
		return
	}
	yScale := fr.yScales[sr.Group()]
	baseY := math.Min(math.Max(yScale.ToPixel(0), float64(fr.plotRect.Min.Y)), float64(fr.plotRect.Max.Y))
	dx := 1.0
	if len(pts) > 1 {
		dx = pts[1].X - pts[0].X
	}
	barWidth, _, _ := getCandleWidth(fr.xScale.PixelsPerUnit()*dx, int(2*fr.dpr))
	paint := render.Paint{
		Color: c.theme.HistogramColor,
		Width: float32(barWidth),
		Style: render.StyleStroke,
		Cap:   render.FlatCap,
	}
	for _, p := range pts {
		px := float32(c.crisp(fr.xScale.ToPixel(p.X)))
		py := float32(yScale.ToPixel(p.Y))
		if float64(py) == baseY {
			// Keep zero entries visible as a single pixel notch.
			py = float32(baseY - float64(fr.dpr))
		}
		batch.AddLine(paint, render.Pt(px, float32(baseY)), render.Pt(px, py))
	}
}

// drawCandles renders OHLC data either as filled candles or as bars
// with open/close ticks. Candles are thick flat-cap segments so the
// whole frame stays within a handful of stroked batches.
func (c *Chart) drawCandles(batch *render.Batcher, fr *frameState, sr *chartval.Series, asBars bool) {
	cs := c.visibleCandles(fr, sr)
	if len(cs) == 0 {
		return
	}
	yScale := fr.yScales[sr.Group()]
	dx := 1.0
	if len(cs) > 1 {
		dx = cs[1].X - cs[0].X
	}
	candleWidth, lineWidth, _ := getCandleWidth(fr.xScale.PixelsPerUnit()*dx, int(2*fr.dpr))

	for _, cd := range cs {
		up := chartval.IsGreenCandle(cd.Open, cd.Close)
		candleColor := c.theme.CandleDownColor
		if up {
			candleColor = c.theme.CandleUpColor
		}
		px := float32(c.crisp(fr.xScale.ToPixel(cd.X)))
		highY := float32(yScale.ToPixel(cd.High))
		lowY := float32(yScale.ToPixel(cd.Low))
		openY := float32(yScale.ToPixel(cd.Open))
		closeY := float32(yScale.ToPixel(cd.Close))

		wickPaint := render.Paint{Color: candleColor, Width: float32(lineWidth), Style: render.StyleStroke}
		batch.AddLine(wickPaint, render.Pt(px, highY), render.Pt(px, lowY))

		if asBars {
			tickPaint := render.Paint{Color: candleColor, Width: float32(lineWidth), Style: render.StyleStroke, Cap: render.FlatCap}
			half := float32(candleWidth) / 2
			batch.AddLine(tickPaint, render.Pt(px-half, openY), render.Pt(px, openY))
			batch.AddLine(tickPaint, render.Pt(px, closeY), render.Pt(px+half, closeY))
			continue
		}
		if openY == closeY {
			// Doji; keep the body visible.
			closeY += float32(fr.dpr)
		}
		bodyPaint := render.Paint{Color: candleColor, Width: float32(candleWidth), Style: render.StyleStroke, Cap: render.FlatCap}
		batch.AddLine(bodyPaint, render.Pt(px, openY), render.Pt(px, closeY))
	}
}

func (c *Chart) drawCrosshair(s render.Surface, fr *frameState) {
	ch := c.view.Crosshair
	if ch == nil {
		return
	}
	if !fr.plotRect.ContainsXY(float32(ch.PixelX), float32(ch.PixelY)) {
		return
	}
	paint := render.Paint{
		Color: c.theme.CrosshairColor,
		Width: float32(fr.dpr),
		Style: render.StyleStroke,
		Dash:  [2]float32{float32(4 * fr.dpr), float32(4 * fr.dpr)},
	}
	px := float32(c.crisp(ch.PixelX))
	py := float32(c.crisp(ch.PixelY))
	s.DrawLine(render.Pt(px, fr.plotRect.Min.Y), render.Pt(px, fr.plotRect.Max.Y), paint)
	s.DrawLine(render.Pt(fr.plotRect.Min.X, py), render.Pt(fr.plotRect.Max.X, py), paint)

	if !c.cfg.DrawLabels {
		return
	}
	font := render.FontSpec{SizePx: int(float64(c.cfg.LabelSizePx) * fr.dpr)}
	yText := chartval.FormatPrice(ch.DataY)
	if size, err := s.MeasureText(yText, font); err == nil {
		pos := render.Pt(fr.plotRect.Min.X-size.Width-float32(7*fr.dpr), py-size.Height/2)
		_, _ = s.DrawText(yText, pos, font, c.theme.CrosshairColor)
	}
	xText := chartval.FormatLabel(ch.DataX, labelPrecision(c.view.X.Width()/10))
	if size, err := s.MeasureText(xText, font); err == nil {
		pos := render.Pt(px-size.Width/2, fr.plotRect.Max.Y+float32(7*fr.dpr))
		_, _ = s.DrawText(xText, pos, font, c.theme.CrosshairColor)
	}
}
