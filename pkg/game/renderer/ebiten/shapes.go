package ebiten

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// appendRoundedRect adds a rounded rectangle to the path. (x, y) is top-left; w, h are size; r is corner radius.
func appendRoundedRect(p *vector.Path, x, y, w, h, r float32) {
	appendRoundedRectDir(p, x, y, w, h, r, vector.Clockwise)
}

// appendRoundedRectDir adds a rounded rectangle with the given winding direction.
// CounterClockwise creates a hole when combined with an outer clockwise rect.
func appendRoundedRectDir(p *vector.Path, x, y, w, h, r float32, dir vector.Direction) {
	if r <= 0 {
		p.MoveTo(x, y)
		p.LineTo(x, y+h)
		p.LineTo(x+w, y+h)
		p.LineTo(x+w, y)
		p.Close()
		return
	}
	r = min(r, w/2, h/2)
	halfPi := float32(math.Pi / 2)
	pi := float32(math.Pi)
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, 3*halfPi, 0, dir)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, halfPi, dir)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, halfPi, pi, dir)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, pi, 3*halfPi, dir)
	p.Close()
}

// drawPanel draws a rounded panel with a soft shadow, fill and border
func drawPanel(screen *ebiten.Image, x, y, w, h float32, bgColor, borderColor color.Color) {
	const shadowSpread = 6

	var path vector.Path
	for i := shadowSpread; i >= 1; i-- {
		path.Reset()
		appendRoundedRect(&path, x-float32(i), y-float32(i), w+float32(i*2), h+float32(i*2), panelRadius+float32(i))
		appendRoundedRectDir(&path, x-float32(i-1), y-float32(i-1), w+float32((i-1)*2), h+float32((i-1)*2),
			panelRadius+float32(i-1), vector.CounterClockwise)
		op := &vector.DrawPathOptions{AntiAlias: true}
		op.ColorScale.ScaleWithColor(color.RGBA{8, 8, 16, uint8(min(12+i*8, 55))})
		vector.FillPath(screen, &path, nil, op)
	}

	path.Reset()
	appendRoundedRect(&path, x, y, w, h, panelRadius)
	fill := &vector.DrawPathOptions{AntiAlias: true}
	fill.ColorScale.ScaleWithColor(bgColor)
	vector.FillPath(screen, &path, nil, fill)

	stroke := &vector.DrawPathOptions{AntiAlias: true}
	stroke.ColorScale.ScaleWithColor(borderColor)
	vector.StrokePath(screen, &path, &vector.StrokeOptions{Width: 2, MiterLimit: 10}, stroke)
}

// drawCheck draws a tick mark centred on (cx, cy)
func drawCheck(screen *ebiten.Image, cx, cy, size float32, clr color.Color) {
	vector.StrokeLine(screen, cx-size/2, cy, cx-size/6, cy+size/3, 2, clr, true)
	vector.StrokeLine(screen, cx-size/6, cy+size/3, cx+size/2, cy-size/3, 2, clr, true)
}
