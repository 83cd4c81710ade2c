package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// drawPolyline strokes an open path through the given points.
func drawPolyline(screen *ebiten.Image, xp, yp []float32, strokeWidth float32, clr color.RGBA) {
	if len(xp) < 2 {
		return
	}

	var path vector.Path
	path.MoveTo(xp[0], yp[0])
	for i := 1; i < len(xp); i++ {
		path.LineTo(xp[i], yp[i])
	}

	strokeOp := &vector.StrokeOptions{
		Width:    strokeWidth,
		LineJoin: vector.LineJoinRound,
	}
	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, strokeOp)

	cr := float32(clr.R) / 255.0
	cg := float32(clr.G) / 255.0
	cb := float32(clr.B) / 255.0
	ca := float32(clr.A) / 255.0

	// SrcX/SrcY of 1 sample the solid pixel of whiteSub.
	for i := range vertices {
		vertices[i].ColorR = cr
		vertices[i].ColorG = cg
		vertices[i].ColorB = cb
		vertices[i].ColorA = ca
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
	}

	screen.DrawTriangles(vertices, indices, whiteSub, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// panel is a horizontal strip of the window that plots one series.
type panel struct {
	top, height float32
	label       string
	clr         color.RGBA
}

// plot scales values into the panel: index across the full width, value
// from -limit (bottom) to +limit (top).
func (p panel) plot(screen *ebiten.Image, values []float32, limit float32) {
	if len(values) < 2 || limit <= 0 {
		return
	}
	width := float32(screenWidth)
	mid := p.top + p.height/2

	xp := make([]float32, len(values))
	yp := make([]float32, len(values))
	for i, v := range values {
		xp[i] = width * float32(i) / float32(len(values)-1)
		yp[i] = mid - (p.height/2-4)*v/limit
	}

	axis := color.RGBA{R: 80, G: 80, B: 80, A: 255}
	vector.StrokeLine(screen, 0, mid, width, mid, 1, axis, false)
	vector.StrokeLine(screen, 0, p.top+p.height, width, p.top+p.height, 1, axis, false)
	drawPolyline(screen, xp, yp, 1.5, p.clr)
}
