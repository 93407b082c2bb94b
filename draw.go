package qhull

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Rendering of 2-d results, used by the command line tool and for debugging.

// Padding around the drawing so hull edges don't touch the image border
const drawPadding = 20

// RenderPNG draws the result set of a 2-d computation: hull edges for plain
// hulls, filled triangles for Delaunay modes. Input points are drawn as
// white dots on top.
func (qh *Qh) RenderPNG(path string, scale float64) error {
	if qh.inputDim != 2 {
		return inputErrorf("rendering supports 2-d input only, got %d-d", qh.inputDim)
	}
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for i := 0; i < qh.NumPoints(); i++ {
		p := qh.InputPoint(i)
		minX = math.Min(minX, p[0])
		minY = math.Min(minY, p[1])
		maxX = math.Max(maxX, p[0])
		maxY = math.Max(maxY, p[1])
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for i, face := range qh.Simplices().Collect() {
		verts := face.Vertices().Collect()
		if len(verts) < 2 {
			continue
		}
		col := colorful.Hsv(float64(i*47%360), 0.6, 0.9)
		c.MoveTo(verts[0].Point()[0], verts[0].Point()[1])
		for _, v := range verts[1:] {
			c.LineTo(v.Point()[0], v.Point()[1])
		}
		if len(verts) > 2 {
			c.ClosePath()
			c.SetRGBA(col.R, col.G, col.B, 0.5)
			c.FillPreserve()
		}
		c.SetRGB(col.R, col.G, col.B)
		c.Stroke()
	}

	c.SetRGB(1, 1, 1)
	for i := 0; i < qh.NumPoints(); i++ {
		p := qh.InputPoint(i)
		c.DrawCircle(p[0], p[1], 2/scale)
		c.Fill()
	}
	return c.SavePNG(path)
}

// dbgDraw renders to a scratch file and prints it inline (iTerm only).
func (qh *Qh) dbgDraw(scale float64) {
	if err := qh.RenderPNG("/tmp/qhull.png", scale); err != nil {
		return
	}
	imgcat.CatFile("/tmp/qhull.png", os.Stdout)
}
