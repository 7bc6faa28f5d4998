package output

import (
	"image"

	"github.com/fogleman/gg"
)

const markerRadius = 6

// MarkPixel returns a copy of img with a crosshair centered on (x, y)
func MarkPixel(img image.Image, x, y int) image.Image {
	dc := gg.NewContextForImage(img)
	cx := float64(x) + 0.5
	cy := float64(y) + 0.5

	dc.SetRGB(1, 0, 1)
	dc.SetLineWidth(1)
	dc.DrawLine(cx-markerRadius, cy, cx-2, cy)
	dc.DrawLine(cx+2, cy, cx+markerRadius, cy)
	dc.DrawLine(cx, cy-markerRadius, cx, cy-2)
	dc.DrawLine(cx, cy+2, cx, cy+markerRadius)
	dc.Stroke()

	dc.DrawCircle(cx, cy, markerRadius)
	dc.Stroke()

	return dc.Image()
}
