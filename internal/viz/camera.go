package viz

import (
	"math"

	"github.com/san-kum/rutherford/internal/physics"
)

// Camera projects world positions onto the 2D canvas plane.
type Camera struct {
	Distance   float64
	Near       float64
	RotX, RotY float64
	Zoom       float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 400, Near: 0.1, Zoom: 1.0}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.05, c.Zoom/1.2) }

// rotate applies the camera's axis rotations to a point.
func (c *Camera) rotate(x, y, z float64) (float64, float64, float64) {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	y, z = y*cx-z*sx, y*sx+z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	x, z = x*cy+z*sy, -x*sy+z*cy
	return x, y, z
}

// Project converts a world position to sub-pixel canvas coordinates.
// sw and sh are the canvas sub-pixel dimensions. The boolean reports
// whether the point lands inside the canvas.
func (c *Camera) Project(p physics.Vec3, sw, sh int) (int, int, bool) {
	x, y, z := c.rotate(float64(p.X), float64(p.Y), float64(p.Z))
	x, y, z = x*c.Zoom, y*c.Zoom, z*c.Zoom

	if z >= c.Distance-c.Near {
		return 0, 0, false
	}
	scale := c.Distance / (c.Distance - z)

	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	pScale := minDim / 500.0

	sx := int(x*scale*pScale) + sw/2
	sy := int(-y*scale*pScale) + sh/2
	return sx, sy, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}
