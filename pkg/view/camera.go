// Package view maps between screen coordinates (pixels, Y growing
// downward, origin at the viewport top-left) and scene coordinates
// (drawing units, Y growing upward). All kernel queries take scene
// coordinates; a UI converts pointer positions through a Camera first.
package view

import (
	"math"

	"github.com/draftlab/draftcad/pkg/geom"
)

// Zoom limits applied by ZoomAt.
const (
	minZoom = 0.1
	maxZoom = 1000.0
)

// Camera is a viewport onto the scene. The mapping is: the scene point
// Center appears at the viewport center, scaled by Zoom (pixels per scene
// unit) and rotated by RotationDeg.
type Camera struct {
	// Center is the scene point shown at the viewport center.
	Center geom.Point

	// Zoom is the scale in pixels per scene unit. Must be positive.
	Zoom float64

	// RotationDeg rotates the view counter-clockwise, in degrees.
	RotationDeg float64

	// Viewport dimensions in pixels.
	ViewportWidth  int
	ViewportHeight int
}

// NewCamera creates a camera at the scene origin with unit zoom.
func NewCamera(viewportWidth, viewportHeight int) *Camera {
	return &Camera{
		Zoom:           1.0,
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
	}
}

// ToScene converts a screen position to scene coordinates: translate
// relative to the viewport center, flip the vertical axis, rotate by the
// negated view rotation, divide by zoom, then add the camera center.
func (c *Camera) ToScene(screenX, screenY float64) geom.Point {
	x := screenX - float64(c.ViewportWidth)/2.0
	y := screenY - float64(c.ViewportHeight)/2.0

	// Screen Y grows downward, scene Y grows upward.
	y = -y

	x, y = rotate(x, y, -c.RotationDeg)

	x /= c.Zoom
	y /= c.Zoom

	return geom.Point{X: x + c.Center.X, Y: y + c.Center.Y}
}

// FromScene converts a scene point to screen coordinates. It is the exact
// inverse of ToScene: subtract the camera center, multiply by zoom, rotate
// by the view rotation, flip the vertical axis back and translate from
// viewport-center-relative to viewport-origin-relative.
func (c *Camera) FromScene(p geom.Point) (float64, float64) {
	x := p.X - c.Center.X
	y := p.Y - c.Center.Y

	x *= c.Zoom
	y *= c.Zoom

	x, y = rotate(x, y, c.RotationDeg)

	y = -y

	x += float64(c.ViewportWidth) / 2.0
	y += float64(c.ViewportHeight) / 2.0

	return x, y
}

// rotate applies a counter-clockwise rotation by degrees.
func rotate(x, y, degrees float64) (float64, float64) {
	if degrees == 0 {
		return x, y
	}
	rad := geom.DegToRad(degrees)
	cos := math.Cos(rad)
	sin := math.Sin(rad)
	return x*cos - y*sin, x*sin + y*cos
}

// Pan drags the view by a screen-pixel offset: the scene point under the
// pointer follows the pointer.
func (c *Camera) Pan(deltaX, deltaY float64) {
	from := c.ToScene(0, 0)
	to := c.ToScene(deltaX, deltaY)
	c.Center = c.Center.Add(from.Sub(to))
}

// ZoomAt scales the view about a screen position. factor > 1 zooms in.
// The scene point under (screenX, screenY) stays put.
func (c *Camera) ZoomAt(screenX, screenY, factor float64) {
	before := c.ToScene(screenX, screenY)

	c.Zoom *= factor
	if c.Zoom < minZoom {
		c.Zoom = minZoom
	}
	if c.Zoom > maxZoom {
		c.Zoom = maxZoom
	}

	after := c.ToScene(screenX, screenY)
	c.Center = c.Center.Add(before.Sub(after))
}

// Rotate adds to the view rotation, normalized to [0, 360).
func (c *Camera) Rotate(degrees float64) {
	c.RotationDeg = geom.NormalizeDeg(c.RotationDeg + degrees)
}

// Resize updates the viewport dimensions after a window resize.
func (c *Camera) Resize(width, height int) {
	c.ViewportWidth = width
	c.ViewportHeight = height
}

// Fit centers the camera on a bounding box and picks the zoom that shows
// all of it with 10% padding. Empty or degenerate boxes are ignored.
func (c *Camera) Fit(bbox geom.BoundingBox) {
	if bbox.IsEmpty() {
		return
	}
	width := bbox.Width()
	height := bbox.Height()
	if width <= 0 || height <= 0 {
		return
	}

	c.Center = bbox.Center()

	zoomX := float64(c.ViewportWidth) * 0.9 / width
	zoomY := float64(c.ViewportHeight) * 0.9 / height
	if zoomX < zoomY {
		c.Zoom = zoomX
	} else {
		c.Zoom = zoomY
	}
}

// VisibleCorners returns the four viewport corners in scene space, in
// screen order: top-left, top-right, bottom-right, bottom-left.
func (c *Camera) VisibleCorners() [4]geom.Point {
	w := float64(c.ViewportWidth)
	h := float64(c.ViewportHeight)
	return [4]geom.Point{
		c.ToScene(0, 0),
		c.ToScene(w, 0),
		c.ToScene(w, h),
		c.ToScene(0, h),
	}
}

// VisibleBounds returns the axis-aligned scene-space box covering the
// viewport. With rotation this is larger than the viewport itself; it is
// meant for culling, not clipping.
func (c *Camera) VisibleBounds() geom.BoundingBox {
	bb := geom.NewBoundingBox()
	for _, corner := range c.VisibleCorners() {
		bb.Expand(corner)
	}
	return bb
}
