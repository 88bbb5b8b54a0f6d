package main

import "wondermap/common"

// Camera tracks a world-space top-left corner, easing toward its target and
// clamped to the active map's pixel bounds.
type Camera struct {
	X float64
	Y float64

	screenW int
	screenH int
	worldW  float64
	worldH  float64
	smooth  float64
}

func NewCamera(screenW, screenH int) *Camera {
	return &Camera{screenW: screenW, screenH: screenH, smooth: 0.15}
}

// SetWorldBounds updates the pixel dimensions the camera is confined to;
// call it whenever the active map changes.
func (c *Camera) SetWorldBounds(w, h int) {
	c.worldW = float64(w)
	c.worldH = float64(h)
	c.clamp()
}

// Follow eases the camera toward centering the target on screen.
func (c *Camera) Follow(targetX, targetY float64) {
	c.X = common.Lerp(c.X, targetX-float64(c.screenW)/2, c.smooth)
	c.Y = common.Lerp(c.Y, targetY-float64(c.screenH)/2, c.smooth)
	c.clamp()
}

func (c *Camera) clamp() {
	maxX := c.worldW - float64(c.screenW)
	maxY := c.worldH - float64(c.screenH)
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	if c.X < 0 {
		c.X = 0
	}
	if c.X > maxX {
		c.X = maxX
	}
	if c.Y < 0 {
		c.Y = 0
	}
	if c.Y > maxY {
		c.Y = maxY
	}
}
