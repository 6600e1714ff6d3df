// Package camera provides the orbit camera used to inspect the cube.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/cube-tweaks/pkg/math"
)

const maxPitch = math32.Pi/2 - 0.01

// OrbitCamera orbits a target point. Drags accumulate into a pending
// rotation that Update bleeds off by Damping each frame, so motion eases
// out after the mouse is released.
type OrbitCamera struct {
	Target math.Vec3

	Distance  float32
	RotationX float32 // Pitch, radians
	RotationY float32 // Yaw, radians

	MinDistance float32
	MaxDistance float32

	// Damping is the fraction of the pending rotation applied per Update.
	// Zero applies drags immediately.
	Damping float32

	DragSensitivity float32
	ZoomSensitivity float32

	FOV    float32 // Vertical, degrees
	Aspect float32
	Near   float32
	Far    float32

	pendingX float32
	pendingY float32
}

// NewOrbitCamera creates a camera distance units in front of the origin on +Z.
func NewOrbitCamera(distance float32) *OrbitCamera {
	return &OrbitCamera{
		Distance:        distance,
		MinDistance:     0.5,
		MaxDistance:     50,
		Damping:         0.05,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		FOV:             75,
		Aspect:          1,
		Near:            0.1,
		Far:             1000,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	sx, cx := math32.Sincos(c.RotationX)
	sy, cy := math32.Sincos(c.RotationY)

	return c.Target.Add(math.Vec3{
		X: c.Distance * cx * sy,
		Y: c.Distance * sx,
		Z: c.Distance * cx * cy,
	})
}

// ViewMatrix returns the world-to-camera transform.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Target, math.Vec3{Y: 1})
}

// ProjectionMatrix returns the perspective projection.
func (c *OrbitCamera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.FOV*math32.Pi/180, c.Aspect, c.Near, c.Far)
}

// SetAspect updates the projection aspect ratio. Non-positive values are ignored.
func (c *OrbitCamera) SetAspect(aspect float32) {
	if aspect > 0 {
		c.Aspect = aspect
	}
}

// HandleDrag queues a rotation from a mouse drag delta in pixels.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.pendingY -= deltaX * c.DragSensitivity
	c.pendingX += deltaY * c.DragSensitivity
	if c.Damping <= 0 {
		c.apply(1)
	}
}

// HandleZoom scales the distance by a scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// Update applies the damped share of the pending rotation. Call once per frame.
func (c *OrbitCamera) Update() {
	if c.Damping <= 0 {
		return
	}
	c.apply(c.Damping)
}

func (c *OrbitCamera) apply(factor float32) {
	c.RotationY += c.pendingY * factor
	c.RotationX += c.pendingX * factor
	c.pendingY *= 1 - factor
	c.pendingX *= 1 - factor

	if c.RotationX > maxPitch {
		c.RotationX = maxPitch
		c.pendingX = 0
	}
	if c.RotationX < -maxPitch {
		c.RotationX = -maxPitch
		c.pendingX = 0
	}
}

// Moving reports whether a damped rotation is still settling.
func (c *OrbitCamera) Moving() bool {
	const eps = 1e-5
	return math32.Abs(c.pendingX) > eps || math32.Abs(c.pendingY) > eps
}
