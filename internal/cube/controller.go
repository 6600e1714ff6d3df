// Package cube implements the reconfigurable box mesh controller: one
// procedural cube whose geometry can be rebuilt at a new subdivision level,
// whose appearance can be tweaked live, and which spins every frame with
// optional eased full-turn snap rotations layered on top.
//
// The controller is single-threaded and driven by the render loop: every
// method must be called from the thread that calls Update.
package cube

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cube-tweaks/internal/geometry"
	"github.com/Faultbox/cube-tweaks/internal/logger"
	"github.com/Faultbox/cube-tweaks/internal/tween"
	gmath "github.com/Faultbox/cube-tweaks/pkg/math"
)

// Axis selects a rotation axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "unknown"
}

// FullTurn is the angle covered by one snap rotation.
const FullTurn = 2 * math.Pi

// Buffers is a GPU-resident copy of a geometry. Release frees it.
type Buffers interface {
	Release()
}

// Uploader turns CPU geometry into GPU buffers.
type Uploader interface {
	Upload(box *geometry.Box) Buffers
}

// Options configures a Controller.
type Options struct {
	Subdivision int
	Size        float32 // Edge length, 1 for a unit cube
	Color       [3]float32
	Wireframe   bool
	Visible     bool
	Mode        MaterialMode

	SpinStep     float64 // Radians added to X and Y per Update
	SnapDuration time.Duration
	SnapEasing   tween.Easing
}

// DefaultOptions returns the unit cube defaults: subdivision 3, wireframe on,
// flat #88ff00, 0.01 rad spin and a 0.5s ease-out snap.
func DefaultOptions() Options {
	return Options{
		Subdivision:  3,
		Size:         1,
		Color:        [3]float32{0x88 / 255.0, 1, 0},
		Wireframe:    true,
		Visible:      true,
		Mode:         MaterialFlat,
		SpinStep:     0.01,
		SnapDuration: 500 * time.Millisecond,
		SnapEasing:   tween.OutQuad,
	}
}

// State is a snapshot of the mutable mesh state.
type State struct {
	Subdivision int
	Color       [3]float32
	Wireframe   bool
	Visible     bool
	Position    [3]float64
	Rotation    [3]float64 // Euler XYZ, unbounded
}

// Controller owns the cube's geometry, material and transform.
type Controller struct {
	opts     Options
	uploader Uploader
	log      *zap.Logger

	box      *geometry.Box
	buffers  Buffers
	material Material

	subdivision int
	visible     bool
	position    [3]float64
	rotation    [3]float64

	snaps [3]*tween.Tween
}

// New creates a controller and uploads the initial geometry.
func New(opts Options, uploader Uploader) *Controller {
	if opts.Size <= 0 {
		opts.Size = 1
	}
	if opts.SnapEasing == nil {
		opts.SnapEasing = tween.OutQuad
	}

	c := &Controller{
		opts:     opts,
		uploader: uploader,
		log:      logger.Named("cube"),
		material: Material{
			Mode:      opts.Mode,
			Color:     opts.Color,
			Wireframe: opts.Wireframe,
		},
		visible: opts.Visible,
	}

	c.box = c.build(opts.Subdivision)
	c.buffers = uploader.Upload(c.box)
	c.subdivision = c.box.Segments()

	c.log.Debug("cube created",
		zap.Int("subdivision", c.subdivision),
		zap.Int("vertices", c.box.VertexCount()),
		zap.Stringer("material", c.material.Mode),
	)
	return c
}

func (c *Controller) build(level int) *geometry.Box {
	s := c.opts.Size
	return geometry.NewBox(s, s, s, level)
}

// Rebuild replaces the geometry with one subdivided level times along each
// axis. The new buffers are live before the old ones are released, and the
// old ones are released exactly once. The level is trusted; bounds are the
// caller's concern.
func (c *Controller) Rebuild(level int) {
	box := c.build(level)
	buffers := c.uploader.Upload(box)

	old := c.buffers
	c.box = box
	c.buffers = buffers
	c.subdivision = box.Segments()

	if old != nil {
		old.Release()
	}

	c.log.Debug("geometry rebuilt",
		zap.Int("subdivision", c.subdivision),
		zap.Int("vertices", box.VertexCount()),
		zap.Int("triangles", box.TriangleCount()),
	)
}

// SetWireframe toggles wireframe drawing.
func (c *Controller) SetWireframe(on bool) {
	c.material.Wireframe = on
}

// SetVisible toggles whether the cube is drawn.
func (c *Controller) SetVisible(on bool) {
	c.visible = on
}

// SetElevation sets the vertical position.
func (c *Controller) SetElevation(y float64) {
	c.position[1] = y
}

// SetColor sets the flat material color.
func (c *Controller) SetColor(rgb [3]float32) {
	c.material.Color = rgb
}

// SetTexture switches the material to sample the given texture.
// A zero handle switches back to flat color.
func (c *Controller) SetTexture(handle uint32) {
	c.material.Texture = handle
	if handle == 0 {
		c.material.Mode = MaterialFlat
	} else {
		c.material.Mode = MaterialTextured
	}
}

// SnapRotate starts a full turn on axis from the current rotation. A snap
// already running on the same axis is replaced; the new target is always the
// rotation at call time plus 2π.
func (c *Controller) SnapRotate(axis Axis) {
	if axis < AxisX || axis > AxisZ {
		return
	}

	c.snaps[axis] = tween.New(FullTurn, c.opts.SnapDuration, c.opts.SnapEasing)

	c.log.Debug("snap rotation",
		zap.Stringer("axis", axis),
		zap.Float64("from", c.rotation[axis]),
		zap.Float64("to", c.rotation[axis]+FullTurn),
	)
}

// Snapping reports whether a snap rotation is in flight on axis.
func (c *Controller) Snapping(axis Axis) bool {
	return axis >= AxisX && axis <= AxisZ && c.snaps[axis] != nil
}

// Update advances one frame: the constant spin on X and Y plus whatever the
// in-flight snaps contribute for dt. Both are added to the same accumulators.
func (c *Controller) Update(dt time.Duration) {
	c.rotation[AxisX] += c.opts.SpinStep
	c.rotation[AxisY] += c.opts.SpinStep

	for axis, snap := range c.snaps {
		if snap == nil {
			continue
		}
		step, done := snap.Advance(dt)
		c.rotation[axis] += step
		if done {
			c.snaps[axis] = nil
		}
	}
}

// ModelMatrix returns translation * rotation for the current transform.
func (c *Controller) ModelMatrix() gmath.Mat4 {
	return gmath.Compose(
		gmath.Vec3{X: float32(c.position[0]), Y: float32(c.position[1]), Z: float32(c.position[2])},
		gmath.Vec3{X: float32(c.rotation[0]), Y: float32(c.rotation[1]), Z: float32(c.rotation[2])},
	)
}

// State returns a snapshot of the mesh state.
func (c *Controller) State() State {
	return State{
		Subdivision: c.subdivision,
		Color:       c.material.Color,
		Wireframe:   c.material.Wireframe,
		Visible:     c.visible,
		Position:    c.position,
		Rotation:    c.rotation,
	}
}

// Geometry returns the live CPU geometry.
func (c *Controller) Geometry() *geometry.Box {
	return c.box
}

// Buffers returns the live GPU buffers.
func (c *Controller) Buffers() Buffers {
	return c.buffers
}

// Material returns the current material.
func (c *Controller) Material() Material {
	return c.material
}

// Visible reports whether the cube should be drawn this frame.
func (c *Controller) Visible() bool {
	return c.visible
}

// Close releases the live buffers.
func (c *Controller) Close() {
	if c.buffers != nil {
		c.buffers.Release()
		c.buffers = nil
	}
}
