package cube

import (
	"math"
	"testing"
	"time"

	"github.com/Faultbox/cube-tweaks/internal/geometry"
	"github.com/Faultbox/cube-tweaks/internal/tween"
)

type fakeBuffers struct {
	box      *geometry.Box
	released int
}

func (b *fakeBuffers) Release() { b.released++ }

type fakeUploader struct {
	uploads []*fakeBuffers
}

func (u *fakeUploader) Upload(box *geometry.Box) Buffers {
	b := &fakeBuffers{box: box}
	u.uploads = append(u.uploads, b)
	return b
}

func newTestController(t *testing.T, mutate func(*Options)) (*Controller, *fakeUploader) {
	t.Helper()
	opts := DefaultOptions()
	if mutate != nil {
		mutate(&opts)
	}
	up := &fakeUploader{}
	return New(opts, up), up
}

const frame = 20 * time.Millisecond

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewUploadsOnce(t *testing.T) {
	c, up := newTestController(t, nil)

	if len(up.uploads) != 1 {
		t.Fatalf("uploads = %d, want 1", len(up.uploads))
	}
	if c.Buffers() != up.uploads[0] {
		t.Error("live buffers are not the uploaded ones")
	}
	if got := c.State().Subdivision; got != 3 {
		t.Errorf("Subdivision = %d, want 3", got)
	}
	if got := c.Geometry().Segments(); got != 3 {
		t.Errorf("Segments = %d, want 3", got)
	}
}

func TestRebuildReleasesOldOnce(t *testing.T) {
	c, up := newTestController(t, nil)

	c.Rebuild(5)
	c.Rebuild(9)

	if len(up.uploads) != 3 {
		t.Fatalf("uploads = %d, want 3", len(up.uploads))
	}
	for i, want := range []int{1, 1, 0} {
		if got := up.uploads[i].released; got != want {
			t.Errorf("uploads[%d].released = %d, want %d", i, got, want)
		}
	}
	live := c.Buffers().(*fakeBuffers)
	if live != up.uploads[2] {
		t.Fatal("live buffers should be the last upload")
	}
	if live.box != c.Geometry() {
		t.Error("live buffers do not hold the live geometry")
	}
	if got := c.State().Subdivision; got != 9 {
		t.Errorf("Subdivision = %d, want 9", got)
	}
}

func TestRebuildSameLevel(t *testing.T) {
	c, up := newTestController(t, nil)
	first := c.Geometry()

	c.Rebuild(3)

	if c.Geometry() == first {
		t.Error("rebuild at the same level should still replace the geometry")
	}
	if up.uploads[0].released != 1 {
		t.Errorf("old buffers released %d times, want 1", up.uploads[0].released)
	}
}

func TestRebuildKeepsTransformAndMaterial(t *testing.T) {
	c, _ := newTestController(t, nil)
	c.SetElevation(1.5)
	c.SetWireframe(false)
	c.SetColor([3]float32{1, 0, 0})
	c.Update(frame)
	before := c.State()

	c.Rebuild(7)

	after := c.State()
	if after.Position != before.Position || after.Rotation != before.Rotation {
		t.Errorf("transform changed across rebuild: %+v -> %+v", before, after)
	}
	if after.Color != before.Color || after.Wireframe != before.Wireframe {
		t.Errorf("material changed across rebuild: %+v -> %+v", before, after)
	}
}

func TestCloseReleasesLive(t *testing.T) {
	c, up := newTestController(t, nil)
	c.Rebuild(4)

	c.Close()
	c.Close()

	if up.uploads[1].released != 1 {
		t.Errorf("live buffers released %d times, want 1", up.uploads[1].released)
	}
	if up.uploads[0].released != 1 {
		t.Errorf("old buffers released %d times, want 1", up.uploads[0].released)
	}
}

func TestSpinAccumulates(t *testing.T) {
	c, _ := newTestController(t, nil)

	const n = 100
	for i := 0; i < n; i++ {
		c.Update(frame)
	}

	rot := c.State().Rotation
	want := n * 0.01
	if !approx(rot[0], want) || !approx(rot[1], want) {
		t.Errorf("rotation = %v, want X=Y=%v", rot, want)
	}
	if rot[2] != 0 {
		t.Errorf("Z rotation = %v, want 0", rot[2])
	}
}

func TestSpinIsNeverWrapped(t *testing.T) {
	c, _ := newTestController(t, func(o *Options) { o.SpinStep = 1 })

	for i := 0; i < 10; i++ {
		c.Update(frame)
	}

	if got := c.State().Rotation[0]; !approx(got, 10) {
		t.Errorf("X rotation = %v, want 10", got)
	}
}

func TestSnapRotateConverges(t *testing.T) {
	c, _ := newTestController(t, func(o *Options) { o.SpinStep = 0 })
	c.rotation[AxisY] = 0.3

	c.SnapRotate(AxisY)
	if !c.Snapping(AxisY) {
		t.Fatal("expected a snap in flight on Y")
	}

	start := 0.3
	prev := start
	for i := 0; i < 25; i++ {
		c.Update(frame)
		cur := c.State().Rotation[AxisY]
		if cur < prev {
			t.Fatalf("tick %d: rotation went backwards %v -> %v", i, prev, cur)
		}
		if i == 12 && !(cur > start && cur < start+FullTurn) {
			t.Errorf("mid-flight rotation %v not strictly inside (%v, %v)", cur, start, start+FullTurn)
		}
		prev = cur
	}

	if got := c.State().Rotation[AxisY]; !approx(got, start+FullTurn) {
		t.Errorf("rotation = %v, want %v", got, start+FullTurn)
	}
	if c.Snapping(AxisY) {
		t.Error("snap should be finished")
	}

	c.Update(frame)
	if got := c.State().Rotation[AxisY]; !approx(got, start+FullTurn) {
		t.Errorf("finished snap kept contributing: %v", got)
	}
}

func TestSnapRotateAddsToSpin(t *testing.T) {
	c, _ := newTestController(t, nil)

	c.SnapRotate(AxisY)
	for i := 0; i < 25; i++ {
		c.Update(frame)
	}

	rot := c.State().Rotation
	if want := 25*0.01 + FullTurn; !approx(rot[AxisY], want) {
		t.Errorf("Y = %v, want %v", rot[AxisY], want)
	}
	if want := 25 * 0.01; !approx(rot[AxisX], want) {
		t.Errorf("X = %v, want %v", rot[AxisX], want)
	}
}

func TestSnapRotateRetarget(t *testing.T) {
	c, _ := newTestController(t, func(o *Options) {
		o.SpinStep = 0
		o.SnapEasing = tween.Linear
	})

	c.SnapRotate(AxisY)
	for i := 0; i < 10; i++ {
		c.Update(frame)
	}
	mid := c.State().Rotation[AxisY]
	if !(mid > 0 && mid < FullTurn) {
		t.Fatalf("mid = %v, want inside (0, 2π)", mid)
	}

	c.SnapRotate(AxisY)
	for i := 0; i < 25; i++ {
		c.Update(frame)
	}

	if got := c.State().Rotation[AxisY]; !approx(got, mid+FullTurn) {
		t.Errorf("rotation = %v, want %v", got, mid+FullTurn)
	}
}

func TestSnapRotateIndependentAxes(t *testing.T) {
	c, _ := newTestController(t, func(o *Options) { o.SpinStep = 0 })

	c.SnapRotate(AxisX)
	c.SnapRotate(AxisZ)
	for i := 0; i < 30; i++ {
		c.Update(frame)
	}

	rot := c.State().Rotation
	if !approx(rot[AxisX], FullTurn) || !approx(rot[AxisZ], FullTurn) {
		t.Errorf("rotation = %v, want X=Z=2π", rot)
	}
	if rot[AxisY] != 0 {
		t.Errorf("Y = %v, want 0", rot[AxisY])
	}
}

func TestSnapRotateInvalidAxis(t *testing.T) {
	c, _ := newTestController(t, nil)
	c.SnapRotate(Axis(7))
	if c.Snapping(Axis(7)) {
		t.Error("invalid axis should be ignored")
	}
}

func TestAppearance(t *testing.T) {
	c, _ := newTestController(t, nil)

	c.SetWireframe(false)
	c.SetVisible(false)
	c.SetElevation(-2)
	c.SetColor([3]float32{0.1, 0.2, 0.3})

	s := c.State()
	if s.Wireframe || s.Visible || c.Visible() {
		t.Errorf("toggles not applied: %+v", s)
	}
	if s.Position[1] != -2 {
		t.Errorf("elevation = %v, want -2", s.Position[1])
	}
	if s.Color != [3]float32{0.1, 0.2, 0.3} {
		t.Errorf("color = %v", s.Color)
	}
	if got := c.Material().Tint(); got != s.Color {
		t.Errorf("flat tint = %v, want %v", got, s.Color)
	}
}

func TestTextureMode(t *testing.T) {
	c, _ := newTestController(t, nil)
	c.SetColor([3]float32{1, 0, 0})

	c.SetTexture(42)
	m := c.Material()
	if m.Mode != MaterialTextured || m.Texture != 42 {
		t.Fatalf("material = %+v", m)
	}
	if m.Tint() != [3]float32{1, 1, 1} {
		t.Errorf("textured tint = %v, want white", m.Tint())
	}
	if m.Color != [3]float32{1, 0, 0} {
		t.Errorf("stored color lost: %v", m.Color)
	}

	c.SetTexture(0)
	if c.Material().Mode != MaterialFlat {
		t.Error("zero handle should switch back to flat")
	}
}

func TestModelMatrixElevation(t *testing.T) {
	c, _ := newTestController(t, nil)
	c.SetElevation(2)

	m := c.ModelMatrix()
	if m[13] != 2 {
		t.Errorf("translation Y = %v, want 2", m[13])
	}
}

func TestAxisString(t *testing.T) {
	tests := []struct {
		axis Axis
		want string
	}{
		{AxisX, "x"},
		{AxisY, "y"},
		{AxisZ, "z"},
		{Axis(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.axis.String(); got != tt.want {
			t.Errorf("Axis(%d).String() = %q, want %q", tt.axis, got, tt.want)
		}
	}
}
