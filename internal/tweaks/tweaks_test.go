package tweaks

import (
	"testing"
	"time"

	"github.com/Faultbox/cube-tweaks/internal/config"
	"github.com/Faultbox/cube-tweaks/internal/controls"
	"github.com/Faultbox/cube-tweaks/internal/cube"
	"github.com/Faultbox/cube-tweaks/internal/geometry"
)

type countingBuffers struct {
	box      *geometry.Box
	released int
}

func (b *countingBuffers) Release() { b.released++ }

type countingUploader struct {
	uploads []*countingBuffers
}

func (u *countingUploader) Upload(box *geometry.Box) cube.Buffers {
	b := &countingBuffers{box: box}
	u.uploads = append(u.uploads, b)
	return b
}

func setup(t *testing.T, variant string) (*cube.Controller, *countingUploader, *controls.Folder, *Debug, config.CubeConfig) {
	t.Helper()
	cfg, err := config.ForVariant(variant)
	if err != nil {
		t.Fatalf("ForVariant: %v", err)
	}
	opts, err := Options(cfg.Cube)
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	up := &countingUploader{}
	c := cube.New(opts, up)
	panel := controls.NewPanel("Debug")
	folder := panel.AddFolder(FolderName)
	d := Register(folder, c, cfg.Cube)
	return c, up, folder, d, cfg.Cube
}

func TestOptions(t *testing.T) {
	cfg, _ := config.ForVariant(config.VariantExtended)
	opts, err := Options(cfg.Cube)
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if opts.Subdivision != 2 {
		t.Errorf("Subdivision = %d, want 2", opts.Subdivision)
	}
	if opts.Mode != cube.MaterialFlat {
		t.Errorf("Mode = %v, want flat", opts.Mode)
	}
	if opts.Color != [3]float32{0x88 / 255.0, 1, 0} {
		t.Errorf("Color = %v", opts.Color)
	}
	if opts.SnapDuration != 500*time.Millisecond {
		t.Errorf("SnapDuration = %v", opts.SnapDuration)
	}

	classic, _ := config.ForVariant(config.VariantClassic)
	opts, _ = Options(classic.Cube)
	if opts.Mode != cube.MaterialTextured {
		t.Errorf("classic Mode = %v, want textured", opts.Mode)
	}

	bad := cfg.Cube
	bad.Color = "green"
	if _, err := Options(bad); err == nil {
		t.Error("expected error for bad color")
	}
	bad = cfg.Cube
	bad.SnapEasing = "bounce.wobble"
	if _, err := Options(bad); err == nil {
		t.Error("expected error for unknown easing")
	}
}

func TestSubdivisionCommitRebuilds(t *testing.T) {
	c, up, folder, d, _ := setup(t, config.VariantClassic)

	sub := folder.Find("subdivision").(*controls.Int)
	for level := 4; level <= 9; level++ {
		sub.Set(level)
	}
	if len(up.uploads) != 1 {
		t.Fatalf("rebuilt during drag: %d uploads", len(up.uploads))
	}

	sub.Commit()

	if len(up.uploads) != 2 {
		t.Fatalf("uploads = %d, want 2", len(up.uploads))
	}
	if up.uploads[0].released != 1 {
		t.Errorf("old geometry released %d times, want 1", up.uploads[0].released)
	}
	if got := c.Geometry().Segments(); got != 9 {
		t.Errorf("segments = %d, want 9", got)
	}
	if d.Subdivision != 9 {
		t.Errorf("debug subdivision = %d, want 9", d.Subdivision)
	}
}

func TestSubdivisionClampedToVariant(t *testing.T) {
	c, _, folder, _, _ := setup(t, config.VariantClassic)
	sub := folder.Find("subdivision").(*controls.Int)

	sub.Set(20)
	sub.Commit()
	if got := c.Geometry().Segments(); got != 9 {
		t.Errorf("classic segments = %d, want 9", got)
	}

	c, _, folder, _, _ = setup(t, config.VariantExtended)
	sub = folder.Find("subdivision").(*controls.Int)
	sub.Set(20)
	sub.Commit()
	if got := c.Geometry().Segments(); got != 20 {
		t.Errorf("extended segments = %d, want 20", got)
	}
}

func TestElevationClamped(t *testing.T) {
	c, _, folder, _, _ := setup(t, config.VariantClassic)

	elev := folder.Find("Elevation").(*controls.Number)
	elev.Set(5)

	if got := c.State().Position[1]; got != 3 {
		t.Errorf("elevation = %v, want 3", got)
	}
}

func TestToggles(t *testing.T) {
	c, _, folder, _, _ := setup(t, config.VariantClassic)

	folder.Find("visible").(*controls.Bool).Set(false)
	folder.Find("wireframe").(*controls.Bool).Set(false)

	s := c.State()
	if s.Visible || s.Wireframe {
		t.Errorf("toggles not applied: %+v", s)
	}
}

func TestColorOnlyForFlat(t *testing.T) {
	_, _, folder, _, _ := setup(t, config.VariantClassic)
	if folder.Find("color") != nil {
		t.Error("textured variant should not expose color")
	}

	c, _, folder, d, _ := setup(t, config.VariantExtended)
	col, ok := folder.Find("color").(*controls.Color)
	if !ok {
		t.Fatal("flat variant should expose color")
	}
	col.Set([3]float32{1, 0, 0})
	if c.Material().Color != [3]float32{1, 0, 0} || d.Color != [3]float32{1, 0, 0} {
		t.Errorf("color preview not applied: material %v debug %v", c.Material().Color, d.Color)
	}
}

func TestRotateActions(t *testing.T) {
	c, _, folder, _, _ := setup(t, config.VariantClassic)

	for _, tt := range []struct {
		label string
		axis  cube.Axis
	}{
		{"rotateX", cube.AxisX},
		{"rotateY", cube.AxisY},
		{"rotateZ", cube.AxisZ},
	} {
		folder.Find(tt.label).(*controls.Action).Fire()
		if !c.Snapping(tt.axis) {
			t.Errorf("%s did not start a snap on %v", tt.label, tt.axis)
		}
	}
}

func TestStore(t *testing.T) {
	c, _, folder, d, cfg := setup(t, config.VariantExtended)

	sub := folder.Find("subdivision").(*controls.Int)
	sub.Set(7)
	sub.Commit()
	folder.Find("wireframe").(*controls.Bool).Set(false)
	folder.Find("color").(*controls.Color).Set([3]float32{1, 0, 0})

	Store(&cfg, c, d)

	if cfg.Subdivision != 7 || cfg.Wireframe {
		t.Errorf("stored %+v", cfg)
	}
	if cfg.Color != "#ff0000" {
		t.Errorf("stored color = %q, want #ff0000", cfg.Color)
	}
}
