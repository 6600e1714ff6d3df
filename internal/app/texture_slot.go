package app

import (
	"image"
	"image/color"

	"github.com/Faultbox/cube-tweaks/internal/config"
	"github.com/Faultbox/cube-tweaks/internal/cube"
	"github.com/Faultbox/cube-tweaks/internal/engine/texture"
)

// textureStore uploads and frees GPU textures.
type textureStore interface {
	UploadTexture(img *image.RGBA) uint32
	DeleteTexture(id uint32)
}

// textureSlot owns the cube texture and keeps the cube config section in
// step with the material on screen.
type textureSlot struct {
	gpu  textureStore
	cube *cube.Controller
	cfg  *config.CubeConfig
	id   uint32
}

func newTextureSlot(gpu textureStore, c *cube.Controller, cfg *config.CubeConfig) *textureSlot {
	return &textureSlot{gpu: gpu, cube: c, cfg: cfg}
}

// load decodes path and makes it the cube texture. On error the material
// and the current texture are left untouched.
func (s *textureSlot) load(path string) error {
	img, err := texture.Load(path)
	if err != nil {
		return err
	}
	s.swap(img)
	s.cfg.Texture = path
	s.cfg.Material = config.MaterialTextured
	return nil
}

// loadOrChecker is load for the configured startup texture: a file that
// cannot be read is replaced by a checkerboard. The error is still returned.
func (s *textureSlot) loadOrChecker(path string) error {
	err := s.load(path)
	if err != nil {
		s.swap(texture.Checker(256, 8, color.RGBA{0x88, 0xff, 0x00, 0xff}, color.RGBA{0x22, 0x22, 0x22, 0xff}))
	}
	return err
}

// clear drops the texture and returns the cube to its flat color.
func (s *textureSlot) clear() {
	s.cube.SetTexture(0)
	s.release()
	s.cfg.Material = config.MaterialFlat
}

func (s *textureSlot) active() bool {
	return s.id != 0
}

func (s *textureSlot) swap(img *image.RGBA) {
	old := s.id
	s.id = s.gpu.UploadTexture(img)
	s.cube.SetTexture(s.id)
	s.gpu.DeleteTexture(old)
}

func (s *textureSlot) release() {
	s.gpu.DeleteTexture(s.id)
	s.id = 0
}
