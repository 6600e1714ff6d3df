package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// SceneInput is the mouse input gathered over the scene view this frame.
type SceneInput struct {
	DragX, DragY float32
	Wheel        float32
}

// SceneView presents a rendered texture as the full-viewport background.
type SceneView struct {
	lastMouse imgui.Vec2
}

// Draw shows texture behind all other windows and returns the mouse input
// aimed at it.
func (v *SceneView) Draw(texture uint32) SceneInput {
	var in SceneInput

	x, y, w, h := Viewport()
	imgui.SetNextWindowPos(imgui.NewVec2(x, y))
	imgui.SetNextWindowSize(imgui.NewVec2(w, h))
	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoMove |
		imgui.WindowFlagsNoCollapse | imgui.WindowFlagsNoScrollbar | imgui.WindowFlagsNoScrollWithMouse |
		imgui.WindowFlagsNoBringToFrontOnFocus | imgui.WindowFlagsNoSavedSettings

	if imgui.BeginV("##scene", nil, flags) {
		tex := imgui.NewTextureRefTextureID(imgui.TextureID(texture))
		imgui.ImageWithBgV(
			*tex,
			imgui.NewVec2(w, h),
			imgui.NewVec2(0, 1), // GL textures are bottom-up
			imgui.NewVec2(1, 0),
			imgui.NewVec4(0, 0, 0, 1),
			imgui.NewVec4(1, 1, 1, 1),
		)

		hovered := imgui.IsItemHovered()
		in.DragX, in.DragY = v.track(imgui.MousePos(), hovered && imgui.IsMouseDragging(imgui.MouseButtonLeft))
		if hovered {
			in.Wheel = imgui.CurrentIO().MouseWheel()
		}
	}
	imgui.End()
	imgui.PopStyleVar()

	return in
}

// track records the cursor for this frame and returns its movement since the
// previous one when dragging. The cursor is recorded whether or not the view
// is hovered, so a drag never includes travel made over other windows.
func (v *SceneView) track(mouse imgui.Vec2, dragging bool) (dx, dy float32) {
	if dragging {
		dx, dy = mouse.X-v.lastMouse.X, mouse.Y-v.lastMouse.Y
	}
	v.lastMouse = mouse
	return dx, dy
}
