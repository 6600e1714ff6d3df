package ui

import (
	"fmt"
	"math"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/cube-tweaks/internal/controls"
)

const panelWidth = 280

// DrawPanel renders a controls panel in the top-right corner. Slider edits
// preview through Set and commit once the widget is released.
func DrawPanel(p *controls.Panel, status string) {
	if p.Hidden {
		return
	}

	x, y, w, _ := Viewport()
	imgui.SetNextWindowPos(imgui.NewVec2(x+w-panelWidth-10, y+10))
	imgui.SetNextWindowSize(imgui.NewVec2(panelWidth, 0))
	imgui.SetNextWindowBgAlpha(0.85)

	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse |
		imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoSavedSettings

	if imgui.BeginV(p.Title, nil, flags) {
		for _, f := range p.Folders {
			drawFolder(f)
		}
		if status != "" {
			imgui.Separator()
			imgui.TextDisabled(status)
		}
	}
	imgui.End()
}

func drawFolder(f *controls.Folder) {
	imgui.SetNextItemOpenV(f.Open, imgui.CondAlways)
	f.Open = imgui.TreeNodeExStrV(f.Name, imgui.TreeNodeFlagsNone)
	if !f.Open {
		return
	}
	for _, c := range f.Controls {
		drawControl(c)
	}
	imgui.TreePop()
}

func drawControl(c controls.Control) {
	switch c := c.(type) {
	case *controls.Number:
		v := float32(c.Value())
		lo, hi := c.Range()
		label := c.Label()
		imgui.Text(label)
		imgui.SetNextItemWidth(-1)
		var changed bool
		if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
			changed = imgui.DragFloatV("##"+label, &v, 0.01, 0, 0, c.Format(), imgui.SliderFlagsNone)
		} else {
			changed = imgui.SliderFloatV("##"+label, &v, float32(lo), float32(hi), c.Format(), imgui.SliderFlagsNone)
		}
		if changed {
			c.Set(float64(v))
		}
		if imgui.IsItemDeactivatedAfterEdit() {
			c.Commit()
		}

	case *controls.Int:
		v := int32(c.Value())
		lo, hi := c.Range()
		label := c.Label()
		imgui.Text(label)
		imgui.SetNextItemWidth(-1)
		if imgui.SliderIntV("##"+label, &v, clampInt32(lo), clampInt32(hi), "%d", imgui.SliderFlagsNone) {
			c.Set(int(v))
		}
		if imgui.IsItemDeactivatedAfterEdit() {
			c.Commit()
		}

	case *controls.Bool:
		v := c.Value()
		if imgui.Checkbox(c.Label(), &v) {
			c.Set(v)
		}

	case *controls.Color:
		v := c.Value()
		if imgui.ColorEdit3(c.Label(), &v) {
			c.Set(v)
		}
		if imgui.IsItemDeactivatedAfterEdit() {
			c.Commit()
		}

	case *controls.Action:
		if imgui.ButtonV(c.Label(), imgui.NewVec2(-1, 0)) {
			c.Fire()
		}

	default:
		imgui.TextDisabled(fmt.Sprintf("%s (%s)", c.Label(), c.Kind()))
	}
}

func clampInt32(v int) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}
