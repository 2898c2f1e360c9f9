package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/museum-walk/internal/tour"
)

const (
	panelWidth  = 800
	panelHeight = 250
	// Stacked panels for overlapping zones step down and right.
	panelCascade = 28

	hudWidth  = 222
	hudHeight = 100
	hudMargin = 50
)

// DrawScene fills the window with the scene texture behind every panel.
func DrawScene(textureID uint32, w, h float32) {
	if textureID == 0 {
		return
	}

	imgui.SetNextWindowPos(imgui.NewVec2(0, 0))
	imgui.SetNextWindowSize(imgui.NewVec2(w, h))

	flags := imgui.WindowFlagsNoDecoration | imgui.WindowFlagsNoMove |
		imgui.WindowFlagsNoScrollWithMouse | imgui.WindowFlagsNoBringToFrontOnFocus |
		imgui.WindowFlagsNoInputs | imgui.WindowFlagsNoSavedSettings

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	if imgui.BeginV("##Scene", nil, flags) {
		texRef := imgui.NewTextureRefTextureID(imgui.TextureID(textureID))
		imgui.ImageV(*texRef,
			imgui.NewVec2(w, h),
			imgui.NewVec2(0, 1),
			imgui.NewVec2(1, 0))
	}
	imgui.End()
	imgui.PopStyleVar()
}

// PanelPosition centers a panel, offset by its position in the stack.
func PanelPosition(displayW, displayH float32, index int) (x, y float32) {
	x = (displayW-panelWidth)/2 + float32(index*panelCascade)
	y = (displayH-panelHeight)/2 + float32(index*panelCascade)
	return x, y
}

// DrawPanel draws one exhibit or welcome panel and reports whether the
// visitor closed it this frame.
func DrawPanel(p tour.Panel, index int, alpha float32, displayW, displayH float32) (closed bool) {
	x, y := PanelPosition(displayW, displayH, index)
	imgui.SetNextWindowPos(imgui.NewVec2(x, y))
	imgui.SetNextWindowSize(imgui.NewVec2(panelWidth, panelHeight))

	open := true
	var openPtr *bool
	if p.Dismissible {
		openPtr = &open
	}

	flags := imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse | imgui.WindowFlagsNoSavedSettings
	imgui.PushStyleVarFloat(imgui.StyleVarAlpha, alpha)
	// "###id" keeps the window identity stable if two zones share a title.
	if imgui.BeginV(p.Title+"###panel-"+p.ID, openPtr, flags) {
		for _, line := range p.Body {
			imgui.TextWrapped(line)
		}
	}
	imgui.End()
	imgui.PopStyleVar()

	return p.Dismissible && !open
}

// DrawHUD shows the eye position and active exhibits in the lower right.
func DrawHUD(eye mgl32.Vec3, active []string, displayW, displayH float32) {
	imgui.SetNextWindowPos(imgui.NewVec2(displayW-hudWidth-hudMargin, displayH-hudHeight-hudMargin))
	imgui.SetNextWindowSize(imgui.NewVec2(hudWidth, hudHeight))

	flags := imgui.WindowFlagsNoDecoration | imgui.WindowFlagsNoSavedSettings | imgui.WindowFlagsNoFocusOnAppearing
	if imgui.BeginV("##Position", nil, flags) {
		imgui.Text(fmt.Sprintf("x %8.3f", eye[0]))
		imgui.Text(fmt.Sprintf("y %8.3f", eye[1]))
		imgui.Text(fmt.Sprintf("z %8.3f", eye[2]))
		for _, title := range active {
			imgui.Text(title)
		}
	}
	imgui.End()
}

// DrawToast shows a short status line in the top-left corner.
func DrawToast(msg string) {
	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoFocusOnAppearing |
		imgui.WindowFlagsNoSavedSettings
	imgui.SetNextWindowPos(imgui.NewVec2(10, 10))
	imgui.SetNextWindowBgAlpha(0.85)
	if imgui.BeginV("##Toast", nil, flags) {
		imgui.Text(msg)
	}
	imgui.End()
}
