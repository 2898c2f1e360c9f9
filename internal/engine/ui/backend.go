// Package ui draws the walkthrough's imgui layer: the scene backdrop,
// exhibit panels and the position readout.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Backend wraps the imgui SDL backend, which owns the window, the GL
// context and the event pump.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
}

// NewBackend opens the window and loads GL function pointers.
func NewBackend(title string, width, height int, fps int, bg [3]float32) (*Backend, error) {
	b := &Backend{}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetAfterCreateContextHook(func() {
		imgui.StyleColorsDark()
		imgui.CurrentIO().SetIniFilename("")
	})
	b.backend.SetBgColor(imgui.NewVec4(bg[0], bg[1], bg[2], 1.0))
	b.backend.CreateWindow(title, width, height)
	if fps > 0 {
		b.backend.SetTargetFPS(uint(fps))
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}
	return b, nil
}

// Run blocks in the backend loop, calling frame once per rendered frame.
func (b *Backend) Run(frame func()) {
	b.backend.Run(frame)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// ViewportSize returns the drawable size in device pixels.
func ViewportSize() (width, height int) {
	io := imgui.CurrentIO()
	size := io.DisplaySize()
	scale := io.DisplayFramebufferScale()
	return int(size.X * scale.X), int(size.Y * scale.Y)
}

// DisplaySize returns the window size in imgui units.
func DisplaySize() (width, height float32) {
	size := imgui.CurrentIO().DisplaySize()
	return size.X, size.Y
}
