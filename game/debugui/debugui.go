// Package debugui draws Dear ImGui inspection windows for a running session
// on top of an Ebiten game.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImguiItem is anything that renders ImGui widgets once per frame.
type ImguiItem interface {
	Render()
}

// ImguiFunc adapts a plain function to ImguiItem.
type ImguiFunc func()

func (f ImguiFunc) Render() { f() }

// Overlay owns the ImGui backend and the windows drawn through it. The
// backend creates the Ebiten window, so build the overlay before calling
// ebiten.RunGame.
type Overlay struct {
	backend *ebitenbackend.EbitenBackend
	items   []ImguiItem
}

// NewOverlay creates the ImGui backend and its window.
func NewOverlay(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Overlay{backend: backend}
}

// Add registers windows to draw every frame, in order.
func (o *Overlay) Add(items ...ImguiItem) {
	o.items = append(o.items, items...)
}

// Update builds this frame's ImGui draw lists. Call it from the game's Update.
func (o *Overlay) Update() {
	o.backend.BeginFrame()
	for _, item := range o.items {
		item.Render()
	}
	o.backend.EndFrame()
}

// Draw renders the overlay on top of screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

// Layout forwards the window size to the backend.
func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.backend.Layout(outsideWidth, outsideHeight)
}

// WantCaptureKeyboard reports whether an ImGui widget has keyboard focus, in
// which case game input should be ignored.
func (o *Overlay) WantCaptureKeyboard() bool {
	return imgui.CurrentIO().WantCaptureKeyboard()
}
