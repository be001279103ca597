package gfx

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"cityrain/internal/scene"
)

// keyEvent maps the non-character keys. Printable keys arrive through the
// char callback instead so keyboard layouts are respected.
func keyEvent(key glfw.Key, action glfw.Action) (scene.Event, bool) {
	if action != glfw.Press && action != glfw.Repeat {
		return scene.Event{}, false
	}
	switch key {
	case glfw.KeyEscape:
		return scene.Event{Type: scene.EventQuit}, true
	case glfw.KeyLeft:
		return scene.ArrowEvent(-1)
	case glfw.KeyRight:
		return scene.ArrowEvent(1)
	case glfw.KeyKPAdd:
		return scene.Event{Type: scene.EventZoomIn}, true
	case glfw.KeyKPSubtract:
		return scene.Event{Type: scene.EventZoomOut}, true
	}
	return scene.Event{}, false
}

// bindInput routes window callbacks into the world's event queue and keeps
// the viewport in step with the window.
func (a *App) bindInput() {
	a.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if e, ok := keyEvent(key, action); ok {
			a.world.Push(e)
		}
	})
	a.window.SetCharCallback(func(_ *glfw.Window, char rune) {
		if e, ok := scene.KeyEvent(char); ok {
			a.world.Push(e)
		}
	})
	a.window.SetSizeCallback(func(_ *glfw.Window, w, h int) {
		a.world.Resize(w, h)
		a.logger.Debug("window resized", "width", w, "height", h)
	})
	a.window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		a.fbW, a.fbH = w, h
	})
}
