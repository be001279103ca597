package gfx

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"cityrain/internal/scene"
)

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		key    glfw.Key
		action glfw.Action
		want   scene.EventType
		ok     bool
	}{
		{glfw.KeyEscape, glfw.Press, scene.EventQuit, true},
		{glfw.KeyLeft, glfw.Press, scene.EventPanLeft, true},
		{glfw.KeyRight, glfw.Repeat, scene.EventPanRight, true},
		{glfw.KeyKPAdd, glfw.Press, scene.EventZoomIn, true},
		{glfw.KeyKPSubtract, glfw.Press, scene.EventZoomOut, true},
		{glfw.KeyLeft, glfw.Release, 0, false},
		{glfw.KeyR, glfw.Press, 0, false}, // printable keys come through the char callback
	}
	for _, tt := range tests {
		e, ok := keyEvent(tt.key, tt.action)
		if ok != tt.ok || (ok && e.Type != tt.want) {
			t.Errorf("keyEvent(%v, %v) = %v, %v; want %v, %v", tt.key, tt.action, e.Type, ok, tt.want, tt.ok)
		}
	}
}
