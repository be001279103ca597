package gfx

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"cityrain/internal/config"
)

const windowTitle = "cityrain"

func initWindow(width, height int) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)

	window, err := glfw.CreateWindow(width, height, windowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.SetSizeLimits(config.MinWidth, config.MinHeight, glfw.DontCare, glfw.DontCare)
	window.MakeContextCurrent()
	// The loop paces itself to the configured tick; vsync would fight it.
	glfw.SwapInterval(0)

	return window, nil
}
