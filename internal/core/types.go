package core

import "time"

// Size describes the pixel dimensions of a scene's output frame.
type Size struct {
	W int
	H int
}

// Scene defines the minimal contract an interactive scene must implement.
// Advance is called with wall-clock elapsed time; scenes that run a fixed-
// rate simulation accumulate it internally. Frame writes the current view
// as RGBA into a buffer of Size().W * Size().H * 4 bytes.
type Scene interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Advance(dt time.Duration)
	Frame(buf []byte)
}

// Factory constructs a Scene using an optional configuration map.
type Factory func(cfg map[string]string) Scene

var scenes = map[string]Factory{}

// Register adds a scene factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	scenes[name] = f
}

// Scenes exposes the registry of available scene factories.
func Scenes() map[string]Factory {
	return scenes
}
