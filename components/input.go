package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/highrise/config"
)

// InputData stores the current and previous frame's pressed state for all
// actions plus the merged analog move axes. JustPressed is computed on demand
// by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	// Analog left-stick axes, -1..1. Zero when playing on keyboard; the
	// digital move actions are folded in by the input system.
	MoveX float64
	MoveZ float64
}

var Input = donburi.NewComponentType[InputData]()

// Pressed reports whether the action is held this frame.
func (d *InputData) Pressed(a cfg.ActionID) bool {
	return d.Current[a]
}

// JustPressed reports whether the action went down this frame.
func (d *InputData) JustPressed(a cfg.ActionID) bool {
	return d.Current[a] && !d.Previous[a]
}
