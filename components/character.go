package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/highrise/sim"
)

// CharacterData wraps the locomotion core for the player entity. Everything
// about movement, climbing, and recovery lives inside Sim; the ECS side only
// feeds it intent and reads position back out.
type CharacterData struct {
	Sim *sim.Sim

	// InvulnFrames counts down after a zombie touch so contact damage does
	// not reapply every frame.
	InvulnFrames int
}

var Character = donburi.NewComponentType[CharacterData]()
