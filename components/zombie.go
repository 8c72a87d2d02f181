package components

import "github.com/yohamta/donburi"

// ZombieState is the two-state street AI.
type ZombieState int

const (
	ZombieWander ZombieState = iota
	ZombieChase
)

type ZombieData struct {
	State     ZombieState
	Heading   float64 // wander direction, radians on the ground plane
	TurnTimer float64 // seconds until the next wander direction roll
}

var Zombie = donburi.NewComponentType[ZombieData]()
