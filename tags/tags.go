package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Zombie = donburi.NewTag().SetName("Zombie")
	Pickup = donburi.NewTag().SetName("Pickup")
)

// Resolv tags for ground-plane collision
const (
	ResolvPlayer = "player"
	ResolvZombie = "zombie"
	ResolvPickup = "pickup"
)
