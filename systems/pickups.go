package systems

import (
	"fmt"
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/highrise/components"
	cfg "github.com/automoto/highrise/config"
	"github.com/automoto/highrise/gamemath"
	"github.com/automoto/highrise/tags"
)

// UpdatePickups bobs medkits and collects them on contact. A pickup only
// collects when the character is at its elevation, so rooftop medkits
// require actually getting up there.
func UpdatePickups(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	character := components.Character.Get(playerEntry)
	health := components.Health.Get(playerEntry)
	playerPos := character.Sim.Character().Pos

	tags.Pickup.Each(e.World, func(entry *donburi.Entry) {
		pickup := components.Pickup.Get(entry)
		obj := components.Object.Get(entry)
		pos := gamemath.Vec3{X: obj.X + obj.W/2, Y: pickup.BaseY, Z: obj.Y + obj.H/2}

		// Advance the hover loop. The sequence runs one full bob cycle;
		// restart it when it completes.
		if pickup.Bob != nil {
			offset, _, done := pickup.Bob.Update(float32(SimDT))
			pickup.BobOffset = float64(offset)
			if done {
				pickup.Bob.Reset()
			}
		}

		if gamemath.HorizDist(pos, playerPos) > cfg.Pickup.Radius+cfg.Player.BodyRadius {
			return
		}
		if math.Abs(playerPos.Y-pickup.BaseY) > cfg.Pickup.HeightBand {
			return
		}

		health.Current += pickup.Heal
		if health.Current > health.Max {
			health.Current = health.Max
		}
		SetFlashMessage(playerEntry, fmt.Sprintf("Medkit +%d", pickup.Heal))

		if space, ok := components.Space.First(e.World); ok {
			components.Space.Get(space).Remove(obj.Object)
		}
		e.World.Remove(entry.Entity())
	})
}
