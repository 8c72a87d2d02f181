package systems

import (
	"math"
	"math/rand"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/highrise/components"
	cfg "github.com/automoto/highrise/config"
	"github.com/automoto/highrise/gamemath"
	"github.com/automoto/highrise/tags"
)

// UpdateZombies runs the two-state street AI: wander until the character is
// close and low enough to reach, then chase. Zombies never climb, so a
// character on a rooftop is safe.
func UpdateZombies(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	character := components.Character.Get(playerEntry)
	stats := components.Stats.Get(playerEntry)
	if stats.GameOver {
		return
	}
	playerPos := character.Sim.Character().Pos
	reg := character.Sim.Registry()
	bound := character.Sim.Params().WorldBound

	tags.Zombie.Each(e.World, func(entry *donburi.Entry) {
		zombie := components.Zombie.Get(entry)
		obj := components.Object.Get(entry)
		pos := gamemath.Vec3{X: obj.X + obj.W/2, Z: obj.Y + obj.H/2}

		reachable := playerPos.Y <= cfg.Zombie.ChaseMaxHeight
		inRange := gamemath.HorizDist(pos, playerPos) <= cfg.Zombie.ChaseRange
		if reachable && inRange {
			zombie.State = components.ZombieChase
		} else {
			zombie.State = components.ZombieWander
		}

		var step gamemath.Vec3
		switch zombie.State {
		case components.ZombieChase:
			to := playerPos.Sub(pos)
			to.Y = 0
			to = to.HorizNormalize()
			zombie.Heading = math.Atan2(to.Z, to.X)
			step = to.Scale(cfg.Zombie.ChaseSpeed * SimDT)
		case components.ZombieWander:
			zombie.TurnTimer -= SimDT
			if zombie.TurnTimer <= 0 {
				zombie.Heading = rand.Float64() * 2 * math.Pi
				zombie.TurnTimer = cfg.Zombie.WanderTurnTime * (0.5 + rand.Float64())
			}
			step = gamemath.Vec3{
				X: math.Cos(zombie.Heading),
				Z: math.Sin(zombie.Heading),
			}.Scale(cfg.Zombie.WanderSpeed * SimDT)
		}
		pos = pos.Add(step)

		// Keep zombies out of building footprints and inside the city.
		for i := 0; i < reg.Len(); i++ {
			st := reg.At(i)
			keep := st.FootprintRadius + cfg.Zombie.Radius
			if d := gamemath.HorizDist(pos, st.Pos); d < keep {
				out := pos.Sub(st.Pos).HorizNormalize()
				if out.HorizLen() == 0 {
					out = gamemath.Vec3{X: 1}
				}
				pos = st.Pos.Add(out.Scale(keep))
				// Wanderers bounce instead of grinding against the wall.
				if zombie.State == components.ZombieWander {
					zombie.TurnTimer = 0
				}
			}
		}
		pos.X = gamemath.Clamp(pos.X, -bound, bound)
		pos.Z = gamemath.Clamp(pos.Z, -bound, bound)

		obj.X = pos.X - obj.W/2
		obj.Y = pos.Z - obj.H/2
		obj.Update()

		// Contact damage, gated by invulnerability frames.
		touch := cfg.Zombie.Radius + cfg.Player.BodyRadius
		if reachable && character.InvulnFrames == 0 &&
			gamemath.HorizDist(pos, playerPos) <= touch {
			applyContactDamage(e, playerEntry)
		}
	})
}

func applyContactDamage(e *ecs.ECS, playerEntry *donburi.Entry) {
	character := components.Character.Get(playerEntry)
	health := components.Health.Get(playerEntry)

	health.Current -= cfg.Zombie.ContactDamage
	character.InvulnFrames = cfg.Zombie.TouchInvulnFrames
	TriggerScreenShake(e, cfg.Camera.RecoverIntensity, cfg.Camera.ShakeFrames/2)

	if health.Current <= 0 {
		health.Current = 0
		components.Stats.Get(playerEntry).GameOver = true
	}
}
