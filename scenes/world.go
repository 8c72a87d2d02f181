package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/highrise/components"
	cfg "github.com/automoto/highrise/config"
	"github.com/automoto/highrise/sim"
	"github.com/automoto/highrise/systems"
	"github.com/automoto/highrise/systems/factory"
	"github.com/automoto/highrise/tags"
)

// WorldScene runs a survival round in the city.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	params       sim.Params
	once         sync.Once
}

// NewWorldScene creates a new round with the tuning file applied.
func NewWorldScene(sc SceneChanger) *WorldScene {
	params, err := cfg.LoadParams(cfg.TuningFile)
	if err != nil {
		log.Printf("tuning file ignored: %v", err)
	}
	return &WorldScene{sceneChanger: sc, params: params}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if playerEntry, ok := tags.Player.First(ws.ecs.World); ok {
		stats := components.Stats.Get(playerEntry)
		if stats.GameOver {
			ws.sceneChanger.ChangeScene(NewGameOverScene(ws.sceneChanger, stats.SurvivalFrames))
		}
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Input first, then the locomotion step, then everything that reads the
	// stepped position.
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSimulation)
	e.AddSystem(systems.UpdateZombies)
	e.AddSystem(systems.UpdatePickups)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	ws.ecs = e

	_, level := factory.CreateLevel(e)
	factory.CreateSpace(e, level.Bound)
	factory.CreateCamera(e, level.Spawn)
	factory.CreatePlayer(e, level, ws.params)
	for _, pos := range level.Zombies {
		factory.CreateZombie(e, pos)
	}
	for _, spawn := range level.Pickups {
		factory.CreatePickup(e, spawn)
	}

	log.Printf("round started: %s, %d structures, %d zombies",
		level.Name, len(level.Structures), len(level.Zombies))
}
