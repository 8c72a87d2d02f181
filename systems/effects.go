package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/highrise/components"
	cfg "github.com/automoto/highrise/config"
)

// UpdateEffects ticks down transient HUD messages.
func UpdateEffects(e *ecs.ECS) {
	components.FlashMessage.Each(e.World, func(entry *donburi.Entry) {
		msg := components.FlashMessage.Get(entry)
		if msg.Frames > 0 {
			msg.Frames--
		}
	})
}

// SetFlashMessage replaces the entity's HUD message and restarts its timer.
func SetFlashMessage(entry *donburi.Entry, text string) {
	if !entry.HasComponent(components.FlashMessage) {
		return
	}
	msg := components.FlashMessage.Get(entry)
	msg.Text = text
	msg.Frames = cfg.HUD.MessageFrames
}
