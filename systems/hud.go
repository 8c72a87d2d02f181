package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"

	"github.com/automoto/highrise/components"
	cfg "github.com/automoto/highrise/config"
	"github.com/automoto/highrise/fonts"
	"github.com/automoto/highrise/sim"
	"github.com/automoto/highrise/tags"
)

// DrawHUD renders the health bar, survival clock, climb prompt, and any
// transient message.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)
	character := components.Character.Get(playerEntry)
	stats := components.Stats.Get(playerEntry)

	margin := float32(cfg.HUD.Margin)
	barW := float32(cfg.HUD.HealthBarWidth)
	barH := float32(cfg.HUD.HealthBarHeight)

	// Health bar
	vector.DrawFilledRect(screen, margin, margin, barW, barH,
		color.RGBA{40, 40, 40, 255}, false)
	ratio := float32(hp.Current) / float32(hp.Max)
	barColor := color.RGBA{40, 220, 40, 255}
	if ratio < 0.3 {
		barColor = color.RGBA{220, 50, 40, 255}
	}
	vector.DrawFilledRect(screen, margin, margin, barW*ratio, barH, barColor, false)

	// Survival clock, top right
	drawText(screen, formatSurvival(stats.SurvivalFrames), fonts.Normal(),
		float64(screen.Bounds().Dx())-90, float64(margin), colornames.White)

	// Climb prompt when standing by a reachable anchor
	char := character.Sim.Character()
	if char.Mode != sim.ModeClimbing {
		if st := character.Sim.NearAnchor(); st != nil && char.Pos.Y < st.LandingHeight(character.Sim.Params()) {
			drawText(screen, "Hold E to climb", fonts.Small(),
				float64(screen.Bounds().Dx())/2-45, float64(screen.Bounds().Dy())-50, colornames.Goldenrod)
		}
	}

	// Transient message, centered
	msg := components.FlashMessage.Get(playerEntry)
	if msg.Frames > 0 {
		drawText(screen, msg.Text, fonts.Normal(),
			float64(screen.Bounds().Dx())/2-50, 60, colornames.Whitesmoke)
	}
}

func formatSurvival(frames int) string {
	seconds := frames / 60
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, s, face, op)
}
