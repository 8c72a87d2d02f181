package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/colornames"

	"github.com/automoto/highrise/fonts"
	"github.com/automoto/highrise/systems"
)

// GameOverScene shows the run result and offers a restart.
type GameOverScene struct {
	sceneChanger   SceneChanger
	survivalFrames int
	newRecord      bool
	fade           *gween.Tween
	alpha          float32
	once           sync.Once
}

func NewGameOverScene(sc SceneChanger, survivalFrames int) *GameOverScene {
	return &GameOverScene{
		sceneChanger:   sc,
		survivalFrames: survivalFrames,
		fade:           gween.New(0, 1, 0.8, ease.OutQuad),
	}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(func() {
		gs.newRecord = systems.SaveBestRun(gs.survivalFrames)
	})

	gs.alpha, _ = gs.fade.Update(1.0 / 60)

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		gs.sceneChanger.ChangeScene(NewWorldScene(gs.sceneChanger))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger))
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())
	seconds := gs.survivalFrames / 60

	gs.drawLine(screen, "YOU WERE OVERRUN", fonts.Title(), w/2-130, h/2-70, colornames.Crimson)
	gs.drawLine(screen, fmt.Sprintf("survived %02d:%02d", seconds/60, seconds%60),
		fonts.Normal(), w/2-50, h/2-20, colornames.White)
	if gs.newRecord {
		gs.drawLine(screen, "new record!", fonts.Normal(), w/2-40, h/2+6, colornames.Goldenrod)
	}
	gs.drawLine(screen, "Enter to retry, Esc for menu", fonts.Small(), w/2-75, h/2+50, colornames.Gray)
}

func (gs *GameOverScene) drawLine(screen *ebiten.Image, s string, face text.Face, x, y float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	op.ColorScale.ScaleAlpha(gs.alpha)
	text.Draw(screen, s, face, op)
}
