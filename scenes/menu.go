package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/highrise/ui"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the title menu
type MenuScene struct {
	menuUI       *ui.MenuUI
	sceneChanger SceneChanger
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menuUI.UI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.menuUI = ui.NewMenuUI(
		func() {
			ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger))
		},
		func() {
			os.Exit(0)
		},
	)
	ms.menuUI.Refresh()
}
