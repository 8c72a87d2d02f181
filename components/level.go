package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/highrise/levels"
)

type LevelData struct {
	Current *levels.Level
}

var Level = donburi.NewComponentType[LevelData]()
