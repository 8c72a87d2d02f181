package components

import "github.com/yohamta/donburi"

// StatsData tracks the run being played.
type StatsData struct {
	SurvivalFrames int
	GameOver       bool
}

var Stats = donburi.NewComponentType[StatsData]()
