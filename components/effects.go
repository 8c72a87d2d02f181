package components

import "github.com/yohamta/donburi"

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashMessageData is a transient HUD line ("Recovered", "Climbing...").
type FlashMessageData struct {
	Text   string
	Frames int // frames remaining, 0 = hidden
}

var FlashMessage = donburi.NewComponentType[FlashMessageData]()
