package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the ground-plane collision body. The resolv space is 2D: X
// maps to world X and Y to world Z, with elevation checked separately.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()
