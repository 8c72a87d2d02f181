package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PickupData is a medkit. Bob drives the hover animation around BaseY and
// loops forever; collection destroys the entity.
type PickupData struct {
	Heal      int
	BaseY     float64
	Bob       *gween.Sequence
	BobOffset float64 // current hover offset, written by the pickup system
}

var Pickup = donburi.NewComponentType[PickupData]()
