package sim

import (
	"github.com/automoto/highrise/gamemath"
)

// Structure is a static obstacle the character can collide with, land on,
// and (when climbable) scale via its anchor point. Structures are immutable
// after registry construction.
type Structure struct {
	ID              int
	Pos             gamemath.Vec3 // horizontal center, ground-anchored (Y is 0)
	Height          float64       // elevation of the top surface
	FootprintRadius float64
	Climbable       bool
	Anchor          gamemath.Vec3 // horizontal climb start point, typically offset from the side
}

// LandingHeight is the elevation the character stands at on this structure.
func (s *Structure) LandingHeight(p Params) float64 {
	return s.Height + p.LandingOffset
}

// Registry is the immutable set of structures for a session. Evaluation
// order matters: collision tie-breaks are resolved by registry order, so the
// order given to NewRegistry is part of observable behavior.
type Registry struct {
	structures []Structure
}

func NewRegistry(structures []Structure) *Registry {
	r := &Registry{structures: make([]Structure, len(structures))}
	copy(r.structures, structures)
	for i := range r.structures {
		r.structures[i].ID = i
	}
	return r
}

func (r *Registry) Len() int { return len(r.structures) }

// At returns the structure at registry index i. The pointer stays valid for
// the life of the registry.
func (r *Registry) At(i int) *Structure { return &r.structures[i] }

// Nearest returns the structure whose center is horizontally closest to pos
// within maxDist, or nil.
func (r *Registry) Nearest(pos gamemath.Vec3, maxDist float64) *Structure {
	var best *Structure
	bestDist := maxDist
	for i := range r.structures {
		s := &r.structures[i]
		d := gamemath.HorizDist(pos, s.Pos)
		if d <= bestDist {
			best = s
			bestDist = d
		}
	}
	return best
}

// NearestAnchor returns the climbable structure whose anchor is horizontally
// closest to pos within maxDist, or nil.
func (r *Registry) NearestAnchor(pos gamemath.Vec3, maxDist float64) *Structure {
	var best *Structure
	bestDist := maxDist
	for i := range r.structures {
		s := &r.structures[i]
		if !s.Climbable {
			continue
		}
		d := gamemath.HorizDist(pos, s.Anchor)
		if d <= bestDist {
			best = s
			bestDist = d
		}
	}
	return best
}
