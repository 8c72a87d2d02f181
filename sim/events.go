package sim

// EventKind identifies a discrete notification produced during a step.
// Events exist for cosmetic and diagnostic collaborators; the core never
// acts on its own events.
type EventKind int

const (
	// EventLanded fires when the character lands on a structure top or,
	// with Structure == GroundID, on the ground.
	EventLanded EventKind = iota
	// EventLeftStructure fires when an attachment is released, whether by
	// jumping off or drifting out of the maintain radius.
	EventLeftStructure
	EventJumped
	EventClimbStarted
	EventClimbFinished
	// EventRecovered fires when the stuck monitor (or the manual trigger)
	// relocates the character.
	EventRecovered
)

// GroundID marks events that refer to the ground plane rather than a
// registry structure.
const GroundID = -1

type Event struct {
	Kind      EventKind
	Structure int // registry ID, or GroundID
}

func (k EventKind) String() string {
	switch k {
	case EventLanded:
		return "landed"
	case EventLeftStructure:
		return "left-structure"
	case EventJumped:
		return "jumped"
	case EventClimbStarted:
		return "climb-started"
	case EventClimbFinished:
		return "climb-finished"
	case EventRecovered:
		return "recovered"
	}
	return "unknown"
}
