package sim

// Params holds every tuning constant the locomotion core uses. Values are
// world units and seconds; the core itself never reads a clock, so the same
// Params produce the same trajectories for any sequence of (Intent, dt).
type Params struct {
	// Movement
	GroundSpeed float64 // target horizontal speed on the ground
	AirSpeed    float64 // target horizontal speed while airborne
	GroundBlend float64 // exponential approach rate toward target velocity (1/s)
	AirControl  float64 // fraction of the air target added per second
	Friction    float64 // exponential decay rate with no move intent (1/s)

	// Jumping
	Gravity        float64
	JumpSpeed      float64
	MaxFallSpeed   float64
	CoyoteTime     float64 // jump still honored this long after leaving a surface
	JumpBufferTime float64 // early jump press honored this long before landing
	ExitCooldown   float64 // no re-landing on a structure this long after jumping off

	// Facing
	TurnRateGround float64 // rad/s
	TurnRateAir    float64

	// Structure landing
	LandingOffset    float64 // stand height above a structure's top surface
	LandMargin       float64 // added to footprint radius for a fresh landing
	MaintainMargin   float64 // added to footprint radius to keep an existing attachment
	LandBand         float64 // half-height of the landing band around the landing height
	JumpDetectMargin float64 // extra radius for rooftop-to-rooftop catches
	JumpDetectBand   float64 // extended half-height band for rooftop-to-rooftop catches
	SidePushDamp     float64 // multiplier on the inward velocity component after a side hit

	// Climbing
	AnchorRadius   float64 // climb eligibility distance from an anchor
	ClimbRate      float64 // vertical units/s while climbing
	ClimbTimeout   float64 // forced completion after this much climb time
	InteriorOffset float64 // placement distance inward from the anchor on completion

	// Stuck monitor
	StuckDistance    float64 // per-frame displacement under this counts as idle
	StuckPatience    float64 // idle seconds before the position is classified
	GracePeriod      float64 // monitor suppression after a climb or recovery
	HighAirHeight    float64 // unattached above this height while idle is problematic
	AttachTolerance  float64 // attached farther than this from the landing height is problematic
	GroundNearMargin float64 // "near a structure" distance used by the wedged check
	RecoverRadius    float64 // search radius for a structure to relocate onto
	RecoverTolerance float64 // current height must be this close to a candidate's landing height
	RecoverNudge     float64 // ground relocation offset away from nearby structures

	// Play area
	WorldBound float64 // |x| and |z| are clamped to this
}

// DefaultParams returns the tuning the game ships with.
func DefaultParams() Params {
	return Params{
		GroundSpeed: 8.0,
		AirSpeed:    5.5,
		GroundBlend: 10.0,
		AirControl:  2.5,
		Friction:    9.0,

		Gravity:        25.0,
		JumpSpeed:      9.0,
		MaxFallSpeed:   30.0,
		CoyoteTime:     0.1,
		JumpBufferTime: 0.1,
		ExitCooldown:   0.25,

		TurnRateGround: 12.0,
		TurnRateAir:    5.0,

		LandingOffset:    0.1,
		LandMargin:       0.3,
		MaintainMargin:   0.8,
		LandBand:         0.6,
		JumpDetectMargin: 1.5,
		JumpDetectBand:   1.2,
		SidePushDamp:     0.25,

		AnchorRadius:   1.6,
		ClimbRate:      3.0,
		ClimbTimeout:   10.0,
		InteriorOffset: 0.9,

		StuckDistance:    0.02,
		StuckPatience:    2.0,
		GracePeriod:      3.0,
		HighAirHeight:    2.5,
		AttachTolerance:  1.0,
		GroundNearMargin: 2.0,
		RecoverRadius:    12.0,
		RecoverTolerance: 2.5,
		RecoverNudge:     2.0,

		WorldBound: 60.0,
	}
}
