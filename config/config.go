package config

import (
	"fmt"
	"os"

	"github.com/automoto/highrise/sim"
	"github.com/yohamta/donburi/ecs"
	"gopkg.in/yaml.v3"
)

// Default is the only render layer the game uses.
const Default ecs.LayerID = 0

// Config contains general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// CameraConfig contains camera follow and shake configuration
type CameraConfig struct {
	FollowSmoothing float64 // per-frame lerp toward the character
	YawSpeed        float64 // rad/s while a turn key is held
	Distance        float64 // world units behind the character
	PixelsPerUnit   float64 // world-to-screen scale for the overhead view

	// Screen shake
	LandShakeSpeed     float64 // minimum landing fall speed that shakes
	LandShakeIntensity float64
	ShakeFrames        int
	RecoverIntensity   float64
}

// ZombieConfig contains the ground-plane zombie behavior
type ZombieConfig struct {
	WanderSpeed       float64
	ChaseSpeed        float64
	ChaseRange        float64 // horizontal range at which a zombie locks on
	ChaseMaxHeight    float64 // character above this elevation is unreachable
	WanderTurnTime    float64 // seconds between wander direction rolls
	Radius            float64 // footprint radius for contact checks
	ContactDamage     int
	TouchInvulnFrames int // character invulnerability after a hit
}

// PickupConfig contains medkit pickup configuration
type PickupConfig struct {
	Radius      float64 // collection radius on the ground plane
	HealAmount  int
	HoverHeight float64 // gween bob amplitude, world units
	HoverPeriod float64 // seconds for a full bob cycle
	HeightBand  float64 // character must be within this of the pickup's elevation
}

// PlayerConfig contains non-locomotion character configuration; locomotion
// tuning lives in Tuning and feeds sim.Params.
type PlayerConfig struct {
	Health     int
	BodyRadius float64 // ground-plane footprint for contact checks
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	Margin          float64
	MessageFrames   int // how long event flash messages stay up
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu    bool
	DrawAnchors bool
}

var C *Config
var Camera CameraConfig
var Zombie ZombieConfig
var Pickup PickupConfig
var Player PlayerConfig
var HUD HUDConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "highrise",
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.12,
		YawSpeed:        2.2,
		Distance:        9,
		PixelsPerUnit:   9,

		LandShakeSpeed:     14.0,
		LandShakeIntensity: 5.0,
		ShakeFrames:        18,
		RecoverIntensity:   3.0,
	}

	Zombie = ZombieConfig{
		WanderSpeed:       1.2,
		ChaseSpeed:        2.6,
		ChaseRange:        14.0,
		ChaseMaxHeight:    1.5,
		WanderTurnTime:    2.5,
		Radius:            0.5,
		ContactDamage:     10,
		TouchInvulnFrames: 45,
	}

	Pickup = PickupConfig{
		Radius:      0.8,
		HealAmount:  25,
		HoverHeight: 0.25,
		HoverPeriod: 1.6,
		HeightBand:  1.5,
	}

	Player = PlayerConfig{
		Health:     100,
		BodyRadius: 0.45,
	}

	HUD = HUDConfig{
		HealthBarWidth:  180,
		HealthBarHeight: 12,
		Margin:          10,
		MessageFrames:   120,
	}
}

// Tuning mirrors sim.Params with yaml tags so locomotion constants can be
// overridden without a rebuild. Zero values mean "keep the default".
type Tuning struct {
	GroundSpeed    float64 `yaml:"groundSpeed"`
	AirSpeed       float64 `yaml:"airSpeed"`
	Gravity        float64 `yaml:"gravity"`
	JumpSpeed      float64 `yaml:"jumpSpeed"`
	MaxFallSpeed   float64 `yaml:"maxFallSpeed"`
	CoyoteTime     float64 `yaml:"coyoteTime"`
	JumpBufferTime float64 `yaml:"jumpBufferTime"`
	ClimbRate      float64 `yaml:"climbRate"`
	ClimbTimeout   float64 `yaml:"climbTimeout"`
	StuckPatience  float64 `yaml:"stuckPatience"`
	GracePeriod    float64 `yaml:"gracePeriod"`
	WorldBound     float64 `yaml:"worldBound"`
}

// TuningFile is the optional override file looked up next to the binary.
const TuningFile = "highrise.yaml"

// LoadParams returns the locomotion params: sim defaults overlaid with any
// values present in the tuning file. A missing file is not an error.
func LoadParams(path string) (sim.Params, error) {
	params := sim.DefaultParams()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return params, nil
		}
		return params, fmt.Errorf("read tuning %s: %w", path, err)
	}

	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return params, fmt.Errorf("parse tuning %s: %w", path, err)
	}

	overlay(&params.GroundSpeed, t.GroundSpeed)
	overlay(&params.AirSpeed, t.AirSpeed)
	overlay(&params.Gravity, t.Gravity)
	overlay(&params.JumpSpeed, t.JumpSpeed)
	overlay(&params.MaxFallSpeed, t.MaxFallSpeed)
	overlay(&params.CoyoteTime, t.CoyoteTime)
	overlay(&params.JumpBufferTime, t.JumpBufferTime)
	overlay(&params.ClimbRate, t.ClimbRate)
	overlay(&params.ClimbTimeout, t.ClimbTimeout)
	overlay(&params.StuckPatience, t.StuckPatience)
	overlay(&params.GracePeriod, t.GracePeriod)
	overlay(&params.WorldBound, t.WorldBound)
	return params, nil
}

func overlay(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}
