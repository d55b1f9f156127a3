package config

import (
	"image/color"
	"time"

	"github.com/automoto/tilecollide/collision"
)

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	// Global physics
	Gravity      float64
	MaxFallSpeed float64
	MaxRiseSpeed float64

	// Ground movement, scaled by the friction of the tile underfoot
	Friction    float64
	AirFriction float64

	// Bounce tiles only rebound landings faster than this
	BounceMinSpeed float64

	// Ladders
	ClimbSpeed float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	JumpSpeed    float64
	Acceleration float64
	MaxSpeed     float64

	Health       int
	InvulnFrames int

	CollisionWidth  float64
	CollisionHeight float64
}

// WalkerConfig configures patrolling NPC bodies.
type WalkerConfig struct {
	CollisionWidth  float64
	CollisionHeight float64
	MaxSpeed        float64
	Acceleration    float64
	LegSeconds      float32 // tween duration of one patrol leg
	Health          int
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	Draw        bool // draw collision boxes and contacts
	ShowChunks  bool // draw the tile index chunk grid
	LogContacts bool // log contact changes of the player
}

// ViewerConfig contains window and level selection options
type ViewerConfig struct {
	Width  int
	Height int
	Scale  float64
	TPS    int
	Level  string
	Layer  string
}

// Global configuration instances
var Collision collision.Config
var Physics PhysicsConfig
var Player PlayerConfig
var Walker WalkerConfig
var Debug DebugConfig
var Viewer ViewerConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Gray         = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	Reset()
}

// Reset restores every global to its built-in default and drops tile
// overrides loaded from a file.
func Reset() {
	Collision = collision.DefaultConfig()
	tileOverrides = nil

	// Physics Config
	Physics = PhysicsConfig{
		Gravity:      0.75,
		MaxFallSpeed: 10.0,
		MaxRiseSpeed: -16.0,

		Friction:    0.5,
		AirFriction: 0.05,

		BounceMinSpeed: 2.0,
		ClimbSpeed:     2.0,
	}

	// Player Config
	Player = PlayerConfig{
		JumpSpeed:    12.0,
		Acceleration: 0.75,
		MaxSpeed:     4.0,

		Health:       60,
		InvulnFrames: 30,

		CollisionWidth:  16,
		CollisionHeight: 28,
	}

	Walker = WalkerConfig{
		CollisionWidth:  16,
		CollisionHeight: 16,
		MaxSpeed:        2.0,
		Acceleration:    0.5,
		LegSeconds:      2,
		Health:          30,
	}

	Debug = DebugConfig{
		Draw: true,
	}

	Viewer = ViewerConfig{
		Width:  640,
		Height: 360,
		Scale:  2,
		TPS:    60,
		Level:  "level01",
		Layer:  "wg-tiles",
	}
}

// StepDuration is the wall-clock length of one simulation tick.
func StepDuration() time.Duration {
	if Viewer.TPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(Viewer.TPS)
}
