package collision

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidConfig = errors.New("collision: invalid config")

// Config holds the engine's tunables. The platform and drop-through values
// are game-feel constants; only their ordering matters to the algorithm.
type Config struct {
	TileSize float64 // world units per tile edge
	Epsilon  float64 // right/bottom edge inset used when mapping boxes to tiles

	PlatformThreshold   float64       // how far below a platform top a foot may start and still land
	DropThroughDistance float64       // downward nudge applied by DropThrough; must exceed PlatformThreshold
	DropThroughGrace    time.Duration // platforms are ignored for this long after a drop

	ContactTolerance   float64 // resting-contact band for ground probes
	SlopeSnapTolerance float64 // extra penetration allowed when snapping onto slopes
	StepHeight         float64 // ledge height climbable while walking off a slope

	PartitionCellTiles int // coarse cell edge in tiles
}

// DefaultConfig returns the tuning for 32px tiles.
func DefaultConfig() Config {
	return Config{
		TileSize:            32,
		Epsilon:             0.01,
		PlatformThreshold:   8,
		DropThroughDistance: 9,
		DropThroughGrace:    200 * time.Millisecond,
		ContactTolerance:    0.5,
		SlopeSnapTolerance:  8,
		StepHeight:          16,
		PartitionCellTiles:  4,
	}
}

// Validate reports the first inconsistent value.
func (c Config) Validate() error {
	switch {
	case !(c.TileSize > 0):
		return fmt.Errorf("%w: tile size %v", ErrInvalidConfig, c.TileSize)
	case !(c.Epsilon > 0) || c.Epsilon >= c.TileSize:
		return fmt.Errorf("%w: epsilon %v must be in (0, tile size)", ErrInvalidConfig, c.Epsilon)
	case c.PlatformThreshold < 0:
		return fmt.Errorf("%w: platform threshold %v", ErrInvalidConfig, c.PlatformThreshold)
	case c.DropThroughDistance <= c.PlatformThreshold:
		return fmt.Errorf("%w: drop-through distance %v must exceed platform threshold %v",
			ErrInvalidConfig, c.DropThroughDistance, c.PlatformThreshold)
	case c.DropThroughGrace < 0:
		return fmt.Errorf("%w: drop-through grace %v", ErrInvalidConfig, c.DropThroughGrace)
	case !(c.ContactTolerance > c.Epsilon) || c.ContactTolerance >= c.TileSize:
		return fmt.Errorf("%w: contact tolerance %v must be in (epsilon, tile size)", ErrInvalidConfig, c.ContactTolerance)
	case c.SlopeSnapTolerance < 0 || c.StepHeight < 0:
		return fmt.Errorf("%w: negative slope tolerance", ErrInvalidConfig)
	case c.PartitionCellTiles < 1:
		return fmt.Errorf("%w: partition cell %d", ErrInvalidConfig, c.PartitionCellTiles)
	}
	return nil
}
