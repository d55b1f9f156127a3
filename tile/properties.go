package tile

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrUnknownType       = errors.New("tile: unknown type")
	ErrInvalidProperties = errors.New("tile: invalid properties")
)

// Properties are the collision attributes of a tile type.
type Properties struct {
	Solid     bool    // blocks movement on both axes
	Platform  bool    // blocks only downward movement from above
	Friction  float64 // 0..1, ground friction scale
	Damage    int     // damage dealt on contact
	Climbable bool
	Bounce    float64 // vertical rebound factor applied on landing; 0 = none
}

// Validate checks the property invariants.
func (p Properties) Validate() error {
	switch {
	case p.Solid && p.Platform:
		return fmt.Errorf("%w: solid and platform are exclusive", ErrInvalidProperties)
	case p.Friction < 0 || p.Friction > 1:
		return fmt.Errorf("%w: friction %v outside [0,1]", ErrInvalidProperties, p.Friction)
	case p.Damage < 0:
		return fmt.Errorf("%w: negative damage %d", ErrInvalidProperties, p.Damage)
	case p.Bounce < 0:
		return fmt.Errorf("%w: negative bounce %v", ErrInvalidProperties, p.Bounce)
	}
	return nil
}

var defaultProperties = [NumTypes]Properties{
	Empty:      {},
	Solid:      {Solid: true, Friction: 0.8},
	Platform:   {Platform: true, Friction: 0.8},
	SlopeLeft:  {Friction: 0.8},
	SlopeRight: {Friction: 0.8},
	Hazard:     {Damage: 1},
	Ladder:     {Climbable: true},
	Ice:        {Solid: true, Friction: 0.05},
	Bounce:     {Solid: true, Friction: 0.8, Bounce: 1.5},
}

// Table maps tile types to their properties. It is safe for concurrent use;
// overrides are expected before play starts.
type Table struct {
	mu    sync.RWMutex
	props [NumTypes]Properties
}

// NewTable returns a table holding the default properties.
func NewTable() *Table {
	return &Table{props: defaultProperties}
}

// Lookup returns the properties for t. Unknown tags get Empty's properties.
func (tb *Table) Lookup(t Type) Properties {
	if !t.Known() {
		t = Empty
	}
	tb.mu.RLock()
	defer tb.mu.RUnlock()
	return tb.props[t]
}

// Override replaces the properties of t.
func (tb *Table) Override(t Type, p Properties) error {
	if !t.Known() {
		return fmt.Errorf("%w: %d", ErrUnknownType, uint8(t))
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("override %s: %w", t, err)
	}
	if t == Empty && (p.Solid || p.Platform || p.Damage != 0) {
		return fmt.Errorf("override %s: %w: empty must stay passable and harmless", t, ErrInvalidProperties)
	}
	// Slopes are handled by the slope pass, never as rectangles.
	if t.IsSlope() && (p.Solid || p.Platform) {
		return fmt.Errorf("override %s: %w: slopes cannot be solid or platform", t, ErrInvalidProperties)
	}

	tb.mu.Lock()
	tb.props[t] = p
	tb.mu.Unlock()
	return nil
}

// MaskWhere returns the set of types whose properties satisfy pred.
func (tb *Table) MaskWhere(pred func(Properties) bool) Mask {
	tb.mu.RLock()
	defer tb.mu.RUnlock()
	var m Mask
	for t := Type(0); t < NumTypes; t++ {
		if pred(tb.props[t]) {
			m |= MaskOf(t)
		}
	}
	return m
}
