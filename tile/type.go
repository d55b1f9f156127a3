// Package tile holds the tile grid, the tile type tags and the per-type
// collision property table. It has no dependencies on the renderer or ECS.
package tile

import (
	"fmt"
	"strings"
)

// Type is the collision tag stored in each grid cell.
type Type uint8

const (
	Empty Type = iota
	Solid
	Platform
	SlopeLeft  // surface rises from left to right
	SlopeRight // surface rises from right to left
	Hazard
	Ladder
	Ice
	Bounce

	// NumTypes is the number of known tags. Tables are sized by it, so a new
	// tag must get an entry in typeNames and defaultProperties.
	NumTypes
)

var typeNames = [NumTypes]string{
	Empty:      "empty",
	Solid:      "solid",
	Platform:   "platform",
	SlopeLeft:  "slope_left",
	SlopeRight: "slope_right",
	Hazard:     "hazard",
	Ladder:     "ladder",
	Ice:        "ice",
	Bounce:     "bounce",
}

// Slope tags used by TMX tilesets.
const (
	tmxSlope45UpRight = "45_up_right"
	tmxSlope45UpLeft  = "45_up_left"
)

func (t Type) String() string {
	if !t.Known() {
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
	return typeNames[t]
}

// Known reports whether t is one of the declared tags.
func (t Type) Known() bool { return t < NumTypes }

// IsSlope reports whether t is a sloped surface.
func (t Type) IsSlope() bool { return t == SlopeLeft || t == SlopeRight }

// ParseType maps a tag name to a Type. Matching is case-insensitive and also
// accepts the 45_up_right / 45_up_left slope names.
func ParseType(s string) (Type, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case tmxSlope45UpRight:
		return SlopeLeft, nil
	case tmxSlope45UpLeft:
		return SlopeRight, nil
	}
	for i, n := range typeNames {
		if n == name {
			return Type(i), nil
		}
	}
	return Empty, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Coord is a (column, row) tile position. Any pair is a valid Coord; the grid
// decides what lies outside its bounds.
type Coord struct {
	Col, Row int
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Col, c.Row) }

// Mask is a set of tile types.
type Mask uint16

// AllTypes contains every known tag.
const AllTypes Mask = 1<<NumTypes - 1

// MaskOf returns the set containing ts.
func MaskOf(ts ...Type) Mask {
	var m Mask
	for _, t := range ts {
		if t.Known() {
			m |= 1 << t
		}
	}
	return m
}

// Has reports whether t is in m.
func (m Mask) Has(t Type) bool {
	return t.Known() && m&(1<<t) != 0
}

// Union returns the set of types in either mask.
func (m Mask) Union(o Mask) Mask { return m | o }

// Types lists the members of m in tag order.
func (m Mask) Types() []Type {
	var out []Type
	for t := Type(0); t < NumTypes; t++ {
		if m.Has(t) {
			out = append(out, t)
		}
	}
	return out
}
