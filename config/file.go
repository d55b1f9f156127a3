package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/automoto/tilecollide/tile"
	"gopkg.in/yaml.v3"
)

var ErrInvalidFile = errors.New("config: invalid file")

// fileConfig mirrors the YAML layout. Every field is optional; nil leaves the
// built-in value in place.
type fileConfig struct {
	Collision *struct {
		TileSize            *float64 `yaml:"tile_size"`
		Epsilon             *float64 `yaml:"epsilon"`
		PlatformThreshold   *float64 `yaml:"platform_threshold"`
		DropThroughDistance *float64 `yaml:"drop_through_distance"`
		DropThroughGraceMS  *int     `yaml:"drop_through_grace_ms"`
		ContactTolerance    *float64 `yaml:"contact_tolerance"`
		SlopeSnapTolerance  *float64 `yaml:"slope_snap_tolerance"`
		StepHeight          *float64 `yaml:"step_height"`
		PartitionCellTiles  *int     `yaml:"partition_cell_tiles"`
	} `yaml:"collision"`

	Physics *struct {
		Gravity        *float64 `yaml:"gravity"`
		MaxFallSpeed   *float64 `yaml:"max_fall_speed"`
		MaxRiseSpeed   *float64 `yaml:"max_rise_speed"`
		Friction       *float64 `yaml:"friction"`
		AirFriction    *float64 `yaml:"air_friction"`
		BounceMinSpeed *float64 `yaml:"bounce_min_speed"`
		ClimbSpeed     *float64 `yaml:"climb_speed"`
	} `yaml:"physics"`

	Player *struct {
		JumpSpeed    *float64 `yaml:"jump_speed"`
		Acceleration *float64 `yaml:"acceleration"`
		MaxSpeed     *float64 `yaml:"max_speed"`
		Health       *int     `yaml:"health"`
		InvulnFrames *int     `yaml:"invuln_frames"`
	} `yaml:"player"`

	Debug *struct {
		Draw        *bool `yaml:"draw"`
		ShowChunks  *bool `yaml:"show_chunks"`
		LogContacts *bool `yaml:"log_contacts"`
	} `yaml:"debug"`

	Viewer *struct {
		Level *string `yaml:"level"`
		Layer *string `yaml:"layer"`
		TPS   *int    `yaml:"tps"`
	} `yaml:"viewer"`

	Tiles map[string]TileOverride `yaml:"tiles"`
}

// TileOverride replaces individual properties of a tile type.
type TileOverride struct {
	Solid     *bool    `yaml:"solid"`
	Platform  *bool    `yaml:"platform"`
	Friction  *float64 `yaml:"friction"`
	Damage    *int     `yaml:"damage"`
	Climbable *bool    `yaml:"climbable"`
	Bounce    *float64 `yaml:"bounce"`
}

func (o TileOverride) apply(p tile.Properties) tile.Properties {
	set(&p.Solid, o.Solid)
	set(&p.Platform, o.Platform)
	set(&p.Friction, o.Friction)
	set(&p.Damage, o.Damage)
	set(&p.Climbable, o.Climbable)
	set(&p.Bounce, o.Bounce)
	return p
}

var tileOverrides map[tile.Type]TileOverride

// LoadFile overlays the YAML file at path onto the current globals.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := LoadBytes(data); err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	return nil
}

// LoadBytes overlays a YAML document onto the current globals. Nothing is
// changed when the document or the resulting collision config is invalid.
func LoadBytes(data []byte) error {
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	coll := Collision
	if c := fc.Collision; c != nil {
		set(&coll.TileSize, c.TileSize)
		set(&coll.Epsilon, c.Epsilon)
		set(&coll.PlatformThreshold, c.PlatformThreshold)
		set(&coll.DropThroughDistance, c.DropThroughDistance)
		if c.DropThroughGraceMS != nil {
			coll.DropThroughGrace = time.Duration(*c.DropThroughGraceMS) * time.Millisecond
		}
		set(&coll.ContactTolerance, c.ContactTolerance)
		set(&coll.SlopeSnapTolerance, c.SlopeSnapTolerance)
		set(&coll.StepHeight, c.StepHeight)
		set(&coll.PartitionCellTiles, c.PartitionCellTiles)
	}
	if err := coll.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	overrides := make(map[tile.Type]TileOverride, len(fc.Tiles))
	scratch := tile.NewTable()
	for name, o := range fc.Tiles {
		t, err := tile.ParseType(name)
		if err != nil {
			return fmt.Errorf("%w: tiles: %w", ErrInvalidFile, err)
		}
		if err := scratch.Override(t, o.apply(scratch.Lookup(t))); err != nil {
			return fmt.Errorf("%w: tiles.%s: %w", ErrInvalidFile, name, err)
		}
		overrides[t] = o
	}

	physics, player, debug, viewer := Physics, Player, Debug, Viewer
	if p := fc.Physics; p != nil {
		set(&physics.Gravity, p.Gravity)
		set(&physics.MaxFallSpeed, p.MaxFallSpeed)
		set(&physics.MaxRiseSpeed, p.MaxRiseSpeed)
		set(&physics.Friction, p.Friction)
		set(&physics.AirFriction, p.AirFriction)
		set(&physics.BounceMinSpeed, p.BounceMinSpeed)
		set(&physics.ClimbSpeed, p.ClimbSpeed)
	}
	if p := fc.Player; p != nil {
		set(&player.JumpSpeed, p.JumpSpeed)
		set(&player.Acceleration, p.Acceleration)
		set(&player.MaxSpeed, p.MaxSpeed)
		set(&player.Health, p.Health)
		set(&player.InvulnFrames, p.InvulnFrames)
	}
	if d := fc.Debug; d != nil {
		set(&debug.Draw, d.Draw)
		set(&debug.ShowChunks, d.ShowChunks)
		set(&debug.LogContacts, d.LogContacts)
	}
	if v := fc.Viewer; v != nil {
		set(&viewer.Level, v.Level)
		set(&viewer.Layer, v.Layer)
		set(&viewer.TPS, v.TPS)
	}

	Collision, Physics, Player, Debug, Viewer = coll, physics, player, debug, viewer
	if len(overrides) > 0 {
		if tileOverrides == nil {
			tileOverrides = make(map[tile.Type]TileOverride)
		}
		for t, o := range overrides {
			tileOverrides[t] = o
		}
	}
	return nil
}

// ApplyTileOverrides writes the loaded tile overrides into table, in tile
// type order.
func ApplyTileOverrides(table *tile.Table) error {
	types := make([]tile.Type, 0, len(tileOverrides))
	for t := range tileOverrides {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	for _, t := range types {
		if err := table.Override(t, tileOverrides[t].apply(table.Lookup(t))); err != nil {
			return fmt.Errorf("apply tile overrides: %w", err)
		}
	}
	return nil
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
