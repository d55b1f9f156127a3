package viewer

import (
	"github.com/automoto/tilecollide/components"
	"github.com/automoto/tilecollide/tile"
	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical viewer action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionJump
	ActionDrop
	ActionToggleDebug
	ActionToggleChunks
	ActionRestart
	ActionNextLevel
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps actions to keys and pad buttons.
var Bindings = map[ActionID]InputBinding{
	ActionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	ActionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	ActionMoveUp: {
		Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	ActionMoveDown: {
		Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	ActionJump: {
		Keys:                   []ebiten.Key{ebiten.KeySpace, ebiten.KeyX},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	ActionDrop: {
		Keys:                   []ebiten.Key{ebiten.KeyZ},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
	},
	ActionToggleDebug:  {Keys: []ebiten.Key{ebiten.KeyF1}},
	ActionToggleChunks: {Keys: []ebiten.Key{ebiten.KeyF2}},
	ActionRestart:      {Keys: []ebiten.Key{ebiten.KeyR}},
	ActionNextLevel:    {Keys: []ebiten.Key{ebiten.KeyN}},
}

// brushKeys select the tile type placed with the left mouse button.
var brushKeys = map[ebiten.Key]tile.Type{
	ebiten.Key1: tile.Solid,
	ebiten.Key2: tile.Platform,
	ebiten.Key3: tile.SlopeLeft,
	ebiten.Key4: tile.SlopeRight,
	ebiten.Key5: tile.Hazard,
	ebiten.Key6: tile.Ladder,
	ebiten.Key7: tile.Ice,
	ebiten.Key8: tile.Bounce,
}

// InputState stores the current and previous frame's pressed state for all
// actions.
type InputState struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Poll swaps buffers and reads keyboard and standard-layout gamepads.
func (s *InputState) Poll() {
	s.Previous = s.Current
	s.Current = [ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for action, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				s.Current[action] = true
			}
		}
		for _, id := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(id) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(id, btn) {
					s.Current[action] = true
				}
			}
		}
	}
}

func (s *InputState) Pressed(a ActionID) bool { return s.Current[a] }

func (s *InputState) JustPressed(a ActionID) bool { return s.Current[a] && !s.Previous[a] }

// Intent maps the held actions to a body intent. Jump and drop fire on the
// press only.
func (s *InputState) Intent() components.IntentData {
	var in components.IntentData
	if s.Pressed(ActionMoveLeft) {
		in.MoveX--
	}
	if s.Pressed(ActionMoveRight) {
		in.MoveX++
	}
	if s.Pressed(ActionMoveUp) {
		in.Climb--
	}
	if s.Pressed(ActionMoveDown) {
		in.Climb++
	}
	in.Jump = s.JustPressed(ActionJump)
	in.Drop = s.JustPressed(ActionDrop) || (s.Pressed(ActionMoveDown) && s.JustPressed(ActionJump))
	if in.Drop {
		in.Jump = false
	}
	return in
}
