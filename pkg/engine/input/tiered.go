package input

import (
	"sort"
	"strings"
	"time"

	"cvquest/pkg/engine/world"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DevicePointer
	DeviceGamepad
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight

	// Dialogue and world interaction
	ActionContinue // Space / Enter: skip typewriter or dismiss
	ActionPointer  // Click or tap at a world point

	// Panels
	ActionInventory
	ActionQuestLog
	ActionHelp
	ActionMenu

	// Meta
	ActionQuit
	ActionDumpMap
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
// Point is only set for ActionPointer.
type Intent struct {
	Action Action
	Point  world.Vec
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "w", "arrow_up", "pointer").
type RawInput struct {
	Device    Device
	Code      string
	Point     world.Vec
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Ebiten's just-pressed helpers and terminal raw reads already debounce, so
// this is a thin copy that keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
	Point  world.Vec
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
		Point:  raw.Point,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, WASD)
	"arrow_up":    ActionMoveUp,
	"w":           ActionMoveUp,
	"arrow_down":  ActionMoveDown,
	"s":           ActionMoveDown,
	"arrow_left":  ActionMoveLeft,
	"a":           ActionMoveLeft,
	"arrow_right": ActionMoveRight,
	"d":           ActionMoveRight,

	// Dialogue
	"space":   ActionContinue,
	"enter":   ActionContinue,
	"pointer": ActionPointer,

	// Panels
	"i":      ActionInventory,
	"q":      ActionQuestLog,
	"h":      ActionHelp,
	"escape": ActionMenu,

	// Meta
	"ctrl_c": ActionQuit,
	"quit":   ActionQuit,
	"f9":     ActionDumpMap,

	// Controller/gamepad specific bindings
	"gamepad_dpad_up":    ActionMoveUp,
	"gamepad_dpad_down":  ActionMoveDown,
	"gamepad_dpad_left":  ActionMoveLeft,
	"gamepad_dpad_right": ActionMoveRight,
	"gamepad_a":          ActionContinue,
	"gamepad_start":      ActionMenu,
}

// reserved codes cannot be rebound or unbound
var reserved = map[string]bool{
	"arrow_up": true, "arrow_down": true, "arrow_left": true, "arrow_right": true,
	"space": true, "enter": true, "pointer": true, "ctrl_c": true,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		intent := Intent{Action: act}
		if act == ActionPointer {
			intent.Point = ev.Point
		}
		return intent
	}
	return Intent{Action: ActionNone}
}

// Translate runs a raw event through every layer
func Translate(raw RawInput) Intent {
	return MapToIntent(NewDebouncedInput(raw))
}

// IsMovement reports whether a is one of the four directional actions
func IsMovement(a Action) bool {
	return a >= ActionMoveUp && a <= ActionMoveRight
}

// DirectionFromHeld collapses the held movement actions into one direction.
// Left beats right and up beats down. The result is not normalised.
func DirectionFromHeld(held map[Action]bool) world.Vec {
	var dir world.Vec
	if held[ActionMoveLeft] {
		dir.X = -1
	} else if held[ActionMoveRight] {
		dir.X = 1
	}
	if held[ActionMoveUp] {
		dir.Y = -1
	} else if held[ActionMoveDown] {
		dir.Y = 1
	}
	return dir
}

// FacingOf returns the facing for a movement action
func FacingOf(a Action) (world.Facing, bool) {
	switch a {
	case ActionMoveUp:
		return world.Up, true
	case ActionMoveDown:
		return world.Down, true
	case ActionMoveLeft:
		return world.Left, true
	case ActionMoveRight:
		return world.Right, true
	default:
		return 0, false
	}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveUp:
		return "Move Up"
	case ActionMoveDown:
		return "Move Down"
	case ActionMoveLeft:
		return "Move Left"
	case ActionMoveRight:
		return "Move Right"
	case ActionContinue:
		return "Continue"
	case ActionPointer:
		return "Walk / Talk"
	case ActionInventory:
		return "Inventory"
	case ActionQuestLog:
		return "Quest Log"
	case ActionHelp:
		return "Help"
	case ActionMenu:
		return "Menu"
	case ActionQuit:
		return "Quit"
	case ActionDumpMap:
		return "Dump Map"
	default:
		return "None"
	}
}

// ParseAction looks an action up by its ActionName, ignoring case
func ParseAction(name string) (Action, bool) {
	for a := ActionMoveUp; a <= ActionDumpMap; a++ {
		if strings.EqualFold(ActionName(a), name) {
			return a, true
		}
	}
	return ActionNone, false
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// CodesFor returns the sorted codes bound to a single action
func CodesFor(a Action) []string {
	return GetBindingsByAction()[a]
}

// SetSingleBinding replaces all non-reserved bindings for the given action with a single code.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reserved[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved[code] {
		bindings[code] = action
	}
}
