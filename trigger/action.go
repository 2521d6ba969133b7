package trigger

import "fmt"

// Action is the kind of a deferred trigger command
type Action uint8

const (
	// ActionActivate activates entity Value
	// Consumer: the entity's controller
	ActionActivate Action = iota

	// ActionCameraSwitch moves the view to hardcoded camera Value
	// Consumer: the level camera rig
	ActionCameraSwitch

	// ActionCameraTarget points the view at entity Value
	// Consumer: the level camera rig
	ActionCameraTarget

	// ActionSecret marks secret Value found
	// Consumer: the dispatching controller, never blocks the chain
	ActionSecret

	// Actions below are owned by other collaborators and pass through this layer
	ActionFlow
	ActionFlipMap
	ActionFlipOn
	ActionFlipOff
	ActionEnd
	ActionSoundtrack
	ActionHardcoded
	ActionClear
	ActionCameraFlyby
	ActionCutscene

	actionCount
)

var actionNames = [actionCount]string{
	ActionActivate:     "activate",
	ActionCameraSwitch: "camera_switch",
	ActionCameraTarget: "camera_target",
	ActionSecret:       "secret",
	ActionFlow:         "flow",
	ActionFlipMap:      "flip_map",
	ActionFlipOn:       "flip_on",
	ActionFlipOff:      "flip_off",
	ActionEnd:          "end",
	ActionSoundtrack:   "soundtrack",
	ActionHardcoded:    "hardcoded",
	ActionClear:        "clear",
	ActionCameraFlyby:  "camera_flyby",
	ActionCutscene:     "cutscene",
}

// String returns the authoring name of the action
func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// ParseAction resolves an authoring name
func ParseAction(name string) (Action, error) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("trigger: unknown action %q", name)
}

// UnmarshalText implements encoding.TextUnmarshaler for config decoding
func (a *Action) UnmarshalText(text []byte) error {
	v, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}
