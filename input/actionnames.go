package input

// Action is what the key report does when a bound key arrives
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionClear
	ActionMark
)

// actionRegistry maps canonical action names used in keymap config
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	"quit":  ActionQuit,
	"clear": ActionClear,
	"mark":  ActionMark,
}

var actionNames = map[Action]string{
	ActionNone:  "none",
	ActionQuit:  "quit",
	ActionClear: "clear",
	ActionMark:  "mark",
}

// ActionByName looks up an action by its config name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}
