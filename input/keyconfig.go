package input

import (
	"fmt"
	"strings"

	"github.com/Siri-chan/getkey/key"
)

// LoadKeyConfig parses a decoded keymap section into a sparse override KeyTable
// Keys are key names as accepted by key.ByName, values are action names
// Returns error on unknown action names, invalid key names, or non-string values
func LoadKeyConfig(section string, data map[string]any) (*KeyTable, error) {
	kt := &KeyTable{Bindings: make(map[key.Key]Action, len(data))}

	for keyStr, val := range data {
		k, ok := key.ByName(keyStr)
		if !ok {
			return nil, fmt.Errorf("[%s] unknown key name: %q", section, keyStr)
		}

		actionName, ok := val.(string)
		if !ok {
			return nil, fmt.Errorf("[%s] key %q: value must be string, got %T", section, keyStr, val)
		}

		a, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[%s] key %q: %w", section, keyStr, err)
		}

		kt.Bindings[k] = a
	}

	return kt, nil
}

// resolveAction converts an action name string to an Action
func resolveAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	a, ok := ActionByName(name)
	if !ok {
		return ActionNone, fmt.Errorf("unknown action: %q", name)
	}
	return a, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by override
// Override entries with ActionNone ("none" action) delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	for k, v := range override.Bindings {
		if v == ActionNone {
			delete(result.Bindings, k)
		} else {
			result.Bindings[k] = v
		}
	}

	return result
}
