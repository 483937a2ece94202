package input

import "github.com/Siri-chan/getkey/key"

// KeyTable maps keys to report actions
type KeyTable struct {
	Bindings map[key.Key]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Bindings: map[key.Key]Action{
			key.Ctrl('c'): ActionQuit,
			key.Esc:       ActionQuit,
		},
	}
}

// Lookup returns the action bound to k, ActionNone if unbound
func (kt *KeyTable) Lookup(k key.Key) Action {
	if kt == nil {
		return ActionNone
	}
	return kt.Bindings[k]
}

// Clone returns a deep copy of the KeyTable with an independent map
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{Bindings: cloneKeyMap(kt.Bindings)}
}

func cloneKeyMap(m map[key.Key]Action) map[key.Key]Action {
	c := make(map[key.Key]Action, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
