package config

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// LoadKeymap reads a YAML keymap and returns the default bindings with the
// listed actions replaced. The file maps action names to key names:
//
//	forward: [W, ArrowUp]
//	left: [A]
func LoadKeymap(fsys fs.FS, path string) (map[ActionID]InputBinding, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read keymap %s: %w", path, err)
	}
	return ParseKeymap(data)
}

// ParseKeymap decodes a YAML keymap document.
func ParseKeymap(data []byte) (map[ActionID]InputBinding, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode keymap: %w", err)
	}

	bindings := DefaultBindings()
	for name, keyNames := range raw {
		action, ok := actionByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown action %q", name)
		}
		keys := make([]ebiten.Key, 0, len(keyNames))
		for _, kn := range keyNames {
			k, ok := keyByName(kn)
			if !ok {
				return nil, fmt.Errorf("action %s: unknown key %q", name, kn)
			}
			keys = append(keys, k)
		}
		bindings[action] = InputBinding{Keys: keys}
	}
	return bindings, nil
}

func actionByName(name string) (ActionID, bool) {
	for id, n := range actionNames {
		if strings.EqualFold(n, name) {
			return id, true
		}
	}
	return ActionNone, false
}

func keyByName(name string) (ebiten.Key, bool) {
	name = strings.TrimPrefix(strings.TrimSpace(name), "Key")
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, true
		}
	}
	return 0, false
}
