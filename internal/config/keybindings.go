package config

import (
	"slices"
	"strings"
)

// Action names used in the [keybindings] table.
const (
	ActionMinimize         = "minimize"
	ActionToggleMaximize   = "toggle_maximize"
	ActionClose            = "close"
	ActionExternalToggle   = "external_toggle"
	ActionExternalMaximize = "external_maximize"
	ActionExternalRestore  = "external_restore"
	ActionToggleLogs       = "toggle_logs"
	ActionToggleHelp       = "toggle_help"
	ActionQuit             = "quit"
)

// ActionDescriptions maps actions to human readable text.
var ActionDescriptions = map[string]string{
	ActionMinimize:         "Minimize window",
	ActionToggleMaximize:   "Maximize / restore window",
	ActionClose:            "Close window",
	ActionExternalToggle:   "Double-click the draggable region",
	ActionExternalMaximize: "OS shortcut: maximize",
	ActionExternalRestore:  "OS shortcut: restore",
	ActionToggleLogs:       "Toggle log viewer",
	ActionToggleHelp:       "Toggle help",
	ActionQuit:             "Quit without closing the window",
}

// ActionOrder is the display order for help and the keybinds table.
var ActionOrder = []string{
	ActionMinimize,
	ActionToggleMaximize,
	ActionClose,
	ActionExternalToggle,
	ActionExternalMaximize,
	ActionExternalRestore,
	ActionToggleLogs,
	ActionToggleHelp,
	ActionQuit,
}

// DefaultKeybindings returns the built-in action to keys table.
func DefaultKeybindings() map[string][]string {
	return map[string][]string{
		ActionMinimize:         {"n"},
		ActionToggleMaximize:   {"m"},
		ActionClose:            {"w"},
		ActionExternalToggle:   {"d"},
		ActionExternalMaximize: {"super+up", "ctrl+up"},
		ActionExternalRestore:  {"super+down", "ctrl+down"},
		ActionToggleLogs:       {"l"},
		ActionToggleHelp:       {"?"},
		ActionQuit:             {"q", "ctrl+c"},
	}
}

// Keybinding is one row of the help overlay.
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection groups related keybindings.
type KeybindingSection struct {
	Title    string
	Bindings []Keybinding
}

// KeybindRegistry resolves keys to actions and back.
type KeybindRegistry struct {
	actionToKeys map[string][]string
	keyToAction  map[string]string
}

// NewKeybindRegistry builds a registry from cfg. A nil cfg uses defaults.
// When two actions claim the same key, the one earlier in ActionOrder wins.
func NewKeybindRegistry(cfg *UserConfig) *KeybindRegistry {
	bindings := DefaultKeybindings()
	if cfg != nil && cfg.Keybindings != nil {
		bindings = cfg.Keybindings
	}

	r := &KeybindRegistry{
		actionToKeys: make(map[string][]string, len(bindings)),
		keyToAction:  make(map[string]string),
	}

	actions := slices.Clone(ActionOrder)
	for action := range bindings {
		if !slices.Contains(actions, action) {
			actions = append(actions, action)
		}
	}

	for _, action := range actions {
		keys, ok := bindings[action]
		if !ok {
			continue
		}
		var normalized []string
		for _, key := range keys {
			key = normalizeKey(key)
			if key == "" {
				continue
			}
			normalized = append(normalized, key)
			if _, taken := r.keyToAction[key]; !taken {
				r.keyToAction[key] = action
			}
		}
		r.actionToKeys[action] = normalized
	}
	return r
}

// GetKeys returns the keys bound to action.
func (r *KeybindRegistry) GetKeys(action string) []string {
	return r.actionToKeys[action]
}

// GetAction returns the action bound to key, or "".
func (r *KeybindRegistry) GetAction(key string) string {
	return r.keyToAction[normalizeKey(key)]
}

// GetKeysForDisplay returns the keys for action formatted for the UI.
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	keys := r.GetKeys(action)
	if len(keys) == 0 {
		return ""
	}
	display := make([]string, len(keys))
	for i, k := range keys {
		display[i] = FormatKeyDisplay(k)
	}
	return strings.Join(display, ", ")
}

// FormatKeyDisplay turns "ctrl+up" into "Ctrl+↑".
func FormatKeyDisplay(key string) string {
	parts := strings.Split(key, "+")
	for i, p := range parts {
		switch p {
		case "ctrl":
			parts[i] = "Ctrl"
		case "alt":
			parts[i] = "Alt"
		case "shift":
			parts[i] = "Shift"
		case "super":
			parts[i] = "Super"
		case "up":
			parts[i] = "↑"
		case "down":
			parts[i] = "↓"
		case "left":
			parts[i] = "←"
		case "right":
			parts[i] = "→"
		case "enter":
			parts[i] = "Enter"
		case "esc":
			parts[i] = "Esc"
		}
	}
	return strings.Join(parts, "+")
}

// GetKeybindings returns the help overlay sections.
func GetKeybindings(registry *KeybindRegistry) []KeybindingSection {
	if registry == nil {
		registry = NewKeybindRegistry(nil)
	}

	titlebar := KeybindingSection{Title: "TITLEBAR"}
	addBinding(&titlebar, registry, ActionMinimize)
	addBinding(&titlebar, registry, ActionToggleMaximize)
	addBinding(&titlebar, registry, ActionClose)

	outside := KeybindingSection{Title: "OUTSIDE THE TITLEBAR"}
	addBinding(&outside, registry, ActionExternalToggle)
	addBinding(&outside, registry, ActionExternalMaximize)
	addBinding(&outside, registry, ActionExternalRestore)

	system := KeybindingSection{Title: "SYSTEM"}
	addBinding(&system, registry, ActionToggleLogs)
	addBinding(&system, registry, ActionToggleHelp)
	addBinding(&system, registry, ActionQuit)

	mouse := KeybindingSection{
		Title: "MOUSE",
		Bindings: []Keybinding{
			{"Hover button", "Highlight (close shows red)"},
			{"Click button", "Minimize / maximize-restore / close"},
			{"Double-click bar", "Maximize / restore via the window manager"},
		},
	}

	var sections []KeybindingSection
	for _, s := range []KeybindingSection{titlebar, outside, system, mouse} {
		if len(s.Bindings) > 0 {
			sections = append(sections, s)
		}
	}
	return sections
}

func addBinding(section *KeybindingSection, registry *KeybindRegistry, action string) {
	keys := registry.GetKeysForDisplay(action)
	if keys == "" {
		return
	}
	section.Bindings = append(section.Bindings, Keybinding{
		Key:         keys,
		Description: ActionDescriptions[action],
	})
}

func normalizeKey(key string) string {
	key = strings.TrimSpace(key)
	// Single characters are case sensitive ("?" or "M").
	if len([]rune(key)) == 1 {
		return key
	}
	return strings.ToLower(key)
}
