package components

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Shortcut is a registered key binding.
type Shortcut struct {
	Key         string
	Description string
	callback    func()
}

// ShortcutManager handles automatic registration and parsing of keyboard shortcuts
type ShortcutManager struct {
	mutex     sync.RWMutex
	shortcuts map[string]*Shortcut
	order     []string // registration order, for the help line
}

// NewShortcutManager creates a new shortcut manager
func NewShortcutManager() *ShortcutManager {
	return &ShortcutManager{
		shortcuts: make(map[string]*Shortcut),
	}
}

// RegisterShortcut registers a shortcut with its callback. Registering the
// same key again replaces the binding.
func (sm *ShortcutManager) RegisterShortcut(shortcut, description string, callback func()) {
	if shortcut == "" {
		return
	}
	key := normalizeShortcut(shortcut)

	sm.mutex.Lock()
	defer sm.mutex.Unlock()
	if _, exists := sm.shortcuts[key]; !exists {
		sm.order = append(sm.order, key)
	}
	sm.shortcuts[key] = &Shortcut{Key: shortcut, Description: description, callback: callback}
}

// UnregisterShortcut removes a shortcut
func (sm *ShortcutManager) UnregisterShortcut(shortcut string) {
	key := normalizeShortcut(shortcut)

	sm.mutex.Lock()
	defer sm.mutex.Unlock()
	delete(sm.shortcuts, key)
	for i, k := range sm.order {
		if k == key {
			sm.order = append(sm.order[:i], sm.order[i+1:]...)
			break
		}
	}
}

// HandleKeyEvent checks if a key event matches any registered shortcuts
func (sm *ShortcutManager) HandleKeyEvent(event *tcell.EventKey) bool {
	shortcutString := KeyEventToString(event)
	if shortcutString == "" {
		return false
	}

	sm.mutex.RLock()
	sc, exists := sm.shortcuts[normalizeShortcut(shortcutString)]
	sm.mutex.RUnlock()

	if exists && sc.callback != nil {
		sc.callback()
		return true // Event was handled
	}
	return false // Event not handled
}

// Shortcuts lists the bindings in registration order.
func (sm *ShortcutManager) Shortcuts() []Shortcut {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	out := make([]Shortcut, 0, len(sm.order))
	for _, k := range sm.order {
		out = append(out, *sm.shortcuts[k])
	}
	return out
}

// HelpLine renders "key=Description" pairs for the status bar, skipping
// bindings without a description.
func (sm *ShortcutManager) HelpLine() string {
	var parts []string
	for _, sc := range sm.Shortcuts() {
		if sc.Description != "" {
			parts = append(parts, sc.Key+"="+sc.Description)
		}
	}
	return strings.Join(parts, " ")
}

// KeyEventToString converts a tcell.EventKey to a shortcut string
func KeyEventToString(event *tcell.EventKey) string {
	var parts []string

	// Printable characters carry their case, so shift is implied
	if event.Key() == tcell.KeyRune {
		if event.Modifiers()&tcell.ModAlt != 0 {
			parts = append(parts, "alt")
		}
		return strings.Join(append(parts, string(event.Rune())), "+")
	}

	if event.Modifiers()&tcell.ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if event.Modifiers()&tcell.ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if event.Modifiers()&tcell.ModShift != 0 {
		parts = append(parts, "shift")
	}

	var key string
	switch event.Key() {
	case tcell.KeyF1:
		key = "f1"
	case tcell.KeyEnter:
		key = "enter"
	case tcell.KeyEscape:
		key = "esc"
	case tcell.KeyTab:
		key = "tab"
	case tcell.KeyBacktab:
		key = "backtab"
	case tcell.KeyHome:
		key = "home"
	case tcell.KeyEnd:
		key = "end"
	case tcell.KeyPgUp:
		key = "pageup"
	case tcell.KeyPgDn:
		key = "pagedown"
	case tcell.KeyUp:
		key = "up"
	case tcell.KeyDown:
		key = "down"
	case tcell.KeyLeft:
		key = "left"
	case tcell.KeyRight:
		key = "right"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	default:
		return "" // Unknown key
	}

	return strings.Join(append(parts, key), "+")
}

// ParseShortcut parses a shortcut string (like "Ctrl+O") and returns the constituent parts
func ParseShortcut(shortcut string) (hasCtrl, hasAlt, hasShift bool, key string) {
	parts := strings.Split(strings.ToLower(shortcut), "+")

	for _, part := range parts {
		part = strings.TrimSpace(part)
		switch part {
		case "ctrl":
			hasCtrl = true
		case "alt":
			hasAlt = true
		case "shift":
			hasShift = true
		default:
			key = part
		}
	}

	return
}

// normalizeShortcut converts a shortcut string to a consistent format.
// Single characters keep their case so "h" and "H" can differ.
func normalizeShortcut(shortcut string) string {
	s := strings.TrimSpace(shortcut)
	if len([]rune(s)) == 1 {
		return s
	}
	return strings.ToLower(s)
}
