package handlers

import (
	"github.com/gdamore/tcell/v2"

	"ftlview/internal/components"
	"ftlview/internal/log"
)

// InputMode represents the current input mode
type InputMode int

const (
	InputModeLoading InputMode = iota
	InputModeBrowse
	InputModeModal
)

func (m InputMode) String() string {
	switch m {
	case InputModeLoading:
		return "loading"
	case InputModeBrowse:
		return "browse"
	case InputModeModal:
		return "modal"
	}
	return "unknown"
}

// InputHandler routes key events to the shortcuts of the current mode.
// Keys no shortcut claims fall through to the focused primitive.
type InputHandler struct {
	inputMode InputMode
	shortcuts map[InputMode]*components.ShortcutManager

	onModeChange func(InputMode)
}

// NewInputHandler creates a new input handler in loading mode
func NewInputHandler() *InputHandler {
	return &InputHandler{
		inputMode: InputModeLoading,
		shortcuts: map[InputMode]*components.ShortcutManager{
			InputModeLoading: components.NewShortcutManager(),
			InputModeBrowse:  components.NewShortcutManager(),
			InputModeModal:   components.NewShortcutManager(),
		},
	}
}

// Shortcuts returns the bindings active in mode
func (ih *InputHandler) Shortcuts(mode InputMode) *components.ShortcutManager {
	return ih.shortcuts[mode]
}

// SetModeChangeCallback is called after every mode switch
func (ih *InputHandler) SetModeChangeCallback(onModeChange func(InputMode)) {
	ih.onModeChange = onModeChange
}

// SetInputMode sets the current input mode
func (ih *InputHandler) SetInputMode(mode InputMode) {
	if mode == ih.inputMode {
		return
	}
	log.Debug("input mode changed", "from", ih.inputMode, "to", mode)
	ih.inputMode = mode
	if ih.onModeChange != nil {
		ih.onModeChange(mode)
	}
}

// InputMode returns the current input mode
func (ih *InputHandler) InputMode() InputMode {
	return ih.inputMode
}

// HelpLine is the key help of the current mode
func (ih *InputHandler) HelpLine() string {
	return ih.shortcuts[ih.inputMode].HelpLine()
}

// HandleKeyEvent handles key events based on current input mode
func (ih *InputHandler) HandleKeyEvent(event *tcell.EventKey) *tcell.EventKey {
	if ih.shortcuts[ih.inputMode].HandleKeyEvent(event) {
		log.Debug("shortcut handled", "key", components.KeyEventToString(event), "mode", ih.inputMode)
		return nil
	}
	return event
}
