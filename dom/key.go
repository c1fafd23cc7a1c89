package dom

// Key represents a keyboard key.
type Key uint16

const (
	// KeyNone represents no key (zero value).
	KeyNone Key = iota

	// KeyRune represents a printable character. Check KeyEvent.Rune for the character.
	KeyRune

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyRune:      "Rune",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
}

// String returns the key name.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Modifier is a bit set of modifier keys held during a key press.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModAlt
	ModCtrl
)

// Has reports whether all bits of m2 are set in m.
func (m Modifier) Has(m2 Modifier) bool {
	return m&m2 == m2
}

// KeyEvent is a keydown delivered to element handlers and document listeners.
type KeyEvent struct {
	Key  Key
	Rune rune
	Mod  Modifier

	// Target is the element that had focus when the key was pressed, or the
	// body when nothing did.
	Target *Element

	defaultPrevented   bool
	propagationStopped bool
}

// PreventDefault suppresses the document's default action for this key,
// such as moving focus on Tab.
func (ev *KeyEvent) PreventDefault() {
	ev.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (ev *KeyEvent) DefaultPrevented() bool {
	return ev.defaultPrevented
}

// StopPropagation stops the event from reaching further ancestors and
// document listeners. Default actions still run.
func (ev *KeyEvent) StopPropagation() {
	ev.propagationStopped = true
}

// IsActivation reports whether the key activates the focused element
// (Enter or Space).
func (ev *KeyEvent) IsActivation() bool {
	return ev.Key == KeyEnter || (ev.Key == KeyRune && ev.Rune == ' ')
}
