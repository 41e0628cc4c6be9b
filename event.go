package tui

import "time"

// KeyCode identifies a pressed key independent of modifiers.
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
)

// KeyModifiers is a bitset of modifier keys held during a key or mouse
// event.
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota
	ModAlt
	ModCtrl
)

func (m KeyModifiers) Has(other KeyModifiers) bool { return m&other == other }

// KeyEvent is a single key press, decoded from whatever escape sequence
// or platform API the backend consumed.
type KeyEvent struct {
	Code      KeyCode
	Rune      rune
	Modifiers KeyModifiers
}

// MouseKind discriminates the phase of a mouse interaction.
type MouseKind int

const (
	MousePress MouseKind = iota
	MouseRelease
	MouseMove
	MouseDrag
	MouseScroll
)

// MouseButton identifies which button a press/release/drag event is for.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	ScrollUp
	ScrollDown
)

// MouseEvent is a single mouse interaction at an absolute screen
// Position.
type MouseEvent struct {
	Kind      MouseKind
	Button    MouseButton
	Position  Position
	Modifiers KeyModifiers
}

// TickEvent is synthesized by TuiRunner when TuiConfig.TickRate is set
// and the tick deadline has passed, independent of input activity.
type TickEvent struct {
	FrameCount int
	Elapsed    time.Duration
}

// ResizeEvent is synthesized when the backend reports the terminal size
// changed, ahead of the next draw.
type ResizeEvent struct {
	Width, Height int
}

// Event is the sum type handlers receive: exactly one of the four
// concrete event kinds is non-nil-equivalent per delivery (Go expresses
// the sum as an interface rather than a tagged union; callers type-switch
// on it).
type Event interface {
	isEvent()
}

func (KeyEvent) isEvent()    {}
func (MouseEvent) isEvent()  {}
func (TickEvent) isEvent()   {}
func (ResizeEvent) isEvent() {}
