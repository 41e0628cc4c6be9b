package tui

import (
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v3"
)

// TcellBackend implements Backend on top of github.com/gdamore/tcell/v3.
// tcell's Screen.Init already leaves the terminal in raw mode and on
// the alternate screen for the lifetime of the screen, so the
// corresponding Backend methods here are no-ops rather than failing:
// there is nothing separate to toggle once the screen exists, and
// nothing to undo before Close calls Fini.
type TcellBackend struct {
	screen tcell.Screen
	cursor Position
	events chan tcell.Event
	done   chan struct{}
}

// NewTcellBackend creates and initializes a tcell screen using the
// terminal's own terminfo-detected defaults.
func NewTcellBackend() (*TcellBackend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, ioError("new screen", err)
	}
	if err := screen.Init(); err != nil {
		return nil, ioError("init", err)
	}

	b := &TcellBackend{screen: screen, events: make(chan tcell.Event, 16), done: make(chan struct{})}
	go b.pump()
	return b, nil
}

func (b *TcellBackend) pump() {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return // screen was finalized
		}
		select {
		case b.events <- ev:
		case <-b.done:
			return
		}
	}
}

func (b *TcellBackend) Draw(updates []CellUpdate) error {
	for _, u := range updates {
		if u.Cell.Skip {
			continue // wide-glyph continuation column; tcell spans it from the base rune itself
		}
		main, combining := decodeSymbol(u.Cell.Symbol)
		b.screen.SetContent(u.X, u.Y, main, combining, toTcellStyle(u.Cell.Style))
	}
	return nil
}

func decodeSymbol(symbol string) (rune, []rune) {
	if symbol == "" {
		return ' ', nil
	}
	main, size := utf8.DecodeRuneInString(symbol)
	rest := symbol[size:]
	var combining []rune
	for len(rest) > 0 {
		r, n := utf8.DecodeRuneInString(rest)
		combining = append(combining, r)
		rest = rest[n:]
	}
	return main, combining
}

func toTcellStyle(s Style) tcell.Style {
	style := tcell.StyleDefault
	if fg := s.Fg(); fg != Reset {
		style = style.Foreground(toTcellColor(fg))
	}
	if bg := s.Bg(); bg != Reset {
		style = style.Background(toTcellColor(bg))
	}
	mods := s.Modifiers()
	style = style.Bold(mods.Has(ModifierBold))
	style = style.Dim(mods.Has(ModifierDim))
	style = style.Italic(mods.Has(ModifierItalic))
	style = style.Underline(mods.Has(ModifierUnderlined))
	style = style.Blink(mods.Has(ModifierSlowBlink) || mods.Has(ModifierRapidBlink))
	style = style.Reverse(mods.Has(ModifierReversed))
	style = style.StrikeThrough(mods.Has(ModifierCrossedOut))
	return style
}

func toTcellColor(c Color) tcell.Color {
	switch c.Kind {
	case ColorRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	case ColorIndexed:
		return tcell.PaletteColor(int(c.Index))
	case ColorNamed:
		if named, ok := tcellNamedColors[c.Name]; ok {
			return named
		}
		return tcell.ColorDefault
	default:
		return tcell.ColorDefault
	}
}

var tcellNamedColors = map[string]tcell.Color{
	"black": tcell.ColorBlack, "red": tcell.ColorRed, "green": tcell.ColorGreen,
	"yellow": tcell.ColorYellow, "blue": tcell.ColorBlue, "magenta": tcell.ColorDarkMagenta,
	"cyan": tcell.ColorDarkCyan, "white": tcell.ColorWhite, "grey": tcell.ColorGray, "gray": tcell.ColorGray,
}

func (b *TcellBackend) Flush() error {
	b.screen.Show()
	return nil
}

func (b *TcellBackend) Clear() error {
	b.screen.Clear()
	return nil
}

func (b *TcellBackend) Size() (int, int, error) {
	w, h := b.screen.Size()
	return w, h, nil
}

func (b *TcellBackend) ShowCursor() error {
	b.screen.ShowCursor(b.cursor.X, b.cursor.Y)
	return nil
}

func (b *TcellBackend) HideCursor() error {
	b.screen.HideCursor()
	return nil
}

func (b *TcellBackend) CursorPosition() (Position, error) { return b.cursor, nil }

func (b *TcellBackend) SetCursorPosition(p Position) error {
	b.cursor = p
	b.screen.ShowCursor(p.X, p.Y)
	return nil
}

func (b *TcellBackend) EnterAlternateScreen() error { return nil }
func (b *TcellBackend) LeaveAlternateScreen() error  { return nil }
func (b *TcellBackend) EnableRawMode() error         { return nil }
func (b *TcellBackend) DisableRawMode() error        { return nil }

func (b *TcellBackend) EnableMouseCapture() error {
	b.screen.EnableMouse()
	return nil
}

func (b *TcellBackend) DisableMouseCapture() error {
	b.screen.DisableMouse()
	return nil
}

// ScrollUp and ScrollDown have no tcell equivalent: a cell-grid screen
// has no scrollback concept of its own, so these are satisfied by the
// next full redraw shifting buffer content instead.
func (b *TcellBackend) ScrollUp(n int) error   { return nil }
func (b *TcellBackend) ScrollDown(n int) error { return nil }

func (b *TcellBackend) PollEvent(timeout time.Duration) (Event, bool, error) {
	select {
	case ev := <-b.events:
		return translateTcellEvent(ev)
	case <-time.After(timeout):
		return nil, false, nil
	case <-b.done:
		return nil, false, nil
	}
}

func translateTcellEvent(ev tcell.Event) (Event, bool, error) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return KeyEvent{Code: translateTcellKey(e.Key()), Rune: e.Rune(), Modifiers: translateTcellMod(e.Modifiers())}, true, nil
	case *tcell.EventMouse:
		x, y := e.Position()
		kind, button := translateTcellMouse(e.Buttons())
		return MouseEvent{Kind: kind, Button: button, Position: Position{X: x, Y: y}, Modifiers: translateTcellMod(e.Modifiers())}, true, nil
	case *tcell.EventResize:
		w, h := e.Size()
		return ResizeEvent{Width: w, Height: h}, true, nil
	default:
		return nil, false, nil
	}
}

func translateTcellKey(k tcell.Key) KeyCode {
	switch k {
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyTab:
		return KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace
	case tcell.KeyDelete:
		return KeyDelete
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyHome:
		return KeyHome
	case tcell.KeyEnd:
		return KeyEnd
	case tcell.KeyPgUp:
		return KeyPageUp
	case tcell.KeyPgDn:
		return KeyPageDown
	case tcell.KeyF1:
		return KeyF1
	case tcell.KeyF2:
		return KeyF2
	case tcell.KeyF3:
		return KeyF3
	case tcell.KeyF4:
		return KeyF4
	default:
		return KeyRune
	}
}

func translateTcellMod(m tcell.ModMask) KeyModifiers {
	var mods KeyModifiers
	if m&tcell.ModShift != 0 {
		mods |= ModShift
	}
	if m&tcell.ModAlt != 0 {
		mods |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mods |= ModCtrl
	}
	return mods
}

func translateTcellMouse(buttons tcell.ButtonMask) (MouseKind, MouseButton) {
	switch {
	case buttons&tcell.WheelUp != 0:
		return MouseScroll, ScrollUp
	case buttons&tcell.WheelDown != 0:
		return MouseScroll, ScrollDown
	case buttons&tcell.Button1 != 0:
		return MousePress, ButtonLeft
	case buttons&tcell.Button2 != 0:
		return MousePress, ButtonMiddle
	case buttons&tcell.Button3 != 0:
		return MousePress, ButtonRight
	default:
		return MouseRelease, ButtonNone
	}
}

func (b *TcellBackend) Close() error {
	select {
	case <-b.done:
	default:
		close(b.done)
	}
	b.screen.Fini()
	return nil
}

var _ Backend = (*TcellBackend)(nil)
