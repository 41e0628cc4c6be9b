package tui

// KeyHandler, MouseHandler and DragHandler are the event-handling
// capabilities an Element may optionally provide. A nil handler means
// the element does not participate in that kind of event; the router
// (router.go) checks for nil before invoking.
type KeyHandler func(KeyEvent) bool
type MouseHandler func(MouseEvent) bool
type DragHandler func(position Position, delta Position, released bool) bool

// Element is the single capability interface every renderable thing in
// the tree implements. Rather than a deep base-class hierarchy, shared
// behavior (id, constraint, focusability, handlers) lives in an
// embeddable BaseElement value that concrete elements compose; the
// closed set of concrete elements differ only in Render and in which
// handlers they choose to expose.
type Element interface {
	// Render paints the element into area of buf. ctx carries the
	// current fault-tolerance mode and the styled-area registry for the
	// frame this render belongs to.
	Render(area Rect, buf *Buffer, ctx *RenderContext)

	ID() string
	Constraint() Constraint
	Focusable() bool
	KeyHandler() KeyHandler
	MouseHandler() MouseHandler
	DragHandler() DragHandler
}

// BaseElement is the composable styling+event core described by the
// redesign notes: every concrete element embeds it instead of inheriting
// from a shared abstract base. Zero value is a non-focusable element
// with no id, no handlers and the zero Constraint (Length(0));
// NewBaseElement sets Fill(1) instead.
type BaseElement struct {
	id         string
	constraint Constraint
	focusable  bool
	keyHandler KeyHandler
	mouseHandler MouseHandler
	dragHandler DragHandler
}

// NewBaseElement builds a BaseElement with the given id. Constraint
// defaults to Fill(1); use WithConstraint to override.
func NewBaseElement(id string) BaseElement {
	return BaseElement{id: id, constraint: Fill(1)}
}

func (b BaseElement) ID() string             { return b.id }
func (b BaseElement) Constraint() Constraint { return b.constraint }
func (b BaseElement) Focusable() bool        { return b.focusable }
func (b BaseElement) KeyHandler() KeyHandler { return b.keyHandler }
func (b BaseElement) MouseHandler() MouseHandler { return b.mouseHandler }
func (b BaseElement) DragHandler() DragHandler   { return b.dragHandler }

func (b BaseElement) WithConstraint(c Constraint) BaseElement { b.constraint = c; return b }
func (b BaseElement) WithFocusable(f bool) BaseElement         { b.focusable = f; return b }
func (b BaseElement) WithKeyHandler(h KeyHandler) BaseElement  { b.keyHandler = h; return b }
func (b BaseElement) WithMouseHandler(h MouseHandler) BaseElement { b.mouseHandler = h; return b }
func (b BaseElement) WithDragHandler(h DragHandler) BaseElement   { b.dragHandler = h; return b }
