package tui

// EventRouter dispatches input events to the element tree rendered most
// recently. Elements register themselves (via their area) once per
// render, back-to-front in render order; hit-testing walks that list
// back to front so a later (frontmost, e.g. a popup) registration wins
// over an earlier one covering the same screen position.
type EventRouter struct {
	elements []registeredElement
	focus    *FocusManager

	dragging     Element
	dragStart    Position
	dragLast     Position
	dragActive   bool
}

type registeredElement struct {
	el   Element
	area Rect
}

// NewEventRouter returns a router driving the given FocusManager's
// Tab/Shift-Tab cycling.
func NewEventRouter(focus *FocusManager) *EventRouter {
	return &EventRouter{focus: focus}
}

// Reset clears this render's registrations ahead of the next one. Any
// drag in progress whose element did not survive the previous frame is
// cancelled first, delivered at the sentinel (-1, -1) position so the
// handler can distinguish a cancellation from a real release at the
// origin.
func (r *EventRouter) Reset() {
	if r.dragActive {
		if !r.stillRegistered(r.dragging) {
			r.cancelDrag()
		}
	}
	r.elements = r.elements[:0]
	r.focus.Reset()
}

func (r *EventRouter) stillRegistered(el Element) bool {
	for _, re := range r.elements {
		if re.el.ID() == el.ID() {
			return true
		}
	}
	return false
}

// Register adds el at area to this render's hit-test and focus order.
// Call in render (front-to-back in z terms means later calls sit on
// top), after the element's own Render so area reflects what was
// actually drawn.
func (r *EventRouter) Register(el Element, area Rect) {
	r.elements = append(r.elements, registeredElement{el: el, area: area})
	if el.Focusable() {
		r.focus.Register(el.ID())
	}
}

// HitTest returns the frontmost registered element containing p, if
// any.
func (r *EventRouter) HitTest(p Position) (Element, bool) {
	for i := len(r.elements) - 1; i >= 0; i-- {
		if r.elements[i].area.Contains(p) {
			return r.elements[i].el, true
		}
	}
	return nil, false
}

func (r *EventRouter) findByID(id string) (Element, bool) {
	for _, re := range r.elements {
		if re.el.ID() == id {
			return re.el, true
		}
	}
	return nil, false
}

// Dispatch routes e to the appropriate handler(s) and reports whether
// something consumed it. Tab and Shift-Tab are intercepted here to
// drive focus cycling rather than reaching any element's KeyHandler.
func (r *EventRouter) Dispatch(e Event) bool {
	switch ev := e.(type) {
	case KeyEvent:
		return r.dispatchKey(ev)
	case MouseEvent:
		return r.dispatchMouse(ev)
	case ResizeEvent:
		if r.dragActive {
			r.cancelDrag()
		}
		return false
	default:
		return false
	}
}

func (r *EventRouter) dispatchKey(ev KeyEvent) bool {
	if ev.Code == KeyTab {
		if ev.Modifiers.Has(ModShift) {
			r.focus.Previous()
		} else {
			r.focus.Next()
		}
		return true
	}
	if ev.Code == KeyEscape {
		if r.dragActive {
			r.cancelDrag()
			return true
		}
		if r.focus.Current() != "" {
			r.focus.Blur()
			return true
		}
		return false
	}
	id := r.focus.Current()
	if id == "" {
		return false
	}
	el, ok := r.findByID(id)
	if !ok {
		return false
	}
	handler := el.KeyHandler()
	if handler == nil {
		return false
	}
	return handler(ev)
}

func (r *EventRouter) dispatchMouse(ev MouseEvent) bool {
	if r.dragActive {
		return r.continueDrag(ev)
	}

	el, ok := r.HitTest(ev.Position)
	if !ok {
		if ev.Kind == MousePress && ev.Button == ButtonLeft {
			r.focus.Blur()
		}
		return false
	}

	if ev.Kind == MousePress && ev.Button == ButtonLeft && el.Focusable() {
		r.focus.Focus(el.ID())
	}

	if ev.Kind == MousePress && el.DragHandler() != nil {
		r.dragging = el
		r.dragStart = ev.Position
		r.dragLast = ev.Position
		r.dragActive = true
	}

	handler := el.MouseHandler()
	if handler == nil {
		return r.dragActive
	}
	return handler(ev) || r.dragActive
}

func (r *EventRouter) continueDrag(ev MouseEvent) bool {
	handler := r.dragging.DragHandler()
	delta := Position{X: ev.Position.X - r.dragLast.X, Y: ev.Position.Y - r.dragLast.Y}
	r.dragLast = ev.Position
	released := ev.Kind == MouseRelease
	handled := false
	if handler != nil {
		handled = handler(ev.Position, delta, released)
	}
	if released {
		r.dragActive = false
		r.dragging = nil
	}
	return handled
}

// cancelDrag delivers a release to the in-progress drag's handler at
// the (-1, -1) sentinel position, signaling the drag ended without a
// real pointer release.
func (r *EventRouter) cancelDrag() {
	handler := r.dragging.DragHandler()
	if handler != nil {
		sentinel := Position{X: -1, Y: -1}
		handler(sentinel, Position{}, true)
	}
	r.dragActive = false
	r.dragging = nil
}
