package tui

// FocusManager tracks an ordered set of focusable element ids and which
// one currently holds focus. Order is registration order, which the
// router repopulates once per render from the elements it walks — so
// focus order follows the tree's depth-first layout order, not
// insertion history across frames.
type FocusManager struct {
	order          []string
	current        int // index into order, -1 if nothing is focused
	pendingRestore string
	gained         func(id string)
	lost           func(id string)
}

// NewFocusManager returns a manager with nothing registered and no
// focus held.
func NewFocusManager() *FocusManager {
	return &FocusManager{current: -1}
}

// OnGained sets the callback invoked when an id gains focus.
func (m *FocusManager) OnGained(f func(id string)) { m.gained = f }

// OnLost sets the callback invoked when an id loses focus.
func (m *FocusManager) OnLost(f func(id string)) { m.lost = f }

// Reset clears the registered order ahead of a new render pass. The
// currently focused id, if still re-registered via Register before the
// pass ends, keeps focus; if it is not re-registered (the element
// disappeared from the tree) focus is dropped.
func (m *FocusManager) Reset() {
	var focusedID string
	if m.current >= 0 && m.current < len(m.order) {
		focusedID = m.order[m.current]
	}
	m.order = m.order[:0]
	m.current = -1
	if focusedID != "" {
		m.pendingRestore = focusedID
	}
}

// Register adds id to this render's focus order, in the order elements
// are walked. If id matches the focus pending restore from before
// Reset, it regains focus silently: neither the gained nor the lost
// callback fires, since focus stayed on the same id.
func (m *FocusManager) Register(id string) {
	m.order = append(m.order, id)
	if id == m.pendingRestore {
		m.current = len(m.order) - 1
		m.pendingRestore = ""
	}
}

// Current returns the id holding focus, or "" if none does.
func (m *FocusManager) Current() string {
	if m.current < 0 || m.current >= len(m.order) {
		return ""
	}
	return m.order[m.current]
}

// Next moves focus to the next registered id, wrapping from the last
// back to the first. Applying Next len(order) times returns focus to
// its starting id.
func (m *FocusManager) Next() {
	if len(m.order) == 0 {
		return
	}
	m.move((m.current + 1) % len(m.order))
}

// Previous moves focus to the previous registered id, wrapping from the
// first back to the last.
func (m *FocusManager) Previous() {
	if len(m.order) == 0 {
		return
	}
	next := m.current - 1
	if next < 0 {
		next = len(m.order) - 1
	}
	m.move(next)
}

// First moves focus to the first registered id.
func (m *FocusManager) First() {
	if len(m.order) == 0 {
		return
	}
	m.move(0)
}

// Last moves focus to the last registered id.
func (m *FocusManager) Last() {
	if len(m.order) == 0 {
		return
	}
	m.move(len(m.order) - 1)
}

// Focus moves focus directly to id if it is registered, returning
// whether it was found.
func (m *FocusManager) Focus(id string) bool {
	for i, candidate := range m.order {
		if candidate == id {
			m.move(i)
			return true
		}
	}
	return false
}

// Blur clears focus entirely, firing the lost callback if something
// was focused.
func (m *FocusManager) Blur() {
	if m.current < 0 {
		return
	}
	lostID := m.order[m.current]
	m.current = -1
	if m.lost != nil {
		m.lost(lostID)
	}
}

func (m *FocusManager) move(to int) {
	if to == m.current {
		return
	}
	if m.current >= 0 && m.current < len(m.order) && m.lost != nil {
		m.lost(m.order[m.current])
	}
	m.current = to
	if m.gained != nil {
		m.gained(m.order[m.current])
	}
}
