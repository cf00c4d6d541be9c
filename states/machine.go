// Package states holds the "current state / next state" machines that drive
// map loading, level loading and the menu flow.
package states

// Hook runs when a machine enters or leaves a state.
type Hook[T comparable] func(state T)

// Machine holds a current state and at most one queued transition.
// Transitions are applied once per tick by Apply, so a state queued during a
// tick becomes visible on the next one.
type Machine[T comparable] struct {
	current T
	next    T
	pending bool

	onEnter map[T][]Hook[T]
	onExit  map[T][]Hook[T]
}

// NewMachine returns a machine sitting in initial. No enter hook runs for it.
func NewMachine[T comparable](initial T) *Machine[T] {
	return &Machine[T]{
		current: initial,
		onEnter: make(map[T][]Hook[T]),
		onExit:  make(map[T][]Hook[T]),
	}
}

func (m *Machine[T]) Current() T {
	return m.current
}

// Pending reports the queued state, if any.
func (m *Machine[T]) Pending() (T, bool) {
	return m.next, m.pending
}

// Set queues a transition. A later Set in the same tick replaces it.
func (m *Machine[T]) Set(next T) {
	m.next = next
	m.pending = true
}

func (m *Machine[T]) OnEnter(state T, h Hook[T]) {
	m.onEnter[state] = append(m.onEnter[state], h)
}

func (m *Machine[T]) OnExit(state T, h Hook[T]) {
	m.onExit[state] = append(m.onExit[state], h)
}

// Apply performs the queued transition: exit hooks of the old state, then
// enter hooks of the new one. Queuing the current state is a no-op.
// Hooks may queue another transition; it is applied on the next call.
// Apply reports whether the state changed.
func (m *Machine[T]) Apply() bool {
	if !m.pending {
		return false
	}
	next := m.next
	m.pending = false
	if next == m.current {
		return false
	}

	prev := m.current
	for _, h := range m.onExit[prev] {
		h(prev)
	}
	m.current = next
	for _, h := range m.onEnter[next] {
		h(next)
	}
	return true
}

// Reset forces the machine into state without running hooks and drops any
// queued transition.
func (m *Machine[T]) Reset(state T) {
	m.current = state
	m.pending = false
}
