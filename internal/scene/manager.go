package scene

// Manager owns the active scene, the pending one and the stash slot.
type Manager struct {
	active    Scene
	next      Scene
	last      Scene
	firstLoop bool
}

// NewManager creates a manager that will set up boot on its first tick.
func NewManager(boot Scene) *Manager {
	return &Manager{active: boot, firstLoop: true}
}

// Resolve performs the deferred work that must happen before anything
// else in a tick: the boot scene's Setup on the first call, then any
// pending transition. The outgoing scene is torn down and stashed before
// the incoming one is set up.
func (m *Manager) Resolve(args *TickArgs) {
	if m.firstLoop {
		m.firstLoop = false
		m.active.Setup(args)
	}
	if m.next == nil {
		return
	}
	old := m.active
	m.active, m.next = m.next, nil
	old.Teardown(args)
	m.last = old
	m.active.Setup(args)
}

// Tick resolves pending work, ticks the active scene and queues whatever
// it asks for.
func (m *Manager) Tick(args *TickArgs) {
	m.Resolve(args)
	if out := m.active.Tick(args); out.Next != nil {
		m.next = out.Next
	}
}

// SetNext queues s for the start of the next tick, replacing any
// transition already queued.
func (m *Manager) SetNext(s Scene) {
	m.next = s
}

// Render draws the active scene.
func (m *Manager) Render(dst Surface, args *RenderArgs) {
	m.active.Render(dst, args)
}

// Active returns the active scene.
func (m *Manager) Active() Scene {
	return m.active
}

// Pending returns the queued scene, if any.
func (m *Manager) Pending() Scene {
	return m.next
}

// Stashed returns the scene in the stash slot, if any.
func (m *Manager) Stashed() Scene {
	return m.last
}

// Reset discards all scene state and boots s on the next tick. Scene state
// is transient, so nothing is torn down.
func (m *Manager) Reset(s Scene) {
	*m = Manager{active: s, firstLoop: true}
}
