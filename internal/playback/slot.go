package playback

import "sync"

// Slot holds at most one handle at a time, such as the player of one
// screen. Showing new audio revokes the previous handle first.
type Slot struct {
	m *Manager

	mu      sync.Mutex
	current Handle
}

// NewSlot creates an empty Slot bound to m.
func (m *Manager) NewSlot() *Slot {
	return &Slot{m: m}
}

// Show revokes the slot's current handle and mints one for data.
func (s *Slot) Show(data []byte, mimeType string) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != "" {
		s.m.Revoke(s.current)
	}
	s.current = s.m.Mint(data, mimeType)
	return s.current
}

// Current returns the live handle of the slot, if any.
func (s *Slot) Current() (Handle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.current != ""
}

// Release revokes the slot's handle. Calling it on an empty slot is a no-op.
func (s *Slot) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != "" {
		s.m.Revoke(s.current)
		s.current = ""
	}
}
