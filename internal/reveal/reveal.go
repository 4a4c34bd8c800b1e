// Package reveal tracks one-shot visibility reveals for page sections.
package reveal

// Trigger flips from hidden to revealed the first time it observes a
// visible signal. It never reverts.
type Trigger struct {
	revealed bool
}

// Observe feeds one visibility signal and reports whether it caused the
// reveal.
func (t *Trigger) Observe(visible bool) bool {
	if t.revealed || !visible {
		return false
	}
	t.revealed = true
	return true
}

// Revealed reports the trigger state.
func (t *Trigger) Revealed() bool {
	return t.revealed
}

// Set is a keyed collection of triggers, one per section.
type Set struct {
	order    []string
	triggers map[string]*Trigger
	onReveal func(id string)
}

// NewSet creates a set with a trigger for each id.
func NewSet(ids ...string) *Set {
	s := &Set{triggers: make(map[string]*Trigger, len(ids))}
	for _, id := range ids {
		s.Track(id)
	}
	return s
}

// Track adds a trigger for id if it is not already tracked.
func (s *Set) Track(id string) {
	if _, ok := s.triggers[id]; ok {
		return
	}
	s.order = append(s.order, id)
	s.triggers[id] = &Trigger{}
}

// OnReveal registers fn to run once per section when it is revealed.
func (s *Set) OnReveal(fn func(id string)) {
	s.onReveal = fn
}

// Observe feeds a visibility signal for id. Unknown ids are ignored.
func (s *Set) Observe(id string, visible bool) bool {
	t, ok := s.triggers[id]
	if !ok {
		return false
	}
	if !t.Observe(visible) {
		return false
	}
	if s.onReveal != nil {
		s.onReveal(id)
	}
	return true
}

// Revealed reports whether id has been revealed.
func (s *Set) Revealed(id string) bool {
	t, ok := s.triggers[id]
	return ok && t.Revealed()
}

// Pending returns the ids not yet revealed, in tracking order.
func (s *Set) Pending() []string {
	var out []string
	for _, id := range s.order {
		if !s.triggers[id].Revealed() {
			out = append(out, id)
		}
	}
	return out
}
