package scene

import (
	"github.com/Faultbox/planetfolio/internal/spring"
)

// Sections holds the entrance animation of every page section. It is the
// director's animator: a reveal sets the section's spring target.
type Sections struct {
	delay   float64
	reveals map[string]*spring.Reveal
}

// NewSections creates hidden animations for ids.
func NewSections(cfg spring.Config, delay float64, ids ...string) *Sections {
	s := &Sections{
		delay:   delay,
		reveals: make(map[string]*spring.Reveal, len(ids)),
	}
	for _, id := range ids {
		s.reveals[id] = spring.NewReveal(cfg)
	}
	return s
}

// Reveal starts the entrance of section after the configured delay.
func (s *Sections) Reveal(section string) {
	if r, ok := s.reveals[section]; ok {
		r.Show(s.delay)
	}
}

// Advance steps every animation by dt seconds.
func (s *Sections) Advance(dt float64) {
	for _, r := range s.reveals {
		if r.AtRest() {
			continue
		}
		r.Advance(dt)
	}
}

// Values returns the scale and opacity of section. Unknown sections are
// hidden.
func (s *Sections) Values(section string) (scale, opacity float32) {
	r, ok := s.reveals[section]
	if !ok {
		return 0, 0
	}
	return r.Values()
}
