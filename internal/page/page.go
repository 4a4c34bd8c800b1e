// Package page models the scrollable page that sits over the scene: a
// welcome header followed by stacked project sections.
package page

// Side is the column a section is aligned to.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Section is one project block on the page.
type Section struct {
	ID     string  `yaml:"id" toml:"id"`
	Title  string  `yaml:"title" toml:"title"`
	Side   Side    `yaml:"side" toml:"side"`
	Height float32 `yaml:"height" toml:"height"`
}

// Config describes the page geometry in pixels.
type Config struct {
	ViewportHeight float32 `yaml:"viewport_height" toml:"viewport_height"`
	// HeaderHeight defaults to one viewport.
	HeaderHeight float32   `yaml:"header_height" toml:"header_height"`
	Gap          float32   `yaml:"gap" toml:"gap"`
	Sections     []Section `yaml:"sections" toml:"sections"`
}

// Placement is a section positioned relative to the viewport top.
type Placement struct {
	Section Section
	Top     float32
}

// Visibility is one section's visibility snapshot.
type Visibility struct {
	ID      string
	Visible bool
}

// Page holds the scroll offset and the section layout.
//
// Offset follows the scene convention: it is the page top relative to the
// viewport top, zero at rest and negative once scrolled down.
type Page struct {
	cfg    Config
	tops   []float32
	index  map[string]int
	offset float32
	locked bool
	// headerAuto keeps the header one viewport tall across resizes.
	headerAuto bool
}

// New creates a page scrolled to the top with scrolling locked.
func New(cfg Config) *Page {
	p := &Page{
		cfg:        cfg,
		index:      make(map[string]int, len(cfg.Sections)),
		locked:     true,
		headerAuto: cfg.HeaderHeight <= 0,
	}
	for i, s := range cfg.Sections {
		p.index[s.ID] = i
	}
	p.layout()
	return p
}

func (p *Page) layout() {
	if p.headerAuto {
		p.cfg.HeaderHeight = p.cfg.ViewportHeight
	}
	p.tops = p.tops[:0]
	y := p.cfg.HeaderHeight
	for _, s := range p.cfg.Sections {
		p.tops = append(p.tops, y)
		y += s.Height + p.cfg.Gap
	}
}

// Sections returns the configured sections.
func (p *Page) Sections() []Section {
	return p.cfg.Sections
}

// Offset returns the current scroll offset.
func (p *Page) Offset() float32 {
	return p.offset
}

// Locked reports whether scrolling is suppressed.
func (p *Page) Locked() bool {
	return p.locked
}

// Unlock enables scrolling.
func (p *Page) Unlock() {
	p.locked = false
}

// ContentHeight is the total page height.
func (p *Page) ContentHeight() float32 {
	h := p.cfg.HeaderHeight
	for _, s := range p.cfg.Sections {
		h += s.Height + p.cfg.Gap
	}
	return h
}

// MinOffset is the most negative reachable offset.
func (p *Page) MinOffset() float32 {
	over := p.ContentHeight() - p.cfg.ViewportHeight
	if over <= 0 {
		return 0
	}
	return -over
}

// ScrollBy moves the offset by delta and reports whether it changed.
// Negative delta scrolls down. Locked pages do not move.
func (p *Page) ScrollBy(delta float32) bool {
	if p.locked {
		return false
	}
	return p.setOffset(p.offset + delta)
}

// ScrollTo sets the offset directly, ignoring the lock.
func (p *Page) ScrollTo(offset float32) bool {
	return p.setOffset(offset)
}

func (p *Page) setOffset(offset float32) bool {
	if lo := p.MinOffset(); offset < lo {
		offset = lo
	}
	if offset > 0 {
		offset = 0
	}
	if offset == p.offset {
		return false
	}
	p.offset = offset
	return true
}

// Resize changes the viewport height and re-clamps the offset. A header
// without a configured height follows the viewport.
func (p *Page) Resize(viewportHeight float32) {
	p.cfg.ViewportHeight = viewportHeight
	p.layout()
	p.setOffset(p.offset)
}

// Visible reports whether any part of the section is inside the viewport.
func (p *Page) Visible(id string) bool {
	i, ok := p.index[id]
	if !ok {
		return false
	}
	return p.visibleAt(i)
}

func (p *Page) visibleAt(i int) bool {
	top := p.tops[i] + p.offset
	bottom := top + p.cfg.Sections[i].Height
	return top < p.cfg.ViewportHeight && bottom > 0
}

// Visibility returns a snapshot of every section.
func (p *Page) Visibility() []Visibility {
	out := make([]Visibility, len(p.cfg.Sections))
	for i, s := range p.cfg.Sections {
		out[i] = Visibility{ID: s.ID, Visible: p.visibleAt(i)}
	}
	return out
}

// Layout returns every section positioned relative to the viewport top.
func (p *Page) Layout() []Placement {
	out := make([]Placement, len(p.cfg.Sections))
	for i, s := range p.cfg.Sections {
		out[i] = Placement{Section: s, Top: p.tops[i] + p.offset}
	}
	return out
}

// HeaderTop returns the header's top relative to the viewport.
func (p *Page) HeaderTop() float32 {
	return p.offset
}

// HeaderHeight returns the header height.
func (p *Page) HeaderHeight() float32 {
	return p.cfg.HeaderHeight
}
