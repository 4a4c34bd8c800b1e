// Package scene assembles the controller, the page and the animations into
// one frame-driven unit. It holds no GPU state; the app renders what it
// exposes.
package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/planetfolio/internal/config"
	"github.com/Faultbox/planetfolio/internal/director"
	"github.com/Faultbox/planetfolio/internal/intro"
	"github.com/Faultbox/planetfolio/internal/logger"
	"github.com/Faultbox/planetfolio/internal/page"
	"github.com/Faultbox/planetfolio/internal/reveal"
	"github.com/Faultbox/planetfolio/internal/rig"
	"github.com/Faultbox/planetfolio/internal/scrollmap"
	"github.com/Faultbox/planetfolio/internal/spring"
	"github.com/Faultbox/planetfolio/pkg/math"
)

// Panel is one page element in window pixels, origin top-left.
type Panel struct {
	ID         string
	X, Y, W, H float32
	Scale      float32
	Color      [4]float32
}

// Scene is the running portfolio scene.
type Scene struct {
	rig      *rig.Rig
	page     *page.Page
	director *director.Director
	sections *Sections
	header   *spring.Reveal

	bodies   map[string]config.BodyConfig
	textures []string
	onOrbit  func()
}

type hooks struct {
	s *Scene
}

func (h hooks) EnableScroll() {
	h.s.page.Unlock()
}

func (h hooks) EnableOrbit() {
	if h.s.onOrbit != nil {
		h.s.onOrbit()
	}
}

// New builds a scene from cfg. Untextured bodies are attached immediately;
// textured ones wait for AttachTextures. onOrbit is called once when the
// intro ends and may be nil.
func New(cfg *config.Config, onOrbit func()) *Scene {
	sc := cfg.Scene
	s := &Scene{
		page:    page.New(cfg.Page.Layout),
		bodies:  make(map[string]config.BodyConfig, len(sc.Bodies)),
		onOrbit: onOrbit,
	}

	s.rig = rig.New(rig.Camera{
		Position: math.Vec3{X: sc.CameraX},
		Target:   vec3(sc.Target),
	})
	seen := make(map[string]bool)
	for _, b := range sc.Bodies {
		s.rig.Declare(b.ID)
		s.bodies[b.ID] = b
		if b.Texture == "" {
			s.rig.Attach(newBody(b, 0))
			continue
		}
		if !seen[b.Texture] {
			seen[b.Texture] = true
			s.textures = append(s.textures, b.Texture)
		}
	}

	ids := make([]string, 0, len(cfg.Page.Layout.Sections))
	for _, sec := range cfg.Page.Layout.Sections {
		ids = append(ids, sec.ID)
	}
	s.sections = NewSections(preset("reveal", cfg.Page.RevealSpring), cfg.Page.RevealDelay, ids...)

	s.header = spring.NewReveal(preset("header", cfg.Page.HeaderSpring))
	s.header.Show(cfg.Page.HeaderDelay)

	s.director = director.New(
		director.Config{Primary: sc.Primary},
		s.rig,
		intro.NewSequencer(sc.Intro),
		scrollmap.New(sc.Scroll),
		reveal.NewSet(ids...),
		hooks{s: s},
		s.sections,
	)

	logger.Debug("scene built",
		zap.Int("bodies", len(sc.Bodies)),
		zap.Strings("pending", s.rig.Pending()),
		zap.Int("sections", len(ids)),
	)
	return s
}

// preset resolves a spring preset name, falling back to the default one.
func preset(use, name string) spring.Config {
	cfg, ok := spring.Preset(name)
	if !ok {
		logger.Warn("unknown spring preset, using default",
			zap.String("use", use),
			zap.String("preset", name),
		)
		return spring.Default
	}
	return cfg
}

func newBody(b config.BodyConfig, tex uint32) *rig.Body {
	return &rig.Body{
		ID:       b.ID,
		Shape:    b.Shape,
		Position: vec3(b.Position),
		Scale:    b.Scale,
		Color:    b.Color,
		Texture:  tex,
	}
}

func vec3(v [3]float32) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// Rig returns the scene rig.
func (s *Scene) Rig() *rig.Rig {
	return s.rig
}

// Page returns the page model.
func (s *Scene) Page() *page.Page {
	return s.page
}

// Phase returns the controller phase.
func (s *Scene) Phase() intro.Phase {
	return s.director.Phase()
}

// TextureNames lists the body textures still to be loaded.
func (s *Scene) TextureNames() []string {
	return s.textures
}

// AttachTextures attaches every pending textured body. Bodies whose texture
// is absent from loaded are attached untextured. It returns the number of
// bodies attached.
func (s *Scene) AttachTextures(loaded map[string]uint32) int {
	n := 0
	for _, id := range s.rig.Pending() {
		b, ok := s.bodies[id]
		if !ok {
			continue
		}
		tex := loaded[b.Texture]
		if tex == 0 {
			logger.Warn("body texture missing, drawing untextured",
				zap.String("body", id),
				zap.String("texture", b.Texture),
			)
		}
		s.rig.Attach(newBody(b, tex))
		n++
	}
	if n > 0 {
		s.director.Resync()
		logger.Info("bodies attached", zap.Int("count", n))
	}
	return n
}

// Frame advances the scene to elapsed seconds, dt after the previous frame.
func (s *Scene) Frame(elapsed, dt float64) director.State {
	st := s.director.Handle(director.FrameEvent{Elapsed: elapsed, Delta: dt})
	if st.Entered {
		s.syncVisibility()
	}
	s.sections.Advance(dt)
	s.header.Advance(dt)
	return st
}

// SkipIntro ends the intro immediately.
func (s *Scene) SkipIntro() {
	if s.director.SkipIntro().Entered {
		s.syncVisibility()
	}
}

// Scroll moves the page by delta pixels (negative scrolls down) and reports
// whether the offset changed. It does nothing while the page is locked.
func (s *Scene) Scroll(delta float32) bool {
	if !s.page.ScrollBy(delta) {
		return false
	}
	s.director.Handle(director.ScrollEvent{Offset: s.page.Offset()})
	s.syncVisibility()
	return true
}

// ScrollTo jumps the page to offset, clamped to the page. Like Scroll it
// does nothing while the page is locked.
func (s *Scene) ScrollTo(offset float32) bool {
	if s.page.Locked() || !s.page.ScrollTo(offset) {
		return false
	}
	s.director.Handle(director.ScrollEvent{Offset: s.page.Offset()})
	s.syncVisibility()
	return true
}

// Resize changes the viewport height.
func (s *Scene) Resize(viewportHeight float32) {
	s.page.Resize(viewportHeight)
	if s.page.Locked() {
		return
	}
	s.director.Handle(director.ScrollEvent{Offset: s.page.Offset()})
	s.syncVisibility()
}

// SetScroll replaces the scroll coefficients.
func (s *Scene) SetScroll(cfg scrollmap.Config) {
	s.director.SetMapper(scrollmap.New(cfg))
}

func (s *Scene) syncVisibility() {
	for _, v := range s.page.Visibility() {
		s.director.Handle(director.VisibilityEvent{Section: v.ID, Visible: v.Visible})
	}
}

var (
	headerColor = [3]float32{0.08, 0.1, 0.2}
	leftColor   = [3]float32{0.12, 0.2, 0.35}
	rightColor  = [3]float32{0.3, 0.12, 0.3}
)

const panelAlpha = 0.75

// Panels lays out the header and the sections for a window width. Hidden
// elements are returned with zero opacity.
func (s *Scene) Panels(width float32) []Panel {
	out := make([]Panel, 0, len(s.page.Sections())+1)

	scale, opacity := s.header.Values()
	hh := s.page.HeaderHeight()
	out = append(out, Panel{
		ID:    "header",
		X:     width * 0.2,
		Y:     s.page.HeaderTop() + hh*0.35,
		W:     width * 0.6,
		H:     hh * 0.3,
		Scale: scale,
		Color: rgba(headerColor, opacity*panelAlpha),
	})

	for _, pl := range s.page.Layout() {
		scale, opacity := s.sections.Values(pl.Section.ID)
		x, c := width*0.05, leftColor
		if pl.Section.Side == page.SideRight {
			x, c = width*0.5, rightColor
		}
		out = append(out, Panel{
			ID:    pl.Section.ID,
			X:     x,
			Y:     pl.Top,
			W:     width * 0.45,
			H:     pl.Section.Height,
			Scale: scale,
			Color: rgba(c, opacity*panelAlpha),
		})
	}
	return out
}

func rgba(c [3]float32, a float32) [4]float32 {
	return [4]float32{c[0], c[1], c[2], a}
}

// Stars returns the starfield for the configured seed.
func Stars(cfg config.StarsConfig) []math.Vec3 {
	return GenerateStars(cfg.Count, cfg.Spread, cfg.Seed)
}
