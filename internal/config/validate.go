package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/planetfolio/internal/spring"
)

// Validate reports every setting that would leave the scene unusable.
func (c *Config) Validate() error {
	var errs []error

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.FOV <= 0 || c.Graphics.FOV >= 180 {
		errs = append(errs, fmt.Errorf("graphics: fov %v out of range (0, 180)", c.Graphics.FOV))
	}

	in := c.Scene.Intro
	for name, ch := range map[string]float32{
		"camera_y":    in.CameraY.Rate,
		"camera_z":    in.CameraZ.Rate,
		"primary_yaw": in.PrimaryYaw.Rate,
	} {
		if ch <= 0 {
			errs = append(errs, fmt.Errorf("scene.intro.%s: rate must be positive", name))
		}
	}
	if in.Tolerance <= 0 {
		errs = append(errs, errors.New("scene.intro.tolerance must be positive"))
	}

	ids := make(map[string]bool, len(c.Scene.Bodies))
	for i, b := range c.Scene.Bodies {
		if b.ID == "" {
			errs = append(errs, fmt.Errorf("scene.bodies[%d]: missing id", i))
			continue
		}
		if ids[b.ID] {
			errs = append(errs, fmt.Errorf("scene.bodies[%d]: duplicate id %q", i, b.ID))
		}
		ids[b.ID] = true
		switch b.Shape {
		case "cube", "sphere", "torus":
		default:
			errs = append(errs, fmt.Errorf("scene.bodies[%d]: unknown shape %q", i, b.Shape))
		}
	}
	if c.Scene.Primary != "" && !ids[c.Scene.Primary] {
		errs = append(errs, fmt.Errorf("scene.primary: no body %q", c.Scene.Primary))
	}
	for i, b := range c.Scene.Scroll.Bodies {
		if !ids[b.ID] {
			errs = append(errs, fmt.Errorf("scene.scroll.bodies[%d]: no body %q", i, b.ID))
		}
	}

	if a := c.Scene.Light.Ambient; a < 0 || a > 1 {
		errs = append(errs, fmt.Errorf("scene.light.ambient %v out of range [0, 1]", a))
	}
	if c.Scene.Stars.Count < 0 {
		errs = append(errs, errors.New("scene.stars.count must not be negative"))
	}

	seen := make(map[string]bool, len(c.Page.Layout.Sections))
	for i, s := range c.Page.Layout.Sections {
		if s.ID == "" || seen[s.ID] {
			errs = append(errs, fmt.Errorf("page.layout.sections[%d]: missing or duplicate id %q", i, s.ID))
		}
		seen[s.ID] = true
		if s.Height <= 0 {
			errs = append(errs, fmt.Errorf("page.layout.sections[%d]: height must be positive", i))
		}
	}
	if _, ok := spring.Preset(c.Page.RevealSpring); !ok {
		errs = append(errs, fmt.Errorf("page.reveal_spring: unknown preset %q", c.Page.RevealSpring))
	}
	if _, ok := spring.Preset(c.Page.HeaderSpring); !ok {
		errs = append(errs, fmt.Errorf("page.header_spring: unknown preset %q", c.Page.HeaderSpring))
	}

	return errors.Join(errs...)
}
