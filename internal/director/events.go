package director

// Event is a message delivered to the Director.
type Event interface {
	event()
}

// FrameEvent is sent once per rendered frame. Elapsed is seconds since the
// session started; Delta is seconds since the previous frame.
type FrameEvent struct {
	Elapsed float64
	Delta   float64
}

// ScrollEvent carries the page's current scroll offset.
type ScrollEvent struct {
	Offset float32
}

// VisibilityEvent reports whether a section intersects the viewport.
type VisibilityEvent struct {
	Section string
	Visible bool
}

func (FrameEvent) event()      {}
func (ScrollEvent) event()     {}
func (VisibilityEvent) event() {}
