// Package zoom holds the pinch, double-tap and pan state of the reader.
//
// The live scale is base × pinch: a pinch in progress only moves the pinch
// factor, and ending it folds the factor into base within [MinScale, MaxScale].
package zoom

const (
	MinScale       = 0.8
	MaxScale       = 3.0
	DoubleTapScale = 2.0
)

// Kind identifies a gesture.
type Kind int

const (
	Pinch Kind = iota
	Pan
	DoubleTap
)

// State is the lifecycle phase a gesture reports in OnStateChange.
type State int

const (
	Began State = iota
	Active
	Ended
	Cancelled
)

// Event carries gesture data. Scale is used by Pinch, DX and DY by Pan.
type Event struct {
	Kind  Kind
	State State
	Scale float64
	DX    int
	DY    int
}

type Controller struct {
	base  float64
	pinch float64
	tx    int
	ty    int
}

func New() *Controller {
	return &Controller{base: 1, pinch: 1}
}

// NewWithScale restores a committed scale, clamped.
func NewWithScale(scale float64) *Controller {
	c := New()
	c.base = clamp(scale)
	return c
}

// Scale is the scale to draw with, including any pinch in progress.
func (c *Controller) Scale() float64 {
	return c.base * c.pinch
}

// Committed is the scale without the live pinch factor.
func (c *Controller) Committed() float64 {
	return c.base
}

func (c *Controller) Translate() (x, y int) {
	return c.tx, c.ty
}

// Zoomed reports whether panning is currently allowed.
func (c *Controller) Zoomed() bool {
	return c.base > 1
}

// OnGestureEvent applies continuous gesture updates.
func (c *Controller) OnGestureEvent(e Event) {
	switch e.Kind {
	case Pinch:
		if e.Scale > 0 {
			c.pinch = e.Scale
		}
	case Pan:
		if !c.Zoomed() {
			return
		}
		c.tx = e.DX
		c.ty = e.DY
	}
}

// OnStateChange applies gesture transitions.
func (c *Controller) OnStateChange(e Event) {
	switch e.Kind {
	case Pinch:
		switch e.State {
		case Ended:
			scale := e.Scale
			if scale <= 0 {
				scale = c.pinch
			}
			c.base = clamp(c.base * scale)
			c.pinch = 1
		case Cancelled:
			c.pinch = 1
		}
	case DoubleTap:
		if e.State != Active {
			return
		}
		if c.base > 1 {
			c.base = 1
		} else {
			c.base = DoubleTapScale
		}
		c.pinch = 1
	}
	if !c.Zoomed() {
		c.tx, c.ty = 0, 0
	}
}

// PinchBy runs a complete pinch of the given factor.
func (c *Controller) PinchBy(factor float64) {
	c.OnStateChange(Event{Kind: Pinch, State: Began})
	c.OnGestureEvent(Event{Kind: Pinch, State: Active, Scale: factor})
	c.OnStateChange(Event{Kind: Pinch, State: Ended, Scale: factor})
}

// PanBy moves the translation by a delta.
func (c *Controller) PanBy(dx, dy int) {
	c.OnGestureEvent(Event{Kind: Pan, State: Active, DX: c.tx + dx, DY: c.ty + dy})
}

func (c *Controller) DoubleTap() {
	c.OnStateChange(Event{Kind: DoubleTap, State: Active})
}

// Reset returns to scale 1 with no translation.
func (c *Controller) Reset() {
	*c = *New()
}

func clamp(s float64) float64 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}
