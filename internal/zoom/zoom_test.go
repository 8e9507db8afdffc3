package zoom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestController_PinchCommitsOnEnd(t *testing.T) {
	c := New()

	c.OnGestureEvent(Event{Kind: Pinch, State: Active, Scale: 1.5})
	assert.InDelta(t, 1.5, c.Scale(), 1e-9)
	assert.InDelta(t, 1.0, c.Committed(), 1e-9)

	c.OnStateChange(Event{Kind: Pinch, State: Ended, Scale: 1.5})
	assert.InDelta(t, 1.5, c.Scale(), 1e-9)
	assert.InDelta(t, 1.5, c.Committed(), 1e-9)
}

func TestController_PinchClamps(t *testing.T) {
	c := New()

	c.PinchBy(10)
	assert.InDelta(t, MaxScale, c.Scale(), 1e-9)

	c.PinchBy(0.01)
	assert.InDelta(t, MinScale, c.Scale(), 1e-9)
}

func TestController_CancelledPinchRestores(t *testing.T) {
	c := New()

	c.OnGestureEvent(Event{Kind: Pinch, State: Active, Scale: 2})
	c.OnStateChange(Event{Kind: Pinch, State: Cancelled})

	assert.InDelta(t, 1.0, c.Scale(), 1e-9)
}

func TestController_DoubleTapToggles(t *testing.T) {
	c := New()

	c.DoubleTap()
	assert.InDelta(t, DoubleTapScale, c.Scale(), 1e-9)

	c.DoubleTap()
	assert.InDelta(t, 1.0, c.Scale(), 1e-9)

	// from below 1 a double tap zooms in
	c.PinchBy(0.8)
	c.DoubleTap()
	assert.InDelta(t, DoubleTapScale, c.Scale(), 1e-9)
}

func TestController_PanOnlyWhenZoomed(t *testing.T) {
	c := New()

	c.PanBy(4, 2)
	x, y := c.Translate()
	assert.Zero(t, x)
	assert.Zero(t, y)

	c.DoubleTap()
	c.PanBy(4, 2)
	c.PanBy(1, 0)
	x, y = c.Translate()
	assert.Equal(t, 5, x)
	assert.Equal(t, 2, y)

	// zooming back out recentres
	c.DoubleTap()
	x, y = c.Translate()
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestNewWithScale(t *testing.T) {
	assert.InDelta(t, 1.5, NewWithScale(1.5).Scale(), 1e-9)
	assert.InDelta(t, MaxScale, NewWithScale(7).Scale(), 1e-9)
	assert.InDelta(t, MinScale, NewWithScale(0).Scale(), 1e-9)
}
