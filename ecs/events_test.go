package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventChannelBroadcast(t *testing.T) {
	c := NewEventChannel[int]()
	a := c.RegisterReader()
	b := c.RegisterReader()

	c.Write(1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, c.Read(a))
	assert.Empty(t, c.Read(a), "events are seen once per reader")

	c.Write(4)
	assert.Equal(t, []int{1, 2, 3, 4}, c.Read(b), "a slow reader still sees everything")
	assert.Equal(t, []int{4}, c.Read(a))
	assert.Zero(t, c.Len(), "fully consumed events are dropped")
}

func TestEventChannelReaderStartsAtEnd(t *testing.T) {
	c := NewEventChannel[string]()
	early := c.RegisterReader()
	c.Write("before")

	late := c.RegisterReader()
	c.Write("after")

	assert.Equal(t, []string{"before", "after"}, c.Read(early))
	assert.Equal(t, []string{"after"}, c.Read(late))
}

func TestEventChannelRetainsForSkippedFrames(t *testing.T) {
	c := NewEventChannel[int]()
	fast := c.RegisterReader()
	slow := c.RegisterReader()

	for frame := 0; frame < 3; frame++ {
		c.Write(frame)
		require.Equal(t, []int{frame}, c.Read(fast))
	}
	assert.Equal(t, 3, c.Pending(slow))
	assert.Equal(t, []int{0, 1, 2}, c.Read(slow))
}

func TestEventChannelRemoveReader(t *testing.T) {
	c := NewEventChannel[int]()
	a := c.RegisterReader()
	b := c.RegisterReader()

	c.Write(1)
	c.RemoveReader(b)
	assert.Nil(t, c.Read(b))
	assert.Equal(t, []int{1}, c.Read(a))

	c.RemoveReader(a)
	c.Write(2)
	assert.Zero(t, c.Len(), "no readers, nothing retained")

	r := c.RegisterReader()
	c.Write(3)
	assert.Equal(t, []int{3}, c.Read(r))
}

func TestWorldEvents(t *testing.T) {
	w := NewWorld()
	r := w.Events().RegisterReader()
	w.Events().Write(WindowFocusChanged{Focused: true}, DeviceMotion{DX: 1, DY: -1})

	assert.Equal(t, []Event{WindowFocusChanged{Focused: true}, DeviceMotion{DX: 1, DY: -1}}, w.Events().Read(r))
}
