package common

import (
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventQueueDrainOrder(t *testing.T) {
	var q EventQueue
	assert.Nil(t, q.Drain())

	q.Push(InputEvent{Kind: EventPointerMove, NDC: mgl32.Vec2{0.5, -0.5}})
	q.Push(InputEvent{Kind: EventPointerDown, Button: MouseRight})
	q.Push(InputEvent{Kind: EventResize, Width: 640, Height: 480})
	assert.Equal(t, 3, q.Len())

	events := q.Drain()
	require.Len(t, events, 3)
	assert.Equal(t, EventPointerMove, events[0].Kind)
	assert.Equal(t, MouseRight, events[1].Button)
	assert.Equal(t, 640, events[2].Width)
	assert.Equal(t, 0, q.Len())
	assert.Nil(t, q.Drain())
}

func TestEventQueueConcurrentPush(t *testing.T) {
	var q EventQueue
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				q.Push(InputEvent{Kind: EventScroll, Delta: 1})
			}
		}()
	}
	wg.Wait()
	assert.Len(t, q.Drain(), 800)
}
