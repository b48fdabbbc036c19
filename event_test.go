package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glbind/render"
)

func TestReduceQuit(t *testing.T) {
	out := render.Reduce([]render.Event{{Kind: render.EventQuit}})
	assert.True(t, out.Quit)
	assert.False(t, out.Resized)
}

func TestReduceEscapeQuits(t *testing.T) {
	out := render.Reduce([]render.Event{
		{Kind: render.EventKeyDown, Key: render.KeyEscape},
	})
	assert.True(t, out.Quit)
}

func TestReduceIgnoresOtherKeysAndEvents(t *testing.T) {
	out := render.Reduce([]render.Event{
		{Kind: render.EventKeyDown, Key: render.KeyNone},
		{Kind: render.EventOther},
	})
	assert.False(t, out.Quit)
	assert.False(t, out.Resized)
}

func TestReduceResize(t *testing.T) {
	out := render.Reduce([]render.Event{
		{Kind: render.EventWindowResized, Width: 800, Height: 600},
	})
	assert.True(t, out.Resized)
	assert.Equal(t, 800, out.Width)
	assert.Equal(t, 600, out.Height)
}

func TestReduceLastResizeWins(t *testing.T) {
	out := render.Reduce([]render.Event{
		{Kind: render.EventWindowResized, Width: 100, Height: 100},
		{Kind: render.EventWindowResized, Width: 800, Height: 600},
	})
	assert.Equal(t, 800, out.Width)
	assert.Equal(t, 600, out.Height)
}

func TestReduceQuitAndResizeTogether(t *testing.T) {
	// Both are reported; the loop applies the resize and then stops at the
	// iteration boundary rather than mid-draw.
	out := render.Reduce([]render.Event{
		{Kind: render.EventWindowResized, Width: 800, Height: 600},
		{Kind: render.EventQuit},
	})
	assert.True(t, out.Quit)
	assert.True(t, out.Resized)
}

func TestReduceEmpty(t *testing.T) {
	out := render.Reduce(nil)
	assert.False(t, out.Quit)
	assert.False(t, out.Resized)
}
