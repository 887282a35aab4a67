package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibleWindow_CentersCursor(t *testing.T) {
	start, end := visibleWindow(10, 50, 200)
	assert.Equal(t, 45, start)
	assert.Equal(t, 55, end)
}

func TestVisibleWindow_ClampsAtTop(t *testing.T) {
	start, end := visibleWindow(10, 2, 200)
	assert.Equal(t, 0, start)
	assert.Equal(t, 10, end)
}

func TestVisibleWindow_ClampsAtBottom(t *testing.T) {
	start, end := visibleWindow(10, 198, 200)
	assert.Equal(t, 190, start)
	assert.Equal(t, 200, end)
}

func TestVisibleWindow_ShortList(t *testing.T) {
	start, end := visibleWindow(10, 3, 5)
	assert.Equal(t, 0, start)
	assert.Equal(t, 5, end)
}

func TestVisibleWindow_EmptyAndDegenerate(t *testing.T) {
	start, end := visibleWindow(10, 0, 0)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)

	start, end = visibleWindow(0, 5, 100)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestVisibleWindow_NeverExceedsBounds(t *testing.T) {
	for n := 0; n < 40; n++ {
		for h := 1; h < 15; h++ {
			for c := 0; c < n; c++ {
				start, end := visibleWindow(h, c, n)
				assert.GreaterOrEqual(t, start, 0)
				assert.LessOrEqual(t, end, n)
				if n >= h {
					assert.Equal(t, h, end-start)
					assert.GreaterOrEqual(t, c, start, "cursor above window")
					assert.Less(t, c, end, "cursor below window")
				}
			}
		}
	}
}

func TestClampCursor(t *testing.T) {
	assert.Equal(t, 0, clampCursor(-1, 10))
	assert.Equal(t, 9, clampCursor(10, 10))
	assert.Equal(t, 5, clampCursor(5, 10))
	assert.Equal(t, 0, clampCursor(3, 0))
}
