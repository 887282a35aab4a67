package tui

// visibleWindow returns the half-open row range [start, end) to render for a
// list of n items in a viewport of the given height. The cursor is kept
// vertically centered when possible; the window never starts below 0 or
// extends past n. Callers recompute this on every render because the
// viewport height changes with the terminal.
func visibleWindow(height, cursor, n int) (start, end int) {
	if height <= 0 || n <= 0 {
		return 0, 0
	}
	if n <= height {
		return 0, n
	}
	start = cursor - height/2
	if max := n - height; start > max {
		start = max
	}
	if start < 0 {
		start = 0
	}
	end = start + height
	if end > n {
		end = n
	}
	return start, end
}

// clampCursor keeps a cursor index within [0, n-1], collapsing to 0 for an
// empty list.
func clampCursor(cursor, n int) int {
	if n <= 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
