package selector

// clickCapture tracks the application-level press listener that detects
// clicks landing outside an open dropdown. Attach and detach counts are
// recorded so the pairing contract stays checkable: exactly one attach per
// open, one detach per close, and never attached while closed.
type clickCapture struct {
	attached bool
	attaches int
	detaches int
}

// attach installs the capture. A second attach without an intervening
// detach counts nothing.
func (c *clickCapture) attach() {
	if c.attached {
		return
	}
	c.attached = true
	c.attaches++
}

// detach removes the capture if present.
func (c *clickCapture) detach() {
	if !c.attached {
		return
	}
	c.attached = false
	c.detaches++
}

// rect is a screen-space rectangle used for the boundary-membership test
// that decides whether a press landed inside the widget.
type rect struct {
	x, y, width, height int
}

// contains reports whether the cell at (px, py) lies inside the rectangle.
// The zero rectangle contains nothing.
func (r rect) contains(px, py int) bool {
	return px >= r.x && px < r.x+r.width && py >= r.y && py < r.y+r.height
}
