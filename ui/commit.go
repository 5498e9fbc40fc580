package ui

// CommitTracker turns per-frame widget edits into commit events.
// Edits made while the mouse button is held (slider drags) stay pending
// until the button is released; edits made without the button held commit
// on the same frame.
type CommitTracker struct {
	pending bool
}

// Observe records this frame's state and reports whether a commit fires.
func (c *CommitTracker) Observe(changed, mouseDown bool) bool {
	if changed {
		c.pending = true
	}
	if c.pending && !mouseDown {
		c.pending = false
		return true
	}
	return false
}

// Pending reports whether an edit is waiting for release.
func (c *CommitTracker) Pending() bool {
	return c.pending
}

// Reset drops any pending edit.
func (c *CommitTracker) Reset() {
	c.pending = false
}

// DoubleClick detects two clicks within Window seconds.
type DoubleClick struct {
	Window float64

	last float64
	armed bool
}

// Click records a click at time now (seconds) and reports a double click.
func (d *DoubleClick) Click(now float64) bool {
	if d.armed && now-d.last <= d.Window {
		d.armed = false
		return true
	}
	d.last = now
	d.armed = true
	return false
}
