package ui

import "testing"

func TestCommitOnRelease(t *testing.T) {
	var c CommitTracker

	// Drag: value changes every frame while held
	for i := 0; i < 10; i++ {
		if c.Observe(true, true) {
			t.Fatalf("frame %d: unexpected commit during drag", i)
		}
	}
	if !c.Pending() {
		t.Fatal("expected pending edit during drag")
	}

	// Held without change - still pending
	if c.Observe(false, true) {
		t.Fatal("unexpected commit while still held")
	}

	// Release commits exactly once
	if !c.Observe(false, false) {
		t.Fatal("expected commit on release")
	}
	if c.Observe(false, false) {
		t.Fatal("expected a single commit per edit")
	}
}

func TestCommitImmediateEdit(t *testing.T) {
	var c CommitTracker
	if !c.Observe(true, false) {
		t.Error("expected immediate commit for edit without mouse held")
	}
}

func TestCommitIdle(t *testing.T) {
	var c CommitTracker
	for i := 0; i < 5; i++ {
		if c.Observe(false, i%2 == 0) {
			t.Fatalf("frame %d: unexpected commit without edits", i)
		}
	}
}

func TestCommitReset(t *testing.T) {
	var c CommitTracker
	c.Observe(true, true)
	c.Reset()
	if c.Observe(false, false) {
		t.Error("expected reset to drop pending edit")
	}
}

func TestDoubleClick(t *testing.T) {
	d := DoubleClick{Window: 0.3}

	if d.Click(1.0) {
		t.Error("single click reported as double")
	}
	if !d.Click(1.2) {
		t.Error("expected double click within window")
	}

	// Third click starts a new pair
	if d.Click(1.3) {
		t.Error("third click should not be a double click")
	}

	// Slow pair
	if d.Click(2.0) {
		t.Error("clicks 0.7s apart should not be a double click")
	}
}
