package ui

import (
	"testing"
	"time"
)

// testClock drives a HoverScheduler with manual time.
type testClock struct {
	t time.Time
}

func newTestScheduler() (*HoverScheduler, *testClock) {
	clk := &testClock{t: time.Unix(1000, 0)}
	h := NewHoverScheduler()
	h.now = func() time.Time { return clk.t }
	return h, clk
}

func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestHoverBriefPassNeverActivates(t *testing.T) {
	h, clk := newTestScheduler()

	// Rapid enter/leave pairs, each well under the delay.
	for i := 0; i < 5; i++ {
		h.ToggleIntent() // enter
		clk.advance(200 * time.Millisecond)
		if h.Tick() {
			t.Fatal("activated before delay elapsed")
		}
		h.ToggleIntent() // leave
		clk.advance(50 * time.Millisecond)
		if h.Tick() {
			t.Fatal("activated after cancel")
		}
		if h.State() != HoverIdle {
			t.Fatalf("state = %v after cancel, want idle", h.State())
		}
	}
}

func TestHoverSustainedActivatesOnce(t *testing.T) {
	h, clk := newTestScheduler()

	h.ToggleIntent()
	clk.advance(599 * time.Millisecond)
	if h.Tick() {
		t.Fatal("activated 1ms early")
	}
	clk.advance(1 * time.Millisecond)
	if !h.Tick() {
		t.Fatal("did not activate at the delay boundary")
	}
	if h.State() != HoverActive {
		t.Fatalf("state = %v, want active", h.State())
	}

	// Tick must fire exactly once per session.
	clk.advance(time.Second)
	if h.Tick() {
		t.Fatal("activated twice in one session")
	}
}

func TestHoverActiveToggleBeginsClosing(t *testing.T) {
	h, clk := newTestScheduler()

	h.ToggleIntent()
	clk.advance(700 * time.Millisecond)
	h.Tick()

	// Pointer leave on an open popup must begin closing, never flip straight
	// back to idle.
	h.ToggleIntent()
	if h.State() != HoverClosing {
		t.Fatalf("state = %v, want closing", h.State())
	}

	// Still mounted until the exit animation reports completion.
	if h.Tick() {
		t.Fatal("closing session re-activated")
	}
	if !h.AnimationDone() {
		t.Fatal("AnimationDone did not finalize a closing session")
	}
	if h.State() != HoverIdle {
		t.Fatalf("state = %v after animation, want idle", h.State())
	}
}

func TestHoverReentryWhileClosingIsIgnored(t *testing.T) {
	h, clk := newTestScheduler()

	h.ToggleIntent()
	clk.advance(time.Second)
	h.Tick()
	h.ToggleIntent() // begin closing

	h.ToggleIntent() // re-enter mid exit animation
	if h.State() != HoverClosing {
		t.Fatalf("state = %v, want closing to continue", h.State())
	}

	h.AnimationDone()
	if h.State() != HoverIdle {
		t.Fatalf("state = %v, want idle", h.State())
	}

	// A fresh hover afterwards starts a new session normally.
	h.ToggleIntent()
	clk.advance(time.Second)
	if !h.Tick() {
		t.Fatal("new session after close did not activate")
	}
}

func TestHoverAnimationDoneOutsideClosing(t *testing.T) {
	h, clk := newTestScheduler()

	if h.AnimationDone() {
		t.Fatal("idle session accepted an animation-completion signal")
	}
	h.ToggleIntent()
	if h.AnimationDone() {
		t.Fatal("pending session accepted an animation-completion signal")
	}
	clk.advance(time.Second)
	h.Tick()
	if h.AnimationDone() {
		t.Fatal("active session accepted an animation-completion signal")
	}
}
