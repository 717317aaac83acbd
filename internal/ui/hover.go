package ui

import "time"

// HoverState is the explicit lifecycle of one card's hover session. State is
// never inferred from timer-handle nullability; the enum is the single source
// of truth.
type HoverState int

const (
	// HoverIdle — no session, nothing mounted.
	HoverIdle HoverState = iota
	// HoverPending — pointer is on the card, debounce timer running.
	HoverPending
	// HoverActive — preview popup is mounted.
	HoverActive
	// HoverClosing — popup still mounted, exit animation playing. Only the
	// animation-completion signal moves the session back to idle.
	HoverClosing
)

func (s HoverState) String() string {
	switch s {
	case HoverIdle:
		return "idle"
	case HoverPending:
		return "pending"
	case HoverActive:
		return "active"
	case HoverClosing:
		return "closing"
	}
	return "unknown"
}

// HoverScheduler debounces pointer intent for a single card. Pointer enter and
// leave both funnel through ToggleIntent; a leave before the delay elapses
// cancels the pending session with zero side effects.
//
// All methods must be called from the UI update loop; the scheduler owns no
// goroutines and no locks.
type HoverScheduler struct {
	state    HoverState
	deadline time.Time // set only while Pending
	delay    time.Duration
	now      func() time.Time
}

func NewHoverScheduler() *HoverScheduler {
	return &HoverScheduler{
		delay: HoverDelay,
		now:   time.Now,
	}
}

func (h *HoverScheduler) State() HoverState { return h.state }

// ToggleIntent is the unified pointer enter/leave handler.
func (h *HoverScheduler) ToggleIntent() {
	switch h.state {
	case HoverIdle:
		h.state = HoverPending
		h.deadline = h.now().Add(h.delay)
	case HoverPending:
		// Pointer left before the delay elapsed: cancel outright.
		h.state = HoverIdle
		h.deadline = time.Time{}
	case HoverActive:
		// Pointer left an open popup: begin the exit animation. This is a
		// close, never a pending-cancel.
		h.state = HoverClosing
	case HoverClosing:
		// Re-entry while the exit animation plays is ignored; the session
		// finishes closing and a fresh hover starts a new one.
	}
}

// Tick advances the debounce timer. It returns true exactly once per session,
// on the update that crosses the delay, at which point the caller mounts the
// popup. The deadline is cleared on fire so it can never be mistaken for a
// still-pending timer.
func (h *HoverScheduler) Tick() bool {
	if h.state != HoverPending {
		return false
	}
	if h.now().Before(h.deadline) {
		return false
	}
	h.state = HoverActive
	h.deadline = time.Time{}
	return true
}

// AnimationDone finalizes a closing session. Returns true if the session
// actually transitioned to idle, so the caller knows to unmount.
func (h *HoverScheduler) AnimationDone() bool {
	if h.state != HoverClosing {
		return false
	}
	h.state = HoverIdle
	return true
}
