package ui

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
	"time"

	"github.com/depeter/dimview/internal/accent"
	"github.com/depeter/dimview/internal/cache"
	"github.com/depeter/dimview/internal/dim"
)

const testViewport = 1920

// newTestCard returns a card at the grid origin with a manually driven clock.
func newTestCard(summary dim.MediaSummary) (*Card, *testClock) {
	c := NewCard(summary, "", nil, nil)
	clk := &testClock{t: time.Unix(1000, 0)}
	c.hover.now = func() time.Time { return clk.t }
	return c, clk
}

// hoverToActive drives a card through a sustained hover into the active state.
func hoverToActive(t *testing.T, c *Card, clk *testClock) {
	t.Helper()
	c.Update(10, 10, testViewport) // pointer enters
	clk.advance(HoverDelay + 10*time.Millisecond)
	c.Update(10, 10, testViewport) // debounce fires
	if c.HoverState() != HoverActive {
		t.Fatalf("state = %v, want active", c.HoverState())
	}
	if c.Popup() == nil {
		t.Fatal("no popup mounted on activation")
	}
}

// closeFully leaves the card and runs updates until the exit animation has
// completed and the popup is unmounted.
func closeFully(t *testing.T, c *Card, clk *testClock) {
	t.Helper()
	c.Update(2000, 2000, testViewport) // pointer leaves
	if c.HoverState() != HoverClosing {
		t.Fatalf("state = %v, want closing", c.HoverState())
	}
	for i := 0; i < 100 && c.Popup() != nil; i++ {
		c.Update(2000, 2000, testViewport)
	}
	if c.Popup() != nil {
		t.Fatal("popup still mounted after exit animation")
	}
	if c.HoverState() != HoverIdle {
		t.Fatalf("state = %v after teardown, want idle", c.HoverState())
	}
}

func TestCardBriefHoverHasNoSideEffects(t *testing.T) {
	fetches := 0
	c, clk := newTestCard(dim.MediaSummary{ID: 1, Name: "Dune"})
	c.fetchInfo = func(int) ([]dim.MediaVersion, error) { fetches++; return nil, nil }

	c.Update(10, 10, testViewport) // enter
	clk.advance(300 * time.Millisecond)
	c.Update(2000, 2000, testViewport) // leave before the delay
	clk.advance(time.Second)
	c.Update(2000, 2000, testViewport)

	if c.Popup() != nil {
		t.Error("brief pass mounted a popup")
	}
	if fetches != 0 {
		t.Errorf("brief pass issued %d fetches, want 0", fetches)
	}
}

func TestCardStaleResultAfterClose(t *testing.T) {
	c, clk := newTestCard(dim.MediaSummary{ID: 5, Name: "Alien"})
	hoverToActive(t, c, clk)
	session := c.session

	closeFully(t, c, clk)

	// The fetch issued for the closed session finally arrives.
	c.resultCh <- fetchResult{session: session, mediaID: 5, versions: []dim.MediaVersion{{ID: 99}}}
	c.Update(2000, 2000, testViewport)

	if len(c.Versions()) != 0 {
		t.Errorf("closed session applied a late result: %+v", c.Versions())
	}
}

func TestCardStaleResultFromEarlierSession(t *testing.T) {
	c, clk := newTestCard(dim.MediaSummary{ID: 5, Name: "Alien"})
	hoverToActive(t, c, clk)
	first := c.session

	closeFully(t, c, clk)
	hoverToActive(t, c, clk)

	// Session 1's response arrives during session 2: discard.
	c.resultCh <- fetchResult{session: first, mediaID: 5, versions: []dim.MediaVersion{{ID: 1}}}
	c.Update(10, 10, testViewport)
	if len(c.Versions()) != 0 {
		t.Errorf("stale session result applied: %+v", c.Versions())
	}

	// The current session's response applies and reaches the popup.
	c.resultCh <- fetchResult{session: c.session, mediaID: 5, versions: []dim.MediaVersion{{ID: 2}}}
	c.Update(10, 10, testViewport)
	if len(c.Versions()) != 1 || c.Versions()[0].ID != 2 {
		t.Fatalf("current session result not applied: %+v", c.Versions())
	}
	if got := c.Popup().Versions; len(got) != 1 || got[0].ID != 2 {
		t.Errorf("popup versions = %+v, want the applied result", got)
	}
}

func TestCardResultForWrongItemDiscarded(t *testing.T) {
	c, clk := newTestCard(dim.MediaSummary{ID: 5, Name: "Alien"})
	hoverToActive(t, c, clk)

	c.resultCh <- fetchResult{session: c.session, mediaID: 6, versions: []dim.MediaVersion{{ID: 1}}}
	c.Update(10, 10, testViewport)
	if len(c.Versions()) != 0 {
		t.Errorf("result for another item applied: %+v", c.Versions())
	}
}

func TestCardThemeDefaultsUntilCoverLoads(t *testing.T) {
	c, clk := newTestCard(dim.MediaSummary{ID: 9, Name: "Heat"})

	// First activation: no cover yet, extraction is skipped, not queued.
	hoverToActive(t, c, clk)
	if c.Theme() != accent.Default() {
		t.Errorf("theme = %v before cover load, want default", c.Theme())
	}
	if c.themeComputed {
		t.Error("extraction guard set without a cover")
	}
	closeFully(t, c, clk)

	// Cover arrives between sessions.
	img := image.NewRGBA(image.Rect(0, 0, 40, 60))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.RGBA{R: 0xC0, G: 0x10, B: 0x10, A: 0xFF}}, image.Point{}, draw.Src)
	c.coverCh <- &cache.Cover{Source: img}

	// Second activation extracts once.
	hoverToActive(t, c, clk)
	if !c.themeComputed {
		t.Fatal("extraction guard not set after successful extraction")
	}
	if c.Theme() == accent.Default() {
		t.Error("theme still default after extraction")
	}
	got := c.Theme()
	closeFully(t, c, clk)

	// Third activation reuses the cached theme.
	hoverToActive(t, c, clk)
	if c.Theme() != got {
		t.Error("theme recomputed despite one-shot guard")
	}
}

func TestCardFetchRunsPerActivation(t *testing.T) {
	fetched := make(chan int, 8)
	c, clk := newTestCard(dim.MediaSummary{ID: 3, Name: "Ran"})
	c.fetchInfo = func(id int) ([]dim.MediaVersion, error) {
		fetched <- id
		return []dim.MediaVersion{{ID: 30}}, nil
	}

	hoverToActive(t, c, clk)
	select {
	case id := <-fetched:
		if id != 3 {
			t.Errorf("fetched id = %d, want 3", id)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("activation did not issue a fetch")
	}

	// Let the result land while still active.
	deadline := time.Now().Add(2 * time.Second)
	for len(c.Versions()) == 0 && time.Now().Before(deadline) {
		c.Update(10, 10, testViewport)
		time.Sleep(time.Millisecond)
	}
	if len(c.Versions()) != 1 || c.Versions()[0].ID != 30 {
		t.Fatalf("versions = %+v, want fetch result applied", c.Versions())
	}

	closeFully(t, c, clk)
	hoverToActive(t, c, clk)
	select {
	case <-fetched:
	case <-time.After(2 * time.Second):
		t.Fatal("second activation did not re-issue the fetch")
	}
}
