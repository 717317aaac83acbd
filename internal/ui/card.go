package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/dimview/internal/accent"
	"github.com/depeter/dimview/internal/cache"
	"github.com/depeter/dimview/internal/dim"
)

// fetchResult carries a finished metadata fetch back to the UI thread,
// stamped with the session and item it was issued for. Results whose stamp no
// longer matches are dropped: last-issued wins, never last-arrived.
type fetchResult struct {
	session  uint64
	mediaID  int
	versions []dim.MediaVersion
}

// Card is one poster in the browse grid. It owns its hover session, its
// accent theme, and its playable version list; nothing here is shared between
// cards.
type Card struct {
	Summary dim.MediaSummary

	covers       *cache.CoverCache
	coverURL     string
	cover        *cache.Cover
	coverCh      chan *cache.Cover
	coverPending bool

	fetchInfo func(mediaID int) ([]dim.MediaVersion, error)
	resultCh  chan fetchResult

	hover   *HoverScheduler
	popup   *PreviewPopup
	session uint64 // bumped on each activation

	versions []dim.MediaVersion

	theme         accent.Theme
	themeComputed bool // one-shot guard, set only after a successful extraction

	hovered   bool
	X, Y      float64 // last drawn position, the measurable geometry popups anchor to
	prevState HoverState
}

// NewCard creates a card for one media item. fetchInfo is invoked off the UI
// thread whenever a hover session activates.
func NewCard(summary dim.MediaSummary, coverURL string, covers *cache.CoverCache, fetchInfo func(mediaID int) ([]dim.MediaVersion, error)) *Card {
	return &Card{
		Summary:   summary,
		covers:    covers,
		coverURL:  coverURL,
		coverCh:   make(chan *cache.Cover, 1),
		fetchInfo: fetchInfo,
		resultCh:  make(chan fetchResult, 4),
		hover:     NewHoverScheduler(),
		theme:     accent.Default(),
	}
}

// Theme returns the card's current accent theme.
func (c *Card) Theme() accent.Theme { return c.theme }

// Versions returns the card's current playable version list.
func (c *Card) Versions() []dim.MediaVersion { return c.versions }

// HoverState exposes the session state for the owning screen.
func (c *Card) HoverState() HoverState { return c.hover.State() }

// Popup returns the mounted preview panel, or nil.
func (c *Card) Popup() *PreviewPopup { return c.popup }

// EnsureCover kicks off the lazy cover load once. The loaded cover arrives on
// the UI thread via the card's channel, not in the loader goroutine.
func (c *Card) EnsureCover() {
	if c.cover != nil || c.coverPending || c.covers == nil || c.coverURL == "" {
		return
	}
	c.coverPending = true
	ch := c.coverCh
	c.covers.LoadAsync(c.coverURL, func(cv *cache.Cover) {
		select {
		case ch <- cv:
		default:
		}
	})
}

// Update advances the card's hover session. cursorX/cursorY is the pointer
// position this frame; viewportWidth is used for popup placement at mount.
func (c *Card) Update(cursorX, cursorY int, viewportWidth float64) {
	// Deliver a finished cover load.
	select {
	case cv := <-c.coverCh:
		c.cover = cv
	default:
	}

	// The mounted popup counts as hover territory, so the session survives
	// the pointer crossing from card to panel.
	over := PointInRect(cursorX, cursorY, c.X, c.Y, CardWidth, CardHeight)
	if !over && c.popup != nil && c.hover.State() == HoverActive {
		over = c.popup.Contains(cursorX, cursorY)
	}
	if over != c.hovered {
		c.hovered = over
		c.hover.ToggleIntent()
	}

	if c.hover.Tick() {
		c.activate(viewportWidth)
	}

	// Active→Closing transition starts the exit animation exactly once.
	if c.prevState == HoverActive && c.hover.State() == HoverClosing && c.popup != nil {
		c.popup.BeginClose()
	}
	c.prevState = c.hover.State()

	c.drainFetches()

	if c.popup != nil {
		c.popup.Update()
		for _, ev := range c.popup.PopEvents() {
			// Only the exit completion of the current panel tears down;
			// enter completions and stale-session events are ignored.
			if ev.Kind != AnimExitDone || ev.Session != c.popup.Session() {
				continue
			}
			if c.hover.AnimationDone() {
				c.popup = nil
			}
		}
	}
}

// activate mounts the popup for a fresh session and re-issues the metadata
// fetch. Accent extraction runs here, once per card, and only if the cover
// has already loaded; a cover that arrives later is picked up by the next
// activation.
func (c *Card) activate(viewportWidth float64) {
	c.session++

	c.popup = NewPreviewPopup(c.session, c.Summary, c.theme, c.X, c.Y, CardWidth, viewportWidth)
	c.popup.SetVersions(c.versions)

	if !c.themeComputed && c.cover != nil && c.cover.Source != nil {
		c.theme = accent.Extract(c.cover.Source)
		c.themeComputed = true
		c.popup.SetTheme(c.theme)
	}

	if c.fetchInfo != nil {
		session, mediaID := c.session, c.Summary.ID
		ch := c.resultCh
		go func() {
			versions, err := c.fetchInfo(mediaID)
			if err != nil {
				// Transient failure: keep whatever list we had.
				return
			}
			select {
			case ch <- fetchResult{session: session, mediaID: mediaID, versions: versions}:
			default:
			}
		}()
	}
}

// drainFetches applies finished metadata fetches, discarding any whose
// session or item is no longer current.
func (c *Card) drainFetches() {
	for {
		select {
		case res := <-c.resultCh:
			if res.session != c.session || res.mediaID != c.Summary.ID {
				continue // stale: issued for an earlier session or another item
			}
			if c.hover.State() != HoverActive {
				continue // session closed while the request was in flight
			}
			c.versions = res.versions
			if c.popup != nil {
				c.popup.SetVersions(res.versions)
			}
		default:
			return
		}
	}
}

// Close force-closes an open session (e.g. the screen is leaving). The exit
// animation still runs; teardown stays animation-gated.
func (c *Card) Close() {
	if c.hover.State() == HoverActive {
		c.hover.ToggleIntent()
	}
}

// Draw renders the poster frame at (x, y) and records it as the card's
// measurable geometry.
func (c *Card) Draw(dst *ebiten.Image, x, y float64, focused bool) {
	c.X, c.Y = x, y

	if focused {
		vector.DrawFilledRect(dst,
			float32(x-CardFocusPad), float32(y-CardFocusPad),
			float32(CardWidth+CardFocusPad*2), float32(CardHeight+CardFocusPad*2),
			ColorFocusBorder, false)
	}

	if c.cover != nil && c.cover.GPU != nil {
		op := &ebiten.DrawImageOptions{}
		bounds := c.cover.GPU.Bounds()
		scaleX := float64(CardWidth) / float64(bounds.Dx())
		scaleY := float64(CardHeight) / float64(bounds.Dy())
		op.GeoM.Scale(scaleX, scaleY)
		op.GeoM.Translate(x, y)
		dst.DrawImage(c.cover.GPU, op)
	} else {
		vector.DrawFilledRect(dst, float32(x), float32(y),
			float32(CardWidth), float32(CardHeight),
			ColorSurface, false)
		DrawTextCentered(dst, c.Summary.Name,
			x+CardWidth/2, y+CardHeight/2,
			FontSizeSmall, ColorTextMuted)
	}

	titleColor := ColorTextSecondary
	if focused || c.hovered {
		titleColor = ColorText
	}
	title := TruncateText(c.Summary.Name, CardWidth, FontSizeCaption)
	DrawText(dst, title, x, y+CardHeight+4, FontSizeCaption, titleColor)
}

// DrawPopup renders the preview panel if one is mounted. Screens call this
// after all cards so the panel floats above neighbouring posters.
func (c *Card) DrawPopup(dst *ebiten.Image) {
	if c.popup != nil {
		c.popup.Draw(dst)
	}
}
