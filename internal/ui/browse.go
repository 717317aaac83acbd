package ui

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/dimview/internal/cache"
	"github.com/depeter/dimview/internal/dim"
)

// BrowseScreen shows the catalog as a scrollable grid of hoverable cards.
type BrowseScreen struct {
	client *dim.Client
	covers *cache.CoverCache

	cards   []*Card
	grid    *FocusGrid
	loaded  bool
	loading bool
	ScrollState

	// OnPlay fires when the user picks a version from a preview popup.
	OnPlay func(item dim.MediaSummary, version dim.MediaVersion)
	// OnRoute receives search routes produced by popup tag chips
	// (search?year=... / search?genre=...).
	OnRoute func(route string)

	mu sync.Mutex
}

func NewBrowseScreen(client *dim.Client, covers *cache.CoverCache) *BrowseScreen {
	cols := (ScreenWidth - SectionPadding*2) / (CardWidth + CardGap)
	return &BrowseScreen{
		client: client,
		covers: covers,
		grid:   NewFocusGrid(cols, 0),
	}
}

func (bs *BrowseScreen) Name() string { return "Browse" }

func (bs *BrowseScreen) OnEnter() {
	if !bs.loaded && !bs.loading {
		bs.loading = true
		go bs.loadData()
	}
}

func (bs *BrowseScreen) OnExit() {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	for _, c := range bs.cards {
		c.Close()
	}
}

func (bs *BrowseScreen) loadData() {
	libs, err := bs.client.GetLibraries()
	if err != nil {
		log.Error("failed to load libraries", "err", err)
		bs.mu.Lock()
		bs.loading = false
		bs.mu.Unlock()
		return
	}

	var cards []*Card
	for _, lib := range libs {
		items, err := bs.client.GetLibraryMedia(lib.ID)
		if err != nil {
			log.Warn("failed to load library media", "library", lib.Name, "err", err)
			continue
		}
		for _, item := range items {
			cards = append(cards, NewCard(item, bs.client.PosterURL(item), bs.covers, bs.client.FetchMediaInfo))
		}
	}

	bs.mu.Lock()
	bs.cards = cards
	bs.grid.SetTotal(len(cards))
	bs.loaded = true
	bs.loading = false
	bs.mu.Unlock()
	log.Debug("catalog loaded", "cards", len(cards))
}

func (bs *BrowseScreen) Update() (*ScreenTransition, error) {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	if !bs.loaded {
		return nil, nil
	}

	dir, _, back := InputState()
	if back {
		return &ScreenTransition{Type: TransitionPop}, nil
	}

	if bs.grid.Update(dir) {
		bs.EnsureRowVisible(bs.grid.FocusedRow(), SectionTitleH+SectionPadding, ScreenHeight)
	}
	bs.HandleMouseWheel()

	cx, cy := CursorPosition()
	for _, c := range bs.cards {
		c.EnsureCover()
		c.Update(cx, cy, ScreenWidth)
	}

	// Clicks are offered to any mounted popup first; the grid has no other
	// click targets.
	if mx, my, clicked := MouseJustClicked(); clicked {
		for _, c := range bs.cards {
			popup := c.Popup()
			if popup == nil {
				continue
			}
			if version, ok := popup.HitPlay(mx, my); ok {
				if bs.OnPlay != nil {
					bs.OnPlay(c.Summary, version)
				}
				return nil, nil
			}
			if route, ok := popup.HitTag(mx, my); ok {
				if bs.OnRoute != nil {
					bs.OnRoute(route)
				}
				return nil, nil
			}
		}
	}

	return nil, nil
}

func (bs *BrowseScreen) Draw(dst *ebiten.Image) {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	bs.Animate()

	if !bs.loaded {
		DrawTextCentered(dst, "Loading…", ScreenWidth/2, ScreenHeight/2, FontSizeBody, ColorTextMuted)
		return
	}

	DrawText(dst, "Library", SectionPadding, SectionPadding-bs.ScrollY, FontSizeHeading, ColorText)
	baseY := float64(SectionPadding + SectionTitleH)

	cols := bs.grid.Cols
	for i, c := range bs.cards {
		row := i / cols
		col := i % cols
		x := float64(SectionPadding + col*(CardWidth+CardGap))
		y := baseY + float64(row)*CardRowHeight - bs.ScrollY

		// Skip offscreen rows
		if y+CardHeight < 0 || y > ScreenHeight {
			// Geometry still tracks so hover hit-testing stays honest.
			c.X, c.Y = x, y
			continue
		}
		c.Draw(dst, x, y, i == bs.grid.Focused)
	}

	// Popups float above the grid.
	for _, c := range bs.cards {
		c.DrawPopup(dst)
	}
}
