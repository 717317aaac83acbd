package ui

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/dimview/internal/cache"
	"github.com/depeter/dimview/internal/dim"
)

const (
	searchBarY = 24.0
	searchBarH = 44.0
)

// SearchScreen provides text search over the catalog. Tag links from preview
// popups land here with a genre or year filter pre-applied; results are the
// same hoverable cards as the browse grid.
type SearchScreen struct {
	client *dim.Client
	covers *cache.CoverCache

	input     TextInput
	filter    dim.SearchFilter
	cards     []*Card
	grid      *FocusGrid
	focusMode int // 0=search bar, 1=results
	errMsg    string
	searching bool
	ScrollState

	OnPlay  func(item dim.MediaSummary, version dim.MediaVersion)
	OnRoute func(route string)

	mu sync.Mutex
}

func NewSearchScreen(client *dim.Client, covers *cache.CoverCache) *SearchScreen {
	cols := (ScreenWidth - SectionPadding*2) / (CardWidth + CardGap)
	return &SearchScreen{
		client: client,
		covers: covers,
		grid:   NewFocusGrid(cols, 0),
	}
}

func (ss *SearchScreen) Name() string { return "Search" }
func (ss *SearchScreen) OnEnter()     {}

func (ss *SearchScreen) OnExit() {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	for _, c := range ss.cards {
		c.Close()
	}
}

// SetFilter applies a pre-built filter and runs the search immediately. The
// bar shows the free-text part only; genre/year filters ride along silently.
func (ss *SearchScreen) SetFilter(filter dim.SearchFilter) {
	ss.input.SetText(filter.Query)
	ss.mu.Lock()
	ss.filter = filter
	ss.mu.Unlock()
	go ss.doSearch()
}

func (ss *SearchScreen) Update() (*ScreenTransition, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	_, enter, back := InputState()

	if back {
		if ss.focusMode == 1 {
			ss.focusMode = 0
			return nil, nil
		}
		if ss.input.Text != "" {
			ss.clearResults()
			return nil, nil
		}
		return &ScreenTransition{Type: TransitionPop}, nil
	}

	ss.HandleMouseWheel()

	cx, cy := CursorPosition()
	for _, c := range ss.cards {
		c.EnsureCover()
		c.Update(cx, cy, ScreenWidth)
	}

	if mx, my, clicked := MouseJustClicked(); clicked {
		// Popups get first shot at the click.
		for _, c := range ss.cards {
			popup := c.Popup()
			if popup == nil {
				continue
			}
			if version, ok := popup.HitPlay(mx, my); ok {
				if ss.OnPlay != nil {
					ss.OnPlay(c.Summary, version)
				}
				return nil, nil
			}
			if route, ok := popup.HitTag(mx, my); ok {
				if ss.OnRoute != nil {
					ss.OnRoute(route)
				}
				return nil, nil
			}
		}

		barX := float64(SectionPadding)
		barW := float64(ScreenWidth - SectionPadding*2)
		if PointInRect(mx, my, barX, searchBarY, barW, searchBarH) {
			if ss.input.Text != "" && PointInRect(mx, my, barX+barW-40, searchBarY, 40, searchBarH) {
				ss.clearResults()
			}
			ss.focusMode = 0
			return nil, nil
		}
	}

	switch ss.focusMode {
	case 0: // search bar
		ss.input.Update()

		if enter && ss.input.Text != "" {
			ss.filter = dim.SearchFilter{Query: ss.input.Text}
			go ss.doSearch()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && len(ss.cards) > 0 {
			ss.focusMode = 1
		}

	case 1: // results grid
		dir, _, _ := InputState()
		if dir != DirNone {
			if dir == DirUp && ss.grid.FocusedRow() == 0 {
				ss.focusMode = 0
			} else if ss.grid.Update(dir) {
				ss.EnsureRowVisible(ss.grid.FocusedRow(), searchBarY+searchBarH+48, ScreenHeight)
			}
		}
	}

	return nil, nil
}

func (ss *SearchScreen) clearResults() {
	ss.input.Clear()
	for _, c := range ss.cards {
		c.Close()
	}
	ss.cards = nil
	ss.grid.SetTotal(0)
	ss.filter = dim.SearchFilter{}
	ss.errMsg = ""
}

func (ss *SearchScreen) doSearch() {
	ss.mu.Lock()
	ss.searching = true
	ss.errMsg = ""
	filter := ss.filter
	ss.mu.Unlock()

	items, err := ss.client.Search(filter)

	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.searching = false

	if err != nil {
		log.Error("search failed", "err", err)
		ss.errMsg = "Search failed: " + err.Error()
		return
	}

	cards := make([]*Card, 0, len(items))
	for _, item := range items {
		cards = append(cards, NewCard(item, ss.client.PosterURL(item), ss.covers, ss.client.FetchMediaInfo))
	}
	ss.cards = cards
	ss.grid.SetTotal(len(cards))
	ss.grid.Focused = 0
	ss.Reset()
}

// filterLabel describes the active filter for the results line.
func (ss *SearchScreen) filterLabel() string {
	switch {
	case ss.filter.Genre != "":
		return fmt.Sprintf("genre %q", ss.filter.Genre)
	case ss.filter.Year > 0:
		return fmt.Sprintf("year %d", ss.filter.Year)
	default:
		return fmt.Sprintf("%q", ss.filter.Query)
	}
}

func (ss *SearchScreen) Draw(dst *ebiten.Image) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	ss.Animate()

	barX := float32(SectionPadding)
	barW := float32(ScreenWidth - SectionPadding*2)

	bgColor := ColorSurface
	if ss.focusMode == 0 {
		bgColor = ColorSurfaceHover
	}
	vector.DrawFilledRect(dst, barX, searchBarY, barW, searchBarH, bgColor, false)
	if ss.focusMode == 0 {
		vector.StrokeRect(dst, barX, searchBarY, barW, searchBarH, 2, ColorFocusBorder, false)
	}

	drawSearchIcon(dst, barX+22, searchBarY+searchBarH/2, 10, ColorTextMuted)

	textX := float64(barX) + 44
	textY := float64(searchBarY) + 12
	if ss.input.Text == "" {
		DrawText(dst, "Search...", textX, textY, FontSizeBody, ColorTextMuted)
	}
	if ss.focusMode == 0 {
		DrawText(dst, ss.input.DisplayText(), textX, textY, FontSizeBody, ColorText)
	} else if ss.input.Text != "" {
		DrawText(dst, ss.input.Text, textX, textY, FontSizeBody, ColorText)
	}

	if ss.input.Text != "" {
		drawXMark(dst, barX+barW-24, searchBarY+searchBarH/2, 6, ColorTextMuted)
	}
	if ss.searching {
		DrawText(dst, "Searching...", float64(barX+barW)-150, textY, FontSizeSmall, ColorTextSecondary)
	}

	y := float64(searchBarY+searchBarH) + 12
	if ss.errMsg != "" {
		DrawText(dst, ss.errMsg, float64(barX), y, FontSizeSmall, ColorError)
	} else if len(ss.cards) > 0 {
		DrawText(dst, fmt.Sprintf("%d results for %s", len(ss.cards), ss.filterLabel()),
			float64(barX), y, FontSizeSmall, ColorTextMuted)
	} else if !ss.searching && (ss.input.Text != "" || ss.filter.Genre != "" || ss.filter.Year > 0) {
		DrawTextCentered(dst, "No results found", float64(ScreenWidth)/2, y+100,
			FontSizeHeading, ColorTextSecondary)
	}

	baseY := y + FontSizeSmall + 20
	cols := ss.grid.Cols
	for i, c := range ss.cards {
		row := i / cols
		col := i % cols
		x := float64(SectionPadding + col*(CardWidth+CardGap))
		cy := baseY + float64(row)*CardRowHeight - ss.ScrollY

		if cy+CardHeight < 0 || cy > ScreenHeight {
			c.X, c.Y = x, cy
			continue
		}
		c.Draw(dst, x, cy, ss.focusMode == 1 && i == ss.grid.Focused)
	}

	for _, c := range ss.cards {
		c.DrawPopup(dst)
	}
}
