package ui

import (
	"fmt"
	"net/url"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/dimview/internal/accent"
	"github.com/depeter/dimview/internal/dim"
)

// Side is the horizontal side a popup opens on.
type Side int

const (
	SideRight Side = iota
	SideLeft
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// ResolveSide picks the side a panel of the given geometry opens on so it
// stays inside the viewport. x is the panel's left edge if it opened to the
// right. The result is computed once per session, after mount; the viewport
// is not re-measured while the popup is open.
func ResolveSide(x, width, viewportWidth, margin float64) Side {
	if x+width > viewportWidth-margin {
		return SideLeft
	}
	return SideRight
}

// FormatLength renders a duration in whole seconds as zero-padded HH:MM:SS.
func FormatLength(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	hh := seconds / 3600
	mm := (seconds % 3600) / 60
	ss := (seconds % 3600) % 60
	return fmt.Sprintf("%02d:%02d:%02d", hh, mm, ss)
}

// VisibleGenres truncates a genre list for panel display: at most PopupMaxTags
// entries, input order preserved. The source slice is never mutated.
func VisibleGenres(genres []string) []string {
	if len(genres) <= PopupMaxTags {
		return genres
	}
	return genres[:PopupMaxTags]
}

// GenreRoute and YearRoute build the search routes tag chips navigate to.
func GenreRoute(genre string) string {
	return "search?genre=" + url.QueryEscape(genre)
}

func YearRoute(year int) string {
	return fmt.Sprintf("search?year=%d", year)
}

// AnimEventKind distinguishes popup animation completions. Cards only tear
// down on ExitDone; anything else bubbling out of the panel is ignored.
type AnimEventKind int

const (
	AnimEnterDone AnimEventKind = iota
	AnimExitDone
)

// AnimEvent reports a finished animation, stamped with the session that
// started it so stale events never tear down a newer popup.
type AnimEvent struct {
	Kind    AnimEventKind
	Session uint64
}

type hitRect struct {
	x, y, w, h float64
}

func (r hitRect) contains(px, py int) bool {
	return PointInRect(px, py, r.x, r.y, r.w, r.h)
}

// PreviewPopup is the floating panel one card mounts while its hover session
// is active. It owns placement, the fade animation, and field formatting;
// metadata streams in after mount via SetVersions.
type PreviewPopup struct {
	Summary  dim.MediaSummary
	Theme    accent.Theme
	Versions []dim.MediaVersion

	session uint64

	// Placement, resolved exactly once on the first draw after mount.
	placed         bool
	side           Side
	anchorX        float64 // card's right edge
	anchorY        float64
	cardLeft       float64
	viewportWidth  float64
	x, y           float64

	alpha   float64 // 0..1 fade driven by Update
	closing bool
	events  []AnimEvent

	panel *ebiten.Image

	// Hit areas captured during Draw, in screen coordinates.
	playArea  hitRect
	tagAreas  []hitRect
	tagRoutes []string
}

// NewPreviewPopup mounts a popup for the given card geometry. Placement is
// deferred to the first Draw so it happens against mounted geometry.
func NewPreviewPopup(session uint64, summary dim.MediaSummary, theme accent.Theme, cardX, cardY, cardW, viewportWidth float64) *PreviewPopup {
	return &PreviewPopup{
		Summary:       summary,
		Theme:         theme,
		session:       session,
		anchorX:       cardX + cardW,
		anchorY:       cardY,
		cardLeft:      cardX,
		viewportWidth: viewportWidth,
	}
}

// Session returns the hover session this popup belongs to.
func (p *PreviewPopup) Session() uint64 { return p.session }

// SetVersions replaces the playable version list. Results are overwritten
// wholesale; the caller has already validated session and item identity.
func (p *PreviewPopup) SetVersions(versions []dim.MediaVersion) {
	p.Versions = versions
}

// SetTheme applies an accent theme after mount (extraction may complete on a
// later activation than the first draw).
func (p *PreviewPopup) SetTheme(theme accent.Theme) {
	p.Theme = theme
}

// BeginClose starts the exit animation. The popup stays mounted until the
// animation completes and the owner receives the matching AnimExitDone.
func (p *PreviewPopup) BeginClose() {
	p.closing = true
}

// Update advances the fade animation and queues completion events.
func (p *PreviewPopup) Update() {
	if p.closing {
		p.alpha -= PopupAnimStep
		if p.alpha <= 0 {
			p.alpha = 0
			p.closing = false
			p.events = append(p.events, AnimEvent{Kind: AnimExitDone, Session: p.session})
		}
		return
	}
	if p.alpha < 1 {
		p.alpha += PopupAnimStep
		if p.alpha >= 1 {
			p.alpha = 1
			p.events = append(p.events, AnimEvent{Kind: AnimEnterDone, Session: p.session})
		}
	}
}

// PopEvents drains queued animation events.
func (p *PreviewPopup) PopEvents() []AnimEvent {
	evs := p.events
	p.events = nil
	return evs
}

// place resolves the popup's screen position. Runs once.
func (p *PreviewPopup) place() {
	p.side = ResolveSide(p.anchorX, PopupWidth, p.viewportWidth, PopupMargin)
	if p.side == SideLeft {
		p.x = p.cardLeft - PopupWidth
	} else {
		p.x = p.anchorX
	}
	p.y = p.anchorY
	if p.y+PopupHeight > ScreenHeight {
		p.y = ScreenHeight - PopupHeight
	}
	p.placed = true
}

// HitPlay reports whether the point is on the play affordance and, if so,
// which version it plays. Returns false while the version list is empty.
func (p *PreviewPopup) HitPlay(px, py int) (dim.MediaVersion, bool) {
	if len(p.Versions) == 0 || p.alpha < 1 {
		return dim.MediaVersion{}, false
	}
	if p.playArea.contains(px, py) {
		return p.Versions[0], true
	}
	return dim.MediaVersion{}, false
}

// HitTag returns the search route of the tag chip under the point, if any.
func (p *PreviewPopup) HitTag(px, py int) (string, bool) {
	if p.alpha < 1 {
		return "", false
	}
	for i, area := range p.tagAreas {
		if area.contains(px, py) {
			return p.tagRoutes[i], true
		}
	}
	return "", false
}

// Contains reports whether the point lies on the mounted panel. The popup
// counts as part of the card's hover region so moving onto it does not close
// the session.
func (p *PreviewPopup) Contains(px, py int) bool {
	if !p.placed {
		return false
	}
	return PointInRect(px, py, p.x, p.y, PopupWidth, PopupHeight)
}

// Draw renders the panel. The first call resolves placement.
func (p *PreviewPopup) Draw(dst *ebiten.Image) {
	if !p.placed {
		p.place()
	}
	if p.panel == nil {
		p.panel = ebiten.NewImage(PopupWidth, PopupHeight)
	}
	p.panel.Clear()
	p.drawPanel(p.panel)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(p.alpha))
	op.GeoM.Translate(p.x, p.y)
	dst.DrawImage(p.panel, op)
}

func (p *PreviewPopup) drawPanel(dst *ebiten.Image) {
	w := float32(PopupWidth)
	h := float32(PopupHeight)
	pad := float64(PopupPadding)

	vector.DrawFilledRect(dst, 0, 0, w, h, ColorSurface, false)

	// Accent header strip tinted from the cover art.
	headerH := float32(64)
	vector.DrawFilledRect(dst, 0, 0, w, headerH, p.Theme.Background, false)

	title := TruncateText(p.Summary.Name, float64(w)-pad*2, FontSizeHeading)
	DrawText(dst, title, pad, 12, FontSizeHeading, p.Theme.Text)

	meta := FormatLength(p.Summary.Duration)
	if p.Summary.Rating != nil {
		meta = fmt.Sprintf("★ %.1f  •  %s", *p.Summary.Rating, meta)
	}
	DrawText(dst, meta, pad, 40, FontSizeSmall, p.Theme.Text)

	y := float64(headerH) + 12

	// Tag chips: year first, then up to three genres in input order.
	p.tagAreas = p.tagAreas[:0]
	p.tagRoutes = p.tagRoutes[:0]
	tagX := pad
	drawTag := func(label, route string) {
		tw, _ := MeasureText(label, FontSizeSmall)
		cw := tw + 16
		vector.DrawFilledRect(dst, float32(tagX), float32(y), float32(cw), 24, ColorSurfaceHover, false)
		DrawText(dst, label, tagX+8, y+4, FontSizeSmall, ColorTextSecondary)
		p.tagAreas = append(p.tagAreas, hitRect{x: p.x + tagX, y: p.y + y, w: cw, h: 24})
		p.tagRoutes = append(p.tagRoutes, route)
		tagX += cw + 8
	}
	if p.Summary.Year > 0 {
		drawTag(fmt.Sprintf("%d", p.Summary.Year), YearRoute(p.Summary.Year))
	}
	for _, genre := range VisibleGenres(p.Summary.Genres) {
		drawTag(genre, GenreRoute(genre))
	}
	y += 36

	// Description with fixed fallback.
	desc := NoDescription
	if p.Summary.Description != nil && *p.Summary.Description != "" {
		desc = *p.Summary.Description
	}
	descH := DrawTextWrapped(dst, desc, pad, y, float64(w)-pad*2, FontSizeBody, ColorTextSecondary, 6)
	y += descH + 16

	// Play affordance, disabled until versions arrive.
	btnW := float64(w) - pad*2
	btnH := float64(40)
	btnY := float64(h) - pad - btnH
	if len(p.Versions) > 0 {
		vector.DrawFilledRect(dst, float32(pad), float32(btnY), float32(btnW), float32(btnH), p.Theme.Background, false)
		drawPlayIcon(dst, float32(pad)+18, float32(btnY)+float32(btnH)/2, 8, p.Theme.Text)
		label := "Play"
		if p.Versions[0].DisplayName != "" {
			label = "Play  •  " + p.Versions[0].DisplayName
		}
		DrawTextCentered(dst, label, pad+btnW/2, btnY+btnH/2, FontSizeBody, p.Theme.Text)
		p.playArea = hitRect{x: p.x + pad, y: p.y + btnY, w: btnW, h: btnH}
	} else {
		vector.DrawFilledRect(dst, float32(pad), float32(btnY), float32(btnW), float32(btnH), ColorSurfaceHover, false)
		DrawTextCentered(dst, NoVersions, pad+btnW/2, btnY+btnH/2, FontSizeBody, ColorTextMuted)
		p.playArea = hitRect{}
	}
}
