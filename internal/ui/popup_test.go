package ui

import (
	"testing"

	"github.com/depeter/dimview/internal/accent"
	"github.com/depeter/dimview/internal/dim"
)

func themeForTest() accent.Theme { return accent.Default() }

func TestResolveSide(t *testing.T) {
	tests := []struct {
		name          string
		x, width      float64
		viewportWidth float64
		want          Side
	}{
		{"overflows right edge", 1000, 300, 1200, SideLeft},
		{"fits on the right", 100, 300, 1200, SideRight},
		{"exactly at margin", 895, 300, 1200, SideRight}, // 1195 > 1195 is false
		{"one past margin", 896, 300, 1200, SideLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveSide(tt.x, tt.width, tt.viewportWidth, PopupMargin); got != tt.want {
				t.Errorf("ResolveSide(%v, %v, %v) = %v, want %v",
					tt.x, tt.width, tt.viewportWidth, got, tt.want)
			}
		})
	}
}

func TestFormatLength(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{3661, "01:01:01"},
		{59, "00:00:59"},
		{0, "00:00:00"},
		{3600, "01:00:00"},
		{7325, "02:02:05"},
		{-5, "00:00:00"},
	}
	for _, tt := range tests {
		if got := FormatLength(tt.seconds); got != tt.want {
			t.Errorf("FormatLength(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestVisibleGenres(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"nil", nil, nil},
		{"under limit", []string{"Drama"}, []string{"Drama"}},
		{"at limit", []string{"A", "B", "C"}, []string{"A", "B", "C"}},
		{"over limit keeps order", []string{"A", "B", "C", "D", "E"}, []string{"A", "B", "C"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleGenres(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("genre[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}

	// Truncation is presentation-only: the source slice is untouched.
	src := []string{"A", "B", "C", "D"}
	_ = VisibleGenres(src)
	if len(src) != 4 {
		t.Error("VisibleGenres mutated its input")
	}
}

func TestTagRoutes(t *testing.T) {
	if got := YearRoute(1994); got != "search?year=1994" {
		t.Errorf("YearRoute = %q", got)
	}
	if got := GenreRoute("Science Fiction"); got != "search?genre=Science+Fiction" {
		t.Errorf("GenreRoute = %q, want url-encoded genre", got)
	}
}

func TestPopupExitAnimationGatesTeardown(t *testing.T) {
	p := NewPreviewPopup(7, dim.MediaSummary{Name: "Blade Runner"}, themeForTest(), 100, 100, CardWidth, 1920)

	// Run the enter fade to completion.
	for i := 0; i < 20; i++ {
		p.Update()
	}
	evs := p.PopEvents()
	if len(evs) != 1 || evs[0].Kind != AnimEnterDone || evs[0].Session != 7 {
		t.Fatalf("enter events = %+v, want one AnimEnterDone for session 7", evs)
	}

	p.BeginClose()
	var exit []AnimEvent
	for i := 0; i < 50 && len(exit) == 0; i++ {
		p.Update()
		for _, ev := range p.PopEvents() {
			if ev.Kind == AnimExitDone {
				exit = append(exit, ev)
			}
		}
	}
	if len(exit) != 1 {
		t.Fatalf("got %d exit events, want exactly 1", len(exit))
	}
	if exit[0].Session != 7 {
		t.Errorf("exit event session = %d, want 7", exit[0].Session)
	}

	// No further exit events after completion.
	for i := 0; i < 10; i++ {
		p.Update()
	}
	for _, ev := range p.PopEvents() {
		if ev.Kind == AnimExitDone {
			t.Error("exit animation completed twice")
		}
	}
}

func TestPopupSetVersionsOverwrites(t *testing.T) {
	p := NewPreviewPopup(1, dim.MediaSummary{}, themeForTest(), 0, 0, CardWidth, 1920)
	p.SetVersions([]dim.MediaVersion{{ID: 1}})
	p.SetVersions([]dim.MediaVersion{{ID: 2}, {ID: 3}})
	if len(p.Versions) != 2 || p.Versions[0].ID != 2 {
		t.Errorf("versions = %+v, want wholesale replacement", p.Versions)
	}
}
