package app

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/dimview/internal/cache"
	"github.com/depeter/dimview/internal/config"
	"github.com/depeter/dimview/internal/dim"
	"github.com/depeter/dimview/internal/player"
	"github.com/depeter/dimview/internal/ui"
)

// AppState is the top-level mode of the application.
type AppState int

const (
	StateBrowse AppState = iota
	StatePlay
)

// App implements ebiten.Game and manages the overall application.
type App struct {
	Config  *config.Config
	Client  *dim.Client
	Player  *player.Player
	Covers  *cache.CoverCache
	Screens *ui.ScreenManager

	State         AppState
	Width, Height int

	// Set when mpv playback ends and we need to return to browse mode.
	playbackEnded bool

	currentItem *dim.MediaSummary
}

// New creates the App with all dependencies.
func New(cfg *config.Config, client *dim.Client, covers *cache.CoverCache) *App {
	return &App{
		Config:  cfg,
		Client:  client,
		Covers:  covers,
		Screens: ui.NewScreenManager(),
		State:   StateBrowse,
		Width:   cfg.UI.Width,
		Height:  cfg.UI.Height,
	}
}

// InitPlayer creates the mpv player instance. Call after the window is visible.
func (a *App) InitPlayer() error {
	p, err := player.New(a.Config)
	if err != nil {
		return err
	}
	p.OnPlaybackEnd = func() {
		a.playbackEnded = true
	}
	a.Player = p
	return nil
}

// StartPlayback loads the version's stream into mpv and switches to play mode.
func (a *App) StartPlayback(item dim.MediaSummary, version dim.MediaVersion) {
	if a.Player == nil {
		if err := a.InitPlayer(); err != nil {
			log.Error("failed to init player", "err", err)
			return
		}
	}

	wid, err := player.GetWindowHandle()
	if err != nil {
		log.Error("failed to get window handle", "err", err)
		return
	}
	if err := a.Player.SetWindowID(wid); err != nil {
		log.Warn("failed to set window id", "err", err)
	}

	streamURL := a.Client.StreamURL(version)
	if err := a.Player.LoadFile(streamURL, version.ID); err != nil {
		log.Error("failed to load stream", "version", version.ID, "err", err)
		return
	}
	log.Info("playback started", "item", item.Name, "version", version.DisplayName)

	a.currentItem = &item
	a.State = StatePlay
	a.playbackEnded = false
}

// StopPlayback transitions back to browse mode.
func (a *App) StopPlayback() {
	if a.Player != nil && a.Player.Playing() {
		a.Player.Stop()
	}
	a.currentItem = nil
	a.State = StateBrowse
}

func (a *App) Update() error {
	// Alt+Enter toggles fullscreen in all modes
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	switch a.State {
	case StateBrowse:
		if err := a.Screens.Update(); err != nil {
			return err
		}

	case StatePlay:
		if a.playbackEnded {
			a.playbackEnded = false
			a.State = StateBrowse
			return nil
		}

		// Forward playback controls to mpv (required on Windows where
		// embedded mpv doesn't receive keyboard input directly).
		switch action := player.PollPlayerInput(); action {
		case player.ActionStop:
			a.StopPlayback()
		case player.ActionFullscreen:
			ebiten.SetFullscreen(!ebiten.IsFullscreen())
		default:
			if a.Player != nil {
				player.HandleAction(a.Player, action)
			}
		}
		a.handlePlaybackMouse()
	}

	ui.UpdateInputState()
	return nil
}

// handlePlaybackMouse handles mouse input during playback.
func (a *App) handlePlaybackMouse() {
	if a.Player == nil {
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.Player.TogglePause()
	}
	_, scrollY := ebiten.Wheel()
	if scrollY > 0 {
		a.Player.AdjustVolume(5)
		a.Player.ShowProgress()
	} else if scrollY < 0 {
		a.Player.AdjustVolume(-5)
		a.Player.ShowProgress()
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	switch a.State {
	case StateBrowse:
		screen.Fill(ui.ColorBackground)
		a.Screens.Draw(screen)

	case StatePlay:
		// In play mode, mpv owns the window surface via --wid.
		// We don't draw anything — mpv renders directly.
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.Width, a.Height
}
