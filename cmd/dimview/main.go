package main

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/depeter/dimview/assets/icon"
	"github.com/depeter/dimview/internal/app"
	"github.com/depeter/dimview/internal/cache"
	"github.com/depeter/dimview/internal/config"
	"github.com/depeter/dimview/internal/dim"
	"github.com/depeter/dimview/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", "err", err)
	}

	if lvl, err := log.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(lvl)
	}

	if err := ui.InitFonts(goregular.TTF); err != nil {
		log.Fatal("failed to init fonts", "err", err)
	}

	cacheDir := filepath.Join(os.TempDir(), "dimview", "covers")
	if userCache, err := os.UserCacheDir(); err == nil {
		cacheDir = filepath.Join(userCache, "dimview", "covers")
	}
	covers, err := cache.NewCoverCache(cacheDir)
	if err != nil {
		log.Fatal("failed to init cover cache", "err", err)
	}

	var client *dim.Client
	if cfg.Server.URL != "" {
		client = dim.NewClient(cfg.Server.URL, cfg.Server.DeviceID)
		if cfg.Server.Token != "" {
			client.SetToken(cfg.Server.Token)
		}
	}

	a := app.New(cfg, client, covers)
	sf := &screenFactory{app: a, cfg: cfg, covers: covers}

	// Determine initial screen
	if client == nil || cfg.Server.Token == "" {
		sf.pushLogin()
	} else if err := client.Whoami(); err != nil {
		log.Warn("stored token rejected, showing login", "err", err)
		sf.pushLogin()
	} else {
		sf.pushBrowse()
	}

	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("DimView")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.UI.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal("exited", "err", err)
	}
}
