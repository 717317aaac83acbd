package main

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/depeter/dimview/internal/app"
	"github.com/depeter/dimview/internal/cache"
	"github.com/depeter/dimview/internal/config"
	"github.com/depeter/dimview/internal/dim"
	"github.com/depeter/dimview/internal/ui"
)

// screenFactory captures the shared dependencies for creating and wiring screens.
type screenFactory struct {
	app    *app.App
	cfg    *config.Config
	covers *cache.CoverCache
}

func (sf *screenFactory) pushLogin() {
	loginScreen := ui.NewLoginScreen(sf.cfg.Server.URL, func(screen *ui.LoginScreen, server, user, pass string) {
		screen.Busy = true
		screen.Error = ""
		go func() {
			c := dim.NewClient(server, sf.cfg.Server.DeviceID)
			if err := c.Login(user, pass); err != nil {
				screen.Error = "Login failed: " + err.Error()
				screen.Busy = false
				return
			}
			sf.cfg.Server.URL = c.ServerURL()
			sf.cfg.Server.Username = user
			sf.cfg.Server.Token = c.Token()
			if err := sf.cfg.Save(); err != nil {
				log.Warn("failed to save config", "err", err)
			}

			sf.app.Client = c
			screen.Busy = false
			sf.pushBrowse()
		}()
	})
	sf.app.Screens.Replace(loginScreen)
}

func (sf *screenFactory) pushBrowse() {
	browse := ui.NewBrowseScreen(sf.app.Client, sf.covers)
	browse.OnPlay = sf.app.StartPlayback
	browse.OnRoute = sf.pushRoute
	sf.app.Screens.Replace(browse)
}

func (sf *screenFactory) pushSearch(filter dim.SearchFilter) {
	search := ui.NewSearchScreen(sf.app.Client, sf.covers)
	search.OnPlay = sf.app.StartPlayback
	search.OnRoute = sf.pushRoute
	sf.app.Screens.Push(search)
	search.SetFilter(filter)
}

// pushRoute handles routes emitted by preview popup tag chips, of the form
// "search?genre=Drama" or "search?year=1994".
func (sf *screenFactory) pushRoute(route string) {
	path, query, _ := strings.Cut(route, "?")
	if path != "search" {
		log.Warn("unknown route", "route", route)
		return
	}
	params, err := url.ParseQuery(query)
	if err != nil {
		log.Warn("bad route query", "route", route, "err", err)
		return
	}

	filter := dim.SearchFilter{
		Query: params.Get("query"),
		Genre: params.Get("genre"),
	}
	if y := params.Get("year"); y != "" {
		if year, err := strconv.Atoi(y); err == nil {
			filter.Year = year
		}
	}
	sf.pushSearch(filter)
}
