package player

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gen2brain/go-mpv"

	"github.com/depeter/dimview/internal/config"
)

// Player wraps libmpv for video playback. Dim serves DASH manifests, which
// mpv consumes natively.
type Player struct {
	m         *mpv.Mpv
	mu        sync.Mutex
	playing   bool
	paused    bool
	duration  float64
	position  float64
	versionID int64

	OnPlaybackEnd func()
}

// New creates and initializes a new mpv player instance.
func New(cfg *config.Config) (*Player, error) {
	m := mpv.New()

	// Core options — mpv owns the render pipeline
	must(m.SetOptionString("hwdec", cfg.Playback.HWAccel))
	must(m.SetOptionString("vo", "gpu"))
	must(m.SetOptionString("osc", "yes"))
	must(m.SetOptionString("keep-open", "yes"))
	must(m.SetOptionString("idle", "yes"))
	must(m.SetOptionString("volume", fmt.Sprintf("%d", cfg.Playback.Volume)))

	if err := m.Initialize(); err != nil {
		return nil, fmt.Errorf("mpv init: %w", err)
	}

	p := &Player{m: m}

	// Observe properties for position/duration tracking
	m.ObserveProperty(0, "time-pos", mpv.FormatDouble)
	m.ObserveProperty(0, "duration", mpv.FormatDouble)
	m.ObserveProperty(0, "pause", mpv.FormatFlag)

	go p.eventLoop()

	return p, nil
}

func must(err error) {
	if err != nil {
		log.Warn("mpv option rejected", "err", err)
	}
}

// SetWindowID sets the native window handle for embedded playback.
func (p *Player) SetWindowID(wid int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.SetOptionString("wid", fmt.Sprintf("%d", wid))
}

// LoadFile starts playback of a stream URL for the given media version.
func (p *Player) LoadFile(url string, versionID int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.versionID = versionID
	p.playing = true
	p.paused = false
	return p.m.Command([]string{"loadfile", url})
}

// Seek seeks relative to current position.
func (p *Player) Seek(seconds float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.Command([]string{"seek", fmt.Sprintf("%.1f", seconds), "relative"})
}

// TogglePause toggles pause state.
func (p *Player) TogglePause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.Command([]string{"cycle", "pause"})
}

// AdjustVolume changes the volume by delta percent.
func (p *Player) AdjustVolume(delta int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.Command([]string{"add", "volume", fmt.Sprintf("%d", delta)})
}

// ToggleMute toggles audio mute.
func (p *Player) ToggleMute() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.Command([]string{"cycle", "mute"})
}

// CycleSubtitles cycles through subtitle tracks.
func (p *Player) CycleSubtitles() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.Command([]string{"cycle", "sub"})
}

// CycleAudio cycles through audio tracks.
func (p *Player) CycleAudio() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.Command([]string{"cycle", "audio"})
}

// ShowText displays an OSD message for durationMS milliseconds.
func (p *Player) ShowText(text string, durationMS int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.Command([]string{"show-text", text, fmt.Sprintf("%d", durationMS)})
}

// ShowProgress flashes the OSD progress bar.
func (p *Player) ShowProgress() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.Command([]string{"show-progress"})
}

// Stop stops playback.
func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
	return p.m.Command([]string{"stop"})
}

// Destroy cleans up the mpv instance.
func (p *Player) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.m.TerminateDestroy()
}

// Playing returns whether media is currently loaded.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Paused returns the current pause state.
func (p *Player) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

// Position returns the current playback position in seconds.
func (p *Player) Position() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.position
}

// Duration returns the total duration in seconds.
func (p *Player) Duration() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.duration
}

// VersionID returns the media version currently loaded.
func (p *Player) VersionID() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.versionID
}

func (p *Player) eventLoop() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	for {
		ev := p.m.WaitEvent(1.0)
		if ev == nil {
			continue
		}

		switch ev.EventID {
		case mpv.EventPropertyChange:
			if ev.Data == nil {
				continue
			}
			prop := ev.Property()
			p.mu.Lock()
			switch prop.Name {
			case "time-pos":
				if v, ok := prop.Data.(float64); ok {
					p.position = v
				}
			case "duration":
				if v, ok := prop.Data.(float64); ok {
					p.duration = v
				}
			case "pause":
				if v, ok := prop.Data.(int); ok {
					p.paused = v == 1
				}
			}
			p.mu.Unlock()

		case mpv.EventEnd:
			p.mu.Lock()
			wasPlaying := p.playing
			p.playing = false
			p.mu.Unlock()
			if ev.Data != nil {
				ef := ev.EndFile()
				log.Debug("mpv end-file", "reason", ef.Reason, "wasPlaying", wasPlaying)
			}
			// Stop() clears playing before sending the stop command, so the
			// resulting end-file event does not fire the callback again.
			if wasPlaying && p.OnPlaybackEnd != nil {
				p.OnPlaybackEnd()
			}

		case mpv.EventShutdown:
			return
		}
	}
}
