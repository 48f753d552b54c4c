// Package film plays the craft film through libmpv in its own window.
package film

import (
	"fmt"
	"runtime"
	"strconv"
	"sync"

	"github.com/gen2brain/go-mpv"
	"go.uber.org/zap"

	"github.com/depeter/atelier/internal/config"
)

// Player wraps libmpv for video playback.
type Player struct {
	m        *mpv.Mpv
	log      *zap.Logger
	mu       sync.Mutex
	playing  bool
	paused   bool
	duration float64
	position float64
	url      string

	OnPlaybackEnd func()
}

// New creates and initializes a new mpv player instance.
func New(cfg config.FilmConfig, log *zap.Logger) (*Player, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("film")
	m := mpv.New()

	must := func(err error) {
		if err != nil {
			log.Warn("mpv option", zap.Error(err))
		}
	}

	// mpv opens its own window; the lookbook keeps running behind it
	must(m.SetOptionString("hwdec", cfg.HWDec))
	must(m.SetOptionString("vo", "gpu"))
	must(m.SetOptionString("osc", "yes"))
	must(m.SetOptionString("force-window", "yes"))
	must(m.SetOptionString("keep-open", "no"))
	must(m.SetOptionString("idle", "yes"))
	must(m.SetOptionString("input-default-bindings", "yes"))
	must(m.SetOptionString("input-vo-keyboard", "yes"))
	must(m.SetOptionString("volume", strconv.Itoa(cfg.Volume)))
	must(m.SetOptionString("ytdl", "yes"))

	if err := m.Initialize(); err != nil {
		return nil, fmt.Errorf("mpv init: %w", err)
	}

	p := &Player{m: m, log: log}

	m.ObserveProperty(0, "time-pos", mpv.FormatDouble)
	m.ObserveProperty(0, "duration", mpv.FormatDouble)
	m.ObserveProperty(0, "pause", mpv.FormatFlag)

	go p.eventLoop()

	return p, nil
}

// Play starts playback of url. YouTube links are normalized to their watch
// page first.
func (p *Player) Play(url string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.url = Normalize(url)
	p.playing = true
	p.paused = false
	p.log.Info("play", zap.String("url", p.url))
	return p.m.Command([]string{"loadfile", p.url})
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

// URL returns the URL last passed to Play.
func (p *Player) URL() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.url
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
				p.log.Debug("end-file", zap.String("reason", fmt.Sprint(ev.EndFile().Reason)), zap.Bool("was_playing", wasPlaying))
			}
			// Stop clears playing before sending the command, so a user stop
			// never reports as a natural end.
			if wasPlaying && p.OnPlaybackEnd != nil {
				p.OnPlaybackEnd()
			}

		case mpv.EventShutdown:
			return
		}
	}
}
