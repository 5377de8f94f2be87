// FILE: main.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"reelspin/audio"
	"reelspin/config"
	"reelspin/present"
	"reelspin/reel"
	"reelspin/render"
	"reelspin/spin"
)

// App wires the reel engine to a terminal: the view draws, the controller
// animates, the sound manager reacts to frames, the presenter runs the
// result sequence.
type App struct {
	screen tcell.Screen
	cfg    *config.Config

	view       *render.ReelView
	sounds     *audio.SoundManager
	controller *spin.Controller
	presenter  *present.Presenter

	pool []reel.Slot
}

func NewApp(cfg *config.Config) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	a := &App{
		screen: screen,
		cfg:    cfg,
		view:   render.NewReelView(screen),
		sounds: audio.NewSoundManager(cfg.AudioConfig(), nil),
		pool:   samplePool(),
	}
	return a, nil
}

// samplePool is the demo slot pool.
func samplePool() []reel.Slot {
	return []reel.Slot{
		{ID: "cherry", Label: "Cherry", Icon: '🍒', Name: "Cherry Run", Progress: 0.8, Badge: "classic"},
		{ID: "lemon", Label: "Lemon", Icon: '🍋', Name: "Lemon Twist", Progress: 0.35, Badge: "sour"},
		{ID: "bell", Label: "Bell", Icon: '🔔', Name: "Liberty Bell", Progress: 0.6, Badge: "loud"},
		{ID: "clover", Label: "Clover", Icon: '🍀', Name: "Four Leaf", Progress: 0.15, Badge: "lucky"},
		{ID: "gem", Label: "Gem", Icon: '💎', Name: "Blue Gem", Progress: 0.95, Badge: "rare"},
		{ID: "seven", Label: "Seven", Icon: '7', Name: "Lucky Seven", Progress: 0.5, Badge: "jackpot"},
	}
}

// startSpin builds a fresh session and starts the animation. Ignored while a
// spin is in flight.
func (a *App) startSpin() {
	if a.controller != nil && a.controller.Phase() != spin.PhaseIdle {
		return
	}
	if len(a.pool) < 2 {
		a.view.ShowToast("need at least two slots to spin", present.ToastError)
		return
	}

	// Audio is created on the first user gesture.
	_ = a.sounds.Initialize()

	if a.presenter != nil {
		a.presenter.Reset()
	}
	sessionID := uuid.NewString()

	accessors := present.DefaultAccessors()
	base := a.cfg.Cover.BaseURL
	accessors.CoverURL = func(id string) string {
		return base + "/sessions/" + id + "/cover"
	}
	a.presenter = present.NewPresenter(present.Config{
		SessionID: sessionID,
		Accessors: accessors,
		View:      a.view,
		Toaster:   a.view,
		Confetti:  a.view,
	})

	geom := a.view.Geometry()
	a.controller = spin.NewController(spin.Config{
		Geometry: geom,
		Bonus:    a.cfg.BonusConfig(),
		OnFrame: func(offset, progress float64) {
			a.view.SetOffset(offset)
			a.sounds.OnFrame(spin.CenteredTile(geom, offset), time.Now())
		},
		OnLanded: func(sess *reel.Session) {
			a.sounds.EndSpin()
			if sess.BonusLanded {
				a.sounds.PlayBonusFanfare()
			} else {
				a.sounds.PlayFanfare()
			}
		},
		OnResult: func(sess *reel.Session) {
			a.sounds.PlayPop()
			a.presenter.Present(sess)
		},
	})

	a.sounds.BeginSpin()
	sess, err := a.controller.Start(a.pool)
	if err != nil {
		a.sounds.EndSpin()
		a.view.ShowToast(err.Error(), present.ToastError)
		return
	}
	a.sounds.PlayWhoosh()
	a.view.SetStrip(sess.Items)
}

// dismiss closes the result view, or reports the app should quit when
// already idle.
func (a *App) dismiss() bool {
	if a.controller == nil || a.controller.Phase() == spin.PhaseIdle {
		return false
	}
	a.controller.Reset()
	if a.presenter != nil {
		a.presenter.Reset()
	}
	a.sounds.EndSpin()
	a.view.Reset()
	return true
}

func (a *App) toggleMute() {
	if a.sounds.ToggleMute() {
		a.view.ShowToast("sound on", present.ToastInfo)
	} else {
		a.view.ShowToast("sound off", present.ToastInfo)
	}
}

func (a *App) persistCover() {
	if a.presenter == nil || a.controller == nil || a.controller.Phase() != spin.PhaseResult {
		return
	}
	go func(p *present.Presenter) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = p.PersistWinner(ctx) // failures already surface as toasts
	}(a.presenter)
}

func (a *App) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyEscape:
			return a.dismiss()
		case ev.Key() == tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				a.startSpin()
			case 'm':
				a.toggleMute()
			case 'c':
				a.persistCover()
			case 'q':
				return false
			}
		}

	case *tcell.EventResize:
		a.screen.Sync()
	}

	return true
}

func (a *App) run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}

		case <-ticker.C:
			a.view.Draw()
		}
	}
}

func (a *App) cleanup() {
	if a.controller != nil {
		a.controller.Reset()
	}
	if a.presenter != nil {
		a.presenter.Reset()
	}
	a.screen.Fini()
}

func main() {
	cfg, err := config.NewFromYAML("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	app, err := NewApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer app.cleanup()

	app.run()
}
