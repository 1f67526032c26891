// Package app runs the fixed-timestep loop that ties input, simulation,
// rendering and sound together. All game state is owned by the goroutine
// calling Run.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/audio"
	"github.com/lixenwraith/snake/config"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/input"
	"github.com/lixenwraith/snake/render"
)

// ErrMissingDependency is returned by New when a required collaborator is nil
var ErrMissingDependency = errors.New("missing dependency")

// Deps are the collaborators the loop drives
// Renderer and Events are required; the rest have defaults
type Deps struct {
	Renderer render.Renderer
	Events   EventSource
	Mapper   input.Mapper
	Sound    audio.SoundSystem
	Clock    engine.Clock
	Rand     *rand.Rand
}

// App is one interactive session
type App struct {
	game     *engine.Game
	cfg      *config.GameConfig
	renderer render.Renderer
	events   EventSource
	mapper   input.Mapper
	sound    audio.SoundSystem
	clock    engine.Clock

	steer steering
	quit  bool
}

// New builds the game from cfg and wires the collaborators
func New(cfg *config.GameConfig, deps Deps) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if deps.Renderer == nil {
		return nil, fmt.Errorf("%w: renderer", ErrMissingDependency)
	}
	if deps.Events == nil {
		return nil, fmt.Errorf("%w: event source", ErrMissingDependency)
	}
	if deps.Mapper == nil {
		deps.Mapper = input.NewKeyMapper(nil)
	}
	if deps.Sound == nil {
		deps.Sound = audio.NoSound{}
	}
	if deps.Clock == nil {
		deps.Clock = engine.NewTimeProvider()
	}

	return &App{
		game:     engine.NewGame(cfg.BoardWidth, cfg.BoardHeight, cfg.WallWrapping, deps.Rand),
		cfg:      cfg,
		renderer: deps.Renderer,
		events:   deps.Events,
		mapper:   deps.Mapper,
		sound:    deps.Sound,
		clock:    deps.Clock,
	}, nil
}

// Game exposes the running game for inspection
func (a *App) Game() *engine.Game {
	return a.game
}

// Run drives the loop until quit or ctx cancellation
// Only polling failures are returned
func (a *App) Run(ctx context.Context) error {
	lastTick := a.clock.Now()

	for !a.quit {
		if ctx.Err() != nil {
			return nil
		}

		a.renderer.Render(a.game, a.cfg)

		timeout := max(0, constants.TickInterval-a.clock.Now().Sub(lastTick))
		ev, err := a.events.Poll(ctx, timeout)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return fmt.Errorf("poll input: %w", err)
		}
		if ev != nil {
			a.handleEvent(ev)
		}

		if a.clock.Now().Sub(lastTick) >= constants.TickInterval {
			a.tick()
			lastTick = a.clock.Now()
			a.steer.Flush(a.game)
		}
	}
	return nil
}

// handleEvent applies one terminal event immediately
func (a *App) handleEvent(ev tcell.Event) {
	if _, ok := ev.(*tcell.EventResize); ok {
		a.renderer.Sync()
		return
	}

	action := a.mapper.Map(ev)
	switch action.Kind {
	case input.ActionMove:
		a.steer.Steer(a.game, action.Direction)
	case input.ActionPause:
		a.game.TogglePause()
	case input.ActionRestart:
		a.game.Reset()
		a.steer.Clear()
	case input.ActionQuit:
		a.quit = true
	}
}

// tick advances the simulation and reports the outcome
func (a *App) tick() {
	ev := a.game.Update()
	if ev == engine.EventNone {
		return
	}
	a.sound.Play(ev)

	if ev == engine.EventGameOver {
		a.cfg.UpdateHighScore(a.game.Score())
		log.Printf("game over: score=%d length=%d high=%d", a.game.Score(), a.game.Snake().Len(), a.cfg.HighScore)
	}
}
