package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/lixenwraith/snake/app"
	"github.com/lixenwraith/snake/audio"
	"github.com/lixenwraith/snake/config"
	"github.com/lixenwraith/snake/render"
	"github.com/lixenwraith/snake/terminal"
)

func main() {
	if err := newCommand(play).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

const farewell = "Thanks for playing Snake!"

// play runs a session and says goodbye once the terminal is restored
func play(ctx context.Context, opts options) error {
	return playThen(ctx, opts, session, os.Stdout)
}

func playThen(ctx context.Context, opts options, run func(context.Context, options) error, out io.Writer) error {
	if err := run(ctx, opts); err != nil {
		return err
	}
	fmt.Fprintln(out, farewell)
	return nil
}

// session runs one interactive game on the controlling terminal
func session(ctx context.Context, opts options) error {
	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	id := uuid.NewString()
	cfg := opts.cfg
	log.Printf("session %s start: board=%dx%d wrapping=%v sound=%v colors=%v",
		id, cfg.BoardWidth, cfg.BoardHeight, cfg.WallWrapping, cfg.EnableSound, cfg.EnableColors)

	screen, err := terminal.Open()
	if err != nil {
		log.Printf("session %s: open terminal: %v", id, err)
		return fmt.Errorf("open terminal: %w", err)
	}
	defer terminal.Close(screen)

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.HandleCrash(r)
		}
	}()

	sound, cleanup := setupSound(cfg, screen)
	defer cleanup()

	events := app.NewScreenEvents(screen)
	defer events.Close()

	game, err := app.New(cfg, app.Deps{
		Renderer: render.NewTerminalRenderer(screen),
		Events:   events,
		Sound:    sound,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = game.Run(ctx)
	if err != nil {
		log.Printf("session %s: %v", id, err)
	}
	log.Printf("session %s end: high score %d", id, cfg.HighScore)
	return err
}

// setupSound picks the richest available sound backend
// beep speaker first, terminal bell if the audio device is unavailable
func setupSound(cfg *config.GameConfig, screen tcell.Screen) (audio.SoundSystem, func()) {
	if !cfg.EnableSound {
		return audio.NoSound{}, func() {}
	}

	audioCfg := audio.LoadAudioConfig()
	if !audioCfg.Enabled {
		return audio.NoSound{}, func() {}
	}

	manager := audio.NewSoundManager(audioCfg)
	if err := manager.Initialize(); err != nil {
		log.Printf("audio init failed, falling back to terminal bell: %v", err)
		return audio.NewBellSound(screen), func() {}
	}
	return manager, manager.Cleanup
}
