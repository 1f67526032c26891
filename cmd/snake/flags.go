package main

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/snake/config"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/terminal"
	"github.com/urfave/cli/v3"
)

const version = "1.0.0"

var errBoardTooLarge = errors.New("board too large")

// options is the parsed command line
type options struct {
	cfg   *config.GameConfig
	debug bool
}

// newCommand builds the CLI; play runs once flags are parsed and validated
func newCommand(play func(context.Context, options) error) *cli.Command {
	return &cli.Command{
		Name:    "snake",
		Usage:   "classic snake in the terminal",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "no-sound",
				Aliases: []string{"m"},
				Usage:   "disable sound effects",
			},
			&cli.BoolFlag{
				Name:    "solid-walls",
				Aliases: []string{"s"},
				Usage:   "end the game at the board edge instead of wrapping",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "draw with the terminal's default colours (also NO_COLOR)",
			},
			&cli.IntFlag{
				Name:  "width",
				Value: constants.DefaultBoardWidth,
				Usage: "board width in cells",
			},
			&cli.IntFlag{
				Name:  "height",
				Value: constants.DefaultBoardHeight,
				Usage: "board height in cells",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "write a debug log to logs/snake.log",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := optionsFromFlags(cmd)
			if err != nil {
				return err
			}
			return play(ctx, opts)
		},
	}
}

// optionsFromFlags maps flags onto a validated GameConfig
func optionsFromFlags(cmd *cli.Command) (options, error) {
	width, height := int(cmd.Int("width")), int(cmd.Int("height"))
	if width > math.MaxUint16 || height > math.MaxUint16 {
		return options{}, fmt.Errorf("%w: %dx%d", errBoardTooLarge, width, height)
	}
	if width < 1 || height < 1 {
		return options{}, fmt.Errorf("%w: %dx%d", config.ErrBoardTooSmall, width, height)
	}

	cfg := config.DefaultConfig()
	cfg.BoardWidth = uint16(width)
	cfg.BoardHeight = uint16(height)
	cfg.EnableSound = !cmd.Bool("no-sound")
	cfg.EnableColors = !cmd.Bool("no-color") && !terminal.ColorsDisabled()
	cfg.SetWallWrapping(!cmd.Bool("solid-walls"))

	if err := cfg.Validate(); err != nil {
		return options{}, err
	}
	return options{cfg: cfg, debug: cmd.Bool("debug")}, nil
}
