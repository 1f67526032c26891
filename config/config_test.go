package config

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/constants"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.BoardWidth != constants.DefaultBoardWidth || cfg.BoardHeight != constants.DefaultBoardHeight {
		t.Errorf("Expected %dx%d board, got %dx%d",
			constants.DefaultBoardWidth, constants.DefaultBoardHeight, cfg.BoardWidth, cfg.BoardHeight)
	}
	if !cfg.EnableSound || !cfg.EnableColors || !cfg.WallWrapping {
		t.Error("Sound, colors and wrapping should default to enabled")
	}
	if cfg.HighScore != 0 {
		t.Errorf("Expected high score 0, got %d", cfg.HighScore)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate, got %v", err)
	}
}

func TestWallColorFollowsWrapping(t *testing.T) {
	cfg := DefaultConfig()
	wrapColor := cfg.WallColor

	cfg.SetWallWrapping(false)
	if cfg.WallWrapping {
		t.Error("Expected solid walls")
	}
	if cfg.WallColor != tcell.ColorRed {
		t.Errorf("Expected red walls when solid, got %v", cfg.WallColor)
	}
	if cfg.WallColor == wrapColor {
		t.Error("Solid and wrapping walls should use different colours")
	}
}

func TestUpdateHighScoreNeverDecreases(t *testing.T) {
	cfg := DefaultConfig()

	steps := []struct {
		score uint32
		want  uint32
	}{
		{30, 30},
		{10, 30},
		{0, 30},
		{50, 50},
		{50, 50},
		{40, 50},
	}
	for i, s := range steps {
		cfg.UpdateHighScore(s.score)
		if cfg.HighScore != s.want {
			t.Errorf("Step %d: after score %d expected high score %d, got %d", i, s.score, s.want, cfg.HighScore)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		w, h    uint16
		wrap    bool
		wantErr bool
	}{
		{"default", 30, 20, true, false},
		{"single row", 10, 1, true, false},
		{"zero width", 0, 10, true, true},
		{"zero height", 10, 0, true, true},
		{"narrower than snake", uint16(constants.InitialSnakeLength), 10, true, true},
		{"narrowest wrapping", 5, 3, true, false},
		{"solid 5 wide", 5, 3, false, true},
		{"solid 6 wide", 6, 3, false, true},
		{"narrowest solid", 7, 3, false, false},
		{"solid default", 30, 20, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.BoardWidth, cfg.BoardHeight = tt.w, tt.h
			cfg.SetWallWrapping(tt.wrap)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error=%v, got %v", tt.wantErr, err)
			}
			if err != nil && !errors.Is(err, ErrBoardTooSmall) {
				t.Errorf("Expected ErrBoardTooSmall, got %v", err)
			}
		})
	}
}

func TestMinBoardWidth(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.MinBoardWidth(); got != constants.InitialSnakeLength+1 {
		t.Errorf("Expected wrapping minimum %d, got %d", constants.InitialSnakeLength+1, got)
	}

	cfg.SetWallWrapping(false)
	w := cfg.MinBoardWidth()
	// Seeded head sits InitialSnakeLength-1 cells right of the centre column
	if head := w/2 + constants.InitialSnakeLength - 1; head >= w {
		t.Errorf("Expected seeded head inside a %d-wide solid board, got column %d", w, head)
	}
	if head := (w-1)/2 + constants.InitialSnakeLength - 1; head < w-1 {
		t.Errorf("Expected %d to be the narrowest solid width, but %d-wide already fits", w, w-1)
	}
}
