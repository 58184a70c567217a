package theme

import (
	"fmt"

	"git.lost.host/meutraa/smradar/internal/game"
)

type rgb struct {
	R, G, B uint8
}

// DefaultTheme colors arrows by subdivision. Plain disables all escape
// sequences, for output that is not a terminal.
type DefaultTheme struct {
	Plain bool
}

func (t *DefaultTheme) paint(c rgb, s string) string {
	if t.Plain {
		return s
	}
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}

func (t *DefaultTheme) RenderArrow(arrow game.Arrow, color game.Color) string {
	switch arrow.Kind {
	case game.Mine:
		return t.paint(mineColor, mineSym)
	case game.HoldStart:
		return t.paint(noteColors[color], holdSym)
	}
	return t.paint(noteColors[color], syms[arrow.Direction])
}

func (t *DefaultTheme) RenderEmpty() string {
	return emptySym
}

func (t *DefaultTheme) RenderDifficulty(d game.Difficulty) string {
	return t.paint(difficultyColors[d], fmt.Sprintf("%-9v", d))
}

// RenderValue colors a radar value by how far past 100 it is.
func (t *DefaultTheme) RenderValue(value int) string {
	s := fmt.Sprintf("%3v", value)
	switch {
	case value >= 150:
		return t.paint(noteColors[game.Red], s)
	case value >= 100:
		return t.paint(noteColors[game.Yellow], s)
	}
	return s
}

const (
	mineSym  = "⨯"
	holdSym  = "◉"
	emptySym = "·"
)

var (
	syms       = [...]string{"←", "↓", "↑", "→"}
	mineColor  = rgb{106, 106, 106}
	noteColors = map[game.Color]rgb{
		game.Red:    {236, 30, 0},  // 1/4
		game.Blue:   {0, 118, 236}, // 1/8
		game.Yellow: {236, 195, 0}, // 1/16
		game.Green:  {0, 236, 128}, // finer
	}
	difficultyColors = map[game.Difficulty]rgb{
		game.Beginner:  {173, 236, 236},
		game.Easy:      {236, 195, 0},
		game.Medium:    {236, 30, 0},
		game.Hard:      {0, 236, 128},
		game.Challenge: {106, 0, 236},
		game.Edit:      {106, 106, 106},
	}
)
