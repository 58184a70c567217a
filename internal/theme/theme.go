package theme

import "git.lost.host/meutraa/smradar/internal/game"

type Theme interface {
	RenderArrow(arrow game.Arrow, color game.Color) string
	RenderEmpty() string
	RenderDifficulty(d game.Difficulty) string
	RenderValue(value int) string
}
