package score

import (
	"git.lost.host/meutraa/smradar/internal/game"
)

type Scorer interface {
	// Score reduces a resolved timeline to its groove radar
	Score(t *game.Timeline) (game.GrooveRadar, error)
}
