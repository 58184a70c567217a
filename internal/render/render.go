package render

import (
	"git.lost.host/meutraa/smradar/internal/game"
)

type Renderer interface {
	// Song writes a summary line per chart of the song
	Song(song *game.Song)
	Timeline(song *game.Song, chart *game.Chart)
	Failure(file string, err error)
	Totals(success, failure int)
	Flush() error
}
