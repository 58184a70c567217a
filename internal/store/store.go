package store

import (
	"git.lost.host/meutraa/smradar/internal/game"
)

type Store interface {
	Init(path string) error
	Deinit()

	// Load a chart previously built from the source with this sum
	Load(sum string) (*game.Chart, bool)

	// Save a built chart under the sum of its source
	Save(sum string, chart *game.Chart)

	SaveSong(file string, song *game.Song)
	Songs() ([]SongEntry, error)
}

type SongEntry struct {
	DirName   string
	File      string
	Title     string
	Bpm       string
	Timestamp string
}
