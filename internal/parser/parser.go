package parser

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"git.lost.host/meutraa/smradar/internal/game"
)

type Parser interface {
	Parse(file string) (*Simfile, error)
}

// Simfile is a parsed .sm or .ssc file. Song.Charts is left empty, the
// charts still have to be built from Sources.
type Simfile struct {
	Song    game.Song
	Sources []*Source
}

// Source is one chart of a simfile, split into measures and rows but not
// yet decoded.
type Source struct {
	ChartType  game.ChartType
	Difficulty game.Difficulty
	Level      int
	Measures   [][]string
	Bpms       []game.Bpm
	Stops      []game.Stop
	Section    string // The raw note data
}

// Sum identifies the chart by everything its timeline depends on.
func (s *Source) Sum() string {
	h := sha256.New()
	fmt.Fprintf(h, "%v\n%v\n%v", s.Section, s.Bpms, s.Stops)
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}
