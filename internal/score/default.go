package score

import (
	"math"

	"github.com/pkg/errors"

	"git.lost.host/meutraa/smradar/internal/game"
	"git.lost.host/meutraa/smradar/internal/timing"
)

// Seconds added after the last arrow so short charts do not divide by
// almost nothing.
const trailingSilence = 1.6

var colorWeights = map[game.Color]float64{
	game.Red:    0,
	game.Blue:   2,
	game.Yellow: 4,
	game.Green:  5,
}

type DefaultScorer struct{}

func (s *DefaultScorer) Score(t *game.Timeline) (game.GrooveRadar, error) {
	var radar game.GrooveRadar
	if t.Empty() {
		return radar, nil
	}

	voltage, err := Voltage(t)
	if nil != err {
		return radar, errors.Wrap(err, "unable to score voltage")
	}
	freeze, err := Freeze(t)
	if nil != err {
		return radar, errors.Wrap(err, "unable to score freeze")
	}

	radar.Stream = Stream(t)
	radar.Voltage = voltage
	radar.Air = Air(t)
	radar.Freeze = freeze
	radar.Chaos = Chaos(t)
	return radar, nil
}

// MusicLength is the time of the last division, or of the last release of
// a hold starting there, plus the trailing silence.
func MusicLength(t *game.Timeline) float64 {
	last := t.Last()
	end := last.Time
	for _, a := range last.Arrows {
		if a.Kind == game.HoldStart && a.EndTime > end {
			end = a.EndTime
		}
	}
	return end + trailingSilence
}

// Stream scores the average note density.
func Stream(t *game.Timeline) int {
	notesPerMinute := float64(len(t.Divisions)) / MusicLength(t) * 60
	return int(streamCurve(notesPerMinute))
}

func streamCurve(npm float64) float64 {
	if npm < 300 {
		return npm / 3
	}
	return (npm - 139) * 100 / 161
}

// Voltage scores the peak density, the most divisions following any one
// division within a measure, scaled by the average tempo.
func Voltage(t *game.Timeline) (int, error) {
	bpm, err := averageBpm(t)
	if nil != err {
		return 0, err
	}
	maxDensityPerMinute := float64(maxDensity(t)) * bpm / 4
	return int(voltageCurve(maxDensityPerMinute)), nil
}

func voltageCurve(v float64) float64 {
	if v < 600 {
		return v / 6
	}
	return (v + 594) * 100 / 1194
}

// Air scores jumps and mines per minute.
func Air(t *game.Timeline) int {
	count := 0
	for i := range t.Divisions {
		if t.Divisions[i].IsJump() {
			count++
		}
		if t.Divisions[i].IsShock() {
			count++
		}
	}
	perMinute := float64(count) / MusicLength(t) * 60
	return int(airCurve(perMinute))
}

func airCurve(v float64) float64 {
	if v < 55 {
		return v * 20 / 11
	}
	return (v + 36) * 100 / 91
}

// Freeze scores the share of the chart's beats spent holding.
func Freeze(t *game.Timeline) (int, error) {
	holdBeats := 0.0
	for i := range t.Divisions {
		holdBeats += t.Divisions[i].HoldBeats()
	}
	beats, err := timing.Beats(t.EndOffset(), t.Bpms, t.Stops)
	if nil != err {
		return 0, err
	}
	if beats <= 0 {
		return 0, nil
	}
	return int(freezeCurve(10000 * holdBeats / beats)), nil
}

func freezeCurve(ratio float64) float64 {
	if ratio < 3500 {
		return ratio / 35
	}
	return (ratio + 2484) * 100 / 5984
}

// Chaos scores off beat arrows, weighted by how fine their subdivision is
// and how close they follow the previous division, corrected by how much
// the tempo changes and stops.
func Chaos(t *game.Timeline) int {
	base := 0.0
	for i := 1; i < len(t.Divisions); i++ {
		prev, next := t.Divisions[i-1], t.Divisions[i]
		gap := float64(next.Offset - prev.Offset)
		base += float64(len(next.Arrows)) * colorWeights[next.Color] * game.BeatUnits / gap
	}

	length := MusicLength(t)
	changePerMinute := tempoChurn(t.Bpms, t.Stops) * 60 / length
	correction := 1 + changePerMinute/1500
	return int(chaosCurve(base * correction * 100 / length))
}

func chaosCurve(degree float64) float64 {
	if degree < 2000 {
		return degree / 20
	}
	return (degree + 21605) * 100 / 23605
}

// averageBpm is the number of beats played up to the end of the chart per
// minute of music.
func averageBpm(t *game.Timeline) (float64, error) {
	beats, err := timing.Beats(t.EndOffset(), t.Bpms, t.Stops)
	if nil != err {
		return 0, err
	}
	return beats * 60 / MusicLength(t), nil
}

// maxDensity splits the timeline into one section per tempo and returns
// the highest density of any section. The final section ends before the
// last division.
func maxDensity(t *game.Timeline) int {
	bounds := make([]int, 0, len(t.Bpms)+1)
	for _, bpm := range t.Bpms {
		bounds = append(bounds, bpm.Offset)
	}
	bounds = append(bounds, t.Last().Offset)

	max := 0
	for i := 0; i+1 < len(bounds); i++ {
		section := []game.Division{}
		for _, d := range t.Divisions {
			if d.Offset >= bounds[i] && d.Offset < bounds[i+1] {
				section = append(section, d)
			}
		}
		if density := sectionDensity(section); density > max {
			max = density
		}
	}
	return max
}

// sectionDensity is the most divisions found after any division of the
// section and no more than a measure past it.
func sectionDensity(section []game.Division) int {
	max := 0
	for i, d := range section {
		count := 0
		for _, next := range section[i+1:] {
			if next.Offset > d.Offset+game.MeasureUnits {
				break
			}
			count++
		}
		if count > max {
			max = count
		}
	}
	return max
}

// tempoChurn walks tempo changes and stops in offset order, adding the
// size of every tempo change and the current tempo for every stop. A
// tempo change sorts before a stop at the same offset.
func tempoChurn(bpms []game.Bpm, stops []game.Stop) float64 {
	if len(bpms) == 0 {
		return 0
	}
	churn := 0.0
	current := bpms[0].Value
	i, j := 0, 0
	for i < len(bpms) || j < len(stops) {
		if j == len(stops) || (i < len(bpms) && bpms[i].Offset <= stops[j].Offset) {
			churn += math.Abs(bpms[i].Value - current)
			current = bpms[i].Value
			i++
			continue
		}
		churn += current
		j++
	}
	return churn
}
