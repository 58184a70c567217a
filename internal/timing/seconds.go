// Package timing converts chart offsets into elapsed seconds under tempo
// changes and stops.
package timing

import (
	"sort"

	"git.lost.host/meutraa/smradar/internal/game"
)

// ToSeconds returns the time in seconds at which offset is reached.
//
// bpms must be sorted by offset. Offsets before the first tempo change use
// the first tempo and offsets past the last one use the last tempo. A stop
// only delays offsets strictly after it.
func ToSeconds(offset int, bpms []game.Bpm, stops []game.Stop) (float64, error) {
	if len(bpms) == 0 {
		return 0, &game.TimingPreconditionError{}
	}

	seconds := 0.0
	done := 0
	current := bpms[0]
	reached := false
	for _, bpm := range bpms {
		if bpm.Offset >= offset {
			seconds += secondsPerBeat(current) * beats(offset-done)
			reached = true
			break
		}
		seconds += secondsPerBeat(current) * beats(bpm.Offset-done)
		done = bpm.Offset
		current = bpm
	}
	if !reached {
		seconds += secondsPerBeat(current) * beats(offset-done)
	}

	for _, stop := range stops {
		if stop.Offset < offset {
			seconds += stop.Seconds
		}
	}
	return seconds, nil
}

// Beats integrates the number of beats played from the start of the chart
// up to offset, one tempo segment at a time. The beats of a segment are
// its elapsed seconds times its tempo, so a stop counts as time spent at
// the tempo it interrupts.
func Beats(offset int, bpms []game.Bpm, stops []game.Stop) (float64, error) {
	if len(bpms) == 0 {
		return 0, &game.TimingPreconditionError{}
	}

	total := 0.0
	for i, bpm := range bpms {
		if bpm.Offset >= offset {
			break
		}
		end := offset
		if i+1 < len(bpms) && bpms[i+1].Offset < offset {
			end = bpms[i+1].Offset
		}
		start, err := ToSeconds(bpm.Offset, bpms, stops)
		if nil != err {
			return 0, err
		}
		stop, err := ToSeconds(end, bpms, stops)
		if nil != err {
			return 0, err
		}
		total += (stop - start) * bpm.Value / 60
	}
	return total, nil
}

// Sort orders copies of the tempo changes and stops by offset. Entries at
// the same offset keep their order.
func Sort(bpms []game.Bpm, stops []game.Stop) ([]game.Bpm, []game.Stop) {
	sb := make([]game.Bpm, len(bpms))
	copy(sb, bpms)
	sort.SliceStable(sb, func(i, j int) bool {
		return sb[i].Offset < sb[j].Offset
	})

	ss := make([]game.Stop, len(stops))
	copy(ss, stops)
	sort.SliceStable(ss, func(i, j int) bool {
		return ss[i].Offset < ss[j].Offset
	})
	return sb, ss
}

func secondsPerBeat(bpm game.Bpm) float64 {
	return 60.0 / bpm.Value
}

func beats(units int) float64 {
	return float64(units) / game.BeatUnits
}
