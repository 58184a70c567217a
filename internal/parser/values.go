package parser

import (
	"math"
	"strconv"
	"strings"

	"git.lost.host/meutraa/smradar/internal/game"
)

// pairs reads a comma separated list of beat=value pairs, converting the
// beat to an offset.
func pairs(field, s string) ([]int, []float64, error) {
	offsets, values := []int{}, []float64{}
	s = strings.TrimSpace(s)
	if s == "" {
		return offsets, values, nil
	}
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		as := strings.Split(pair, "=")
		if len(as) != 2 {
			return nil, nil, &game.FormatError{Value: pair, Reason: field + " entry is not beat=value"}
		}
		beat, err := strconv.ParseFloat(strings.TrimSpace(as[0]), 64)
		if nil != err {
			return nil, nil, &game.FormatError{Value: pair, Reason: field + " beat is not a number"}
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(as[1]), 64)
		if nil != err {
			return nil, nil, &game.FormatError{Value: pair, Reason: field + " value is not a number"}
		}
		offsets = append(offsets, int(math.Round(beat*game.BeatUnits)))
		values = append(values, value)
	}
	return offsets, values, nil
}

func parseBpms(s string) ([]game.Bpm, error) {
	offsets, values, err := pairs("BPMS", s)
	if nil != err {
		return nil, err
	}
	if len(offsets) == 0 {
		return nil, &game.TimingPreconditionError{}
	}
	bpms := make([]game.Bpm, len(offsets))
	for i := range offsets {
		if values[i] <= 0 {
			return nil, &game.FormatError{Value: strconv.FormatFloat(values[i], 'f', -1, 64), Reason: "BPMS value must be positive"}
		}
		bpms[i] = game.Bpm{Offset: offsets[i], Value: values[i]}
	}
	return bpms, nil
}

func parseStops(s string) ([]game.Stop, error) {
	offsets, values, err := pairs("STOPS", s)
	if nil != err {
		return nil, err
	}
	stops := make([]game.Stop, len(offsets))
	for i := range offsets {
		if values[i] < 0 {
			return nil, &game.FormatError{Value: strconv.FormatFloat(values[i], 'f', -1, 64), Reason: "STOPS value must not be negative"}
		}
		stops[i] = game.Stop{Offset: offsets[i], Seconds: values[i]}
	}
	return stops, nil
}

func parseLevel(s string) (int, error) {
	level, err := strconv.Atoi(strings.TrimSpace(s))
	if nil != err {
		return 0, &game.FormatError{Value: s, Reason: "METER is not an integer"}
	}
	return level, nil
}

func parseOffset(s string, ok bool) (float64, error) {
	if !ok || strings.TrimSpace(s) == "" {
		return 0, nil
	}
	offset, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if nil != err {
		return 0, &game.FormatError{Value: s, Reason: "OFFSET is not a number"}
	}
	return offset, nil
}

func roundString(v float64) string {
	return strconv.FormatFloat(math.Round(v), 'f', -1, 64)
}

// displayBpm formats the DISPLAYBPM field, "150" or "100-200", falling back
// to the range of the bpms when it is missing or unreadable.
func displayBpm(s string, ok bool, bpms []game.Bpm) string {
	s = strings.TrimSpace(s)
	if ok && s == "*" {
		return s
	}
	if ok && s != "" {
		split := strings.Split(s, ":")
		min, err := strconv.ParseFloat(split[0], 64)
		if nil == err && len(split) == 1 {
			return roundString(min)
		}
		if nil == err && len(split) == 2 {
			max, err := strconv.ParseFloat(split[1], 64)
			if nil == err {
				return roundString(min) + "-" + roundString(max)
			}
		}
	}

	if len(bpms) == 0 {
		return ""
	}
	min, max := bpms[0].Value, bpms[0].Value
	for _, bpm := range bpms {
		min = math.Min(min, bpm.Value)
		max = math.Max(max, bpm.Value)
	}
	if max-min < 0.1 {
		return roundString(max)
	}
	return roundString(min) + "-" + roundString(max)
}
