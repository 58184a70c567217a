package notes

import (
	"github.com/pkg/errors"

	"git.lost.host/meutraa/smradar/internal/game"
	"git.lost.host/meutraa/smradar/internal/timing"
)

// Build decodes every measure of a chart and resolves it into a timeline.
//
// Each hold head is paired with the first later release in its lane, the
// release is folded into the head and divisions left with no arrows are
// dropped. Divisions and hold releases are then stamped with seconds.
func Build(measures [][]string, bpms []game.Bpm, stops []game.Stop) (*game.Timeline, error) {
	if len(bpms) == 0 {
		return nil, &game.TimingPreconditionError{}
	}
	bpms, stops = timing.Sort(bpms, stops)

	raw := []game.Division{}
	for i, rows := range measures {
		divisions, err := DecodeMeasure(rows, i*game.MeasureUnits)
		if nil != err {
			return nil, errors.Wrapf(err, "measure %v", i)
		}
		raw = append(raw, divisions...)
	}

	resolved := make([]game.Division, 0, len(raw))
	for i, div := range raw {
		arrows := make([]game.Arrow, 0, len(div.Arrows))
		for _, arrow := range div.Arrows {
			switch arrow.Kind {
			case game.HoldEnd:
				// Only present as the end of its hold head
				continue
			case game.HoldStart:
				end, err := findHoldEnd(raw[i+1:], arrow.Direction)
				if nil != err {
					return nil, &game.UnresolvedHoldError{Direction: arrow.Direction, Offset: div.Offset}
				}
				arrow.End = end
				if arrow.EndTime, err = timing.ToSeconds(end, bpms, stops); nil != err {
					return nil, err
				}
			}
			arrows = append(arrows, arrow)
		}
		if len(arrows) == 0 {
			continue
		}

		seconds, err := timing.ToSeconds(div.Offset, bpms, stops)
		if nil != err {
			return nil, err
		}
		resolved = append(resolved, game.Division{
			Arrows: arrows,
			Color:  div.Color,
			Offset: div.Offset,
			Time:   seconds,
		})
	}

	return &game.Timeline{
		Divisions: resolved,
		Bpms:      bpms,
		Stops:     stops,
	}, nil
}

var errNoHoldEnd = errors.New("no hold end")

// findHoldEnd returns the offset of the first release in lane d.
func findHoldEnd(following []game.Division, d game.Direction) (int, error) {
	for _, div := range following {
		for _, arrow := range div.Arrows {
			if arrow.IsHoldEnd(d) {
				return div.Offset, nil
			}
		}
	}
	return 0, errNoHoldEnd
}
