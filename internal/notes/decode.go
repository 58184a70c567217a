// Package notes turns the measure grids of a chart into a resolved,
// time stamped timeline.
package notes

import (
	"strconv"

	"git.lost.host/meutraa/smradar/internal/game"
)

// 0 – No note
// 1 – Normal note
// 2 – Hold head
// 3 – Hold tail
// M – Mine
var kindCodes = map[byte]game.ArrowKind{
	'0': game.None,
	'1': game.Tap,
	'2': game.HoldStart,
	'3': game.HoldEnd,
	'M': game.Mine,
}

// DecodeRow reads the arrows of a single grid row, "0012" is an Up tap and
// a Right hold head.
func DecodeRow(row string) ([]game.Arrow, error) {
	if len(row) != len(game.Columns) {
		return nil, &game.FormatError{Value: row, Reason: "row is not " + strconv.Itoa(len(game.Columns)) + " columns wide"}
	}
	arrows := []game.Arrow{}
	for i := 0; i < len(row); i++ {
		kind, ok := kindCodes[row[i]]
		if !ok {
			return nil, &game.FormatError{Value: row, Reason: "unknown arrow code " + strconv.Quote(string(row[i]))}
		}
		if kind == game.None {
			continue
		}
		arrows = append(arrows, game.Arrow{
			Direction: game.Columns[i],
			Kind:      kind,
		})
	}
	return arrows, nil
}

// ColorAt classifies an offset within a measure by the coarsest
// subdivision it falls on.
func ColorAt(offset int) game.Color {
	switch {
	case offset%(game.MeasureUnits/4) == 0:
		return game.Red
	case offset%(game.MeasureUnits/8) == 0:
		return game.Blue
	case offset%(game.MeasureUnits/16) == 0:
		return game.Yellow
	}
	return game.Green
}

// DecodeMeasure reads the rows of the measure starting at start. Rows
// without arrows produce no division, the rest are returned with their
// absolute offset and no time.
func DecodeMeasure(rows []string, start int) ([]game.Division, error) {
	n := len(rows)
	if n == 0 || game.MeasureUnits%n != 0 {
		return nil, &game.FormatError{
			Value:  strconv.Itoa(n),
			Reason: "measure row count does not divide " + strconv.Itoa(game.MeasureUnits),
		}
	}

	step := game.MeasureUnits / n
	divisions := []game.Division{}
	for i, row := range rows {
		arrows, err := DecodeRow(row)
		if nil != err {
			return nil, err
		}
		if len(arrows) == 0 {
			continue
		}
		offset := i * step
		divisions = append(divisions, game.Division{
			Arrows: arrows,
			Color:  ColorAt(offset),
			Offset: start + offset,
		})
	}
	return divisions, nil
}
