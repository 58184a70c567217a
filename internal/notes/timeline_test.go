package notes

import (
	"math"
	"testing"

	"github.com/pkg/errors"

	"git.lost.host/meutraa/smradar/internal/game"
)

var bpm120 = []game.Bpm{{Offset: 0, Value: 120}}

func TestBuildSingleTap(t *testing.T) {
	timeline, err := Build([][]string{{"1000", "0000", "0000", "0000"}}, bpm120, nil)
	if nil != err {
		t.Fatal(err)
	}
	if len(timeline.Divisions) != 1 {
		t.Fatalf("expected one division, got %v", timeline.Divisions)
	}
	d := timeline.Divisions[0]
	if d.Offset != 0 || d.Time != 0 || d.Color != game.Red {
		t.Errorf("unexpected division %+v", d)
	}
	if d.Arrows[0].End != 0 || d.Arrows[0].EndTime != 0 {
		t.Errorf("tap has a release %+v", d.Arrows[0])
	}
}

func TestBuildHold(t *testing.T) {
	measures := [][]string{
		{"0020", "0000", "1000", "0000"},
		{"0030", "0000", "0000", "0000"},
	}
	timeline, err := Build(measures, bpm120, nil)
	if nil != err {
		t.Fatal(err)
	}
	// The release only division is folded into the head
	if len(timeline.Divisions) != 2 {
		t.Fatalf("expected two divisions, got %+v", timeline.Divisions)
	}
	head := timeline.Divisions[0].Arrows[0]
	if head.Kind != game.HoldStart || head.Direction != game.Up {
		t.Fatalf("unexpected head %+v", head)
	}
	if head.End != game.MeasureUnits {
		t.Errorf("hold ends at %v, expected %v", head.End, game.MeasureUnits)
	}
	if math.Abs(head.EndTime-2) > 1e-9 {
		t.Errorf("hold ends at %vs, expected 2s", head.EndTime)
	}
	if timeline.Divisions[1].Offset != 96 || math.Abs(timeline.Divisions[1].Time-1) > 1e-9 {
		t.Errorf("unexpected tap %+v", timeline.Divisions[1])
	}
	for _, d := range timeline.Divisions {
		for _, a := range d.Arrows {
			if a.Kind == game.HoldEnd {
				t.Error("hold end left in timeline", d)
			}
		}
	}
}

func TestBuildHoldEndSharedWithTap(t *testing.T) {
	measures := [][]string{{"2000", "0000", "3100", "0000"}}
	timeline, err := Build(measures, bpm120, nil)
	if nil != err {
		t.Fatal(err)
	}
	if len(timeline.Divisions) != 2 {
		t.Fatalf("expected two divisions, got %+v", timeline.Divisions)
	}
	last := timeline.Divisions[1]
	if len(last.Arrows) != 1 || last.Arrows[0].Kind != game.Tap || last.Arrows[0].Direction != game.Down {
		t.Errorf("expected only the tap to remain, got %+v", last.Arrows)
	}
}

func TestBuildConsecutiveHolds(t *testing.T) {
	measures := [][]string{{"2000", "3000", "2000", "3000"}}
	timeline, err := Build(measures, bpm120, nil)
	if nil != err {
		t.Fatal(err)
	}
	if len(timeline.Divisions) != 2 {
		t.Fatalf("expected two divisions, got %+v", timeline.Divisions)
	}
	if timeline.Divisions[0].Arrows[0].End != 48 || timeline.Divisions[1].Arrows[0].End != 144 {
		t.Errorf("holds paired wrongly: %+v", timeline.Divisions)
	}
}

func TestBuildUnresolvedHold(t *testing.T) {
	tests := [][][]string{
		// Release in another lane
		{{"0020", "0000", "0000", "0003"}},
		// No release at all
		{{"2000", "0000", "0000", "0000"}, {"1000", "0000", "0000", "0000"}},
		// Release before the head
		{{"3000", "2000", "0000", "0000"}},
	}
	for _, measures := range tests {
		_, err := Build(measures, bpm120, nil)
		var ue *game.UnresolvedHoldError
		if !errors.As(err, &ue) {
			t.Errorf("%v: expected unresolved hold, got %v", measures, err)
		}
	}

	_, err := Build([][]string{{"0020", "0000", "0000", "0003"}}, bpm120, nil)
	var ue *game.UnresolvedHoldError
	if errors.As(err, &ue) && (ue.Direction != game.Up || ue.Offset != 0) {
		t.Errorf("unexpected error details %+v", ue)
	}
}

func TestBuildFormatErrors(t *testing.T) {
	tests := [][][]string{
		{{"1000", "0000", "0000", "0000", "0000"}},
		{{"1000", "0000", "0004", "0000"}},
		{{"1000", "0000", "00", "0000"}},
		{{"1000"}, {}},
	}
	for _, measures := range tests {
		_, err := Build(measures, bpm120, nil)
		var fe *game.FormatError
		if !errors.As(err, &fe) {
			t.Errorf("%v: expected a format error, got %v", measures, err)
		}
	}
}

func TestBuildNoBpms(t *testing.T) {
	_, err := Build([][]string{{"1000"}}, nil, nil)
	var te *game.TimingPreconditionError
	if !errors.As(err, &te) {
		t.Errorf("expected timing precondition error, got %v", err)
	}
}

func TestBuildTimesWithStopsAndTempo(t *testing.T) {
	bpms := []game.Bpm{{Offset: game.MeasureUnits, Value: 240}, {Offset: 0, Value: 120}}
	stops := []game.Stop{{Offset: game.BeatUnits, Seconds: 1}}
	measures := [][]string{
		{"1000", "0100", "0000", "0000"},
		{"0010", "0000", "0001", "0000"},
	}
	timeline, err := Build(measures, bpms, stops)
	if nil != err {
		t.Fatal(err)
	}
	expected := []float64{0, 0.5, 3, 3.5}
	if len(timeline.Divisions) != len(expected) {
		t.Fatalf("got %+v", timeline.Divisions)
	}
	for i, seconds := range expected {
		if math.Abs(timeline.Divisions[i].Time-seconds) > 1e-9 {
			t.Errorf("division %v at %v, expected %v", i, timeline.Divisions[i].Time, seconds)
		}
	}
	if timeline.Bpms[0].Offset != 0 {
		t.Error("bpms were not sorted", timeline.Bpms)
	}
}

func TestBuildDoesNotModifyDecodedDivisions(t *testing.T) {
	rows := []string{"2000", "0000", "3000", "0000"}
	before, err := DecodeMeasure(rows, 0)
	if nil != err {
		t.Fatal(err)
	}
	if _, err := Build([][]string{rows}, bpm120, nil); nil != err {
		t.Fatal(err)
	}
	after, _ := DecodeMeasure(rows, 0)
	if len(before) != len(after) || before[0].Arrows[0].End != 0 {
		t.Error("decoding is not stable", before, after)
	}
}
