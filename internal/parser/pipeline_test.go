package parser

import (
	"reflect"
	"testing"

	"git.lost.host/meutraa/smradar/internal/game"
	"git.lost.host/meutraa/smradar/internal/notes"
	"git.lost.host/meutraa/smradar/internal/score"
	"git.lost.host/meutraa/smradar/internal/testdata"
)

func TestSimfileToChart(t *testing.T) {
	p := DefaultParser{}
	sf, err := p.ParseString(testdata.Simfile, ".sm")
	if nil != err {
		t.Fatal(err)
	}
	src := sf.Sources[0]
	timeline, err := notes.Build(src.Measures, src.Bpms, src.Stops)
	if nil != err {
		t.Fatal(err)
	}
	scorer := score.DefaultScorer{}
	radar, err := scorer.Score(timeline)
	if nil != err {
		t.Fatal(err)
	}
	chart := game.NewChart(src.ChartType, src.Difficulty, src.Level, timeline, radar)

	expected, err := testdata.GetChart()
	if nil != err {
		t.Fatal(err)
	}
	if chart.Info != expected.Info {
		t.Log("Info    ", chart.Info)
		t.Log("Expected", expected.Info)
		t.Fail()
	}
	if !reflect.DeepEqual(chart.Content, expected.Content) {
		t.Log("Content ", chart.Content)
		t.Log("Expected", expected.Content)
		t.Fail()
	}
	if chart.MineCount() != 1 || chart.HoldCount() != 1 {
		t.Errorf("%v mines and %v holds", chart.MineCount(), chart.HoldCount())
	}
}
