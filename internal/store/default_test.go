package store

import (
	"path/filepath"
	"reflect"
	"testing"

	"git.lost.host/meutraa/smradar/internal/game"
	"git.lost.host/meutraa/smradar/internal/testdata"
)

func open(t *testing.T) *DefaultStore {
	t.Helper()
	s := &DefaultStore{}
	if err := s.Init(filepath.Join(t.TempDir(), "charts.db")); nil != err {
		t.Fatal(err)
	}
	t.Cleanup(s.Deinit)
	return s
}

func TestChartCache(t *testing.T) {
	s := open(t)
	chart, err := testdata.GetChart()
	if nil != err {
		t.Fatal(err)
	}

	if _, ok := s.Load("missing"); ok {
		t.Error("found a chart that was never saved")
	}

	s.Save("sum", chart)
	loaded, ok := s.Load("sum")
	if !ok {
		t.Fatal("saved chart not found")
	}
	if !reflect.DeepEqual(loaded, chart) {
		t.Log("Loaded  ", loaded)
		t.Log("Expected", chart)
		t.Fail()
	}

	// Saving again replaces the chart
	chart.Info.Level = 10
	s.Save("sum", chart)
	loaded, _ = s.Load("sum")
	if loaded.Info.Level != 10 {
		t.Errorf("level %v, expected the replaced chart", loaded.Info.Level)
	}
}

func TestSongIndex(t *testing.T) {
	s := open(t)
	s.SaveSong("b.sm", &game.Song{DirName: "B", Title: "Second", Bpm: "150", Timestamp: "2021-01-01 00:00:00"})
	s.SaveSong("a.ssc", &game.Song{DirName: "A", Title: "First", Bpm: "90-180"})
	s.SaveSong("a.ssc", &game.Song{DirName: "A", Title: "First (renamed)", Bpm: "90-180"})

	songs, err := s.Songs()
	if nil != err {
		t.Fatal(err)
	}
	expected := []SongEntry{
		{DirName: "A", File: "a.ssc", Title: "First (renamed)", Bpm: "90-180"},
		{DirName: "B", File: "b.sm", Title: "Second", Bpm: "150", Timestamp: "2021-01-01 00:00:00"},
	}
	if !reflect.DeepEqual(songs, expected) {
		t.Log("Songs   ", songs)
		t.Log("Expected", expected)
		t.Fail()
	}
}

func TestInitBadPath(t *testing.T) {
	s := &DefaultStore{}
	if err := s.Init(filepath.Join(t.TempDir(), "missing", "dir", "charts.db")); nil == err {
		s.Deinit()
		t.Error("expected an error for a database in a missing directory")
	}
}
