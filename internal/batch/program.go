// Package batch converts a directory of simfiles into chart json.
package batch

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"git.lost.host/meutraa/smradar/internal/audio"
	"git.lost.host/meutraa/smradar/internal/game"
	"git.lost.host/meutraa/smradar/internal/notes"
	"git.lost.host/meutraa/smradar/internal/parser"
	"git.lost.host/meutraa/smradar/internal/render"
	"git.lost.host/meutraa/smradar/internal/score"
	"git.lost.host/meutraa/smradar/internal/store"
	"github.com/pkg/errors"
)

type Program struct {
	Parser   parser.Parser
	Scorer   score.Scorer
	Store    store.Store // nil when caching is disabled
	Renderer render.Renderer

	Output     string
	Jobs       int
	ProbeAudio bool
	Quiet      bool
	Dump       *game.Difficulty // nil when no timeline is dumped
}

type result struct {
	file   string
	song   *game.Song
	charts []*game.Chart
	err    error
}

// Find lists the simfiles below root. An .ssc file replaces the .sm file
// with the same name next to it.
func (p *Program) Find(root string) ([]string, error) {
	var files []string
	ssc := map[string]bool{}
	if err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if nil != err {
			return err
		}
		if info.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".ssc":
			ssc[strings.TrimSuffix(path, ".ssc")] = true
			files = append(files, path)
		case ".sm":
			files = append(files, path)
		}
		return nil
	}); nil != err {
		return nil, errors.Wrap(err, "unable to walk song directory")
	}

	n := 0
	for _, f := range files {
		if filepath.Ext(f) == ".sm" && ssc[strings.TrimSuffix(f, ".sm")] {
			continue
		}
		files[n] = f
		n++
	}
	files = files[:n]
	sort.Strings(files)
	return files, nil
}

// Build turns a chart source into a scored chart, going through the cache
// when there is one.
func (p *Program) Build(src *parser.Source) (*game.Chart, error) {
	sum := src.Sum()
	if nil != p.Store {
		if chart, ok := p.Store.Load(sum); ok {
			// The sum only covers the notes and timing
			chart.Info.ChartType = src.ChartType
			chart.Info.Difficulty = src.Difficulty
			chart.Info.Level = src.Level
			return chart, nil
		}
	}

	t, err := notes.Build(src.Measures, src.Bpms, src.Stops)
	if nil != err {
		return nil, err
	}
	radar, err := p.Scorer.Score(t)
	if nil != err {
		return nil, err
	}
	chart := game.NewChart(src.ChartType, src.Difficulty, src.Level, t, radar)

	if nil != p.Store {
		p.Store.Save(sum, chart)
	}
	return chart, nil
}

// Process parses one simfile and builds all of its charts. A single bad
// chart fails the whole file.
func (p *Program) Process(file string) (*game.Song, []*game.Chart, error) {
	sim, err := p.Parser.Parse(file)
	if nil != err {
		return nil, nil, err
	}

	song := sim.Song
	charts := make([]*game.Chart, 0, len(sim.Sources))
	for _, src := range sim.Sources {
		chart, err := p.Build(src)
		if nil != err {
			return nil, nil, errors.Wrapf(err, "%v %v", src.ChartType, src.Difficulty)
		}
		charts = append(charts, chart)
		song.Charts = append(song.Charts, chart.Info)
	}
	if nil == song.Charts {
		song.Charts = []game.ChartInfo{}
	}

	if p.ProbeAudio && audio.Supported(song.Music.Path) {
		music := filepath.Join(filepath.Dir(file), song.Music.Path)
		if length, err := audio.Length(music); nil != err {
			log.Println(err)
		} else {
			song.Music.Length = length.Seconds()
		}
	}
	return &song, charts, nil
}

// Run processes files with at most Jobs of them at a time, then writes
// and prints the results in file order.
func (p *Program) Run(files []string) error {
	results := make([]result, len(files))
	jobs := p.Jobs
	if jobs < 1 {
		jobs = 1
	}
	sem := make(chan struct{}, jobs)
	var wg sync.WaitGroup

	start := time.Now()
	for i, file := range files {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, file string) {
			defer wg.Done()
			defer func() { <-sem }()
			song, charts, err := p.Process(file)
			results[i] = result{file: file, song: song, charts: charts, err: err}
		}(i, file)
	}
	wg.Wait()
	log.Printf("processed %v files in %v\n", len(files), time.Since(start))

	written := map[string]bool{}
	songs := make([]*game.Song, 0, len(results))
	success, failure := 0, 0
	for _, r := range results {
		if nil == r.err {
			r.err = p.write(r.song, r.charts, written)
		}
		if nil != r.err {
			failure++
			log.Printf("unable to convert %v: %v\n", r.file, r.err)
			p.Renderer.Failure(r.file, r.err)
			continue
		}
		success++
		songs = append(songs, r.song)
		if nil != p.Store {
			p.Store.SaveSong(r.file, r.song)
		}
		if !p.Quiet {
			p.Renderer.Song(r.song)
		}
		if nil != p.Dump {
			for _, c := range r.charts {
				if c.Info.Difficulty == *p.Dump {
					p.Renderer.Timeline(r.song, c)
				}
			}
		}
	}

	if err := p.writeSongs(songs); nil != err {
		return err
	}
	if nil != p.Store {
		if indexed, err := p.Store.Songs(); nil != err {
			log.Println(err)
		} else {
			log.Printf("%v simfiles in the song index\n", len(indexed))
		}
	}
	p.Renderer.Totals(success, failure)
	return p.Renderer.Flush()
}

// write stores the content of every chart of song in its own file. Paths
// already in written get a numbered suffix, so several Edit charts, or two
// simfiles in one directory, do not replace each other.
func (p *Program) write(song *game.Song, charts []*game.Chart, written map[string]bool) error {
	dir := filepath.Join(p.Output, song.DirName)
	if err := os.MkdirAll(dir, 0755); nil != err {
		return errors.Wrap(err, "unable to create output directory")
	}
	for _, c := range charts {
		data, err := json.Marshal(c.Content)
		if nil != err {
			return errors.Wrapf(err, "unable to encode %v", c.Info.Difficulty)
		}
		file := outputFile(dir, c.Info.Difficulty, written)
		if err := ioutil.WriteFile(file, data, 0644); nil != err {
			return errors.Wrapf(err, "unable to write %v", file)
		}
	}
	return nil
}

func outputFile(dir string, d game.Difficulty, written map[string]bool) string {
	file := filepath.Join(dir, d.String()+".json")
	for i := 2; written[file]; i++ {
		next := filepath.Join(dir, fmt.Sprintf("%v-%v.json", d, i))
		if !written[next] {
			log.Printf("%v already written, using %v\n", file, next)
			file = next
		}
	}
	written[file] = true
	return file
}

func (p *Program) writeSongs(songs []*game.Song) error {
	sort.SliceStable(songs, func(i, j int) bool {
		return songs[i].DirName < songs[j].DirName
	})
	if err := os.MkdirAll(p.Output, 0755); nil != err {
		return errors.Wrap(err, "unable to create output directory")
	}
	data, err := json.Marshal(songs)
	if nil != err {
		return errors.Wrap(err, "unable to encode song list")
	}
	return errors.Wrap(ioutil.WriteFile(filepath.Join(p.Output, "songs.json"), data, 0644), "unable to write song list")
}
