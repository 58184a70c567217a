package parser

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"git.lost.host/meutraa/smradar/internal/game"
)

const timestampLayout = "2006-01-02 15:04:05"

type DefaultParser struct{}

// Parse reads a .sm or .ssc file. Charts for layouts other than
// dance-single are skipped.
func (p *DefaultParser) Parse(file string) (*Simfile, error) {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, err
	}
	info, err := os.Stat(file)
	if nil != err {
		return nil, err
	}

	sf, err := p.ParseString(string(data), filepath.Ext(file))
	if nil != err {
		return nil, errors.Wrapf(err, "unable to parse %v", file)
	}

	sf.Song.DirName = filepath.Base(filepath.Dir(file))
	sf.Song.Timestamp = info.ModTime().Local().Format(timestampLayout)
	return sf, nil
}

// ParseString parses simfile content as if it was read from a file with
// the given extension, without any file metadata.
func (p *DefaultParser) ParseString(content, ext string) (*Simfile, error) {
	content = stripComments(content)
	if strings.EqualFold(ext, ".ssc") {
		return p.parseSsc(content)
	}
	return p.parseSm(content)
}

func (p *DefaultParser) song(props *properties, bpms []game.Bpm) (game.Song, error) {
	title, _ := props.get("TITLE")
	music, _ := props.get("MUSIC")
	banner, _ := props.get("BANNER")
	offset, err := parseOffset(props.get("OFFSET"))
	if nil != err {
		return game.Song{}, err
	}
	display, ok := props.get("DISPLAYBPM")
	return game.Song{
		Title:  title,
		Charts: []game.ChartInfo{},
		Bpm:    displayBpm(display, ok, bpms),
		Music: game.Music{
			Path:   music,
			Offset: offset,
		},
		Banner: banner,
	}, nil
}

func (p *DefaultParser) timing(props *properties, fallback *properties) ([]game.Bpm, []game.Stop, error) {
	bpmString, ok := props.get("BPMS")
	if !ok && nil != fallback {
		bpmString, _ = fallback.get("BPMS")
	}
	bpms, err := parseBpms(bpmString)
	if nil != err {
		return nil, nil, err
	}

	stopString, ok := props.get("STOPS")
	if !ok && nil != fallback {
		stopString, _ = fallback.get("STOPS")
	}
	stops, err := parseStops(stopString)
	if nil != err {
		return nil, nil, err
	}
	return bpms, stops, nil
}

// parseSm reads the NOTES records of an .sm file, each is
// type:description:difficulty:meter:radar:notes.
func (p *DefaultParser) parseSm(content string) (*Simfile, error) {
	props := readProperties(content)
	bpms, stops, err := p.timing(props, nil)
	if nil != err {
		return nil, err
	}
	song, err := p.song(props, bpms)
	if nil != err {
		return nil, err
	}

	sf := &Simfile{Song: song, Sources: []*Source{}}
	for _, record := range props.notes {
		fields := strings.Split(record, ":")
		if len(fields) < 6 {
			return nil, &game.FormatError{Value: record, Reason: "NOTES record has fewer than 6 fields"}
		}
		chartType, ok := game.ChartTypeMap[strings.TrimSpace(fields[0])]
		if !ok || chartType != game.DanceSingle {
			continue
		}
		difficulty, err := game.ParseDifficulty(strings.TrimSpace(fields[2]))
		if nil != err {
			return nil, err
		}
		level, err := parseLevel(fields[3])
		if nil != err {
			return nil, err
		}
		sf.Sources = append(sf.Sources, &Source{
			ChartType:  chartType,
			Difficulty: difficulty,
			Level:      level,
			Measures:   splitMeasures(fields[5]),
			Bpms:       bpms,
			Stops:      stops,
			Section:    fields[5],
		})
	}
	return sf, nil
}

// parseSsc reads an .ssc file, where every chart follows a #NOTEDATA:;
// marker and may override the song's BPMS and STOPS.
func (p *DefaultParser) parseSsc(content string) (*Simfile, error) {
	parts := strings.Split(content, "#NOTEDATA:;")
	common := readProperties(parts[0])
	// Every chart may bring its own tempo, the song's is only a default
	var bpms []game.Bpm
	if s, ok := common.get("BPMS"); ok {
		var err error
		if bpms, err = parseBpms(s); nil != err {
			return nil, err
		}
	}
	song, err := p.song(common, bpms)
	if nil != err {
		return nil, err
	}

	sf := &Simfile{Song: song, Sources: []*Source{}}
	for _, part := range parts[1:] {
		props := readProperties(part)
		stepsType, _ := props.get("STEPSTYPE")
		chartType, ok := game.ChartTypeMap[strings.TrimSpace(stepsType)]
		if !ok || chartType != game.DanceSingle {
			continue
		}
		d, _ := props.get("DIFFICULTY")
		difficulty, err := game.ParseDifficulty(strings.TrimSpace(d))
		if nil != err {
			return nil, err
		}
		meter, _ := props.get("METER")
		level, err := parseLevel(meter)
		if nil != err {
			return nil, err
		}
		chartBpms, stops, err := p.timing(props, common)
		if nil != err {
			return nil, err
		}
		section := ""
		if len(props.notes) > 0 {
			section = props.notes[0]
		}
		sf.Sources = append(sf.Sources, &Source{
			ChartType:  chartType,
			Difficulty: difficulty,
			Level:      level,
			Measures:   splitMeasures(section),
			Bpms:       chartBpms,
			Stops:      stops,
			Section:    section,
		})
	}
	return sf, nil
}
