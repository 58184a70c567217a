package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"git.lost.host/meutraa/smradar/internal/game"
	"git.lost.host/meutraa/smradar/internal/theme"
	"golang.org/x/term"
)

const (
	defaultWidth = 80
	summaryWidth = 56 // Columns used by a summary line before its bar
	maxRadar     = 200
)

type DefaultRenderer struct {
	Theme theme.Theme
	Width int

	buffer strings.Builder
	out    io.Writer
}

// NewRenderer writes to f, coloring output when mode is always, or when
// mode is auto and f is a terminal.
func NewRenderer(f *os.File, mode string) *DefaultRenderer {
	fd := int(f.Fd())
	tty := term.IsTerminal(fd)
	width := defaultWidth
	if tty {
		if w, _, err := term.GetSize(fd); nil == err && w > 0 {
			width = w
		}
	}
	plain := mode == "never" || (mode == "auto" && !tty)
	return &DefaultRenderer{
		Theme: &theme.DefaultTheme{Plain: plain},
		Width: width,
		out:   f,
	}
}

func (r *DefaultRenderer) Song(song *game.Song) {
	r.fill("%v (%v) [%v]\n", song.Title, song.Bpm, song.DirName)
	for _, c := range song.Charts {
		r.fill("  %v %2v %4v ", r.Theme.RenderDifficulty(c.Difficulty), c.Level, c.MaxCombo)
		r.fill("STR %v VOL %v AIR %v FRZ %v CHA %v",
			r.Theme.RenderValue(c.Stream),
			r.Theme.RenderValue(c.Voltage),
			r.Theme.RenderValue(c.Air),
			r.Theme.RenderValue(c.Freeze),
			r.Theme.RenderValue(c.Chaos),
		)
		r.fill(" %v\n", r.bar(c.GrooveRadar))
	}
}

// bar is the peak radar value, scaled to the space left on the line.
func (r *DefaultRenderer) bar(radar game.GrooveRadar) string {
	space := r.Width - summaryWidth
	if space <= 0 {
		return ""
	}
	peak := radar.Stream
	for _, v := range []int{radar.Voltage, radar.Air, radar.Freeze, radar.Chaos} {
		if v > peak {
			peak = v
		}
	}
	if peak > maxRadar {
		peak = maxRadar
	}
	return strings.Repeat("█", peak*space/maxRadar)
}

func (r *DefaultRenderer) Timeline(song *game.Song, chart *game.Chart) {
	r.fill("%v %v %v\n", song.Title, r.Theme.RenderDifficulty(chart.Info.Difficulty), chart.Info.Level)
	lanes := make([]string, len(game.Columns))
	for _, d := range chart.Content.Stream {
		for i := range lanes {
			lanes[i] = r.Theme.RenderEmpty()
		}
		hold := ""
		for _, a := range d.Arrows {
			if int(a.Direction) >= len(lanes) {
				continue
			}
			lanes[a.Direction] = r.Theme.RenderArrow(a, d.Color)
			if a.Kind == game.HoldStart {
				hold = fmt.Sprintf(" → %v", a.End)
			}
		}
		r.fill("%9.3fs %4v:%-3v %v%v\n",
			d.Time, d.Offset/game.MeasureUnits, d.Offset%game.MeasureUnits,
			strings.Join(lanes, " "), hold)
	}
	for _, b := range chart.Content.Gimmick.Soflan {
		r.fill("  bpm  %5v %v\n", b.Division, b.Bpm)
	}
	for _, s := range chart.Content.Gimmick.Stop {
		r.fill("  stop %5v %vs\n", s.Division, s.Time)
	}
}

func (r *DefaultRenderer) Failure(file string, err error) {
	r.fill("%v: %v\n", file, err)
}

func (r *DefaultRenderer) Totals(success, failure int) {
	r.fill("SUCCESS: %v\nFAILURE: %v\n", success, failure)
}

func (r *DefaultRenderer) fill(format string, a ...interface{}) {
	fmt.Fprintf(&r.buffer, format, a...)
}

func (r *DefaultRenderer) Flush() error {
	_, err := io.WriteString(r.out, r.buffer.String())
	r.buffer.Reset()
	return err
}
