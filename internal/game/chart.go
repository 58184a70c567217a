package game

type ChartInfo struct {
	ChartType  ChartType  `json:"chart_type"`
	Difficulty Difficulty `json:"difficulty"`
	Level      int        `json:"level"`
	MaxCombo   int        `json:"max_combo"`
	GrooveRadar
}

// Content is what the viewer loads for a single chart.
type Content struct {
	Stream     []Division `json:"stream"`
	StreamInfo []int      `json:"stream_info"`
	Gimmick    Gimmick    `json:"gimmick"`
}

type Chart struct {
	Info    ChartInfo `json:"info"`
	Content Content   `json:"content"`
}

func NewChart(chartType ChartType, difficulty Difficulty, level int, t *Timeline, radar GrooveRadar) *Chart {
	return &Chart{
		Info: ChartInfo{
			ChartType:   chartType,
			Difficulty:  difficulty,
			Level:       level,
			MaxCombo:    len(t.Divisions),
			GrooveRadar: radar,
		},
		Content: Content{
			Stream:     t.Divisions,
			StreamInfo: []int{},
			Gimmick:    NewGimmick(t.Bpms, t.Stops),
		},
	}
}

// MineCount is the number of mines in the chart.
func (c *Chart) MineCount() int {
	count := 0
	for _, d := range c.Content.Stream {
		for _, a := range d.Arrows {
			if a.Kind == Mine {
				count++
			}
		}
	}
	return count
}

// HoldCount is the number of holds in the chart.
func (c *Chart) HoldCount() int {
	count := 0
	for _, d := range c.Content.Stream {
		for _, a := range d.Arrows {
			if a.Kind == HoldStart {
				count++
			}
		}
	}
	return count
}
