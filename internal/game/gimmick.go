package game

// Bpm is a tempo change at an offset.
type Bpm struct {
	Offset int     `json:"offset"`
	Value  float64 `json:"bpm"`
}

// Stop pauses the chart for Seconds at an offset without advancing it.
type Stop struct {
	Offset  int     `json:"offset"`
	Seconds float64 `json:"time"`
}

// BpmDisplay and StopDisplay locate a gimmick in measures rather than
// offset units, which is what the viewer draws with.
type BpmDisplay struct {
	Division float64 `json:"division"`
	Bpm      float64 `json:"bpm"`
}

type StopDisplay struct {
	Division float64 `json:"division"`
	Time     float64 `json:"time"`
}

type Gimmick struct {
	Soflan []BpmDisplay  `json:"soflan"`
	Stop   []StopDisplay `json:"stop"`
}

func NewGimmick(bpms []Bpm, stops []Stop) Gimmick {
	g := Gimmick{
		Soflan: make([]BpmDisplay, len(bpms)),
		Stop:   make([]StopDisplay, len(stops)),
	}
	for i, bpm := range bpms {
		g.Soflan[i] = BpmDisplay{Division: MeasureFraction(bpm.Offset), Bpm: bpm.Value}
	}
	for i, stop := range stops {
		g.Stop[i] = StopDisplay{Division: MeasureFraction(stop.Offset), Time: stop.Seconds}
	}
	return g
}
