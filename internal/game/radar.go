package game

// GrooveRadar is the five axis difficulty summary of a chart.
type GrooveRadar struct {
	Stream  int `json:"stream"`
	Voltage int `json:"voltage"`
	Air     int `json:"air"`
	Freeze  int `json:"freeze"`
	Chaos   int `json:"chaos"`
}
