package game

type Music struct {
	Path   string  `json:"path"`
	Offset float64 `json:"offset"`
	Length float64 `json:"length,omitempty"` // Seconds, only when the audio was probed
}

type Song struct {
	Title     string      `json:"title"`
	DirName   string      `json:"dir_name"`
	Charts    []ChartInfo `json:"charts"`
	Bpm       string      `json:"bpm"`
	Music     Music       `json:"music"`
	Banner    string      `json:"banner"`
	Timestamp string      `json:"timestamp"`
}
