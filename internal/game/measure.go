package game

const (
	// MeasureUnits is the length of one measure in offset units. It is
	// divisible by every row count a chart is expected to use: 4, 8, 12,
	// 16, 24, 32, 48, 64 and 192.
	MeasureUnits = 192
	// BeatUnits is one quarter note.
	BeatUnits = MeasureUnits / 4
)

// MeasureFraction converts an offset to a position counted in measures.
func MeasureFraction(offset int) float64 {
	return float64(offset) / MeasureUnits
}
