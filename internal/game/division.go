package game

// Color is the subdivision tier of a division, 4ths are Red, 8ths Blue,
// 16ths Yellow and anything finer Green.
type Color uint8

const (
	Red Color = iota
	Blue
	Yellow
	Green
)

var colorNames = []string{"red", "blue", "yellow", "green"}

func (c Color) String() string {
	if int(c) >= len(colorNames) {
		return "invalid"
	}
	return colorNames[c]
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	i, err := lookup(colorNames, "color", string(b))
	if nil != err {
		return err
	}
	*c = Color(i)
	return nil
}

// Division holds every arrow that occurs at one offset.
type Division struct {
	Arrows []Arrow `json:"arrows"`
	Color  Color   `json:"color"`
	Offset int     `json:"offset"`
	Time   float64 `json:"time"`
}

// IsJump reports whether exactly two arrows have to be stepped on at once.
func (d *Division) IsJump() bool {
	steps := 0
	for _, a := range d.Arrows {
		if a.Kind.IsStep() {
			steps++
		}
	}
	return steps == 2
}

// IsShock reports whether the division contains a mine.
func (d *Division) IsShock() bool {
	for _, a := range d.Arrows {
		if a.Kind == Mine {
			return true
		}
	}
	return false
}

// HoldBeats is the length in beats of the longest hold starting here.
func (d *Division) HoldBeats() float64 {
	longest := 0
	for _, a := range d.Arrows {
		if a.Kind == HoldStart && a.End-d.Offset > longest {
			longest = a.End - d.Offset
		}
	}
	return float64(longest) / BeatUnits
}
