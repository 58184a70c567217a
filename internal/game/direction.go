package game

// Direction is one of the four lanes of a dance-single chart.
type Direction uint8

const (
	Left Direction = iota
	Down
	Up
	Right
)

// Columns maps a grid row column index to its lane.
var Columns = [...]Direction{Left, Down, Up, Right}

var directionNames = []string{"left", "down", "up", "right"}

func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return "invalid"
	}
	return directionNames[d]
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	i, err := lookup(directionNames, "direction", string(b))
	if nil != err {
		return err
	}
	*d = Direction(i)
	return nil
}
