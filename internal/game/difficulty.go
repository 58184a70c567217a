package game

type ChartType uint8

const (
	DanceSingle ChartType = iota
	DanceDouble
)

var chartTypeNames = []string{"DanceSingle", "DanceDouble"}

// ChartTypeMap maps the STEPSTYPE / NOTES field to a chart type.
var ChartTypeMap = map[string]ChartType{
	"dance-single": DanceSingle,
	"dance-double": DanceDouble,
}

// NKeys is the number of columns in each grid row.
func (c ChartType) NKeys() int {
	if c == DanceDouble {
		return 8
	}
	return 4
}

func (c ChartType) String() string {
	if int(c) >= len(chartTypeNames) {
		return "invalid"
	}
	return chartTypeNames[c]
}

func (c ChartType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ChartType) UnmarshalText(b []byte) error {
	i, err := lookup(chartTypeNames, "chart type", string(b))
	if nil != err {
		return err
	}
	*c = ChartType(i)
	return nil
}

type Difficulty uint8

const (
	Beginner Difficulty = iota
	Easy
	Medium
	Hard
	Challenge
	Edit
)

var difficultyNames = []string{"Beginner", "Easy", "Medium", "Hard", "Challenge", "Edit"}

// ParseDifficulty reads the difficulty field of a chart.
func ParseDifficulty(s string) (Difficulty, error) {
	i, err := lookup(difficultyNames, "difficulty", s)
	if nil != err {
		return 0, &FormatError{Value: s, Reason: "unsupported difficulty"}
	}
	return Difficulty(i), nil
}

func (d Difficulty) String() string {
	if int(d) >= len(difficultyNames) {
		return "invalid"
	}
	return difficultyNames[d]
}

func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Difficulty) UnmarshalText(b []byte) error {
	i, err := lookup(difficultyNames, "difficulty", string(b))
	if nil != err {
		return err
	}
	*d = Difficulty(i)
	return nil
}
