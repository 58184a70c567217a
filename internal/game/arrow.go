package game

type ArrowKind uint8

const (
	None ArrowKind = iota
	Tap
	HoldStart
	HoldEnd
	Mine
)

// The names are those expected by the chart viewer.
var kindNames = []string{"none", "normal", "freeze", "freezeend", "mine"}

func (k ArrowKind) String() string {
	if int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

func (k ArrowKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ArrowKind) UnmarshalText(b []byte) error {
	i, err := lookup(kindNames, "arrow type", string(b))
	if nil != err {
		return err
	}
	*k = ArrowKind(i)
	return nil
}

// IsStep reports whether the arrow has to be stepped on, which is true
// for taps and hold heads.
func (k ArrowKind) IsStep() bool {
	return k == Tap || k == HoldStart
}

type Arrow struct {
	Direction Direction `json:"direction"`
	Kind      ArrowKind `json:"arrow_type"`
	End       int       `json:"end"`      // Offset of the hold release, only set for HoldStart
	EndTime   float64   `json:"end_time"` // Seconds of the hold release
}

// IsHoldEnd reports whether a is the release of a hold in lane d.
func (a Arrow) IsHoldEnd(d Direction) bool {
	return a.Kind == HoldEnd && a.Direction == d
}
