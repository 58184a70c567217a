package game

import "fmt"

// FormatError is returned for chart text that cannot be decoded, such as
// an unknown arrow code or a measure whose row count does not divide
// MeasureUnits.
type FormatError struct {
	Value  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed chart: %v: %q", e.Reason, e.Value)
}

// UnresolvedHoldError is returned when a hold head has no later release
// in the same lane.
type UnresolvedHoldError struct {
	Direction Direction
	Offset    int
}

func (e *UnresolvedHoldError) Error() string {
	return fmt.Sprintf("unterminated hold in %v lane at measure %v offset %v",
		e.Direction, e.Offset/MeasureUnits, e.Offset%MeasureUnits)
}

// TimingPreconditionError is returned when seconds are requested without
// any tempo to convert with.
type TimingPreconditionError struct{}

func (e *TimingPreconditionError) Error() string {
	return "no tempo changes given, at least one bpm is required"
}
