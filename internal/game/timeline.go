package game

// Timeline is the resolved, time stamped note stream of one chart along
// with the tempo changes and stops that were used to stamp it.
type Timeline struct {
	Divisions []Division
	Bpms      []Bpm
	Stops     []Stop
}

// Empty reports whether the chart has no arrows at all.
func (t *Timeline) Empty() bool {
	return len(t.Divisions) == 0
}

// Last returns the final division. The timeline must not be empty.
func (t *Timeline) Last() *Division {
	return &t.Divisions[len(t.Divisions)-1]
}

// EndOffset is the offset at which the chart ends, the last division or
// the latest hold release if one comes after it.
func (t *Timeline) EndOffset() int {
	end := t.Last().Offset
	for i := range t.Divisions {
		for _, a := range t.Divisions[i].Arrows {
			if a.Kind == HoldStart && a.End > end {
				end = a.End
			}
		}
	}
	return end
}
