package rules

const (
	// BirthCount is the exact neighbor count that brings a dead cell to life.
	BirthCount = 3
	// MinSurvive and MaxSurvive bound the neighbor counts a live cell survives with.
	MinSurvive = 2
	MaxSurvive = 3
)

/*
ApplyConwayRules applies the B3/S23 rule to a single cell.

	alive, neighbors < 2  -> dead (underpopulation)
	alive, neighbors > 3  -> dead (overpopulation)
	alive, neighbors 2..3 -> alive
	dead,  neighbors == 3 -> alive (reproduction)
	dead,  otherwise      -> dead
*/
func ApplyConwayRules(neighbors uint8, alive bool) bool {
	if alive {
		return neighbors >= MinSurvive && neighbors <= MaxSurvive
	}
	return neighbors == BirthCount
}
