package monitor

const (
	directionRange = 100
	directionSplit = 50
	maxNudge       = 10
)

// Random is the subset of *rand.Rand used to pick nudge offsets.
type Random interface {
	Intn(n int) int
}

// nudgeOffsets draws one direction for both axes and independent magnitudes
// for X then Y. Draws below directionSplit move up and left.
func nudgeOffsets(random Random) (dx, dy int) {
	subtract := random.Intn(directionRange) < directionSplit
	dx = random.Intn(maxNudge)
	dy = random.Intn(maxNudge)
	if subtract {
		return -dx, -dy
	}
	return dx, dy
}
