package enum

// transitionTable maps a status to the set of statuses it may move to.
// Every lifecycle enum in this package validates its moves through one of
// these tables instead of ad-hoc checks in handlers.
type transitionTable[S comparable] map[S][]S

func (t transitionTable[S]) canTransition(from, to S) bool {
	for _, next := range t[from] {
		if next == to {
			return true
		}
	}
	return false
}
