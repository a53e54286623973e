package game

// Reason is why a run ended. The set is closed.
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonOutOfFuel
	ReasonNoLivesRemaining
	ReasonCrashedIntoObstacle
	ReasonFellIntoWater
	ReasonCrashedIntoBridge
)

func (r Reason) String() string {
	switch r {
	case ReasonOutOfFuel:
		return "OUT OF FUEL"
	case ReasonNoLivesRemaining:
		return "NO LIVES REMAINING"
	case ReasonCrashedIntoObstacle:
		return "CRASHED INTO OBSTACLE"
	case ReasonFellIntoWater:
		return "FELL INTO WATER"
	case ReasonCrashedIntoBridge:
		return "CRASHED INTO BRIDGE"
	}
	return ""
}

// Result is what a finished run hands back to the state machine. Game over
// is ordinary control flow, not an error.
type Result struct {
	Score      int
	Hiscore    int
	Reason     Reason
	NewHiscore bool
	Stage      int
	Ticks      int
}
