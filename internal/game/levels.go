package game

// StageConfig holds the spawn pacing for one stage.
type StageConfig struct {
	EnemyDelay    int
	ObstacleDelay int
	PickupDelay   int
	FuelPumpDelay int
	SceneryDelay  int
	Theme         SceneryTheme
}

// Bridge pacing is a ratchet rather than a per-stage value.
// The floor keeps a bridge from arriving before the jump is ready again.
const (
	BridgeStartDelay   = 600
	BridgeDelayStep    = 20
	BridgeSafetyBuffer = 120
	BridgeDelayFloor   = JumpCooldownMax + BridgeSafetyBuffer
)

var stageNames = [...]string{
	"SUBURBAN HIGHWAY",
	"RIVERSIDE ROAD",
	"INDUSTRIAL ZONE",
	"CANYON PASS",
	"DEATH VALLEY",
}

// StageName returns the banner subtitle; stages past the last reuse it.
func StageName(stage int) string {
	return stageNames[min(max(stage, 1), len(stageNames))-1]
}

// GetStageConfig returns spawn settings for a given stage.
// Enemy and obstacle delays shrink per stage down to a floor.
func GetStageConfig(stage int) StageConfig {
	if stage < 1 {
		stage = 1
	}
	return StageConfig{
		EnemyDelay:    max(60-(stage-1)*10, 20),
		ObstacleDelay: max(120-(stage-1)*15, 40),
		PickupDelay:   120,
		FuelPumpDelay: 300,
		SceneryDelay:  90,
		Theme:         ThemeForStage(stage),
	}
}

// NextBridgeDelay tightens the bridge interval after each bridge.
func NextBridgeDelay(delay int) int {
	return max(delay-BridgeDelayStep, BridgeDelayFloor)
}
