package game

// SceneryKind identifies a roadside decoration.
type SceneryKind uint8

const (
	SceneryTree SceneryKind = iota
	SceneryHouse
	SceneryWaterFeature
	SceneryCactus
	SceneryRock
)

func (k SceneryKind) String() string {
	switch k {
	case SceneryTree:
		return "tree"
	case SceneryHouse:
		return "house"
	case SceneryWaterFeature:
		return "water_feature"
	case SceneryCactus:
		return "cactus"
	case SceneryRock:
		return "rock"
	}
	return "unknown"
}

type SceneryTheme struct {
	Kinds []SceneryKind // weighted by repetition
}

var (
	ThemeSuburban = SceneryTheme{
		Kinds: []SceneryKind{SceneryTree, SceneryTree, SceneryHouse},
	}
	// ThemeWater: riverside, nothing but ponds.
	ThemeWater = SceneryTheme{
		Kinds: []SceneryKind{SceneryWaterFeature, SceneryWaterFeature, SceneryWaterFeature},
	}
	ThemeIndustrial = SceneryTheme{
		Kinds: []SceneryKind{SceneryTree, SceneryWaterFeature, SceneryHouse},
	}
	// ThemeDesert covers every stage from 4 onwards.
	ThemeDesert = SceneryTheme{
		Kinds: []SceneryKind{SceneryCactus, SceneryCactus, SceneryRock},
	}
)

// ThemeForStage picks the scenery table for a stage.
func ThemeForStage(stage int) SceneryTheme {
	switch {
	case stage <= 1:
		return ThemeSuburban
	case stage == 2:
		return ThemeWater
	case stage == 3:
		return ThemeIndustrial
	default:
		return ThemeDesert
	}
}

// GroundColor alternates green and sand by stage parity.
func GroundColor(stage int) RGB {
	if stage%2 == 1 {
		return Palette.Grass
	}
	return Palette.Sand
}

// BridgeStyle selects how bridges are drawn. Collision is identical.
type BridgeStyle uint8

const (
	BridgeGirder BridgeStyle = iota
	BridgeOverpass
)

// Variant is the cosmetic flavour of a build: title text, bridge look and
// scenery sizing. Simulation rules do not depend on it except for scenery
// footprint.
type Variant struct {
	Name         string
	Title        string
	Subtitle     string
	Bridge       BridgeStyle
	SceneryScale float64
}

var (
	VariantClassic = Variant{
		Title:        "BUMP & JUMP",
		Subtitle:     "Modern Homage to the 1982 Arcade Classic",
		Bridge:       BridgeGirder,
		SceneryScale: 1.0,
	}
	VariantOverpass = Variant{
		Title:        "BUMP & JUMP: OVERPASS",
		Subtitle:     "Jump the overpasses, bump the rivals",
		Bridge:       BridgeOverpass,
		SceneryScale: 1.5,
	}
)

var Variants = []Variant{VariantClassic, VariantOverpass}

// VariantByName looks up a variant; ok is false for unknown names.
func VariantByName(name string) (Variant, bool) {
	for _, v := range Variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}
