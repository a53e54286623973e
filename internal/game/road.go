package game

import "math"

// curvePreset is a (frequency, amplitude) pair for the road sine.
type curvePreset struct {
	Freq float64
	Amp  float64
}

// Stage 1 gentle S-curves through to the winding stage 5+ canyon.
var curvePresets = [...]curvePreset{
	{Freq: 0.003, Amp: 30},
	{Freq: 0.0032, Amp: 35},
	{Freq: 0.0035, Amp: 40},
	{Freq: 0.004, Amp: 45},
	{Freq: 0.004, Amp: 50},
}

func presetFor(stage int) curvePreset {
	if stage < 1 {
		stage = 1
	}
	if stage > len(curvePresets) {
		stage = len(curvePresets)
	}
	return curvePresets[stage-1]
}

// Curve returns the horizontal road offset at world y.
func Curve(y float64, stage int) float64 {
	p := presetFor(stage)
	return math.Sin(y*p.Freq) * p.Amp
}

// RoadWidth returns the road width for a stage.
func RoadWidth(stage int) int {
	if stage < 1 {
		stage = 1
	}
	return max(RoadBaseWidth-(stage-1)*RoadWidthStep, RoadMinWidth)
}

// RoadBounds is the horizontal extent of the road at one world row.
type RoadBounds struct {
	Left, Right, Width int
}

// Center returns the road centre line.
func (b RoadBounds) Center() int { return b.Left + b.Width/2 }

// Bounds returns the road edges at world y. It is a pure function of
// (y, stage); bridges, spawners and collision all call it independently.
func Bounds(y float64, stage int) RoadBounds {
	width := RoadWidth(stage)
	center := int(math.Floor(float64(ScreenCenter) + Curve(y, stage)))

	left := center - width/2
	right := left + width

	// Keep road on screen; shifting preserves width.
	if left < RoadMarginLeft {
		right += RoadMarginLeft - left
		left = RoadMarginLeft
	} else if right > RoadMarginRight {
		left -= right - RoadMarginRight
		right = RoadMarginRight
	}
	return RoadBounds{Left: left, Right: right, Width: width}
}
