package game

import "testing"

func TestRoadWidthPerStage(t *testing.T) {
	cases := []struct {
		stage int
		want  int
	}{
		{0, 300},
		{1, 300},
		{2, 280},
		{4, 240},
		{7, 180},
		{12, 180},
	}
	for _, c := range cases {
		if got := RoadWidth(c.stage); got != c.want {
			t.Fatalf("RoadWidth(%d) = %d, want %d", c.stage, got, c.want)
		}
	}
}

func TestBoundsKeepsWidthOnScreen(t *testing.T) {
	for stage := 1; stage <= 10; stage++ {
		for y := -20000.0; y <= 20000; y += 37.5 {
			b := Bounds(y, stage)
			if b.Right-b.Left != RoadWidth(stage) {
				t.Fatalf("stage %d y=%.1f: right-left = %d, want %d", stage, y, b.Right-b.Left, RoadWidth(stage))
			}
			if b.Width != RoadWidth(stage) {
				t.Fatalf("stage %d y=%.1f: width = %d, want %d", stage, y, b.Width, RoadWidth(stage))
			}
			if b.Left < RoadMarginLeft || b.Right > RoadMarginRight {
				t.Fatalf("stage %d y=%.1f: bounds [%d,%d] outside [%d,%d]", stage, y, b.Left, b.Right, RoadMarginLeft, RoadMarginRight)
			}
		}
	}
}

func TestBoundsIsPure(t *testing.T) {
	for stage := 1; stage <= 6; stage++ {
		for _, y := range []float64{-1234.5, 0, 200, 777, 99999} {
			a := Bounds(y, stage)
			b := Bounds(y, stage)
			if a != b {
				t.Fatalf("Bounds(%.1f, %d) not stable: %+v vs %+v", y, stage, a, b)
			}
		}
	}
}

func TestBoundsFollowsCurve(t *testing.T) {
	// At y=0 the sine is zero so the road is centred on the screen.
	b := Bounds(0, 1)
	if b.Left != 150 || b.Right != 450 {
		t.Fatalf("Bounds(0, 1) = [%d,%d], want [150,450]", b.Left, b.Right)
	}
	if c := b.Center(); c != ScreenCenter {
		t.Fatalf("center = %d, want %d", c, ScreenCenter)
	}
}

func TestRectIntersectsIsStrict(t *testing.T) {
	a := Rect(0, 0, 10, 10)
	if a.Intersects(Rect(10, 0, 5, 5)) {
		t.Fatalf("touching edges should not intersect")
	}
	if !a.Intersects(Rect(9, 9, 5, 5)) {
		t.Fatalf("overlapping corner should intersect")
	}
}
