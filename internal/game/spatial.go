package game

// RectF is an axis-aligned rectangle in screen-pixel space.
type RectF struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Rect builds a RectF from a top-left corner and a size.
func Rect(x, y, w, h float64) RectF {
	return RectF{X0: x, Y0: y, X1: x + w, Y1: y + h}
}

// Intersects reports strict overlap; touching edges do not collide.
func (r RectF) Intersects(o RectF) bool {
	return r.X0 < o.X1 && r.X1 > o.X0 && r.Y0 < o.Y1 && r.Y1 > o.Y0
}

func (r RectF) Contains(o RectF) bool {
	return o.X0 >= r.X0 && o.X1 <= r.X1 && o.Y0 >= r.Y0 && o.Y1 <= r.Y1
}

func (r RectF) W() float64 { return r.X1 - r.X0 }
func (r RectF) H() float64 { return r.Y1 - r.Y0 }
