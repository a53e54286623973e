package game

// FuelTank tracks fuel in tenths of a unit so the per-tick drain is exact.
type FuelTank struct {
	Tenths int
	Max    int
}

func NewFuelTank(max int) FuelTank {
	return FuelTank{Tenths: max, Max: max}
}

// Drain removes fuel, clamping at empty.
func (f *FuelTank) Drain(amount int) {
	f.Tenths -= amount
	if f.Tenths < 0 {
		f.Tenths = 0
	}
}

// Refill adds fuel, clamping at full.
func (f *FuelTank) Refill(amount int) {
	f.Tenths += amount
	if f.Tenths > f.Max {
		f.Tenths = f.Max
	}
}

// Units returns the fuel level on the 0..100 scale.
func (f *FuelTank) Units() float64 {
	return float64(f.Tenths) / 10
}

func (f *FuelTank) IsEmpty() bool {
	return f.Tenths <= 0
}

// FuelColor returns green while comfortable and red when low.
func FuelColor(units float64) RGB {
	if units > 20 {
		return Palette.Green
	}
	return Palette.Red
}
