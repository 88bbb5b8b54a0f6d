package common

// Fixed is a signed fixed-point number with 12 fractional bits, the precision
// the original handheld hardware computes positions in. Keeping positions in
// Fixed means tile lookups truncate identically on every platform instead of
// drifting with float rounding.
type Fixed int64

const fixedShift = 12
const fixedOne = 1 << fixedShift

// FixedFromInt converts an integer number of pixels to Fixed.
func FixedFromInt(v int) Fixed {
	return Fixed(int64(v) << fixedShift)
}

// FixedFromFloat converts a float to Fixed, truncating excess precision.
func FixedFromFloat(v float64) Fixed {
	return Fixed(v * fixedOne)
}

// Integer truncates toward zero, discarding the fractional bits.
func (f Fixed) Integer() int {
	return int(int64(f) / fixedOne)
}

// Float64 converts back to a float, e.g. for feeding render offsets.
func (f Fixed) Float64() float64 {
	return float64(f) / fixedOne
}

// MulInt multiplies by an integer scalar.
func (f Fixed) MulInt(s int) Fixed {
	return f * Fixed(s)
}

// Mul multiplies two Fixed values.
func (f Fixed) Mul(o Fixed) Fixed {
	return Fixed((int64(f) * int64(o)) >> fixedShift)
}

// Point is a 2D position in Fixed pixel coordinates.
type Point struct {
	X Fixed
	Y Fixed
}

// PointFromInts builds a Point from integer pixel coordinates.
func PointFromInts(x, y int) Point {
	return Point{X: FixedFromInt(x), Y: FixedFromInt(y)}
}

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}
