package geometry

// Rect represents a rectangle with whole number dimensions, like the screen
// of a phone measured in millimeters.
type Rect struct {
	Length  uint32
	Breadth uint32
}

// NewRect is responsible for creating an instance of the Rect type.
func NewRect(length uint32, breadth uint32) Rect {

	return Rect{Length: length, Breadth: breadth}
}

// Area returns the length times the breadth. The multiplication is plain
// uint32 arithmetic, so dimensions large enough to overflow wrap around
// modulo 2^32 rather than producing an error.
func (r Rect) Area() uint32 {

	return r.Length * r.Breadth
}

// Perimeter returns twice the sum of the two sides. Like Area, the arithmetic
// wraps around on overflow.
func (r Rect) Perimeter() uint32 {

	return 2 * (r.Length + r.Breadth)
}
