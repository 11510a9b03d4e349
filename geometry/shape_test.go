package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAreaRectangle(t *testing.T) {

	testCases := []struct {
		name     string
		width    float64
		height   float64
		expected float64
	}{
		{"sample rectangle", 2.0, 4.0, 8.0},
		{"unit square", 1.0, 1.0, 1.0},
		{"zero width", 0.0, 9.0, 0.0},
		{"negative width", -3.0, 4.0, -12.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Area(NewRectangle(tc.width, tc.height)))
		})
	}
}

func TestAreaCircle(t *testing.T) {

	// The area of a circle with a radius of 7 is 3.14 * 49 = 153.86.
	assert.InDelta(t, 153.86, Area(NewCircle(7.0)), 1e-9)

	// Degenerate radius values still produce a defined answer.
	assert.Equal(t, 0.0, Area(NewCircle(0.0)))
	assert.InDelta(t, 3.14, Area(NewCircle(-1.0)), 1e-9)
}

func TestAreaUsesTruncatedPi(t *testing.T) {

	// The package pins the textbook approximation of π, not math.Pi, so the
	// printed results match the classic hand-calculated answers.
	assert.Equal(t, 3.14, Pi)
	assert.Equal(t, Pi*5.0*5.0, Area(NewCircle(5.0)))
}

func TestAreaIsIdempotent(t *testing.T) {

	rectangle := NewRectangle(2.0, 4.0)
	assert.Equal(t, Area(rectangle), Area(rectangle), "repeated calls with the same shape should agree")
}

// triangle deliberately has no case in the Area type switch. A shape added to
// the closed set without an area calculation must fail loudly, not default to
// a silently wrong number.
type triangle struct {
	base   float64
	height float64
}

func (triangle) isShape() {}

func TestAreaUnhandledShapePanics(t *testing.T) {

	assert.Panics(t, func() { Area(triangle{base: 3.0, height: 6.0}) })
}
