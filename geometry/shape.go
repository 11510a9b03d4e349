// Package geometry provides a closed set of geometric shape types with area
// calculations, along with a simple whole-number rectangle type.
package geometry

import "fmt"

// Pi is the approximation of π used for circle area calculations. We
// deliberately use the truncated, two decimal place value found in classic
// math textbooks, so a circle with a radius of 7 has an area of 3.14 * 49.
const Pi = 3.14

// The Shape type represents a geometric shape. The set of shapes is closed:
// only types declared in this package can satisfy the interface, because the
// marker method is unexported.
type Shape interface {
	isShape()
}

// Rectangle is a shape described by its width and height.
type Rectangle struct {
	Width  float64
	Height float64
}

// Circle is a shape described by its radius.
type Circle struct {
	Radius float64
}

func (Rectangle) isShape() {}

func (Circle) isShape() {}

// NewRectangle is responsible for creating an instance of the Rectangle type.
func NewRectangle(width float64, height float64) Rectangle {

	return Rectangle{Width: width, Height: height}
}

// NewCircle is responsible for creating an instance of the Circle type.
func NewCircle(radius float64) Circle {

	return Circle{Radius: radius}
}

// Area calculates the area of a shape. The area calculation is based on the
// type of shape s. The dimensions are not validated; a zero or negative width
// simply produces a zero or negative area.
//
// Every shape in the closed set must have a case in the type switch. If a new
// shape is ever added without a corresponding case, the default branch fails
// loudly instead of returning a silently wrong answer.
func Area(s Shape) float64 {

	switch shape := s.(type) {
	case Rectangle:
		return shape.Width * shape.Height
	case Circle:
		return Pi * shape.Radius * shape.Radius
	default:
		panic(fmt.Sprintf("geometry: no area calculation defined for shape of type %T", s))
	}
}
