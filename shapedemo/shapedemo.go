package main

import (
	"fmt"

	"github.com/alienwaresec/gobasics/geometry"
)

func main() {

	// The geometry.Area function dispatches on the concrete shape type, so the
	// same call works for any shape in the closed set.
	rect := geometry.NewRectangle(2.0, 4.0)
	fmt.Println("Area of rect: ", geometry.Area(rect))

	circle := geometry.NewCircle(7.0)
	fmt.Println("Area of circle: ", geometry.Area(circle))

}
