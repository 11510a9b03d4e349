package main

import (
	"fmt"

	"github.com/alienwaresec/gobasics/geometry"
)

func main() {

	phone := geometry.Rect{Length: 20, Breadth: 40}

	// Area and Perimeter are read-only queries; we can call them as many
	// times as we like and the rectangle never changes.
	fmt.Println("The area of the phone is", phone.Area(), "& perimeter is", phone.Perimeter())

}
