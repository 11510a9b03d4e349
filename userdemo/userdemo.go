package main

import (
	"fmt"

	"github.com/alienwaresec/gobasics/userprofile"
)

func main() {

	pawan := userprofile.NewUser("Pawan", "alienwaresec", "pawan@gmail.com", 21, false)

	fmt.Printf("Is %s Indian? %v\n", pawan.Name, pawan.Indian)
	fmt.Println(pawan.Indian)

}
