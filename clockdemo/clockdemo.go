package main

import (
	"fmt"
	"time"
)

func main() {

	now := time.Now()

	fmt.Println("The UTC time is", now.UTC().Format(time.RFC1123))
	fmt.Println("Your local time is", now.Format(time.RFC1123))

}
