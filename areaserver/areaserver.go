package main

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/alienwaresec/gobasics/geometry"
)

func rectangleAreaHandler(w http.ResponseWriter, r *http.Request) {

	width, widthErr := strconv.ParseFloat(r.URL.Query().Get("width"), 64)
	height, heightErr := strconv.ParseFloat(r.URL.Query().Get("height"), 64)

	if widthErr != nil || heightErr != nil {
		http.Error(w, "Numeric width and height query parameters not provided!", http.StatusBadRequest)
		return
	}

	fmt.Fprintf(w, "The area of the rectangle is %v", geometry.Area(geometry.NewRectangle(width, height)))
}

func circleAreaHandler(w http.ResponseWriter, r *http.Request) {

	radius, err := strconv.ParseFloat(r.URL.Query().Get("radius"), 64)
	if err != nil {
		http.Error(w, "Numeric radius query parameter not provided!", http.StatusBadRequest)
		return
	}

	fmt.Fprintf(w, "The area of the circle is %v", geometry.Area(geometry.NewCircle(radius)))
}

func registerRoutes() *mux.Router {

	r := mux.NewRouter()
	r.HandleFunc("/area/rectangle", rectangleAreaHandler).Methods("GET")
	r.HandleFunc("/area/circle", circleAreaHandler).Methods("GET")
	return r
}

func main() {

	log.Fatal(http.ListenAndServe(":8080", registerRoutes()))
}
