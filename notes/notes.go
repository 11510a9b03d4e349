// Go Basics: a single-file, comprehensive set of notes with runnable examples.
//
// How to use this file:
//   - Read through the comments to learn core Go concepts.
//   - Most examples are small functions you can explore; most are not called.
//   - The binary compiles and runs a minimal main so `go run ./notes` works.
//   - Search for "SECTION" to navigate quickly.
//
// Notation quick reference:
//   - %v: default formatting verb, %+v adds field names, %#v is Go syntax.
//   - %T: prints the type of a value.
//   - := declares and initializes a variable in one step (inside functions only).
//   - & takes the address of a value; * dereferences a pointer.
//   - Upper case first letter = exported (public); lower case = unexported.
//   - go f() runs f concurrently in a new goroutine.
package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

func main() {
	// Minimal runtime output to verify the binary works.
	fmt.Println("Go Basics Notes — open notes/notes.go to read the comments and examples")
}

// ============================================================================
// SECTION 1: Variables, Zero Values, Short Declarations, Constants
// ============================================================================

func variablesAndZeroValues() {

	// var declares a variable. Without an initial value it gets its zero
	// value: 0 for numbers, "" for strings, false for bools, nil for
	// pointers, slices, maps, channels, and interfaces.
	var x int
	fmt.Println("Value of x: ", x)

	// Declare and initialize in one step. Go infers the type.
	y := 5
	y = 6 // plain assignment; unlike some languages there is no immutability keyword

	// Go has no shadowing-by-redeclaration in the same block, but an inner
	// block may declare a new variable with the same name.
	{
		y := "now I'm a string"
		fmt.Println("Inner y: ", y)
	}
	fmt.Println("Outer y is still an int: ", y)

	// Constants must be computable at compile time. Untyped constants adapt
	// to the context they are used in.
	const speedOfLight = 299792458 // unit: m/s
	const pi = 3.14
	fmt.Println("Constants: ", speedOfLight, pi)

	// Every declared local variable must be used; the compiler rejects the
	// program otherwise. Assign to the blank identifier to discard a value.
	unused := 42
	_ = unused
}

// ============================================================================
// SECTION 2: Statements vs Expressions
// ============================================================================

func statementsVsExpressions() {

	// Go is statement oriented: assignments and control flow are statements,
	// not expressions. There is no block-as-value like in expression
	// languages; use a function (often anonymous) when you need one.
	value := func() int {
		a := 2
		b := 3
		return a + b
	}()
	fmt.Println("Value computed by an anonymous function: ", value)

	// if with an init statement keeps the scratch variable scoped tightly.
	if n := value * 2; n > 5 {
		fmt.Println("n is greater than 5: ", n)
	}
}

// ============================================================================
// SECTION 3: Primitive Types and Composite Types
// ============================================================================

func primitiveAndCompositeTypes() {

	// Scalars. Sizes are explicit (int8..int64, uint8..uint64, float32,
	// float64); plain int is platform sized and is the everyday choice.
	var i int32 = -42
	var u uint64 = 42
	var f float64 = 3.14
	var b bool = true
	var r rune = 'λ' // rune is an alias for int32, a Unicode code point

	// Arrays have a fixed size that is part of their type.
	arr := [3]int{1, 2, 3}

	// Slices are views over arrays and are what you use day to day.
	slice := arr[0:2]

	// Structs group named fields; see SECTION 8.
	point := struct{ X, Y int }{X: 1, Y: 2}

	fmt.Println("Scalars: ", i, u, f, b, string(r))
	fmt.Println("Array, slice, struct: ", arr, slice, point)
}

// ============================================================================
// SECTION 4: Strings, Bytes, and Runes
// ============================================================================

func stringsBasics() {

	// A string is an immutable sequence of bytes, usually UTF-8 encoded text.
	subject := "Gopher"

	// Indexing gives you a byte; convert to string to print it as text.
	fmt.Println("First byte of subject as text: ", string(subject[0]))

	// Concatenate with +, or build with fmt.Sprintf (non-consuming, unlike
	// languages where + takes ownership of its operands).
	greeting := "Hello " + subject + "!"
	formatted := fmt.Sprintf("%s The length of your name is %d.", greeting, len(subject))
	fmt.Println(formatted)

	// The strings package holds the everyday helpers.
	fmt.Println("Upper: ", strings.ToUpper(subject))
	fmt.Println("Contains 'pher': ", strings.Contains(subject, "pher"))

	// To mutate text, convert to a []byte or []rune, change it, convert back.
	runes := []rune(subject)
	runes[0] = 'g'
	fmt.Println("Lowercased first rune: ", string(runes))

	// strings.Builder grows a string efficiently in a loop.
	var builder strings.Builder
	for i := 0; i < 3; i++ {
		builder.WriteString("go")
	}
	fmt.Println("Built: ", builder.String())
}

// ============================================================================
// SECTION 5: Values vs Pointers (Go's answer to ownership questions)
// ============================================================================

func valuesAndPointers() {

	// Assignment copies the value. After the copy, the two variables are
	// completely independent; there is no move semantics and no borrow
	// checker, the garbage collector keeps whatever is still referenced.
	original := []int{1, 2, 3}
	copied := make([]int, len(original))
	copy(copied, original)
	copied[0] = 99
	fmt.Println("Original unaffected by the copy: ", original)

	// A pointer shares one value between several names. & takes an address,
	// * follows it.
	count := 10
	pointer := &count
	*pointer = 11
	fmt.Println("count seen through the pointer: ", count)

	// Watch out: slices and maps are small headers over shared backing
	// storage, so copying the header still shares the elements.
	alias := original
	alias[0] = 7
	fmt.Println("Original IS affected through the alias: ", original)
}

func calculateLength(s string) int {

	// Strings are passed by value, but the value is a small header; passing
	// a string never copies the text itself.
	return len(s)
}

func appendExclamation(s *string) {

	// To let a function modify the caller's variable, pass a pointer.
	*s += "!"
}

// ============================================================================
// SECTION 6: Functions, Multiple Returns, Variadic Parameters
// ============================================================================

func add(x int, y int) int {
	return x + y
}

// Multiple return values replace out-parameters and are the backbone of Go
// error handling (value, error) — see SECTION 9.
func divide(dividend int, divisor int) (int, int) {
	return dividend / divisor, dividend % divisor
}

// Named return values document what comes back; a bare return returns them.
func sumAndDifference(x, y int) (sum int, difference int) {
	sum = x + y
	difference = x - y
	return
}

// A variadic function accepts any number of trailing arguments.
func multiSum(args ...int) int {

	total := 0
	for _, arg := range args {
		total += arg
	}
	return total
}

// ============================================================================
// SECTION 7: Control Flow (if, for, switch)
// ============================================================================

func controlFlow() {

	x := 9

	// if needs no parentheses; braces are mandatory.
	if x == 9 {
		fmt.Println("x is equal to 9")
	}

	// for is the only loop keyword, in three forms.
	for i := 0; i < 3; i++ { // classic counted loop
		fmt.Println("Counted iteration: ", i)
	}

	n := 0
	for n < 3 { // condition-only form, Go's while loop
		n++
	}

	for { // infinite loop, exit with break
		break
	}

	// range iterates over slices, maps, strings, and channels.
	for index, letter := range "Go" {
		fmt.Printf("Index %d holds %c\n", index, letter)
	}

	// switch cases don't fall through by default; no break needed.
	switch x {
	case 1, 2, 3:
		fmt.Println("x is small")
	case 9:
		fmt.Println("x is 9")
	default:
		fmt.Println("x is something else")
	}

	// A switch with no expression is a cleaner if/else-if chain.
	switch {
	case x < 0:
		fmt.Println("negative")
	case x == 0:
		fmt.Println("zero")
	default:
		fmt.Println("positive")
	}
}

// ============================================================================
// SECTION 8: Structs, Methods, Constructor Functions
// ============================================================================

// Point is a simple struct. Exported field names (upper case) are visible to
// other packages; lower case fields are not.
type Point struct {
	X int
	Y int
}

// NewPoint is the conventional constructor spelling. Go has no `new` keyword
// tied to types; a plain function returning the value (or a pointer) is it.
func NewPoint(x int, y int) Point {
	return Point{X: x, Y: y}
}

// A method is a function with a receiver. A value receiver gets a copy.
func (p Point) Manhattan() int {

	abs := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}
	return abs(p.X) + abs(p.Y)
}

// A pointer receiver can modify the receiver. Use pointer receivers when the
// method mutates, or when the struct is large.
func (p *Point) Translate(dx int, dy int) {
	p.X += dx
	p.Y += dy
}

func structExamples() {

	p := NewPoint(3, -4)
	fmt.Println("Manhattan distance: ", p.Manhattan())

	p.Translate(1, 1)
	fmt.Printf("Translated point: %+v\n", p)

	// Struct embedding composes types without inheritance; the embedded
	// type's fields and methods are promoted.
	type Labeled struct {
		Point
		Label string
	}

	l := Labeled{Point: NewPoint(0, 0), Label: "origin"}
	fmt.Println("Embedded Manhattan: ", l.Manhattan())
}

// ============================================================================
// SECTION 9: Interfaces, Type Switches, Errors
// ============================================================================

// Describable is satisfied implicitly: any type with a Describe() string
// method is a Describable, no declaration needed at the type.
type Describable interface {
	Describe() string
}

func (p Point) Describe() string {
	return fmt.Sprintf("point at (%d, %d)", p.X, p.Y)
}

func printDescription(d Describable) {
	fmt.Println(d.Describe())
}

func interfacesAndErrors() {

	printDescription(NewPoint(1, 2))

	// A type switch inspects the concrete type behind an interface value.
	// Keep a default branch that fails loudly if you intend the set of types
	// to be closed; Go will not check exhaustiveness for you.
	var anything interface{} = 42
	switch value := anything.(type) {
	case int:
		fmt.Println("Got an int: ", value)
	case string:
		fmt.Println("Got a string: ", value)
	default:
		panic(fmt.Sprintf("unhandled type %T", value))
	}

	// Errors are plain values. The (value, error) pair replaces exceptions;
	// you check the error before touching the value.
	contents, err := os.ReadFile("no-such-file.txt")
	if err != nil {
		fmt.Println("Fallback path taken: ", err)
	} else {
		fmt.Println(string(contents))
	}

	// Sentinel errors are compared with errors.Is, which sees through
	// wrapping done with fmt.Errorf("...: %w", err).
	wrapped := fmt.Errorf("reading configuration: %w", os.ErrNotExist)
	fmt.Println("Wraps ErrNotExist: ", errors.Is(wrapped, os.ErrNotExist))
}

// ============================================================================
// SECTION 10: Generics (Type Parameters)
// ============================================================================

// Ordered lists the types minOf accepts. The constraints package in
// golang.org/x/exp has ready-made versions of common constraints.
type Ordered interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64 | ~string
}

// minOf works for any ordered type; the compiler checks each instantiation.
func minOf[T Ordered](a T, b T) T {

	if a < b {
		return a
	}
	return b
}

// ============================================================================
// SECTION 11: Formatting Verbs and the Stringer Interface
// ============================================================================

func formattingExamples() {

	p := NewPoint(1, 2)

	fmt.Printf("%v\n", p)  // {1 2}            default
	fmt.Printf("%+v\n", p) // {X:1 Y:2}        with field names
	fmt.Printf("%#v\n", p) // main.Point{X:1, Y:2} as Go syntax
	fmt.Printf("%T\n", p)  // main.Point       the type
	fmt.Printf("%q\n", "hi") // "hi"           quoted string
	fmt.Printf("%6.2f\n", 3.14159) // width 6, two decimals
}

// Temperature shows the Stringer interface: fmt verbs pick up String()
// automatically, the Go equivalent of implementing a Display trait.
type Temperature float64

func (t Temperature) String() string {
	return fmt.Sprintf("%.1f°C", float64(t))
}

// ============================================================================
// SECTION 12: Collections (slices, maps, sorting)
// ============================================================================

func collectionsExamples() {

	// Slices grow with append. append may reallocate, so always keep the
	// returned slice.
	numbers := []int{3, 1, 2}
	numbers = append(numbers, 4, 5)
	fmt.Println("After append: ", numbers)

	sort.Ints(numbers)
	fmt.Println("Sorted: ", numbers)

	// Maps need make (or a literal) before use; writing to a nil map panics.
	ages := map[string]int{"Pawan": 21}
	ages["Gopher"] = 13

	// The two-value read reports whether the key was present, Go's answer
	// to an Option type for map lookups.
	age, ok := ages["Nobody"]
	fmt.Println("Lookup miss gives zero value and false: ", age, ok)

	// Deleting a missing key is a harmless no-op.
	delete(ages, "Nobody")

	// Map iteration order is deliberately randomized; sort the keys when
	// the output order matters.
	keys := make([]string, 0, len(ages))
	for name := range ages {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	for _, name := range keys {
		fmt.Println(name, "is", ages[name])
	}
}

// ============================================================================
// SECTION 13: Closures and Function Values
// ============================================================================

func closuresExamples() {

	// Functions are values; closures capture variables by reference.
	counter := 0
	increment := func() int {
		counter++
		return counter
	}
	increment()
	increment()
	fmt.Println("Counter after two increments: ", counter)

	// A function can return a closure that keeps its own private state.
	makeAdder := func(base int) func(int) int {
		return func(x int) int { return base + x }
	}
	addTen := makeAdder(10)
	fmt.Println("addTen(5): ", addTen(5))
}

// ============================================================================
// SECTION 14: Packages and Visibility
// ============================================================================

// There are no visibility keywords. An identifier whose name starts with an
// upper case letter is exported from its package; anything else is private to
// the package (not to the file). One directory is one package; the import
// path is the module path plus the directory.
//
// A package may declare func init() to run setup before main; see the
// userprofile and geometry packages in this module for real layouts.

// ============================================================================
// SECTION 15: Constants vs Variables, iota
// ============================================================================

// Grouped constants with iota auto-number themselves, the closest thing Go
// has to a C-style enum. Pair it with a type for some type safety.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// ============================================================================
// SECTION 16: Sharing Between Goroutines: Mutexes
// ============================================================================

func mutexExample() {

	// When several goroutines touch the same variable, guard it with a
	// sync.Mutex (or restructure to use channels, SECTION 17).
	var mu sync.Mutex
	total := 0

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mu.Lock()
			total++
			mu.Unlock()
		}()
	}
	wg.Wait()
	fmt.Println("Total after 5 guarded increments: ", total)
}

// ============================================================================
// SECTION 17: Goroutines and Channels
// ============================================================================

func goroutinesAndChannels() {

	// A goroutine is a lightweight concurrent function call. Channels move
	// values between goroutines; a send blocks until a receive is ready on
	// an unbuffered channel, which is also a synchronization point.
	message := make(chan string)

	go func() {
		time.Sleep(10 * time.Millisecond) // pretend to work
		message <- "Hello Gopher!"
	}()

	// The spawned goroutine sends exactly one message, and main receives it
	// exactly once. Receiving blocks until the message arrives, so main
	// cannot finish before the worker does.
	fmt.Println("Greeting from the message channel: ", <-message)
	close(message)
}

// ============================================================================
// SECTION 18: defer, panic, recover
// ============================================================================

func deferPanicRecover() (err error) {

	// defer schedules a call to run when the function returns, in reverse
	// order. It is the standard way to release resources next to where they
	// were acquired.
	defer fmt.Println("This prints last")

	// panic unwinds the stack; recover, inside a deferred function, stops
	// the unwind. Reserve panics for programming errors (like the geometry
	// package's unhandled-shape branch); use error values for everything
	// expected.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered from: %v", r)
		}
	}()

	panic("something went irreversibly wrong")
}

// ============================================================================
// SECTION 19: Testing Notes
// ============================================================================

// Tests live next to the code in _test.go files, in functions named TestXxx
// that take *testing.T. Run them with `go test ./...`. Table-driven tests
// with t.Run cover many cases with one body; see geometry/shape_test.go in
// this module for the pattern. The stretchr/testify package supplies the
// assert and require helpers used throughout this repo.

// ============================================================================
// SECTION 20: Modules and Dependencies (go.mod, brief notes)
// ============================================================================

// `go mod init <path>` starts a module; go.mod records the module path and
// its dependencies with versions. `go get <pkg>` adds a dependency (the
// moral equivalent of `cargo add`), and plain `go build`/`go test` keep
// go.mod and go.sum tidy. Binaries in this repo are one directory each, so
// `go run ./shapedemo` runs the shape demo.
