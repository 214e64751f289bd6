package point_test

import (
	"fmt"

	"github.com/katalvlaran/junction/point"
)

// ExampleParseString parses two junction boxes and prints them back.
func ExampleParseString() {
	pts, err := point.ParseString("162,817,812\n57, 618, 57\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, p := range pts {
		fmt.Println(i, p)
	}
	// Output:
	// 0 162,817,812
	// 1 57,618,57
}

// ExampleParseLine shows the error reported for a short line.
func ExampleParseLine() {
	_, err := point.ParseLine("1,2")
	fmt.Println(err)
	// Output: point: "1,2": got 2: want exactly three comma-separated values
}
