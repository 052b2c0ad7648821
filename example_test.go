package pathcodec_test

import (
	"fmt"
	"log"

	"github.com/chaisql/pathcodec"
)

func Example() {
	var buf []byte
	enc := pathcodec.NewEncoder(&buf)
	enc.MoveTo(pathcodec.Point{X: 0, Y: 0})
	enc.LineTo(pathcodec.Point{X: 10, Y: 0})
	enc.QuadCurveTo(pathcodec.Point{X: 15, Y: 5}, pathcodec.Point{X: 10, Y: 10})
	enc.ClosePath()

	fmt.Println(len(buf))

	var p pathcodec.Path
	err := pathcodec.Decode(buf, &p)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(p)
	// Output:
	// 68
	// M0 0 L10 0 Q15 5 10 10 Z
}

func ExampleHandlers() {
	data := pathcodec.Path{
		pathcodec.MoveTo(pathcodec.Point{X: 1, Y: 2}),
		pathcodec.LineTo(pathcodec.Point{X: 3, Y: 4}),
		pathcodec.ClosePath(),
	}.Encode(nil)

	var lines int
	err := pathcodec.Decode(data, pathcodec.Handlers{
		Line: func(p pathcodec.Point) { lines++ },
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(lines)
	// Output: 1
}

func ExampleFormatError() {
	data := pathcodec.AppendMove(nil, pathcodec.Point{X: 1, Y: 2})
	data = append(data, 'X')

	err := pathcodec.Validate(data)
	offset, _ := pathcodec.ErrorOffset(err)
	fmt.Println(offset)
	fmt.Println(err)
	// Output:
	// 17
	// invalid path format: unknown tag 'X' at offset 17
}
