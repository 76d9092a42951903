package flood_test

import (
	"fmt"

	"github.com/katalvlaran/ndmines/flood"
	"github.com/katalvlaran/ndmines/minefield"
	"github.com/katalvlaran/ndmines/tensor"
)

// ExampleRun opens a 1×6 strip from its left end. The mine at column 4
// stops the fill at the numbered cell in column 3.
func ExampleRun() {
	f, _ := minefield.New([]int{1, 6}, 1, nil)
	_ = f.PlaceMinesAt(tensor.Coord{0, 4})

	opened, err := flood.Run(f, tensor.Coord{0, 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(opened)
	fmt.Println(f.Stats())
	// Output:
	// [(0,0) (0,1) (0,2) (0,3)]
	// {2 0 4}
}
