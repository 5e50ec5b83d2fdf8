package flow_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mincut/builder"
	"github.com/katalvlaran/mincut/flow"
)

// ExampleGlobalMinCut shows the exact cut of a barbell: the bridges.
func ExampleGlobalMinCut() {
	g, _ := builder.BuildGraph(nil, nil, builder.Barbell(4, 2))

	cut, err := flow.GlobalMinCut(context.Background(), g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("min cut:", cut)
	// Output:
	// min cut: 2
}
