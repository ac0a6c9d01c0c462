// Package eograph models the edge orientation of a 3x3x3 cube as a
// state-transition graph and finds, by exhaustive breadth-first search,
// the states that need the most moves to orient.
//
// # Model
//
// A State holds one bit per edge position, set when the edge is flipped.
// Only the 2048 states with an even number of flips are legal. The six
// face turns are described by a GeneratorTable: each generator cycles four
// positions and, for F and B, flips them. Every generator yields three
// moves, X, X2 and X'.
//
// # Quick Start
//
//	g := eograph.BuildGraph()
//	res, rep, err := eograph.Analyze(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("max length:", rep.MaxLength)
//	for _, w := range rep.Farthest {
//	    fmt.Println(w.State, w.Moves)
//	}
//	fmt.Println(res.Algorithm(eograph.StateFromFree(3)))
//
// # Standalone Simulation
//
// The Cube type tracks orientation without building the graph:
//
//	cube := eograph.NewCube()
//	cube.ApplyNotation("F R U' B2")
//	fmt.Println(cube.State(), cube.IsOriented())
package eograph
