// File: gridbfs/example_test.go
package gridbfs_test

import (
	"fmt"

	"github.com/katalvlaran/algoreplay/gridbfs"
)

// ExampleIslands records a small region-counting run and prints every Step.
//
//	110
//	001
func ExampleIslands() {
	tr, err := gridbfs.Islands("110\n001")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range tr.All() {
		fmt.Printf("%d %s: %s\n", s.Seq, s.Kind, s.Description)
	}
	// Output:
	// 0 scan: scan (0,0): unvisited land
	// 1 found: found region 1 at (0,0)
	// 2 expand: region 1 grows from (0,0) to (0,1)
	// 3 scan: scan (0,1): land already in region 1
	// 4 scan: scan (0,2): water
	// 5 scan: scan (1,0): water
	// 6 scan: scan (1,1): water
	// 7 scan: scan (1,2): unvisited land
	// 8 found: found region 2 at (1,2)
	// 9 done: scan complete: 2 region(s)
}

// ExampleSpread shows a two-round spread ending with an unreachable cell.
func ExampleSpread() {
	tr, err := gridbfs.Spread("211\n000\n001")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range tr.All() {
		if s.Kind == "scan" {
			continue
		}
		fmt.Printf("%s: %s\n", s.Kind, s.Description)
	}
	// Output:
	// expand: round 1: 1 cell(s) reached, 2 remaining
	// expand: round 2: 1 cell(s) reached, 1 remaining
	// impossible: stopped after 2 round(s): 1 cell(s) can never be reached
}
