package backtrack_test

import (
	"fmt"

	"github.com/katalvlaran/algoreplay/backtrack"
)

// ExampleGenerateSubsets prints the choose/collect/undo trace of the power
// set of {a, b}.
func ExampleGenerateSubsets() {
	tr, err := backtrack.GenerateSubsets([]string{"a", "b"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range tr.All() {
		fmt.Printf("%d %s: %s\n", s.Seq, s.Kind, s.Description)
	}
	// Output:
	// 0 collect: collect [] (result 1)
	// 1 choose: choose "a": path [a]
	// 2 collect: collect [a] (result 2)
	// 3 choose: choose "b": path [a,b]
	// 4 collect: collect [a,b] (result 3)
	// 5 undo: undo "b": back to [a]
	// 6 undo: undo "a": back to []
	// 7 choose: choose "b": path [b]
	// 8 collect: collect [b] (result 4)
	// 9 undo: undo "b": back to []
	// 10 done: explored 4 node(s), collected 4 result(s)
}

// ExampleGenerateParentheses lists the balanced sequences of three pairs in
// emission order.
func ExampleGenerateParentheses() {
	tr, _ := backtrack.GenerateParentheses(3)
	for _, r := range tr.Last().Results {
		fmt.Println(r.Text)
	}
	// Output:
	// ((()))
	// (()())
	// (())()
	// ()(())
	// ()()()
}
