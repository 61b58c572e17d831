// Package backtrack records depth-first backtracking searches as replayable
// traces of an explicit call tree.
//
// What:
//
//   - Problem: a search space described by ordered Branches, an Accept
//     predicate and a Format for results. Subsets, Parentheses and
//     LetterCombinations are provided.
//   - Generate walks the tree once and emits, per node:
//     `collect` on entry when the path is accepted (the result is already in
//     Results), then for every branch in order `choose` → subtree → `undo`.
//     A final `done` Step returns to the root with an empty path.
//   - Every Step carries the path, the focus node id, the tree discovered
//     so far and the ids on the current path (Active), so it can be rendered
//     without replaying earlier Steps. Step.Status and Step.Collected derive
//     a node's state at that instant.
//
// Shared storage:
//
//	Nodes never change once created: a node's collect Step is known when
//	it is discovered and stored as CollectedAt. Tree, Results and Path are
//	therefore prefixes of walker storage that is never rewritten, shared by
//	all Steps rather than copied. Only Active is copied per Step.
//
// Ordering:
//
//	Branches are visited exactly in the order the Problem returns them
//	(input order for Subsets, '(' before ')' for Parentheses, keypad order
//	for LetterCombinations). Golden traces depend on it.
//
// Size ceiling:
//
//	Problem constructors bound their inputs, and Generate counts the Steps
//	a problem would produce before recording anything. A count above
//	MaxSteps is rejected with trace.ErrTraceTooLarge, so unbounded
//	branching never reaches the recorder.
//
// Errors:
//
//   - ErrDuplicateChoice, ErrInvalidChoice, ErrTooManyChoices,
//     ErrPairsOutOfRange, ErrInvalidDigit, ErrNilProblem,
//     ErrOptionViolation, trace.ErrTraceTooLarge; all wrap
//     trace.ErrInvalidInput.
//
// Complexity: O(N) search work and O(N + S·D) memory for N tree nodes,
// S Steps and maximum depth D.
package backtrack
