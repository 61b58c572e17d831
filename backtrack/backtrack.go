package backtrack

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/algoreplay/trace"
)

// walker encapsulates the mutable search state. nodes and results are
// append-only: entries are never rewritten, so every Step holds a shared
// prefix of them instead of a copy.
type walker struct {
	p       Problem
	rec     *trace.Recorder[Step]
	active  []int
	nodes   []Node
	results []Result
}

// Generate runs p to completion and returns its trace.
// Returns ErrNilProblem, ErrOptionViolation, or trace.ErrTraceTooLarge when
// the search would exceed the step ceiling. No Step is recorded on error.
func Generate(p Problem, opts ...Option) (*trace.Trace[Step], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Size the trace before recording anything.
	n, ok := countSteps(p, o.MaxSteps)
	if !ok {
		return nil, fmt.Errorf("%w: %s needs more than %d steps", trace.ErrTraceTooLarge, p.Name(), o.MaxSteps)
	}

	w := &walker{
		p:      p,
		rec:    trace.NewRecorder[Step](n),
		active: []int{0},
	}
	root := Node{ID: 0, Parent: -1, Path: []string{}, CollectedAt: -1}
	if p.Accept(root.Path) {
		root.CollectedAt = 0
	}
	w.nodes = append(w.nodes, root)
	w.traverse(0)

	w.active = w.active[:0]
	w.emit(trace.KindDone, 0, "explored %d node(s), collected %d result(s)", len(w.nodes), len(w.results))

	tr, err := w.rec.Trace()
	if err != nil {
		return nil, err
	}
	if tr.Len() != n {
		panic(trace.Violation("%s: recorded %d steps, counted %d", p.Name(), tr.Len(), n))
	}
	o.Logger.Debug("backtracking trace generated",
		zap.String("problem", p.Name()),
		zap.Int("nodes", len(w.nodes)),
		zap.Int("results", len(w.results)),
		zap.Int("steps", tr.Len()))

	return tr, nil
}

// GenerateSubsets is shorthand for Subsets followed by Generate.
func GenerateSubsets(elems []string, opts ...Option) (*trace.Trace[Step], error) {
	p, err := Subsets(elems)
	if err != nil {
		return nil, err
	}
	return Generate(p, opts...)
}

// GenerateParentheses is shorthand for Parentheses followed by Generate.
func GenerateParentheses(n int, opts ...Option) (*trace.Trace[Step], error) {
	p, err := Parentheses(n)
	if err != nil {
		return nil, err
	}
	return Generate(p, opts...)
}

// GenerateLetters is shorthand for LetterCombinations followed by Generate.
func GenerateLetters(digits string, opts ...Option) (*trace.Trace[Step], error) {
	p, err := LetterCombinations(digits)
	if err != nil {
		return nil, err
	}
	return Generate(p, opts...)
}

// traverse visits node id, which is the last entry of w.active.
func (w *walker) traverse(id int) {
	path := w.nodes[id].Path

	// 1. Pre-order: collect an accepted path before exploring children.
	if at := w.nodes[id].CollectedAt; at >= 0 {
		if at != w.rec.Next() {
			panic(trace.Violation("%s: node %d collected at step %d, predicted %d", w.p.Name(), id, w.rec.Next(), at))
		}
		w.results = append(w.results, Result{Path: path, Text: w.p.Format(path)})
		w.emit(trace.KindCollect, id, "collect %s (result %d)", w.p.Format(path), len(w.results))
	}

	// 2. Children in the order the problem lists them.
	for _, b := range w.p.Branches(path) {
		child := w.addNode(id, b)
		w.active = append(w.active, child)
		w.emit(trace.KindChoose, child, "choose %q: path %s", b, w.p.Format(w.nodes[child].Path))

		w.traverse(child)

		// 3. Post-order: drop the choice and return to the parent.
		w.active = w.active[:len(w.active)-1]
		w.emit(trace.KindUndo, id, "undo %q: back to %s", b, w.p.Format(path))
	}
}

// addNode creates the child of parent reached by label. Its collect Step,
// if any, directly follows the choose Step that is emitted next.
func (w *walker) addNode(parent int, label string) int {
	id := len(w.nodes)
	p := w.nodes[parent]
	path := make([]string, len(p.Path)+1)
	copy(path, p.Path)
	path[len(p.Path)] = label
	n := Node{
		ID:          id,
		Parent:      parent,
		Depth:       p.Depth + 1,
		Label:       label,
		Path:        path,
		CollectedAt: -1,
	}
	if w.p.Accept(path) {
		n.CollectedAt = w.rec.Next() + 1
	}
	w.nodes = append(w.nodes, n)
	return id
}

// emit records the current state. Path, Tree and Results alias walker
// storage that is never written again; only active is copied.
func (w *walker) emit(kind trace.Kind, focus int, format string, args ...any) {
	path := w.nodes[0].Path
	if len(w.active) > 0 {
		path = w.nodes[w.active[len(w.active)-1]].Path
	}
	active := make([]int, len(w.active))
	copy(active, w.active)
	w.rec.Append(Step{
		Meta:    w.rec.Meta(kind, format, args...),
		Path:    path,
		Focus:   focus,
		Tree:    w.nodes[:len(w.nodes):len(w.nodes)],
		Active:  active,
		Results: w.results[:len(w.results):len(w.results)],
	})
}

// counter dry-runs a Problem to size its trace without building snapshots.
type counter struct {
	p      Problem
	budget int
	n      int
	path   []string
}

// countSteps returns the exact number of Steps Generate would record for p,
// or false as soon as the count passes budget.
func countSteps(p Problem, budget int) (int, bool) {
	c := &counter{p: p, budget: budget, n: 1} // the final done Step
	if !c.visit() {
		return c.n, false
	}
	return c.n, c.n <= budget
}

func (c *counter) visit() bool {
	if c.p.Accept(c.path) {
		c.n++
	}
	if c.n > c.budget {
		return false
	}
	for _, b := range c.p.Branches(c.path) {
		c.n += 2 // choose + undo
		if c.n > c.budget {
			return false
		}
		c.path = append(c.path, b)
		if !c.visit() {
			return false
		}
		c.path = c.path[:len(c.path)-1]
	}
	return true
}
