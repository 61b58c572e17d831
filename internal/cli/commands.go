package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoreplay/backtrack"
	"github.com/katalvlaran/algoreplay/gridbfs"
	"github.com/katalvlaran/algoreplay/internal/render"
	"github.com/katalvlaran/algoreplay/prefixsum"
	"github.com/katalvlaran/algoreplay/trace"
)

func (a *app) backtrackOpts() []backtrack.Option {
	return []backtrack.Option{backtrack.WithMaxSteps(a.cfg.MaxSteps), backtrack.WithLogger(a.log)}
}

func (a *app) gridOpts() []gridbfs.Option {
	return []gridbfs.Option{
		gridbfs.WithMaxCells(a.cfg.MaxCells),
		gridbfs.WithMaxSteps(a.cfg.MaxSteps),
		gridbfs.WithLogger(a.log),
	}
}

func backtrackFrame(r render.Renderer) render.Func[backtrack.Step] { return r.Backtrack }

func newSubsetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "subsets [ELEMENT...]",
		Short: "Enumerate every subset of distinct elements by backtracking",
		Example: `  algoreplay subsets 1 2 3
  algoreplay subsets a b --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			elems := append([]string{}, args...)
			return runJob(cmd, a, job[backtrack.Step]{
				name:     "subsets",
				input:    "{" + strings.Join(elems, ",") + "}",
				generate: func() (*trace.Trace[backtrack.Step], error) { return backtrack.GenerateSubsets(elems, a.backtrackOpts()...) },
				frame:    backtrackFrame,
			})
		},
	}
}

func newParensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "parens N",
		Short:   "Generate every balanced sequence of N parenthesis pairs",
		Example: "  algoreplay parens 3",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: N must be an integer, got %q", trace.ErrInvalidInput, args[0])
			}
			return runJob(cmd, a, job[backtrack.Step]{
				name:     "parentheses",
				input:    "n=" + args[0],
				generate: func() (*trace.Trace[backtrack.Step], error) { return backtrack.GenerateParentheses(n, a.backtrackOpts()...) },
				frame:    backtrackFrame,
			})
		},
	}
}

func newLettersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "letters DIGITS",
		Short:   "Spell every letter combination of keypad digits 2-9",
		Example: "  algoreplay letters 23",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			digits := args[0]
			return runJob(cmd, a, job[backtrack.Step]{
				name:     "letters",
				input:    digits,
				generate: func() (*trace.Trace[backtrack.Step], error) { return backtrack.GenerateLetters(digits, a.backtrackOpts()...) },
				frame:    backtrackFrame,
			})
		},
	}
}

const gridHelp = `The grid is given as arguments (one row each, or rows separated by ';'),
with --file, or on stdin. Cells may be separated by spaces or commas.`

func newIslandsCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "islands [ROW...]",
		Short: "Label connected land regions of a 0/1 grid breadth-first",
		Long:  "Scan a grid of water (0) and land (1) and flood each new region.\n\n" + gridHelp,
		Example: `  algoreplay islands 11000 11000 00100 00011
  algoreplay islands --file map.txt --play`,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}
			return runJob(cmd, a, job[gridbfs.IslandStep]{
				name:     "islands",
				input:    compact(raw),
				generate: func() (*trace.Trace[gridbfs.IslandStep], error) { return gridbfs.Islands(raw, a.gridOpts()...) },
				frame:    func(r render.Renderer) render.Func[gridbfs.IslandStep] { return r.Islands },
			})
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "read the grid from this file ('-' for stdin)")
	return cmd
}

func newSpreadCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "spread [ROW...]",
		Short: "Spread from every source (2) to fresh cells (1) in simultaneous rounds",
		Long:  "Simulate a multi-source breadth-first spread over empty (0), fresh (1) and source (2) cells.\n\n" + gridHelp,
		Example: `  algoreplay spread 211 110 011
  algoreplay spread "2,1,1;0,1,1;1,0,1"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}
			return runJob(cmd, a, job[gridbfs.SpreadStep]{
				name:     "spread",
				input:    compact(raw),
				generate: func() (*trace.Trace[gridbfs.SpreadStep], error) { return gridbfs.Spread(raw, a.gridOpts()...) },
				frame:    func(r render.Renderer) render.Func[gridbfs.SpreadStep] { return r.Spread },
			})
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "read the grid from this file ('-' for stdin)")
	return cmd
}

func newSubarrayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "subarray K NUMBERS...",
		Short: "Find every contiguous subarray summing to K with a prefix-sum table",
		Long: `Numbers may be separate arguments or comma-separated. Put "--" before
the arguments when the first one is negative.`,
		Example: `  algoreplay subarray 7 3,4,7,2,-3,1,4,2
  algoreplay subarray -- -1 1 -1 1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: K must be an integer, got %q", trace.ErrInvalidInput, args[0])
			}
			nums, err := parseInts(args[1:])
			if err != nil {
				return err
			}
			return runJob(cmd, a, job[prefixsum.Step]{
				name:  "subarray",
				input: fmt.Sprintf("k=%d %v", k, nums),
				generate: func() (*trace.Trace[prefixsum.Step], error) {
					return prefixsum.Generate(nums, k, prefixsum.WithMaxSteps(a.cfg.MaxSteps), prefixsum.WithLogger(a.log))
				},
				frame: func(r render.Renderer) render.Func[prefixsum.Step] { return r.Subarray },
			})
		},
	}
}

func parseInts(args []string) ([]int, error) {
	nums := []int{}
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: not an integer: %q", trace.ErrInvalidInput, field)
			}
			nums = append(nums, v)
		}
	}
	return nums, nil
}

// compact folds grid text onto one line for titles and YAML.
func compact(raw string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(strings.TrimSpace(raw), "\n", ";")), "")
}
