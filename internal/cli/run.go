package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/algoreplay/internal/player"
	"github.com/katalvlaran/algoreplay/internal/render"
	"github.com/katalvlaran/algoreplay/playback"
	"github.com/katalvlaran/algoreplay/trace"
)

// job is one generator run: what to call it and how to draw its Steps.
type job[S trace.Snapshot] struct {
	name     string
	input    string
	generate func() (*trace.Trace[S], error)
	frame    func(render.Renderer) render.Func[S]
}

// runJob generates the trace, checks it, then prints or plays it.
func runJob[S trace.Snapshot](cmd *cobra.Command, a *app, j job[S]) error {
	tr, err := generate(j.generate)
	if err != nil {
		return err
	}
	if err := trace.Verify(tr); err != nil {
		return err
	}
	a.log.Debug("trace ready",
		zap.String("algorithm", j.name),
		zap.Int("steps", tr.Len()),
		zap.Int("results", tr.Last().ResultCount()))

	if a.play {
		return playTrace(cmd, a, j, tr)
	}

	out := cmd.OutOrStdout()
	switch a.format {
	case FormatYAML:
		err = render.WriteYAML(out, j.name, j.input, tr)
	default:
		r := render.New(render.Plain())
		var frame render.Func[S]
		if !a.brief {
			frame = j.frame(r)
		}
		err = render.WriteText(out, r, tr, frame)
	}
	if err != nil {
		return fmt.Errorf("%w: write trace: %w", errSystem, err)
	}
	return nil
}

// playTrace binds tr to a controller and hands it to the terminal player.
// The trace starts playing immediately.
func playTrace[S trace.Snapshot](cmd *cobra.Command, a *app, j job[S], tr *trace.Trace[S]) error {
	c, err := playback.New[S](
		playback.WithPacing(a.cfg.Pacing),
		playback.WithLogger(a.log),
	)
	if err != nil {
		return err
	}
	if err := c.Bind(tr); err != nil {
		return err
	}
	c.Play()

	r := render.New(render.Styled())
	m := player.New(j.name+" "+j.input, c, r, j.frame(r), a.cfg.Speed)
	err = player.Run(cmd.Context(), m,
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", errSystem, err)
	}
	a.log.Debug("playback ended", zap.Int("index", c.Index()), zap.Stringer("state", c.State()))
	return nil
}

// generate runs gen, turning a contract-violation panic from the recorder
// into an error.
func generate[S trace.Snapshot](gen func() (*trace.Trace[S], error)) (tr *trace.Trace[S], err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.Is(e, trace.ErrContractViolation) {
				tr, err = nil, e
				return
			}
			panic(r)
		}
	}()
	return gen()
}

// readInput returns the grid text from args, --file or stdin, in that order.
func readInput(cmd *cobra.Command, args []string, file string) (string, error) {
	switch {
	case len(args) > 0 && file != "":
		return "", fmt.Errorf("%w: give the grid either as an argument or with --file", trace.ErrInvalidInput)
	case len(args) > 0:
		return strings.Join(args, "\n"), nil
	case file == "-" || file == "":
		return readAll(cmd.InOrStdin(), "stdin")
	default:
		f, err := os.Open(file)
		if err != nil {
			return "", fmt.Errorf("%w: %w", trace.ErrInvalidInput, err)
		}
		defer f.Close()
		return readAll(f, file)
	}
}

// maxGridBytes bounds grid input read from files or stdin.
const maxGridBytes = 64 << 10

func readAll(r io.Reader, name string) (string, error) {
	b, err := io.ReadAll(io.LimitReader(r, maxGridBytes+1))
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %w", errSystem, name, err)
	}
	if len(b) > maxGridBytes {
		return "", fmt.Errorf("%w: %s exceeds %d bytes", trace.ErrInvalidInput, name, maxGridBytes)
	}
	return string(b), nil
}
