// Package render turns trace Steps into terminal frames and YAML documents.
//
// A Renderer draws one Step at a time; its Palette decides how highlighted
// cells and nodes look. Plain() leaves text untouched and is used for
// --format text, Styled() adds lipgloss colors for the terminal player.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/algoreplay/trace"
)

// Func draws one Step as a multi-line frame without a trailing newline.
type Func[S trace.Snapshot] func(S) string

// Palette holds the styles a Renderer applies.
type Palette struct {
	// Focus marks the node or cells the Step is about.
	Focus lipgloss.Style
	// Changed marks cells whose state changed this Step.
	Changed lipgloss.Style
	// Dim marks finished nodes and empty cells.
	Dim lipgloss.Style
	// Result marks collected results.
	Result lipgloss.Style
	// Kind styles the step kind in headers.
	Kind lipgloss.Style
}

// Plain returns a Palette that renders text unchanged.
func Plain() Palette {
	s := lipgloss.NewStyle()
	return Palette{Focus: s, Changed: s, Dim: s, Result: s, Kind: s}
}

// Styled returns the colored Palette used by the player.
func Styled() Palette {
	return Palette{
		Focus:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Changed: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Result:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Kind:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),
	}
}

// Renderer draws Steps of every generator.
type Renderer struct {
	Palette Palette
}

// New returns a Renderer using p.
func New(p Palette) Renderer { return Renderer{Palette: p} }

// Header is the one-line summary of s: position, kind and description.
func (r Renderer) Header(s trace.Snapshot, total int) string {
	return fmt.Sprintf("[%d/%d] %s  %s",
		s.Sequence()+1, total, r.Palette.Kind.Render(s.StepKind().String()), s.Describe())
}

// WriteText writes every Step of tr as a header followed by its frame.
// A nil frame writes headers only.
func WriteText[S trace.Snapshot](w io.Writer, r Renderer, tr *trace.Trace[S], frame Func[S]) error {
	var b strings.Builder
	for i, s := range tr.All() {
		b.Reset()
		if i > 0 && frame != nil {
			b.WriteByte('\n')
		}
		b.WriteString(r.Header(s, tr.Len()))
		b.WriteByte('\n')
		if frame != nil {
			b.WriteString(indent(frame(s), "    "))
			b.WriteByte('\n')
		}
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n")
}
