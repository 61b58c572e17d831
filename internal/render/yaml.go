package render

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algoreplay/trace"
)

// Document is the YAML export of one trace.
type Document[S trace.Snapshot] struct {
	Algorithm string `yaml:"algorithm"`
	Input     string `yaml:"input"`
	StepCount int    `yaml:"step_count"`
	Results   int    `yaml:"results"`
	Steps     []S    `yaml:"steps"`
}

// WriteYAML encodes tr as a single YAML document.
func WriteYAML[S trace.Snapshot](w io.Writer, algorithm, input string, tr *trace.Trace[S]) error {
	doc := Document[S]{
		Algorithm: algorithm,
		Input:     input,
		StepCount: tr.Len(),
		Results:   tr.Last().ResultCount(),
		Steps:     tr.Steps(),
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode trace: %w", err)
	}
	return enc.Close()
}
