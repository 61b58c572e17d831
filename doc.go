// Package algoreplay records algorithm executions as step-by-step traces and
// replays them under a pause/step/reset controller.
//
// What is algoreplay?
//
//	A small library plus CLI that turns a run of a classic algorithm into an
//	immutable, ordered list of snapshots, then plays that list back:
//		• trace:     Step contract, Recorder, immutable Trace, Verify
//		• backtrack: choose/collect/undo search (subsets, parentheses, letters)
//		• grid:      rectangular cell grid and its text format
//		• gridbfs:   region labelling and multi-source spread on a grid
//		• prefixsum: subarray-sum scan with a prefix table
//		• playback:  play, pause, step, reset and per-kind tick pacing
//
// Generators run to completion before playback starts; a trace never
// changes after it is built, so any number of controllers may replay it.
//
// Under the hood:
//
//	internal/config  viper-backed settings (pacing, speed, limits)
//	internal/render  text frames (lipgloss) and YAML export
//	internal/player  bubbletea terminal player
//	internal/cli     cobra commands behind cmd/algoreplay
//
// Quick example:
//
//	tr, _ := backtrack.GenerateSubsets([]string{"1", "2", "3"})
//	c, _ := playback.New[backtrack.Step]()
//	_ = c.Bind(tr)
//	c.Play()
//	for c.IsPlaying() {
//		c.Tick()
//	}
package algoreplay

// Version is the release reported by `algoreplay version`.
const Version = "0.1.0"
