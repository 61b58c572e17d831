package playback_test

import (
	"fmt"

	"github.com/katalvlaran/algoreplay/gridbfs"
	"github.com/katalvlaran/algoreplay/playback"
)

// ExampleController replays a spread trace by hand: Step while paused, then
// ticks until playback stops on its own.
func ExampleController() {
	tr, err := gridbfs.Spread("21\n01")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	c, _ := playback.New[gridbfs.SpreadStep]()
	if err := c.Bind(tr); err != nil {
		fmt.Println("error:", err)
		return
	}

	c.Step()
	fmt.Println(c.Index(), c.State())

	c.Play()
	for c.IsPlaying() {
		c.Tick()
	}
	last, _ := c.Current()
	fmt.Println(c.Index(), c.State(), last.Kind, last.Elapsed)
	// Output:
	// 1 ready
	// 6 finished done 2
}
