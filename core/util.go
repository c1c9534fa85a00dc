package core

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
)

// DumpState renders the pipeline and lane state as tables. It is meant for
// debugging sessions, not for the hot path.
func DumpState(w io.Writer, c *Core) {
	pipeTable := table.NewWriter()
	pipeTable.SetTitle("Pipeline")
	pipeTable.AppendHeader(table.Row{"Stage", "Status", "Inst", "Result"})
	pipeTable.AppendRow(table.Row{
		c.state.Name(),
		fmt.Sprintf("0x%X", c.Status()),
		fmt.Sprintf("0x%08X", c.inst.Word()),
		fmt.Sprintf("0x%08X", c.result),
	})
	fmt.Fprintln(w, pipeTable.Render())

	laneTable := table.NewWriter()
	laneTable.SetTitle("Processing Elements")
	laneTable.AppendHeader(table.Row{"Lane", "Accumulator"})
	for i := 0; i < c.pes.Len(); i++ {
		lane := c.pes.Lane(i)
		laneTable.AppendRow(table.Row{lane.ID(), lane.Accumulator()})
	}
	fmt.Fprintln(w, laneTable.Render())
}

// LogState emits a one-line checkpoint of the pipeline state.
func LogState(c *Core) {
	cycles, ops := c.PerfCounters()
	slog.Debug("StateCheckpoint",
		"Stage", c.state.Name(),
		"Status", c.Status(),
		"Inst", c.inst.Word(),
		"Result", c.result,
		"Cycles", cycles,
		"Operations", ops,
	)
}
