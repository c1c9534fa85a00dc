package verify

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// WriteIssueReport renders lint findings as a table.
func WriteIssueReport(w io.Writer, issues []Issue) {
	if len(issues) == 0 {
		fmt.Fprintln(w, "No issues found")
		return
	}

	t := table.NewWriter()
	t.SetTitle("Lint Findings")
	t.AppendHeader(table.Row{"Index", "Type", "Word", "Message"})
	for _, issue := range issues {
		t.AppendRow(table.Row{
			issue.Index,
			string(issue.Type),
			fmt.Sprintf("0x%08X", issue.Inst.Word()),
			issue.Message,
		})
	}

	fmt.Fprintln(w, t.Render())
}

// WriteMismatchReport renders simulator/reference disagreements as a table.
func WriteMismatchReport(w io.Writer, mismatches []Mismatch) {
	if len(mismatches) == 0 {
		fmt.Fprintln(w, "Simulator matches the reference model")
		return
	}

	t := table.NewWriter()
	t.SetTitle("Result Mismatches")
	t.AppendHeader(table.Row{"Index", "Opcode", "Expected", "Actual"})
	for _, m := range mismatches {
		t.AppendRow(table.Row{
			m.Index,
			m.Inst.Opcode.Name(),
			fmt.Sprintf("0x%08X", m.Expected),
			fmt.Sprintf("0x%08X", m.Actual),
		})
	}

	fmt.Fprintln(w, t.Render())
}
