package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/amonks/rtd/internal/ui"
	"github.com/amonks/rtd/task"
	"github.com/charmbracelet/lipgloss"
)

const (
	markDone    = "✅"
	markPending = "🔲"
	markDeleted = "🚮"

	detailIndent = 6
)

func prettyRenderer(styles ui.Styles, width int, layout string) func(task.Task) string {
	return func(t task.Task) string {
		return renderTask(styles, width, layout, time.Local, t)
	}
}

// renderTask formats a task as a header line followed by its timestamps.
// Long or multi-line names wrap under the name column.
func renderTask(styles ui.Styles, width int, layout string, loc *time.Location, t task.Task) string {
	mark := styles.Pending.Render(markPending)
	if t.Completed {
		mark = styles.Done.Render(markDone)
	}
	prefix := fmt.Sprintf("%s %s ", styles.ID.Render(fmt.Sprintf("%3d", t.ID)), mark)
	if t.Deleted {
		prefix += styles.Deleted.Render(markDeleted) + " "
	}
	prefixWidth := lipgloss.Width(prefix)

	nameStyle := styles.Pending
	switch {
	case t.Deleted:
		nameStyle = styles.Deleted
	case t.Completed:
		nameStyle = styles.Done
	}

	var builder strings.Builder
	lines := strings.Split(ui.WrapIndent(t.Name, width-prefixWidth, 0), "\n")
	for i, line := range lines {
		if i == 0 {
			builder.WriteString(prefix)
		} else {
			builder.WriteString(strings.Repeat(" ", prefixWidth))
		}
		builder.WriteString(nameStyle.Render(line))
		builder.WriteString("\n")
	}

	writeDetail := func(label string, ts *int64) {
		value := ui.FormatTimestamp(ts, layout, loc)
		if value == "" {
			return
		}
		builder.WriteString(strings.Repeat(" ", detailIndent))
		builder.WriteString(styles.Label.Render(label + ":"))
		builder.WriteString(" ")
		builder.WriteString(styles.Muted.Render(value))
		builder.WriteString("\n")
	}
	writeDetail("Created at", t.CreatedAt)
	writeDetail("Completed at", t.CompletedAt)
	writeDetail("Deleted at", t.DeletedAt)

	return builder.String()
}

func taskStatus(t task.Task) string {
	switch {
	case t.Deleted:
		return "deleted"
	case t.Completed:
		return "done"
	default:
		return "pending"
	}
}

func formatTaskTable(env *taskEnv, tasks []task.Task) string {
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			fmt.Sprintf("%d", t.ID),
			taskStatus(t),
			ui.TruncateTableCell(t.Name),
			ui.FormatTimestamp(t.CreatedAt, env.config.Display.TimeFormat, time.Local),
		})
	}
	return env.styles.FormatTable([]string{"ID", "STATUS", "NAME", "CREATED"}, rows)
}
