package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amonks/rtd/internal/age"
	"github.com/amonks/rtd/internal/markdown"
	"github.com/amonks/rtd/internal/ui"
	"github.com/amonks/rtd/task"
	"github.com/spf13/cobra"
)

// rtd add
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new task",
	Args:  cobra.NoArgs,
	RunE:  runAdd,
}

var addName string

// rtd complete
var completeCmd = &cobra.Command{
	Use:   "complete",
	Short: "Mark a task as done",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTaskAction(cmd, "Complete task", func(s *task.Service) (string, error) {
			return s.Complete(completeID)
		})
	},
}

// rtd uncomplete
var uncompleteCmd = &cobra.Command{
	Use:   "uncomplete",
	Short: "Mark a task as not done",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTaskAction(cmd, "Uncomplete task", func(s *task.Service) (string, error) {
			return s.Uncomplete(uncompleteID)
		})
	},
}

// rtd delete
var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Move a task to the trash",
	Long: `Move a task to the trash.

Deleted tasks are kept in the task file and can be brought back with
'rtd restore'. Use 'rtd destroy' to remove a task for good.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTaskAction(cmd, "Delete task", func(s *task.Service) (string, error) {
			return s.Delete(deleteID)
		})
	},
}

// rtd restore
var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore a deleted task",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTaskAction(cmd, "Restore task", func(s *task.Service) (string, error) {
			return s.Restore(restoreID)
		})
	},
}

// rtd destroy
var destroyCmd = &cobra.Command{
	Use:   "destroy",
	Short: "Permanently remove a task",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTaskAction(cmd, "Destroy task", func(s *task.Service) (string, error) {
			return s.Destroy(destroyID)
		})
	},
}

var (
	completeID   uint32
	uncompleteID uint32
	deleteID     uint32
	restoreID    uint32
	destroyID    uint32
)

// rtd list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var (
	listType   = listTypeValue(task.FilterAll)
	listFormat = formatValue(formatPretty)
)

// rtd show
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show detailed information about a task",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

var showID uint32

func init() {
	rootCmd.AddCommand(addCmd, completeCmd, uncompleteCmd, deleteCmd, restoreCmd, destroyCmd, listCmd, showCmd)

	addCmd.Flags().StringVarP(&addName, "name", "n", "", "Task name")
	_ = addCmd.MarkFlagRequired("name")

	for _, target := range []struct {
		cmd *cobra.Command
		id  *uint32
	}{
		{completeCmd, &completeID},
		{uncompleteCmd, &uncompleteID},
		{deleteCmd, &deleteID},
		{restoreCmd, &restoreID},
		{destroyCmd, &destroyID},
		{showCmd, &showID},
	} {
		target.cmd.Flags().Uint32VarP(target.id, "id", "i", 0, "Task ID")
		_ = target.cmd.MarkFlagRequired("id")
	}

	listCmd.Flags().VarP(&listType, "list-type", "t", "Which tasks to list: all, completed, uncompleted, deleted")
	listCmd.Flags().VarP(&listFormat, "format", "f", "Output format: pretty, table, json, yaml")
}

// runTaskAction runs fn against the task service and prints its
// confirmation. Task failures are printed to stderr and do not change
// the exit status.
func runTaskAction(cmd *cobra.Command, action string, fn func(*task.Service) (string, error)) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return reportTaskError(cmd, action, err)
	}

	message, err := fn(env.service)
	if err != nil {
		env.logger.WithError(err).Debug(strings.ToLower(action) + " failed")
		return reportTaskError(cmd, action, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), message)
	return nil
}

// reportTaskError prints failures that belong to the task layer and
// returns any other error to cobra.
func reportTaskError(cmd *cobra.Command, action string, err error) error {
	var openErr *storeOpenError
	if errors.As(err, &openErr) || isTaskError(err) {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s fail: %v\n", action, err)
		return nil
	}
	return err
}

func isTaskError(err error) bool {
	for _, target := range []error{
		task.ErrEnvironment,
		task.ErrIO,
		task.ErrNotFound,
		task.ErrEmptyName,
		task.ErrReservedToken,
		task.ErrIDExhausted,
		task.ErrSpliceRange,
		task.ErrInvalidFilter,
		task.ErrFieldCount,
		task.ErrInvalidField,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func runAdd(cmd *cobra.Command, args []string) error {
	return runTaskAction(cmd, fmt.Sprintf("Add %q", ui.FirstLine(addName)), func(s *task.Service) (string, error) {
		return s.Add(addName)
	})
}

func runList(cmd *cobra.Command, args []string) error {
	const action = "List tasks"
	filter := task.Filter(listType)

	env, err := loadEnv(cmd)
	if err != nil {
		return reportTaskError(cmd, action, err)
	}
	out := cmd.OutOrStdout()

	switch format := outputFormat(listFormat); format {
	case formatJSON, formatYAML, formatTable:
		tasks, err := env.service.Tasks(filter)
		if err != nil {
			return reportTaskError(cmd, action, err)
		}
		if tasks == nil {
			tasks = []task.Task{}
		}
		switch format {
		case formatJSON:
			return encodeJSON(out, tasks)
		case formatYAML:
			return encodeYAML(out, tasks)
		}
		if len(tasks) == 0 {
			fmt.Fprintln(out, taskEmptyListMessage(filter))
			return nil
		}
		fmt.Fprint(out, formatTaskTable(env, tasks))
		return nil
	}

	listing, err := env.service.List(filter)
	if err != nil {
		return reportTaskError(cmd, action, err)
	}
	if listing == "" {
		fmt.Fprintln(out, taskEmptyListMessage(filter))
		return nil
	}
	fmt.Fprint(out, listing)
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	const action = "Show task"

	env, err := loadEnv(cmd)
	if err != nil {
		return reportTaskError(cmd, action, err)
	}

	item, err := env.service.Get(showID)
	if err != nil {
		return reportTaskError(cmd, action, err)
	}

	fmt.Fprint(cmd.OutOrStdout(), formatTaskDetail(env, item, time.Now()))
	return nil
}

func formatTaskDetail(env *taskEnv, item task.Task, now time.Time) string {
	styles := env.styles
	layout := env.config.Display.TimeFormat

	var builder strings.Builder
	field := func(label, value string) {
		builder.WriteString(styles.Label.Render(fmt.Sprintf("%-10s", label+":")))
		builder.WriteString(" ")
		builder.WriteString(value)
		builder.WriteString("\n")
	}
	timestamp := func(label string, ts *int64) {
		if ts == nil {
			return
		}
		age := ui.FormatTimeAgo(time.Unix(*ts, 0), now)
		field(label, fmt.Sprintf("%s %s", ui.FormatTimestamp(ts, layout, time.Local), styles.Muted.Render("("+age+")")))
	}

	field("ID", styles.ID.Render(fmt.Sprintf("%d", item.ID)))
	field("Status", taskStatus(item))
	timestamp("Created", item.CreatedAt)
	timestamp("Completed", item.CompletedAt)
	timestamp("Deleted", item.DeletedAt)

	var ended *int64
	if item.Completed {
		ended = item.CompletedAt
	}
	if span, ok := age.Span(item.CreatedAt, ended, now); ok {
		field("Age", ui.FormatDurationShort(span))
	}

	if rendered := markdown.SafeRender(env.config.Display.Width, 2, []byte(item.Name)); len(rendered) > 0 {
		builder.WriteString("\n")
		builder.Write(rendered)
		builder.WriteString("\n")
	}
	return builder.String()
}
