package main

import (
	"fmt"

	"github.com/amonks/rtd/task"
)

func taskEmptyListMessage(filter task.Filter) string {
	if filter == "" || filter == task.FilterAll {
		return "No tasks found. Use 'rtd add --name <name>' to create one."
	}
	return fmt.Sprintf("No %s tasks found.", filter)
}
