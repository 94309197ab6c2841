// Package model defines the data types shared by the domain, adapters and UI.
package model

import (
	"fmt"
	"strings"
)

// Path represents a file system path.
type Path string

// TaskTag identifies one task's group of test cases. Tags are rendered as
// "task_<N>" and attached to test cases in the exercise's test file as
// bracketed markers, e.g. "[task_2]".
type TaskTag struct {
	Number int
}

func (t TaskTag) String() string {
	return fmt.Sprintf("task_%d", t.Number)
}

// Bracketed renders the tag in the form the test binary accepts as a filter
// argument, e.g. "[task_2]".
func (t TaskTag) Bracketed() string {
	return "[" + t.String() + "]"
}

// JoinTags renders tags as a comma-separated list for display.
// Returns "none" for an empty list so summaries never print a blank field.
func JoinTags(tags []TaskTag) string {
	if len(tags) == 0 {
		return "none"
	}

	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.String())
	}

	return strings.Join(names, ", ")
}
