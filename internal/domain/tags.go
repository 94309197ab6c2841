// Package domain holds the pipeline logic of the catchup CLI: tag
// extraction, the progressive test controller and the build/test/submit
// workflow.
package domain

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	m "catchup.dev/pkg/catchup/internal/model"
)

var tagPattern = regexp.MustCompile(`\[task_(\d+)\]`)

// ExtractTags returns the distinct task tags mentioned in text, in ascending
// numeric order. Repeated markers collapse to one tag; ordering is by the
// numeric value, not the textual one. Pure function of the text.
func ExtractTags(text string) []m.TaskTag {
	seen := make(map[int]struct{})

	var tags []m.TaskTag

	for _, match := range tagPattern.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}

		if _, ok := seen[n]; ok {
			continue
		}

		seen[n] = struct{}{}
		tags = append(tags, m.TaskTag{Number: n})
	}

	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Number < tags[j].Number
	})

	return tags
}

// NormalizeTaskNames canonicalizes user-supplied task names: surrounding
// space and brackets are stripped and a bare number becomes "task_<N>".
func NormalizeTaskNames(names []string) []string {
	normalized := make([]string, 0, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		name = strings.TrimPrefix(name, "[")
		name = strings.TrimSuffix(name, "]")

		if name == "" {
			continue
		}

		if n, err := strconv.Atoi(name); err == nil {
			name = m.TaskTag{Number: n}.String()
		}

		normalized = append(normalized, name)
	}

	return normalized
}
