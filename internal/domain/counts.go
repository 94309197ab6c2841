package domain

import (
	"regexp"
	"strconv"

	m "catchup.dev/pkg/catchup/internal/model"
)

var (
	testCasePattern  = regexp.MustCompile(`(\d+) test cases?`)
	assertionPattern = regexp.MustCompile(`(\d+) assertions?`)
)

// ParseCounts scrapes the test case and assertion totals from a run's raw
// output. Best effort: when either total is absent the counts stay unknown,
// which is never treated as a failure.
func ParseCounts(output string) m.Counts {
	cases := testCasePattern.FindStringSubmatch(output)
	asserts := assertionPattern.FindStringSubmatch(output)

	if cases == nil || asserts == nil {
		return m.Counts{}
	}

	testCases, err := strconv.Atoi(cases[1])
	if err != nil {
		return m.Counts{}
	}

	assertions, err := strconv.Atoi(asserts[1])
	if err != nil {
		return m.Counts{}
	}

	return m.Counts{TestCases: testCases, Assertions: assertions, Known: true}
}
