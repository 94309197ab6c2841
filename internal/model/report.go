package model

// ProgressiveReport records the outcome of one progressive test pass. It is
// built incrementally while tags run and becomes terminal at the first
// failure or once the sequence (plus any final verification) is exhausted.
type ProgressiveReport struct {
	// Tags is the full schedule in ascending numeric order, after any
	// subset filtering.
	Tags []TaskTag

	Passed    []TaskTag
	Failed    *TaskTag
	FailedRun *RunResult

	// FinalRun is the unfiltered verification run performed after every
	// tag passed. Nil when a tag failed, when an explicit subset was
	// requested, or before the verification has happened. In the no-tags
	// fallback it holds the single full-suite run.
	FinalRun *RunResult

	// Filtered is true when the caller requested an explicit task subset,
	// which also suppresses the final verification run.
	Filtered bool
}

// Remaining returns the tags scheduled after the failing one, i.e. the tags
// that were never attempted. Empty while no tag has failed.
func (r ProgressiveReport) Remaining() []TaskTag {
	if r.Failed == nil {
		return nil
	}

	for i, tag := range r.Tags {
		if tag == *r.Failed {
			return r.Tags[i+1:]
		}
	}

	return nil
}

// Succeeded reports the overall verdict: no tag failed and, when a final
// verification run happened, that run passed as well.
func (r ProgressiveReport) Succeeded() bool {
	if r.Failed != nil {
		return false
	}

	if r.FinalRun != nil {
		return r.FinalRun.Succeeded
	}

	return true
}
