// Package survey resolves the next step of a microsurvey from the step's branch table.
package survey

import (
	"errors"
	"fmt"
	"sort"

	"github.com/QuangTung97/promo-engagement/model"
)

var (
	// ErrEmptyAnswer ...
	ErrEmptyAnswer = errors.New("empty answer")
	// ErrAnswerNotInChoices ...
	ErrAnswerNotInChoices = errors.New("answer not in choices")
	// ErrMultipleAnswers for more than one answer on a single select step
	ErrMultipleAnswers = errors.New("multiple answers on single select step")
	// ErrNoBranch when the answer set matches no branch and the step has no default branch
	ErrNoBranch = errors.New("no branch for answer")
)

// NextStep returns the next step seq for the answers, or model.StepComplete.
// Answers are compared as a set, duplicates and order are ignored.
func NextStep(step model.Step, answers []string) (int, error) {
	set, err := normalize(step, answers)
	if err != nil {
		return 0, err
	}

	defaultNext := -1
	for _, b := range step.Branches {
		if len(b.Answers) == 0 {
			if defaultNext < 0 {
				defaultNext = b.Next
			}
			continue
		}
		if equalSets(set, b.Answers) {
			return b.Next, nil
		}
	}

	if defaultNext >= 0 {
		return defaultNext, nil
	}
	return 0, fmt.Errorf("%w: step %d, answers %v", ErrNoBranch, step.Seq, set)
}

func normalize(step model.Step, answers []string) ([]string, error) {
	if len(answers) == 0 {
		return nil, ErrEmptyAnswer
	}

	valid := make(map[string]struct{}, len(step.Choices))
	for _, c := range step.Choices {
		valid[c.Key] = struct{}{}
	}

	seen := make(map[string]struct{}, len(answers))
	set := make([]string, 0, len(answers))
	for _, a := range answers {
		if _, ok := valid[a]; !ok {
			return nil, fmt.Errorf("%w: step %d, answer %q", ErrAnswerNotInChoices, step.Seq, a)
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		set = append(set, a)
	}

	if !step.MultiSelect && len(set) > 1 {
		return nil, fmt.Errorf("%w: step %d", ErrMultipleAnswers, step.Seq)
	}

	sort.Strings(set)
	return set, nil
}

// sorted must be sorted and deduplicated
func equalSets(sorted []string, keys []string) bool {
	other := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		other[k] = struct{}{}
	}
	if len(other) != len(sorted) {
		return false
	}
	for _, k := range sorted {
		if _, ok := other[k]; !ok {
			return false
		}
	}
	return true
}
