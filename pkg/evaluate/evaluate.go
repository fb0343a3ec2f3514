// Package evaluate judges a player's choice against a scenario.
package evaluate

import (
	"k8s.io/klog/v2"

	"citizen-dojo/pkg/scenario"
)

// Verdict is the result of judging one answer.
type Verdict string

const (
	Correct   Verdict = "correct"
	Incorrect Verdict = "incorrect"
)

// IsCorrect reports whether v is Correct.
func (v Verdict) IsCorrect() bool {
	return v == Correct
}

// Evaluate judges choice against s. It never fails: a choice of the wrong
// shape, no input, or a scenario missing its correctness marker is Incorrect.
func Evaluate(s scenario.Scenario, choice scenario.Choice) Verdict {
	if choice.IsEmpty() || choice.Kind() != s.Kind {
		return Incorrect
	}

	switch s.Kind {
	case scenario.KindSingleChoice:
		return singleChoice(s, choice.OptionID())
	case scenario.KindBinary:
		if s.Truth == nil {
			klog.V(2).InfoS("Binary scenario has no ground truth", "scenario", s.ID)
			return Incorrect
		}
		return verdict(choice.Action() == *s.Truth)
	case scenario.KindCategory:
		if s.CorrectCategory == "" {
			klog.V(2).InfoS("Category scenario has no correct category", "scenario", s.ID)
			return Incorrect
		}
		return verdict(choice.Category() == s.CorrectCategory)
	}
	return Incorrect
}

func singleChoice(s scenario.Scenario, id string) Verdict {
	if len(s.Options) == 0 {
		klog.V(2).InfoS("Single-choice scenario has no options", "scenario", s.ID)
		return Incorrect
	}
	for _, o := range s.Options {
		if o.ID == id {
			return verdict(o.Correct)
		}
	}
	return Incorrect
}

func verdict(ok bool) Verdict {
	if ok {
		return Correct
	}
	return Incorrect
}
