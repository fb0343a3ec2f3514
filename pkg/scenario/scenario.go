// Package scenario defines the questions a mini-game presents and the choices a player can make.
package scenario

import (
	"errors"
	"fmt"
)

// Kind identifies how a scenario marks its correct answer.
type Kind string

const (
	KindSingleChoice Kind = "single-choice" // one option flagged correct
	KindBinary       Kind = "binary"        // ground-truth yes/no
	KindCategory     Kind = "category"      // exact category label
)

// Option is one selectable answer of a single-choice scenario.
type Option struct {
	ID      string
	Label   string
	Correct bool
}

// Scenario is one stimulus shown to the player. Exactly one of the
// shape-specific field groups is meaningful, selected by Kind.
type Scenario struct {
	ID          string
	Kind        Kind
	Prompt      string
	Explanation string

	// KindSingleChoice
	Options []Option

	// KindBinary. Truth is nil when the author forgot the marker.
	Truth    *bool
	YesLabel string
	NoLabel  string

	// KindCategory
	Categories      []string
	CorrectCategory string
}

// Choice is a player's submission. The zero value is "no input", used when
// a reflex countdown expires; it never matches any scenario.
type Choice struct {
	kind     Kind
	option   string
	action   bool
	category string
}

// PickOption selects an option of a single-choice scenario.
func PickOption(id string) Choice {
	return Choice{kind: KindSingleChoice, option: id}
}

// Act answers a binary scenario.
func Act(action bool) Choice {
	return Choice{kind: KindBinary, action: action}
}

// PickCategory answers a category scenario.
func PickCategory(category string) Choice {
	return Choice{kind: KindCategory, category: category}
}

// Kind returns the scenario shape this choice answers, or "" for no input.
func (c Choice) Kind() Kind { return c.kind }

// IsEmpty reports whether the choice carries no input.
func (c Choice) IsEmpty() bool { return c.kind == "" }

// OptionID returns the selected option id.
func (c Choice) OptionID() string { return c.option }

// Action returns the binary action.
func (c Choice) Action() bool { return c.action }

// Category returns the chosen category label.
func (c Choice) Category() string { return c.category }

func (c Choice) String() string {
	switch c.kind {
	case KindSingleChoice:
		return "option:" + c.option
	case KindBinary:
		return fmt.Sprintf("action:%t", c.action)
	case KindCategory:
		return "category:" + c.category
	default:
		return "none"
	}
}

// Answer is a presentation-neutral selectable answer.
type Answer struct {
	Label  string
	Choice Choice
}

// Answers lists the answers a player can pick, in display order.
func (s Scenario) Answers() []Answer {
	var answers []Answer
	switch s.Kind {
	case KindSingleChoice:
		for _, o := range s.Options {
			answers = append(answers, Answer{Label: o.Label, Choice: PickOption(o.ID)})
		}
	case KindBinary:
		yes, no := s.YesLabel, s.NoLabel
		if yes == "" {
			yes = "Yes"
		}
		if no == "" {
			no = "No"
		}
		answers = append(answers,
			Answer{Label: yes, Choice: Act(true)},
			Answer{Label: no, Choice: Act(false)},
		)
	case KindCategory:
		for _, c := range s.Categories {
			answers = append(answers, Answer{Label: c, Choice: PickCategory(c)})
		}
	}
	return answers
}

// Solution returns the correct choice. ok is false for malformed scenarios.
func (s Scenario) Solution() (Choice, bool) {
	switch s.Kind {
	case KindSingleChoice:
		for _, o := range s.Options {
			if o.Correct {
				return PickOption(o.ID), true
			}
		}
	case KindBinary:
		if s.Truth != nil {
			return Act(*s.Truth), true
		}
	case KindCategory:
		if s.CorrectCategory != "" {
			return PickCategory(s.CorrectCategory), true
		}
	}
	return Choice{}, false
}

// Validate reports authoring defects: missing correctness markers, empty
// options, duplicate option ids or an unknown kind.
func (s Scenario) Validate() error {
	var errs []error
	if s.ID == "" {
		errs = append(errs, errors.New("missing id"))
	}
	switch s.Kind {
	case KindSingleChoice:
		if len(s.Options) == 0 {
			errs = append(errs, errors.New("no options"))
		}
		seen := make(map[string]bool, len(s.Options))
		correct := 0
		for _, o := range s.Options {
			if o.ID == "" {
				errs = append(errs, errors.New("option without id"))
			}
			if seen[o.ID] {
				errs = append(errs, fmt.Errorf("duplicate option id %q", o.ID))
			}
			seen[o.ID] = true
			if o.Correct {
				correct++
			}
		}
		if correct == 0 {
			errs = append(errs, errors.New("no option marked correct"))
		}
	case KindBinary:
		if s.Truth == nil {
			errs = append(errs, errors.New("missing ground truth"))
		}
	case KindCategory:
		if s.CorrectCategory == "" {
			errs = append(errs, errors.New("missing correct category"))
		}
		found := false
		for _, c := range s.Categories {
			if c == s.CorrectCategory {
				found = true
			}
		}
		if !found {
			errs = append(errs, fmt.Errorf("correct category %q not offered", s.CorrectCategory))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown kind %q", s.Kind))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("scenario %q: %w", s.ID, err)
	}
	return nil
}

// ValidateSet validates every scenario of a set and requires at least one.
func ValidateSet(set []Scenario) error {
	if len(set) == 0 {
		return errors.New("empty scenario set")
	}
	var errs []error
	for _, s := range set {
		if err := s.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Bool returns a pointer to b, for authoring binary scenarios.
func Bool(b bool) *bool {
	return &b
}
