// Package reward decides what a finished session earns.
package reward

import (
	"fmt"
	"math"
)

// Mode selects how a final score is judged.
type Mode string

const (
	ModePerfectOnly   Mode = "perfect-only"
	ModeThreshold     Mode = "threshold"
	ModeAnyCompletion Mode = "any-completion"
)

// Policy is a per-game reward rule. Threshold is a fraction in [0,1] and is
// only read in ModeThreshold.
type Policy struct {
	Mode      Mode
	Threshold float64
}

// PerfectOnly rewards only a perfect score.
func PerfectOnly() Policy {
	return Policy{Mode: ModePerfectOnly}
}

// Threshold rewards a rounded percentage of at least p*100.
func Threshold(p float64) Policy {
	return Policy{Mode: ModeThreshold, Threshold: p}
}

// AnyCompletion rewards finishing regardless of score.
func AnyCompletion() Policy {
	return Policy{Mode: ModeAnyCompletion}
}

func (p Policy) String() string {
	if p.Mode == ModeThreshold {
		return fmt.Sprintf("%s(%d%%)", p.Mode, thresholdPercent(p.Threshold))
	}
	return string(p.Mode)
}

// Outcome is what a completed session earned.
type Outcome struct {
	Earned     bool
	Coins      int
	UnlockNext bool
	Percent    int
}

// Percent is round(100*score/total), or 0 when total is not positive.
func Percent(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(score) / float64(total)))
}

// Decide computes the outcome of a session that ended with score out of
// total. coins is granted only when the reward is earned. Not earning is a
// normal outcome.
func (p Policy) Decide(score, total, coins int) Outcome {
	pct := Percent(score, total)

	var earned bool
	switch p.Mode {
	case ModePerfectOnly:
		earned = total > 0 && score == total
	case ModeThreshold:
		earned = total > 0 && pct >= thresholdPercent(p.Threshold)
	case ModeAnyCompletion:
		earned = true
	}

	out := Outcome{Earned: earned, UnlockNext: earned, Percent: pct}
	if earned {
		out.Coins = coins
	}
	if p.Mode == ModeAnyCompletion {
		out.UnlockNext = true
	}
	return out
}

// thresholdPercent rounds p*100 so that 0.7 compares as 70, not 70.00000000000001.
func thresholdPercent(p float64) int {
	return int(math.Round(p * 100))
}
