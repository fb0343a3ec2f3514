package reward

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerfectOnly(t *testing.T) {
	p := PerfectOnly()

	out := p.Decide(5, 5, 40)
	assert.True(t, out.Earned)
	assert.True(t, out.UnlockNext)
	assert.Equal(t, 40, out.Coins)
	assert.Equal(t, 100, out.Percent)

	out = p.Decide(4, 5, 40)
	assert.False(t, out.Earned)
	assert.False(t, out.UnlockNext)
	assert.Zero(t, out.Coins)
}

func TestThreshold(t *testing.T) {
	tests := []struct {
		name   string
		p      float64
		score  int
		total  int
		earned bool
		pct    int
	}{
		{"4 of 5 at 70", 0.70, 4, 5, true, 80},
		{"3 of 5 at 70", 0.70, 3, 5, false, 60},
		{"7 of 10 at 70 is exactly the bar", 0.70, 7, 10, true, 70},
		{"4 of 5 at 80", 0.80, 4, 5, true, 80},
		{"7 of 10 at 80", 0.80, 7, 10, false, 70},
		// 2/3 rounds to 67, below 70
		{"2 of 3 at 70", 0.70, 2, 3, false, 67},
		{"zero total", 0.70, 0, 0, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Threshold(tt.p).Decide(tt.score, tt.total, 25)
			assert.Equal(t, tt.earned, out.Earned)
			assert.Equal(t, tt.earned, out.UnlockNext)
			assert.Equal(t, tt.pct, out.Percent)
			if tt.earned {
				assert.Equal(t, 25, out.Coins)
			} else {
				assert.Zero(t, out.Coins)
			}
		})
	}
}

func TestAnyCompletion(t *testing.T) {
	out := AnyCompletion().Decide(0, 4, 10)
	assert.True(t, out.Earned)
	assert.True(t, out.UnlockNext)
	assert.Equal(t, 10, out.Coins)
	assert.Zero(t, out.Percent)
}

func TestPercentRounding(t *testing.T) {
	assert.Equal(t, 33, Percent(1, 3))
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 0, Percent(1, 0))
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "threshold(70%)", Threshold(0.7).String())
	assert.Equal(t, "perfect-only", PerfectOnly().String())
}
