package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswers(t *testing.T) {
	single := Scenario{
		ID:   "pw",
		Kind: KindSingleChoice,
		Options: []Option{
			{ID: "a", Label: "password123"},
			{ID: "b", Label: "Blue!Tiger$Jumps", Correct: true},
		},
	}
	answers := single.Answers()
	require.Len(t, answers, 2)
	assert.Equal(t, "password123", answers[0].Label)
	assert.Equal(t, PickOption("b"), answers[1].Choice)

	binary := Scenario{ID: "chat", Kind: KindBinary, Truth: Bool(true), YesLabel: "Stop"}
	answers = binary.Answers()
	require.Len(t, answers, 2)
	assert.Equal(t, "Stop", answers[0].Label)
	assert.Equal(t, "No", answers[1].Label)
	assert.Equal(t, Act(false), answers[1].Choice)

	category := Scenario{ID: "h", Kind: KindCategory, Categories: []string{"News", "Ad"}, CorrectCategory: "Ad"}
	answers = category.Answers()
	require.Len(t, answers, 2)
	assert.Equal(t, PickCategory("Ad"), answers[1].Choice)
}

func TestSolution(t *testing.T) {
	c, ok := Scenario{Kind: KindBinary, Truth: Bool(false)}.Solution()
	require.True(t, ok)
	assert.Equal(t, Act(false), c)

	_, ok = Scenario{Kind: KindSingleChoice, Options: []Option{{ID: "a"}}}.Solution()
	assert.False(t, ok, "no option marked correct")

	_, ok = Scenario{Kind: KindBinary}.Solution()
	assert.False(t, ok, "missing truth")
}

func TestZeroChoiceIsEmpty(t *testing.T) {
	var c Choice
	assert.True(t, c.IsEmpty())
	assert.Equal(t, "none", c.String())
	assert.False(t, Act(false).IsEmpty())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		s       Scenario
		wantErr bool
	}{
		{
			name: "valid single choice",
			s:    Scenario{ID: "x", Kind: KindSingleChoice, Options: []Option{{ID: "a", Correct: true}, {ID: "b"}}},
		},
		{
			name:    "empty options",
			s:       Scenario{ID: "x", Kind: KindSingleChoice},
			wantErr: true,
		},
		{
			name:    "duplicate option ids",
			s:       Scenario{ID: "x", Kind: KindSingleChoice, Options: []Option{{ID: "a", Correct: true}, {ID: "a"}}},
			wantErr: true,
		},
		{
			name:    "binary without truth",
			s:       Scenario{ID: "x", Kind: KindBinary},
			wantErr: true,
		},
		{
			name:    "category not offered",
			s:       Scenario{ID: "x", Kind: KindCategory, Categories: []string{"A"}, CorrectCategory: "B"},
			wantErr: true,
		},
		{
			name:    "unknown kind",
			s:       Scenario{ID: "x", Kind: "essay"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSetEmpty(t *testing.T) {
	assert.Error(t, ValidateSet(nil))
}
