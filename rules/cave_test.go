package rules

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyCaveRules(t *testing.T) {
	rule := GenerationRule{Threshold1: 5, Threshold2: 2}
	tests := []struct {
		name             string
		countR1, countR2 int
		want             bool
	}{
		{"dense neighbourhood grows wall", 5, 10, true},
		{"sparse wide window fills gap", 0, 2, true},
		{"both terms false", 4, 3, false},
		{"both terms true", 9, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyCaveRules(tt.countR1, tt.countR2, rule))
		})
	}
}

func TestApplyCaveRulesThresholdZero(t *testing.T) {
	rule := GenerationRule{Threshold1: 0, Threshold2: -1}
	for r1 := 0; r1 <= 9; r1++ {
		assert.True(t, ApplyCaveRules(r1, 21, rule))
	}
}

func TestNewGenerationRule(t *testing.T) {
	rule, err := NewGenerationRule(5, -1, 0)
	require.NoError(t, err)
	assert.Equal(t, GenerationRule{Threshold1: 5, Threshold2: -1, RepeatCount: 0}, rule)

	_, err = NewGenerationRule(5, 2, -1)
	assert.True(t, errors.Is(err, ErrInvalidRule))
}

func TestFormula(t *testing.T) {
	caveRules := []GenerationRule{
		{Threshold1: 5, Threshold2: 2, RepeatCount: 4},
		{Threshold1: 5, Threshold2: -1, RepeatCount: 3},
	}
	want := "W[0](p) = rand[0,100) < 40\n" +
		"Repeat 4: W'(p) = R[1](p) >= 5 || R[2](p) <= 2\n" +
		"Repeat 3: W'(p) = R[1](p) >= 5\n"
	assert.Equal(t, want, Formula(40, caveRules))
	assert.Equal(t, 7, TotalTransitions(caveRules))
}

func TestFromTriples(t *testing.T) {
	caveRules, err := FromTriples([]int{5, 2, 4, 5, -1, 3})
	require.NoError(t, err)
	assert.Equal(t, []GenerationRule{
		{Threshold1: 5, Threshold2: 2, RepeatCount: 4},
		{Threshold1: 5, Threshold2: -1, RepeatCount: 3},
	}, caveRules)

	for _, values := range [][]int{nil, {1, 2}, {1, 2, 3, 4}} {
		_, err = FromTriples(values)
		assert.True(t, errors.Is(err, ErrInvalidRule), "%v", values)
	}

	_, err = FromTriples([]int{5, 2, 1, 5, 2, -4})
	assert.True(t, errors.Is(err, ErrInvalidRule))
	assert.Contains(t, err.Error(), "rule 2")
}
