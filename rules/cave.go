package rules

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidRule is returned for rules that cannot be applied, such as a negative repeat count
var ErrInvalidRule = errors.New("invalid generation rule")

// GenerationRule is one smoothing pass: a cell becomes a wall when its radius-1 wall count
// reaches Threshold1 or its radius-2 wall count is at most Threshold2. The pass is repeated
// RepeatCount times.
type GenerationRule struct {
	Threshold1  int `json:"threshold_1"`
	Threshold2  int `json:"threshold_2"`
	RepeatCount int `json:"repeat_count"`
}

// NewGenerationRule builds a validated rule
func NewGenerationRule(threshold1, threshold2, repeatCount int) (GenerationRule, error) {
	rule := GenerationRule{Threshold1: threshold1, Threshold2: threshold2, RepeatCount: repeatCount}
	if err := rule.Validate(); err != nil {
		return GenerationRule{}, err
	}
	return rule, nil
}

// Validate rejects negative repeat counts. Zero is legal and applies no transitions.
func (r GenerationRule) Validate() error {
	if r.RepeatCount < 0 {
		return errors.Wrapf(ErrInvalidRule, "[Validate] negative repeat count: %d", r.RepeatCount)
	}
	return nil
}

/*
ApplyCaveRules decides the next state of an interior cell.

countR1 is the number of walls in the full 3x3 window around the cell (the cell included),
countR2 the number of in-bounds walls in the 5x5 window minus its four corners.

Cave rule: countR1 >= Threshold1 || countR2 <= Threshold2
*/
func ApplyCaveRules(countR1, countR2 int, rule GenerationRule) bool {
	return countR1 >= rule.Threshold1 || countR2 <= rule.Threshold2
}

// String renders the rule in the same notation as Formula
func (r GenerationRule) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Repeat %d: W'(p) = R[1](p) >= %d", r.RepeatCount, r.Threshold1)
	// count_r2 is never negative, so a negative threshold switches the erosion term off
	if r.Threshold2 >= 0 {
		fmt.Fprintf(&sb, " || R[2](p) <= %d", r.Threshold2)
	}
	return sb.String()
}

// Formula describes the whole generation: the seeding step followed by every rule in order
func Formula(fillPercent int, caveRules []GenerationRule) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "W[0](p) = rand[0,100) < %d\n", fillPercent)
	for _, rule := range caveRules {
		sb.WriteString(rule.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// TotalTransitions returns the number of transitions a rule sequence applies
func TotalTransitions(caveRules []GenerationRule) (total int) {
	for _, rule := range caveRules {
		total += max(rule.RepeatCount, 0)
	}
	return
}
