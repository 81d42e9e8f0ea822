package rules

import "github.com/pkg/errors"

const tripleSize = 3

// FromTriples groups a flat list of integers into rules, three values per rule:
// threshold 1, threshold 2, repeat count.
func FromTriples(values []int) ([]GenerationRule, error) {
	if len(values) == 0 || len(values)%tripleSize != 0 {
		return nil, errors.Wrapf(ErrInvalidRule, "[FromTriples] expected groups of %d values, got %d", tripleSize, len(values))
	}

	caveRules := make([]GenerationRule, 0, len(values)/tripleSize)
	for i := 0; i < len(values); i += tripleSize {
		rule, err := NewGenerationRule(values[i], values[i+1], values[i+2])
		if err != nil {
			return nil, errors.Wrapf(err, "[FromTriples] rule %d", i/tripleSize+1)
		}
		caveRules = append(caveRules, rule)
	}
	return caveRules, nil
}
