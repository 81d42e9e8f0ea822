package utils

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-cavegen/rules"
)

// Usage is the positional argument synopsis
const Usage = "x_size y_size fill_% (rule_1 rule_2 number_of_times_to_apply)+"

// ErrUsage is returned for malformed command line input
var ErrUsage = errors.New("usage error")

// ApplyArgs overrides the dimensions, fill and rules from positional arguments in the form
// x_size y_size fill_% (r1 r2 reps)+. No arguments leaves the config untouched.
func (c *Config) ApplyArgs(args []string) error {
	if len(args) == 0 {
		return nil
	}
	if len(args) < 6 || (len(args)-3)%3 != 0 {
		return errors.Wrapf(ErrUsage, "[ApplyArgs] expected %s, got %d arguments", Usage, len(args))
	}

	values := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return errors.Wrapf(ErrUsage, "[ApplyArgs] argument %d (%q) is not an integer", i+1, arg)
		}
		values[i] = n
	}

	caveRules, err := rules.FromTriples(values[3:])
	if err != nil {
		return errors.Wrap(err, "[ApplyArgs]")
	}

	c.Width, c.Height, c.FillPercent = values[0], values[1], values[2]
	c.Rules = caveRules
	return nil
}
