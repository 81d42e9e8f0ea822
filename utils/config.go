package utils

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-cavegen/model"
	"github.com/sheikhrachel/go-cavegen/rules"
)

// Config holds the configuration for a generation run
type Config struct {
	Width         int                    `json:"width"`
	Height        int                    `json:"height"`
	FillPercent   int                    `json:"fill_percent"`
	Rules         []rules.GenerationRule `json:"rules"`
	Seed          int64                  `json:"seed"` // 0 picks a time based seed
	CryptoRandom  bool                   `json:"crypto_random"`
	UseParallel   bool                   `json:"use_parallel"`
	Workers       int                    `json:"workers"`
	UseMemoryPool bool                   `json:"use_memory_pool"`
	Count         int                    `json:"count"`
	WallChar      string                 `json:"wall_char"`
	FloorChar     string                 `json:"floor_char"`
	ShowFormula   bool                   `json:"show_formula"`
	ShowStats     bool                   `json:"show_stats"`
	Quiet         bool                   `json:"quiet"`
}

// DefaultConfig returns the classic 64x20 cave with two smoothing rules
func DefaultConfig() Config {
	return Config{
		Width:       64,
		Height:      20,
		FillPercent: 40,
		Rules: []rules.GenerationRule{
			{Threshold1: 5, Threshold2: 2, RepeatCount: 4},
			{Threshold1: 5, Threshold2: -1, RepeatCount: 3},
		},
		UseParallel:   false,
		UseMemoryPool: true,
		Count:         1,
		WallChar:      "#",
		FloorChar:     ".",
		ShowFormula:   true,
		ShowStats:     false,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random fill (0 = time based)")
	fs.BoolVar(&c.CryptoRandom, "crypto", c.CryptoRandom, "seed from crypto/rand instead of a seeded PCG source")
	fs.BoolVar(&c.UseParallel, "parallel", c.UseParallel, "split each transition across goroutines")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per transition (0 = NumCPU)")
	fs.BoolVar(&c.UseMemoryPool, "pool", c.UseMemoryPool, "recycle grids between maps")
	fs.IntVar(&c.Count, "count", c.Count, "number of maps to generate")
	fs.StringVar(&c.WallChar, "wall", c.WallChar, "character drawn for walls")
	fs.StringVar(&c.FloorChar, "floor", c.FloorChar, "character drawn for floors")
	fs.BoolVar(&c.ShowFormula, "formula", c.ShowFormula, "print the rule formula")
	fs.BoolVar(&c.ShowStats, "stats", c.ShowStats, "print generation statistics")
	fs.BoolVar(&c.Quiet, "quiet", c.Quiet, "print only the maps")
}

// Validate checks the parameters the generator relies on
func (c Config) Validate() error {
	if err := model.ValidateDimensions(c.Width, c.Height); err != nil {
		return errors.Wrap(err, "[Validate]")
	}
	if len(c.Rules) == 0 {
		return errors.Wrap(rules.ErrInvalidRule, "[Validate] at least one rule is required")
	}
	for i, rule := range c.Rules {
		if err := rule.Validate(); err != nil {
			return errors.Wrapf(err, "[Validate] rule %d", i+1)
		}
	}
	if c.Count < 1 {
		return errors.Wrapf(ErrUsage, "[Validate] count must be positive, got %d", c.Count)
	}
	if len([]rune(c.WallChar)) != 1 || len([]rune(c.FloorChar)) != 1 {
		return errors.Wrapf(ErrUsage, "[Validate] wall and floor must be single characters, got %q and %q", c.WallChar, c.FloorChar)
	}
	return nil
}

// Renderer builds the text renderer for the configured characters. Call after Validate.
func (c Config) Renderer() *model.TextRenderer {
	return &model.TextRenderer{Wall: []rune(c.WallChar)[0], Floor: []rune(c.FloorChar)[0]}
}

// RunOptions translates the engine settings into automaton options
func (c Config) RunOptions() []model.RunOption {
	if !c.UseParallel {
		return nil
	}
	return []model.RunOption{model.WithParallel(c.Workers)}
}
