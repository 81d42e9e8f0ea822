package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-cavegen/model"
	"github.com/sheikhrachel/go-cavegen/rules"
	"github.com/sheikhrachel/go-cavegen/utils"
)

// parseConfig builds the run configuration: defaults, then the optional JSON file, then flags,
// then positional arguments.
func parseConfig(name string, args []string, stderr io.Writer) (utils.Config, error) {
	newFlagSet := func(config *utils.Config) (*flag.FlagSet, *string) {
		fs := flag.NewFlagSet(name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		fs.Usage = func() {
			fmt.Fprintf(stderr, "Usage: %s [flags] [%s]\n", name, utils.Usage)
			fs.PrintDefaults()
		}
		path := fs.String("config", "", "JSON configuration file")
		config.Bind(fs)
		return fs, path
	}

	config := utils.DefaultConfig()
	fs, path := newFlagSet(&config)
	if err := fs.Parse(args); err != nil {
		return config, flagError(err)
	}

	// flags must win over the file, so parse them again on top of it
	if *path != "" {
		loaded, err := utils.LoadConfig(*path)
		if err != nil {
			return config, err
		}
		config = loaded
		fs, _ = newFlagSet(&config)
		if err = fs.Parse(args); err != nil {
			return config, flagError(err)
		}
	}

	if err := config.ApplyArgs(fs.Args()); err != nil {
		return config, err
	}
	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// flagError keeps -h distinguishable from a bad flag
func flagError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return errors.Wrap(utils.ErrUsage, err.Error())
}

// newRandomSource picks the configured source, resolving a zero seed to the current time
func newRandomSource(config *utils.Config) model.RandomSource {
	if config.CryptoRandom {
		return model.NewCryptoSource()
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	return model.NewSeededSource(config.Seed)
}

// displayRunInfo shows the parameters of the run
func displayRunInfo(w io.Writer, config utils.Config) {
	fmt.Fprintf(w, "x_size: %d\n", config.Width)
	fmt.Fprintf(w, "y_size: %d\n", config.Height)
	fmt.Fprintf(w, "fill_percent: %d\n", config.FillPercent)
	for i, rule := range config.Rules {
		fmt.Fprintf(w, "rule %d: (%d, %d, %d)\n", i+1, rule.Threshold1, rule.Threshold2, rule.RepeatCount)
	}
	if config.CryptoRandom {
		fmt.Fprintln(w, "seed: crypto")
	} else {
		fmt.Fprintf(w, "seed: %d\n", config.Seed)
	}
	if config.ShowFormula {
		fmt.Fprint(w, rules.Formula(config.FillPercent, config.Rules))
	}
	fmt.Fprintln(w)
}

// displayStats shows the statistics for one map
func displayStats(w io.Writer, index int, stats *utils.Stats) {
	fmt.Fprintf(w, "Map %d | Transitions: %d | Walls: %d | Floors: %d (%.1f%%) | Hash: %s\n",
		index+1, stats.Transitions, stats.Walls, stats.Floors, stats.FloorDensity, stats.Hash)
	fmt.Fprintf(w, "Performance: %.1f transitions/sec | Runtime: %s\n", stats.TransitionsPerSecond, stats.Duration)
}

// generateCave runs the initializer and automaton for one map
func generateCave(config utils.Config, pool *model.GridPool, rng model.RandomSource, stats *utils.Stats) (*model.Grid, func(), error) {
	current, next, err := model.InitializeGridsFromPool(pool, config.Width, config.Height, config.FillPercent, rng)
	if err != nil {
		return nil, nil, err
	}
	release := func() {
		model.GridToPool(current, pool)
		model.GridToPool(next, pool)
	}

	opts := append(config.RunOptions(), model.WithObserver(stats.Observe))
	final, err := model.RunAutomaton(current, next, config.Rules, config.Width, config.Height, opts...)
	if err != nil {
		release()
		return nil, nil, err
	}
	stats.Finish(final)
	return final, release, nil
}

// run generates config.Count maps, rendering each to stdout
func run(config utils.Config, stdout, stderr io.Writer) error {
	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	rng := newRandomSource(&config)
	renderer := config.Renderer()
	if !config.Quiet {
		displayRunInfo(stderr, config)
	}

	for i := range config.Count {
		stats := utils.NewStats()
		grid, release, err := generateCave(config, pool, rng, stats)
		if err != nil {
			return errors.Wrapf(err, "[run] map %d", i+1)
		}

		err = renderer.Render(stdout, grid)
		release()
		if err != nil {
			return err
		}
		if i < config.Count-1 {
			fmt.Fprintln(stdout)
		}

		if config.ShowStats && !config.Quiet {
			displayStats(stderr, i, stats)
		}
	}
	return nil
}
