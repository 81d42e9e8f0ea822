package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-cavegen/model"
	"github.com/sheikhrachel/go-cavegen/rules"
	"github.com/sheikhrachel/go-cavegen/utils"
)

func TestParseConfigPositional(t *testing.T) {
	config, err := parseConfig("cavegen", []string{"-seed", "3", "20", "10", "45", "5", "2", "1"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 20, config.Width)
	assert.Equal(t, 10, config.Height)
	assert.Equal(t, 45, config.FillPercent)
	assert.Equal(t, int64(3), config.Seed)
	assert.Equal(t, []rules.GenerationRule{{Threshold1: 5, Threshold2: 2, RepeatCount: 1}}, config.Rules)
}

func TestParseConfigFileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cave.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"width": 11, "height": 7, "seed": 1, "count": 2}`), 0o600))

	config, err := parseConfig("cavegen", []string{"-config", path, "-seed", "8"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 11, config.Width)
	assert.Equal(t, 7, config.Height)
	assert.Equal(t, 2, config.Count)
	assert.Equal(t, int64(8), config.Seed, "flags override the file")
}

func TestParseConfigErrors(t *testing.T) {
	_, err := parseConfig("cavegen", []string{"-h"}, io.Discard)
	assert.True(t, errors.Is(err, flag.ErrHelp))

	_, err = parseConfig("cavegen", []string{"-nope"}, io.Discard)
	assert.True(t, errors.Is(err, utils.ErrUsage))

	_, err = parseConfig("cavegen", []string{"2", "10", "45", "5", "2", "1"}, io.Discard)
	assert.True(t, errors.Is(err, model.ErrInvalidDimension))

	_, err = parseConfig("cavegen", []string{"-config", filepath.Join(t.TempDir(), "missing.json")}, io.Discard)
	require.Error(t, err)
}

func TestRunRendersMaps(t *testing.T) {
	config := utils.DefaultConfig()
	config.Width, config.Height = 5, 5
	config.FillPercent = 100
	config.Rules = []rules.GenerationRule{{Threshold1: 0, Threshold2: 100, RepeatCount: 1}}
	config.Seed = 42
	config.Count = 2
	config.ShowStats = true

	var stdout, stderr strings.Builder
	require.NoError(t, run(config, &stdout, &stderr))

	solid := strings.Repeat("#####\n", 5)
	assert.Equal(t, solid+"\n"+solid, stdout.String())
	assert.Contains(t, stderr.String(), "seed: 42")
	assert.Contains(t, stderr.String(), "W[0](p) = rand[0,100) < 100")
	assert.Contains(t, stderr.String(), "Map 2 | Transitions: 1 | Walls: 25")
}

func TestRunDeterministic(t *testing.T) {
	config := utils.DefaultConfig()
	config.Seed = 2018
	config.Quiet = true

	var first, second strings.Builder
	require.NoError(t, run(config, &first, io.Discard))

	config.UseParallel = true
	config.UseMemoryPool = false
	require.NoError(t, run(config, &second, io.Discard))

	assert.Equal(t, first.String(), second.String())
	assert.Len(t, strings.Split(strings.TrimSuffix(first.String(), "\n"), "\n"), config.Height)
}
