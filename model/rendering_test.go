package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestTextRendererRowMajor(t *testing.T) {
	g := floorInterior(6, 3)
	g.Set(4, 1, Wall)

	var sb strings.Builder
	require.NoError(t, NewTextRenderer().Render(&sb, g))
	assert.Equal(t, "######\n#...##\n######\n", sb.String())
}

func TestTextRendererCustomRunes(t *testing.T) {
	g := floorInterior(3, 3)
	var sb strings.Builder
	require.NoError(t, (&TextRenderer{Wall: '█', Floor: ' '}).Render(&sb, g))
	assert.Equal(t, "███\n█ █\n███\n", sb.String())
}

func TestTextRendererWriteError(t *testing.T) {
	err := NewTextRenderer().Render(failingWriter{}, NewGrid(3, 3))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[Render]")
}
