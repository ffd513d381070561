package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinMaxOf(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(-4, MinOf(3, -4, 12, 0))
	assert.Equal(12, MaxOf(3, -4, 12, 0))
	assert.Equal(7, MinOf(7))
	assert.Equal("a", MinOf("b", "a", "c"))
}

func TestCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	f, closeFn, err := CreateFile(path)
	require.NoError(t, err)
	_, err = f.WriteString("<svg/>")
	require.NoError(t, err)
	require.NoError(t, closeFn())

	dat, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(dat))
}

func TestCreateFileStdout(t *testing.T) {
	for _, path := range []string{"", "-"} {
		f, closeFn, err := CreateFile(path)
		assert.NoError(t, err)
		assert.Same(t, os.Stdout, f)
		assert.NoError(t, closeFn())
	}
}
