package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgmax(t *testing.T) {
	assert.Equal(t, 2, Argmax([]float64{1, 3, 7, 2}))
	assert.Equal(t, 0, Argmax([]float64{5}))
}

func TestIntAbs(t *testing.T) {
	assert.Equal(t, 3, IntAbs(-3))
	assert.Equal(t, 3, IntAbs(3))
	assert.Equal(t, 0, IntAbs(0))
}

func TestIntersect(t *testing.T) {
	got := Intersect([]string{"pc", "kpc", "Mpc"}, []string{"G", "Mpc"})
	require.NotNil(t, got)
	assert.Equal(t, "Mpc", *got)
	assert.Nil(t, Intersect([]string{"pc"}, []string{"G"}))
}

func TestReadFloatPairs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "points.txt")
	require.NoError(t, os.WriteFile(path, []byte("1e9 4.2e-11\n\n2.4e17 9.9e-12\n"), 0644))

	pairs, err := ReadFloatPairs(path)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, 1e9, pairs[0][0])
	assert.Equal(t, 9.9e-12, pairs[1][1])

	require.NoError(t, os.WriteFile(path, []byte("1 2 3\n"), 0644))
	_, err = ReadFloatPairs(path)
	require.Error(t, err)
}
