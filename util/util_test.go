package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetKeysSorted(t *testing.T) {
	m := map[string]int{"MIN": 1, "AUG": 2, "MAJ": 3}
	assert.Equal(t, []string{"AUG", "MAJ", "MIN"}, GetKeys(m))
}

func TestSum(t *testing.T) {
	assert.Equal(t, uint64(6), Sum([]uint8{1, 2, 3}))
	assert.Equal(t, uint64(0), Sum([]int64{}))
}

func TestRecreateDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	assert := assert.New(t)
	assert.NoError(os.MkdirAll(filepath.Join(dir, "MAJ"), 0755))
	assert.NoError(os.WriteFile(filepath.Join(dir, "MAJ", "MAJ.m8i"), []byte{1}, 0644))

	assert.NoError(RecreateDir(dir))
	entries, err := os.ReadDir(dir)
	assert.NoError(err)
	assert.Empty(entries)
}
