//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/chordgen/cmd"
	"github.com/jsphweid/chordgen/sink"
	"github.com/stretchr/testify/assert"
)

func readTree(t *testing.T, root string) map[string][]byte {
	res := map[string][]byte{}
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, _ := filepath.Rel(root, p)
		data, err := os.ReadFile(p)
		res[filepath.ToSlash(rel)] = data
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestGenerateTwiceIsByteIdentical(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	assert := assert.New(t)
	for _, root := range []string{first, second} {
		_, err := cmd.Generate(sink.NewDir(root), nil)
		assert.NoError(err)
	}
	assert.Equal(readTree(t, first), readTree(t, second))
}

func TestServedPresetMatchesGeneratedFile(t *testing.T) {
	root := t.TempDir()
	_, err := cmd.Generate(sink.NewDir(root), nil)
	assert := assert.New(t)
	assert.NoError(err)

	srv := httptest.NewServer(cmd.NewRouter())
	defer srv.Close()

	for _, file := range []string{"MAJ7/MAJ7_INV3.m8i", "DIM/DIM_HS.m8i", "POW_AUG/POW_AUG.m8i"} {
		resp, err := http.Get(srv.URL + "/chords/" + file)
		assert.NoError(err)
		served, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		assert.NoError(err)

		onDisk, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(file)))
		assert.NoError(err)
		assert.True(bytes.Equal(onDisk, served), file)
	}
}
