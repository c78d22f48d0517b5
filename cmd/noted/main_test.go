package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noted/internal/store"
)

func TestDescribeOpenError_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noted.db")
	garbage := make([]byte, 4096)
	for i := range garbage {
		garbage[i] = byte(i%251) + 1
	}
	require.NoError(t, os.WriteFile(path, garbage, 0o644))

	_, err := store.Open(path)
	require.Error(t, err)

	described := describeOpenError(err)
	assert.Contains(t, described.Error(), "move the file aside")
	assert.ErrorIs(t, described, store.ErrCorrupt)
}

func TestDescribeOpenError_CreateDir(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(parent, nil, 0o644))

	_, err := store.Open(filepath.Join(parent, "noted.db"))
	require.Error(t, err)

	described := describeOpenError(err)
	assert.Contains(t, described.Error(), "storage.path")
	assert.ErrorIs(t, described, store.ErrCreateDir)
}

func TestDescribeOpenError_PassesOtherErrors(t *testing.T) {
	err := errors.New("other")
	assert.Same(t, err, describeOpenError(err))
}
