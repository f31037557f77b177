//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveFileFindsRelativeToWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.toml")
	assert.NoError(t, os.WriteFile(file, []byte("[log]\n"), 0o644))

	wd, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()

	resolved, err := ResolveFile("config.toml")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Clean(file), resolved)
}

func TestResolveFileMissingReturnsError(t *testing.T) {
	_, err := ResolveFile("/no/such/path/definitely-missing.toml")
	assert.Error(t, err)
}

func TestResolveFolderFindsExisting(t *testing.T) {
	dir := t.TempDir()
	resolved, err := ResolveFolder(dir)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Clean(dir), resolved)
}

func TestResolveFolderMissingReturnsError(t *testing.T) {
	_, err := ResolveFolder("/no/such/folder/definitely-missing")
	assert.Error(t, err)
}
