//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package util

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const debug = false

// ResolveFile resolves a path to a file, trying in order: the path as
// given if absolute, relative to the working directory, relative to
// the executable, then relative to the user home directory. Returns an
// error if no candidate exists.
func ResolveFile(file string) (string, error) {
	fileNotFoundErr := errors.New(fmt.Sprintf("file could not be found: %s", file))

	file = filepath.Clean(file)
	if debug {
		log.Println("searching for file", file)
	}

	if filepath.IsAbs(file) {
		if fileExists(file) {
			return file, nil
		}
		return file, fileNotFoundErr
	}

	if dir, err := os.Getwd(); err == nil {
		if cand := filepath.Join(dir, file); fileExists(cand) {
			return filepath.Clean(cand), nil
		}
	}
	if dir, err := os.Executable(); err == nil {
		if cand := filepath.Join(filepath.Dir(dir), file); fileExists(cand) {
			return filepath.Clean(cand), nil
		}
	}
	if dir, err := os.UserHomeDir(); err == nil {
		if cand := filepath.Join(dir, file); fileExists(cand) {
			return filepath.Clean(cand), nil
		}
	}

	return file, fileNotFoundErr
}

// ResolveFolder resolves a path to an existing folder using the same
// search order as ResolveFile. It never creates the folder.
func ResolveFolder(folder string) (string, error) {
	folderNotFoundErr := errors.New(fmt.Sprintf("folder could not be found: %s", folder))

	folder = filepath.Clean(folder)

	if filepath.IsAbs(folder) {
		if folderExists(folder) {
			return folder, nil
		}
		return folder, folderNotFoundErr
	}

	if dir, err := os.Getwd(); err == nil {
		if cand := filepath.Join(dir, folder); folderExists(cand) {
			return filepath.Clean(cand), nil
		}
	}
	if dir, err := os.Executable(); err == nil {
		if cand := filepath.Join(filepath.Dir(dir), folder); folderExists(cand) {
			return filepath.Clean(cand), nil
		}
	}
	if dir, err := os.UserHomeDir(); err == nil {
		if cand := filepath.Join(dir, folder); folderExists(cand) {
			return filepath.Clean(cand), nil
		}
	}

	return folder, folderNotFoundErr
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil || info == nil {
		return false
	}
	return info.Mode().IsRegular()
}

func folderExists(foldername string) bool {
	info, err := os.Stat(foldername)
	if err != nil || info == nil {
		return false
	}
	return info.Mode().IsDir()
}
