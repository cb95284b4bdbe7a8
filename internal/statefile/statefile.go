// Wayfinder - Real-Time Place Ranking and Personalization Engine
// Copyright 2026 Thomas Petersen (thomaspetersen1)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thomaspetersen1/wayfinder

// Package statefile provides flat-file JSON persistence for the engine's
// mutable state tables (bandit arms, user profiles).
//
// The persistence contract is deliberately simple: state is loaded once at
// startup and the full table is rewritten after every mutation. Writes go
// through a temp file followed by an atomic rename so a crash mid-write never
// leaves a torn file behind. A missing or unreadable file is not an error
// condition for callers that adopt the fresh-start policy; they check for
// os.ErrNotExist and continue with an empty table.
package statefile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

// File persists a single JSON document at a fixed path.
type File struct {
	path string
}

// New creates a File for the given path. The parent directory is created on
// first Save, not here, so constructing a File never touches the filesystem.
func New(path string) *File {
	return &File{path: path}
}

// Path returns the backing file path.
func (f *File) Path() string {
	return f.path
}

// Load reads and unmarshals the document into target.
// Returns an error wrapping fs.ErrNotExist when no file exists yet.
func (f *File) Load(target any) error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("state file %s: %w", f.path, fs.ErrNotExist)
		}
		return fmt.Errorf("read state file %s: %w", f.path, err)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode state file %s: %w", f.path, err)
	}

	return nil
}

// IsNotExist reports whether the Load error indicates a missing file,
// which callers treat as a fresh start rather than a failure.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// Save marshals data and atomically replaces the document on disk.
func (f *File) Save(data any) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state file %s: %w", f.path, err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create state directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp state file: %w", err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace state file %s: %w", f.path, err)
	}

	return nil
}
