package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest describes the checkpoint stream layout: one tagged section per
// named space, plus the closing tag. Loaded from ember.toml, searched
// upward from the working directory.
type Manifest struct {
	Sections []Section `toml:"section"`
	EndTag   int       `toml:"end_tag"`
}

// Section names one tagged stream section.
type Section struct {
	Name string `toml:"name"`
	Tag  int    `toml:"tag"`
}

// defaultManifest matches the demo heap.
func defaultManifest() *Manifest {
	return &Manifest{
		Sections: []Section{
			{Name: "eden", Tag: 1},
			{Name: "tenured", Tag: 2},
		},
		EndTag: 255,
	}
}

func findEmberToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "ember.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadManifest returns the manifest from ember.toml, or the default layout
// when no manifest exists.
func loadManifest(startDir string) (*Manifest, error) {
	path, ok, err := findEmberToml(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return defaultManifest(), nil
	}
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	if len(m.Sections) == 0 {
		return nil, fmt.Errorf("%s: no sections defined", path)
	}
	if m.EndTag == 0 {
		m.EndTag = 255
	}
	return &m, nil
}
