// Copyright 2023 The memhard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Profile is a named set of work factors.
type Profile struct {
	N           int    `yaml:"n"`
	R           int    `yaml:"r"`
	P           int    `yaml:"p"`
	MaxMemBytes uint64 `yaml:"maxmem_bytes,omitempty"`
}

// Profiles maps profile names to work factor sets.
type Profiles map[string]Profile

func loadProfiles(path string) (Profiles, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profiles: %w", err)
	}

	var profiles Profiles
	if err := yaml.Unmarshal(raw, &profiles); err != nil {
		return nil, fmt.Errorf("parsing profiles %s: %w", path, err)
	}
	return profiles, nil
}

func loadProfile(path, name string) (Profile, error) {
	if path == "" {
		return Profile{}, fmt.Errorf("-profile %s given without -profiles", name)
	}

	profiles, err := loadProfiles(path)
	if err != nil {
		return Profile{}, err
	}

	profile, ok := profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("no profile %q in %s", name, path)
	}
	return profile, nil
}
