// Copyright 2023 The memhard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kdf exposes the scrypt derivation behind a named-parameter control
// surface, for callers that configure key derivation from strings (config
// files, CLI flags, protocol fields) rather than typed arguments.
//
// Recognized parameter names:
//
//	pass          password bytes (Ctrl takes them verbatim)
//	hexpass       password as a hex string
//	salt          salt bytes
//	hexsalt       salt as a hex string
//	n             CPU/memory cost, power of two > 1
//	r             block size multiplier
//	p             parallelization factor
//	maxmem_bytes  ceiling on working memory
//
// Ctrl and CtrlBytes are tri-state: nil on success, ErrUnsupportedParameter
// when the name is not part of the scrypt surface, and a descriptive error
// when the value cannot be applied.
package kdf

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	"github.com/keymill/memhard/scrypt"
)

// ErrUnsupportedParameter is returned by Ctrl and CtrlBytes when the named
// parameter is not recognized by the scrypt algorithm.
var ErrUnsupportedParameter = errors.New("kdf: parameter not supported by scrypt")

// Scrypt is a reusable scrypt configuration. The zero value has no defaults
// loaded; use New.
//
// A Scrypt retains copies of the password and salt until Reset wipes them.
// It is not safe for concurrent use.
type Scrypt struct {
	password []byte
	salt     []byte
	n        int
	r        int
	p        int
	maxMem   uint64
}

// New returns a configuration loaded with the default work factors and
// memory ceiling. Password and salt start empty.
func New() *Scrypt {
	return &Scrypt{
		n:      scrypt.DefaultN,
		r:      scrypt.DefaultR,
		p:      scrypt.DefaultP,
		maxMem: scrypt.DefaultMaxMem,
	}
}

// Ctrl applies a string-valued parameter. Integer parameters accept decimal,
// 0x-prefixed hex and 0-prefixed octal forms.
func (s *Scrypt) Ctrl(name, value string) error {
	switch name {
	case "pass":
		s.setPassword([]byte(value))
	case "hexpass":
		b, err := hex.DecodeString(value)
		if err != nil {
			return fmt.Errorf("kdf: invalid hexpass: %w", err)
		}
		s.setPassword(b)
	case "salt":
		s.setSalt([]byte(value))
	case "hexsalt":
		b, err := hex.DecodeString(value)
		if err != nil {
			return fmt.Errorf("kdf: invalid hexsalt: %w", err)
		}
		s.setSalt(b)
	case "n":
		v, err := parseWorkFactor(name, value)
		if err != nil {
			return err
		}
		s.n = v
	case "r":
		v, err := parseWorkFactor(name, value)
		if err != nil {
			return err
		}
		s.r = v
	case "p":
		v, err := parseWorkFactor(name, value)
		if err != nil {
			return err
		}
		s.p = v
	case "maxmem_bytes":
		v, err := strconv.ParseUint(value, 0, 64)
		if err != nil {
			return fmt.Errorf("kdf: invalid maxmem_bytes %q: %w", value, err)
		}
		s.maxMem = v
	default:
		return ErrUnsupportedParameter
	}
	return nil
}

// CtrlBytes applies a byte-valued parameter. Only pass and salt take raw
// bytes; the value is copied, the caller keeps ownership of v.
func (s *Scrypt) CtrlBytes(name string, v []byte) error {
	switch name {
	case "pass":
		s.setPassword(append([]byte(nil), v...))
	case "salt":
		s.setSalt(append([]byte(nil), v...))
	default:
		return ErrUnsupportedParameter
	}
	return nil
}

// Derive runs the scrypt derivation with the configured parameters and
// returns keyLen bytes. Parameter errors from the core are propagated
// verbatim, so callers can match the scrypt package sentinels with
// errors.Is.
func (s *Scrypt) Derive(keyLen int) ([]byte, error) {
	return scrypt.KeyMaxMem(s.password, s.salt, s.n, s.r, s.p, keyLen, s.maxMem)
}

// Reset wipes the retained password and salt and restores the defaults.
func (s *Scrypt) Reset() {
	wipe(s.password)
	wipe(s.salt)
	*s = *New()
}

func (s *Scrypt) setPassword(b []byte) {
	wipe(s.password)
	s.password = b
}

func (s *Scrypt) setSalt(b []byte) {
	wipe(s.salt)
	s.salt = b
}

func parseWorkFactor(name, value string) (int, error) {
	v, err := strconv.ParseUint(value, 0, strconv.IntSize-1)
	if err != nil {
		return 0, fmt.Errorf("kdf: invalid %s %q: %w", name, value, err)
	}
	return int(v), nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
