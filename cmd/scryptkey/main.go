// Copyright 2023 The memhard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command scryptkey derives a key from a password with scrypt and prints it
// as lowercase hex. The password is read from the SCRYPTKEY_PASSWORD
// environment variable or, failing that, from stdin.
//
// Work factors come from flags or from a named profile in a YAML file:
//
//	interactive:
//	  n: 32768
//	  r: 8
//	  p: 1
//	sensitive:
//	  n: 1048576
//	  r: 8
//	  p: 1
//	  maxmem_bytes: 2147483648
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	stdLog "log"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/keymill/memhard/kdf"
	"github.com/keymill/memhard/scrypt"
)

var log = getLogger()

var (
	saltHex      = flag.String("salt", "", "Salt as a hex string")
	costN        = flag.Int("n", scrypt.DefaultN, "CPU/memory cost, power of two > 1")
	blockSizeR   = flag.Int("r", scrypt.DefaultR, "Block size multiplier")
	parallelismP = flag.Int("p", scrypt.DefaultP, "Parallelization factor")
	maxMem       = flag.Uint64("maxmem", scrypt.DefaultMaxMem, "Ceiling on working memory in bytes")
	keyLen       = flag.Int("keylen", 32, "Derived key length in bytes")
	profilesPath = flag.String("profiles", "", "Path to a YAML file of work factor profiles")
	profileName  = flag.String("profile", "", "Profile to select from the profiles file")
)

const passwordEnv = "SCRYPTKEY_PASSWORD"

func main() {
	flag.Parse()

	key, err := run()
	if err != nil {
		log.Fatalw("Key derivation failed", "error", err)
	}

	fmt.Println(hex.EncodeToString(key))
}

func run() ([]byte, error) {
	password, err := readPassword(os.Stdin)
	if err != nil {
		return nil, err
	}

	s := kdf.New()
	defer s.Reset()

	if err := s.CtrlBytes("pass", password); err != nil {
		return nil, err
	}
	wipe(password)
	if err := s.Ctrl("hexsalt", *saltHex); err != nil {
		return nil, err
	}

	n, r, p, mm := *costN, *blockSizeR, *parallelismP, *maxMem
	if *profileName != "" {
		profile, err := loadProfile(*profilesPath, *profileName)
		if err != nil {
			return nil, err
		}
		n, r, p = profile.N, profile.R, profile.P
		if profile.MaxMemBytes != 0 {
			mm = profile.MaxMemBytes
		}
		log.Debugw("Loaded work factor profile",
			"profile", *profileName, "n", n, "r", r, "p", p, "maxmem", mm)
	}

	params := []struct {
		name  string
		value string
	}{
		{"n", fmt.Sprint(n)},
		{"r", fmt.Sprint(r)},
		{"p", fmt.Sprint(p)},
		{"maxmem_bytes", fmt.Sprint(mm)},
	}
	for _, param := range params {
		if err := s.Ctrl(param.name, param.value); err != nil {
			return nil, err
		}
	}

	return s.Derive(*keyLen)
}

// readPassword takes the password from the environment when set, otherwise
// it reads fallback (stdin) to EOF. A single trailing newline is stripped so
// that `echo secret | scryptkey` does what it looks like.
func readPassword(fallback io.Reader) ([]byte, error) {
	if env, ok := os.LookupEnv(passwordEnv); ok {
		return []byte(env), nil
	}

	raw, err := io.ReadAll(fallback)
	if err != nil {
		return nil, fmt.Errorf("reading password from stdin: %w", err)
	}
	password := strings.TrimSuffix(string(raw), "\n")
	password = strings.TrimSuffix(password, "\r")
	wipe(raw)
	return []byte(password), nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func getLogger() *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)

	logger, err := cfg.Build()
	if err != nil {
		stdLog.Fatalf("Failed to create logger. Error: %s", err)
		return nil
	}

	return logger.Sugar()
}
