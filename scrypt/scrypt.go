// Copyright 2023 The memhard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scrypt implements the scrypt key derivation function as defined in
// Colin Percival's paper "Stronger Key Derivation via Sequential Memory-Hard
// Functions" and standardized in RFC 7914.
//
// scrypt forces every candidate password evaluation to allocate and randomly
// access 128*N*r bytes of memory per lane, which makes large-scale brute
// force on memory-constrained hardware (GPUs, ASICs) uneconomical. The cost
// is tunable through the three work factors N, r and p, and bounded up front
// by a caller-supplied memory ceiling: invalid or oversized parameters are
// rejected before anything is allocated.
package scrypt

import (
	"crypto/sha256"
	"encoding/binary"
	"runtime"
	"sync"

	"golang.org/x/crypto/pbkdf2"

	"github.com/keymill/memhard/salsa20/salsa"
)

// blockCopy copies n bytes from src into dst.
func blockCopy(dst, src []byte, n int) {
	copy(dst, src[:n])
}

// blockXOR XORs bytes from dst with n bytes from src.
func blockXOR(dst, src []byte, n int) {
	for i, v := range src[:n] {
		dst[i] ^= v
	}
}

// wipe zeroes a sensitive buffer before it is released.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// blockMix mixes the 2r 64-byte blocks of b through the Salsa20/8 core,
// using y as scratch. A rolling 64-byte value, seeded with the last block,
// is XORed with each input block and mixed; the mixed blocks then land back
// in b even-indexed first, odd-indexed second (the interleave required by
// RFC 7914, section 4).
func blockMix(b, y []byte, r int) {
	var x [64]byte

	blockCopy(x[:], b[(2*r-1)*64:], 64)

	for i := 0; i < 2*r*64; i += 64 {
		blockXOR(x[:], b[i:], 64)
		salsa.Core208(&x, &x)
		blockCopy(y[i:], x[:], 64)
	}

	for i := 0; i < r; i++ {
		blockCopy(b[i*64:], y[i*2*64:], 64)
	}

	for i := 0; i < r; i++ {
		blockCopy(b[(i+r)*64:], y[(i*2+1)*64:], 64)
	}
}

// integerify interprets the last 64-byte block of b as a little-endian
// 64-bit integer.
func integerify(b []byte, r int) uint64 {
	return binary.LittleEndian.Uint64(b[(2*r-1)*64:])
}

// smix is the ROMix stage operating on one 128*r-byte lane b. It first fills
// the N-slot arena v with the chain of blockMix states (the sequential,
// non-parallelizable cost), then performs N data-dependent lookups into v,
// re-mixing each time. v and xy (256*r bytes of scratch) are supplied by the
// caller; smix never resizes them.
func smix(b []byte, r, N int, v, xy []byte) {
	x := xy
	y := xy[128*r:]

	blockCopy(x, b, 128*r)

	for i := 0; i < N; i++ {
		blockCopy(v[i*128*r:], x, 128*r)
		blockMix(x, y, r)
	}

	for i := 0; i < N; i++ {
		j := int(integerify(x, r) & uint64(N-1))
		blockXOR(x, v[j*128*r:], 128*r)
		blockMix(x, y, r)
	}

	blockCopy(b, x, 128*r)
}

// Key derives a key from the password, salt and cost parameters, returning
// a byte slice of length keyLen that can be used as cryptographic key. The
// memory ceiling is DefaultMaxMem; use KeyMaxMem to set a different one.
//
// N is a CPU/memory cost parameter, which must be a power of two greater
// than 1. r and p must satisfy r * p < 2^30. If the parameters do not
// satisfy the limits, the function returns a nil byte slice and one of the
// typed errors of this package.
//
// For example, you can get a derived key for e.g. AES-256 (which needs a
// 32-byte key) by doing:
//
//	dk, err := scrypt.Key([]byte("some password"), salt, 32768, 8, 1, 32)
//
// The recommended parameters for interactive logins as of 2017 are N=32768,
// r=8 and p=1. They should be increased as memory latency and CPU
// parallelism increase. Remember to get a good random salt.
func Key(password, salt []byte, N, r, p, keyLen int) ([]byte, error) {
	return KeyMaxMem(password, salt, N, r, p, keyLen, DefaultMaxMem)
}

// KeyMaxMem is Key with an explicit ceiling on working memory. Parameters
// whose 128*N*r*p-byte cost exceeds maxMem are rejected with
// ErrMemoryLimitExceeded before anything is allocated; a cost exactly equal
// to maxMem is accepted. maxMem == 0 selects DefaultMaxMem.
//
// On failure no partial key is ever returned, and every intermediate buffer
// is zeroed before the call returns, on the success path and the failure
// paths alike.
func KeyMaxMem(password, salt []byte, N, r, p, keyLen int, maxMem uint64) ([]byte, error) {
	if err := Validate(N, r, p, keyLen, maxMem); err != nil {
		return nil, err
	}
	return key(password, salt, N, r, p, keyLen, runtime.GOMAXPROCS(0)), nil
}

// captureBuffer is a test hook. When non-nil it receives every intermediate
// buffer key allocates, so tests can verify the buffers are zero once the
// derivation returns. It may be called from multiple goroutines.
var captureBuffer func([]byte)

// key runs the validated derivation with at most workers concurrent lanes.
// Lane outputs are concatenated by lane index, never by completion order, so
// the worker count cannot influence the derived key.
func key(password, salt []byte, N, r, p, keyLen, workers int) []byte {
	b := pbkdf2.Key(password, salt, 1, p*128*r, sha256.New)
	if captureBuffer != nil {
		captureBuffer(b)
	}
	defer wipe(b)

	if workers > p {
		workers = p
	}
	if workers <= 1 {
		v := make([]byte, 128*r*N)
		xy := make([]byte, 256*r)
		if captureBuffer != nil {
			captureBuffer(v)
			captureBuffer(xy)
		}
		for i := 0; i < p; i++ {
			smix(b[i*128*r:], r, N, v, xy)
		}
		wipe(v)
		wipe(xy)
	} else {
		lanes := make(chan []byte)
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				v := make([]byte, 128*r*N)
				xy := make([]byte, 256*r)
				if captureBuffer != nil {
					captureBuffer(v)
					captureBuffer(xy)
				}
				for lane := range lanes {
					smix(lane, r, N, v, xy)
				}
				wipe(v)
				wipe(xy)
			}()
		}
		for i := 0; i < p; i++ {
			lanes <- b[i*128*r : (i+1)*128*r]
		}
		close(lanes)
		wg.Wait()
	}

	return pbkdf2.Key(password, b, 1, keyLen, sha256.New)
}
