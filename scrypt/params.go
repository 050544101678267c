// Copyright 2023 The memhard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scrypt

import "math/bits"

// Default cost parameters. They match the documented reference
// configuration: N=2^20, r=8, p=1 with a 1025 MiB memory ceiling.
const (
	DefaultN = 1 << 20
	DefaultR = 8
	DefaultP = 1

	// DefaultMaxMem is the default ceiling on the 128*N*r*p bytes of
	// working memory a derivation may require: 1025 MiB, one MiB above the
	// 1 GiB needed by the default work factors.
	DefaultMaxMem uint64 = 1025 << 20
)

const maxInt = int(^uint(0) >> 1)

// mulCost multiplies the running memory cost by a factor, reporting overflow.
func mulCost(cost, factor uint64) (uint64, bool) {
	hi, lo := bits.Mul64(cost, factor)
	return lo, hi != 0
}

// MemoryCost returns the number of bytes of working memory that a derivation
// with the given work factors requires, 128*N*r*p. The second return value is
// false if the product overflows a uint64 (in which case no ceiling that fits
// in a uint64 could admit the parameters anyway).
func MemoryCost(N, r, p int) (uint64, bool) {
	if N < 0 || r < 0 || p < 0 {
		return 0, false
	}
	cost, of1 := mulCost(128, uint64(N))
	cost, of2 := mulCost(cost, uint64(r))
	cost, of3 := mulCost(cost, uint64(p))
	return cost, !of1 && !of2 && !of3
}

// Validate checks the scrypt parameters against the memory ceiling maxMem
// (0 means DefaultMaxMem) without allocating anything. It reports the first
// failure in the order: work factors, index overflow, memory ceiling, key
// length, addressability. Every check is evaluated with fixed-width,
// overflow-checked arithmetic regardless of how large the inputs are.
//
// A nil return guarantees that the working buffers of a subsequent
// derivation have representable sizes and fit under the ceiling.
func Validate(N, r, p, keyLen int, maxMem uint64) error {
	if maxMem == 0 {
		maxMem = DefaultMaxMem
	}

	badFactor := N <= 1 || N&(N-1) != 0 || r < 1 || p < 1

	// Clamp for the arithmetic below so negative values cannot wrap when
	// converted; badFactor already condemns them.
	uN, ur, up := clamp(N), clamp(r), clamp(p)

	rpHi, rp := bits.Mul64(ur, up)
	rpOverflow := rpHi != 0 || rp >= 1<<30

	cost, costOK := MemoryCost(N, r, p)
	memExceeded := !costOK || cost > maxMem

	// The slices backing V (128*r*N), the scratch buffer (256*r) and the
	// PBKDF2 expansion (p*128*r) must all have int-representable lengths.
	exhausted := ur > uint64(maxInt)/256 ||
		(up > 0 && ur > uint64(maxInt)/128/up) ||
		(ur > 0 && uN > uint64(maxInt)/128/ur)

	switch {
	case badFactor:
		return ErrInvalidWorkFactor
	case rpOverflow:
		return ErrParameterOverflow
	case memExceeded:
		return ErrMemoryLimitExceeded
	case keyLen <= 0:
		return ErrInvalidOutputLength
	case exhausted:
		return ErrResourceExhausted
	}
	return nil
}

func clamp(v int) uint64 {
	if v < 0 {
		return 0
	}
	return uint64(v)
}
