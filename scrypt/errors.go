// Copyright 2023 The memhard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scrypt

import "errors"

var (
	// ErrInvalidWorkFactor is returned when N is not a power of two greater
	// than 1, or when r or p is less than 1.
	ErrInvalidWorkFactor = errors.New("scrypt: N must be > 1 and a power of 2, and r and p must be >= 1")

	// ErrParameterOverflow is returned when r*p reaches 2^30, the point at
	// which the internal 32-bit block index arithmetic would overflow.
	ErrParameterOverflow = errors.New("scrypt: r*p must be < 2^30")

	// ErrMemoryLimitExceeded is returned when the 128*N*r*p bytes of working
	// memory the parameters require exceed the caller's ceiling.
	ErrMemoryLimitExceeded = errors.New("scrypt: required memory exceeds the configured maximum")

	// ErrResourceExhausted is returned when the parameters pass every
	// semantic check but the working buffers cannot be addressed by the
	// platform's int type, so they can never be allocated.
	ErrResourceExhausted = errors.New("scrypt: parameters exceed addressable memory")

	// ErrInvalidOutputLength is returned when the requested key length is
	// not positive.
	ErrInvalidOutputLength = errors.New("scrypt: key length must be > 0")
)
