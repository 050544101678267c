// Copyright 2023 The memhard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package salsa provides low-level access to functions in the Salsa family.
package salsa

import "encoding/binary"

// Core208 applies the Salsa20/8 core function to the 64-byte array in and
// writes the result to out. In and out may be the same array.
//
// Salsa20/8 is the 8-round variant of the Salsa20 core: four double-rounds
// over a 4x4 matrix of little-endian 32-bit words, followed by the word-wise
// addition of the input (the feed-forward that makes the function
// non-invertible).
func Core208(out *[64]byte, in *[64]byte) {
	var w [16]uint32
	for i := range w {
		w[i] = binary.LittleEndian.Uint32(in[i*4:])
	}

	x0, x1, x2, x3 := w[0], w[1], w[2], w[3]
	x4, x5, x6, x7 := w[4], w[5], w[6], w[7]
	x8, x9, x10, x11 := w[8], w[9], w[10], w[11]
	x12, x13, x14, x15 := w[12], w[13], w[14], w[15]

	for i := 0; i < 8; i += 2 {
		x4 ^= (x0+x12)<<7 | (x0+x12)>>(32-7)
		x8 ^= (x4+x0)<<9 | (x4+x0)>>(32-9)
		x12 ^= (x8+x4)<<13 | (x8+x4)>>(32-13)
		x0 ^= (x12+x8)<<18 | (x12+x8)>>(32-18)

		x9 ^= (x5+x1)<<7 | (x5+x1)>>(32-7)
		x13 ^= (x9+x5)<<9 | (x9+x5)>>(32-9)
		x1 ^= (x13+x9)<<13 | (x13+x9)>>(32-13)
		x5 ^= (x1+x13)<<18 | (x1+x13)>>(32-18)

		x14 ^= (x10+x6)<<7 | (x10+x6)>>(32-7)
		x2 ^= (x14+x10)<<9 | (x14+x10)>>(32-9)
		x6 ^= (x2+x14)<<13 | (x2+x14)>>(32-13)
		x10 ^= (x6+x2)<<18 | (x6+x2)>>(32-18)

		x3 ^= (x15+x11)<<7 | (x15+x11)>>(32-7)
		x7 ^= (x3+x15)<<9 | (x3+x15)>>(32-9)
		x11 ^= (x7+x3)<<13 | (x7+x3)>>(32-13)
		x15 ^= (x11+x7)<<18 | (x11+x7)>>(32-18)

		x1 ^= (x0+x3)<<7 | (x0+x3)>>(32-7)
		x2 ^= (x1+x0)<<9 | (x1+x0)>>(32-9)
		x3 ^= (x2+x1)<<13 | (x2+x1)>>(32-13)
		x0 ^= (x3+x2)<<18 | (x3+x2)>>(32-18)

		x6 ^= (x5+x4)<<7 | (x5+x4)>>(32-7)
		x7 ^= (x6+x5)<<9 | (x6+x5)>>(32-9)
		x4 ^= (x7+x6)<<13 | (x7+x6)>>(32-13)
		x5 ^= (x4+x7)<<18 | (x4+x7)>>(32-18)

		x11 ^= (x10+x9)<<7 | (x10+x9)>>(32-7)
		x8 ^= (x11+x10)<<9 | (x11+x10)>>(32-9)
		x9 ^= (x8+x11)<<13 | (x8+x11)>>(32-13)
		x10 ^= (x9+x8)<<18 | (x9+x8)>>(32-18)

		x12 ^= (x15+x14)<<7 | (x15+x14)>>(32-7)
		x13 ^= (x12+x15)<<9 | (x12+x15)>>(32-9)
		x14 ^= (x13+x12)<<13 | (x13+x12)>>(32-13)
		x15 ^= (x14+x13)<<18 | (x14+x13)>>(32-18)
	}

	w[0] += x0
	w[1] += x1
	w[2] += x2
	w[3] += x3
	w[4] += x4
	w[5] += x5
	w[6] += x6
	w[7] += x7
	w[8] += x8
	w[9] += x9
	w[10] += x10
	w[11] += x11
	w[12] += x12
	w[13] += x13
	w[14] += x14
	w[15] += x15

	for i, v := range w {
		binary.LittleEndian.PutUint32(out[i*4:], v)
	}
}
