// Copyright 2023 The memhard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scrypt_test

import (
	"crypto/rand"
	"fmt"
	"io"
	"log"

	"github.com/keymill/memhard/scrypt"
)

func Example() {
	// DO NOT use this salt value; generate your own random salt. 16 bytes
	// is a good length.
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		log.Fatal(err)
	}

	dk, err := scrypt.Key([]byte("some password"), salt, 32768, 8, 1, 32)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(len(dk))
	// Output: 32
}
