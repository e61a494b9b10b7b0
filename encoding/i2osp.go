// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package encoding

import "errors"

const maxI2OSPLength = 4

var (
	errLengthNegative = errors.New("requested length is negative or zero")
	errLengthTooBig   = errors.New("requested length is too big")
	errInputNegative  = errors.New("input is negative")
	errInputLarge     = errors.New("input does not fit in the requested length")
)

// I2OSP Integer to Octet Stream Primitive, big-endian, on length bytes.
func I2OSP(in, length int) []byte {
	if length <= 0 {
		panic(errLengthNegative)
	}

	if length > maxI2OSPLength {
		panic(errLengthTooBig)
	}

	if in < 0 {
		panic(errInputNegative)
	}

	var buf [maxI2OSPLength]byte
	v := uint64(in)

	for i := length - 1; i >= 0; i-- {
		buf[i] = byte(v)
		v >>= 8
	}

	if v != 0 {
		panic(errInputLarge)
	}

	out := make([]byte, length)
	copy(out, buf[:length])

	return out
}

// OS2IP Octet Stream to Integer Primitive, big-endian.
func OS2IP(in []byte) int {
	v := 0
	for _, b := range in {
		v = v<<8 | int(b)
	}

	return v
}
