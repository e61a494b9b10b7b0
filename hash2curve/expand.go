// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package hash2curve provides hash-to-curve compatible hashing over arbitrary input.
package hash2curve

import (
	"crypto"
	"errors"
)

const (
	dstMaxLength  = 255
	dstLongPrefix = "H2C-OVERSIZE-DST-"

	minLength            = 0
	recommendedMinLength = 16
)

var (
	errZeroLenDST     = errors.New("zero-length DST")
	errLengthTooLarge = errors.New("requested length is too large for the given hash function")
)

func checkDST(dst []byte) {
	if len(dst) == minLength {
		panic(errZeroLenDST)
	}
}

// longDST replaces a DST longer than dstMaxLength bytes by its hash (id.Size()
// bytes), per RFC 9380 §5.3.3.
func longDST(id crypto.Hash, dst []byte) []byte {
	if len(dst) <= dstMaxLength {
		return dst
	}

	h := id.New()
	h.Write([]byte(dstLongPrefix))
	h.Write(dst)

	return h.Sum(nil)
}

// i2osp encodes value as a big-endian byte string of the given length.
func i2osp(value, length int) []byte {
	out := make([]byte, length)

	v := uint64(value)
	for i := length - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}

	return out
}

// ExpandXMD expands the input and dst using the given fixed length hash function.
func ExpandXMD(id crypto.Hash, input, dst []byte, length int) []byte {
	checkDST(dst)
	return expandXMD(id, input, dst, length)
}

// expandXMD implements expand_message_xmd from RFC 9380 §5.4.1.
func expandXMD(id crypto.Hash, input, dst []byte, length int) []byte {
	hBytes := id.Size()
	blockSize := id.New().BlockSize()

	ell := (length + hBytes - 1) / hBytes
	if ell > 255 {
		panic(errLengthTooLarge)
	}

	dst = longDST(id, dst)
	dstPrime := append(append([]byte{}, dst...), byte(len(dst)))

	zPad := make([]byte, blockSize)
	lengthBytes := i2osp(length, 2)

	h := id.New()
	h.Write(zPad)
	h.Write(input)
	h.Write(lengthBytes)
	h.Write([]byte{0})
	h.Write(dstPrime)
	b0 := h.Sum(nil)

	h = id.New()
	h.Write(b0)
	h.Write([]byte{1})
	h.Write(dstPrime)
	bi := h.Sum(nil)

	uniform := make([]byte, 0, ell*hBytes)
	uniform = append(uniform, bi...)

	for i := 2; i <= ell; i++ {
		strxor := make([]byte, hBytes)
		for j := range strxor {
			strxor[j] = b0[j] ^ bi[j]
		}

		h = id.New()
		h.Write(strxor)
		h.Write([]byte{byte(i)})
		h.Write(dstPrime)
		bi = h.Sum(nil)

		uniform = append(uniform, bi...)
	}

	return uniform[:length]
}
