// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ristretto

import (
	"encoding/binary"
	"math/bits"
)

// scalar255 is an integer modulo the group order
// l = 2^252 + 27742317777372353535851937790883648493, held in four 64-bit
// limbs, little-endian, in ordinary (non-Montgomery) form. Montgomery form
// is used only internally, inside multiply, via scalarMontMul.
type scalar255 struct {
	s0, s1, s2, s3 uint64
}

var scalarZero = scalar255{0, 0, 0, 0}
var scalarOne = scalar255{1, 0, 0, 0}

// scalarL holds the limbs of l. scalarNPrime is -l^-1 mod 2^64, and scalarR2
// is R^2 mod l where R = 2^256; both are the Montgomery constants for l.
// Values are taken from the reference implementation's scalar.c and were
// independently recomputed and cross-checked before being transcribed here.
var (
	scalarL      = [4]uint64{0x5812631a5cf5d3ed, 0x14def9dea2f79cd6, 0x0000000000000000, 0x1000000000000000}
	scalarNPrime = uint64(0xd2b51da312547e1b)
	scalarR2     = scalar255{0xa40611e3449c0f01, 0xd00e1ba768859347, 0xceec73d217f5be65, 0x0399411b7c309a3d}
)

func (s *scalar255) limbs() [4]uint64 { return [4]uint64{s.s0, s.s1, s.s2, s.s3} }

func scalarFromLimbs(l [4]uint64) scalar255 { return scalar255{l[0], l[1], l[2], l[3]} }

func scalarLess(a, b [4]uint64) bool {
	for i := 3; i >= 0; i-- {
		if a[i] < b[i] {
			return true
		}

		if a[i] > b[i] {
			return false
		}
	}

	return false
}

func scalarSub4(a, b [4]uint64) [4]uint64 {
	var out [4]uint64

	var borrow uint64
	out[0], borrow = bits.Sub64(a[0], b[0], 0)
	out[1], borrow = bits.Sub64(a[1], b[1], borrow)
	out[2], borrow = bits.Sub64(a[2], b[2], borrow)
	out[3], _ = bits.Sub64(a[3], b[3], borrow)

	return out
}

func scalarAdd4(a, b [4]uint64) (out [4]uint64, carry uint64) {
	out[0], carry = bits.Add64(a[0], b[0], 0)
	out[1], carry = bits.Add64(a[1], b[1], carry)
	out[2], carry = bits.Add64(a[2], b[2], carry)
	out[3], carry = bits.Add64(a[3], b[3], carry)

	return out, carry
}

// mulAddAdd computes t + a*b + c as a 128-bit value (hi, lo). The sum never
// exceeds 2^128-1 for 64-bit t, a, b, c, so no carry is lost.
func mulAddAdd(c, t, a, b uint64) (hi, lo uint64) {
	h, l := bits.Mul64(a, b)

	var c0, c1 uint64
	l, c0 = bits.Add64(l, t, 0)
	l, c1 = bits.Add64(l, c, 0)
	h, _ = bits.Add64(h, 0, c0)
	h, _ = bits.Add64(h, 0, c1)

	return h, l
}

// scalarMontMul computes a*b*R^-1 mod l via CIOS Montgomery multiplication
// (Handbook of Applied Cryptography, Algorithm 14.36). It is used both to
// enter/exit Montgomery form and, composed with scalarR2, as plain modular
// multiplication: mul(a,b) = montMul(montMul(a,b), R^2).
func scalarMontMul(a, b *scalar255) scalar255 {
	al := a.limbs()
	bl := b.limbs()
	m := scalarL

	var t [5]uint64

	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; j < 4; j++ {
			hi, lo := mulAddAdd(carry, t[j], al[j], bl[i])
			t[j] = lo
			carry = hi
		}

		sum, c := bits.Add64(t[4], carry, 0)
		t[4] = sum
		extra := c

		mi := t[0] * scalarNPrime

		var carry2 uint64
		for j := 0; j < 4; j++ {
			hi, lo := mulAddAdd(carry2, t[j], mi, m[j])
			t[j] = lo
			carry2 = hi
		}

		sum2, c2 := bits.Add64(t[4], carry2, 0)
		t[4] = sum2
		extra += c2

		t[0], t[1], t[2], t[3], t[4] = t[1], t[2], t[3], t[4], extra
	}

	result := [4]uint64{t[0], t[1], t[2], t[3]}
	if t[4] != 0 || !scalarLess(result, m) {
		result = scalarSub4(result, m)
	}

	return scalarFromLimbs(result)
}

func (s *scalar255) zero() *scalar255 {
	*s = scalarZero
	return s
}

func (s *scalar255) one() *scalar255 {
	*s = scalarOne
	return s
}

func (s *scalar255) set(a *scalar255) *scalar255 {
	*s = *a
	return s
}

// Add sets s = a+b mod l, and returns s.
func (s *scalar255) Add(a, b *scalar255) *scalar255 {
	sum, carry := scalarAdd4(a.limbs(), b.limbs())
	if carry != 0 || !scalarLess(sum, scalarL) {
		sum = scalarSub4(sum, scalarL)
	}

	*s = scalarFromLimbs(sum)

	return s
}

// Subtract sets s = a-b mod l, and returns s.
func (s *scalar255) Subtract(a, b *scalar255) *scalar255 {
	al, bl := a.limbs(), b.limbs()
	if scalarLess(al, bl) {
		al, _ = scalarAdd4(al, scalarL)
	}

	*s = scalarFromLimbs(scalarSub4(al, bl))

	return s
}

// Negate sets s = -a mod l, and returns s.
func (s *scalar255) Negate(a *scalar255) *scalar255 {
	return s.Subtract(&scalarZero, a)
}

// Multiply sets s = a*b mod l, and returns s.
func (s *scalar255) Multiply(a, b *scalar255) *scalar255 {
	t := scalarMontMul(a, b)
	*s = scalarMontMul(&t, &scalarR2)

	return s
}

// Halve sets s = a/2 mod l, and returns s.
func (s *scalar255) Halve(a *scalar255) *scalar255 {
	al := a.limbs()

	if al[0]&1 == 1 {
		al, _ = scalarAdd4(al, scalarL)
	}

	var out [4]uint64
	for i := 0; i < 4; i++ {
		out[i] = al[i] >> 1
		if i < 3 {
			out[i] |= (al[i+1] & 1) << 63
		}
	}

	*s = scalarFromLimbs(out)

	return s
}

// Pow sets s = a^e mod l (e a public or secret exponent, via plain
// square-and-multiply), and returns s.
func (s *scalar255) Pow(a, e *scalar255) *scalar255 {
	result := scalarOne
	base := *a

	el := e.limbs()
	for limb := 0; limb < 4; limb++ {
		word := el[limb]
		for bit := 0; bit < 64; bit++ {
			if word&1 == 1 {
				result.Multiply(&result, &base)
			}

			base.Multiply(&base, &base)
			word >>= 1
		}
	}

	*s = result

	return s
}

// Invert sets s = 1/a mod l via Fermat's little theorem (a^(l-2)), and
// returns s. ok is 0 if a is zero (s is left as zero), 1 otherwise.
func (s *scalar255) Invert(a *scalar255) (ok int) {
	if a.IsZero() == 1 {
		s.zero()
		return 0
	}

	lMinus2 := scalarFromLimbs(scalarSub4(scalarL, [4]uint64{2, 0, 0, 0}))
	s.Pow(a, &lMinus2)

	return 1
}

// Equal returns 1 if s == a, 0 otherwise.
func (s *scalar255) Equal(a *scalar255) int {
	diff := (s.s0 ^ a.s0) | (s.s1 ^ a.s1) | (s.s2 ^ a.s2) | (s.s3 ^ a.s3)
	return int((uint64(1) - ((diff | -diff) >> 63 & 1)) & 1)
}

// IsZero returns 1 if s == 0, 0 otherwise.
func (s *scalar255) IsZero() int {
	return s.Equal(&scalarZero)
}

// LessOrEqual returns 1 if s <= a, 0 otherwise.
func (s *scalar255) LessOrEqual(a *scalar255) int {
	sl, al := s.limbs(), a.limbs()
	if sl == al {
		return 1
	}

	if scalarLess(sl, al) {
		return 1
	}

	return 0
}

// ConditionalAssign sets s = a if cond == 1, and leaves s unchanged if
// cond == 0.
func (s *scalar255) ConditionalAssign(a *scalar255, cond int) *scalar255 {
	mask := uint64(0) - uint64(cond&1)

	s.s0 ^= mask & (s.s0 ^ a.s0)
	s.s1 ^= mask & (s.s1 ^ a.s1)
	s.s2 ^= mask & (s.s2 ^ a.s2)
	s.s3 ^= mask & (s.s3 ^ a.s3)

	return s
}

// SetBytes decodes the 32-byte little-endian encoding b into s, without
// reducing. reduced reports whether the encoded value was already < l.
func (s *scalar255) SetBytes(b *[32]byte) (reduced bool) {
	l := [4]uint64{
		binary.LittleEndian.Uint64(b[0:8]),
		binary.LittleEndian.Uint64(b[8:16]),
		binary.LittleEndian.Uint64(b[16:24]),
		binary.LittleEndian.Uint64(b[24:32]),
	}

	*s = scalarFromLimbs(l)

	return scalarLess(l, scalarL)
}

// Bytes returns the 32-byte little-endian encoding of s.
func (s *scalar255) Bytes() [32]byte {
	var out [32]byte
	binary.LittleEndian.PutUint64(out[0:8], s.s0)
	binary.LittleEndian.PutUint64(out[8:16], s.s1)
	binary.LittleEndian.PutUint64(out[16:24], s.s2)
	binary.LittleEndian.PutUint64(out[24:32], s.s3)

	return out
}

// scalarFromBytesReduced reduces an arbitrary-length little-endian byte
// string modulo l via Horner's method (acc = acc*256 + byte, each step
// reduced). Used both for decode-long (oversized scalar input) and for
// hash-to-scalar (64-byte uniform input).
func scalarFromBytesReduced(b []byte) scalar255 {
	var acc scalar255

	for i := len(b) - 1; i >= 0; i-- {
		for bit := 0; bit < 8; bit++ {
			acc.Add(&acc, &acc)
		}

		digit := scalar255{uint64(b[i]), 0, 0, 0}
		acc.Add(&acc, &digit)
	}

	return acc
}

// decodeScalar parses the canonical 32-byte encoding of a scalar. ok is
// false iff the encoding was >= l, in which case s is still set to the
// reduced value (value mod l), per the decode contract.
func decodeScalar(b *[32]byte) (s scalar255, ok bool) {
	reduced := s.SetBytes(b)
	if !reduced {
		s = scalarFromBytesReduced(b[:])
	}

	return s, reduced
}
