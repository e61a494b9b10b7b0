// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package ristretto allows simple and abstracted operations in the Ristretto255 group.
package ristretto

import (
	"encoding/binary"
	"math/bits"
)

// fieldElement is an element of GF(2^255-19), held in five 51-bit limbs,
// little-endian (l0 is least significant). Every exported arithmetic method
// returns a weakly reduced result: each limb fits in 52 bits, which Multiply
// accepts directly; reduce() produces the canonical form used by Bytes, Equal
// and IsNegative.
type fieldElement struct {
	l0, l1, l2, l3, l4 uint64
}

const maskLow51Bits uint64 = (1 << 51) - 1

var feZero = fieldElement{0, 0, 0, 0, 0}
var feOne = fieldElement{1, 0, 0, 0, 0}

// curve and Ristretto255 constants, in 51-bit limb form. Values were derived
// from the curve parameters (a = -1, d = -121665/121666) and cross-checked
// against the reference scalar/field constants in original_source/src/ristretto.c
// and src/scalar.c before being transcribed here.
var (
	// fieldD is the twisted Edwards curve parameter d = -121665/121666 mod p.
	fieldD = fieldElement{0x34dca135978a3, 0x1a8283b156ebd, 0x5e7a26001c029, 0x739c663a03cbb, 0x52036cee2b6ff}

	// fieldSqrtM1 is a square root of -1 mod p.
	fieldSqrtM1 = fieldElement{0x61b274a0ea0b0, 0x0d5a5fc8f189d, 0x7ef5e9cbd0c60, 0x78595a6804c9e, 0x2b8324804fc1d}

	// fieldInvSqrtAMinusD = 1/sqrt(a-d).
	fieldInvSqrtAMinusD = fieldElement{0x0fdaa805d40ea, 0x2eb482e57d339, 0x007610274bc58, 0x6510b613dc8ff, 0x786c8905cfaff}

	// fieldSqrtADMinusOne = sqrt(a*d-1).
	fieldSqrtADMinusOne = fieldElement{0x0095fb684d1d2, 0x67c90f568502d, 0x028b8094189c7, 0x3a9f861819b67, 0x4896ce40d47cb}

	// fieldOneMinusDSQ = 1 - d^2.
	fieldOneMinusDSQ = fieldElement{0x409c1945fc176, 0x719abc6a1fc4f, 0x1c37f90b20684, 0x06bccca55eedf, 0x029072a8b2b3e}

	// fieldDMinusOneSQ = (d-1)^2.
	fieldDMinusOneSQ = fieldElement{0x55aaa44ed4d20, 0x59603c3332635, 0x26d3baf4a7928, 0x120a66e6997a9, 0x5968b37af66c2}
)

func (f *fieldElement) zero() *fieldElement {
	*f = feZero
	return f
}

func (f *fieldElement) one() *fieldElement {
	*f = feOne
	return f
}

func (f *fieldElement) set(a *fieldElement) *fieldElement {
	*f = *a
	return f
}

// reduce carries all limbs down to 51 bits and, if the weakly-reduced value
// is >= p, subtracts p once, leaving a canonical representative in [0, p).
func (f *fieldElement) reduce() *fieldElement {
	f.carryPropagate()

	// c is 1 iff f + 19 overflows 2^255, i.e. iff f >= p.
	c := (f.l0 + 19) >> 51
	c = (f.l1 + c) >> 51
	c = (f.l2 + c) >> 51
	c = (f.l3 + c) >> 51
	c = (f.l4 + c) >> 51

	f.l0 += 19 * c

	f.l1 += f.l0 >> 51
	f.l0 &= maskLow51Bits
	f.l2 += f.l1 >> 51
	f.l1 &= maskLow51Bits
	f.l3 += f.l2 >> 51
	f.l2 &= maskLow51Bits
	f.l4 += f.l3 >> 51
	f.l3 &= maskLow51Bits
	f.l4 &= maskLow51Bits

	return f
}

func (f *fieldElement) carryPropagate() *fieldElement {
	c0 := f.l0 >> 51
	c1 := f.l1 >> 51
	c2 := f.l2 >> 51
	c3 := f.l3 >> 51
	c4 := f.l4 >> 51

	f.l0 = f.l0&maskLow51Bits + 19*c4
	f.l1 = f.l1&maskLow51Bits + c0
	f.l2 = f.l2&maskLow51Bits + c1
	f.l3 = f.l3&maskLow51Bits + c2
	f.l4 = f.l4&maskLow51Bits + c3

	return f
}

// Add sets f = a+b and returns f, weakly reduced.
func (f *fieldElement) Add(a, b *fieldElement) *fieldElement {
	f.l0 = a.l0 + b.l0
	f.l1 = a.l1 + b.l1
	f.l2 = a.l2 + b.l2
	f.l3 = a.l3 + b.l3
	f.l4 = a.l4 + b.l4

	return f.carryPropagate()
}

// feBias values are multiples of p large enough that subtracting any two
// weakly-reduced field elements never underflows.
const (
	feBias0 = 0xFFFFFFFFFFFDA
	feBiasN = 0xFFFFFFFFFFFFE
)

// Subtract sets f = a-b and returns f, weakly reduced.
func (f *fieldElement) Subtract(a, b *fieldElement) *fieldElement {
	f.l0 = (a.l0 + feBias0) - b.l0
	f.l1 = (a.l1 + feBiasN) - b.l1
	f.l2 = (a.l2 + feBiasN) - b.l2
	f.l3 = (a.l3 + feBiasN) - b.l3
	f.l4 = (a.l4 + feBiasN) - b.l4

	return f.carryPropagate()
}

// Negate sets f = -a and returns f, weakly reduced.
func (f *fieldElement) Negate(a *fieldElement) *fieldElement {
	var zero fieldElement
	return f.Subtract(&zero, a)
}

func mul64(a, b uint64) (hi, lo uint64) {
	return bits.Mul64(a, b)
}

func addMul(hi, lo *uint64, a, b uint64) {
	h, l := bits.Mul64(a, b)
	var carry uint64
	*lo, carry = bits.Add64(*lo, l, 0)
	*hi += h + carry
}

// feMul computes the generic schoolbook product of two 51-bit-limb field
// elements, folding the 2^255 = 19 reduction into the high-limb carries. This
// mirrors the well known curve25519 51-bit-limb multiplication strategy (see
// e.g. the donna/ref10 family of implementations and filippo.io/edwards25519's
// generic fallback).
func feMul(out, a, b *fieldElement) {
	a0, a1, a2, a3, a4 := a.l0, a.l1, a.l2, a.l3, a.l4
	b0, b1, b2, b3, b4 := b.l0, b.l1, b.l2, b.l3, b.l4

	a1_19 := a1 * 19
	a2_19 := a2 * 19
	a3_19 := a3 * 19
	a4_19 := a4 * 19

	var r0hi, r0lo, r1hi, r1lo, r2hi, r2lo, r3hi, r3lo, r4hi, r4lo uint64

	addMul(&r0hi, &r0lo, a0, b0)
	addMul(&r0hi, &r0lo, a1_19, b4)
	addMul(&r0hi, &r0lo, a2_19, b3)
	addMul(&r0hi, &r0lo, a3_19, b2)
	addMul(&r0hi, &r0lo, a4_19, b1)

	addMul(&r1hi, &r1lo, a0, b1)
	addMul(&r1hi, &r1lo, a1, b0)
	addMul(&r1hi, &r1lo, a2_19, b4)
	addMul(&r1hi, &r1lo, a3_19, b3)
	addMul(&r1hi, &r1lo, a4_19, b2)

	addMul(&r2hi, &r2lo, a0, b2)
	addMul(&r2hi, &r2lo, a1, b1)
	addMul(&r2hi, &r2lo, a2, b0)
	addMul(&r2hi, &r2lo, a3_19, b4)
	addMul(&r2hi, &r2lo, a4_19, b3)

	addMul(&r3hi, &r3lo, a0, b3)
	addMul(&r3hi, &r3lo, a1, b2)
	addMul(&r3hi, &r3lo, a2, b1)
	addMul(&r3hi, &r3lo, a3, b0)
	addMul(&r3hi, &r3lo, a4_19, b4)

	addMul(&r4hi, &r4lo, a0, b4)
	addMul(&r4hi, &r4lo, a1, b3)
	addMul(&r4hi, &r4lo, a2, b2)
	addMul(&r4hi, &r4lo, a3, b1)
	addMul(&r4hi, &r4lo, a4, b0)

	// Propagate each 128-bit (hi,lo) accumulator down into 51-bit limbs,
	// carrying the overflow of limb i into limb i+1 (and of limb 4 back
	// into limb 0, multiplied by 19, since 2^255 == 19 mod p).
	var cc uint64

	c0 := (r0hi << 13) | (r0lo >> 51)
	l0 := r0lo & maskLow51Bits

	r1lo, cc = bits.Add64(r1lo, c0, 0)
	r1hi += cc
	c1 := (r1hi << 13) | (r1lo >> 51)
	l1 := r1lo & maskLow51Bits

	r2lo, cc = bits.Add64(r2lo, c1, 0)
	r2hi += cc
	c2 := (r2hi << 13) | (r2lo >> 51)
	l2 := r2lo & maskLow51Bits

	r3lo, cc = bits.Add64(r3lo, c2, 0)
	r3hi += cc
	c3 := (r3hi << 13) | (r3lo >> 51)
	l3 := r3lo & maskLow51Bits

	r4lo, cc = bits.Add64(r4lo, c3, 0)
	r4hi += cc
	c4 := (r4hi << 13) | (r4lo >> 51)
	l4 := r4lo & maskLow51Bits

	l0 += 19 * c4

	out.l0, out.l1, out.l2, out.l3, out.l4 = l0, l1, l2, l3, l4
	out.carryPropagate()
}

// Multiply sets f = a*b and returns f, weakly reduced.
func (f *fieldElement) Multiply(a, b *fieldElement) *fieldElement {
	feMul(f, a, b)
	return f
}

// Square sets f = a*a and returns f. Delegates to Multiply: a dedicated
// squaring routine saves roughly a third of the partial products but doubles
// the surface for a hand-transcription mistake, and this module favors the
// lower-risk form since correctness cannot be checked by a compiler here.
func (f *fieldElement) Square(a *fieldElement) *fieldElement {
	return f.Multiply(a, a)
}

// Mult32 sets f = a*w for a small unsigned constant w, and returns f.
func (f *fieldElement) Mult32(a *fieldElement, w uint32) *fieldElement {
	w64 := uint64(w)

	var h0, l0, h1, l1, h2, l2, h3, l3, h4, l4 uint64
	h0, l0 = mul64(a.l0, w64)
	h1, l1 = mul64(a.l1, w64)
	h2, l2 = mul64(a.l2, w64)
	h3, l3 = mul64(a.l3, w64)
	h4, l4 = mul64(a.l4, w64)

	var cc uint64

	c0 := (h0 << 13) | (l0 >> 51)
	l0 &= maskLow51Bits
	l1, cc = bits.Add64(l1, c0, 0)
	h1 += cc
	c1 := (h1 << 13) | (l1 >> 51)
	l1 &= maskLow51Bits
	l2, cc = bits.Add64(l2, c1, 0)
	h2 += cc
	c2 := (h2 << 13) | (l2 >> 51)
	l2 &= maskLow51Bits
	l3, cc = bits.Add64(l3, c2, 0)
	h3 += cc
	c3 := (h3 << 13) | (l3 >> 51)
	l3 &= maskLow51Bits
	l4, cc = bits.Add64(l4, c3, 0)
	h4 += cc
	c4 := (h4 << 13) | (l4 >> 51)
	l4 &= maskLow51Bits
	l0 += 19 * c4

	f.l0, f.l1, f.l2, f.l3, f.l4 = l0, l1, l2, l3, l4
	f.carryPropagate()

	return f
}

// Pow22523 sets f = a^((p-5)/8) and returns f. This is the standard
// curve25519 addition chain for that exponent (as used throughout the
// ed25519/curve25519 reference implementations), the load-bearing step of
// the inverse-square-root primitive.
func (f *fieldElement) Pow22523(a *fieldElement) *fieldElement {
	var t0, t1, t2, t3 fieldElement

	t0.Square(a)
	t1.Square(&t0)
	t1.Square(&t1)
	t1.Multiply(a, &t1)
	t0.Multiply(&t0, &t1)
	t2.Square(&t0)
	t1.Multiply(&t1, &t2)
	t2.Square(&t1)
	for i := 1; i < 5; i++ {
		t2.Square(&t2)
	}
	t1.Multiply(&t2, &t1)
	t2.Square(&t1)
	for i := 1; i < 10; i++ {
		t2.Square(&t2)
	}
	t2.Multiply(&t2, &t1)
	t3.Square(&t2)
	for i := 1; i < 20; i++ {
		t3.Square(&t3)
	}
	t2.Multiply(&t3, &t2)
	t2.Square(&t2)
	for i := 1; i < 10; i++ {
		t2.Square(&t2)
	}
	t1.Multiply(&t2, &t1)
	t2.Square(&t1)
	for i := 1; i < 50; i++ {
		t2.Square(&t2)
	}
	t2.Multiply(&t2, &t1)
	t3.Square(&t2)
	for i := 1; i < 100; i++ {
		t3.Square(&t3)
	}
	t2.Multiply(&t3, &t2)
	t2.Square(&t2)
	for i := 1; i < 50; i++ {
		t2.Square(&t2)
	}
	t1.Multiply(&t2, &t1)
	t1.Square(&t1)
	t1.Square(&t1)
	f.Multiply(&t1, a)

	return f
}

// Invert sets f = 1/a and returns f. a must be nonzero; inverting zero is a
// programmer error, matching the reference's "assertion" discipline for
// internally-guaranteed-nonzero operands.
func (f *fieldElement) Invert(a *fieldElement) *fieldElement {
	var z2, z9, z11, z2_5_0, z2_10_0, z2_20_0, z2_40_0, z2_50_0, z2_100_0, z2_200_0, z2_250_0, t fieldElement

	z2.Square(a)
	t.Square(&z2)
	t.Square(&t)
	z9.Multiply(&t, a)
	z11.Multiply(&z9, &z2)
	t.Square(&z11)
	z2_5_0.Multiply(&t, &z9)

	t.Square(&z2_5_0)
	for i := 1; i < 5; i++ {
		t.Square(&t)
	}
	z2_10_0.Multiply(&t, &z2_5_0)

	t.Square(&z2_10_0)
	for i := 1; i < 10; i++ {
		t.Square(&t)
	}
	z2_20_0.Multiply(&t, &z2_10_0)

	t.Square(&z2_20_0)
	for i := 1; i < 20; i++ {
		t.Square(&t)
	}
	z2_40_0.Multiply(&t, &z2_20_0)

	t.Square(&z2_40_0)
	for i := 1; i < 10; i++ {
		t.Square(&t)
	}
	z2_50_0.Multiply(&t, &z2_10_0)

	t.Square(&z2_50_0)
	for i := 1; i < 50; i++ {
		t.Square(&t)
	}
	z2_100_0.Multiply(&t, &z2_50_0)

	t.Square(&z2_100_0)
	for i := 1; i < 100; i++ {
		t.Square(&t)
	}
	z2_200_0.Multiply(&t, &z2_100_0)

	t.Square(&z2_200_0)
	for i := 1; i < 50; i++ {
		t.Square(&t)
	}
	z2_250_0.Multiply(&t, &z2_50_0)

	t.Square(&z2_250_0)
	for i := 1; i < 5; i++ {
		t.Square(&t)
	}
	f.Multiply(&t, &z11)

	return f
}

// feSqrtRatio computes r such that r^2 * v == u, when such an r exists
// (u/v is a square), choosing the non-negative root (lowest bit clear).
// wasSquare is 1 if u/v is a square, including u == 0 (where r is set to 0),
// and 0 otherwise.
func feSqrtRatio(u, v *fieldElement) (r fieldElement, wasSquare int) {
	var v3, v7, uv3, uv7, check, r2, rPrime, negU, negUSqrtM1 fieldElement

	v3.Square(v).Multiply(&v3, v)
	v7.Square(&v3).Multiply(&v7, v)
	uv3.Multiply(u, &v3)
	uv7.Multiply(u, &v7)

	var exp fieldElement
	exp.Pow22523(&uv7)
	r.Multiply(&uv3, &exp)

	check.Square(&r).Multiply(&check, v)

	negU.Negate(u)
	negUSqrtM1.Multiply(&negU, &fieldSqrtM1)

	correct := check.Equal(u)
	flipped := check.Equal(&negU)
	flippedI := check.Equal(&negUSqrtM1)

	rPrime.Multiply(&r, &fieldSqrtM1)
	r.ConditionalAssign(&rPrime, flipped|flippedI)

	r2.Negate(&r)
	r.ConditionalAssign(&r2, r.IsNegative())

	wasSquare = correct | flipped

	return r, wasSquare
}

// Equal returns 1 if f == a (as canonical residues), 0 otherwise.
func (f *fieldElement) Equal(a *fieldElement) int {
	var fc, ac fieldElement
	fc.set(f).reduce()
	ac.set(a).reduce()

	fb := fc.Bytes()
	ab := ac.Bytes()

	var diff byte
	for i := range fb {
		diff |= fb[i] ^ ab[i]
	}

	return int((uint32(diff) - 1) >> 31)
}

// IsNegative returns 1 if the canonical residue of f is odd, 0 otherwise
// (this is the "lobit" test from the specification).
func (f *fieldElement) IsNegative() int {
	var t fieldElement
	t.set(f).reduce()
	return int(t.l0 & 1)
}

// ConditionalAssign sets f = a if cond == 1, leaves f unchanged if cond == 0.
// cond must be 0 or 1; any other value is undefined.
func (f *fieldElement) ConditionalAssign(a *fieldElement, cond int) *fieldElement {
	mask := uint64(0) - uint64(cond&1)

	f.l0 ^= mask & (f.l0 ^ a.l0)
	f.l1 ^= mask & (f.l1 ^ a.l1)
	f.l2 ^= mask & (f.l2 ^ a.l2)
	f.l3 ^= mask & (f.l3 ^ a.l3)
	f.l4 ^= mask & (f.l4 ^ a.l4)

	return f
}

// ConditionalSwap swaps the values of f and a if cond == 1, and is a no-op
// if cond == 0. cond must be 0 or 1.
func ConditionalSwap(f, a *fieldElement, cond int) {
	mask := uint64(0) - uint64(cond&1)

	t := mask & (f.l0 ^ a.l0)
	f.l0 ^= t
	a.l0 ^= t
	t = mask & (f.l1 ^ a.l1)
	f.l1 ^= t
	a.l1 ^= t
	t = mask & (f.l2 ^ a.l2)
	f.l2 ^= t
	a.l2 ^= t
	t = mask & (f.l3 ^ a.l3)
	f.l3 ^= t
	a.l3 ^= t
	t = mask & (f.l4 ^ a.l4)
	f.l4 ^= t
	a.l4 ^= t
}

// ConditionalNegate sets f = -f if cond == 1, leaves f unchanged otherwise.
func (f *fieldElement) ConditionalNegate(cond int) *fieldElement {
	var neg fieldElement
	neg.Negate(f)
	f.ConditionalAssign(&neg, cond)

	return f
}

// IsZero returns 1 if f's canonical residue is 0, 0 otherwise.
func (f *fieldElement) IsZero() int {
	return f.Equal(&feZero)
}

// SetBytes decodes the 255 low bits of b as a little-endian integer (the top
// bit of b[31] is ignored) and returns f. The result is not required to be <
// p; callers requiring a canonical encoding must check feIsCanonicalBytes
// first.
func (f *fieldElement) SetBytes(b *[32]byte) *fieldElement {
	f.l0 = binary.LittleEndian.Uint64(b[0:8]) & maskLow51Bits
	f.l1 = (binary.LittleEndian.Uint64(b[6:14]) >> 3) & maskLow51Bits
	f.l2 = (binary.LittleEndian.Uint64(b[12:20]) >> 6) & maskLow51Bits
	f.l3 = (binary.LittleEndian.Uint64(b[19:27]) >> 1) & maskLow51Bits
	f.l4 = (binary.LittleEndian.Uint64(b[24:32]) >> 12) & maskLow51Bits

	return f
}

// Bytes returns the canonical 32-byte little-endian encoding of f.
func (f *fieldElement) Bytes() [32]byte {
	var t fieldElement
	t.set(f).reduce()

	var out [32]byte
	binary.LittleEndian.PutUint64(out[0:8], t.l0|t.l1<<51)
	binary.LittleEndian.PutUint64(out[8:16], t.l1>>13|t.l2<<38)
	binary.LittleEndian.PutUint64(out[16:24], t.l2>>26|t.l3<<25)
	binary.LittleEndian.PutUint64(out[24:32], t.l3>>39|t.l4<<12)

	return out
}

// feIsCanonicalBytes reports whether b is the canonical little-endian
// encoding of an integer in [0, p): i.e. that integer is strictly less than
// p = 2^255-19 when compared as a 256-bit little-endian value with bit 255
// required to be zero.
func feIsCanonicalBytes(b *[32]byte) bool {
	if b[31]&0x80 != 0 {
		return false
	}

	// p in little-endian bytes: 2^255-19.
	var pBytes [32]byte
	for i := range pBytes {
		pBytes[i] = 0xff
	}

	pBytes[0] = 0xed
	pBytes[31] = 0x7f

	for i := 31; i >= 0; i-- {
		if b[i] < pBytes[i] {
			return true
		}

		if b[i] > pBytes[i] {
			return false
		}
	}

	return false // equal to p is not canonical
}
