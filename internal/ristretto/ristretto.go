// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package ristretto implements the ristretto255 prime-order group built on
// top of the cofactor-8 twisted Edwards curve edwards25519.
package ristretto

import (
	"crypto"
	_ "crypto/sha512"

	"github.com/bytemare/crypto/hash2curve"
	"github.com/bytemare/crypto/internal"
)

const (
	// H2C represents the hash-to-curve string identifier.
	H2C = "ristretto255_XMD:SHA-512_R255MAP_RO_"

	// orderPrime represents curve25519's subgroup prime-order
	// = 2^252 + 27742317777372353535851937790883648493
	// cofactor h = 8.
	orderPrime = "7237005577332262213973186563042994240857116359379907606001950938285454250989"

	canonicalEncodingLength = 32
	uniformInputLength      = 64
)

// Group represents the Ristretto255 group. It exposes a prime-order group API with hash-to-curve operations.
type Group struct{}

// New returns a new instantiation of the Ristretto255 Group.
func New() internal.Group {
	return Group{}
}

// NewScalar returns a new scalar set to 0.
func (g Group) NewScalar() internal.Scalar {
	return &Scalar{}
}

// NewElement returns the identity element (point at infinity).
func (g Group) NewElement() internal.Element {
	e := &Element{}
	e.p.Identity()

	return e
}

// Base returns group's base point a.k.a. canonical generator.
func (g Group) Base() internal.Element {
	e := &Element{}
	e.p.SetBase()

	return e
}

// HashToScalar returns a safe mapping of the arbitrary input to a Scalar.
// The DST must not be empty or nil, and is recommended to be longer than 16 bytes.
func (g Group) HashToScalar(input, dst []byte) internal.Scalar {
	uniform := hash2curve.ExpandXMD(crypto.SHA512, input, dst, uniformInputLength)

	return &Scalar{s: scalarFromBytesReduced(uniform)}
}

// HashToGroup returns a safe mapping of the arbitrary input to an Element in the Group.
// The DST must not be empty or nil, and is recommended to be longer than 16 bytes.
func (g Group) HashToGroup(input, dst []byte) internal.Element {
	uniform := hash2curve.ExpandXMD(crypto.SHA512, input, dst, uniformInputLength)

	return &Element{p: uniformMap(uniform)}
}

// EncodeToGroup returns a non-uniform mapping of the arbitrary input to an Element in the Group.
// The DST must not be empty or nil, and is recommended to be longer than 16 bytes.
func (g Group) EncodeToGroup(input, dst []byte) internal.Element {
	nonuniform := hash2curve.ExpandXMD(crypto.SHA512, input, dst, canonicalEncodingLength)

	var b [32]byte
	copy(b[:], nonuniform)

	return &Element{p: nonUniformMap(&b)}
}

// Ciphersuite returns the hash-to-curve ciphersuite identifier.
func (g Group) Ciphersuite() string {
	return H2C
}

// ScalarLength returns the byte size of an encoded scalar.
func (g Group) ScalarLength() int {
	return canonicalEncodingLength
}

// ElementLength returns the byte size of an encoded element.
func (g Group) ElementLength() int {
	return canonicalEncodingLength
}

// Order returns the order of the canonical group of scalars.
func (g Group) Order() string {
	return orderPrime
}

// ctAbs returns f if lobit(f) == 0, else -f; the result always has
// lobit == 0 (the "constant-time absolute value" convention used
// throughout the codec and the Elligator map).
func ctAbs(f *fieldElement) fieldElement {
	var neg, out fieldElement
	neg.Negate(f)
	out = *f
	out.ConditionalAssign(&neg, f.IsNegative())

	return out
}

// encode implements the deisogenize+encode half of the Ristretto codec. It
// follows the RFC 9496 field-constant formulation (INVSQRT_A_MINUS_D,
// SQRT_AD_MINUS_ONE) rather than the original's single composite
// ristretto255_factor constant; see DESIGN.md for the equivalence argument.
func (p *point) encode() [32]byte {
	var zPlusY, zMinusY, u1, u2, u2Sq, u1u2sq fieldElement

	zPlusY.Add(&p.Z, &p.Y)
	zMinusY.Subtract(&p.Z, &p.Y)
	u1.Multiply(&zPlusY, &zMinusY)
	u2.Multiply(&p.X, &p.Y)
	u2Sq.Square(&u2)
	u1u2sq.Multiply(&u1, &u2Sq)

	invsqrt, _ := feSqrtRatio(&feOne, &u1u2sq)

	var den1, den2, den1den2, zInv fieldElement
	den1.Multiply(&invsqrt, &u1)
	den2.Multiply(&invsqrt, &u2)
	den1den2.Multiply(&den1, &den2)
	zInv.Multiply(&den1den2, &p.T)

	var ix, iy, enchantedDenominator fieldElement
	ix.Multiply(&p.X, &fieldSqrtM1)
	iy.Multiply(&p.Y, &fieldSqrtM1)
	enchantedDenominator.Multiply(&den1, &fieldInvSqrtAMinusD)

	var tZinv fieldElement
	tZinv.Multiply(&p.T, &zInv)
	rotate := tZinv.IsNegative()

	x, y, denInv := p.X, p.Y, den2
	x.ConditionalAssign(&iy, rotate)
	y.ConditionalAssign(&ix, rotate)
	denInv.ConditionalAssign(&enchantedDenominator, rotate)

	var xZinv, negY fieldElement
	xZinv.Multiply(&x, &zInv)
	negY.Negate(&y)
	y.ConditionalAssign(&negY, xZinv.IsNegative())

	var s, zMinusY2 fieldElement
	zMinusY2.Subtract(&p.Z, &y)
	s.Multiply(&denInv, &zMinusY2)
	s = ctAbs(&s)

	return s.Bytes()
}

// decode implements the decode half of the Ristretto codec.
func decode(b *[32]byte) (point, bool) {
	var s fieldElement

	if !feIsCanonicalBytes(b) {
		return point{}, false
	}

	s.SetBytes(b)

	if s.IsNegative() == 1 {
		return point{}, false
	}

	var ss, u1, u2, u2Sqr, v fieldElement
	ss.Square(&s)
	u1.Subtract(&feOne, &ss)
	u2.Add(&feOne, &ss)
	u2Sqr.Square(&u2)

	var du1Sq, negDu1Sq fieldElement
	du1Sq.Square(&u1).Multiply(&du1Sq, &fieldD)
	negDu1Sq.Negate(&du1Sq)
	v.Subtract(&negDu1Sq, &u2Sqr)

	var vu2Sqr fieldElement
	vu2Sqr.Multiply(&v, &u2Sqr)

	invsqrt, wasSquare := feSqrtRatio(&feOne, &vu2Sqr)

	var denX, denY, x, y, t, twoS fieldElement
	denX.Multiply(&invsqrt, &u2)
	denY.Multiply(&invsqrt, &denX)
	denY.Multiply(&denY, &v)

	twoS.Add(&s, &s)
	x.Multiply(&twoS, &denX)
	x = ctAbs(&x)

	y.Multiply(&u1, &denY)
	t.Multiply(&x, &y)

	if wasSquare != 1 || t.IsNegative() == 1 || y.IsZero() == 1 {
		return point{}, false
	}

	return point{X: x, Y: y, Z: feOne, T: t}, true
}
