// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ristretto

import "errors"

var errInvalidEdDSAEncoding = errors.New("invalid EdDSA point encoding")

// EncodeEdDSA returns the compressed Edwards-point encoding of e*4, the
// form consumed by EdDSA wire formats, which transport cofactor
// information that Ristretto's own encoding discards.
func (e *Element) EncodeEdDSA() []byte {
	var scaled point
	scaled.Double(&e.p)
	scaled.Double(&scaled)

	out := eddsaEncode(&scaled)

	return out[:]
}

// DecodeEdDSA decodes data as a standard (cofactor-8) Edwards point
// encoding and multiplies it by 2 mod l, the reciprocal ratio to the 4
// EncodeEdDSA applies (4*2 = 8, the cofactor), and sets the receiver to the
// result. Unlike Decode, it does not reject non-Ristretto-canonical
// encodings: EdDSA points are not required to be the canonical Ristretto
// representative of their coset.
func (e *Element) DecodeEdDSA(data []byte) error {
	p, err := eddsaDecode(data)
	if err != nil {
		return err
	}

	two := scalar255{2, 0, 0, 0}

	e.p = scalarMultCT(&two, &p)

	return nil
}

// eddsaEncode implements the plain (non-Ristretto) compressed Edwards
// point encoding: 255 bits of y, little-endian, with the sign of x packed
// into the top bit.
func eddsaEncode(p *point) [32]byte {
	var zInv, x, y fieldElement
	zInv.Invert(&p.Z)
	x.Multiply(&p.X, &zInv)
	y.Multiply(&p.Y, &zInv)

	out := y.Bytes()
	if x.IsNegative() == 1 {
		out[31] |= 0x80
	}

	return out
}

// eddsaDecode implements the plain (non-Ristretto) compressed Edwards
// point decode: recover x from y and the sign bit, via
// x = sqrt((y^2-1) / (d*y^2+1)).
func eddsaDecode(data []byte) (point, error) {
	if len(data) != canonicalEncodingLength {
		return point{}, errInvalidEdDSAEncoding
	}

	var b [32]byte
	copy(b[:], data)

	signBit := int((b[31] >> 7) & 1)
	b[31] &= 0x7f

	var y fieldElement
	y.SetBytes(&b)

	var ySq, num, den fieldElement
	ySq.Square(&y)
	num.Subtract(&ySq, &feOne)
	den.Multiply(&ySq, &fieldD)
	den.Add(&den, &feOne)

	x, wasSquare := feSqrtRatio(&num, &den)
	if wasSquare != 1 {
		return point{}, errInvalidEdDSAEncoding
	}

	negX := *new(fieldElement).Negate(&x)
	x.ConditionalAssign(&negX, x.IsNegative()^signBit)

	var t point
	t.X = x
	t.Y = y
	t.Z = feOne
	t.T.Multiply(&x, &y)

	return t, nil
}
