// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ristretto

import (
	"encoding/hex"
	"fmt"

	"github.com/bytemare/crypto/internal"
)

// Element implements the Element interface for the Ristretto255 group element.
type Element struct {
	p point
}

func checkElement(element internal.Element) *Element {
	if element == nil {
		panic(internal.ErrParamNilPoint)
	}

	ec, ok := element.(*Element)
	if !ok {
		panic(internal.ErrCastElement)
	}

	return ec
}

// Base sets the element to the group's base point a.k.a. canonical generator.
func (e *Element) Base() internal.Element {
	e.p.SetBase()
	return e
}

// Identity sets the element to the point at infinity of the Group's underlying curve.
func (e *Element) Identity() internal.Element {
	e.p.Identity()
	return e
}

// Add sets the receiver to the sum of the input and the receiver, and returns the receiver.
func (e *Element) Add(element internal.Element) internal.Element {
	ec := checkElement(element)
	e.p.Add(&e.p, &ec.p)

	return e
}

// Double sets the receiver to its double, and returns it.
func (e *Element) Double() internal.Element {
	e.p.Double(&e.p)
	return e
}

// Negate sets the receiver to its negation, and returns it.
func (e *Element) Negate() internal.Element {
	e.p.Negate(&e.p)
	return e
}

// Subtract subtracts the input from the receiver, and returns the receiver.
func (e *Element) Subtract(element internal.Element) internal.Element {
	ec := checkElement(element)
	e.p.Subtract(&e.p, &ec.p)

	return e
}

// Multiply sets the receiver to the scalar multiplication of the receiver with the given Scalar, and returns it.
func (e *Element) Multiply(s internal.Scalar) internal.Element {
	if s == nil {
		e.p.Identity()
		return e
	}

	sc := assertScalar(s)
	e.p = scalarMultCT(&sc.s, &e.p)

	return e
}

// Equal returns 1 if the elements are equivalent, and 0 otherwise.
func (e *Element) Equal(element internal.Element) int {
	ec := checkElement(element)
	return e.p.Equal(&ec.p)
}

// IsIdentity returns whether the Element is the point at infinity of the Group's underlying curve.
func (e *Element) IsIdentity() bool {
	return e.p.Equal(&identityPoint) == 1
}

func (e *Element) set(element *Element) *Element {
	*e = *element
	return e
}

// Set sets the receiver to the value of the argument, and returns the receiver.
func (e *Element) Set(element internal.Element) internal.Element {
	if element == nil {
		e.p.Identity()
		return e
	}

	ec, ok := element.(*Element)
	if !ok {
		panic(internal.ErrCastElement)
	}

	return e.set(ec)
}

// Copy returns a copy of the receiver.
func (e *Element) Copy() internal.Element {
	return &Element{p: e.p}
}

// Encode returns the compressed byte encoding of the element.
func (e *Element) Encode() []byte {
	out := e.p.encode()
	return out[:]
}

// XCoordinate returns the canonical byte encoding of the affine x-coordinate.
func (e *Element) XCoordinate() []byte {
	var zInv, x fieldElement
	zInv.Invert(&e.p.Z)
	x.Multiply(&e.p.X, &zInv)
	b := x.Bytes()

	return b[:]
}

// Decode sets the receiver to a decoding of the input data, and returns an error on failure.
func (e *Element) Decode(data []byte) error {
	if len(data) != canonicalEncodingLength {
		return internal.ErrParamInvalidPointEncoding
	}

	var b [32]byte
	copy(b[:], data)

	p, ok := decode(&b)
	if !ok {
		return internal.ErrParamInvalidPointEncoding
	}

	e.p = p

	return nil
}

// Hex returns the fixed-sized hexadecimal encoding of e.
func (e *Element) Hex() string {
	return hex.EncodeToString(e.Encode())
}

// DecodeHex sets e to the decoding of the hex encoded element.
func (e *Element) DecodeHex(h string) error {
	b, err := hex.DecodeString(h)
	if err != nil {
		return fmt.Errorf("element hex decoding: %w", err)
	}

	return e.Decode(b)
}

// MarshalBinary returns the compressed byte encoding of the element.
func (e *Element) MarshalBinary() ([]byte, error) {
	return e.Encode(), nil
}

// UnmarshalBinary sets e to the decoding of the byte encoded element.
func (e *Element) UnmarshalBinary(data []byte) error {
	return e.Decode(data)
}
