// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ristretto

// point is a curve point on the twisted Edwards curve -x^2+y^2 = 1+d*x^2*y^2
// (a = -1) in extended coordinates: x = X/Z, y = Y/Z, x*y = T/Z, with the
// invariant X*Y == Z*T. Addition and doubling are complete (exception-free):
// there are no special cases for the identity or for doubling a point's
// negation.
type point struct {
	X, Y, Z, T fieldElement
}

// niels holds (Y-X, Y+X, 2*d*T) for a point with implicit Z = 1, the
// affine precomputation form used by the precomputed base-point tables
// (the constant-time radix-16 base multiplication and the wNAF base table).
type niels struct {
	a, b, c fieldElement
}

// pNiels extends niels with an explicit doubled Z, for tables built from
// points that were not affinized (the constant-time arbitrary-point window
// and the variable-time wNAF path).
type pNiels struct {
	a, b, c, z2 fieldElement
}

var identityPoint = point{
	X: fieldElement{0, 0, 0, 0, 0},
	Y: fieldElement{1, 0, 0, 0, 0},
	Z: fieldElement{1, 0, 0, 0, 0},
	T: fieldElement{0, 0, 0, 0, 0},
}

var basePoint = point{
	X: fieldElement{0x62d608f25d51a, 0x412a4b4f6592a, 0x75b7171a4b31d, 0x1ff60527118fe, 0x216936d3cd6e5},
	Y: fieldElement{0x6666666666658, 0x4cccccccccccc, 0x1999999999999, 0x3333333333333, 0x6666666666666},
	Z: fieldElement{1, 0, 0, 0, 0},
	T: fieldElement{0x68ab3a5b7dda3, 0x00eea2a5eadbb, 0x2af8df483c27e, 0x332b375274732, 0x67875f0fd78b7},
}

// torsion4 is the order-4 point (i, 0) on the curve (y = 0, x^2 = -1), used
// only by the debug Torque operation exercised in tests.
var torsion4 = point{
	X: fieldSqrtM1,
	Y: fieldElement{0, 0, 0, 0, 0},
	Z: fieldElement{1, 0, 0, 0, 0},
	T: fieldElement{0, 0, 0, 0, 0},
}

func (p *point) Identity() *point {
	*p = identityPoint
	return p
}

func (p *point) SetBase() *point {
	*p = basePoint
	return p
}

func (p *point) Set(a *point) *point {
	*p = *a
	return p
}

// Add sets p = a+b using the complete HWCD addition formula for a = -1
// twisted Edwards curves, and returns p.
func (p *point) Add(a, b *point) *point {
	var A, B, C, D, E, F, G, H fieldElement

	A.Subtract(&a.Y, &a.X)
	var t fieldElement
	t.Subtract(&b.Y, &b.X)
	A.Multiply(&A, &t)

	B.Add(&a.Y, &a.X)
	t.Add(&b.Y, &b.X)
	B.Multiply(&B, &t)

	C.Multiply(&a.T, &b.T)
	C.Multiply(&C, &fieldD)
	C.Add(&C, &C)

	D.Multiply(&a.Z, &b.Z)
	D.Add(&D, &D)

	E.Subtract(&B, &A)
	F.Subtract(&D, &C)
	G.Add(&D, &C)
	H.Add(&B, &A)

	p.X.Multiply(&E, &F)
	p.Y.Multiply(&G, &H)
	p.T.Multiply(&E, &H)
	p.Z.Multiply(&F, &G)

	return p
}

// Negate sets p = -a and returns p.
func (p *point) Negate(a *point) *point {
	p.X.Negate(&a.X)
	p.Y = a.Y
	p.Z = a.Z
	p.T.Negate(&a.T)

	return p
}

// Subtract sets p = a-b and returns p.
func (p *point) Subtract(a, b *point) *point {
	var negB point
	negB.Negate(b)

	return p.Add(a, &negB)
}

// Double sets p = a+a using the dedicated doubling formula (dbl-2008-hwcd
// for a = -1), and returns p.
func (p *point) Double(a *point) *point {
	var A, B, C, D, E, G, F, H, sum fieldElement

	A.Square(&a.X)
	B.Square(&a.Y)
	C.Square(&a.Z)
	C.Add(&C, &C)
	D.Negate(&A)

	sum.Add(&a.X, &a.Y)
	E.Square(&sum)
	E.Subtract(&E, &A)
	E.Subtract(&E, &B)

	G.Add(&D, &B)
	F.Subtract(&G, &C)
	H.Subtract(&D, &B)

	p.X.Multiply(&E, &F)
	p.Y.Multiply(&G, &H)
	p.T.Multiply(&E, &H)
	p.Z.Multiply(&F, &G)

	return p
}

// AddNiels sets p = a + n (n affine, Z implicitly 1), and returns p.
func (p *point) AddNiels(a *point, n *niels) *point {
	var A, B, C, D, E, F, G, H fieldElement

	A.Subtract(&a.Y, &a.X).Multiply(&A, &n.a)
	B.Add(&a.Y, &a.X).Multiply(&B, &n.b)
	C.Multiply(&a.T, &n.c)
	D.Add(&a.Z, &a.Z)

	E.Subtract(&B, &A)
	F.Subtract(&D, &C)
	G.Add(&D, &C)
	H.Add(&B, &A)

	p.X.Multiply(&E, &F)
	p.Y.Multiply(&G, &H)
	p.T.Multiply(&E, &H)
	p.Z.Multiply(&F, &G)

	return p
}

// SubNiels sets p = a - n, and returns p.
func (p *point) SubNiels(a *point, n *niels) *point {
	var A, B, C, D, E, F, G, H fieldElement

	A.Subtract(&a.Y, &a.X).Multiply(&A, &n.b)
	B.Add(&a.Y, &a.X).Multiply(&B, &n.a)
	C.Multiply(&a.T, &n.c)
	D.Add(&a.Z, &a.Z)

	E.Subtract(&B, &A)
	F.Add(&D, &C)
	G.Subtract(&D, &C)
	H.Add(&B, &A)

	p.X.Multiply(&E, &F)
	p.Y.Multiply(&G, &H)
	p.T.Multiply(&E, &H)
	p.Z.Multiply(&F, &G)

	return p
}

// AddPNiels sets p = a + n, and returns p.
func (p *point) AddPNiels(a *point, n *pNiels) *point {
	var A, B, C, D, E, F, G, H fieldElement

	A.Subtract(&a.Y, &a.X).Multiply(&A, &n.a)
	B.Add(&a.Y, &a.X).Multiply(&B, &n.b)
	C.Multiply(&a.T, &n.c)
	D.Multiply(&a.Z, &n.z2)

	E.Subtract(&B, &A)
	F.Subtract(&D, &C)
	G.Add(&D, &C)
	H.Add(&B, &A)

	p.X.Multiply(&E, &F)
	p.Y.Multiply(&G, &H)
	p.T.Multiply(&E, &H)
	p.Z.Multiply(&F, &G)

	return p
}

// SubPNiels sets p = a - n, and returns p.
func (p *point) SubPNiels(a *point, n *pNiels) *point {
	var A, B, C, D, E, F, G, H fieldElement

	A.Subtract(&a.Y, &a.X).Multiply(&A, &n.b)
	B.Add(&a.Y, &a.X).Multiply(&B, &n.a)
	C.Multiply(&a.T, &n.c)
	D.Multiply(&a.Z, &n.z2)

	E.Subtract(&B, &A)
	F.Add(&D, &C)
	G.Subtract(&D, &C)
	H.Add(&B, &A)

	p.X.Multiply(&E, &F)
	p.Y.Multiply(&G, &H)
	p.T.Multiply(&E, &H)
	p.Z.Multiply(&F, &G)

	return p
}

// toNiels converts an affine (Z == 1) point into its niels precomputation
// form. Callers must affinize the point first (see batchAffinize).
func (p *point) toNiels() niels {
	var n niels
	n.a.Subtract(&p.Y, &p.X)
	n.b.Add(&p.Y, &p.X)
	n.c.Multiply(&p.T, &fieldD)
	n.c.Add(&n.c, &n.c)

	return n
}

// toPNiels converts p, of any Z, into its pNiels precomputation form.
func (p *point) toPNiels() pNiels {
	var n pNiels
	n.a.Subtract(&p.Y, &p.X)
	n.b.Add(&p.Y, &p.X)
	n.c.Multiply(&p.T, &fieldD)
	n.c.Add(&n.c, &n.c)
	n.z2.Add(&p.Z, &p.Z)

	return n
}

// nielsNegate returns -n.
func nielsNegate(n *niels) niels {
	return niels{a: n.b, b: n.a, c: *new(fieldElement).Negate(&n.c)}
}

// pNielsNegate returns -n.
func pNielsNegate(n *pNiels) pNiels {
	return pNiels{a: n.b, b: n.a, c: *new(fieldElement).Negate(&n.c), z2: n.z2}
}

// Equal returns 1 if p and q represent the same Ristretto element (equal
// modulo the curve's 4-torsion subgroup), 0 otherwise.
func (p *point) Equal(q *point) int {
	var xy, yx, xx, yy fieldElement

	xy.Multiply(&p.X, &q.Y)
	yx.Multiply(&p.Y, &q.X)
	xx.Multiply(&p.X, &q.X)
	yy.Multiply(&p.Y, &q.Y)

	return xy.Equal(&yx) | xx.Equal(&yy)
}

// valid reports whether p satisfies the curve's extended-coordinate
// invariants: X*Y == Z*T, -X^2+Y^2 == Z^2+d*T^2, and Z != 0.
func (p *point) valid() bool {
	var xy, zt, xx, yy, zz, dtt, lhs, rhs fieldElement

	xy.Multiply(&p.X, &p.Y)
	zt.Multiply(&p.Z, &p.T)

	if xy.Equal(&zt) != 1 {
		return false
	}

	xx.Square(&p.X)
	yy.Square(&p.Y)
	zz.Square(&p.Z)
	dtt.Square(&p.T).Multiply(&dtt, &fieldD)

	lhs.Negate(&xx).Add(&lhs, &yy)
	rhs.Add(&zz, &dtt)

	if lhs.Equal(&rhs) != 1 {
		return false
	}

	return p.Z.IsZero() == 0
}

// Torque returns p translated by the curve's order-4 torsion generator: the
// result is Ristretto-equal to p but has different (X, Y, Z, T) coordinates.
// Exercised only by tests validating that Ristretto equality is torsion-blind.
func (p *point) Torque(a *point) *point {
	return p.Add(a, &torsion4)
}

// debugPScale scales every coordinate of a by w, treating w == 0 as w == 1.
// This matches the reference implementation's debugging affordance; it is
// never exposed on the public API, and nothing in the module calls it.
func (p *point) debugPScale(a *point, w *fieldElement) *point {
	factor := *w
	if factor.IsZero() == 1 {
		factor = feOne
	}

	p.X.Multiply(&a.X, &factor)
	p.Y.Multiply(&a.Y, &factor)
	p.Z.Multiply(&a.Z, &factor)
	p.T.Multiply(&a.T, &factor)

	return p
}
