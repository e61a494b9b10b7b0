// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

/*
Package crypto provides an easy-to-use interface to prime-order group operations.

Available types are:

- Group: implementing hashing of arbitrary strings into prime-order groups using the hash-to-curve specification.

- Element and Scalar: the group elements and scalars of a Group.

Ristretto255Sha512 is the only group available.

*/
package crypto
