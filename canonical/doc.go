// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package canonical - deterministic record encoding
//
// every replica must store and hash exactly the same bytes for the
// same logical record, so all state writes go through Encode:
//
//   1. object keys are sorted in code point order at every depth,
//      including objects inside arrays
//   2. no insignificant whitespace
//   3. numbers in shortest round-trip form, integers without a
//      fraction, exponent only below 1e-6 or from 1e21 up, -0 is 0,
//      NaN and infinities are rejected
//   4. strings escaped only where JSON requires it, no HTML escaping,
//      invalid UTF-8 replaced by U+FFFD
//
// the output is stable: Encode(Decode(Encode(r))) == Encode(r)
//
// Digest and CID fingerprint canonical bytes, MarshalBinary gives
// the same values as Core Deterministic CBOR for snapshots
package canonical
