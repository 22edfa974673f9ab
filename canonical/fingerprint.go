// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package canonical

import (
	"encoding/hex"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"golang.org/x/crypto/sha3"
)

// DigestLength - number of bytes in a digest
const DigestLength = 32

// Digest - SHA3-256 of canonical record bytes
type Digest [DigestLength]byte

// NewDigest - fingerprint some canonical bytes
//
// the bytes are hashed as given, canonicalise first if they did not
// come from Encode
func NewDigest(data []byte) Digest {
	return Digest(sha3.Sum256(data))
}

// String - hex representation of a digest
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// MarshalText - digest as hex text for JSON
func (digest Digest) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(DigestLength))
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// CID - content identifier of canonical record bytes
//
// CIDv1 using the raw codec and a sha2-256 multihash
func CID(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if nil != err {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}
