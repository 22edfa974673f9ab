// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/dpjb/assetledger/fault"
)

//go:generate mockgen -source=handle.go -destination=mocks/handle.go -package=mocks

// Handle - the world state key->value contract
type Handle interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Scan(startKey string, endKey string) (Iterator, error)
}

// PoolHandle - a prefix partition of the database
type PoolHandle struct {
	prefix byte
	limit  []byte
	access Access
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key string) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Get - read a value for a given key
//
// nil is returned if the key does not exist
func (p *PoolHandle) Get(key string) ([]byte, error) {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == p.access {
		return nil, fault.DatabaseIsNotSet
	}
	if "" == key {
		return nil, nil
	}
	return p.access.Get(p.prefixKey(key))
}

// Put - store a key/value bytes pair to the database
func (p *PoolHandle) Put(key string, value []byte) error {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == p.access {
		return fault.DatabaseIsNotSet
	}
	if "" == key {
		return fault.EmptyKey
	}
	return p.access.Put(p.prefixKey(key), value)
}

// Delete - remove a key from the database
func (p *PoolHandle) Delete(key string) error {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == p.access {
		return fault.DatabaseIsNotSet
	}
	if "" == key {
		return fault.EmptyKey
	}
	return p.access.Delete(p.prefixKey(key))
}

// Scan - iterate the committed keys in [startKey, endKey)
//
// an empty bound is the corresponding end of the pool
func (p *PoolHandle) Scan(startKey string, endKey string) (Iterator, error) {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == p.access {
		return nil, fault.DatabaseIsNotSet
	}

	searchRange := ldb_util.Range{
		Start: p.prefixKey(startKey), // Start of key range, included in the range
		Limit: p.limit,               // Limit of key range, excluded from the range
	}
	if "" != endKey {
		searchRange.Limit = p.prefixKey(endKey)
	}

	return &poolIterator{
		iter: p.access.Iterator(&searchRange),
	}, nil
}
