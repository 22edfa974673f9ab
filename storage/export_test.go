// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
)

// NewAccess - data access with a caller supplied cache
func NewAccess(db *leveldb.DB, cache Cache) Access {
	return newDA(db, new(leveldb.Batch), cache)
}

// NewCache - the transaction cache
func NewCache() Cache {
	return newCache()
}

// DBOp - cache operation codes
const (
	DBPut    = dbPut
	DBDelete = dbDelete
)
