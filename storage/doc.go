// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - the world state key->value store
//
// This maintains a LevelDB database split into a series of pools.
// Each pool is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available pools.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ++           = concatenation of byte data
// 3. key          = UTF-8 bytes of the record key
// 4. *others*     = byte values of various length
//
// Version:
//
//   0x00 ++ "VERSION"          - database version
//                                data: big endian uint32
//
// Assets:
//
//   A ++ key                   - asset records
//                                data: canonical JSON of the record
//
// Transactions:
//
// While a transaction from NewDBTransaction is active all puts and
// deletes on every pool are buffered in a single leveldb.Batch and
// mirrored into a cache so that Get sees the pending value.  Commit
// writes the batch atomically, Abort discards it.  Scan only ever
// sees committed data.
package storage
