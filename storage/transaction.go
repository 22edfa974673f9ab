// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - the single write transaction over all pools
type Transaction interface {
	Begin() error
	Commit() error
	Abort()
	InUse() bool
}
