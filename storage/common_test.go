// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/dpjb/assetledger/fixtures"
	"github.com/dpjb/assetledger/storage"
)

// configure for testing
func setup(t *testing.T) {
	fixtures.SetupTestLogger()
	err := storage.Initialise(storage.MemoryDatabase, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown() {
	storage.Finalise()
	fixtures.TeardownTestLogger()
}

// a string data item
type stringElement struct {
	key   string
	value string
}

// data for various test routines
// in ascending key order
var poolData = []stringElement{
	{"A1", "first"},
	{"A2", "second"},
	{"A3", "third"},
	{"B1", "fourth"},
	{"ação", "fifth"},
}

func fill(t *testing.T, h storage.Handle) {
	// reverse to show ordering does not depend on insertion
	for i := len(poolData) - 1; i >= 0; i -= 1 {
		e := poolData[i]
		if err := h.Put(e.key, []byte(e.value)); nil != err {
			t.Fatalf("put: %q error: %s", e.key, err)
		}
	}
}

func collect(t *testing.T, iter storage.Iterator) []stringElement {
	defer iter.Release()

	result := []stringElement{}
	for iter.Next() {
		result = append(result, stringElement{iter.Key(), string(iter.Value())})
	}
	if err := iter.Error(); nil != err {
		t.Fatalf("iterator error: %s", err)
	}
	return result
}
