// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dpjb/assetledger/counter"
)

func TestCounter(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.IsZero(), "counter is not zero at start")

	for i := uint64(1); i <= 5; i += 1 {
		assert.Equal(t, i, c.Increment(), "wrong incremented value")
	}
	assert.Equal(t, uint64(5), c.Uint64(), "wrong value")
	assert.False(t, c.IsZero(), "counter must not be zero")

	assert.Equal(t, uint64(5), c.Reset(), "wrong previous value")
	assert.True(t, c.IsZero(), "counter must be zero after reset")
}

func TestCounterConcurrent(t *testing.T) {
	var c counter.Counter
	var wg sync.WaitGroup

	const workers = 8
	const count = 1000

	for i := 0; i < workers; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < count; j += 1 {
				c.Increment()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(workers*count), c.Uint64(), "lost increments")
}
