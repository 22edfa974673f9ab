// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset_test

import (
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/dpjb/assetledger/asset"
	"github.com/dpjb/assetledger/fixtures"
	"github.com/dpjb/assetledger/storage"
)

func setupRegistry(t *testing.T) *asset.Registry {
	fixtures.SetupTestLogger()
	err := storage.Initialise(storage.MemoryDatabase, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	return asset.New(logger.New("asset"), storage.Pool.Assets)
}

func teardownRegistry() {
	storage.Finalise()
	fixtures.TeardownTestLogger()
}

func text(s string) *string {
	return &s
}

func newAsset(id string) asset.Asset {
	return asset.Asset{
		Kind:        "jornalista",
		ID:          id,
		Name:        "Nome",
		Responsible: 1,
		State:       "Cadastro",
		Link:        text("link"),
		Description: text("desc"),
	}
}
