// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dpjb/assetledger/asset"
	"github.com/dpjb/assetledger/canonical"
	"github.com/dpjb/assetledger/fault"
	"github.com/dpjb/assetledger/storage"
)

const expectedA1 = `{"Descricao":"desc","EmpresaResponsavel":null,"Estado":"Cadastro","ID":"A1","Link":"link","Nome":"Nome","OrganizacaoResponsavel":null,"Responsavel":1,"Tipo":"jornalista","docType":"asset"}`

func TestCreateAndRead(t *testing.T) {
	r := setupRegistry(t)
	defer teardownRegistry()

	err := r.CreateAsset(newAsset("A1"))
	assert.Nil(t, err, "create error")

	s, err := r.ReadAsset("A1")
	assert.Nil(t, err, "read error")
	assert.Equal(t, expectedA1, s, "wrong stored record")

	a, err := r.GetAsset("A1")
	assert.Nil(t, err, "get error")
	expected := newAsset("A1")
	expected.DocType = asset.DocType
	assert.Equal(t, &expected, a, "wrong decoded asset")
}

func TestCreateExisting(t *testing.T) {
	r := setupRegistry(t)
	defer teardownRegistry()

	err := r.CreateAsset(newAsset("A1"))
	assert.Nil(t, err, "create error")

	changed := newAsset("A1")
	changed.Name = "Outro"
	err = r.CreateAsset(changed)
	assert.True(t, fault.IsErrExists(err), "expected exists error, got: %v", err)
	assert.Equal(t, "A1: asset already exists", err.Error(), "wrong message")

	var keyErr *fault.KeyError
	assert.True(t, errors.As(err, &keyErr), "expected key error")
	assert.Equal(t, "A1", keyErr.Key, "wrong key")

	s, err := r.ReadAsset("A1")
	assert.Nil(t, err, "read error")
	assert.Equal(t, expectedA1, s, "existing record was changed")
}

func TestCreateInvalid(t *testing.T) {
	r := setupRegistry(t)
	defer teardownRegistry()

	long := strings.Repeat("x", asset.MaxNameLength+1)
	longDescription := strings.Repeat("ç", asset.MaxDescriptionLength+1)

	items := []struct {
		change   func(*asset.Asset)
		expected error
	}{
		{func(a *asset.Asset) { a.ID = "" }, fault.InvalidAssetID},
		{func(a *asset.Asset) { a.Kind = "pessoa" }, fault.InvalidAssetKind},
		{func(a *asset.Asset) { a.Name = "" }, fault.InvalidAssetName},
		{func(a *asset.Asset) { a.Name = long }, fault.InvalidNameLength},
		{func(a *asset.Asset) { a.Description = &longDescription }, fault.InvalidDescription},
	}

	for i, item := range items {
		a := newAsset("A1")
		item.change(&a)
		err := r.CreateAsset(a)
		assert.True(t, errors.Is(err, item.expected), "%d: expected: %v  actual: %v", i, item.expected, err)
		assert.True(t, fault.IsErrInvalid(err), "%d: expected invalid error", i)
	}

	all, err := r.GetAllAssets()
	assert.Nil(t, err, "get all error")
	assert.Equal(t, "[]", all, "invalid assets were stored")
}

func TestKindIgnoresCase(t *testing.T) {
	r := setupRegistry(t)
	defer teardownRegistry()

	a := newAsset("O1")
	a.Kind = "Obra"
	err := r.CreateAsset(a)
	assert.Nil(t, err, "create error")

	// stored as given
	got, err := r.GetAsset("O1")
	assert.Nil(t, err, "get error")
	assert.Equal(t, "Obra", got.Kind, "kind was changed")

	// the limits count characters not bytes
	a = newAsset("O2")
	a.Name = strings.Repeat("ã", asset.MaxNameLength)
	err = r.CreateAsset(a)
	assert.Nil(t, err, "create error")
}

func TestReadMissing(t *testing.T) {
	r := setupRegistry(t)
	defer teardownRegistry()

	_, err := r.ReadAsset("missing")
	assert.True(t, fault.IsErrNotFound(err), "expected not found, got: %v", err)
	assert.Equal(t, "missing: asset does not exist", err.Error(), "wrong message")

	_, err = r.GetAsset("missing")
	assert.True(t, fault.IsErrNotFound(err), "expected not found, got: %v", err)

	// empty stored value counts as absent
	err = storage.Pool.Assets.Put("empty", []byte{})
	assert.Nil(t, err, "put error")
	_, err = r.ReadAsset("empty")
	assert.True(t, fault.IsErrNotFound(err), "expected not found, got: %v", err)

	exists, err := r.AssetExists("empty")
	assert.Nil(t, err, "exists error")
	assert.False(t, exists, "empty value must not exist")
}

func TestUpdate(t *testing.T) {
	r := setupRegistry(t)
	defer teardownRegistry()

	err := r.UpdateAsset(newAsset("A1"))
	assert.True(t, fault.IsErrNotFound(err), "expected not found, got: %v", err)

	exists, err := r.AssetExists("A1")
	assert.Nil(t, err, "exists error")
	assert.False(t, exists, "update must not create")

	err = r.CreateAsset(newAsset("A1"))
	assert.Nil(t, err, "create error")

	updated := newAsset("A1")
	updated.Name = "Novo"
	updated.State = "Atualização"
	updated.Link = nil
	updated.ResponsibleCompany = text("E1")
	err = r.UpdateAsset(updated)
	assert.Nil(t, err, "update error")

	s, err := r.ReadAsset("A1")
	assert.Nil(t, err, "read error")
	assert.Equal(t, `{"Descricao":"desc","EmpresaResponsavel":"E1","Estado":"Atualização","ID":"A1","Link":null,"Nome":"Novo","OrganizacaoResponsavel":null,"Responsavel":1,"Tipo":"jornalista","docType":"asset"}`, s, "wrong updated record")

	invalid := newAsset("A1")
	invalid.Kind = ""
	err = r.UpdateAsset(invalid)
	assert.True(t, fault.IsErrInvalid(err), "expected invalid, got: %v", err)
}

func TestUpdateReplacesWholeRecord(t *testing.T) {
	r := setupRegistry(t)
	defer teardownRegistry()

	err := storage.Pool.Assets.Put("A1", []byte(`{"ID":"A1","extra":true,"Responsavel":1}`))
	assert.Nil(t, err, "put error")

	err = r.UpdateAsset(newAsset("A1"))
	assert.Nil(t, err, "update error")

	s, err := r.ReadAsset("A1")
	assert.Nil(t, err, "read error")
	assert.Equal(t, expectedA1, s, "update must not merge")
}

func TestDelete(t *testing.T) {
	r := setupRegistry(t)
	defer teardownRegistry()

	err := r.CreateAsset(newAsset("A1"))
	assert.Nil(t, err, "create error")

	before, err := r.GetAllAssets()
	assert.Nil(t, err, "get all error")

	err = r.DeleteAsset("missing")
	assert.True(t, fault.IsErrNotFound(err), "expected not found, got: %v", err)

	after, err := r.GetAllAssets()
	assert.Nil(t, err, "get all error")
	assert.Equal(t, before, after, "failed delete changed the store")

	err = r.DeleteAsset("A1")
	assert.Nil(t, err, "delete error")

	_, err = r.ReadAsset("A1")
	assert.True(t, fault.IsErrNotFound(err), "expected not found, got: %v", err)

	err = r.DeleteAsset("A1")
	assert.True(t, fault.IsErrNotFound(err), "second delete must fail, got: %v", err)
}

func TestExistenceFollowsLifecycle(t *testing.T) {
	r := setupRegistry(t)
	defer teardownRegistry()

	check := func(expected bool, when string) {
		exists, err := r.AssetExists("A1")
		assert.Nil(t, err, "%s: exists error", when)
		assert.Equal(t, expected, exists, "%s: wrong existence", when)
	}

	check(false, "initial")
	assert.Nil(t, r.CreateAsset(newAsset("A1")), "create error")
	check(true, "created")
	_, err := r.TransferAsset("A1", 5)
	assert.Nil(t, err, "transfer error")
	check(true, "transferred")
	assert.Nil(t, r.DeleteAsset("A1"), "delete error")
	check(false, "deleted")
	assert.Nil(t, r.CreateAsset(newAsset("A1")), "recreate error")
	check(true, "recreated")
}

func TestTransfer(t *testing.T) {
	r := setupRegistry(t)
	defer teardownRegistry()

	err := r.CreateAsset(newAsset("A1"))
	assert.Nil(t, err, "create error")

	previous, err := r.TransferAsset("A1", 2)
	assert.Nil(t, err, "transfer error")
	assert.Equal(t, int64(1), previous, "wrong previous responsible")

	a, err := r.GetAsset("A1")
	assert.Nil(t, err, "get error")
	assert.Equal(t, int64(2), a.Responsible, "responsible not changed")
	assert.Equal(t, "Nome", a.Name, "other fields changed")

	previous, err = r.TransferAsset("A1", 3)
	assert.Nil(t, err, "transfer error")
	assert.Equal(t, int64(2), previous, "wrong previous responsible")

	_, err = r.TransferAsset("missing", 2)
	assert.True(t, fault.IsErrNotFound(err), "expected not found, got: %v", err)
}

func TestTransferKeepsUnknownFields(t *testing.T) {
	r := setupRegistry(t)
	defer teardownRegistry()

	err := storage.Pool.Assets.Put("X1", []byte(`{"ID":"X1","Responsavel":7,"extra":{"b":[1,2],"a":"x"}}`))
	assert.Nil(t, err, "put error")

	previous, err := r.TransferAsset("X1", 8)
	assert.Nil(t, err, "transfer error")
	assert.Equal(t, int64(7), previous, "wrong previous responsible")

	s, err := r.ReadAsset("X1")
	assert.Nil(t, err, "read error")
	assert.Equal(t, `{"ID":"X1","Responsavel":8,"docType":"asset","extra":{"a":"x","b":[1,2]}}`, s, "wrong transferred record")
}

func TestTransferBadRecord(t *testing.T) {
	r := setupRegistry(t)
	defer teardownRegistry()

	items := map[string]string{
		"B1": `not json`,
		"B2": `{"ID":"B2","Responsavel":"1"}`,
		"B3": `{"ID":"B3"}`,
		"B4": `{"ID":"B4","Responsavel":1.5}`,
		"B5": `[1,2]`,
	}

	for key, value := range items {
		err := storage.Pool.Assets.Put(key, []byte(value))
		assert.Nil(t, err, "%s: put error", key)

		_, err = r.TransferAsset(key, 2)
		assert.True(t, fault.IsErrRecord(err), "%s: expected record error, got: %v", key, err)

		s, err := r.ReadAsset(key)
		assert.Nil(t, err, "%s: read error", key)
		assert.Equal(t, value, s, "%s: failed transfer changed the record", key)
	}
}

func TestGetAllAssets(t *testing.T) {
	r := setupRegistry(t)
	defer teardownRegistry()

	all, err := r.GetAllAssets()
	assert.Nil(t, err, "get all error")
	assert.Equal(t, "[]", all, "empty store must give empty array")

	err = r.InitLedger()
	assert.Nil(t, err, "init error")

	err = r.CreateAsset(newAsset("A1"))
	assert.Nil(t, err, "create error")

	all, err = r.GetAllAssets()
	assert.Nil(t, err, "get all error")

	decoded, err := canonical.Decode([]byte(all))
	assert.Nil(t, err, "decode error")
	list, ok := decoded.([]interface{})
	assert.True(t, ok, "expected an array")
	assert.Equal(t, 6, len(list), "wrong count")

	previous := ""
	for i, item := range list {
		record, ok := item.(canonical.Record)
		if !assert.True(t, ok, "%d: expected a record", i) {
			continue
		}
		id := record["ID"].(string)
		assert.True(t, previous < id, "%d: not in key order", i)
		previous = id

		stored, err := r.ReadAsset(id)
		assert.Nil(t, err, "%d: read error", i)

		b, err := canonical.Encode(record)
		assert.Nil(t, err, "%d: encode error", i)
		assert.Equal(t, stored, string(b), "%d: differs from stored record", i)
	}
}

func TestGetAllAssetsKeepsUndecodable(t *testing.T) {
	r := setupRegistry(t)
	defer teardownRegistry()

	err := r.CreateAsset(newAsset("A1"))
	assert.Nil(t, err, "create error")
	err = storage.Pool.Assets.Put("A2", []byte(`{broken`))
	assert.Nil(t, err, "put error")

	all, err := r.GetAllAssets()
	assert.Nil(t, err, "get all error")
	assert.Equal(t, `[`+expectedA1+`,"{broken"]`, all, "wrong result")
}

func TestGetAllAssetsKeepsOutOfRangeNumbers(t *testing.T) {
	r := setupRegistry(t)
	defer teardownRegistry()

	err := r.CreateAsset(newAsset("A1"))
	assert.Nil(t, err, "create error")
	err = storage.Pool.Assets.Put("B2", []byte(`{"x":1e400}`))
	assert.Nil(t, err, "put error")

	all, err := r.GetAllAssets()
	assert.Nil(t, err, "get all error")
	assert.Equal(t, `[`+expectedA1+`,"{\"x\":1e400}"]`, all, "wrong result")
}

func TestInitLedger(t *testing.T) {
	r := setupRegistry(t)
	defer teardownRegistry()

	err := r.InitLedger()
	assert.Nil(t, err, "init error")

	ids := []string{
		"Funcionario_000001_Inicial",
		"Organizacao_000001_Cadastrada_por_LuizaNGomes",
		"Empresa_000001_Cadastrada_por_LuizaNGomes",
		"Jornalista_000001_Nome_HelderMaldonado_Currículo_<link>_Cadastrado_por_LuizaNGomes",
		"Jornalista_000001_Obra_00000001_Conteudo_<https://youtu.be/iRxwt8n9avo>_Instituicao_000001",
	}
	for _, id := range ids {
		a, err := r.GetAsset(id)
		if !assert.Nil(t, err, "%s: get error", id) {
			continue
		}
		assert.Equal(t, asset.DocType, a.DocType, "%s: wrong docType", id)
		assert.Equal(t, int64(1), a.Responsible, "%s: wrong responsible", id)
		assert.Nil(t, a.Validate(), "%s: seed asset is not valid", id)
	}

	s, err := r.ReadAsset("Funcionario_000001_Inicial")
	assert.Nil(t, err, "read error")
	assert.Equal(t, `{"Descricao":"Primeira pessoa logada no DPJB","EmpresaResponsavel":null,"Estado":"DF","ID":"Funcionario_000001_Inicial","Link":"link","Nome":"Luiza N Gomes","OrganizacaoResponsavel":null,"Responsavel":1,"Tipo":"funcionário","docType":"asset"}`, s, "wrong seed record")

	// seeding again overwrites with identical data
	before, _ := r.GetAllAssets()
	err = r.InitLedger()
	assert.Nil(t, err, "second init error")
	after, _ := r.GetAllAssets()
	assert.Equal(t, before, after, "seed is not deterministic")
}
