// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/dpjb/assetledger/asset"
)

// parameters shared by create and update
var assetParameters = []Parameter{
	{Name: "tipo", Type: String},
	{Name: "id", Type: String},
	{Name: "nome", Type: String},
	{Name: "responsavel", Type: Integer},
	{Name: "estado", Type: String},
	{Name: "link", Type: OptionalString},
	{Name: "descricao", Type: OptionalString},
	{Name: "organizacaoResponsavel", Type: OptionalString},
	{Name: "empresaResponsavel", Type: OptionalString},
}

var idParameter = []Parameter{
	{Name: "id", Type: String},
}

// build an asset from values parsed with assetParameters
func assetFromArgs(args []interface{}) asset.Asset {
	return asset.Asset{
		Kind:                    args[0].(string),
		ID:                      args[1].(string),
		Name:                    args[2].(string),
		Responsible:             args[3].(int64),
		State:                   args[4].(string),
		Link:                    args[5].(*string),
		Description:             args[6].(*string),
		ResponsibleOrganisation: args[7].(*string),
		ResponsibleCompany:      args[8].(*string),
	}
}

func (c *Contract) register() {
	r := c.registry

	c.add(&Operation{
		Name:        "InitLedger",
		Description: "write the initial assets",
		Submit:      true,
		Returns:     None,
		handler: func(args []interface{}) (interface{}, error) {
			return nil, r.InitLedger()
		},
	})

	c.add(&Operation{
		Name:        "CreateAsset",
		Description: "issue a new asset",
		Submit:      true,
		Parameters:  assetParameters,
		Returns:     None,
		handler: func(args []interface{}) (interface{}, error) {
			return nil, r.CreateAsset(assetFromArgs(args))
		},
	})

	c.add(&Operation{
		Name:        "ReadAsset",
		Description: "return the stored asset",
		Submit:      false,
		Parameters:  idParameter,
		Returns:     String,
		handler: func(args []interface{}) (interface{}, error) {
			return r.ReadAsset(args[0].(string))
		},
	})

	c.add(&Operation{
		Name:        "UpdateAsset",
		Description: "replace an existing asset",
		Submit:      true,
		Parameters:  assetParameters,
		Returns:     None,
		handler: func(args []interface{}) (interface{}, error) {
			return nil, r.UpdateAsset(assetFromArgs(args))
		},
	})

	c.add(&Operation{
		Name:        "DeleteAsset",
		Description: "delete an existing asset",
		Submit:      true,
		Parameters:  idParameter,
		Returns:     None,
		handler: func(args []interface{}) (interface{}, error) {
			return nil, r.DeleteAsset(args[0].(string))
		},
	})

	c.add(&Operation{
		Name:        "AssetExists",
		Description: "true if the asset exists",
		Submit:      false,
		Parameters:  idParameter,
		Returns:     Boolean,
		handler: func(args []interface{}) (interface{}, error) {
			return r.AssetExists(args[0].(string))
		},
	})

	c.add(&Operation{
		Name:        "TransferAsset",
		Description: "set a new responsible and return the previous one",
		Submit:      true,
		Parameters: []Parameter{
			{Name: "id", Type: String},
			{Name: "newResponsavel", Type: Integer},
		},
		Returns: Integer,
		handler: func(args []interface{}) (interface{}, error) {
			return r.TransferAsset(args[0].(string), args[1].(int64))
		},
	})

	c.add(&Operation{
		Name:        "GetAllAssets",
		Description: "return all assets in key order",
		Submit:      false,
		Returns:     String,
		handler: func(args []interface{}) (interface{}, error) {
			return r.GetAllAssets()
		},
	})
}
