// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/dpjb/assetledger/canonical"
)

// transaction tags
const (
	submitTag   = "submit"
	evaluateTag = "evaluate"
)

// Tag - submit or evaluate
func (op *Operation) Tag() string {
	if op.Submit {
		return submitTag
	}
	return evaluateTag
}

// Record - description of an operation
func (op *Operation) Record() canonical.Record {
	parameters := make([]interface{}, len(op.Parameters))
	for i, p := range op.Parameters {
		parameters[i] = canonical.Record{
			"name":     p.Name,
			"type":     p.Type.String(),
			"nullable": OptionalString == p.Type,
		}
	}

	var returns interface{}
	if None != op.Returns {
		returns = canonical.Record{
			"type": op.Returns.String(),
		}
	}

	return canonical.Record{
		"name":        op.Name,
		"description": op.Description,
		"tag":         []string{op.Tag()},
		"parameters":  parameters,
		"returns":     returns,
	}
}

// Metadata - canonical JSON description of the contract
func (c *Contract) Metadata() ([]byte, error) {
	transactions := make([]interface{}, len(c.operations))
	for i, op := range c.operations {
		transactions[i] = op
	}

	return canonical.Encode(canonical.Record{
		"info": canonical.Record{
			"title":       Title,
			"description": Description,
		},
		"transactions": transactions,
	})
}
