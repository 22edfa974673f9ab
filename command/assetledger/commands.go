// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/dpjb/assetledger/asset"
	"github.com/dpjb/assetledger/canonical"
	"github.com/dpjb/assetledger/contract"
	"github.com/dpjb/assetledger/fault"
	"github.com/dpjb/assetledger/storage"
)

const usage = `commands:
  operations                  print the contract metadata
  invoke OPERATION [ARGS...]  run one operation; empty optional arguments are null
  fingerprint ID              SHA3-256 digest and CID of a stored asset
  export FILE                 write a CBOR snapshot of all records`

// command state
type command struct {
	log      *logger.L
	registry *asset.Registry
	contract *contract.Contract
	pool     storage.Handle
	out      io.Writer
	quiet    bool
}

// run one command
func (cmd *command) process(arguments []string) error {
	name := "help"
	if len(arguments) > 0 {
		name = arguments[0]
		arguments = arguments[1:]
	}

	switch name {
	case "operations", "ops":
		b, err := cmd.contract.Metadata()
		if nil != err {
			return err
		}
		fmt.Fprintf(cmd.out, "%s\n", b)

	case "invoke":
		if len(arguments) < 1 {
			return fault.InvalidArgumentCount
		}
		result, err := cmd.contract.Invoke(arguments[0], arguments[1:])
		if nil != err {
			return err
		}
		if len(result) > 0 {
			fmt.Fprintf(cmd.out, "%s\n", result)
		} else if !cmd.quiet {
			fmt.Fprintf(cmd.out, "%s: ok\n", arguments[0])
		}

	case "fingerprint", "fp":
		if 1 != len(arguments) {
			return fault.InvalidArgumentCount
		}
		b, err := cmd.fingerprint(arguments[0])
		if nil != err {
			return err
		}
		fmt.Fprintf(cmd.out, "%s\n", b)

	case "export":
		if 1 != len(arguments) {
			return fault.InvalidArgumentCount
		}
		n, err := exportSnapshot(cmd.log, arguments[0], cmd.pool)
		if nil != err {
			return err
		}
		if !cmd.quiet {
			fmt.Fprintf(cmd.out, "exported: %d records to: %s\n", n, arguments[0])
		}

	case "help", "h":
		fmt.Fprintf(cmd.out, "%s\n", usage)

	default:
		return fault.ForKey(name, fault.OperationNotFound)
	}

	return nil
}

// digest and content identifier of the stored bytes
func (cmd *command) fingerprint(id string) ([]byte, error) {
	s, err := cmd.registry.ReadAsset(id)
	if nil != err {
		return nil, err
	}
	data := []byte(s)

	c, err := canonical.CID(data)
	if nil != err {
		return nil, err
	}

	cmd.log.Debugf("fingerprint: %s", id)
	return canonical.Encode(canonical.Record{
		"id":       id,
		"sha3_256": canonical.NewDigest(data).String(),
		"cid":      c.String(),
	})
}

// run InitLedger if nothing is stored
func seedEmpty(registry *asset.Registry, pool storage.Handle) (bool, error) {
	iter, err := pool.Scan("", "")
	if nil != err {
		return false, err
	}
	empty := !iter.Next()
	iter.Release()
	if err := iter.Error(); nil != err {
		return false, err
	}
	if !empty {
		return false, nil
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return false, err
	}
	if err := registry.InitLedger(); nil != err {
		trx.Abort()
		return false, err
	}
	return true, trx.Commit()
}
