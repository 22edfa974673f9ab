// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/dpjb/assetledger/canonical"
	"github.com/dpjb/assetledger/storage"
)

// snapshot entry fields
const (
	keyField    = "key"
	recordField = "record"
)

// write every record in key order as one CBOR array of {key, record}
//
// values that cannot be decoded are kept as text
func exportSnapshot(log *logger.L, fileName string, pool storage.Handle) (int, error) {
	iter, err := pool.Scan("", "")
	if nil != err {
		return 0, err
	}
	defer iter.Release()

	entries := []interface{}{}
	for iter.Next() {
		value := iter.Value()
		record, err := canonical.Decode(value)
		if nil != err {
			log.Warnf("export: key: %s  decode error: %s", iter.Key(), err)
			record = string(value)
		}
		entries = append(entries, canonical.Record{
			keyField:    iter.Key(),
			recordField: record,
		})
	}
	if err := iter.Error(); nil != err {
		return 0, err
	}

	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if nil != err {
		return 0, err
	}

	err = canonical.NewBinaryEncoder(f).Encode(entries)
	if nil != err {
		f.Close()
		os.Remove(fileName)
		return 0, err
	}
	if err := f.Close(); nil != err {
		return 0, err
	}

	log.Infof("export: %d records to: %q", len(entries), fileName)
	return len(entries), nil
}
