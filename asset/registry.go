// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/bitmark-inc/logger"

	"github.com/dpjb/assetledger/canonical"
	"github.com/dpjb/assetledger/fault"
	"github.com/dpjb/assetledger/storage"
)

// Registry - asset operations over a world state handle
type Registry struct {
	log  *logger.L
	pool storage.Handle
}

// New - create a registry on a storage handle
func New(log *logger.L, pool storage.Handle) *Registry {
	return &Registry{
		log:  log,
		pool: pool,
	}
}

// InitLedger - write the initial set of assets
func (r *Registry) InitLedger() error {
	for _, a := range seedAssets() {
		err := r.put(a)
		if nil != err {
			return err
		}
		r.log.Infof("asset: %s initialised", a.ID)
	}
	return nil
}

// CreateAsset - issue a new asset
func (r *Registry) CreateAsset(a Asset) error {
	if err := a.Validate(); nil != err {
		return fault.ForKey(a.ID, err)
	}

	exists, err := r.AssetExists(a.ID)
	if nil != err {
		return err
	}
	if exists {
		return fault.ForKey(a.ID, fault.AssetAlreadyExists)
	}

	err = r.put(&a)
	if nil != err {
		return err
	}
	r.log.Infof("create: %s  kind: %q  responsible: %d", a.ID, a.Kind, a.Responsible)
	return nil
}

// ReadAsset - the stored canonical JSON of an asset
func (r *Registry) ReadAsset(id string) (string, error) {
	data, err := r.get(id)
	if nil != err {
		return "", err
	}
	r.log.Debugf("read: %s", id)
	return string(data), nil
}

// GetAsset - read and decode an asset
func (r *Registry) GetAsset(id string) (*Asset, error) {
	data, err := r.get(id)
	if nil != err {
		return nil, err
	}

	record, err := canonical.DecodeRecord(data)
	if nil != err {
		return nil, fault.ForKey(id, err)
	}

	a, err := FromRecord(record)
	if nil != err {
		return nil, fault.ForKey(id, err)
	}
	r.log.Debugf("get: %s", id)
	return a, nil
}

// UpdateAsset - replace an existing asset
func (r *Registry) UpdateAsset(a Asset) error {
	if err := a.Validate(); nil != err {
		return fault.ForKey(a.ID, err)
	}

	exists, err := r.AssetExists(a.ID)
	if nil != err {
		return err
	}
	if !exists {
		return fault.ForKey(a.ID, fault.AssetNotFound)
	}

	err = r.put(&a)
	if nil != err {
		return err
	}
	r.log.Infof("update: %s", a.ID)
	return nil
}

// DeleteAsset - remove an existing asset
func (r *Registry) DeleteAsset(id string) error {
	exists, err := r.AssetExists(id)
	if nil != err {
		return err
	}
	if !exists {
		return fault.ForKey(id, fault.AssetNotFound)
	}

	err = r.pool.Delete(id)
	if nil != err {
		return fault.ForKey(id, err)
	}
	r.log.Infof("delete: %s", id)
	return nil
}

// AssetExists - true if non-empty data is stored for the id
func (r *Registry) AssetExists(id string) (bool, error) {
	data, err := r.pool.Get(id)
	if nil != err {
		return false, fault.ForKey(id, err)
	}
	return len(data) > 0, nil
}

// TransferAsset - set a new responsible and return the previous one
//
// the stored record is changed as a generic record so any fields that
// are not asset fields are kept
func (r *Registry) TransferAsset(id string, newResponsible int64) (int64, error) {
	data, err := r.get(id)
	if nil != err {
		return 0, err
	}

	record, err := canonical.DecodeRecord(data)
	if nil != err {
		return 0, fault.ForKey(id, err)
	}

	previous, err := integer(record[responsibleField])
	if nil != err {
		return 0, fault.ForKey(id, err)
	}

	record[responsibleField] = newResponsible
	record[docTypeField] = DocType

	buffer, err := canonical.Encode(record)
	if nil != err {
		return 0, fault.ForKey(id, err)
	}
	err = r.pool.Put(id, buffer)
	if nil != err {
		return 0, fault.ForKey(id, err)
	}

	r.log.Infof("transfer: %s  responsible: %d -> %d", id, previous, newResponsible)
	return previous, nil
}

// GetAllAssets - canonical JSON array of every stored record in key order
//
// a value that cannot be decoded is included as a string
func (r *Registry) GetAllAssets() (string, error) {
	iter, err := r.pool.Scan("", "")
	if nil != err {
		return "", err
	}
	defer iter.Release()

	results := []interface{}{}
	for iter.Next() {
		value := iter.Value()
		record, err := canonical.Decode(value)
		if nil != err {
			r.log.Warnf("key: %s  decode error: %s", iter.Key(), err)
			record = string(value)
		}
		results = append(results, record)
	}
	if err := iter.Error(); nil != err {
		return "", err
	}

	buffer, err := canonical.Encode(results)
	if nil != err {
		return "", err
	}
	r.log.Debugf("get all: %d records", len(results))
	return string(buffer), nil
}

// read non-empty data for a key
func (r *Registry) get(id string) ([]byte, error) {
	data, err := r.pool.Get(id)
	if nil != err {
		return nil, fault.ForKey(id, err)
	}
	if 0 == len(data) {
		return nil, fault.ForKey(id, fault.AssetNotFound)
	}
	return data, nil
}

// stamp, encode and store a complete asset
func (r *Registry) put(a *Asset) error {
	a.DocType = DocType

	buffer, err := canonical.Encode(a)
	if nil != err {
		return fault.ForKey(a.ID, err)
	}
	return fault.ForKey(a.ID, r.pool.Put(a.ID, buffer))
}
