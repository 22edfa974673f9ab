// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/dpjb/assetledger/asset"
	"github.com/dpjb/assetledger/counter"
	"github.com/dpjb/assetledger/fault"
	"github.com/dpjb/assetledger/ratelimit"
	"github.com/dpjb/assetledger/storage"
)

// contract information
const (
	Title       = "AssetTransfer"
	Description = "Smart contract for trading assets"
)

// Registry - the asset operations behind the contract
type Registry interface {
	InitLedger() error
	CreateAsset(asset.Asset) error
	ReadAsset(string) (string, error)
	UpdateAsset(asset.Asset) error
	DeleteAsset(string) error
	AssetExists(string) (bool, error)
	TransferAsset(string, int64) (int64, error)
	GetAllAssets() (string, error)
}

// TransactionFunc - start the store write transaction
type TransactionFunc func() (storage.Transaction, error)

// handler of the parsed arguments of an operation
type handler func(args []interface{}) (interface{}, error)

// Operation - a registered operation
type Operation struct {
	Name        string
	Description string
	Submit      bool
	Parameters  []Parameter
	Returns     Type
	handler     handler
	calls       counter.Counter
	failures    counter.Counter
}

// Calls - number of invocations that reached the handler
func (op *Operation) Calls() uint64 {
	return op.calls.Uint64()
}

// Failures - number of invocations whose handler or commit failed
func (op *Operation) Failures() uint64 {
	return op.failures.Uint64()
}

// Contract - the dispatch table
type Contract struct {
	log        *logger.L
	registry   Registry
	trx        TransactionFunc
	limiter    *rate.Limiter
	operations []*Operation
	byName     map[string]*Operation
}

// New - build the dispatch table
func New(log *logger.L, registry Registry, trx TransactionFunc) *Contract {
	c := &Contract{
		log:      log,
		registry: registry,
		trx:      trx,
		limiter:  ratelimit.New(0, 0),
		byName:   make(map[string]*Operation),
	}
	c.register()
	return c
}

// SetRateLimit - pace invocations, zero for unlimited
func (c *Contract) SetRateLimit(perSecond float64, burst int) {
	c.limiter = ratelimit.New(perSecond, burst)
}

// add an operation to the table
func (c *Contract) add(op *Operation) {
	if _, ok := c.byName[op.Name]; ok {
		logger.Panicf("contract: duplicate operation: %s", op.Name)
	}
	c.operations = append(c.operations, op)
	c.byName[op.Name] = op
}

// Operations - the table in registration order
func (c *Contract) Operations() []*Operation {
	ops := make([]*Operation, len(c.operations))
	copy(ops, c.operations)
	return ops
}

// Lookup - find an operation by name
func (c *Contract) Lookup(name string) (*Operation, error) {
	op, ok := c.byName[name]
	if !ok {
		return nil, fault.ForKey(name, fault.OperationNotFound)
	}
	return op, nil
}

// Invoke - run an operation with text arguments
//
// a submit operation is run inside a transaction that is committed
// if the operation succeeds and aborted if it fails
func (c *Contract) Invoke(name string, args []string) ([]byte, error) {
	op, err := c.Lookup(name)
	if nil != err {
		return nil, err
	}

	if len(args) != len(op.Parameters) {
		c.log.Warnf("%s: expected %d arguments, got: %d", name, len(op.Parameters), len(args))
		return nil, fault.ForKey(name, fault.InvalidArgumentCount)
	}

	values := make([]interface{}, len(args))
	for i, p := range op.Parameters {
		v, err := p.parse(args[i])
		if nil != err {
			c.log.Warnf("%s: argument: %s  value: %q  error: %s", name, p.Name, args[i], err)
			return nil, fault.ForKey(p.Name, err)
		}
		values[i] = v
	}

	if err := ratelimit.Limit(c.limiter); nil != err {
		return nil, fault.ForKey(name, err)
	}

	c.log.Infof("invoke: %s  submit: %t", name, op.Submit)

	if !op.Submit {
		op.calls.Increment()
		result, err := op.handler(values)
		if nil != err {
			op.failures.Increment()
			c.log.Debugf("%s: error: %s", name, err)
			return nil, err
		}
		return render(op.Returns, result), nil
	}

	trx, err := c.trx()
	if nil != err {
		return nil, fault.ForKey(name, err)
	}

	op.calls.Increment()
	result, err := op.handler(values)
	if nil != err {
		trx.Abort()
		op.failures.Increment()
		c.log.Infof("%s: aborted: %s", name, err)
		return nil, err
	}

	err = trx.Commit()
	if nil != err {
		op.failures.Increment()
		c.log.Errorf("%s: commit error: %s", name, err)
		return nil, fault.ForKey(name, err)
	}
	return render(op.Returns, result), nil
}
