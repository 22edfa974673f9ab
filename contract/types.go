// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"strconv"

	"github.com/dpjb/assetledger/fault"
)

// Type - the type of a parameter or a result
type Type int

// possible types
const (
	None Type = iota
	String
	Integer
	Boolean
	OptionalString
)

// String - name of the type
func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case String:
		return "string"
	case Integer:
		return "integer"
	case Boolean:
		return "boolean"
	case OptionalString:
		return "string"
	default:
		return "*unknown*"
	}
}

// Parameter - a named operation argument
type Parameter struct {
	Name string
	Type Type
}

// convert a text argument to its typed value
//
// an empty optional string is null
func (p Parameter) parse(arg string) (interface{}, error) {
	switch p.Type {
	case String:
		return arg, nil

	case OptionalString:
		if "" == arg {
			return (*string)(nil), nil
		}
		return &arg, nil

	case Integer:
		n, err := strconv.ParseInt(arg, 10, 64)
		if nil != err {
			return nil, fault.InvalidInteger
		}
		return n, nil

	case Boolean:
		b, err := strconv.ParseBool(arg)
		if nil != err {
			return nil, fault.InvalidBoolean
		}
		return b, nil

	default:
		return nil, fault.UnsupportedValue
	}
}

// render a typed result as text
func render(t Type, value interface{}) []byte {
	switch t {
	case String:
		return []byte(value.(string))
	case Integer:
		return []byte(strconv.FormatInt(value.(int64), 10))
	case Boolean:
		return []byte(strconv.FormatBool(value.(bool)))
	default:
		return []byte{}
	}
}
