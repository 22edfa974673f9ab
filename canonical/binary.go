// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package canonical

import (
	"encoding/json"
	"io"
	"reflect"
	"strconv"

	"github.com/fxamacker/cbor/v2"

	"github.com/dpjb/assetledger/fault"
)

// CBOR modes: Core Deterministic Encoding (RFC 8949 §4.2) for output
// and string keyed maps for generic input
var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if nil != err {
		panic("canonical: CBOR encoder initialisation failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]interface{}(nil)),
	}.DecMode()
	if nil != err {
		panic("canonical: CBOR decoder initialisation failed: " + err.Error())
	}
}

// MarshalBinary - deterministic CBOR for the same values Encode accepts
//
// numbers that are integral and fit in 64 bits become CBOR integers,
// all others become floats
func MarshalBinary(v interface{}) ([]byte, error) {
	b, err := binaryValue(v)
	if nil != err {
		return nil, err
	}
	return encMode.Marshal(b)
}

// UnmarshalBinary - decode CBOR produced by MarshalBinary
func UnmarshalBinary(data []byte) (interface{}, error) {
	var v interface{}
	if err := decMode.Unmarshal(data, &v); nil != err {
		return nil, fault.RecordError("binary record decode failed: " + err.Error())
	}
	return normalise(v), nil
}

// BinaryEncoder - writes deterministic CBOR items to a stream
type BinaryEncoder struct {
	enc *cbor.Encoder
}

// NewBinaryEncoder - create an encoder on a writer
func NewBinaryEncoder(w io.Writer) *BinaryEncoder {
	return &BinaryEncoder{
		enc: encMode.NewEncoder(w),
	}
}

// Encode - write one item in the same form as MarshalBinary
func (e *BinaryEncoder) Encode(v interface{}) error {
	b, err := binaryValue(v)
	if nil != err {
		return err
	}
	return e.enc.Encode(b)
}

// convert to values the CBOR encoder renders deterministically
func binaryValue(v interface{}) (interface{}, error) {
	switch tv := v.(type) {
	case Recorder:
		if isNilRecorder(tv) {
			return nil, nil
		}
		return binaryValue(tv.Record())
	case Record:
		return binaryValue(map[string]interface{}(tv))
	case map[string]interface{}:
		m := make(map[string]interface{}, len(tv))
		for k, e := range tv {
			b, err := binaryValue(e)
			if nil != err {
				return nil, err
			}
			m[k] = b
		}
		return m, nil
	case []interface{}:
		a := make([]interface{}, len(tv))
		for i, e := range tv {
			b, err := binaryValue(e)
			if nil != err {
				return nil, err
			}
			a[i] = b
		}
		return a, nil
	case []Record:
		a := make([]interface{}, len(tv))
		for i, e := range tv {
			b, err := binaryValue(e)
			if nil != err {
				return nil, err
			}
			a[i] = b
		}
		return a, nil
	case *string:
		if nil == tv {
			return nil, nil
		}
		return *tv, nil
	case json.Number:
		// reuse the text rules so both renditions agree on the value
		s, err := formatNumber(string(tv))
		if nil != err {
			return nil, err
		}
		if i, err := strconv.ParseInt(s, 10, 64); nil == err {
			return i, nil
		}
		if u, err := strconv.ParseUint(s, 10, 64); nil == err {
			return u, nil
		}
		return strconv.ParseFloat(s, 64)
	case float64, float32:
		// must be representable in the text form too
		if _, err := Encode(tv); nil != err {
			return nil, err
		}
		return tv, nil
	case nil, string, bool, []string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return tv, nil
	default:
		return nil, fault.UnsupportedValue
	}
}
