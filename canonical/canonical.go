// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package canonical

import (
	"encoding/json"
	"reflect"
	"sort"
	"strings"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"

	"github.com/dpjb/assetledger/fault"
)

// Record - a set of named fields
//
// values are: string, number, bool, nil, Record (or
// map[string]interface{}) and []interface{}
type Record map[string]interface{}

// Recorder - anything that can present itself as a Record
type Recorder interface {
	Record() Record
}

// the JSON configuration used for both directions
//
// UseNumber keeps the decimal text of numbers so that re-encoding
// does not pass through a lossy float conversion first
var api = jsoniter.Config{
	EscapeHTML:  false,
	SortMapKeys: true,
	UseNumber:   true,
}.Froze()

// initial stream buffer size
const bufferSize = 512

// Encode - produce the canonical bytes for a value
func Encode(v interface{}) ([]byte, error) {
	stream := jsoniter.NewStream(api, nil, bufferSize)
	if err := write(stream, v); nil != err {
		return nil, err
	}
	if nil != stream.Error {
		return nil, stream.Error
	}
	return stream.Buffer(), nil
}

// Decode - parse JSON text into generic values
//
// objects decode as Record, arrays as []interface{} and numbers as
// json.Number
func Decode(data []byte) (interface{}, error) {

	// the streaming parser stops quietly at end of input, so
	// truncated text must be rejected before it is parsed
	if !json.Valid(data) {
		return nil, fault.RecordError("record decode failed: invalid JSON text")
	}

	var v interface{}
	if err := api.Unmarshal(data, &v); nil != err {
		return nil, fault.RecordError("record decode failed: " + err.Error())
	}

	v = normalise(v)

	// a number outside the float64 range would parse here and then
	// fail to encode
	if err := checkNumbers(v); nil != err {
		return nil, err
	}
	return v, nil
}

// DecodeRecord - parse JSON text that must be an object
func DecodeRecord(data []byte) (Record, error) {
	v, err := Decode(data)
	if nil != err {
		return nil, err
	}
	r, ok := v.(Record)
	if !ok {
		return nil, fault.InvalidRecord
	}
	return r, nil
}

// Canonicalize - rewrite arbitrary JSON text in canonical form
func Canonicalize(data []byte) ([]byte, error) {
	v, err := Decode(data)
	if nil != err {
		return nil, err
	}
	return Encode(v)
}

// convert decoder maps to Record all the way down
func normalise(v interface{}) interface{} {
	switch tv := v.(type) {
	case map[string]interface{}:
		r := make(Record, len(tv))
		for k, e := range tv {
			r[k] = normalise(e)
		}
		return r
	case []interface{}:
		for i, e := range tv {
			tv[i] = normalise(e)
		}
		return tv
	default:
		return v
	}
}

// every decoded number must have a canonical rendition
func checkNumbers(v interface{}) error {
	switch tv := v.(type) {
	case Record:
		for _, e := range tv {
			if err := checkNumbers(e); nil != err {
				return err
			}
		}
	case []interface{}:
		for _, e := range tv {
			if err := checkNumbers(e); nil != err {
				return err
			}
		}
	case json.Number:
		if _, err := formatNumber(string(tv)); nil != err {
			return fault.RecordError("record decode failed: number out of range: " + string(tv))
		}
	}
	return nil
}

// a Recorder held in a nil pointer is written as null
func isNilRecorder(r Recorder) bool {
	v := reflect.ValueOf(r)
	return reflect.Ptr == v.Kind() && v.IsNil()
}

// recursive canonical writer
func write(stream *jsoniter.Stream, v interface{}) error {
	switch tv := v.(type) {
	case nil:
		stream.WriteNil()
	case Recorder:
		if isNilRecorder(tv) {
			stream.WriteNil()
			return nil
		}
		return writeObject(stream, tv.Record())
	case Record:
		return writeObject(stream, tv)
	case map[string]interface{}:
		return writeObject(stream, tv)
	case []interface{}:
		stream.WriteArrayStart()
		for i, e := range tv {
			if i > 0 {
				stream.WriteMore()
			}
			if err := write(stream, e); nil != err {
				return err
			}
		}
		stream.WriteArrayEnd()
	case []Record:
		stream.WriteArrayStart()
		for i, e := range tv {
			if i > 0 {
				stream.WriteMore()
			}
			if err := writeObject(stream, e); nil != err {
				return err
			}
		}
		stream.WriteArrayEnd()
	case []string:
		stream.WriteArrayStart()
		for i, e := range tv {
			if i > 0 {
				stream.WriteMore()
			}
			writeString(stream, e)
		}
		stream.WriteArrayEnd()
	case string:
		writeString(stream, tv)
	case *string:
		if nil == tv {
			stream.WriteNil()
		} else {
			writeString(stream, *tv)
		}
	case bool:
		stream.WriteBool(tv)
	case json.Number:
		s, err := formatNumber(string(tv))
		if nil != err {
			return err
		}
		stream.WriteRaw(s)
	case float64:
		s, err := formatFloat(tv)
		if nil != err {
			return err
		}
		stream.WriteRaw(s)
	case float32:
		s, err := formatFloat(float64(tv))
		if nil != err {
			return err
		}
		stream.WriteRaw(s)
	case int:
		stream.WriteInt64(int64(tv))
	case int8:
		stream.WriteInt64(int64(tv))
	case int16:
		stream.WriteInt64(int64(tv))
	case int32:
		stream.WriteInt64(int64(tv))
	case int64:
		stream.WriteInt64(tv)
	case uint:
		stream.WriteUint64(uint64(tv))
	case uint8:
		stream.WriteUint64(uint64(tv))
	case uint16:
		stream.WriteUint64(uint64(tv))
	case uint32:
		stream.WriteUint64(uint64(tv))
	case uint64:
		stream.WriteUint64(tv)
	default:
		return fault.UnsupportedValue
	}
	return nil
}

// object keys are emitted in code point order, which for UTF-8
// strings is the same as byte order
func writeObject(stream *jsoniter.Stream, m map[string]interface{}) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	stream.WriteObjectStart()
	for i, k := range keys {
		if i > 0 {
			stream.WriteMore()
		}
		writeString(stream, k)
		stream.WriteRaw(":")
		if err := write(stream, m[k]); nil != err {
			return err
		}
	}
	stream.WriteObjectEnd()
	return nil
}

func writeString(stream *jsoniter.Stream, s string) {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "\uFFFD")
	}
	stream.WriteString(s)
}
