// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package canonical

import (
	"math"
	"strconv"

	"github.com/dpjb/assetledger/fault"
)

// numbers are written in the shortest form that parses back to the
// same float64, using exponent notation only outside [1e-6, 1e21)
// which is how ECMAScript renders numbers
func formatFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fault.InvalidNumber
	}
	if 0 == f {
		return "0", nil // also folds -0
	}

	abs := math.Abs(f)
	format := byte('f')
	if abs < 1e-6 || abs >= 1e21 {
		format = 'e'
	}
	b := strconv.AppendFloat(make([]byte, 0, 32), f, format, -1, 64)
	if 'e' == format {
		// e-07 → e-7
		n := len(b)
		if n >= 4 && 'e' == b[n-4] && '-' == b[n-3] && '0' == b[n-2] {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}
	return string(b), nil
}

// decimal text from the decoder
//
// integers that fit in 64 bits, signed or unsigned, are kept exactly,
// everything else goes through float64 like any other JSON consumer
// would
func formatNumber(s string) (string, error) {
	if i, err := strconv.ParseInt(s, 10, 64); nil == err {
		return strconv.FormatInt(i, 10), nil
	}
	if u, err := strconv.ParseUint(s, 10, 64); nil == err {
		return strconv.FormatUint(u, 10), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if nil != err {
		return "", fault.InvalidNumber
	}
	return formatFloat(f)
}
