// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package contract - the table of invocable asset operations
//
// each operation is registered once at startup with its parameter
// types and a submit/evaluate tag.  Invoke parses the text arguments
// of a call, runs submit operations inside a store transaction and
// renders the result as text.
package contract
