// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// errors are grouped in classes that can be tested with the IsErrX
// functions, these see through the key and store wrappers so:
//
//   fault.IsErrNotFound(fault.ForKey("A1", fault.AssetNotFound)) == true
package fault
