// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - registry of assets in the world state
//
// every asset is stored under its ID as the canonical JSON of the
// complete record, tagged with docType "asset".  updates replace the
// whole record and deletes remove the key.
//
// the registry keeps no state between calls; all state is read from
// and written to the injected storage handle.
package asset
