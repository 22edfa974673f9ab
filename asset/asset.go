// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"encoding/json"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/dpjb/assetledger/canonical"
	"github.com/dpjb/assetledger/fault"
)

// DocType - value of the docType field of every stored asset
const DocType = "asset"

// field limits
const (
	MaxNameLength        = 50
	MaxDescriptionLength = 280
)

// persisted field names
const (
	docTypeField                 = "docType"
	kindField                    = "Tipo"
	idField                      = "ID"
	nameField                    = "Nome"
	responsibleField             = "Responsavel"
	stateField                   = "Estado"
	linkField                    = "Link"
	descriptionField             = "Descricao"
	responsibleOrganisationField = "OrganizacaoResponsavel"
	responsibleCompanyField      = "EmpresaResponsavel"
)

// Kinds - the recognised values of the Tipo field
var Kinds = []string{
	"jornalista",
	"organização",
	"empresa de mídia",
	"funcionário",
	"obra",
}

// Asset - a registered asset
//
// the optional fields are nil when absent; absent and null are stored
// the same way
type Asset struct {
	DocType                 string  `json:"docType"`
	Kind                    string  `json:"Tipo"`
	ID                      string  `json:"ID"`
	Name                    string  `json:"Nome"`
	Responsible             int64   `json:"Responsavel"`
	State                   string  `json:"Estado"`
	Link                    *string `json:"Link"`
	Description             *string `json:"Descricao"`
	ResponsibleOrganisation *string `json:"OrganizacaoResponsavel"`
	ResponsibleCompany      *string `json:"EmpresaResponsavel"`
}

// Record - the complete record with all ten fields
func (a *Asset) Record() canonical.Record {
	return canonical.Record{
		docTypeField:                 a.DocType,
		kindField:                    a.Kind,
		idField:                      a.ID,
		nameField:                    a.Name,
		responsibleField:             a.Responsible,
		stateField:                   a.State,
		linkField:                    a.Link,
		descriptionField:             a.Description,
		responsibleOrganisationField: a.ResponsibleOrganisation,
		responsibleCompanyField:      a.ResponsibleCompany,
	}
}

// Validate - check the fields that are set by a caller
func (a *Asset) Validate() error {
	if "" == a.ID {
		return fault.InvalidAssetID
	}
	if !IsKind(a.Kind) {
		return fault.InvalidAssetKind
	}
	if "" == a.Name {
		return fault.InvalidAssetName
	}
	if utf8.RuneCountInString(a.Name) > MaxNameLength {
		return fault.InvalidNameLength
	}
	if nil != a.Description && utf8.RuneCountInString(*a.Description) > MaxDescriptionLength {
		return fault.InvalidDescription
	}
	return nil
}

// IsKind - true if the kind is one of Kinds ignoring case
func IsKind(kind string) bool {
	for _, k := range Kinds {
		if strings.EqualFold(k, kind) {
			return true
		}
	}
	return false
}

// FromRecord - convert a decoded record into an asset
//
// fields other than the ten asset fields are ignored
func FromRecord(r canonical.Record) (*Asset, error) {
	a := &Asset{}

	strs := []struct {
		field string
		value *string
	}{
		{docTypeField, &a.DocType},
		{kindField, &a.Kind},
		{idField, &a.ID},
		{nameField, &a.Name},
		{stateField, &a.State},
	}
	for _, s := range strs {
		v, ok := r[s.field].(string)
		if !ok {
			return nil, fault.InvalidRecord
		}
		*s.value = v
	}

	optional := []struct {
		field string
		value **string
	}{
		{linkField, &a.Link},
		{descriptionField, &a.Description},
		{responsibleOrganisationField, &a.ResponsibleOrganisation},
		{responsibleCompanyField, &a.ResponsibleCompany},
	}
	for _, o := range optional {
		switch v := r[o.field].(type) {
		case nil:
			*o.value = nil
		case string:
			s := v
			*o.value = &s
		default:
			return nil, fault.InvalidRecord
		}
	}

	n, err := integer(r[responsibleField])
	if nil != err {
		return nil, err
	}
	a.Responsible = n

	return a, nil
}

// convert a decoded number to int64
//
// an integral value written with a fraction or exponent is accepted
func integer(v interface{}) (int64, error) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, fault.InvalidResponsible
	}
	if i, err := n.Int64(); nil == err {
		return i, nil
	}
	f, err := n.Float64()
	if nil != err || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fault.InvalidResponsible
	}
	return int64(f), nil
}
