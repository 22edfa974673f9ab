// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

// the initial assets of a new ledger
func seedAssets() []*Asset {
	link := "link"
	company := "Empresa_000001_Cadastrada_por_LuizaNGomes"
	organisation := "Exemplo"

	return []*Asset{
		{
			Kind:        "funcionário",
			ID:          "Funcionario_000001_Inicial",
			Name:        "Luiza N Gomes",
			Responsible: 1,
			State:       "DF",
			Link:        &link,
			Description: text("Primeira pessoa logada no DPJB"),
		},
		{
			Kind:        "organização",
			ID:          "Organizacao_000001_Cadastrada_por_LuizaNGomes",
			Name:        "Exemplo",
			Responsible: 1,
			State:       "SP",
			Link:        &link,
			Description: text("Exemplo de Org inicial"),
		},
		{
			Kind:        "empresa de mídia",
			ID:          company,
			Name:        "Galãs Feios",
			Responsible: 1,
			State:       "SP",
			Link:        &link,
			Description: text("Exemplo de Org inicial"),
		},
		{
			Kind:                    "jornalista",
			ID:                      "Jornalista_000001_Nome_HelderMaldonado_Currículo_<link>_Cadastrado_por_LuizaNGomes",
			Name:                    "Helder Maldonado",
			Responsible:             1,
			State:                   "SP",
			Link:                    &link,
			Description:             text("Jornalista do canal Galãs Feios"),
			ResponsibleOrganisation: &organisation,
			ResponsibleCompany:      &company,
		},
		{
			Kind:                    "obra",
			ID:                      "Jornalista_000001_Obra_00000001_Conteudo_<https://youtu.be/iRxwt8n9avo>_Instituicao_000001",
			Name:                    "Greve em Hollywood faz incel chamar Barbie de feia",
			Responsible:             1,
			State:                   "DF",
			Link:                    &link,
			Description:             text("Margot Robbie, protagonista de Barbie, sinalizou apoio à pausa sindical. O posicionamento dela tem gerado críticas infundadas sobre a beleza da atriz, que partem principalmente de um grupo de incels idosos brasileiros. Helder comenta."),
			ResponsibleOrganisation: &organisation,
			ResponsibleCompany:      &company,
		},
	}
}

func text(s string) *string {
	return &s
}
