// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dpjb/assetledger/configuration"
	"github.com/dpjb/assetledger/fault"
)

type databaseType struct {
	Directory string `gluamapper:"directory"`
	Name      string `gluamapper:"name"`
}

type testConfiguration struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Seed          bool              `gluamapper:"seed"`
	Rate          float64           `gluamapper:"rate"`
	Database      databaseType      `gluamapper:"database"`
	Levels        map[string]string `gluamapper:"levels"`
}

const luaConfig = `
local M = {}

M.data_directory = "."
M.seed = true
M.rate = 2.5

M.database = {
    directory = "data",
}

M.levels = {
    main = "info",
    ["DEFAULT"] = "critical",
}

-- the name of this file
M.file = arg[0]

return M
`

func writeFile(t *testing.T, text string) string {
	dir, err := os.MkdirTemp("", "assetledger-config")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	name := filepath.Join(dir, "test.conf")
	err = os.WriteFile(name, []byte(text), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}
	return name
}

func TestParseConfigurationFile(t *testing.T) {
	name := writeFile(t, luaConfig)
	defer os.RemoveAll(filepath.Dir(name))

	config := &testConfiguration{
		Database: databaseType{
			Directory: "default",
			Name:      "default.leveldb",
		},
	}

	err := configuration.ParseConfigurationFile(name, config)
	assert.Nil(t, err, "parse error")

	assert.Equal(t, ".", config.DataDirectory, "wrong data directory")
	assert.True(t, config.Seed, "wrong seed")
	assert.Equal(t, 2.5, config.Rate, "wrong rate")
	assert.Equal(t, "data", config.Database.Directory, "wrong database directory")
	assert.Equal(t, "default.leveldb", config.Database.Name, "default was not kept")
	assert.Equal(t, map[string]string{"main": "info", "DEFAULT": "critical"}, config.Levels, "wrong levels")
}

func TestParseConfigurationErrors(t *testing.T) {
	config := &testConfiguration{}

	err := configuration.ParseConfigurationFile("/nonexistent/file.conf", config)
	assert.NotNil(t, err, "missing file must fail")

	name := writeFile(t, `this is not lua`)
	defer os.RemoveAll(filepath.Dir(name))
	err = configuration.ParseConfigurationFile(name, config)
	assert.NotNil(t, err, "syntax error must fail")

	name2 := writeFile(t, `return 42`)
	defer os.RemoveAll(filepath.Dir(name2))
	err = configuration.ParseConfigurationFile(name2, config)
	assert.NotNil(t, err, "non table must fail")

	err = configuration.ParseConfigurationFile(name2, *config)
	assert.Equal(t, fault.InvalidStructPointer, err, "non pointer must fail")
}
