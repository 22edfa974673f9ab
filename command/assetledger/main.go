// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/dpjb/assetledger/asset"
	"github.com/dpjb/assetledger/contract"
	"github.com/dpjb/assetledger/storage"
	"github.com/dpjb/assetledger/util"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 0 == len(arguments) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE command [arguments...]\n%s", program, usage)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	if !util.EnsureFileExists(configurationFile) {
		exitwithstatus.Message("%s: missing file: %q", program, configurationFile)
	}
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("configuration: %+v", masterConfiguration)

	if verbose {
		fmt.Fprintf(os.Stderr, "database: %s\n", masterConfiguration.databaseName())
	}

	// ------------------
	// start of real main
	// ------------------

	// open database
	log.Info("initialise storage")
	err = storage.Initialise(masterConfiguration.databaseName(), storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("%s: storage initialise error: %s", program, err)
	}
	defer storage.Finalise()

	registry := asset.New(logger.New("asset"), storage.Pool.Assets)

	if masterConfiguration.Seed {
		seeded, err := seedEmpty(registry, storage.Pool.Assets)
		if nil != err {
			log.Criticalf("seed error: %s", err)
			exitwithstatus.Message("%s: seed error: %s", program, err)
		}
		if seeded && verbose {
			fmt.Fprintf(os.Stderr, "seeded empty database\n")
		}
	}

	c := contract.New(logger.New("contract"), registry, storage.NewDBTransaction)
	c.SetRateLimit(masterConfiguration.Invoke.Rate, masterConfiguration.Invoke.Burst)

	cmd := &command{
		log:      log,
		registry: registry,
		contract: c,
		pool:     storage.Pool.Assets,
		out:      os.Stdout,
		quiet:    quiet,
	}
	if err := cmd.process(arguments); nil != err {
		log.Errorf("command: %q  error: %s", arguments[0], err)
		exitwithstatus.Message("%s: %s error: %s", program, arguments[0], err)
	}
}
