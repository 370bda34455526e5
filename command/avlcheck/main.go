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

	"github.com/bitmark-inc/avldict/fault"
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
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "print", HasArg: getoptions.NO_ARGUMENT, Short: 'p'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--print] [--config-file=FILE] [key...]", program)
	}

	var masterConfiguration *Configuration
	switch len(options["config-file"]) {
	case 0:
		if 0 == len(arguments) {
			exitwithstatus.Message("%s: either a config-file or some keys are required", program)
		}
		masterConfiguration = defaultConfiguration(os.TempDir())
	case 1:
		configurationFile := options["config-file"][0]
		masterConfiguration, err = getConfiguration(configurationFile)
		if nil != err {
			exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
		}
	default:
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	// command line keys follow any from the configuration
	masterConfiguration.Insert = append(masterConfiguration.Insert, arguments...)

	if len(options["print"]) > 0 {
		masterConfiguration.Print = true
	}
	if len(options["verbose"]) > 0 {
		masterConfiguration.Logging.Console = true
		masterConfiguration.Logging.Levels["check"] = "debug"
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	report, err := run(masterConfiguration.options(), logger.New("check"), os.Stdout)
	if nil != err {
		log.Errorf("check failed: %s  report: %s", err, report)
		exitwithstatus.Message("%s: check failed: %s", program, err)
	}

	log.Infof("report: %s", report)
	fmt.Printf("%s\n", report)
}
