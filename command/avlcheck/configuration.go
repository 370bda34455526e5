// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avldict/configuration"
)

// basic defaults (directories are relative to the configuration file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "avlcheck.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Configuration - the contents of the Lua configuration file
type Configuration struct {
	Insert  []string             `gluamapper:"insert" json:"insert"`
	Delete  []string             `gluamapper:"delete" json:"delete"`
	Shuffle int                  `gluamapper:"shuffle" json:"shuffle"`
	Seed    int64                `gluamapper:"seed" json:"seed"`
	Print   bool                 `gluamapper:"print" json:"print"`
	Logging logger.Configuration `gluamapper:"logging" json:"logging"`
}

// configuration used when only command line keys are given
func defaultConfiguration(directory string) *Configuration {
	return &Configuration{
		Logging: logger.Configuration{
			Directory: directory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
				"main":            "info",
				"check":           "info",
			},
		},
	}
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaultConfiguration(defaultLogDirectory)

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// log directory is relative to the configuration file and is
	// created if necessary
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(dataDirectory, options.Logging.Directory)
	}
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	return options, nil
}

// the part of the configuration that drives a check run
func (c *Configuration) options() Options {
	return Options{
		Insert:  c.Insert,
		Delete:  c.Delete,
		Shuffle: c.Shuffle,
		Seed:    c.Seed,
		Print:   c.Print,
	}
}
