// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"path"

	"github.com/ava-labs/avalanchego/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"
)

const logFileSuffix = ".log"

// newFileLogger returns a logger named [name] that writes JSON lines to a
// rotating file under [config.Directory]. Nothing goes to the console, so
// command output stays machine readable.
func newFileLogger(config logging.Config, name string) logging.Logger {
	rw := &lumberjack.Logger{
		Filename:   path.Join(config.Directory, name+logFileSuffix),
		MaxSize:    config.MaxSize,  // megabytes
		MaxAge:     config.MaxAge,   // days
		MaxBackups: config.MaxFiles, // files
		Compress:   config.Compress,
	}
	core := logging.NewWrappedCore(config.LogLevel, rw, config.LogFormat.FileEncoder())
	return logging.NewLogger(config.LogFormat.WrapPrefix(config.MsgPrefix), core)
}
