//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package logging is a thin helper around "github.com/op/go-logging"
// so every package can get a preconfigured Logger in one line instead
// of repeating backend and formatter setup.
package logging

import (
	stdlog "log"
	"os"
	"path/filepath"
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tnoack/chessforge/internal/config"
)

var out = message.NewPrinter(language.German)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	testLog     *logging.Logger
	uciLog      *logging.Logger
	uciLogFile  *os.File

	standardFormat = logging.MustStringFormatter(`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
	uciFormat      = logging.MustStringFormatter(`%{time:15:04:05.000} UCI %{message}`)

	uciLogFilePath string
)

func init() {
	programName, _ := os.Executable()
	exePath := filepath.Dir(programName)
	exeName := strings.TrimSuffix(filepath.Base(programName), ".exe")
	uciLogFilePath = filepath.Join(exePath, "..", "logs", exeName+"_ucilog.log")

	standardLog = logging.MustGetLogger("standard")
	searchLog = logging.MustGetLogger("search")
	testLog = logging.MustGetLogger("test")
	uciLog = logging.MustGetLogger("UCI ")
}

// GetLog returns the standard Logger, configured from config.LogLevel,
// writing to os.Stdout.
func GetLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", stdlog.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.LogLevel), "")
	standardLog.SetBackend(leveled)
	return standardLog
}

// GetSearchLog returns the Logger used within the search package,
// configured from config.SearchLogLevel.
func GetSearchLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", stdlog.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.SearchLogLevel), "")
	searchLog.SetBackend(leveled)
	return searchLog
}

// GetTestLog returns the Logger used by _test.go files, configured from
// config.TestLogLevel.
func GetTestLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", stdlog.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.TestLogLevel), "")
	testLog.SetBackend(leveled)
	return testLog
}

// GetUciLog returns the Logger used to record every line of UCI
// protocol traffic, both to stdout and to a log file in the "logs"
// folder beside the executable's directory. Falls back to stdout only
// if the log file can't be opened.
func GetUciLog() *logging.Logger {
	backend1 := logging.NewLogBackend(os.Stdout, "", stdlog.Lmsgprefix)
	backend1f := logging.NewBackendFormatter(backend1, uciFormat)
	leveled1 := logging.AddModuleLevel(backend1f)
	leveled1.SetLevel(logging.DEBUG, "")

	var err error
	uciLogFile, err = os.OpenFile(uciLogFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		stdlog.Println("UCI log file could not be created:", err)
		uciLog.SetBackend(leveled1)
		return uciLog
	}

	backend2 := logging.NewLogBackend(uciLogFile, "", stdlog.Lmsgprefix)
	backend2f := logging.NewBackendFormatter(backend2, uciFormat)
	leveled2 := logging.AddModuleLevel(backend2f)
	leveled2.SetLevel(logging.DEBUG, "")

	uciLog.SetBackend(logging.SetBackend(leveled1, leveled2))
	return uciLog
}
