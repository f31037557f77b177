//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package config holds globally available configuration variables,
// either set by defaults, read from a TOML config file, or overridden
// by command line options.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tnoack/chessforge/internal/util"
)

// globally available config values.
var (
	// ConfFile holds the path to the config file, relative to the
	// working directory unless absolute.
	ConfFile = "./config.toml"

	// LogLevel is the general log level, can be overridden by command
	// line options or the config file.
	LogLevel = 5

	// SearchLogLevel is the log level used within the search package.
	SearchLogLevel = 5

	// TestLogLevel is the log level used by _test.go files.
	TestLogLevel = 5

	// Settings is the global configuration read in from the file.
	Settings conf

	initialized = false
)

// LogLevels maps config file level names to go-logging levels.
var LogLevels = map[string]int{
	"off":      -1,
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
}

type logConfiguration struct {
	LogLvl       string
	SearchLogLvl string
}

// Setup reads the configuration file and applies its settings over the
// compiled-in defaults.
func Setup() {
	if initialized {
		return
	}

	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("config file not found, using defaults:", err)
	}

	setupLogLvl()
	setupSearch()
	initialized = true
}

func setupLogLvl() {
	if lvl, ok := LogLevels[strings.ToLower(Settings.Log.LogLvl)]; ok {
		LogLevel = lvl
	}
	if lvl, ok := LogLevels[strings.ToLower(Settings.Log.SearchLogLvl)]; ok {
		SearchLogLevel = lvl
	}
}

// String prints the current configuration settings and values using
// reflection.
func (settings *conf) String() string {
	var b strings.Builder
	b.WriteString("Search Config:\n")
	s := reflect.ValueOf(&settings.Search).Elem()
	t := s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		b.WriteString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface()))
	}
	return b.String()
}
