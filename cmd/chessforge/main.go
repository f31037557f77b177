//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tnoack/chessforge/internal/config"
	"github.com/tnoack/chessforge/internal/engine"
	"github.com/tnoack/chessforge/internal/logging"
	"github.com/tnoack/chessforge/internal/movegen"
	"github.com/tnoack/chessforge/internal/position"
	"github.com/tnoack/chessforge/internal/puzzle"
	"github.com/tnoack/chessforge/internal/uci"
	"github.com/tnoack/chessforge/internal/util"
)

const version = "1.0.0"

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	perftDepth := flag.Int("perft", 0, "runs perft on the given position to this depth and exits")
	fen := flag.String("fen", position.StartFen, "FEN used by -perft")
	puzzlePaths := flag.String("puzzles", "", "comma-separated list of puzzle CSV files to run and exit")
	puzzleDepth := flag.Int("puzzledepth", 4, "search depth used while running -puzzles")
	enableProfile := flag.Bool("profile", false, "enable CPU profiling, written to the current directory")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	logging.GetLog()

	if *enableProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	if *perftDepth != 0 {
		runPerft(*fen, *perftDepth)
		return
	}

	if *puzzlePaths != "" {
		runPuzzles(strings.Split(*puzzlePaths, ","), *puzzleDepth)
		return
	}

	uci.NewHandler().Loop()
}

func runPerft(fen string, depth int) {
	p, err := position.NewPositionFen(fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid FEN:", err)
		os.Exit(1)
	}
	for d := 1; d <= depth; d++ {
		start := time.Now()
		nodes := movegen.Perft(p, d)
		elapsed := time.Since(start)
		out.Printf("depth %d: %d nodes (%d ms, %d nps)\n",
			d, nodes, elapsed.Milliseconds(), util.Nps(nodes, elapsed))
	}
}

func runPuzzles(paths []string, depth int) {
	totalPuzzles := 0
	totalSolved := 0

	for _, path := range paths {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		puzzles, err := puzzle.LoadPath(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			os.Exit(1)
		}

		solved := 0
		for _, p := range puzzles {
			e := engine.NewEngine()
			ok, err := puzzle.Run(e, p, depth)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: puzzle %s: %v\n", path, p.ID, err)
				continue
			}
			if ok {
				solved++
			}
		}
		out.Printf("%s: %d/%d solved\n", path, solved, len(puzzles))
		totalPuzzles += len(puzzles)
		totalSolved += solved
	}

	out.Printf("total: %d/%d solved\n", totalSolved, totalPuzzles)
}

func printVersionInfo() {
	out.Printf("chessforge %s\n", version)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
