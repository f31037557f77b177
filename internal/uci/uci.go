//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package uci implements the small subset of the Universal Chess
// Interface protocol this core supports: position setup, a
// fixed-depth search, and the handshake commands a GUI needs before
// it will talk to an engine at all. It is a thin line-oriented shim
// over internal/engine and never reaches into position, movegen or
// search directly.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/tnoack/chessforge/internal/engine"
	myLogging "github.com/tnoack/chessforge/internal/logging"
)

const (
	engineName   = "chessforge"
	engineAuthor = "chessforge contributors"
)

var regexWhiteSpace = regexp.MustCompile(`\s+`)

// Handler reads UCI commands from In and writes responses to Out. The
// zero value is not usable; create one with NewHandler.
type Handler struct {
	In  *bufio.Scanner
	Out *bufio.Writer

	log *logging.Logger
	eng *engine.Engine
}

// NewHandler creates a Handler reading from stdin and writing to
// stdout. Tests replace In/Out to drive the handler without a real
// terminal.
func NewHandler() *Handler {
	return &Handler{
		In:  bufio.NewScanner(os.Stdin),
		Out: bufio.NewWriter(os.Stdout),
		log: myLogging.GetLog(),
		eng: engine.NewEngine(),
	}
}

// Loop reads commands until "quit" is received or the input stream
// ends.
func (h *Handler) Loop() {
	for h.In.Scan() {
		if h.handle(h.In.Text()) {
			return
		}
	}
}

// Command runs a single line through the handler and returns whatever
// it wrote to Out, for tests that don't want to wire up real I/O.
func (h *Handler) Command(cmd string) string {
	var buf strings.Builder
	tmp := h.Out
	h.Out = bufio.NewWriter(&buf)
	h.handle(cmd)
	_ = h.Out.Flush()
	h.Out = tmp
	return buf.String()
}

func (h *Handler) handle(line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	tokens := regexWhiteSpace.Split(line, -1)
	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		h.send("id name " + engineName)
		h.send("id author " + engineAuthor)
		h.send("uciok")
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.eng.NewGame()
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	case "stop":
		h.eng.Stop()
	default:
		h.log.Warningf("unknown command: %s", line)
		h.sendInfoString(fmt.Sprintf("unknown command %q", tokens[0]))
	}
	return false
}

func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		h.sendInfoString("malformed position command")
		return
	}

	var fen string
	i := 1
	switch tokens[1] {
	case "startpos":
		fen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
		i = 2
	case "fen":
		if len(tokens) < 8 {
			h.sendInfoString("malformed position command: incomplete FEN")
			return
		}
		fen = strings.Join(tokens[2:8], " ")
		i = 8
	default:
		h.sendInfoString(fmt.Sprintf("malformed position command: %q", tokens[1]))
		return
	}

	var moves []string
	if i < len(tokens) && tokens[i] == "moves" {
		moves = tokens[i+1:]
	}

	if err := h.eng.SetPositionFEN(fen, moves); err != nil {
		h.sendInfoString(fmt.Sprintf("invalid FEN: %s", err))
	}
}

func (h *Handler) goCommand(tokens []string) {
	depth := 0
	for i := 1; i < len(tokens); i++ {
		if tokens[i] == "depth" && i+1 < len(tokens) {
			if d, err := strconv.Atoi(tokens[i+1]); err == nil {
				depth = d
			}
			i++
		}
		// movetime/wtime/btime/winc/binc are parsed as no-ops: this core
		// only supports fixed-depth search (see the Non-goals around
		// time management).
	}

	bestMove, nodes, err := h.eng.SearchToDepth(depth)
	if err != nil {
		h.sendInfoString(err.Error())
		return
	}
	h.send(fmt.Sprintf("info depth %d nodes %d", depth, nodes))
	h.send("bestmove " + bestMove)
}

func (h *Handler) sendInfoString(s string) {
	h.send("info string " + s)
}

func (h *Handler) send(s string) {
	_, _ = io.WriteString(h.Out, s+"\n")
	_ = h.Out.Flush()
}
