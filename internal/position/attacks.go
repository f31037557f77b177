//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package position

import (
	. "github.com/tnoack/chessforge/internal/types"
)

// IsSquareAttacked reports whether any piece of color by attacks
// target. It is used both by the legality filter (own-king safety,
// castling crossing squares) and by semantic FEN validation (both
// kings in check).
func (p *Position) IsSquareAttacked(target Square, by Color) bool {
	return isSquareAttacked(p, target, by)
}

func isSquareAttacked(p attackBoard, target Square, by Color) bool {
	if pawnAttacksSquare(p, target, by) {
		return true
	}
	for _, off := range KnightOffsets {
		sq, ok := target.Offset(off)
		if !ok {
			continue
		}
		pc := p.at(sq)
		if pc.Color == by && pc.Type == Knight {
			return true
		}
	}
	for _, off := range KingOffsets {
		sq, ok := target.Offset(off)
		if !ok {
			continue
		}
		pc := p.at(sq)
		if pc.Color == by && pc.Type == King {
			return true
		}
	}
	for _, off := range BishopOffsets {
		if slideAttacks(p, target, off, by, Bishop, Queen) {
			return true
		}
	}
	for _, off := range RookOffsets {
		if slideAttacks(p, target, off, by, Rook, Queen) {
			return true
		}
	}
	return false
}

// attackBoard is the minimal surface attack detection needs, so it can
// run both against a live Position and the scratch board built during
// FEN validation before a Position exists.
type attackBoard interface {
	at(sq Square) Piece
}

func (p *Position) at(sq Square) Piece { return p.squares[sq] }

func pawnAttacksSquare(p attackBoard, target Square, by Color) bool {
	var fromOffsets [2]int
	if by == White {
		// a white pawn attacking target sits one rank south, one file
		// either side.
		fromOffsets = [2]int{Southeast, Southwest}
	} else {
		fromOffsets = [2]int{Northeast, Northwest}
	}
	for _, off := range fromOffsets {
		sq, ok := target.Offset(off)
		if !ok {
			continue
		}
		pc := p.at(sq)
		if pc.Color == by && pc.Type == Pawn {
			return true
		}
	}
	return false
}

func slideAttacks(p attackBoard, target Square, dir int, by Color, kinds ...PieceType) bool {
	sq := target
	for {
		next, ok := sq.Offset(dir)
		if !ok {
			return false
		}
		sq = next
		pc := p.at(sq)
		if pc.IsNone() {
			continue
		}
		if pc.Color != by {
			return false
		}
		for _, k := range kinds {
			if pc.Type == k {
				return true
			}
		}
		return false
	}
}
