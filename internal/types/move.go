//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package types

// Move is a from/to square pair with an optional promotion piece type.
// The zero value (From==To==a1, Promotion==Pawn) is never produced by
// the generator; NoMove is the explicit "null move" value.
type Move struct {
	From      Square
	To        Square
	Promotion PieceType
}

// NoMove is the UCI "0000" sentinel move.
var NoMove = Move{From: NoSquare, To: NoSquare, Promotion: PtNone}

// IsNone reports whether m is the null move sentinel.
func (m Move) IsNone() bool {
	return m.From == NoSquare || m.To == NoSquare
}

// String renders the move in UCI notation, e.g. "e2e4" or "e7e8q".
// Returns "0000" for the null move.
func (m Move) String() string {
	if m.IsNone() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if l := m.Promotion.PromotionLetter(); l != "" {
		s += l
	}
	return s
}

// MoveFromUCI parses a four or five character UCI move string. "0000"
// parses to NoMove. ok is false for malformed input.
func MoveFromUCI(s string) (m Move, ok bool) {
	if s == "0000" {
		return NoMove, true
	}
	if len(s) != 4 && len(s) != 5 {
		return Move{}, false
	}
	from, ok := SquareFromAlgebraic(s[0:2])
	if !ok {
		return Move{}, false
	}
	to, ok := SquareFromAlgebraic(s[2:4])
	if !ok {
		return Move{}, false
	}
	promo := PtNone
	if len(s) == 5 {
		promo, ok = PieceTypeFromPromotionLetter(s[4])
		if !ok {
			return Move{}, false
		}
	}
	return Move{From: from, To: to, Promotion: promo}, true
}
