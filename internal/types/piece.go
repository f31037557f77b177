//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package types

// PieceType enumerates the six chess piece kinds.
type PieceType int8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PtNone
	PtLength = 6
)

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// PromotionLetter returns the lower case UCI promotion letter for the
// piece type, e.g. Queen -> "q". Returns "" for piece types that are
// never a valid promotion target.
func (pt PieceType) PromotionLetter() string {
	switch pt {
	case Queen:
		return "q"
	case Rook:
		return "r"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	default:
		return ""
	}
}

// PieceTypeFromPromotionLetter parses a UCI promotion letter ("q", "r",
// "b" or "n", case-insensitive). ok is false for any other input.
func PieceTypeFromPromotionLetter(l byte) (pt PieceType, ok bool) {
	switch l {
	case 'q', 'Q':
		return Queen, true
	case 'r', 'R':
		return Rook, true
	case 'b', 'B':
		return Bishop, true
	case 'n', 'N':
		return Knight, true
	default:
		return PtNone, false
	}
}

// Piece is a colored piece kind. The zero value is White Pawn; use
// PieceNone for an empty square.
type Piece struct {
	Color Color
	Type  PieceType
}

// PieceNone represents an empty board square.
var PieceNone = Piece{Color: ColorNone, Type: PtNone}

// IsNone reports whether the piece represents an empty square.
func (p Piece) IsNone() bool {
	return p.Type == PtNone
}

// fenLetters maps (color, piece type) to its FEN character.
var fenLetters = map[PieceType]string{
	Pawn: "p", Knight: "n", Bishop: "b", Rook: "r", Queen: "q", King: "k",
}

// FenChar returns the FEN character for the piece, uppercase for White
// and lowercase for Black. Returns "" for PieceNone.
func (p Piece) FenChar() string {
	if p.IsNone() {
		return ""
	}
	l := fenLetters[p.Type]
	if p.Color == White {
		return upper(l)
	}
	return l
}

func upper(s string) string {
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

// PieceFromFenChar parses a FEN piece letter into a Piece. ok is false
// for any character that is not one of PNBRQKpnbrqk.
func PieceFromFenChar(c byte) (p Piece, ok bool) {
	var color Color
	var lower byte
	if c >= 'a' && c <= 'z' {
		color = Black
		lower = c
	} else if c >= 'A' && c <= 'Z' {
		color = White
		lower = c + ('a' - 'A')
	} else {
		return PieceNone, false
	}
	for pt, l := range fenLetters {
		if l[0] == lower {
			return Piece{Color: color, Type: pt}, true
		}
	}
	return PieceNone, false
}

func (p Piece) String() string {
	if p.IsNone() {
		return "-"
	}
	return p.Color.String() + " " + p.Type.String()
}
