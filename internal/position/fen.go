//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package position

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/tnoack/chessforge/internal/types"
)

// fenData is the result of the syntactic FEN parse, before semantic
// validation is applied.
type fenData struct {
	squares        [SqLength]Piece
	sideToMove     Color
	castlingRights CastlingRights
	enPassant      Square
	halfMoveClock  int
	fullMoveNumber int
}

// parseFen performs the purely syntactic parse of a six-field FEN
// string. It never inspects the resulting position for chess legality;
// see validateFen for that.
func parseFen(fen string) (*fenData, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("FEN must have 6 fields, got %d", len(fields))
	}

	squares, err := parsePlacement(fields[0])
	if err != nil {
		return nil, err
	}

	var side Color
	switch fields[1] {
	case "w":
		side = White
	case "b":
		side = Black
	default:
		return nil, fmt.Errorf("invalid side to move: %q", fields[1])
	}

	rights, err := parseCastling(fields[2])
	if err != nil {
		return nil, err
	}

	ep, err := parseEnPassant(fields[3])
	if err != nil {
		return nil, err
	}

	halfMove, err := strconv.Atoi(fields[4])
	if err != nil || halfMove < 0 {
		return nil, fmt.Errorf("invalid halfmove clock: %q", fields[4])
	}

	fullMove, err := strconv.Atoi(fields[5])
	if err != nil || fullMove < 0 {
		return nil, fmt.Errorf("invalid fullmove number: %q", fields[5])
	}

	return &fenData{
		squares:        squares,
		sideToMove:     side,
		castlingRights: rights,
		enPassant:      ep,
		halfMoveClock:  halfMove,
		fullMoveNumber: fullMove,
	}, nil
}

func parsePlacement(placement string) ([SqLength]Piece, error) {
	var squares [SqLength]Piece
	for i := range squares {
		squares[i] = PieceNone
	}

	rank := 7
	file := 0
	for _, ch := range placement {
		switch {
		case ch == '/':
			if file != 8 {
				return squares, fmt.Errorf("rank %d does not sum to 8 files", rank+1)
			}
			if rank == 0 {
				return squares, fmt.Errorf("too many ranks in FEN")
			}
			rank--
			file = 0
		case ch >= '1' && ch <= '8':
			empty := int(ch - '0')
			if file+empty > 8 {
				return squares, fmt.Errorf("rank %d overflowed by digit run", rank+1)
			}
			file += empty
		default:
			pc, ok := PieceFromFenChar(byte(ch))
			if !ok {
				return squares, fmt.Errorf("invalid piece letter %q", ch)
			}
			if file > 7 {
				return squares, fmt.Errorf("rank %d has more than 8 files", rank+1)
			}
			squares[SquareOf(file, rank)] = pc
			file++
		}
	}
	if rank != 0 || file != 8 {
		return squares, fmt.Errorf("placement does not have exactly 8 ranks")
	}
	return squares, nil
}

func parseCastling(text string) (CastlingRights, error) {
	if text == "-" {
		return CastleNone, nil
	}
	var rights CastlingRights
	seen := map[byte]bool{}
	for i := 0; i < len(text); i++ {
		c := text[i]
		if seen[c] {
			return 0, fmt.Errorf("duplicate castling right %q", c)
		}
		seen[c] = true
		switch c {
		case 'K':
			rights |= CastleWhiteKing
		case 'Q':
			rights |= CastleWhiteQueen
		case 'k':
			rights |= CastleBlackKing
		case 'q':
			rights |= CastleBlackQueen
		default:
			return 0, fmt.Errorf("invalid castling rights token %q", text)
		}
	}
	return rights, nil
}

func parseEnPassant(text string) (Square, error) {
	if text == "-" {
		return NoSquare, nil
	}
	sq, ok := SquareFromAlgebraic(text)
	if !ok {
		return NoSquare, fmt.Errorf("invalid en passant square %q", text)
	}
	return sq, nil
}

// setupFromFen performs the syntactic parse followed by semantic
// validation, and on success installs the result into p.
func (p *Position) setupFromFen(fen string) error {
	data, err := parseFen(fen)
	if err != nil {
		return err
	}
	if err := validateFen(data); err != nil {
		return err
	}

	*p = Position{}
	for sq := Square(0); int(sq) < SqLength; sq++ {
		if !sq.IsValid() {
			continue
		}
		p.setPiece(sq, data.squares[sq])
	}
	p.sideToMove = data.sideToMove
	p.castlingRights = data.castlingRights
	p.enPassant = data.enPassant
	p.halfMoveClock = data.halfMoveClock
	p.fullMoveNumber = data.fullMoveNumber
	p.hash = p.recomputeHash()
	return nil
}

// validateFen applies the semantic checks of spec section 4.2: pawns
// never on the back ranks, exactly one king per side, castling rights
// consistent with king/rook placement, not both kings in check, and a
// well-formed en-passant target.
func validateFen(d *fenData) error {
	for file := 0; file < 8; file++ {
		for _, rank := range []int{0, 7} {
			pc := d.squares[SquareOf(file, rank)]
			if pc.Type == Pawn {
				return fmt.Errorf("pawn on back rank %d", rank+1)
			}
		}
	}

	var kingCount [ColorLength]int
	var kingSq [ColorLength]Square
	for sq := Square(0); int(sq) < SqLength; sq++ {
		if !sq.IsValid() {
			continue
		}
		pc := d.squares[sq]
		if pc.Type == King {
			kingCount[pc.Color]++
			kingSq[pc.Color] = sq
		}
	}
	if kingCount[White] != 1 {
		return fmt.Errorf("white king count is %d, want 1", kingCount[White])
	}
	if kingCount[Black] != 1 {
		return fmt.Errorf("black king count is %d, want 1", kingCount[Black])
	}

	if err := validateCastlingRights(d, kingSq); err != nil {
		return err
	}

	if err := validateEnPassant(d); err != nil {
		return err
	}

	// Build a scratch position to run the real attack detector for the
	// "both kings in check" check, which needs full board-aware attack
	// queries.
	scratch := &Position{
		squares:        d.squares,
		sideToMove:     d.sideToMove,
		castlingRights: d.castlingRights,
		enPassant:      d.enPassant,
		kingSquare:     kingSq,
	}

	if isSquareAttacked(scratch, kingSq[White], Black) && isSquareAttacked(scratch, kingSq[Black], White) {
		return fmt.Errorf("both kings are in check")
	}

	return nil
}

func validateCastlingRights(d *fenData, kingSq [ColorLength]Square) error {
	check := func(color Color, right CastlingRights, kingHome, rookHome Square) error {
		if d.castlingRights&right == 0 {
			return nil
		}
		if kingSq[color] != kingHome {
			return fmt.Errorf("castling right %s set without king on home square", right.String())
		}
		rook := d.squares[rookHome]
		if rook.Type != Rook || rook.Color != color {
			return fmt.Errorf("castling right %s set without rook on home square", right.String())
		}
		return nil
	}
	e1, _ := SquareFromAlgebraic("e1")
	h1, _ := SquareFromAlgebraic("h1")
	a1, _ := SquareFromAlgebraic("a1")
	e8, _ := SquareFromAlgebraic("e8")
	h8, _ := SquareFromAlgebraic("h8")
	a8, _ := SquareFromAlgebraic("a8")
	if err := check(White, CastleWhiteKing, e1, h1); err != nil {
		return err
	}
	if err := check(White, CastleWhiteQueen, e1, a1); err != nil {
		return err
	}
	if err := check(Black, CastleBlackKing, e8, h8); err != nil {
		return err
	}
	if err := check(Black, CastleBlackQueen, e8, a8); err != nil {
		return err
	}
	return nil
}

func validateEnPassant(d *fenData) error {
	if d.enPassant == NoSquare {
		return nil
	}
	ep := d.enPassant
	if d.squares[ep].Type != PtNone {
		return fmt.Errorf("en passant square %s is occupied", ep)
	}

	var wantRank int
	var capturedRank int
	var friendlyRank int
	var captured Piece
	switch d.sideToMove {
	case White:
		wantRank, capturedRank, friendlyRank = 5, 4, 4
		captured = Piece{Color: Black, Type: Pawn}
	case Black:
		wantRank, capturedRank, friendlyRank = 2, 3, 3
		captured = Piece{Color: White, Type: Pawn}
	}
	if ep.Rank() != wantRank {
		return fmt.Errorf("en passant square %s is on the wrong rank for %s to move", ep, d.sideToMove)
	}

	capturedSq := SquareOf(ep.File(), capturedRank)
	if d.squares[capturedSq] != captured {
		return fmt.Errorf("en passant square %s has no captured pawn behind it", ep)
	}

	friendly := Piece{Color: d.sideToMove, Type: Pawn}
	found := false
	for _, df := range []int{-1, 1} {
		f := ep.File() + df
		if f < 0 || f > 7 {
			continue
		}
		if d.squares[SquareOf(f, friendlyRank)] == friendly {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("en passant square %s has no friendly pawn able to capture", ep)
	}
	return nil
}

// Fen renders the position back to FEN text.
func (p *Position) Fen() string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := p.squares[SquareOf(file, rank)]
			if pc.IsNone() {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pc.FenChar())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}
	b.WriteByte(' ')
	if p.sideToMove == White {
		b.WriteByte('w')
	} else {
		b.WriteByte('b')
	}
	b.WriteByte(' ')
	b.WriteString(p.castlingRights.String())
	b.WriteByte(' ')
	if p.enPassant == NoSquare {
		b.WriteByte('-')
	} else {
		b.WriteString(p.enPassant.String())
	}
	fmt.Fprintf(&b, " %d %d", p.halfMoveClock, p.fullMoveNumber)
	return b.String()
}
