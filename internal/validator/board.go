package validator

import (
	"context"
	"time"

	"svw.info/gridcheck/internal/domain"
	"svw.info/gridcheck/internal/ports"
)

// decodeSymbol maps a cell symbol to its integer value.
// '0'-'9' decode to their face value, 'A'-'Z' to 10..35. Anything else
// (lowercase, punctuation) is not a board symbol.
func decodeSymbol(ch byte) (int, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0'), true
	case ch >= 'A' && ch <= 'Z':
		return 10 + int(ch-'A'), true
	default:
		return 0, false
	}
}

// boxSide returns k with k*k == n, or 0 if n is not a perfect square.
func boxSide(n int) int {
	for k := 1; k*k <= n; k++ {
		if k*k == n {
			return k
		}
	}
	return 0
}

// IsValidBoard reports whether rows form a structurally valid (not
// necessarily solved) board: N rows of N cells each, N a perfect square
// no larger than domain.MaxBoardSize, every filled cell decoding to a
// value in [1,N], and no value repeated within a row, column, or k×k box.
//
// One row-major pass over the N² cells, tracking seen values per row,
// column and box as bitmasks. Empty cells never conflict. The input is
// not mutated and no failure mode panics; every malformed shape or
// symbol simply yields false.
func IsValidBoard(rows []string) bool {
	n := len(rows)
	if n == 0 || n > domain.MaxBoardSize {
		return false
	}
	for _, row := range rows {
		if len(row) != n {
			return false
		}
	}
	k := boxSide(n)
	if k == 0 {
		return false
	}

	// One mask per row/col/box; bit v set means value v was seen.
	// Values are at most 35, so uint64 always has room.
	rowSeen := make([]uint64, n)
	colSeen := make([]uint64, n)
	boxSeen := make([]uint64, n)

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			ch := rows[r][c]
			if ch == domain.EmptyCell {
				continue
			}
			val, ok := decodeSymbol(ch)
			if !ok || val < 1 || val > n {
				return false
			}
			box := (r/k)*k + c/k
			bit := uint64(1) << uint(val)
			if rowSeen[r]&bit != 0 || colSeen[c]&bit != 0 || boxSeen[box]&bit != 0 {
				return false
			}
			rowSeen[r] |= bit
			colSeen[c] |= bit
			boxSeen[box] |= bit
		}
	}
	return true
}

// FastBoard wraps IsValidBoard behind the ports.BoardValidator interface.
type FastBoard struct{}

func NewBoard() *FastBoard { return &FastBoard{} }

func (v *FastBoard) Validate(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	var rows []string
	if b != nil {
		rows = b.Rows
	}
	ok := IsValidBoard(rows)
	n := len(rows)
	return ok, ports.Stats{Cells: n * n, Duration: time.Since(start)}, nil
}
