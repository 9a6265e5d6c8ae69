package domain

// EmptyCell marks an unfilled board cell.
const EmptyCell = '-'

// Board is an N×N grid of single-character symbols, one string per row.
// Digits carry their face value and uppercase letters extend the range
// ('A' = 10, 'B' = 11, …), so boards up to 35×35 are representable.
type Board struct {
	Rows []string `json:"rows"`
}

// Size returns the number of rows. Row lengths are only guaranteed to
// match it after validation.
func (b *Board) Size() int { return len(b.Rows) }

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Submission is a persisted validation record with metadata.
type Submission struct {
	ID        string `json:"id,omitempty"`
	Kind      Kind   `json:"kind"`
	Board     *Board `json:"board,omitempty"`
	Addr      string `json:"addr,omitempty"`
	Valid     bool   `json:"valid"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// SubmissionMeta is a lightweight listing entry.
type SubmissionMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Kind      Kind   `json:"kind"`
	Valid     bool   `json:"valid"`
	CreatedAt int64  `json:"createdAt"`
}
