package domain

// Kind labels what a submission validated.
type Kind int

const (
	KindBoard Kind = iota
	KindIPv4
)

// MaxBoardSize caps the supported board dimension. Symbols are digits plus
// uppercase letters, so values above 35 have no representation.
const MaxBoardSize = 35
