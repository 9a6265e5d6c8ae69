package validator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/gridcheck/internal/domain"
)

// A solved classic 9×9 board.
var solved9 = []string{
	"534678912",
	"672195348",
	"198342567",
	"859761423",
	"426853791",
	"713924856",
	"961537284",
	"287419635",
	"345286179",
}

// The same puzzle with most cells still empty.
var partial9 = []string{
	"53--7----",
	"6--195---",
	"-98----6-",
	"8---6---3",
	"4--8-3--1",
	"7---2---6",
	"-6----28-",
	"---419--5",
	"----8--79",
}

func emptyBoard(n int) []string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = strings.Repeat("-", n)
	}
	return rows
}

func TestIsValidBoardSolvedAndPartial(t *testing.T) {
	require.True(t, IsValidBoard(solved9))
	require.True(t, IsValidBoard(partial9))
}

func TestIsValidBoardEmptyGrids(t *testing.T) {
	for _, n := range []int{1, 4, 9, 16, 25} {
		require.True(t, IsValidBoard(emptyBoard(n)), "empty %d×%d", n, n)
	}
}

func TestIsValidBoardShape(t *testing.T) {
	cases := []struct {
		name string
		rows []string
	}{
		{"zero rows", nil},
		{"not a perfect square", emptyBoard(5)},
		{"ragged row", []string{"12--", "----", "---", "----"}},
		{"wide row", []string{"12---", "----", "----", "----"}},
		{"over symbol alphabet", emptyBoard(36)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.False(t, IsValidBoard(tc.rows))
		})
	}
}

func TestIsValidBoardDuplicates(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want bool
	}{
		{"row duplicate", []string{"11--", "----", "----", "----"}, false},
		{"row duplicate fixed", []string{"12--", "----", "----", "----"}, true},
		{"column duplicate", []string{"1---", "----", "----", "1---"}, false},
		{"column duplicate fixed", []string{"1---", "----", "----", "2---"}, true},
		{"box duplicate", []string{"1---", "-1--", "----", "----"}, false},
		{"box duplicate fixed", []string{"1---", "-2--", "----", "----"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, IsValidBoard(tc.rows))
		})
	}
}

func TestIsValidBoardSymbols(t *testing.T) {
	rows := emptyBoard(9)

	// '0' decodes but 0 is never a legal value.
	rows[0] = "0--------"
	require.False(t, IsValidBoard(rows))

	// lowercase letters are not board symbols
	rows[0] = "a--------"
	require.False(t, IsValidBoard(rows))

	// value above N: 'A' is 10, out of range on a 9×9 board
	rows[0] = "A--------"
	require.False(t, IsValidBoard(rows))

	// but fine on a 16×16 one, where 'G' (16) is the cap
	big := emptyBoard(16)
	big[0] = "A--------------G"
	require.True(t, IsValidBoard(big))
	big[0] = "H---------------"
	require.False(t, IsValidBoard(big))
}

func TestIsValidBoardIdempotent(t *testing.T) {
	rows := []string{"11--", "----", "----", "----"}
	first := IsValidBoard(rows)
	require.Equal(t, first, IsValidBoard(rows))
	require.Equal(t, "11--", rows[0], "input must not be mutated")

	require.True(t, IsValidBoard(solved9))
	require.True(t, IsValidBoard(solved9))
}

func TestFastBoardValidate(t *testing.T) {
	v := NewBoard()
	ctx := context.Background()

	ok, st, err := v.Validate(ctx, &domain.Board{Rows: solved9})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 81, st.Cells)

	ok, _, err = v.Validate(ctx, nil)
	require.NoError(t, err)
	require.False(t, ok)
}
