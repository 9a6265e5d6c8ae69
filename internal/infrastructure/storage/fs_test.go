package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/gridcheck/internal/domain"
)

func TestFSSaveLoadList(t *testing.T) {
	fs := NewFS(t.TempDir())
	ctx := context.Background()

	sub := &domain.Submission{
		ID:    "abc123",
		Kind:  domain.KindBoard,
		Board: &domain.Board{Rows: []string{"12--", "----", "----", "----"}},
		Valid: true,
		Name:  "small board",
	}
	require.NoError(t, fs.Save(ctx, sub))

	got, err := fs.Load(ctx, "abc123")
	require.NoError(t, err)
	require.Equal(t, sub.ID, got.ID)
	require.Equal(t, domain.KindBoard, got.Kind)
	require.NotNil(t, got.Board)
	require.Equal(t, sub.Board.Rows, got.Board.Rows)

	metas, err := fs.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 1)
	require.Equal(t, "abc123", metas[0].ID)
	require.True(t, metas[0].Valid)
}

func TestFSSaveRejectsMissingID(t *testing.T) {
	fs := NewFS(t.TempDir())
	require.Error(t, fs.Save(context.Background(), &domain.Submission{}))
	require.Error(t, fs.Save(context.Background(), nil))
}

func TestFSLoadNotFound(t *testing.T) {
	fs := NewFS(t.TempDir())
	_, err := fs.Load(context.Background(), "nope")
	require.Error(t, err)
}
