package localstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/meikuraledutech/flow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "templates.json"))
}

func TestListEmptyCases(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file reads as empty", func(t *testing.T) {
		s := newStore(t)

		list, err := s.List(ctx)

		require.NoError(t, err)
		assert.Empty(t, list)
		assert.NotNil(t, list)
	})

	t.Run("malformed file reads as empty, not as an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "templates.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		s := New(path)

		list, err := s.List(ctx)

		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestAppendAndReload(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "templates.json")
	s := New(path)

	tpl := flow.Template{Text: "Hello"}
	id, err := s.Append(ctx, &tpl)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	// A fresh store over the same file sees the entry.
	reloaded := New(path)
	list, err := reloaded.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Hello", list[0].Text)
	assert.Nil(t, list[0].Image, "no image stays absent")

	image := "blob:abc123"
	second := flow.Template{Text: "With image", Image: &image}
	_, err = s.Append(ctx, &second)
	require.NoError(t, err)

	list, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "With image", list[1].Text, "appends keep order")
	require.NotNil(t, list[1].Image)
	assert.Equal(t, "blob:abc123", *list[1].Image)
}

func TestAppendKeepsProvidedID(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	tpl := flow.Template{ID: "tpl-1", Text: "pinned id"}
	id, err := s.Append(ctx, &tpl)

	require.NoError(t, err)
	assert.Equal(t, "tpl-1", id)
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	tpl := flow.Template{Text: "findable"}
	id, err := s.Append(ctx, &tpl)
	require.NoError(t, err)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "findable", got.Text)

	missing, err := s.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAppendCreatesParentDir(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "templates.json")
	s := New(path)

	tpl := flow.Template{Text: "deep"}
	_, err := s.Append(ctx, &tpl)

	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
