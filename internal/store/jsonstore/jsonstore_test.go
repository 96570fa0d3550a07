package jsonstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/idilsaglam/accordion/internal/model"
	"github.com/idilsaglam/accordion/internal/store/jsonstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields defaults", func(t *testing.T) {
		t.Parallel()
		items, err := jsonstore.Load(filepath.Join(t.TempDir(), "none.json"))
		require.NoError(t, err)
		assert.Equal(t, jsonstore.Defaults(), items)
		ids := []string{items[0].ID, items[1].ID, items[2].ID}
		assert.Equal(t, []string{"item1", "item2", "item3"}, ids)
	})

	t.Run("saved items load back in order", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "items.json")
		want := []model.Item{
			{ID: "b", Title: "Second", Body: "two"},
			{ID: "a", Title: "First", Body: "one"},
		}
		require.NoError(t, jsonstore.Save(path, want))

		got, err := jsonstore.Load(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("file uses lower-case keys", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "items.json")
		require.NoError(t, jsonstore.Save(path, []model.Item{{ID: "x", Title: "T", Body: "B"}}))
		b, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(b), `"id": "x"`)
		assert.Contains(t, string(b), `"title": "T"`)
		assert.Contains(t, string(b), `"body": "B"`)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "items.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		_, err := jsonstore.Load(path)
		assert.ErrorContains(t, err, "json unmarshal")
	})
}

func TestSave(t *testing.T) {
	t.Parallel()

	err := jsonstore.Save(filepath.Join(t.TempDir(), "missing", "dir", "items.json"), nil)
	assert.ErrorContains(t, err, "write file")
}

func TestPath(t *testing.T) {
	t.Parallel()

	wd, err := os.Getwd()
	require.NoError(t, err)

	p, err := jsonstore.Path("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, jsonstore.DefaultFile), p)

	p, err = jsonstore.Path("data/items.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "data", "items.json"), p)

	abs := filepath.Join(t.TempDir(), "x.json")
	p, err = jsonstore.Path(abs)
	require.NoError(t, err)
	assert.Equal(t, abs, p)
}
