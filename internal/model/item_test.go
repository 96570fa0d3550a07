package model_test

import (
	"testing"

	"github.com/idilsaglam/accordion/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFind(t *testing.T) {
	t.Parallel()

	items := []model.Item{{ID: "a"}, {ID: "b"}, {ID: ""}}
	assert.Equal(t, 0, model.Find(items, "a"))
	assert.Equal(t, 1, model.Find(items, "b"))
	assert.Equal(t, 2, model.Find(items, ""))
	assert.Equal(t, -1, model.Find(items, "c"))
	assert.Equal(t, -1, model.Find(nil, "a"))
}
