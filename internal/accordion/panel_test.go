package accordion_test

import (
	"strings"
	"testing"

	"github.com/idilsaglam/accordion/internal/accordion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// settle steps p until it settles or fails the test.
func settle(t *testing.T, p *accordion.Panel) {
	t.Helper()
	for range 1000 {
		if p.Step() {
			return
		}
	}
	t.Fatalf("panel %s did not settle", p.ID())
}

func TestNewPanel(t *testing.T) {
	t.Parallel()

	t.Run("nil controller is rejected", func(t *testing.T) {
		t.Parallel()
		p, err := accordion.NewPanel(nil, "item1", "body", accordion.StrategyHard)
		assert.ErrorIs(t, err, accordion.ErrUsedOutsideScope)
		assert.Nil(t, p)
	})

	t.Run("zero value panics on use", func(t *testing.T) {
		t.Parallel()
		var p accordion.Panel
		assert.PanicsWithError(t, accordion.ErrUsedOutsideScope.Error(), func() { _ = p.Visible() })
	})
}

func TestPanel_Hard(t *testing.T) {
	t.Parallel()

	c := accordion.NewController()
	p, err := accordion.NewPanel(c, "item1", "body", accordion.StrategyHard)
	require.NoError(t, err)
	const rendered = "line one\nline two"

	p.Measure(rendered)
	assert.False(t, p.Visible())
	assert.Empty(t, p.Clip(rendered))

	c.Toggle("item1")
	p.Measure(rendered)
	assert.True(t, p.Visible())
	assert.True(t, p.Settled())
	assert.Equal(t, rendered, p.Clip(rendered))
	assert.Equal(t, 2, p.Natural())

	c.Toggle("item2")
	p.Measure(rendered)
	assert.False(t, p.Visible(), "opening another item hides this one at once")
	assert.Empty(t, p.Clip(rendered))
	assert.True(t, p.Step())
}

func TestPanel_Animated(t *testing.T) {
	t.Parallel()

	const rendered = "l1\nl2\nl3"

	t.Run("opens to natural height", func(t *testing.T) {
		t.Parallel()
		c := accordion.NewController()
		p, err := accordion.NewPanel(c, "a", "body", accordion.StrategyAnimated)
		require.NoError(t, err)
		p.Measure(rendered)
		assert.True(t, p.Settled())
		assert.False(t, p.Visible())

		c.Toggle("a")
		p.Measure(rendered)
		assert.Equal(t, 3, p.Natural())
		assert.True(t, p.Visible())
		assert.False(t, p.Settled())

		p.Step()
		assert.Less(t, p.Extent(), 3, "first frame is mid-transition")

		settle(t, p)
		assert.Equal(t, 3, p.Extent())
		assert.Equal(t, rendered, p.Clip(rendered))
	})

	t.Run("closes to zero and stays visible until then", func(t *testing.T) {
		t.Parallel()
		c := accordion.NewController()
		p, _ := accordion.NewPanel(c, "a", "body", accordion.StrategyAnimated)
		c.Toggle("a")
		p.Measure(rendered)
		settle(t, p)

		c.Toggle("a")
		p.Measure(rendered)
		assert.False(t, p.Expanded())
		assert.True(t, p.Visible(), "closing panel is still on screen")

		settle(t, p)
		assert.Equal(t, 0, p.Extent())
		assert.False(t, p.Visible())
		assert.Empty(t, p.Clip(rendered))
	})

	t.Run("clip shows a prefix while moving", func(t *testing.T) {
		t.Parallel()
		c := accordion.NewController()
		p, _ := accordion.NewPanel(c, "a", "body", accordion.StrategyAnimated)
		c.Toggle("a")
		p.Measure(rendered)
		for !p.Step() {
			got := p.Clip(rendered)
			assert.True(t, strings.HasPrefix(rendered, got))
			if got != "" {
				assert.Equal(t, p.Extent(), strings.Count(got, "\n")+1)
			}
		}
	})

	t.Run("switching strategy snaps to the settled extent", func(t *testing.T) {
		t.Parallel()
		c := accordion.NewController()
		p, _ := accordion.NewPanel(c, "a", "body", accordion.StrategyHard)
		c.Toggle("a")
		p.Measure(rendered)
		p.SetStrategy(accordion.StrategyAnimated, 30)
		assert.Equal(t, accordion.StrategyAnimated, p.Strategy())
		assert.True(t, p.Settled())
		assert.Equal(t, 3, p.Extent())
	})
}

func TestStrategy_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "hard", accordion.StrategyHard.String())
	assert.Equal(t, "animated", accordion.StrategyAnimated.String())
}
