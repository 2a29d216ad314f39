package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextDefaultsWithoutPublish(t *testing.T) {
	assert.Same(t, Default(), NewContext(nil).Current())
	assert.Same(t, Dark(), NewContext(Dark()).Current())

	var nilCtx *Context
	assert.Same(t, Default(), nilCtx.Current())
	assert.Zero(t, nilCtx.Depth())
}

func TestPublishIsScoped(t *testing.T) {
	ctx := NewContext(Light())

	restore := ctx.Publish(Dark())
	assert.Same(t, Dark(), ctx.Current())

	// nested boundary that does not publish sees the outer override
	ctx.Within(nil, func() {
		assert.Same(t, Dark(), ctx.Current())
	})

	restore()
	assert.Same(t, Light(), ctx.Current())
	assert.Zero(t, ctx.Depth())
}

func TestNestedPublishRevertsInOrder(t *testing.T) {
	ocean := Derive(Dark(), "ocean", nil)
	ctx := NewContext(Light())

	ctx.Within(Dark(), func() {
		ctx.Within(ocean, func() {
			assert.Same(t, ocean, ctx.Current())
			assert.Equal(t, 2, ctx.Depth())
		})
		assert.Same(t, Dark(), ctx.Current())
	})
	assert.Same(t, Light(), ctx.Current())
}

func TestRestoreIsIdempotentAndDropsInnerOverrides(t *testing.T) {
	ctx := NewContext(Light())

	outer := ctx.Publish(Dark())
	inner := ctx.Publish(Light())
	outer()
	assert.Same(t, Light(), ctx.Current())
	assert.Zero(t, ctx.Depth())

	again := ctx.Publish(Dark())
	inner() // stale restore from a finished boundary
	outer()
	assert.Same(t, Dark(), ctx.Current())
	again()
	assert.Same(t, Light(), ctx.Current())
}

func TestStaleRestoreKeepsLaterOverrides(t *testing.T) {
	ocean := Derive(Dark(), "ocean", nil)
	ctx := NewContext(Light())

	outer := ctx.Publish(Dark())
	inner := ctx.Publish(Light())
	outer()

	second := ctx.Publish(Dark())
	third := ctx.Publish(ocean)
	inner()
	assert.Same(t, ocean, ctx.Current())
	assert.Equal(t, 2, ctx.Depth())

	third()
	assert.Same(t, Dark(), ctx.Current())
	second()
	assert.Same(t, Light(), ctx.Current())
	assert.Zero(t, ctx.Depth())
}

func TestWithinRestoresOnPanic(t *testing.T) {
	ctx := NewContext(Light())

	require.Panics(t, func() {
		ctx.Within(Dark(), func() { panic("render failed") })
	})
	assert.Same(t, Light(), ctx.Current())
}

func TestResolveIsPure(t *testing.T) {
	stack := []*Theme{Dark(), nil}
	assert.Same(t, Dark(), Resolve(Light(), stack))
	assert.Same(t, Dark(), Resolve(Light(), stack))
	assert.Same(t, Light(), Resolve(Light(), nil))
	assert.Same(t, Default(), Resolve(nil, []*Theme{nil}))
	assert.Len(t, stack, 2)
}

func TestInitDefaultIsOnce(t *testing.T) {
	first := Default()
	assert.False(t, InitDefault(Dark()))
	assert.Same(t, first, Default())
	assert.Same(t, Light(), first)
}
