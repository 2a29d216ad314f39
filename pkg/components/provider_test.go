package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/uicontrols/pkg/theme"
)

// probe records the theme it sees when rendered.
type probe struct {
	seen []*theme.Theme
}

func (p *probe) View() string { return p.ViewWithContext(DefaultContext()) }

func (p *probe) ViewWithContext(ctx RenderContext) string {
	p.seen = append(p.seen, ctx.Theme())
	return "probe"
}

func TestProviderPublishesForChildrenOnly(t *testing.T) {
	ctx := NewRenderContext(theme.Light())
	inside := &probe{}
	nested := &probe{}
	after := &probe{}

	tree := VStack(
		NewProvider("dark", inside, VStack(nested)),
		after,
	)
	tree.ViewWithContext(ctx)

	require.Len(t, inside.seen, 1)
	assert.Same(t, theme.Dark(), inside.seen[0])
	assert.Same(t, theme.Dark(), nested.seen[0])
	assert.Same(t, theme.Light(), after.seen[0])
	assert.Same(t, theme.Light(), ctx.Theme())
	assert.Zero(t, ctx.Themes.Depth())
}

func TestNestedProvidersRevertInOrder(t *testing.T) {
	ctx := NewRenderContext(theme.Light())
	first := &probe{}
	inner := &probe{}
	last := &probe{}

	NewProvider("dark",
		first,
		NewProvider("light", inner),
		last,
	).ViewWithContext(ctx)

	assert.Same(t, theme.Dark(), first.seen[0])
	assert.Same(t, theme.Light(), inner.seen[0])
	assert.Same(t, theme.Dark(), last.seen[0])
	assert.Same(t, theme.Light(), ctx.Theme())
}

func TestProviderUnknownNameUsesLight(t *testing.T) {
	seen := &probe{}
	p := NewProvider("sepia", seen)

	assert.Same(t, theme.Light(), p.Theme())
	p.ViewWithContext(NewRenderContext(theme.Dark()))
	assert.Same(t, theme.Light(), seen.seen[0])
}

func TestProviderWithRegistry(t *testing.T) {
	reg := theme.NewRegistry()
	ocean := theme.Derive(theme.Dark(), "ocean", nil)
	require.NoError(t, reg.Register(ocean))

	seen := &probe{}
	NewProvider("ocean", seen).WithRegistry(reg).View()
	assert.Same(t, ocean, seen.seen[0])

	// the built-in registry does not know about ocean
	assert.Same(t, theme.Light(), NewProvider("ocean").Theme())
}

func TestProviderWithoutThemeContext(t *testing.T) {
	seen := &probe{}
	out := NewProvider("dark", seen).ViewWithContext(RenderContext{Constraints: Unconstrained()})

	assert.Contains(t, out, "probe")
	assert.Same(t, theme.Dark(), seen.seen[0])
}

func TestProviderRestoresAfterPanic(t *testing.T) {
	ctx := NewRenderContext(theme.Light())
	partial := theme.New(theme.Definition{Name: "partial", Palette: theme.NewPalette(nil)})

	assert.Panics(t, func() {
		ctx.Themes.Within(partial, func() {
			NewButton("boom").ViewWithContext(ctx)
		})
	})
	assert.Same(t, theme.Light(), ctx.Theme())
}
