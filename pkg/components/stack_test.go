package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/uicontrols/pkg/theme"
)

func TestVStackGap(t *testing.T) {
	out := VStack(NewText("one"), NewText("two")).WithGap(2).View()
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 4)
	assert.Equal(t, "one", strings.TrimSpace(lines[0]))
	assert.Equal(t, "two", strings.TrimSpace(lines[3]))
}

func TestHStackJoinsSideBySide(t *testing.T) {
	out := HStack(NewText("left"), NewText("right")).WithGap(1).View()

	assert.Equal(t, 1, lipgloss.Height(out))
	assert.Equal(t, "left right", out)
}

func TestHStackDividesWidth(t *testing.T) {
	ctx := DefaultContext().WithParentWidth(41)
	out := HStack(
		NewButton("A").WithFullWidth(true),
		NewButton("B").WithFullWidth(true),
	).WithGap(1).ViewWithContext(ctx)

	assert.Equal(t, 41, lipgloss.Width(out))
}

func TestStackSkipsNilAndEmptyChildren(t *testing.T) {
	out := VStack(nil, NewText(""), NewText("only")).View()
	assert.Equal(t, "only", out)
	assert.Empty(t, VStack().View())
}

func TestTextHelpers(t *testing.T) {
	assert.Contains(t, Heading("Title").View(), "Title")
	assert.Contains(t, Caption("note").View(), "note")
	assert.Equal(t, "Title", Heading("Title").Content())
}

func TestStackWithAppliersAccumulates(t *testing.T) {
	dark := theme.Dark()
	stack := VStack(NewText("one")).
		WithAppliers(PaddingX(2)).
		WithAppliers(Surface())

	style := stack.ComputeStyle(dark)
	assert.Equal(t, 2, style.GetPaddingLeft())
	assert.Equal(t, 2, style.GetPaddingRight())
	assert.Equal(t, dark.Palette().Background.Paper, style.GetBackground())
}
