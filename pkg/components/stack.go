package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack is a layout component that arranges children in a single direction.
type Stack struct {
	BaseComponent
	children  []Renderable
	direction Direction
	gap       int
	align     lipgloss.Position
}

// NewStack creates a new stack with default vertical layout.
func NewStack(children ...Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
		align:         lipgloss.Left,
	}
}

// VStack creates a vertical stack.
func VStack(children ...Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack.
func HStack(children ...Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal).WithAlign(lipgloss.Top)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack with layout context.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	childCtx := ctx
	if s.direction == DirectionHorizontal {
		childCtx = s.horizontalChildContext(ctx)
	}

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}
		if view := renderChild(child, childCtx); view != "" {
			views = append(views, view)
		}
	}

	style := s.ComputeStyle(ctx.Theme())
	if len(views) == 0 {
		return style.Render("")
	}

	if s.direction == DirectionHorizontal {
		return style.Render(lipgloss.JoinHorizontal(s.align, s.interleave(views, strings.Repeat(" ", s.gap))...))
	}
	return style.Render(lipgloss.JoinVertical(s.align, s.interleave(views, strings.Repeat("\n", max(s.gap-1, 0)))...))
}

// horizontalChildContext divides the available width among the children.
func (s *Stack) horizontalChildContext(ctx RenderContext) RenderContext {
	width := ctx.AvailableWidth()
	count := len(s.children)
	if width <= 0 || count == 0 {
		return ctx
	}
	available := (width - s.gap*(count-1)) / count
	if available <= 0 {
		return ctx
	}
	return ctx.WithConstraints(WithMaxWidth(available)).WithParentWidth(available)
}

func (s *Stack) interleave(views []string, spacer string) []string {
	if s.gap == 0 {
		return views
	}
	result := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			result = append(result, spacer)
		}
		result = append(result, view)
	}
	return result
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children: blank lines for vertical
// stacks, columns for horizontal ones.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = max(gap, 0)
	return s
}

// WithAlign sets the cross axis alignment.
func (s *Stack) WithAlign(align lipgloss.Position) *Stack {
	s.align = align
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.AddAppliers(appliers...)
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []Renderable {
	return s.children
}
