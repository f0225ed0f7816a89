// Package fancy renders styled terminal trees for the app1 CLI.
package fancy

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

// Tree returns a new tree with common styling applied.
func Tree() *tree.Tree {
	t := tree.New()
	t.EnumeratorStyle(BranchStyle)
	t.Enumerator(tree.RoundedEnumerator)
	return t
}

// BranchNode creates a section header node followed by a dimmed annotation.
func BranchNode(title, info string) *tree.Tree {
	if info == "" {
		return Tree().Root(HeaderStyle.Render(title))
	}
	return Tree().Root(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			HeaderStyle.Render(title),
			" ",
			InfoStyle.Render(info),
		),
	)
}

// ComponentTree wraps a styled tree rooted at a single component.
type ComponentTree struct {
	tree *tree.Tree
}

// NewComponentTree creates a component tree with title as its root.
func NewComponentTree(title string) *ComponentTree {
	return &ComponentTree{tree: Tree().Root(title)}
}

// Tree returns the underlying tree.
func (c *ComponentTree) Tree() *tree.Tree {
	return c.tree
}

// AddChild appends children to the root.
func (c *ComponentTree) AddChild(children ...any) *ComponentTree {
	c.tree.Child(children...)
	return c
}

func (c *ComponentTree) String() string {
	return c.tree.String()
}
