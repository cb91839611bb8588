package domain

import "fmt"

// ActionKind is the outcome of a navigation event.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionDescend
	ActionBacktrack
	ActionExecute
	ActionClose
)

func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionDescend:
		return "descend"
	case ActionBacktrack:
		return "backtrack"
	case ActionExecute:
		return "execute"
	case ActionClose:
		return "close"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Action is emitted by the Navigator. Leaf and Values are set for ActionExecute.
type Action struct {
	Kind   ActionKind
	Leaf   *Leaf
	Values map[string]string
}

// Resolve substitutes the action's values into the leaf's template verbatim.
func (a Action) Resolve() (string, error) {
	if a.Kind != ActionExecute || a.Leaf == nil {
		return "", fmt.Errorf("cannot resolve %s action", a.Kind)
	}
	return a.Leaf.task.ToExecutableString(a.Values)
}

// Breadcrumb is the display metadata of a visited tree entry.
type Breadcrumb struct {
	Shortcut KeyChord
	Name     string
}

// Navigator tracks the position in a command tree.
// The current position is derived from the root and the breadcrumb stack;
// going back replays the remaining breadcrumbs from the root.
// A Navigator is not safe for concurrent use.
type Navigator struct {
	root    Command
	current Command
	crumbs  []Breadcrumb
	values  map[string]string
}

// NewNavigator returns a navigator positioned at root.
func NewNavigator(root Command) *Navigator {
	n := &Navigator{root: root}
	n.moveTo(root)
	return n
}

// Root returns the tree the navigator walks.
func (n *Navigator) Root() Command { return n.root }

// Current returns the displayed command.
func (n *Navigator) Current() Command { return n.current }

// AtLeaf reports whether the navigator shows a leaf's input form.
func (n *Navigator) AtLeaf() bool {
	_, ok := n.current.(*Leaf)
	return ok
}

// Breadcrumbs returns a copy of the breadcrumb stack, root excluded.
func (n *Navigator) Breadcrumbs() []Breadcrumb {
	out := make([]Breadcrumb, len(n.crumbs))
	copy(out, n.crumbs)
	return out
}

// Path returns the chords leading from the root to the current position.
func (n *Navigator) Path() []KeyChord {
	path := make([]KeyChord, len(n.crumbs))
	for i, c := range n.crumbs {
		path[i] = c.Shortcut
	}
	return path
}

// Values returns a copy of the form values of the current leaf.
func (n *Navigator) Values() map[string]string {
	out := make(map[string]string, len(n.values))
	for k, v := range n.values {
		out[k] = v
	}
	return out
}

// Value returns the form value of name.
func (n *Navigator) Value(name string) string {
	return n.values[name]
}

// SetValue edits one form entry of the current leaf.
func (n *Navigator) SetValue(name, value string) error {
	leaf, ok := n.current.(*Leaf)
	if !ok || !leaf.task.HasVariable(name) {
		return fmt.Errorf("set %q: %w", name, ErrUnknownVariable)
	}
	n.values[name] = value
	return nil
}

// Press handles a chord. A node child is entered, a leaf child without variables
// is executed right away, a leaf child with variables opens its form.
// Unmapped chords are ignored.
func (n *Navigator) Press(chord KeyChord) Action {
	child := FindChildForShortcut(n.current, chord)
	if child == nil {
		return Action{Kind: ActionNone}
	}

	if leaf, ok := child.(*Leaf); ok && !leaf.task.HasVariables() {
		return Action{Kind: ActionExecute, Leaf: leaf, Values: map[string]string{}}
	}

	n.crumbs = append(n.crumbs, Breadcrumb{Shortcut: child.Shortcut(), Name: child.Name()})
	n.moveTo(child)
	return Action{Kind: ActionDescend}
}

// Confirm executes the current leaf with its form values.
func (n *Navigator) Confirm() Action {
	leaf, ok := n.current.(*Leaf)
	if !ok {
		return Action{Kind: ActionNone}
	}
	return Action{Kind: ActionExecute, Leaf: leaf, Values: n.Values()}
}

// Back leaves the current level. At the root it closes the application.
func (n *Navigator) Back() Action {
	if len(n.crumbs) == 0 {
		return Action{Kind: ActionClose}
	}

	n.crumbs = n.crumbs[:len(n.crumbs)-1]
	target, consumed := ResolvePath(n.root, n.Path())
	if consumed != len(n.crumbs) {
		n.Reset()
		return Action{Kind: ActionBacktrack}
	}

	n.moveTo(target)
	return Action{Kind: ActionBacktrack}
}

// Quit closes the application from any state.
func (n *Navigator) Quit() Action {
	return Action{Kind: ActionClose}
}

// Reset returns to the root with an empty breadcrumb stack.
func (n *Navigator) Reset() {
	n.crumbs = nil
	n.moveTo(n.root)
}

// Seed replays path from the current position, stopping silently at the first
// unmapped chord. It returns the execute action when a leaf without variables
// is reached, ActionNone otherwise.
func (n *Navigator) Seed(path []KeyChord) Action {
	for _, chord := range path {
		action := n.Press(chord)
		switch action.Kind {
		case ActionNone, ActionExecute:
			return action
		}
	}
	return Action{Kind: ActionNone}
}

func (n *Navigator) moveTo(cmd Command) {
	n.current = cmd
	if leaf, ok := cmd.(*Leaf); ok {
		n.values = leaf.task.InitialValues()
		return
	}
	n.values = map[string]string{}
}
